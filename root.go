// Package dm loads the packed graphics of a Dungeon Master style game and
// serves the decoded native bitmaps by item number.
//
// A graphics file starts with a big-endian item count, then the packed
// size of every item, then the unpacked size of every item, then the
// packed items back to back. Most items are run-length encoded 4-bit
// bitmaps; one item is a 1-bit glyph font and a few carry no image at all.
package dm

import (
	"bytes"
	"io"
	"os"

	"github.com/32bitkid/dm/blit"
	"github.com/32bitkid/dm/resource"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Root is a reference to a graphics file on disk.
type Root struct {
	Path     string
	Decoders resource.DecoderLUT
	Items    []resource.Item
}

func NewRoot(path string) Root {
	return Root{
		Path:     path,
		Decoders: resource.Decoders,
	}
}

type Options struct {
	Logger *zap.Logger
}

func logger(options []Options) *zap.Logger {
	for _, o := range options {
		if o.Logger != nil {
			return o.Logger
		}
	}
	return zap.NewNop()
}

// LoadItemTable reads the item table and the packed items.
func (root *Root) LoadItemTable() error {
	f, err := os.Open(root.Path)
	if err != nil {
		return err
	}
	defer f.Close()
	return root.readItems(f)
}

func (root *Root) readItems(r io.Reader) error {
	table, err := resource.ParseItemTable(r)
	if err != nil {
		return errors.Wrapf(err, "%s: item table", root.Path)
	}

	packed := make([]byte, table.DataSize())
	if _, err := io.ReadFull(r, packed); err != nil {
		return errors.Wrapf(err, "%s: %d bytes of packed items", root.Path, len(packed))
	}

	decoders := root.Decoders
	if decoders == nil {
		decoders = resource.Decoders
	}

	root.Items = make([]resource.Item, table.Len())
	for i := range root.Items {
		start := table.Offset(i)
		root.Items[i] = &packedItem{
			index:    i,
			kind:     resource.KindOf(i),
			payload:  packed[start : start+int64(table.CompressedSizes[i])],
			decoders: decoders,
		}
	}
	return nil
}

// Load decodes every bitmap item. A missing, short or corrupt file is an
// error.
func (root *Root) Load(options ...Options) (*Graphics, error) {
	log := logger(options)

	if root.Items == nil {
		if err := root.LoadItemTable(); err != nil {
			return nil, err
		}
	}

	g := &Graphics{bitmaps: make([]*blit.Bitmap, len(root.Items))}
	skipped := 0
	for i, item := range root.Items {
		if item.Kind() == resource.KindSkipped {
			skipped++
			continue
		}
		bmp, err := item.Bitmap()
		if err != nil {
			return nil, errors.Wrapf(err, "%s: item %d", root.Path, i)
		}
		g.bitmaps[i] = bmp
	}

	log.Debug("graphics loaded",
		zap.String("path", root.Path),
		zap.Int("items", len(root.Items)),
		zap.Int("skipped", skipped),
	)
	return g, nil
}

// WriteGraphics writes payloads as a graphics file.
func WriteGraphics(w io.Writer, payloads [][]byte) error {
	if _, err := resource.NewItemTable(payloads).WriteTo(w); err != nil {
		return errors.Wrap(err, "item table")
	}
	for i, p := range payloads {
		if _, err := io.Copy(w, bytes.NewReader(p)); err != nil {
			return errors.Wrapf(err, "item %d", i)
		}
	}
	return nil
}
