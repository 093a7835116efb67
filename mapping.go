package dm

import (
	"github.com/32bitkid/dm/blit"
	"github.com/32bitkid/dm/resource"
	"github.com/pkg/errors"
)

type packedItem struct {
	index   int
	kind    resource.Kind
	payload []byte

	cache    *blit.Bitmap
	decoders resource.DecoderLUT
}

func (it *packedItem) Index() int          { return it.index }
func (it *packedItem) Kind() resource.Kind { return it.kind }
func (it *packedItem) Bytes() []byte       { return it.payload }

func (it *packedItem) Bitmap() (*blit.Bitmap, error) {
	if it.cache != nil {
		return it.cache, nil
	}

	decode, ok := it.decoders[it.kind]
	if !ok {
		return nil, errors.Errorf("unhandled item kind: %v", it.kind)
	}

	bmp, err := decode(it.payload)
	if err != nil {
		return nil, err
	}
	it.cache = bmp
	return bmp, nil
}

// Graphics holds the native bitmaps of a graphics file indexed by item
// number.
type Graphics struct {
	bitmaps []*blit.Bitmap
}

// NewGraphics wraps already decoded bitmaps. Nil entries are items with no
// image.
func NewGraphics(bitmaps []*blit.Bitmap) *Graphics {
	return &Graphics{bitmaps: bitmaps}
}

func (g *Graphics) Len() int { return len(g.bitmaps) }

func (g *Graphics) Has(index int) bool {
	return index >= 0 && index < len(g.bitmaps) && g.bitmaps[index] != nil
}

// Native returns the decoded bitmap of item index. Asking for an item
// that holds no image is a programming error and panics.
func (g *Graphics) Native(index int) *blit.Bitmap {
	if !g.Has(index) {
		panic(errors.Errorf("native bitmap %d not loaded (%d items)", index, len(g.bitmaps)))
	}
	return g.bitmaps[index]
}
