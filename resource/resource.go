package resource

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// ItemTable is the header of a graphics file: a big-endian item count
// followed by the packed and unpacked byte size of every item.
type ItemTable struct {
	CompressedSizes   []uint16
	DecompressedSizes []uint16
}

func (t ItemTable) Len() int { return len(t.CompressedSizes) }

// HeaderSize is the byte length of the table on disk.
func (t ItemTable) HeaderSize() int64 { return 2 + int64(t.Len())*4 }

// Offset returns the position of item i relative to the start of the
// packed data, which follows the header.
func (t ItemTable) Offset(i int) int64 {
	var pos int64
	for _, s := range t.CompressedSizes[:i] {
		pos += int64(s)
	}
	return pos
}

// DataSize is the total length of all packed items.
func (t ItemTable) DataSize() int64 { return t.Offset(t.Len()) }

func ParseItemTable(r io.Reader) (ItemTable, error) {
	var count uint16
	if err := binary.Read(r, binary.BigEndian, &count); err != nil {
		return ItemTable{}, errors.Wrap(err, "item count")
	}

	t := ItemTable{
		CompressedSizes:   make([]uint16, count),
		DecompressedSizes: make([]uint16, count),
	}
	if err := binary.Read(r, binary.BigEndian, &t.CompressedSizes); err != nil {
		return ItemTable{}, errors.Wrap(err, "compressed sizes")
	}
	if err := binary.Read(r, binary.BigEndian, &t.DecompressedSizes); err != nil {
		return ItemTable{}, errors.Wrap(err, "decompressed sizes")
	}
	return t, nil
}

func (t ItemTable) WriteTo(w io.Writer) (int64, error) {
	if len(t.DecompressedSizes) != len(t.CompressedSizes) {
		return 0, errors.Errorf("item table: %d compressed sizes but %d decompressed sizes",
			len(t.CompressedSizes), len(t.DecompressedSizes))
	}
	if err := binary.Write(w, binary.BigEndian, uint16(t.Len())); err != nil {
		return 0, err
	}
	if err := binary.Write(w, binary.BigEndian, t.CompressedSizes); err != nil {
		return 2, err
	}
	if err := binary.Write(w, binary.BigEndian, t.DecompressedSizes); err != nil {
		return 2 + int64(t.Len())*2, err
	}
	return t.HeaderSize(), nil
}
