package resource

import "github.com/32bitkid/dm/blit"

// Item is one entry of a graphics file.
type Item interface {
	Index() int
	Kind() Kind
	Bytes() []byte

	Bitmap() (*blit.Bitmap, error)
}

// NewItemTable builds the header describing payloads. The unpacked size
// recorded for a bitmap is its 4-bit footprint.
func NewItemTable(payloads [][]byte) ItemTable {
	t := ItemTable{
		CompressedSizes:   make([]uint16, len(payloads)),
		DecompressedSizes: make([]uint16, len(payloads)),
	}
	for i, p := range payloads {
		t.CompressedSizes[i] = uint16(len(p))
		if KindOf(i) == KindBitmap && len(p) >= 4 {
			w := int(p[0])<<8 | int(p[1])
			h := int(p[2])<<8 | int(p[3])
			t.DecompressedSizes[i] = uint16(min(0xFFFF, (w*h+1)/2))
		} else {
			t.DecompressedSizes[i] = uint16(len(p))
		}
	}
	return t
}
