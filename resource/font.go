package resource

import (
	"bufio"
	"bytes"

	"github.com/32bitkid/bitreader"
	"github.com/32bitkid/dm/blit"
	"github.com/pkg/errors"
)

const (
	FontGlyphs      = 128
	FontGlyphHeight = 6
	fontGlyphBits   = 5

	// FontGlyphWidth includes the black spacing column in front of every
	// glyph.
	FontGlyphWidth = fontGlyphBits + 1
)

// DecodeFont unpacks the 1-bit glyph font. Each packed byte holds one row
// of one glyph in its low five bits. The result is a 768×6 bitmap with
// glyph g at x = g*6.
func DecodeFont(payload []byte) (*blit.Bitmap, error) {
	bits := bitreader.NewReader(bufio.NewReader(bytes.NewReader(payload)))

	bmp := blit.New(FontGlyphs*FontGlyphWidth, FontGlyphHeight)
	k := 0
	for row := 0; row < FontGlyphHeight; row++ {
		for g := 0; g < FontGlyphs; g++ {
			bmp.Pix[k] = byte(blit.Black)
			k++

			if err := bits.Skip(8 - fontGlyphBits); err != nil {
				return nil, errors.Wrapf(err, "font row %d glyph %d", row, g)
			}
			for p := 0; p < fontGlyphBits; p++ {
				v, err := bits.Read8(1)
				if err != nil {
					return nil, errors.Wrapf(err, "font row %d glyph %d", row, g)
				}
				bmp.Pix[k] = v
				k++
			}
		}
	}
	return bmp, nil
}

// EncodeFont packs a 768×6 font bitmap back into its 1-bit form.
func EncodeFont(bmp *blit.Bitmap) ([]byte, error) {
	if bmp.Width != FontGlyphs*FontGlyphWidth || bmp.Height != FontGlyphHeight {
		return nil, errors.Errorf("font bitmap must be %dx%d, got %dx%d",
			FontGlyphs*FontGlyphWidth, FontGlyphHeight, bmp.Width, bmp.Height)
	}
	out := make([]byte, 0, FontGlyphs*FontGlyphHeight)
	k := 0
	for i := 0; i < FontGlyphs*FontGlyphHeight; i++ {
		k++ // spacing column
		var b byte
		for p := 0; p < fontGlyphBits; p++ {
			b = b<<1 | bmp.Pix[k]&1
			k++
		}
		out = append(out, b)
	}
	return out, nil
}
