// Package screen holds the 320×200 indexed screen the dungeon view is
// presented into, and the 12-bit palettes that colour it.
package screen

import (
	"image"

	"github.com/32bitkid/dm/blit"
)

const (
	Width  = 320
	Height = 200
)

// ViewportBox is where the dungeon view sits on screen.
var ViewportBox = blit.Box{X1: 0, X2: 223, Y1: 33, Y2: 168}

type Buffer interface {
	Clear(color uint8)
	Bitmap() *blit.Bitmap
	Image() image.Image
}

// Screen is an indexed frame buffer split into palette bands: the rows of
// the viewport use the middle palette and every other row uses the
// top-and-bottom palette.
type Screen struct {
	pix *blit.Bitmap

	Middle    Palette16
	TopBottom Palette16
}

func NewScreen() *Screen {
	return &Screen{pix: blit.New(Width, Height)}
}

func (s *Screen) Clear(color uint8) { blit.Fill(s.pix, blit.Color(color)) }

func (s *Screen) Bitmap() *blit.Bitmap { return s.pix }

// SetPalette changes both bands. Nil keeps the current band.
func (s *Screen) SetPalette(middle, topBottom *Palette16) {
	if middle != nil {
		s.Middle = *middle
	}
	if topBottom != nil {
		s.TopBottom = *topBottom
	}
}

func (s *Screen) paletteAt(y int) *Palette16 {
	if y >= ViewportBox.Y1 && y <= ViewportBox.Y2 {
		return &s.Middle
	}
	return &s.TopBottom
}

// Image resolves the palette bands into true colour.
func (s *Screen) Image() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	for y := 0; y < Height; y++ {
		pal := s.paletteAt(y)
		var lut [16][3]uint8
		for i, c := range pal {
			lut[i][0], lut[i][1], lut[i][2] = RGB255(c)
		}
		row := s.pix.Pix[y*Width:][:Width]
		out := img.Pix[y*img.Stride:]
		for x, c := range row {
			rgb := lut[c&0xF]
			out[x*4+0] = rgb[0]
			out[x*4+1] = rgb[1]
			out[x*4+2] = rgb[2]
			out[x*4+3] = 0xFF
		}
	}
	return img
}
