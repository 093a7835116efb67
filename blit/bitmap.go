// Package blit implements the indexed-colour raster primitives used to
// composite the dungeon view: rectangular copies with a transparency key,
// in-place mirroring, solid fills and fixed-point nearest-neighbour
// shrinking.
package blit

import (
	"image"
	"image/color"
)

// Color is a palette index in [0, 16). NoTransparency disables the
// transparency key of a copy.
type Color int

const NoTransparency Color = -1

const (
	Black    Color = 0
	DarkGray Color = 1
	Gold     Color = 9
	Flesh    Color = 10
)

// Bitmap is a 4-bit indexed image stored one pixel per byte, row major.
type Bitmap struct {
	Width  int
	Height int
	Pix    []byte
}

func New(width, height int) *Bitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Bitmap{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height),
	}
}

// ByteWidth is the width in the half-pixel units of the packed 4-bit
// format the geometry tables are expressed in.
func (b *Bitmap) ByteWidth() int { return b.Width >> 1 }

func (b *Bitmap) Bounds() Box {
	return Box{X1: 0, X2: b.Width - 1, Y1: 0, Y2: b.Height - 1}
}

func (b *Bitmap) At(x, y int) byte {
	return b.Pix[y*b.Width+x]
}

func (b *Bitmap) Set(x, y int, c byte) {
	b.Pix[y*b.Width+x] = c
}

func (b *Bitmap) Clone() *Bitmap {
	pix := make([]byte, len(b.Pix))
	copy(pix, b.Pix)
	return &Bitmap{Width: b.Width, Height: b.Height, Pix: pix}
}

// Paletted wraps the pixels in an *image.Paletted without copying.
func (b *Bitmap) Paletted(p color.Palette) *image.Paletted {
	return &image.Paletted{
		Pix:     b.Pix,
		Stride:  b.Width,
		Rect:    image.Rect(0, 0, b.Width, b.Height),
		Palette: p,
	}
}
