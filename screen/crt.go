package screen

import (
	"image"
	"image/color"
)

var (
	red   = color.RGBA{R: 0xFF, G: 0x99, B: 0x99, A: 0xff}
	green = color.RGBA{G: 0xFF, R: 0x99, B: 0x99, A: 0xff}
	blue  = color.RGBA{B: 0xFF, R: 0x99, G: 0x99, A: 0xff}
)

func rgbMul(a, b color.Color) color.Color {
	r1, g1, b1, _ := a.RGBA()
	r2, g2, b2, _ := b.RGBA()
	return color.RGBA{
		R: uint8((r1 * r2 / 0xffff) >> 8),
		G: uint8((g1 * g2 / 0xffff) >> 8),
		B: uint8((b1 * b2 / 0xffff) >> 8),
		A: 0xFF,
	}
}

// crtCell is the size of the block of output pixels per source pixel.
const crtCell = 6

// RenderToCRT magnifies src six times with horizontal bleed, dark scan
// lines and an alternating RGB shadow mask, approximating the low
// resolution monitors the graphics were drawn for.
func RenderToCRT(src image.Image) image.Image {
	srcRect := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, srcRect.Dx()*crtCell, srcRect.Dy()*crtCell))

	var bleed = [crtCell]float64{3.0 / 6.0, 4.0 / 6.0, 5.0 / 6.0, 0, 1.0 / 6.0, 2.0 / 6.0}
	var scan = [crtCell]float64{0.7, 0.2, 0, 0, 0.1, 0.4}
	var mask = [2][crtCell]color.Color{
		{red, red, green, green, blue, blue},
		{green, blue, blue, red, red, green},
	}

	for sy, dy := srcRect.Min.Y, 0; sy < srcRect.Max.Y; sy, dy = sy+1, dy+crtCell {
		for sx, dx := srcRect.Min.X, 0; sx < srcRect.Max.X; sx, dx = sx+1, dx+crtCell {
			lc := src.At(clamp(sx-1, srcRect.Min.X, srcRect.Max.X-1), sy)
			c := src.At(sx, sy)
			rc := src.At(clamp(sx+1, srcRect.Min.X, srcRect.Max.X-1), sy)

			// one bled colour per column
			var cols [crtCell]color.Color
			for ix := range cols {
				switch {
				case ix < 3:
					cols[ix] = rgbMix(lc, c, bleed[ix])
				case ix == 3:
					cols[ix] = c
				default:
					cols[ix] = rgbMix(c, rc, bleed[ix])
				}
			}

			for iy := 0; iy < crtCell; iy++ {
				for ix := 0; ix < crtCell; ix++ {
					co := cols[ix]
					if scan[iy] > 0 {
						co = darken(co, scan[iy])
					}
					dst.Set(dx+ix, dy+iy, rgbMul(co, mask[iy%2][ix]))
				}
			}
		}
	}

	return dst
}
