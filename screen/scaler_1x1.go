package screen

import (
	"image"
	"image/draw"
)

// Scaler1x1 magnifies every source pixel into a square of Factor×Factor
// output pixels. A factor below one keeps the size.
type Scaler1x1 struct {
	Factor int
}

func (s Scaler1x1) Scale(src image.Image) image.Image {
	n := max(1, s.Factor)
	r := src.Bounds()
	rgba := toRGBA(src)
	if n == 1 {
		return rgba
	}

	dst := image.NewRGBA(image.Rect(0, 0, r.Dx()*n, r.Dy()*n))
	for y := 0; y < r.Dy(); y++ {
		srcRow := rgba.Pix[y*rgba.Stride:]
		dstRow := dst.Pix[y*n*dst.Stride:]
		for x := 0; x < r.Dx(); x++ {
			px := srcRow[x*4 : x*4+4]
			for w := 0; w < n; w++ {
				copy(dstRow[(x*n+w)*4:], px)
			}
		}
		for h := 1; h < n; h++ {
			copy(dst.Pix[(y*n+h)*dst.Stride:][:dst.Stride], dstRow[:dst.Stride])
		}
	}
	return dst
}

// toRGBA returns src as an RGBA image anchored at the origin.
func toRGBA(src image.Image) *image.RGBA {
	r := src.Bounds()
	if rgba, ok := src.(*image.RGBA); ok && r.Min == (image.Point{}) {
		return rgba
	}
	rgba := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, r.Min, draw.Src)
	return rgba
}
