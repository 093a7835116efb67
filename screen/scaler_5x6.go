package screen

import (
	"image"
	"image/color"
)

// Scaler5x6 turns every source pixel into a 5×6 block, which gives the
// 320×200 screen the proportions it had on a 4:3 monitor. With a
// texture, the clear bits of each block are shaded towards black by
// Shade.
type Scaler5x6 struct {
	Texture Texture
	Shade   float64
}

func (s Scaler5x6) Scale(src image.Image) image.Image {
	rgba := toRGBA(src)
	r := rgba.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx()*5, r.Dy()*6))

	shaded := make(map[color.RGBA]color.RGBA)
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			c1 := rgba.RGBAAt(x, y)
			c2 := c1
			var tex *TextureBlock
			if s.Texture != nil {
				tex = s.Texture.at(x, y)
				var ok bool
				if c2, ok = shaded[c1]; !ok {
					c2 = color.RGBAModel.Convert(darken(c1, s.Shade)).(color.RGBA)
					shaded[c1] = c2
				}
			}

			px, py := x*5, y*6
			for h := 0; h < 6; h++ {
				for w := 0; w < 5; w++ {
					c := c1
					if tex != nil && !tex[h][w] {
						c = c2
					}
					dst.SetRGBA(px+w, py+h, c)
				}
			}
		}
	}
	return dst
}
