package screen

import (
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"
)

func rgbMix(c1, c2 color.Color, t float64) color.Color {
	clr1, _ := clr.MakeColor(c1)
	clr2, _ := clr.MakeColor(c2)
	if (clr1.R == clr1.G && clr1.G == clr1.B) || (clr2.R == clr2.G && clr2.G == clr2.B) {
		return clr1.BlendRgb(clr2, t).Clamped()
	}
	return clr1.BlendLab(clr2, t).Clamped()
}

func darken(src color.Color, p float64) color.Color {
	srcColor, _ := clr.MakeColor(src)
	h, c, l := srcColor.Hcl()
	return clr.Hcl(h, c, l-p).Clamped()
}

// RGB255 returns the 8-bit channels of c.
func RGB255(c color.Color) (r, g, b uint8) {
	cc, _ := clr.MakeColor(c)
	return cc.Clamped().RGB255()
}

func clamp(i int, min int, max int) int {
	if i < min {
		return min
	}
	if i > max {
		return max
	}
	return i
}
