package screen

import (
	"image"
	"image/color"
	"testing"
)

func TestRGB12(t *testing.T) {
	cases := []struct {
		c       RGB12
		r, g, b uint8
	}{
		{0x000, 0, 0, 0},
		{0xF00, 0xF0, 0, 0},
		{0x0CC, 0, 0xC0, 0xC0},
		{0xFA0, 0xF0, 0xA0, 0},
		{0xFFF, 0xF0, 0xF0, 0xF0},
	}
	for i, c := range cases {
		r, g, b := RGB255(c.c)
		if r != c.r || g != c.g || b != c.b {
			t.Errorf("%d: expected(%d,%d,%d) != actual(%d,%d,%d)", i, c.r, c.g, c.b, r, g, b)
		}
	}
}

func TestScreenBands(t *testing.T) {
	s := NewScreen()
	s.SetPalette(&DefaultDungeonView[0], &DefaultPalettes.Credits)
	s.Clear(0)

	img := s.Image()
	top := color.RGBAModel.Convert(img.At(10, 0)).(color.RGBA)
	mid := color.RGBAModel.Convert(img.At(10, 100)).(color.RGBA)
	bottom := color.RGBAModel.Convert(img.At(10, 199)).(color.RGBA)

	// credits colour 0 is 0x006, dungeon colour 0 is black
	if top.B != 0x60 || bottom.B != 0x60 {
		t.Errorf("top and bottom bands should use the top-and-bottom palette: %v %v", top, bottom)
	}
	if mid.B != 0 || mid.R != 0 {
		t.Errorf("middle band should use the middle palette: %v", mid)
	}

	s.SetPalette(nil, nil)
	if s.Middle != DefaultDungeonView[0] || s.TopBottom != DefaultPalettes.Credits {
		t.Error("nil palettes must keep the current bands")
	}
}

func TestRenderToCRT(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for i := range src.Pix {
		src.Pix[i] = 0xFF
	}
	img := RenderToCRT(src)
	if b := img.Bounds(); b.Dx() != 4*crtCell || b.Dy() != 3*crtCell {
		t.Fatalf("unexpected bounds %v", b)
	}
	// the darkest scan line sits on top of each cell
	top := color.GrayModel.Convert(img.At(9, 6)).(color.Gray)
	mid := color.GrayModel.Convert(img.At(9, 8)).(color.Gray)
	if top.Y >= mid.Y {
		t.Errorf("expected scan line darker than cell middle: %d >= %d", top.Y, mid.Y)
	}
}

func TestScalers(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for i := range src.Pix {
		src.Pix[i] = 0xC0
	}
	src.SetRGBA(2, 1, color.RGBA{R: 0xFF, A: 0xFF})

	tests := []struct {
		name   string
		dx, dy int
	}{
		{"1x1", 3, 2},
		{"3x3", 9, 6},
		{"5x6", 15, 12},
		{"5x6-scan", 15, 12},
		{"crt", 3 * crtCell, 2 * crtCell},
	}
	for _, tt := range tests {
		s, err := ScalerNamed(tt.name)
		if err != nil {
			t.Fatal(err)
		}
		b := s.Scale(src).Bounds()
		if b.Dx() != tt.dx || b.Dy() != tt.dy {
			t.Errorf("%s: expected(%dx%d) != actual(%dx%d)", tt.name, tt.dx, tt.dy, b.Dx(), b.Dy())
		}
	}

	if _, err := ScalerNamed("hq9x"); err == nil {
		t.Error("expected an unknown scaler to fail")
	}
}

func TestScaler1x1Blocks(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(1, 0, color.RGBA{G: 0xFF, A: 0xFF})
	img := Scaler1x1{Factor: 3}.Scale(src).(*image.RGBA)
	for y := 0; y < 3; y++ {
		if c := img.RGBAAt(2, y); c.G != 0 {
			t.Errorf("(2,%d): expected(0) != actual(%d)", y, c.G)
		}
		if c := img.RGBAAt(3, y); c.G != 0xFF {
			t.Errorf("(3,%d): expected(255) != actual(%d)", y, c.G)
		}
	}
}

func TestScaler5x6Texture(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	img := Scaler5x6{Texture: DefaultTextures.ScanLines, Shade: 0.5}.Scale(src).(*image.RGBA)
	kept, shaded := img.RGBAAt(2, 0), img.RGBAAt(2, 5)
	if kept.R != 0xFF {
		t.Errorf("expected(255) != actual(%d)", kept.R)
	}
	if shaded.R >= kept.R {
		t.Errorf("expected the last row shaded: %v", shaded)
	}
}

func TestTextureFromTemplate(t *testing.T) {
	if _, err := TextureFromTemplate("XXXX\nXXXX"); err == nil {
		t.Fatal("expected a bad template to fail")
	}
	tex, err := TextureFromTemplate("X____\nXXXXX\nXXXXX\nXXXXX\nXXXXX\n-----")
	if err != nil {
		t.Fatal(err)
	}
	if !tex[0][0][0][0] || tex[0][0][0][1] || tex[0][0][5][4] {
		t.Fatalf("unexpected block %v", tex[0][0])
	}
}
