package blit

import (
	"bytes"
	"math/rand"
	"testing"
)

func pattern(w, h int, seed int64) *Bitmap {
	rnd := rand.New(rand.NewSource(seed))
	b := New(w, h)
	for i := range b.Pix {
		b.Pix[i] = byte(rnd.Intn(16))
	}
	return b
}

func TestCopyTransparency(t *testing.T) {
	src := &Bitmap{Width: 4, Height: 1, Pix: []byte{1, 10, 2, 10}}
	dst := &Bitmap{Width: 4, Height: 1, Pix: []byte{7, 7, 7, 7}}

	Copy(src, dst, Box{X1: 0, X2: 3, Y1: 0, Y2: 0}, 0, 0, Flesh)
	if expected := []byte{1, 7, 2, 7}; !bytes.Equal(dst.Pix, expected) {
		t.Fatalf("expected(%v) != actual(%v)", expected, dst.Pix)
	}

	Copy(src, dst, Box{X1: 0, X2: 3, Y1: 0, Y2: 0}, 0, 0, NoTransparency)
	if !bytes.Equal(dst.Pix, src.Pix) {
		t.Fatalf("expected(%v) != actual(%v)", src.Pix, dst.Pix)
	}
}

func TestCopyInclusiveBox(t *testing.T) {
	src := pattern(8, 8, 1)
	dst := New(8, 8)
	Copy(src, dst, Box{X1: 2, X2: 4, Y1: 1, Y2: 1}, 3, 5, NoTransparency)

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			var expected byte
			if y == 1 && x >= 2 && x <= 4 {
				expected = src.At(3+x-2, 5)
			}
			if actual := dst.At(x, y); actual != expected {
				t.Fatalf("(%d,%d): expected(%d) != actual(%d)", x, y, expected, actual)
			}
		}
	}
}

// copy one pixel at a time with every bound checked
func referenceCopy(src, dst *Bitmap, box Box, srcX, srcY int, transparent Color) {
	for y := box.Y1; y <= box.Y2; y++ {
		for x := box.X1; x <= box.X2; x++ {
			if x < 0 || y < 0 || x >= dst.Width || y >= dst.Height {
				continue
			}
			sx, sy := srcX+x-box.X1, srcY+y-box.Y1
			if sx < 0 || sy < 0 || sx >= src.Width || sy >= src.Height {
				continue
			}
			c := src.At(sx, sy)
			if transparent != NoTransparency && c == byte(transparent) {
				continue
			}
			dst.Set(x, y, c)
		}
	}
}

func TestCopyClipsToViewport(t *testing.T) {
	rnd := rand.New(rand.NewSource(558))
	src := pattern(96, 64, 2)

	for i := 0; i < 2000; i++ {
		box := Box{X1: rnd.Intn(400) - 100, Y1: rnd.Intn(300) - 100}
		box.X2 = box.X1 + rnd.Intn(160)
		box.Y2 = box.Y1 + rnd.Intn(120)
		srcX, srcY := rnd.Intn(100)-2, rnd.Intn(70)-2
		transparent := Color(rnd.Intn(17) - 1)

		actual := pattern(224, 136, int64(i))
		expected := actual.Clone()

		Copy(src, actual, box, srcX, srcY, transparent)
		referenceCopy(src, expected, box, srcX, srcY, transparent)

		if !bytes.Equal(actual.Pix, expected.Pix) {
			t.Fatalf("%d: box %+v src (%d,%d) key %d: clipped copy differs", i, box, srcX, srcY, transparent)
		}
	}
}

func TestFlipInvolution(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {7, 3}, {16, 5}, {224, 136}} {
		b := pattern(size[0], size[1], int64(size[0]))
		orig := b.Clone()

		FlipH(b)
		if size[0] > 1 && b.At(0, 0) != orig.At(size[0]-1, 0) {
			t.Errorf("%v: horizontal flip did not mirror row", size)
		}
		FlipH(b)
		if !bytes.Equal(b.Pix, orig.Pix) {
			t.Errorf("%v: FlipH twice changed pixels", size)
		}

		FlipV(b)
		FlipV(b)
		if !bytes.Equal(b.Pix, orig.Pix) {
			t.Errorf("%v: FlipV twice changed pixels", size)
		}
	}
}

func TestFlippedHLeavesSource(t *testing.T) {
	b := &Bitmap{Width: 3, Height: 1, Pix: []byte{1, 2, 3}}
	f := FlippedH(b)
	if !bytes.Equal(b.Pix, []byte{1, 2, 3}) || !bytes.Equal(f.Pix, []byte{3, 2, 1}) {
		t.Fatalf("unexpected flip: src %v, flipped %v", b.Pix, f.Pix)
	}
}

func TestScaleRoundsWidth(t *testing.T) {
	src := pattern(32, 16, 3)
	for w := 1; w <= 8; w++ {
		if actual := Scale(src, w, 4, nil).Width; actual != 8 {
			t.Errorf("%d: expected(8) != actual(%d)", w, actual)
		}
	}
	for _, c := range []struct{ in, out int }{{9, 16}, {16, 16}, {17, 24}, {42, 48}} {
		if actual := Scale(src, c.in, 4, nil).Width; actual != c.out {
			t.Errorf("%d: expected(%d) != actual(%d)", c.in, c.out, actual)
		}
	}
}

func TestScaleNearestNeighbour(t *testing.T) {
	src := New(16, 2)
	for x := 0; x < 16; x++ {
		src.Set(x, 0, byte(x))
		src.Set(x, 1, byte(15-x))
	}
	dst := Scale(src, 8, 1, nil)
	for x := 0; x < 8; x++ {
		if actual := dst.At(x, 0); actual != byte(2*x) {
			t.Fatalf("%d: expected(%d) != actual(%d)", x, 2*x, actual)
		}
	}
}

func TestScaleRemap(t *testing.T) {
	src := &Bitmap{Width: 8, Height: 1, Pix: []byte{0, 1, 2, 3, 4, 5, 6, 7}}
	remap := Remap{0, 120, 10, 30, 40, 30, 0, 60, 30, 90, 100, 110, 0, 20, 140, 130}
	dst := Scale(src, 8, 1, &remap)
	if expected := []byte{0, 12, 1, 3, 4, 3, 0, 6}; !bytes.Equal(dst.Pix, expected) {
		t.Fatalf("expected(%v) != actual(%v)", expected, dst.Pix)
	}
}

func TestScaledDimension(t *testing.T) {
	cases := []struct{ dim, scale, expected int }{
		{64, 16, 32},
		{64, 20, 40},
		{51, 16, 25},
		{71, 20, 44},
		{10, 32, 10},
	}
	for i, c := range cases {
		if actual := ScaledDimension(c.dim, c.scale); actual != c.expected {
			t.Errorf("%d: expected(%d) != actual(%d)", i, c.expected, actual)
		}
	}
}

func TestFillBoxClips(t *testing.T) {
	b := New(4, 4)
	FillBox(b, Box{X1: -3, X2: 1, Y1: 2, Y2: 9}, Gold)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			expected := byte(0)
			if x <= 1 && y >= 2 {
				expected = byte(Gold)
			}
			if actual := b.At(x, y); actual != expected {
				t.Fatalf("(%d,%d): expected(%d) != actual(%d)", x, y, expected, actual)
			}
		}
	}
}

func TestBoxUnion(t *testing.T) {
	a := Box{X1: 5, X2: 10, Y1: 5, Y2: 10}
	b := Box{X1: 0, X2: 6, Y1: 8, Y2: 20}
	if u := a.Union(b); u != (Box{X1: 0, X2: 10, Y1: 5, Y2: 20}) {
		t.Fatalf("unexpected union %+v", u)
	}
	empty := Box{X1: 255}
	if u := empty.Union(a); u != a {
		t.Fatalf("unexpected union with empty %+v", u)
	}
}
