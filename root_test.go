package dm

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/32bitkid/dm/blit"
	"github.com/32bitkid/dm/resource"
)

func syntheticPayloads(t *testing.T) [][]byte {
	t.Helper()
	payloads := make([][]byte, resource.FontItem+1)
	for i := range payloads {
		switch resource.KindOf(i) {
		case resource.KindBitmap:
			bmp := blit.New(8+i%5, 1+i%3)
			for k := range bmp.Pix {
				bmp.Pix[k] = byte((i + k) & 0xF)
			}
			payloads[i] = resource.EncodeBitmap(bmp)
		case resource.KindFont:
			payloads[i] = make([]byte, resource.FontGlyphs*resource.FontGlyphHeight)
		default:
			payloads[i] = []byte{0xDE, 0xAD}
		}
	}
	return payloads
}

func writeFile(t *testing.T, payloads [][]byte) string {
	t.Helper()
	var buf bytes.Buffer
	if err := WriteGraphics(&buf, payloads); err != nil {
		t.Fatal(err)
	}
	fn := filepath.Join(t.TempDir(), "graphics.dat")
	if err := os.WriteFile(fn, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestLoad(t *testing.T) {
	root := NewRoot(writeFile(t, syntheticPayloads(t)))
	g, err := root.Load()
	if err != nil {
		t.Fatal(err)
	}

	if g.Len() != resource.FontItem+1 {
		t.Fatalf("expected(%d) != actual(%d)", resource.FontItem+1, g.Len())
	}
	for _, i := range []int{0, 20, 22, 300, 532} {
		bmp := g.Native(i)
		if bmp.Width != 8+i%5 || bmp.Height != 1+i%3 {
			t.Errorf("%d: unexpected size %dx%d", i, bmp.Width, bmp.Height)
		}
		if bmp.Pix[0] != byte(i&0xF) {
			t.Errorf("%d: expected(%d) != actual(%d)", i, i&0xF, bmp.Pix[0])
		}
	}
	if font := g.Native(resource.FontItem); font.Width != 768 {
		t.Errorf("unexpected font width %d", font.Width)
	}
	if g.Has(21) || g.Has(540) {
		t.Error("non-bitmap items must not be loaded")
	}
}

func TestNativePanicsOnMissingItem(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewGraphics(nil).Native(3)
}

func TestLoadErrors(t *testing.T) {
	missing := NewRoot(filepath.Join(t.TempDir(), "missing.dat"))
	if _, err := missing.Load(); err == nil {
		t.Fatal("expected error for missing file")
	}

	fn := writeFile(t, syntheticPayloads(t))
	data, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fn, data[:len(data)-100], 0o644); err != nil {
		t.Fatal(err)
	}
	truncated := NewRoot(fn)
	if _, err := truncated.Load(); err == nil {
		t.Fatal("expected error for truncated file")
	}

	payloads := syntheticPayloads(t)
	payloads[5] = []byte{0, 4, 0, 1, 0xA0}
	corrupt := NewRoot(writeFile(t, payloads))
	if _, err := corrupt.Load(); err == nil {
		t.Fatal("expected error for corrupt item")
	}
}
