package main

import (
	"bufio"
	"flag"
	"os"

	"github.com/32bitkid/dm"
	"github.com/32bitkid/dm/blit"
	"github.com/32bitkid/dm/render"
	"github.com/32bitkid/dm/resource"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// syntheticItems makes a payload for every item of a graphics file. Each
// bitmap the renderer knows the size of gets that size and a banded test
// pattern; the other bitmaps are 16×16.
func syntheticItems() ([][]byte, error) {
	payloads := make([][]byte, resource.FontItem+1)
	for i := range payloads {
		switch resource.KindOf(i) {
		case resource.KindBitmap:
			w, h, ok := render.NativeSize(i)
			if !ok {
				w, h = 16, 16
			}
			payloads[i] = resource.EncodeBitmap(testPattern(i, w, h))
		case resource.KindFont:
			font, err := resource.EncodeFont(blit.New(resource.FontGlyphs*resource.FontGlyphWidth, resource.FontGlyphHeight))
			if err != nil {
				return nil, err
			}
			payloads[i] = font
		}
	}
	return payloads, nil
}

// testPattern draws diagonal bands with a transparent border, so every
// sprite shows its outline in the rendered view.
func testPattern(item, w, h int) *blit.Bitmap {
	b := blit.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := byte(1 + (item+(x+y)/4)%15)
			if c == byte(blit.Flesh) {
				c = byte(blit.Gold) + 2
			}
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				c = byte(blit.Flesh)
			}
			b.Set(x, y, c)
		}
	}
	return b
}

func runGen(log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	out := fs.String("o", "graphics.dat", "output file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	payloads, err := syntheticItems()
	if err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := dm.WriteGraphics(w, payloads); err != nil {
		f.Close()
		return errors.Wrap(err, *out)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return errors.Wrap(err, *out)
	}
	log.Info("graphics written", zap.String("path", *out), zap.Int("items", len(payloads)))
	return f.Close()
}
