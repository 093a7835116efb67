package main

import (
	"flag"
	"fmt"
	"image"

	"github.com/32bitkid/dm/screen"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

// upperHalf draws the top pixel of a cell in the foreground colour and
// the bottom one in the background colour.
const upperHalf = '▀'

func cellColor(img image.Image, x, y int) tcell.Color {
	r, g, b := screen.RGB255(img.At(x, y))
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// blitTerminal paints the viewport of img into the terminal, sampling one
// source pixel per half cell.
func blitTerminal(ts tcell.Screen, img image.Image, status string) {
	cols, rows := ts.Size()
	vb := screen.ViewportBox
	vw, vh := vb.X2-vb.X1+1, vb.Y2-vb.Y1+1

	// Leave a row for the status line.
	cols, lines := max(1, cols), max(1, rows-1)
	step := max(1, (vw+cols-1)/cols, (vh+2*lines-1)/(2*lines))
	ts.Clear()
	for ty := 0; ty*2*step < vh && ty < lines; ty++ {
		for tx := 0; tx*step < vw && tx < cols; tx++ {
			x := vb.X1 + tx*step
			y := vb.Y1 + ty*2*step
			bottom := min(y+step, vb.Y2)
			style := tcell.StyleDefault.
				Foreground(cellColor(img, x, y)).
				Background(cellColor(img, x, bottom))
			ts.SetContent(tx, ty, upperHalf, nil, style)
		}
	}
	for i, r := range status {
		if i >= cols {
			break
		}
		ts.SetContent(i, rows-1, r, nil, tcell.StyleDefault)
	}
	ts.Show()
}

func runView(log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	var sf sceneFlags
	sf.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := sf.open(log, nil)
	if err != nil {
		return err
	}

	ts, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := ts.Init(); err != nil {
		return err
	}
	defer ts.Fini()

	for {
		s.draw()
		f := s.ctx.Facing()
		status := fmt.Sprintf("(%d,%d) %v ahead:%v  arrows move, z/x strafe, +/- light, q quits",
			s.scene.x, s.scene.y, s.scene.dir, f.SquareAhead)
		blitTerminal(ts, s.ctx.Screen().Image(), status)

		switch ev := ts.PollEvent().(type) {
		case *tcell.EventResize:
			ts.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return nil
			case tcell.KeyUp:
				s.scene.step(1, 0)
			case tcell.KeyDown:
				s.scene.step(-1, 0)
			case tcell.KeyLeft:
				s.scene.turn(false)
			case tcell.KeyRight:
				s.scene.turn(true)
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q':
					return nil
				case 'z':
					s.scene.step(0, -1)
				case 'x':
					s.scene.step(0, 1)
				case '+':
					s.ctx.SetPaletteIndex(s.ctx.PaletteIndex() - 1)
				case '-':
					s.ctx.SetPaletteIndex(s.ctx.PaletteIndex() + 1)
				}
			}
			log.Debug("party moved",
				zap.Int("x", s.scene.x),
				zap.Int("y", s.scene.y),
				zap.Stringer("dir", s.scene.dir),
			)
		}
	}
}
