package main

import (
	"bufio"
	"flag"
	"image/png"
	"os"

	"github.com/32bitkid/dm/dungeon"
	"github.com/32bitkid/dm/render"
	"github.com/32bitkid/dm/screen"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func parseDirection(s string) (dungeon.Direction, error) {
	switch s {
	case "n", "north":
		return dungeon.North, nil
	case "e", "east":
		return dungeon.East, nil
	case "s", "south":
		return dungeon.South, nil
	case "w", "west":
		return dungeon.West, nil
	}
	return 0, errors.Errorf("unknown direction %q", s)
}

func runRender(log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	var sf sceneFlags
	sf.register(fs)
	out := fs.String("o", "view.png", "output PNG")
	scalerName := fs.String("scaler", "1x1", "output scaler")
	dir := fs.String("dir", "", "facing, the scene's when empty")
	viewportOnly := fs.Bool("viewport", false, "write the viewport instead of the whole screen")
	trace := fs.Bool("trace", false, "log every bitmap drawn")
	if err := fs.Parse(args); err != nil {
		return err
	}

	scaler, err := screen.ScalerNamed(*scalerName)
	if err != nil {
		return err
	}

	var traceFn func(render.Event)
	if *trace {
		traceFn = func(e render.Event) {
			log.Info("draw",
				zap.Stringer("op", e.Op),
				zap.Stringer("view", e.View),
				zap.Int("item", e.Index),
				zap.Any("box", e.Box),
			)
		}
	}
	s, err := sf.open(log, traceFn)
	if err != nil {
		return err
	}
	if *dir != "" {
		if s.scene.dir, err = parseDirection(*dir); err != nil {
			return err
		}
	}
	s.draw()

	img := s.ctx.Screen().Image()
	if *viewportOnly {
		img = s.ctx.Viewport().Paletted(s.ctx.Screen().Middle.Palette())
	}
	img = scaler.Scale(img)

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := png.Encode(w, img); err != nil {
		f.Close()
		return errors.Wrap(err, *out)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return errors.Wrap(err, *out)
	}
	log.Info("frame written",
		zap.String("path", *out),
		zap.Int("x", s.scene.x),
		zap.Int("y", s.scene.y),
		zap.Stringer("dir", s.scene.dir),
		zap.Stringer("ahead", s.ctx.Facing().SquareAhead),
	)
	return f.Close()
}
