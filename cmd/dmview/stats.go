package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/32bitkid/dm/cache"
	"github.com/32bitkid/dm/dungeon"
	"github.com/32bitkid/dm/render"
	"github.com/aybabtme/uniplot/histogram"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// frameStats are gathered while drawing the scene from every open square
// in every direction.
type frameStats struct {
	frames    int
	perFrame  []float64
	byOp      map[render.Op]int
	itemAreas []float64
	seen      map[int]bool
	cached    int
}

func collectStats(s *session, events *[]render.Event) *frameStats {
	st := &frameStats{byOp: make(map[render.Op]int), seen: make(map[int]bool)}
	sc := s.scene
	startX, startY, startDir := sc.x, sc.y, sc.dir
	for y := 0; y < sc.grid.Height; y++ {
		for x := 0; x < sc.grid.Width; x++ {
			if sq := sc.grid.Square(x, y); sq.Element == dungeon.Wall {
				continue
			}
			for d := dungeon.North; d <= dungeon.West; d++ {
				*events = (*events)[:0]
				sc.x, sc.y, sc.dir = x, y, d
				s.draw()
				st.frames++
				st.perFrame = append(st.perFrame, float64(len(*events)))
				for _, e := range *events {
					st.byOp[e.Op]++
					if !st.seen[e.Index] {
						st.seen[e.Index] = true
						w, h, ok := render.NativeSize(e.Index)
						if ok {
							st.itemAreas = append(st.itemAreas, float64(w*h))
						}
					}
				}
			}
		}
	}
	sc.x, sc.y, sc.dir = startX, startY, startDir

	for i := 0; i < cache.Slots; i++ {
		if _, ok := s.cache.Get(i); ok {
			st.cached++
		}
	}
	return st
}

func (st *frameStats) print(w io.Writer, bins, width int) error {
	fmt.Fprintf(w, "%d frames, %d distinct items, %d derived bitmaps cached\n\n", st.frames, len(st.seen), st.cached)

	for op := render.OpCeiling; op <= render.OpThievesEye; op++ {
		if n, ok := st.byOp[op]; ok {
			fmt.Fprintf(w, "  %-24v %d\n", op, n)
		}
	}

	if len(st.perFrame) == 0 {
		return nil
	}
	fmt.Fprintln(w, "\nbitmaps drawn per frame")
	if err := histogram.Fprint(w, histogram.Hist(bins, st.perFrame), histogram.Linear(width)); err != nil {
		return errors.Wrap(err, "per frame histogram")
	}
	if len(st.itemAreas) == 0 {
		return nil
	}
	fmt.Fprintln(w, "\nnative bitmap area, pixels")
	if err := histogram.Fprint(w, histogram.Hist(bins, st.itemAreas), histogram.Linear(width)); err != nil {
		return errors.Wrap(err, "item area histogram")
	}
	return nil
}

func runStats(log *zap.Logger, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	var sf sceneFlags
	sf.register(fs)
	bins := fs.Int("bins", 8, "histogram bins")
	width := fs.Int("width", 40, "histogram bar width")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var events []render.Event
	s, err := sf.open(log, func(e render.Event) { events = append(events, e) })
	if err != nil {
		return err
	}
	st := collectStats(s, &events)
	log.Debug("stats collected", zap.Int("frames", st.frames), zap.Int("cached", st.cached))
	return st.print(os.Stdout, max(1, *bins), max(1, *width))
}
