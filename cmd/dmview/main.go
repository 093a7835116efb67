// Command dmview draws dungeon views from a graphics file.
//
//	dmview gen    -o graphics.dat
//	dmview render -g graphics.dat -o view.png [-scaler crt]
//	dmview view   -g graphics.dat
//	dmview stats  -g graphics.dat
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/32bitkid/dm"
	"github.com/32bitkid/dm/cache"
	"github.com/32bitkid/dm/render"
	"go.uber.org/zap"
)

type command struct {
	name  string
	usage string
	run   func(log *zap.Logger, args []string) error
}

var commands = []command{
	{"gen", "write a synthetic graphics file", runGen},
	{"render", "draw one frame to a PNG", runRender},
	{"view", "walk the scene in the terminal", runView},
	{"stats", "show item and derived bitmap statistics", runStats},
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: dmview <command> [flags]")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-8s %s\n", c.name, c.usage)
	}
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func main() {
	verbose := flag.Bool("v", false, "log debug output to stderr")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	log := newLogger(*verbose)
	defer log.Sync()

	name, args := flag.Arg(0), flag.Args()[1:]
	for _, c := range commands {
		if c.name != name {
			continue
		}
		if err := c.run(log, args); err != nil {
			log.Error("command failed", zap.String("command", name), zap.Error(err))
			fmt.Fprintf(os.Stderr, "dmview %s: %v\n", name, err)
			os.Exit(1)
		}
		return
	}
	usage()
	os.Exit(2)
}

// sceneFlags are shared by the commands that draw a scene.
type sceneFlags struct {
	graphics  string
	scene     string
	faithful  bool
	coldCache bool
	light     int
}

func (f *sceneFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.graphics, "g", "graphics.dat", "graphics file")
	fs.StringVar(&f.scene, "scene", "", "scene file, the built-in demo when empty")
	fs.BoolVar(&f.faithful, "faithful", false, "reproduce the 1987 cropping bugs")
	fs.BoolVar(&f.coldCache, "cold", false, "rebuild every derived bitmap on every frame")
	fs.IntVar(&f.light, "light", 0, "light level, 0 (brightest) to 5")
}

// session is a scene ready to be drawn.
type session struct {
	scene *scene
	ctx   *render.Context
	cache *cache.Derived
}

func (f *sceneFlags) open(log *zap.Logger, trace func(render.Event)) (*session, error) {
	root := dm.NewRoot(f.graphics)
	gfx, err := root.Load(dm.Options{Logger: log})
	if err != nil {
		return nil, err
	}

	sc, err := f.loadScene()
	if err != nil {
		return nil, err
	}

	derived := cache.New(cache.Options{AlwaysCold: f.coldCache, Logger: log})
	ctx := render.New(gfx, sc.grid, sc.grid, sc.grid, render.Options{
		Logger:           log,
		Cache:            derived,
		FaithfulCropBugs: f.faithful,
		Trace:            trace,
	})
	if err := ctx.LoadLevel(sc.level); err != nil {
		return nil, err
	}
	ctx.SetPaletteIndex(f.light)
	return &session{scene: sc, ctx: ctx, cache: derived}, nil
}

func (f *sceneFlags) loadScene() (*scene, error) {
	if f.scene == "" {
		return parseScene(strings.NewReader(demoScene))
	}
	file, err := os.Open(f.scene)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return parseScene(file)
}

func (s *session) draw() {
	s.ctx.DrawDungeon(s.scene.dir, s.scene.x, s.scene.y)
}
