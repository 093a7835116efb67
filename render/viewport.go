package render

import (
	"github.com/32bitkid/dm/blit"
	"github.com/32bitkid/dm/dungeon"
	"github.com/32bitkid/dm/screen"
)

// PaletteRequest tells Present which palette the viewport rows should
// use.
type PaletteRequest int

const (
	// PaletteOff gives the viewport rows the top and bottom palette,
	// for screens drawn over the dungeon view.
	PaletteOff PaletteRequest = iota
	PaletteDungeon
	// PaletteAsBefore keeps whatever the previous Present chose.
	PaletteAsBefore
)

func (r PaletteRequest) String() string {
	switch r {
	case PaletteOff:
		return "PaletteRequest(Off)"
	case PaletteDungeon:
		return "PaletteRequest(Dungeon)"
	case PaletteAsBefore:
		return "PaletteRequest(AsBefore)"
	}
	return "PaletteRequest(UNKNOWN)"
}

type paletteState struct {
	// enabled is set while the viewport rows use the dungeon palette.
	enabled bool
	refresh bool
	index   int
	current *screen.Palette16

	topBottom screen.Palette16
}

func newPaletteState() paletteState {
	return paletteState{
		refresh:   true,
		topBottom: screen.DefaultPalettes.MousePointer,
	}
}

// SetPaletteIndex picks the light level of the dungeon palette, from
// screen.PaletteIndexBrightest to screen.PaletteIndexDarkest. It takes
// effect on the next Present.
func (c *Context) SetPaletteIndex(i int) {
	if i < screen.PaletteIndexBrightest {
		i = screen.PaletteIndexBrightest
	}
	if i > screen.PaletteIndexDarkest {
		i = screen.PaletteIndexDarkest
	}
	c.pal.index = i
	c.pal.refresh = true
}

func (c *Context) PaletteIndex() int { return c.pal.index }

// DungeonPaletteEnabled reports whether the viewport rows currently use
// the dungeon palette.
func (c *Context) DungeonPaletteEnabled() bool { return c.pal.enabled }

// Present switches the screen palettes as requested and copies the
// viewport onto the screen.
func (c *Context) Present(req PaletteRequest) {
	p := &c.pal
	if req == PaletteAsBefore {
		req = PaletteOff
		if p.enabled {
			req = PaletteDungeon
		}
	}

	if p.refresh {
		if c.level != nil {
			p.current = &c.level.Palette[p.index]
		} else {
			p.current = &screen.DefaultDungeonView[p.index]
		}
		p.refresh = false
		// Forces the switch below to load the fresh palette.
		p.enabled = req == PaletteOff
	}

	want := req == PaletteDungeon
	if want != p.enabled {
		if want {
			c.screen.SetPalette(p.current, &p.topBottom)
		} else {
			c.screen.SetPalette(&p.topBottom, &p.topBottom)
		}
		p.enabled = want
	}

	blit.Copy(c.viewport, c.screen.Bitmap(), screen.ViewportBox, 0, 0, blit.NoTransparency)
}

// DrawDungeon redraws the view of a party standing on (x, y) facing dir
// and presents it. LoadLevel must have been called.
func (c *Context) DrawDungeon(dir dungeon.Direction, x, y int) {
	c.resetClickable()

	lvl := c.level
	c.flipped = (x+y+int(dir))&1 != 0
	if c.flipped {
		c.drawFrame(OpCeiling, D0C, lvl.floorItem+1, lvl.ceiling, frameCeiling, blit.Flesh)
		c.drawFrame(OpFloor, D0C, lvl.floorItem, lvl.flippedFloor, frameFloor, blit.Flesh)
	} else {
		c.drawFrame(OpCeiling, D0C, lvl.floorItem+1, lvl.flippedCeiling, frameCeiling, blit.Flesh)
		c.drawFrame(OpFloor, D0C, lvl.floorItem, lvl.floor, frameFloor, blit.Flesh)
	}

	if c.m.RelativeSquareType(dir, 3, -2, x, y) == dungeon.Wall {
		c.drawFrame(OpWall, D3L, lvl.wallItem+wallD3L2, lvl.walls[wallD3L2], frameWallD3L2, blit.Flesh)
	}
	if c.m.RelativeSquareType(dir, 3, 2, x, y) == dungeon.Wall {
		c.drawFrame(OpWall, D3R, lvl.wallItem+wallD3L2, lvl.mirrored[wallD3L2], frameWallD3R2, blit.Flesh)
	}

	for _, peek := range [...]struct {
		view  ViewSquare
		right int
	}{{D4L, -1}, {D4R, 1}, {D4C, 0}} {
		px, py := dungeon.Move(dir, 4, peek.right, x, y)
		c.cthulhu(c.m.FirstThing(px, py), dir, px, py, peek.view, orderFrontLeft)
	}

	for _, view := range drawOrder {
		g := &squareGeometries[view]
		sx, sy := dungeon.Move(dir, g.forward, g.right, x, y)
		c.drawSquare(g, dir, sx, sy)
	}

	c.flipped = false

	req := PaletteDungeon
	if c.party.AtEntrance() {
		req = PaletteOff
	}
	c.Present(req)
}

// drawOrder is farthest row first, sides before the centre.
var drawOrder = [...]ViewSquare{D3L, D3R, D3C, D2L, D2R, D2C, D1L, D1R, D1C, D0L, D0R, D0C}
