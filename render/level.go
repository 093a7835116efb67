package render

import (
	"github.com/32bitkid/dm/blit"
	"github.com/32bitkid/dm/dungeon"
	"github.com/32bitkid/dm/screen"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Global wall ornaments with a meaning of their own.
const (
	ornamentSquareAlcove = 1
	ornamentViAltar      = 2
	ornamentArchedAlcove = 3
	ornamentFountain     = 35
)

const (
	wallOrnamentCount  = 60
	floorOrnamentCount = 9
	doorOrnamentCount  = 12
)

// A map uses at most this many ornaments of each kind. The last
// map-local floor and door slots are taken by footprints and the two
// door masks.
const (
	maxMapWallOrnaments  = 16
	maxMapFloorOrnaments = 15
	maxMapDoorOrnaments  = 15
)

// Map-local door ornament slots of the two door masks.
const (
	doorOrnamentDestroyed  = 15
	doorOrnamentThievesEye = 16
)

const (
	floorSetItems = 2
	wallSetItems  = wallPieces
	stairsItems   = stairsPieces
	doorSetItems  = 3
)

var (
	boxWallBitmapD3 = blit.Box{X1: 0, X2: 115, Y1: 0, Y2: 50}
	boxWallBitmapD2 = blit.Box{X1: 0, X2: 135, Y1: 0, Y2: 70}
)

// LevelGraphics is everything the dungeon view prepares when the party
// enters a map.
type LevelGraphics struct {
	Level dungeon.Level

	// Palette is the dungeon view palette with the colours of the map's
	// creatures replaced.
	Palette screen.DungeonPalette

	// First graphics items of the map's floor, wall and stairs sets.
	floorItem, wallItem, stairsItem int

	floor, ceiling               *blit.Bitmap
	flippedFloor, flippedCeiling *blit.Bitmap

	walls [wallPieces]*blit.Bitmap
	// mirrored are the horizontal mirrors of the wall pieces.
	mirrored [wallPieces]*blit.Bitmap
	// alt replaces the walls on frames drawn with flipped walls. Only
	// the D3, D2, D1, D0L and D0R pieces have one.
	alt [wallPieces]*blit.Bitmap

	stairs         [stairsPieces]*blit.Bitmap
	mirroredStairs [stairsPieces]*blit.Bitmap

	doors     [2][3]*blit.Bitmap
	doorItems [2]int

	// Map-local wall ornament indices, or -1.
	alcoves  []int
	viAltar  int
	fountain int

	creatureD2, creatureD3 blit.Remap
}

func checkOrnaments(kind string, ornaments []int, count, max int) error {
	if len(ornaments) > max {
		return errors.Errorf("map has %d %s ornaments, at most %d fit", len(ornaments), kind, max)
	}
	for i, o := range ornaments {
		if o < 0 || o >= count {
			return errors.Errorf("%s ornament %d of map is %d, not in [0,%d)", kind, i, o, count)
		}
	}
	return nil
}

// LoadLevel prepares the graphics of a map and empties the derived
// bitmap cache.
func (c *Context) LoadLevel(l dungeon.Level) error {
	if err := checkOrnaments("wall", l.WallOrnaments, wallOrnamentCount, maxMapWallOrnaments); err != nil {
		return err
	}
	if err := checkOrnaments("floor", l.FloorOrnaments, floorOrnamentCount, maxMapFloorOrnaments); err != nil {
		return err
	}
	if err := checkOrnaments("door", l.DoorOrnaments, doorOrnamentCount, maxMapDoorOrnaments); err != nil {
		return err
	}
	if l.InscriptionOrnament >= len(l.WallOrnaments) {
		return errors.Errorf("inscription ornament %d not in map's %d wall ornaments", l.InscriptionOrnament, len(l.WallOrnaments))
	}
	for _, typ := range l.CreatureTypes {
		if typ < 0 || typ >= len(creatureAspects) {
			return errors.Errorf("creature type %d not in [0,%d)", typ, len(creatureAspects))
		}
	}
	if l.WallSet < 0 || l.FloorSet < 0 || l.DoorSets[0] < 0 || l.DoorSets[1] < 0 {
		return errors.Errorf("negative graphics set in %+v", l)
	}

	g := &LevelGraphics{Level: l, viAltar: -1, fountain: -1}

	g.floorItem = nativeFirstFloorSet + l.FloorSet*floorSetItems
	g.floor = c.native(g.floorItem)
	g.ceiling = c.native(g.floorItem + 1)
	g.flippedFloor = blit.FlippedH(g.floor)
	g.flippedCeiling = blit.FlippedH(g.ceiling)

	g.wallItem = nativeFirstWallSet + l.WallSet*wallSetItems
	for i := range g.walls {
		g.walls[i] = c.native(g.wallItem + i)
		g.mirrored[i] = blit.FlippedH(g.walls[i])
	}
	g.alt[wallD3] = altWall(g.walls[wallD3], frameWalls[D3C], boxWallBitmapD3, 11)
	g.alt[wallD2] = altWall(g.walls[wallD2], frameWalls[D2C], boxWallBitmapD2, 8)
	g.alt[wallD1] = g.mirrored[wallD1]
	g.alt[wallD0L] = g.mirrored[wallD0R]
	g.alt[wallD0R] = g.mirrored[wallD0L]

	g.stairsItem = nativeFirstStairs + l.WallSet*stairsItems
	for i := range g.stairs {
		g.stairs[i] = c.native(g.stairsItem + i)
		g.mirroredStairs[i] = blit.FlippedH(g.stairs[i])
	}

	for set, ds := range l.DoorSets {
		g.doorItems[set] = nativeFirstDoorSet + ds*doorSetItems
		for depth := range g.doors[set] {
			g.doors[set][depth] = c.native(g.doorItems[set] + depth)
		}
	}

	for i, o := range l.WallOrnaments {
		switch o {
		case ornamentViAltar:
			g.viAltar = i
			g.alcoves = append(g.alcoves, i)
		case ornamentSquareAlcove, ornamentArchedAlcove:
			g.alcoves = append(g.alcoves, i)
		case ornamentFountain:
			g.fountain = i
		}
	}

	g.Palette = screen.DefaultDungeonView
	g.creatureD2 = palChangesCreatureBaseD2
	g.creatureD3 = palChangesCreatureBaseD3
	g.replaceCreatureColor(9, 8)
	g.replaceCreatureColor(10, 12)
	for _, typ := range l.CreatureTypes {
		a := creatureAspects[typ]
		if o := a.replColors & 0xF; o != 0 {
			g.replaceCreatureColor(9, o-1)
		}
		if o := a.replColors >> 4 & 0xF; o != 0 {
			g.replaceCreatureColor(10, o-1)
		}
	}

	c.level = g
	c.cache.Reset()
	c.pal.refresh = true
	c.log.Debug("level graphics loaded",
		zap.Int("wallSet", l.WallSet),
		zap.Int("floorSet", l.FloorSet),
		zap.Ints("wallOrnaments", l.WallOrnaments),
		zap.Ints("creatureTypes", l.CreatureTypes),
	)
	return nil
}

// altWall is the wall shown on flipped frames: the mirror of the native
// shifted so its stones line up with the unflipped side walls.
func altWall(native *blit.Bitmap, f Frame, box blit.Box, srcX int) *blit.Bitmap {
	tmp := blit.FlippedH(native)
	out := blit.New(f.SrcByteWidth<<1, f.SrcHeight)
	blit.Fill(out, blit.Flesh)
	blit.Copy(tmp, out, box, srcX, 0, blit.NoTransparency)
	return out
}

// replaceCreatureColor gives palette entry color the colours of
// replacement r at every light level, and the matching shrunk remaps.
func (g *LevelGraphics) replaceCreatureColor(color, r int) {
	repl := screen.CreatureReplacements[r]
	for i := range g.Palette {
		g.Palette[i][color] = repl.RGB[i]
	}
	g.creatureD2[color] = repl.D2
	g.creatureD3[color] = repl.D3
}

func (g *LevelGraphics) isAlcove(ornament int) bool {
	for _, a := range g.alcoves {
		if a == ornament {
			return true
		}
	}
	return false
}

// wall returns a wall piece, switching to its alternate on flipped frames.
func (c *Context) wall(piece int) *blit.Bitmap {
	if c.flipped && c.level.alt[piece] != nil {
		return c.level.alt[piece]
	}
	return c.level.walls[piece]
}
