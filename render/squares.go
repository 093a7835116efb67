package render

import (
	"github.com/32bitkid/dm/blit"
	"github.com/32bitkid/dm/cache"
	"github.com/32bitkid/dm/dungeon"
)

type spriteSource int

const (
	fromNone spriteSource = iota
	fromWall
	fromStairs
	fromNative
)

// sprite is a bitmap of the level graphics or of the graphics file placed
// through a frame.
type sprite struct {
	from     spriteSource
	index    int
	mirrored bool
	frame    Frame
}

func wallSprite(piece int, f Frame) sprite   { return sprite{from: fromWall, index: piece, frame: f} }
func stairsSprite(piece int, f Frame) sprite { return sprite{from: fromStairs, index: piece, frame: f} }
func nativeSprite(item int, f Frame) sprite  { return sprite{from: fromNative, index: item, frame: f} }

func (s sprite) flipped() sprite {
	s.mirrored = true
	return s
}

func (c *Context) spriteBitmap(s sprite) (*blit.Bitmap, int) {
	lvl := c.level
	switch s.from {
	case fromWall:
		if s.mirrored {
			return lvl.mirrored[s.index], lvl.wallItem + s.index
		}
		return c.wall(s.index), lvl.wallItem + s.index
	case fromStairs:
		if s.mirrored {
			return lvl.mirroredStairs[s.index], lvl.stairsItem + s.index
		}
		return lvl.stairs[s.index], lvl.stairsItem + s.index
	case fromNative:
		b := c.native(s.index)
		if s.mirrored {
			b = blit.FlippedH(b)
		}
		return b, s.index
	}
	return nil, -1
}

func (c *Context) drawSprite(op Op, view ViewSquare, s sprite) {
	if s.from == fromNone {
		return
	}
	b, item := c.spriteBitmap(s)
	c.drawFrame(op, view, item, b, s.frame, blit.Flesh)
}

// noEntities marks an element whose square runs no entity pass.
const noEntities = -1

// squareGeometry is everything that differs between the view squares of
// the same kind. View squares on the right lane mirror the natives of
// the left lane.
type squareGeometry struct {
	view           ViewSquare
	forward, right int

	wall       int
	opaqueWall bool
	// Wall ornament views, or -1.
	sideOrnament, frontOrnament int
	floorView                   int

	stairsUp, stairsDown         sprite
	stairsSideUp, stairsSideDown sprite
	// sideOrder is the cell order of door and stairs sides.
	sideOrder int

	pit, invisiblePit sprite
	ceilingPit        sprite
	order             int

	doorPass1, doorPass2 int
	doorPieces           []sprite
	// doorButton is a door button view, or -1.
	doorButton   int
	doorDepth    int
	doorOrnament int
	doorFrames   *doorFrames

	// draw replaces drawSquare for the squares beside and under the party.
	draw func(c *Context, g *squareGeometry, a dungeon.SquareAspect, dir dungeon.Direction, x, y int)
}

var squareGeometries = [12]squareGeometry{
	D3L: {
		view: D3L, forward: 3, right: -1,
		wall: wallD3, sideOrnament: viewWallD3LRight, frontOrnament: viewWallD3LFront, floorView: viewFloorD3L,
		stairsUp:   stairsSprite(stairsUpFrontD3L, frameStairsUpFrontD3L),
		stairsDown: stairsSprite(stairsDownFrontD3L, frameStairsDownFrontD3L),
		sideOrder:  orderFrontLeftFrontRightBackRight,
		pit:        nativeSprite(nativeFloorPitD3L, frameFloorPitD3L),
		order:      orderLeftColumnFirst,
		doorPass1:  orderDoorPass1FrontLeftFrontRight, doorPass2: orderDoorPass2BackLeftBackRight,
		doorPieces: []sprite{wallSprite(wallDoorFrameLeftD3L, frameDoorFrameLeftD3L)},
		doorButton: -1, doorDepth: doorD3, doorOrnament: viewDoorOrnamentD3, doorFrames: &doorFramesD3L,
	},
	D3R: {
		view: D3R, forward: 3, right: 1,
		wall: wallD3, sideOrnament: viewWallD3RLeft, frontOrnament: viewWallD3RFront, floorView: viewFloorD3R,
		stairsUp:   stairsSprite(stairsUpFrontD3L, frameStairsUpFrontD3R).flipped(),
		stairsDown: stairsSprite(stairsDownFrontD3L, frameStairsDownFrontD3R).flipped(),
		sideOrder:  orderFrontRightFrontLeftBackLeft,
		pit:        nativeSprite(nativeFloorPitD3L, frameFloorPitD3R).flipped(),
		order:      orderRightColumnFirst,
		doorPass1:  orderDoorPass1FrontRightFrontLeft, doorPass2: orderDoorPass2BackRightBackLeft,
		doorPieces: []sprite{wallSprite(wallDoorFrameLeftD3L, frameDoorFrameRightD3R).flipped()},
		doorButton: viewDoorButtonD3R, doorDepth: doorD3, doorOrnament: viewDoorOrnamentD3, doorFrames: &doorFramesD3R,
	},
	D3C: {
		view: D3C, forward: 3,
		wall: wallD3, opaqueWall: true, sideOrnament: -1, frontOrnament: viewWallD3CFront, floorView: viewFloorD3C,
		stairsUp:   stairsSprite(stairsUpFrontD3C, frameStairsUpFrontD3C),
		stairsDown: stairsSprite(stairsDownFrontD3C, frameStairsDownFrontD3C),
		sideOrder:  noEntities,
		pit:        nativeSprite(nativeFloorPitD3C, frameFloorPitD3C),
		order:      orderLeftColumnFirst,
		doorPass1:  orderDoorPass1FrontLeftFrontRight, doorPass2: orderDoorPass2BackLeftBackRight,
		doorPieces: []sprite{
			wallSprite(wallDoorFrameLeftD3C, frameDoorFrameLeftD3C),
			wallSprite(wallDoorFrameLeftD3C, frameDoorFrameRightD3C).flipped(),
		},
		doorButton: viewDoorButtonD3C, doorDepth: doorD3, doorOrnament: viewDoorOrnamentD3, doorFrames: &doorFramesD3C,
	},
	D2L: {
		view: D2L, forward: 2, right: -1,
		wall: wallD2, sideOrnament: viewWallD2LRight, frontOrnament: viewWallD2LFront, floorView: viewFloorD2L,
		stairsUp:       stairsSprite(stairsUpFrontD2L, frameStairsUpFrontD2L),
		stairsDown:     stairsSprite(stairsDownFrontD2L, frameStairsDownFrontD2L),
		stairsSideUp:   stairsSprite(stairsSideD2L, frameStairsSideD2L),
		stairsSideDown: stairsSprite(stairsSideD2L, frameStairsSideD2L),
		sideOrder:      orderFrontRightBackLeftBackRight,
		pit:            nativeSprite(nativeFloorPitD2L, frameFloorPitD2L),
		invisiblePit:   nativeSprite(nativeInvisiblePitD2L, frameFloorPitD2L),
		ceilingPit:     nativeSprite(nativeCeilingPitD2L, frameCeilingPitD2L),
		order:          orderLeftColumnFirst,
		doorPass1:      orderDoorPass1FrontLeftFrontRight, doorPass2: orderDoorPass2BackLeftBackRight,
		doorPieces:     []sprite{wallSprite(wallDoorFrameTopD2, frameDoorFrameTopD2L)},
		doorButton:     -1, doorDepth: doorD2, doorOrnament: viewDoorOrnamentD2, doorFrames: &doorFramesD2L,
	},
	D2R: {
		view: D2R, forward: 2, right: 1,
		wall: wallD2, sideOrnament: viewWallD2RLeft, frontOrnament: viewWallD2RFront, floorView: viewFloorD2R,
		stairsUp:       stairsSprite(stairsUpFrontD2L, frameStairsUpFrontD2R).flipped(),
		stairsDown:     stairsSprite(stairsDownFrontD2L, frameStairsDownFrontD2R).flipped(),
		stairsSideUp:   stairsSprite(stairsSideD2L, frameStairsSideD2R).flipped(),
		stairsSideDown: stairsSprite(stairsSideD2L, frameStairsSideD2R).flipped(),
		sideOrder:      orderFrontLeftBackRightBackLeft,
		pit:            nativeSprite(nativeFloorPitD2L, frameFloorPitD2R).flipped(),
		invisiblePit:   nativeSprite(nativeInvisiblePitD2L, frameFloorPitD2R).flipped(),
		ceilingPit:     nativeSprite(nativeCeilingPitD2L, frameCeilingPitD2R).flipped(),
		order:          orderRightColumnFirst,
		doorPass1:      orderDoorPass1FrontRightFrontLeft, doorPass2: orderDoorPass2BackRightBackLeft,
		doorPieces:     []sprite{wallSprite(wallDoorFrameTopD2, frameDoorFrameTopD2R)},
		doorButton:     -1, doorDepth: doorD2, doorOrnament: viewDoorOrnamentD2, doorFrames: &doorFramesD2R,
	},
	D2C: {
		view: D2C, forward: 2,
		wall: wallD2, opaqueWall: true, sideOrnament: -1, frontOrnament: viewWallD2CFront, floorView: viewFloorD2C,
		stairsUp:     stairsSprite(stairsUpFrontD2C, frameStairsUpFrontD2C),
		stairsDown:   stairsSprite(stairsDownFrontD2C, frameStairsDownFrontD2C),
		sideOrder:    noEntities,
		pit:          nativeSprite(nativeFloorPitD2C, frameFloorPitD2C),
		invisiblePit: nativeSprite(nativeInvisiblePitD2C, frameFloorPitD2C),
		ceilingPit:   nativeSprite(nativeCeilingPitD2C, frameCeilingPitD2C),
		order:        orderLeftColumnFirst,
		doorPass1:    orderDoorPass1FrontLeftFrontRight, doorPass2: orderDoorPass2BackLeftBackRight,
		doorPieces: []sprite{
			wallSprite(wallDoorFrameTopD2, frameDoorFrameTopD2C),
			wallSprite(wallDoorFrameLeftD2C, frameDoorFrameLeftD2C),
			wallSprite(wallDoorFrameLeftD2C, frameDoorFrameRightD2C).flipped(),
		},
		doorButton: viewDoorButtonD2C, doorDepth: doorD2, doorOrnament: viewDoorOrnamentD2, doorFrames: &doorFramesD2C,
	},
	D1L: {
		view: D1L, forward: 1, right: -1,
		wall: wallD1, sideOrnament: viewWallD1LRight, frontOrnament: -1, floorView: viewFloorD1L,
		stairsUp:       stairsSprite(stairsUpFrontD1L, frameStairsUpFrontD1L),
		stairsDown:     stairsSprite(stairsDownFrontD1L, frameStairsDownFrontD1L),
		stairsSideUp:   stairsSprite(stairsUpSideD1L, frameStairsUpSideD1L),
		stairsSideDown: stairsSprite(stairsDownSideD1L, frameStairsDownSideD1L),
		sideOrder:      orderFrontRightBackRight,
		pit:            nativeSprite(nativeFloorPitD1L, frameFloorPitD1L),
		invisiblePit:   nativeSprite(nativeInvisiblePitD1L, frameFloorPitD1L),
		ceilingPit:     nativeSprite(nativeCeilingPitD1L, frameCeilingPitD1L),
		order:          orderFrontRightBackRight,
		doorPass1:      orderDoorPass1FrontRight, doorPass2: orderDoorPass2BackRight,
		doorPieces:     []sprite{wallSprite(wallDoorFrameTopD1, frameDoorFrameTopD1L)},
		doorButton:     -1, doorDepth: doorD1, doorOrnament: viewDoorOrnamentD1, doorFrames: &doorFramesD1L,
	},
	D1R: {
		view: D1R, forward: 1, right: 1,
		wall: wallD1, sideOrnament: viewWallD1RLeft, frontOrnament: -1, floorView: viewFloorD1R,
		stairsUp:       stairsSprite(stairsUpFrontD1L, frameStairsUpFrontD1R).flipped(),
		stairsDown:     stairsSprite(stairsDownFrontD1L, frameStairsDownFrontD1R).flipped(),
		stairsSideUp:   stairsSprite(stairsUpSideD1L, frameStairsUpSideD1R).flipped(),
		stairsSideDown: stairsSprite(stairsDownSideD1L, frameStairsDownSideD1R).flipped(),
		sideOrder:      orderFrontLeftBackLeft,
		pit:            nativeSprite(nativeFloorPitD1L, frameFloorPitD1R).flipped(),
		invisiblePit:   nativeSprite(nativeInvisiblePitD1L, frameFloorPitD1R).flipped(),
		ceilingPit:     nativeSprite(nativeCeilingPitD1L, frameCeilingPitD1R).flipped(),
		order:          orderFrontLeftBackLeft,
		doorPass1:      orderDoorPass1FrontLeft, doorPass2: orderDoorPass2BackLeft,
		doorPieces:     []sprite{wallSprite(wallDoorFrameTopD1, frameDoorFrameTopD1R)},
		doorButton:     -1, doorDepth: doorD1, doorOrnament: viewDoorOrnamentD1, doorFrames: &doorFramesD1R,
	},
	D1C: {
		view: D1C, forward: 1,
		wall: wallD1, opaqueWall: true, sideOrnament: -1, frontOrnament: viewWallD1CFront, floorView: viewFloorD1C,
		stairsUp:     stairsSprite(stairsUpFrontD1C, frameStairsUpFrontD1C),
		stairsDown:   stairsSprite(stairsDownFrontD1C, frameStairsDownFrontD1C),
		sideOrder:    noEntities,
		pit:          nativeSprite(nativeFloorPitD1C, frameFloorPitD1C),
		invisiblePit: nativeSprite(nativeInvisiblePitD1C, frameFloorPitD1C),
		ceilingPit:   nativeSprite(nativeCeilingPitD1C, frameCeilingPitD1C),
		order:        orderLeftColumnFirst,
		doorPass1:    orderDoorPass1FrontLeftFrontRight, doorPass2: orderDoorPass2BackLeftBackRight,
		doorPieces: []sprite{
			wallSprite(wallDoorFrameTopD1, frameDoorFrameTopD1C),
			wallSprite(wallDoorFrameLeftD1C, frameDoorFrameLeftD1C),
			wallSprite(wallDoorFrameLeftD1C, frameDoorFrameRightD1C).flipped(),
		},
		doorButton: viewDoorButtonD1C, doorDepth: doorD1, doorOrnament: viewDoorOrnamentD1, doorFrames: &doorFramesD1C,
	},
	D0L: {view: D0L, right: -1, wall: wallD0L, draw: drawSquareD0L},
	D0R: {view: D0R, right: 1, wall: wallD0R, draw: drawSquareD0R},
	D0C: {view: D0C, draw: drawSquareD0C},
}

// drawSquare draws the square at (x, y) seen at g.view: its static
// geometry, then what lies or stands on it, then the teleporter field.
func (c *Context) drawSquare(g *squareGeometry, dir dungeon.Direction, x, y int) {
	a := c.m.SquareAspect(dir, x, y)
	if g.draw != nil {
		g.draw(c, g, a, dir, x, y)
		return
	}
	if g.view == D1C {
		c.facing = Facing{SquareAhead: a.Element}
	}

	order := noEntities
	eye := false
	switch a.Element {
	case dungeon.StairsFront:
		if a.StairsUp {
			c.drawSprite(OpStairs, g.view, g.stairsUp)
		} else {
			c.drawSprite(OpStairs, g.view, g.stairsDown)
		}
		order = c.drawFloorAndCeiling(g, a, x, y, g.order)
	case dungeon.Wall:
		eye = g.view == D1C && c.party.ThievesEye()
		if eye {
			c.saveThievesEye()
		}
		order = c.drawWall(g, a)
	case dungeon.DoorSide, dungeon.StairsSide:
		if g.sideOrder == noEntities {
			break
		}
		if a.Element == dungeon.StairsSide {
			if a.StairsUp {
				c.drawSprite(OpStairs, g.view, g.stairsSideUp)
			} else {
				c.drawSprite(OpStairs, g.view, g.stairsSideDown)
			}
		}
		order = c.drawFloorAndCeiling(g, a, x, y, g.sideOrder)
	case dungeon.DoorFront:
		c.drawFloorOrnament(a, g.floorView)
		c.cthulhu(a.FirstThing, dir, x, y, g.view, g.doorPass1)
		for _, p := range g.doorPieces {
			c.drawSprite(OpDoorFrame, g.view, p)
		}
		door := c.things.Door(a.Door)
		if door.Button && g.doorButton >= 0 {
			c.drawDoorButton(g.view, g.doorButton)
		}
		c.drawDoor(g.view, door, a.DoorState, g.doorDepth, g.doorOrnament, g.doorFrames)
		order = g.doorPass2
	case dungeon.Pit:
		if a.PitInvisible {
			c.drawSprite(OpPit, g.view, g.invisiblePit)
		} else {
			c.drawSprite(OpPit, g.view, g.pit)
		}
		fallthrough
	case dungeon.Corridor, dungeon.Teleporter:
		// Floor ornaments are drawn over open pits too.
		order = c.drawFloorAndCeiling(g, a, x, y, g.order)
	}

	if order != noEntities {
		c.cthulhu(a.FirstThing, dir, x, y, g.view, order)
	}
	if eye {
		c.restoreThievesEye()
	}
	c.drawTeleporterField(g.view, a)
}

func (c *Context) drawFloorAndCeiling(g *squareGeometry, a dungeon.SquareAspect, x, y, order int) int {
	c.drawFloorOrnament(a, g.floorView)
	c.drawCeilingPit(g.view, g.ceilingPit, x, y)
	return order
}

// drawWall draws a wall panel with its ornaments and returns the cell
// order of the alcove when the front ornament is one.
func (c *Context) drawWall(g *squareGeometry, a dungeon.SquareAspect) int {
	transparent := blit.Flesh
	if g.opaqueWall {
		transparent = blit.NoTransparency
	}
	c.drawFrame(OpWall, g.view, c.level.wallItem+g.wall, c.wall(g.wall), frameWalls[g.view], transparent)

	if g.sideOrnament >= 0 {
		side := a.RightWallOrnament
		if g.view.Lane() == laneRight {
			side = a.LeftWallOrnament
		}
		c.drawWallOrnament(side, g.sideOrnament, a)
	}
	if g.frontOrnament >= 0 && c.drawWallOrnament(a.FrontWallOrnament, g.frontOrnament, a) {
		return orderAlcove
	}
	return noEntities
}

// drawCeilingPit draws the hole of an open pit in the level above.
func (c *Context) drawCeilingPit(view ViewSquare, s sprite, x, y int) {
	if s.from == fromNone || !c.m.OpenPitAbove(x, y) {
		return
	}
	c.drawSprite(OpCeilingPit, view, s)
}

func (c *Context) drawTeleporterField(view ViewSquare, a dungeon.SquareAspect) {
	if a.Element == dungeon.Teleporter && a.TeleporterVisible {
		c.drawField(view, fieldAspects[view], frameWalls[view].Box)
	}
}

// saveThievesEye keeps the part of the viewport behind the wall ahead,
// with the hole punched in it, so it can be shown through the wall.
func (c *Context) saveThievesEye() {
	eye := blit.New(boxThievesEyeVisibleArea.Width(), boxThievesEyeVisibleArea.Height())
	blit.Copy(c.viewport, eye, eye.Bounds(), boxThievesEyeVisibleArea.X1, boxThievesEyeVisibleArea.Y1, blit.NoTransparency)
	blit.Copy(c.native(nativeHoleInWall), eye, eye.Bounds(), 0, 0, blit.Flesh)
	c.cache.Put(cache.ThievesEye, eye)
}

func (c *Context) restoreThievesEye() {
	eye, ok := c.cache.Get(cache.ThievesEye)
	if !ok {
		return
	}
	c.draw(OpThievesEye, D1C, nativeHoleInWall, eye, boxThievesEyeVisibleArea, 0, 0, blit.Gold)
	c.cache.Release(cache.ThievesEye)
}

func drawSquareD0L(c *Context, g *squareGeometry, a dungeon.SquareAspect, dir dungeon.Direction, x, y int) {
	switch a.Element {
	case dungeon.StairsSide:
		if a.StairsUp {
			c.drawSprite(OpStairs, g.view, stairsSprite(stairsSideD0L, frameStairsSideD0L))
		}
	case dungeon.Wall:
		c.drawFrame(OpWall, g.view, c.level.wallItem+g.wall, c.wall(g.wall), frameWalls[g.view], blit.Flesh)
	}
}

func drawSquareD0R(c *Context, g *squareGeometry, a dungeon.SquareAspect, dir dungeon.Direction, x, y int) {
	switch a.Element {
	case dungeon.StairsSide:
		c.drawSprite(OpStairs, g.view, stairsSprite(stairsSideD0L, frameStairsSideD0R).flipped())
		return
	case dungeon.Wall:
		c.drawFrame(OpWall, g.view, c.level.wallItem+g.wall, c.wall(g.wall), frameWalls[g.view], blit.Flesh)
		return
	case dungeon.Pit:
		pit := nativeFloorPitD0L
		if a.PitInvisible {
			pit = nativeInvisiblePitD0L
		}
		c.drawSprite(OpPit, g.view, nativeSprite(pit, frameFloorPitD0R).flipped())
		fallthrough
	case dungeon.Corridor, dungeon.DoorSide, dungeon.Teleporter:
		c.drawCeilingPit(g.view, nativeSprite(nativeCeilingPitD0L, frameCeilingPitD0R).flipped(), x, y)
		c.cthulhu(a.FirstThing, dir, x, y, g.view, orderFrontLeft)
	}
	c.drawTeleporterField(g.view, a)
}

func drawSquareD0C(c *Context, g *squareGeometry, a dungeon.SquareAspect, dir dungeon.Direction, x, y int) {
	switch a.Element {
	case dungeon.DoorSide:
		frame := c.level.walls[wallDoorFrameFront]
		if c.party.ThievesEye() {
			frame = frame.Clone()
			srcX := frameDoorFrameD0C.Box.X1 - boxThievesEyeVisibleArea.X1
			blit.Copy(c.native(nativeHoleInWall), frame, boxThievesEyeHoleInDoorFrame, srcX, 0, blit.Gold)
		}
		c.drawFrame(OpDoorFrame, g.view, c.level.wallItem+wallDoorFrameFront, frame, frameDoorFrameD0C, blit.Flesh)
	case dungeon.StairsFront:
		if a.StairsUp {
			c.drawSprite(OpStairs, g.view, stairsSprite(stairsUpFrontD0CLeft, frameStairsUpFrontD0L))
			c.drawSprite(OpStairs, g.view, stairsSprite(stairsUpFrontD0CLeft, frameStairsUpFrontD0R).flipped())
		} else {
			c.drawSprite(OpStairs, g.view, stairsSprite(stairsDownFrontD0CLeft, frameStairsDownFrontD0L))
			c.drawSprite(OpStairs, g.view, stairsSprite(stairsDownFrontD0CLeft, frameStairsDownFrontD0R).flipped())
		}
	case dungeon.Pit:
		pit := nativeFloorPitD0C
		if a.PitInvisible {
			pit = nativeInvisiblePitD0C
		}
		c.drawSprite(OpPit, g.view, nativeSprite(pit, frameFloorPitD0C))
	}
	c.drawCeilingPit(g.view, nativeSprite(nativeCeilingPitD0C, frameCeilingPitD0C), x, y)
	c.cthulhu(a.FirstThing, dir, x, y, g.view, orderFrontLeftFrontRight)
	c.drawTeleporterField(g.view, a)
}
