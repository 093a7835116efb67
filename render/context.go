// Package render draws the dungeon view: the 224×136 perspective
// viewport of walls, doors, pits, stairs, ornaments and everything lying
// or standing on the twelve visible squares, and presents it on screen.
package render

import (
	"math/rand"

	"github.com/32bitkid/dm/blit"
	"github.com/32bitkid/dm/cache"
	"github.com/32bitkid/dm/dungeon"
	"github.com/32bitkid/dm/screen"
	"go.uber.org/zap"
)

const (
	ViewportWidth  = 224
	ViewportHeight = 136
)

// Random supplies the coin flips of animated doors, fields and
// explosions. *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

type Options struct {
	Logger *zap.Logger
	Random Random
	// Cache holds the derived bitmaps. A new one is made when nil.
	Cache *cache.Derived

	// FaithfulCropBugs reproduces the wrong source offsets used when a
	// flipped object, projectile or explosion is cut by the left edge of
	// the viewport.
	FaithfulCropBugs bool

	// HideFluxcages stops fluxcages from being drawn, as in the endgame.
	HideFluxcages bool

	// Trace, when set, is told about every bitmap drawn into the
	// viewport.
	Trace func(Event)
}

// Facing is what the party sees on the square straight ahead.
type Facing struct {
	SquareAhead dungeon.Element
	Alcove      bool
	ViAltar     bool
	Fountain    bool
}

// Clickable boxes. The first four are the view cells of the square the
// party stands on and the one ahead.
const (
	ClickableAlcove                   = 4
	ClickableDoorButtonOrWallOrnament = 5
	clickableBoxes                    = 6
)

// Context is a dungeon view renderer. It is not safe for concurrent use.
type Context struct {
	gfx    Natives
	cache  *cache.Derived
	log    *zap.Logger
	rnd    Random
	trace  func(Event)
	m      dungeon.Map
	things dungeon.Things
	party  dungeon.Party

	faithful      bool
	hideFluxcages bool

	level *LevelGraphics

	viewport *blit.Bitmap
	screen   *screen.Screen

	// flipped selects the mirrored wall bitmaps for the frame being drawn.
	flipped bool

	clickable [clickableBoxes]blit.Box
	pileTop   [5]dungeon.Thing
	facing    Facing

	// creatureDerived is the first derived slot of each creature type,
	// or -1 when the type does not fit in the cache.
	creatureDerived [len(creatureAspects)]int

	pal paletteState
}

func New(gfx Natives, m dungeon.Map, things dungeon.Things, party dungeon.Party, options ...Options) *Context {
	c := &Context{
		gfx:      gfx,
		log:      zap.NewNop(),
		m:        m,
		things:   things,
		party:    party,
		viewport: blit.New(ViewportWidth, ViewportHeight),
		screen:   screen.NewScreen(),
		pal:      newPaletteState(),
	}
	for _, o := range options {
		if o.Logger != nil {
			c.log = o.Logger
		}
		if o.Random != nil {
			c.rnd = o.Random
		}
		if o.Cache != nil {
			c.cache = o.Cache
		}
		if o.Trace != nil {
			c.trace = o.Trace
		}
		c.faithful = c.faithful || o.FaithfulCropBugs
		c.hideFluxcages = c.hideFluxcages || o.HideFluxcages
	}
	if c.rnd == nil {
		c.rnd = rand.New(rand.NewSource(1))
	}
	if c.cache == nil {
		c.cache = cache.New(cache.Options{Logger: c.log})
	}
	c.layoutCreatures()
	c.resetClickable()
	return c
}

func (c *Context) Viewport() *blit.Bitmap { return c.viewport }
func (c *Context) Screen() *screen.Screen { return c.screen }
func (c *Context) Cache() *cache.Derived  { return c.cache }
func (c *Context) Level() *LevelGraphics  { return c.level }
func (c *Context) Facing() Facing         { return c.facing }

// PileTop is the object on top of the pile in a view cell or the alcove
// ahead in the last drawn frame, or dungeon.None.
func (c *Context) PileTop(viewCell int) dungeon.Thing {
	if viewCell < 0 || viewCell >= len(c.pileTop) {
		return dungeon.None
	}
	return c.pileTop[viewCell]
}

// ClickableBoxes are the viewport areas of the last drawn frame that
// react to the mouse. An unused box has X1 set to 255.
func (c *Context) ClickableBoxes() [clickableBoxes]blit.Box { return c.clickable }

func (c *Context) resetClickable() {
	for i := range c.clickable {
		c.clickable[i] = blit.Box{X1: 255}
	}
	for i := range c.pileTop {
		c.pileTop[i] = dungeon.None
	}
}

// layoutCreatures assigns each creature type a run of derived slots:
// two for the front at D3 and D2, two per side, back and attack sprite,
// and three per additional front sprite.
func (c *Context) layoutCreatures() {
	next := cache.FirstCreature
	for typ := range c.creatureDerived {
		graphic := c.things.CreatureInfo(typ).Graphic
		n := 2
		if graphic&dungeon.GraphicSide != 0 {
			n += 2
		}
		if graphic&dungeon.GraphicBack != 0 {
			n += 2
		}
		if graphic&dungeon.GraphicAttack != 0 {
			n += 2
		}
		n += 3 * int(graphic&dungeon.GraphicAdditional)
		if next+n > cache.Slots {
			c.creatureDerived[typ] = -1
			c.log.Debug("creature sprites not cached", zap.Int("type", typ))
			continue
		}
		c.creatureDerived[typ] = next
		next += n
	}
}

// derived returns slot index of the cache, building it when missing. A
// negative index bypasses the cache.
func (c *Context) derived(index int, build func() *blit.Bitmap) *blit.Bitmap {
	if index < 0 {
		return build()
	}
	return c.cache.Load(index, build)
}

// native panics when the graphics file lacks the item.
func (c *Context) native(index int) *blit.Bitmap {
	return c.gfx.Native(index)
}

func (c *Context) draw(op Op, view ViewSquare, index int, src *blit.Bitmap, box blit.Box, srcX, srcY int, transparent blit.Color) {
	blit.Copy(src, c.viewport, box, srcX, srcY, transparent)
	if c.trace != nil {
		c.trace(Event{Op: op, View: view, Index: index, Box: box})
	}
}

// drawFrame draws src through f, skipping frames with nothing to draw.
func (c *Context) drawFrame(op Op, view ViewSquare, index int, src *blit.Bitmap, f Frame, transparent blit.Color) {
	if f.SrcByteWidth == 0 {
		return
	}
	c.draw(op, view, index, src, f.Box, f.SrcX, f.SrcY, transparent)
}
