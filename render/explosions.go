package render

import (
	"github.com/32bitkid/dm/blit"
	"github.com/32bitkid/dm/cache"
	"github.com/32bitkid/dm/dungeon"
)

// explosionBitmap returns the sprite of an explosion aspect shrunk to
// scale, with its byte width and height. Smoke is the poison sprite in
// grey.
func (c *Context) explosionBitmap(aspect, scale int) (bmp *blit.Bitmap, item, bw, h int) {
	scale = min(scale, 32)
	ea := explosionAspects[aspect]
	bw = blit.ScaledDimension(ea[0], scale)
	h = blit.ScaledDimension(ea[1], scale)
	if scale == 32 && aspect != explosionAspectSmoke {
		item = nativeFirstExplosion + aspect
		return c.native(item), item, bw, h
	}
	item = nativeFirstExplosion + min(aspect, explosionAspectPoison)
	remap := &palChangesNoChanges
	if aspect == explosionAspectSmoke {
		remap = &palChangesSmoke
	}
	native := c.native(item)
	bmp = c.derived(cache.Explosion(aspect, scale), func() *blit.Bitmap {
		return blit.Scale(native, bw<<1, h, remap)
	})
	return bmp, item, bw, h
}

// drawExplosions draws the explosions on the square after everything
// else on it. A fluxcage is drawn last as a field over the square.
func (c *Context) drawExplosions(p *entityPass) {
	ev := int(p.view) + 3
	scaleIndex := ev / 3
	fluxcage := false

	for t := p.first; !t.End(); t = c.things.NextThing(t) {
		if t.Type() != dungeon.TypeExplosion {
			continue
		}
		cell := t.Cell()
		e := c.things.Explosion(t)
		rebirth := e.Type >= dungeon.ExplosionRebirthStep1
		if rebirth && (ev < explosionD3C || ev > explosionD1C || cell != p.cell) {
			continue
		}

		smoke := false
		var aspect int
		switch e.Type {
		case dungeon.ExplosionFireball, dungeon.ExplosionLightningBolt, dungeon.ExplosionRebirthStep2:
			aspect = explosionAspectFire
		case dungeon.ExplosionPoisonBolt, dungeon.ExplosionPoisonCloud:
			aspect = explosionAspectPoison
		case dungeon.ExplosionSmoke:
			smoke = true
			aspect = explosionAspectSmoke
		case dungeon.ExplosionRebirthStep1:
			c.drawRebirthStep1(p, ev)
			continue
		case dungeon.ExplosionFluxcage:
			if ev >= explosionD3L {
				fluxcage = true
			}
			continue
		default:
			aspect = explosionAspectSpell
		}

		if ev == explosionD0C {
			c.drawExplosionPattern(p, aspect, smoke, e.Attack)
			continue
		}

		var x, y, scale int
		switch {
		case rebirth:
			rc := rebirthStep2Coordinates[ev-3]
			x, y, scale = rc[0], rc[1], rc[2]
		default:
			var at [2]int
			if e.Centered {
				at = centeredExplosionCoordinates[ev]
			} else {
				column := 1
				if d := dungeon.Direction(cell); d == p.dir || d == p.dir.Left() {
					column = 0
				}
				at = explosionCoordinates[ev][column]
			}
			x, y = at[0], at[1]
			scale = max(4, max(48, e.Attack+1)*explosionBaseScales[scaleIndex]>>8) &^ 1
		}
		bmp, item, bw, h := c.explosionBitmap(aspect, scale)
		c.drawExplosion(p, item, bmp, bw, h, x, y)
	}

	if fluxcage && p.doorPass != 1 && !c.hideFluxcages {
		fa := fieldAspects[p.view]
		fa.nativeRel++
		c.drawField(p.view, fa, frameWalls[p.view].Box)
	}
}

// drawRebirthStep1 draws the first flash of a creature being reborn,
// which borrows the lightning bolt sprite.
func (c *Context) drawRebirthStep1(p *entityPass, ev int) {
	pa := projectileAspects[projectileLightningBolt]
	item := nativeFirstProjectile + pa.firstNative + 1
	rc := rebirthStep1Coordinates[ev-3]
	bw := blit.ScaledDimension(pa.byteWidth, rc[2])
	h := blit.ScaledDimension(pa.height, rc[2])
	bmp := c.native(item)
	if ev != explosionD1C {
		bmp = blit.Scale(bmp, bw<<1, h, &palChangesNoChanges)
	}
	c.drawExplosion(p, item, bmp, bw, h, rc[0], rc[1])
}

// drawExplosionPattern fills the whole viewport with an explosion on the
// party's own square. Stronger attacks use denser patterns.
func (c *Context) drawExplosionPattern(p *entityPass, aspect int, smoke bool, attack int) {
	if smoke {
		aspect--
	}
	aspect *= 3
	if size := attack >> 5; size != 0 {
		aspect++
		if size > 3 {
			aspect++
		}
	}
	item := nativeFirstExplosionPat + aspect
	bmp := c.native(item)
	if smoke {
		bmp = blit.Scale(bmp, 48, 32, &palChangesSmoke)
	}
	lastUnit := c.rnd.Intn(4) + 87
	firstUnit := c.rnd.Intn(64)
	maskedFill(bmp, c.viewport, nil, 0, boxExplosionPatternD0C, firstUnit, lastUnit, fieldDoNotUseMask|int(blit.Flesh))
	if c.trace != nil {
		c.trace(Event{Op: OpExplosion, View: p.view, Index: item, Box: boxExplosionPatternD0C})
	}
}

// drawExplosion draws an explosion sprite centred on (x, y), flipped at
// random.
func (c *Context) drawExplosion(p *entityPass, item int, bmp *blit.Bitmap, bw, h, x, y int) {
	flipV := c.rnd.Intn(2) != 0
	flipH := c.rnd.Intn(2) != 0
	padding := 0
	if flipH {
		padding = bmp.Width - bw<<1
	}

	box := blit.Box{Y2: min(ViewportHeight-1, y+h>>1)}
	box.Y1 = max(0, y-h>>1)
	if h&1 == 0 {
		box.Y1 = max(0, y-h>>1+1)
	}
	if box.Y1 >= ViewportHeight {
		return
	}
	if box.X2 = min(ViewportWidth-1, x+bw); box.X2 < 0 {
		return
	}
	srcX := padding
	if box.X1 = clamp(x-bw+1, 0, ViewportWidth-1); box.X1 == 0 {
		if c.faithful {
			srcX = max(padding, bw-x-1)
		} else {
			srcX = bw - x - 1 + padding
		}
	}
	if box.X2 <= box.X1 {
		return
	}

	if flipH || flipV {
		bmp = bmp.Clone()
		if flipH {
			blit.FlipH(bmp)
		}
		if flipV {
			blit.FlipV(bmp)
		}
	}
	c.draw(OpExplosion, p.view, item, bmp, box, srcX, 0, blit.Flesh)
}
