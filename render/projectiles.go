package render

import (
	"github.com/32bitkid/dm/blit"
	"github.com/32bitkid/dm/cache"
	"github.com/32bitkid/dm/dungeon"
)

func westEast(d dungeon.Direction) bool { return d&1 != 0 }

// drawProjectiles draws the projectiles flying in the current cell, all
// at the height of the party's eyes.
func (c *Context) drawProjectiles(p *entityPass) {
	if !p.hasProjectile || p.view > D0C {
		return
	}
	x := objectCoordinateSets[0][p.view][p.viewCell][0]
	if x == 0 {
		return
	}
	for t := p.first; !t.End(); t = c.things.NextThing(t) {
		if t.Type() != dungeon.TypeProjectile || t.Cell() != p.cell {
			continue
		}
		pr := c.things.Projectile(t)
		if pr.Aspect >= 0 {
			oa := objectAspects[pr.Aspect]
			c.drawObject(p, t, oa, nativeFirstObject+oa.firstNative, false, x, projectileY, nil)
			continue
		}
		c.drawProjectile(p, pr, x)
	}
}

// projectileSprite picks the sprite of a projectile seen from dir and
// how to flip it.
type projectileSprite struct {
	delta        int
	flipH, flipV bool
}

func projectileView(pa projectileAspect, pr dungeon.Projectile, p *entityPass) projectileSprite {
	typ := pa.graphicInfo & projectileTypeMask
	if typ == projectileNone {
		return projectileSprite{}
	}
	var s projectileSprite
	rotating := typ == projectileBackAndRotation
	oddSquare := rotating && (p.x+p.y)&1 != 0
	if westEast(pr.Direction) != westEast(p.dir) {
		s.delta = 2
		if typ == projectileRotation {
			s.delta = 1
		}
		if rotating {
			s.flipH = p.viewCell == viewCellFrontLeft || p.viewCell == viewCellBackLeft
			s.flipV = oddSquare
			if !s.flipV {
				s.flipH = !s.flipH
			}
		} else {
			s.flipH = p.dir.Right() == pr.Direction
		}
		return s
	}
	seenFromBack := typ == projectileBackAndRotation && !oddSquare ||
		typ == projectileBack && pr.Direction == p.dir
	if seenFromBack {
		s.delta = 1
	}
	s.flipV = rotating && p.viewCell < viewCellBackRight
	s.flipH = pa.graphicInfo&projectileSide != 0 &&
		!(p.lane == laneRight || (p.lane == laneCenter && (p.viewCell == viewCellFrontRight || p.viewCell == viewCellBackRight)))
	return s
}

// drawProjectile draws a projectile with a sprite of its own. Sprites
// shrink with distance and, for spells, with the energy left.
func (c *Context) drawProjectile(p *entityPass, pr dungeon.Projectile, x int) {
	pa := projectileAspects[-pr.Aspect-1]
	item := nativeFirstProjectile + pa.firstNative
	fixedSize := pa.graphicInfo&projectileScaleWithKE == 0

	scale, scaleIndex := 0, 0
	bw, h := pa.byteWidth, pa.height
	if !(fixedSize || pr.KineticEnergy == 255) || p.view != D0C {
		scaleIndex = int(p.view/3)<<1 + p.viewCell>>1
		scale = projectileScales[scaleIndex]
		if !fixedSize {
			scale = scale * max(96, pr.KineticEnergy+1) >> 8
		}
		bw = blit.ScaledDimension(bw, scale)
		h = blit.ScaledDimension(h, scale)
	}

	s := projectileView(pa, pr, p)
	item += s.delta

	var bmp *blit.Bitmap
	if scale == 0 {
		bmp = c.native(item)
	} else {
		native := c.native(item)
		remap := palChangesProjectile[scaleIndex>>1]
		build := func() *blit.Bitmap { return blit.Scale(native, bw<<1, h, remap) }
		if fixedSize {
			bmp = c.derived(cache.Projectile(pa.firstDerived, s.delta, scaleIndex), build)
		} else {
			bmp = build()
		}
	}
	padding := 0
	if s.flipH || s.flipV {
		bmp = bmp.Clone()
		if s.flipV {
			blit.FlipV(bmp)
		}
		if s.flipH {
			blit.FlipH(bmp)
			padding = bmp.Width - bw<<1
		}
	}

	box := blit.Box{Y1: projectileY - h>>1, Y2: projectileY + h>>1}
	if h&1 == 0 {
		box.Y1++
	}
	box.X2 = min(ViewportWidth-1, x+bw)
	box.X1 = max(0, x-bw+1)
	srcX := 0
	switch {
	case box.X1 == 0:
		srcX = bw - x - 1
		if !c.faithful {
			srcX += padding
		}
		srcX = max(padding, srcX)
	case s.flipH:
		srcX = padding
	}
	c.draw(OpProjectile, p.view, item, bmp, box, srcX, 0, blit.Flesh)
}
