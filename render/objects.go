package render

import (
	"github.com/32bitkid/dm/blit"
	"github.com/32bitkid/dm/cache"
	"github.com/32bitkid/dm/dungeon"
)

// nextPileShift advances a pile shift index. Alcove piles cycle through
// fewer shifts so objects stay inside the niche.
func nextPileShift(pile int, alcove bool) int {
	pile++
	if alcove {
		if pile >= 14 {
			pile = 2
		}
		return pile
	}
	return pile & 0xF
}

// drawObject draws an object sprite with its bottom centre at (x, y).
// Objects on the floor are spread by pile; a nil pile draws a projectile
// that looks like an object, which is never shifted or grabbed.
func (c *Context) drawObject(p *entityPass, t dungeon.Thing, oa objectAspect, item int, altAlcove bool, x, y int, pile *int) {
	flip := oa.graphicInfo&objectFlipOnRight != 0 && !altAlcove &&
		(p.lane == laneRight || (p.lane == laneCenter && (p.viewCell == viewCellFrontRight || p.viewCell == viewCellBackRight)))

	var (
		bmp      *blit.Bitmap
		bw, h    int
		shiftSet int
		padding  int
		grab     bool
	)
	if p.view == D0C || (p.view >= D1C && p.viewCell >= viewCellBackRight) {
		grab = p.lane == laneCenter && pile != nil
		shiftSet = shiftSetD0BackD1Front
		bw, h = oa.byteWidth, oa.height
		bmp = c.native(item)
		if flip {
			bmp = blit.FlippedH(bmp)
		}
	} else {
		variant := 0
		scale, remap := scaleD3, &palChangesFloorOrnD3
		shiftSet = shiftSetD2BackD3Front
		if p.view >= D1C || (p.view >= D2C && p.viewCell >= viewCellBackRight) {
			variant = 1
			scale, remap = scaleD2, &palChangesFloorOrnD2
			shiftSet = shiftSetD1BackD2Front
		}
		bw = blit.ScaledDimension(oa.byteWidth, scale)
		h = blit.ScaledDimension(oa.height, scale)
		switch {
		case flip:
			variant += 2
		case altAlcove:
			variant += 4
		}
		native := c.native(item)
		bmp = c.derived(cache.Object(oa.firstDerived, variant), func() *blit.Bitmap {
			b := blit.Scale(native, bw<<1, h, remap)
			if flip {
				blit.FlipH(b)
			}
			return b
		})
		if flip {
			padding = bmp.Width - bw<<1
		}
	}

	op := OpProjectile
	if pile != nil {
		op = OpObject
		x += shiftSets[shiftSet][objectPileShiftSetIndices[*pile][0]]
		y += shiftSets[shiftSet][objectPileShiftSetIndices[*pile][1]]
		*pile = nextPileShift(*pile, p.alcove)
	}

	box := blit.Box{Y1: y - (h - 1), Y2: min(y, ViewportHeight-1)}
	box.X2 = min(ViewportWidth-1, x+bw)
	box.X1 = max(0, x-bw+1)
	srcX := 0
	switch {
	case box.X1 == 0:
		srcX = bw - x - 1
		if flip && !c.faithful {
			srcX += padding
		}
	case flip:
		srcX = padding
	}

	if grab {
		c.grabbable(p.viewCell, box)
		c.pileTop[p.viewCell] = t
	}
	c.draw(op, p.view, item, bmp, box, srcX, 0, blit.Flesh)
}

// grabbable grows the clickable box of a view cell to hold box. A lone
// small object gets a box tall enough to hit.
func (c *Context) grabbable(viewCell int, box blit.Box) {
	cb := &c.clickable[viewCell]
	if cb.X1 != 255 {
		*cb = cb.Union(box)
		return
	}
	*cb = box
	if dy := cb.Y2 - cb.Y1; dy < 14 {
		dy >>= 1
		cb.Y1 += dy - 7
		if dy < 4 {
			cb.Y2 -= dy - 3
		}
	}
}
