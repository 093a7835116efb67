package render

import (
	"github.com/32bitkid/dm/blit"
	"github.com/32bitkid/dm/dungeon"
)

func horizontalOffset(aspect int) int { return aspect & 7 }
func verticalOffset(aspect int) int   { return (aspect >> 3) & 7 }

func (p *entityPass) loadGroup(things dungeon.Things) {
	if p.loaded {
		return
	}
	p.grp = things.Group(p.group)
	p.active = things.ActiveGroup(p.grp)
	p.info = things.CreatureInfo(p.grp.Type)
	p.loaded = true
}

// drawCreatures draws the creatures of the group on the square that
// belong to the current cell. Creatures larger than a quarter square are
// held back until the cells they straddle have been drawn.
func (c *Context) drawCreatures(p *entityPass, remaining []int) {
	if p.group == dungeon.None || p.creaturesDone {
		return
	}
	p.loadGroup(c.things)
	size := p.info.Size

	index, shown := 0, -1
	if ordinal := c.things.CreatureOrdinalInCell(p.grp, p.cell); ordinal != 0 {
		index = ordinal - 1
		shown = index
	} else if size != dungeon.SizeHalf {
		return
	}
	delta := int(p.dir-p.active.CreatureDirection(index)) & 3

	// Whether this is the far row, or the second cell drawn, and no
	// far cell remains.
	lastBackRow := (p.viewCell <= viewCellFrontRight || p.cells == 1) &&
		(len(remaining) == 0 || remaining[0] >= viewCellBackRight)

	slot := p.viewCell
	pair := false
	switch {
	case p.active.Cells == dungeon.SingleCentered:
		if len(remaining) != 0 || p.doorPass == 1 {
			return
		}
		p.creaturesDone = true
		slot = halfCellNearRow
		if size == dungeon.SizeHalf && delta&1 != 0 {
			slot = halfCellCenterColumn
		}
	case size == dungeon.SizeHalf && (lastBackRow || len(remaining) == 0 || shown < 0):
		switch {
		case lastBackRow && p.doorPass != 2:
			if shown < 0 || delta&1 == 0 {
				return
			}
			slot = halfCellFarRow
		case p.doorPass != 1 && len(remaining) == 0:
			if delta&1 != 0 {
				if shown < 0 {
					return
				}
				slot = halfCellNearRow
				break
			}
			p.creaturesDone = true
			if shown < 0 {
				shown = 0
			}
			pair = p.grp.Creatures > 1
			cell := dungeon.Direction(p.active.CreatureCell(index))
			if cell == p.dir || cell == p.dir.Left() {
				slot = halfCellLeftColumn
			} else {
				slot = halfCellRightColumn
			}
		default:
			return
		}
	case size != dungeon.SizeQuarter:
		return
	}

	view := p.view
	if view > D0C {
		view--
	}
	c.drawCreature(p, view, slot, int(p.active.Aspects[shown]), delta)
	if pair {
		other := 0
		if shown == 0 {
			other = 1
		}
		c.drawCreature(p, view, slot^1, int(p.active.Aspects[other]), delta)
	}
}

// creatureSlot offsets the first derived slot of the group's creature
// type, keeping the uncached marker.
func (c *Context) creatureSlot(typ, offset int) int {
	first := c.creatureDerived[typ]
	if first < 0 {
		return -1
	}
	return first + offset
}

// drawCreature draws one creature at a slot of the creature coordinate
// rows. view indexes those rows.
func (c *Context) drawCreature(p *entityPass, view ViewSquare, slot, aspect, delta int) {
	typ := p.grp.Type
	ca := creatureAspects[typ]
	cs := creatureCoordinateSets[ca.coordSet()][view][slot]
	if cs[1] == 0 {
		return
	}
	graphic := int(p.info.Graphic)
	has := func(flag int) bool { return graphic&flag != 0 }

	item := nativeFirstCreature + ca.firstNative
	offset := 0
	var bw, h int
	var back, attack, flippedFront bool
	side := has(dungeon.GraphicSide) && delta&1 != 0
	switch {
	case side:
		item++
		offset += 2
		bw, h = ca.byteWidthSide, ca.hSide
	default:
		back = has(dungeon.GraphicBack) && delta == 0
		attack = !back && aspect&dungeon.AspectAttack != 0 && has(dungeon.GraphicAttack)
		if attack {
			bw, h = ca.byteWidthAttack, ca.hAttack
			item++
			offset += 2
			for _, flag := range []int{dungeon.GraphicSide, dungeon.GraphicBack} {
				if has(flag) {
					item++
					offset += 2
				}
			}
			break
		}
		bw, h = ca.byteWidthFront, ca.hFront
		switch {
		case back && has(dungeon.GraphicSide):
			item += 2
			offset += 4
		case back:
			item++
			offset += 2
		case has(dungeon.GraphicFlipNonAttack) && aspect&dungeon.AspectFlip != 0:
			flippedFront = true
			offset += 2
			for _, flag := range []int{dungeon.GraphicSide, dungeon.GraphicBack, dungeon.GraphicAttack} {
				if has(flag) {
					offset += 2
				}
			}
		}
	}

	var (
		bmp         *blit.Bitmap
		shiftSet    int
		padding     int
		transparent int
	)
	native := c.native(item)
	if view >= D1C {
		shiftSet = shiftSetD0BackD1Front
		transparent = ca.transparent()
		switch {
		case side:
			bmp = native
			if delta == 1 {
				bmp = blit.FlippedH(bmp)
			}
		case back || !flippedFront:
			bmp = native
			if attack && aspect&dungeon.AspectFlip != 0 {
				bmp = blit.FlippedH(bmp)
			}
		default:
			bmp = c.derived(c.creatureSlot(typ, offset), func() *blit.Bitmap {
				return blit.FlippedH(native)
			})
		}
	} else {
		if flippedFront {
			offset++
		}
		scale, remap := scaleD3, &c.level.creatureD3
		shiftSet = shiftSetD2BackD3Front
		special := false
		if view >= D2C {
			offset++
			scale, remap = scaleD2, &c.level.creatureD2
			shiftSet = shiftSetD1BackD2Front
			special = has(dungeon.GraphicSpecialD2Front) && !side && !back && !attack
		}
		srcW, srcH := bw, h
		bw = blit.ScaledDimension(srcW, scale)
		h = blit.ScaledDimension(srcH, scale)
		transparent = int(remap[ca.transparent()]) / 10

		bmp = c.derived(c.creatureSlot(typ, offset), func() *blit.Bitmap {
			b := blit.Scale(native, bw<<1, h, remap)
			if flippedFront {
				blit.FlipH(b)
			}
			return b
		})
		flip := (side && delta == 1) ||
			(attack && aspect&dungeon.AspectFlip != 0) ||
			(special && has(dungeon.GraphicSpecialD2Flip)) ||
			flippedFront
		if flip {
			if !flippedFront {
				bmp = blit.FlippedH(bmp)
			}
			padding = bmp.Width - bw<<1
		}
	}

	y := cs[1] + shiftSets[shiftSet][verticalOffset(aspect)]
	box := blit.Box{Y1: max(0, y-(h-1)), Y2: min(y, ViewportHeight-1)}
	x := cs[0] + shiftSets[shiftSet][horizontalOffset(aspect)]
	switch p.lane {
	case laneLeft:
		x -= 100
	case laneRight:
		x += 100
	}
	if box.X2 = clamp(x+bw, 0, ViewportWidth-1); box.X2 == 0 {
		return
	}
	srcX := padding
	if box.X1 = clamp(x-bw+1, 0, ViewportWidth-1); box.X1 == ViewportWidth-1 {
		return
	} else if box.X1 == 0 {
		srcX += bw - x - 1
	}
	c.draw(OpCreature, p.view, item, bmp, box, srcX, 0, blit.Color(transparent))
}

func clamp(v, lo, hi int) int { return max(lo, min(v, hi)) }
