package render

import "github.com/32bitkid/dm/dungeon"

// entityPass is the state of one walk over the things on a square.
type entityPass struct {
	first dungeon.Thing
	dir   dungeon.Direction
	x, y  int
	view  ViewSquare
	lane  int

	// doorPass is 1 or 2 around a door seen from the front, else 0.
	doorPass int
	alcove   bool

	// cell is the absolute cell being drawn and viewCell the same cell
	// relative to the party.
	cell     int
	viewCell int
	cells    int

	group         dungeon.Thing
	loaded        bool
	grp           dungeon.Group
	active        dungeon.ActiveGroup
	info          dungeon.CreatureInfo
	creaturesDone bool

	hasProjectile bool
	hasExplosion  bool
}

// cellOrdinals decodes a cell order into view cells, nearest nibble
// first, stripping the door pass marker.
func cellOrdinals(order int) (cells []int, doorPass int) {
	if order&orderDoorFront != 0 {
		doorPass = order&1 + 1
		order >>= 4
	}
	for ; order != 0; order >>= 4 {
		cells = append(cells, order&0xF-1)
	}
	return cells, doorPass
}

// cthulhu draws everything standing on the square at (x, y) seen at view:
// objects, creatures and projectiles in each view cell of order, then
// explosions over the whole square. An order of zero draws the objects
// in the alcove of the wall ahead.
func (c *Context) cthulhu(first dungeon.Thing, dir dungeon.Direction, x, y int, view ViewSquare, order int) {
	if first.End() {
		return
	}
	cells, doorPass := cellOrdinals(order)
	p := &entityPass{
		first:    first,
		dir:      dir,
		x:        x,
		y:        y,
		view:     view,
		lane:     view.Lane(),
		doorPass: doorPass,
		alcove:   len(cells) == 0,
		group:    dungeon.None,
	}

	for i := 0; ; i++ {
		pile := 0
		if p.alcove {
			p.viewCell = viewCellAlcove
			p.cell = int(dir.Back())
			pile = 2
		} else {
			p.viewCell = cells[i]
			p.cell = (p.viewCell + int(dir)) & 3
			p.cells++
		}
		pile += (p.cell & 1) << 3
		c.drawObjects(p, pile)

		if p.alcove || view < D3C {
			break
		}
		remaining := cells[i+1:]
		c.drawCreatures(p, remaining)
		c.drawProjectiles(p)
		if len(remaining) == 0 {
			break
		}
	}
	if p.hasExplosion {
		c.drawExplosions(p)
	}
}

// drawObjects draws the objects lying in the current cell, spreading them
// over the pile shifts starting at pile. It also notes which other kinds
// of things are on the square.
func (c *Context) drawObjects(p *entityPass, pile int) {
	visible := p.view >= D3C && p.view <= D0C
	for t := p.first; !t.End(); t = c.things.NextThing(t) {
		switch t.Type() {
		case dungeon.TypeGroup:
			p.group = t
			continue
		case dungeon.TypeProjectile:
			p.hasProjectile = true
			continue
		case dungeon.TypeExplosion:
			p.hasExplosion = true
			continue
		}
		if !visible || t.Cell() != p.cell {
			continue
		}
		oa := objectAspects[c.things.Object(t).Aspect]
		item := nativeFirstObject + oa.firstNative
		altAlcove := p.alcove && oa.graphicInfo&objectAlcove != 0 && p.lane == laneCenter
		if altAlcove {
			item++
		}
		cs := objectCoordinateSets[oa.coordSet][p.view][p.viewCell]
		if cs[1] == 0 {
			continue
		}
		c.drawObject(p, t, oa, item, altAlcove, cs[0], cs[1], &pile)
	}
}
