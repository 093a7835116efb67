package render

import (
	"github.com/32bitkid/dm/blit"
	"github.com/32bitkid/dm/cache"
	"github.com/32bitkid/dm/dungeon"
)

// inscriptionLines splits inscription glyph codes into lines. A missing
// end code ends the text at the end of the slice.
func inscriptionLines(text []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i, ch := range text {
		switch ch {
		case dungeon.TextLineBreak:
			lines = append(lines, text[start:i])
			start = i + 1
		case dungeon.TextEnd:
			return append(lines, text[start:i])
		}
	}
	return append(lines, text[start:])
}

// drawWallOrnament draws the wall ornament with map-local ordinal at a
// wall ornament view and reports whether it is an alcove.
func (c *Context) drawWallOrnament(ordinal, view int, a dungeon.SquareAspect) bool {
	if ordinal == 0 {
		return false
	}
	lvl := c.level
	idx := ordinal - 1
	global := lvl.Level.WallOrnaments[idx]
	set := &wallOrnamentCoordSets[wallOrnamentCoordSetIndices[global]]
	cs := set[view]
	item := nativeFirstWallOrnament + global*2
	alcove := lvl.isAlcove(idx)
	inscription := idx == lvl.Level.InscriptionOrnament

	var lines [][]byte
	if inscription {
		lines = inscriptionLines(c.things.Text(a.Inscription))
	}

	var bmp *blit.Bitmap
	srcX := 0
	if view >= viewWallD1LRight {
		if view == viewWallD1CFront {
			if inscription {
				c.drawInscription(lines)
				return alcove
			}
			item++
			c.clickable[ClickableDoorButtonOrWallOrnament] = cs.box()
			c.facing.Alcove = alcove
			c.facing.ViAltar = idx == lvl.viAltar
			c.facing.Fountain = idx == lvl.fountain
		}
		bmp = c.native(item)
		if view == viewWallD1RLeft {
			bmp = blit.FlippedH(bmp)
		}
	} else {
		flip := view == viewWallD2RLeft || view == viewWallD3RLeft
		side := flip || view == viewWallD2LRight || view == viewWallD3LRight
		offset := 0
		if !side {
			item++
			switch view {
			case viewWallD2LFront:
				offset = 1
			case viewWallD2RFront:
				offset = -1
			}
		}
		ref := set[view+offset]
		pixelWidth := ref[1] - ref[0]

		remap := &palChangesButtonOrnD2
		if view <= viewWallD3RFront {
			remap = &palChangesButtonOrnD3
		}
		native := c.native(item)
		bmp = c.derived(cache.WallOrnament(idx, wallOrnamentDerivedIncrements[view]), func() *blit.Bitmap {
			return blit.Scale(native, cs.pixelWidth(), cs.height(), remap)
		})
		switch {
		case flip:
			bmp = blit.FlippedH(bmp)
			srcX = 15 - (pixelWidth & 15)
		case view == viewWallD2LFront:
			srcX = pixelWidth - (cs[1] - cs[0])
		}
	}

	box := cs.box()
	if inscription && len(lines) < 4 {
		box.Y2 = unreadableInscriptionY2[wallOrnamentDerivedIncrements[view]*3+len(lines)-1]
	}
	c.draw(OpWallOrnament, wallOrnamentSquares[view], item, bmp, box, srcX, 0, blit.Flesh)

	if view == viewWallD1CFront && a.Portrait != 0 {
		p := a.Portrait - 1
		c.draw(OpPortrait, D1C, nativeChampionPortraits, c.native(nativeChampionPortraits),
			boxChampionPortraitOnWall, (p&7)<<5, (p>>3)*29, blit.DarkGray)
	}
	return alcove
}

// drawInscription writes the text of a readable inscription over a clean
// patch of the wall ahead.
func (c *Context) drawInscription(lines [][]byte) {
	c.draw(OpWall, D1C, c.level.wallItem+wallD1, c.wall(wallD1), boxWallPatchBehindInscription, 94, 28, blit.NoTransparency)

	font := c.native(nativeInscriptionFont)
	for i, line := range lines {
		if i >= len(inscriptionLineY) {
			break
		}
		y2 := inscriptionLineY[i]
		x1 := 112 - len(line)<<2
		for _, ch := range line {
			box := blit.Box{X1: x1, X2: x1 + 7, Y1: y2 - 7, Y2: y2}
			c.draw(OpInscription, D1C, nativeInscriptionFont, font, box, int(ch)<<3, 0, blit.Flesh)
			x1 += 8
		}
	}
}

var wallOrnamentSquares = [13]ViewSquare{D3L, D3R, D3L, D3C, D3R, D2L, D2R, D2L, D2C, D2R, D1L, D1R, D1C}

var floorOrnamentSquares = [9]ViewSquare{D3L, D3C, D3R, D2L, D2C, D2R, D1L, D1C, D1R}

// drawFloorOrnament draws the floor ornament of a square and then its
// footprints.
func (c *Context) drawFloorOrnament(a dungeon.SquareAspect, view int) {
	if a.FloorOrnament != 0 {
		global := c.level.Level.FloorOrnaments[a.FloorOrnament-1]
		item := nativeFirstFloorOrnament + global*6 + floorOrnamentNativeIncrements[view]
		c.drawFloorSprite(OpFloorOrnament, view, item, floorOrnamentCoordSetIndices[global], false)
	}
	if a.Footprints {
		centre := view == viewFloorD3C || view == viewFloorD2C || view == viewFloorD1C
		item := nativeFootprints + floorOrnamentNativeIncrements[view]
		c.drawFloorSprite(OpFootprints, view, item, 1, c.flipped && centre)
	}
}

func (c *Context) drawFloorSprite(op Op, view, item, set int, flip bool) {
	cs := floorOrnamentCoordSets[set][view]
	bmp := c.native(item)
	if flip || view == viewFloorD3R || view == viewFloorD2R || view == viewFloorD1R {
		bmp = blit.FlippedH(bmp)
	}
	c.draw(op, floorOrnamentSquares[view], item, bmp, cs.box(), 0, 0, blit.Flesh)
}
