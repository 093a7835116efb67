package render

import (
	"github.com/32bitkid/dm/blit"
	"github.com/32bitkid/dm/cache"
	"github.com/32bitkid/dm/dungeon"
)

// drawDoorButton draws the button beside a door. Only the nearest one is
// clickable.
func (c *Context) drawDoorButton(view ViewSquare, buttonView int) {
	cs := doorButtonCoordSets[buttonView]
	var bmp *blit.Bitmap
	if buttonView == viewDoorButtonD1C {
		bmp = c.native(nativeFirstDoorButton)
		c.clickable[ClickableDoorButtonOrWallOrnament] = cs.box()
	} else {
		remap := &palChangesButtonOrnD3
		if buttonView == viewDoorButtonD2C {
			remap = &palChangesButtonOrnD2
		}
		native := c.native(nativeFirstDoorButton)
		bmp = c.derived(cache.DoorButton(0, buttonView == viewDoorButtonD2C), func() *blit.Bitmap {
			return blit.Scale(native, cs.pixelWidth(), cs.height(), remap)
		})
	}
	c.draw(OpDoorButton, view, nativeFirstDoorButton, bmp, cs.box(), 0, 0, blit.Flesh)
}

// doorOrnamentItem returns the graphics item and coordinate set of a
// map-local door ornament, including the two masks.
func (c *Context) doorOrnamentItem(idx int) (item, set int) {
	switch idx {
	case doorOrnamentDestroyed:
		return nativeDoorMaskDestroyed, 1
	case doorOrnamentThievesEye:
		return nativeDoorMaskThievesEye, 1
	}
	global := c.level.Level.DoorOrnaments[idx]
	return nativeFirstDoorOrnament + global, doorOrnamentCoordSetIndices[global]
}

// drawDoorOrnament paints a door ornament into the door bitmap door.
func (c *Context) drawDoorOrnament(door *blit.Bitmap, view ViewSquare, idx, ornamentView int) {
	item, set := c.doorOrnamentItem(idx)
	cs := doorOrnamentCoordSets[set][ornamentView]

	native := c.native(item)
	bmp := native
	if ornamentView != viewDoorOrnamentD1 {
		remap := &palChangesDoorOrnD2
		if ornamentView == viewDoorOrnamentD3 {
			remap = &palChangesDoorOrnD3
		}
		bmp = c.derived(cache.DoorOrnament(idx, ornamentView == viewDoorOrnamentD2), func() *blit.Bitmap {
			return blit.Scale(native, cs.boxWidth(), cs.height(), remap)
		})
	}
	blit.Copy(bmp, door, cs.box(), 0, 0, blit.Gold)
	if c.trace != nil {
		c.trace(Event{Op: OpDoorOrnament, View: view, Index: item, Box: cs.box()})
	}
}

// drawDoor draws a door that is not open, with its ornament, through the
// frames matching how far it is closed.
func (c *Context) drawDoor(view ViewSquare, door dungeon.DoorInfo, state dungeon.DoorState, depth, ornamentView int, frames *doorFrames) {
	if state == dungeon.DoorOpen {
		return
	}
	lvl := c.level
	set := door.Type & 1
	item := lvl.doorItems[set] + depth
	tmp := lvl.doors[set][depth].Clone()

	if door.Ornament != 0 {
		c.drawDoorOrnament(tmp, view, door.Ornament-1, ornamentView)
	}
	if lvl.Level.DoorAnimated[set] {
		if c.rnd.Intn(2) != 0 {
			blit.FlipH(tmp)
		}
		if c.rnd.Intn(2) != 0 {
			blit.FlipV(tmp)
		}
	}
	if frames == &doorFramesD1C && c.party.ThievesEye() {
		c.drawDoorOrnament(tmp, view, doorOrnamentThievesEye, viewDoorOrnamentD1)
	}

	switch state {
	case dungeon.DoorClosed:
		c.drawFrame(OpDoor, view, item, tmp, frames.closed, blit.Flesh)
	case dungeon.DoorDestroyed:
		c.drawDoorOrnament(tmp, view, doorOrnamentDestroyed, ornamentView)
		c.drawFrame(OpDoor, view, item, tmp, frames.closed, blit.Flesh)
	case dungeon.DoorClosedOneFourth, dungeon.DoorClosedHalf, dungeon.DoorClosedThreeFourth:
		i := int(state) - 1
		if door.Vertical {
			c.drawFrame(OpDoor, view, item, tmp, frames.vertical[i], blit.Flesh)
		} else {
			c.drawFrame(OpDoor, view, item, tmp, frames.leftHorizontal[i], blit.Flesh)
			c.drawFrame(OpDoor, view, item, tmp, frames.rightHorizontal[i], blit.Flesh)
		}
	}
}
