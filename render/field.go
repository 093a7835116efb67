package render

import "github.com/32bitkid/dm/blit"

// pixelsPerUnit is the length of the runs a masked fill streams its
// source by.
const pixelsPerUnit = 16

// maskedFill paints box of dst with the pixels of src read as one
// stream, starting at firstUnit and wrapping to the start after
// lastUnit. Stream pixels equal to the low nibble of transparent are
// skipped. Unless transparent has fieldDoNotUseMask set, a pixel is
// only painted where mask, read from column maskX, is not zero.
func maskedFill(src, dst, mask *blit.Bitmap, maskX int, box blit.Box, firstUnit, lastUnit, transparent int) {
	start := firstUnit * pixelsPerUnit
	end := min(len(src.Pix), (lastUnit+1)*pixelsPerUnit)
	if start >= end {
		start = 0
	}
	if end <= 0 {
		return
	}
	useMask := mask != nil && transparent&fieldDoNotUseMask == 0
	key := byte(transparent & fieldTransparentKey)

	clipped := box.Clip(dst.Bounds())
	pos := start
	for y := box.Y1; y <= box.Y2; y++ {
		for x := box.X1; x <= box.X2; x++ {
			c := src.Pix[pos]
			if pos++; pos >= end {
				pos = 0
			}
			if c == key || !clipped.Contains(x, y) {
				continue
			}
			if useMask {
				mx, my := x-box.X1+maskX, y-box.Y1
				if mx < 0 || my < 0 || mx >= mask.Width || my >= mask.Height || mask.At(mx, my) == 0 {
					continue
				}
			}
			dst.Set(x, y, c)
		}
	}
}

// drawField draws a teleporter or fluxcage field over box, shaped by the
// field mask of the view square.
func (c *Context) drawField(view ViewSquare, fa fieldAspect, box blit.Box) {
	var mask *blit.Bitmap
	if fa.mask != fieldNoMask {
		mask = c.native(nativeFirstFieldMask + fa.mask&^fieldMaskFlip)
		if fa.mask&fieldMaskFlip != 0 {
			mask = blit.FlippedH(mask)
		}
	}
	item := nativeFirstField + fa.nativeRel
	lastUnit := c.rnd.Intn(2) + fa.baseStartUnit
	firstUnit := c.rnd.Intn(32)
	maskedFill(c.native(item), c.viewport, mask, fa.x, box, firstUnit, lastUnit, fa.transparent)
	if c.trace != nil {
		c.trace(Event{Op: OpField, View: view, Index: item, Box: box})
	}
}
