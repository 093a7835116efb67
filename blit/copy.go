package blit

// Copy draws the region of src starting at (srcX, srcY) into box of dst.
// Source pixels equal to transparent are skipped. Anything falling
// outside either bitmap is clipped.
func Copy(src, dst *Bitmap, box Box, srcX, srcY int, transparent Color) {
	x1, x2, y1, y2 := box.X1, box.X2, box.Y1, box.Y2

	if x1 < 0 {
		srcX -= x1
		x1 = 0
	}
	if y1 < 0 {
		srcY -= y1
		y1 = 0
	}
	if srcX < 0 {
		x1 -= srcX
		srcX = 0
	}
	if srcY < 0 {
		y1 -= srcY
		srcY = 0
	}
	x2 = min(x2, dst.Width-1)
	y2 = min(y2, dst.Height-1)

	w := min(x2-x1+1, src.Width-srcX)
	h := min(y2-y1+1, src.Height-srcY)
	if w <= 0 || h <= 0 {
		return
	}

	for y := 0; y < h; y++ {
		s := src.Pix[(srcY+y)*src.Width+srcX:][:w]
		d := dst.Pix[(y1+y)*dst.Width+x1:][:w]
		if transparent == NoTransparency {
			copy(d, s)
			continue
		}
		key := byte(transparent)
		for x, c := range s {
			if c != key {
				d[x] = c
			}
		}
	}
}
