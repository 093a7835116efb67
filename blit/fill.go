package blit

func Fill(b *Bitmap, c Color) {
	v := byte(c)
	for i := range b.Pix {
		b.Pix[i] = v
	}
}

// FillBox fills box, clipped to the bitmap.
func FillBox(b *Bitmap, box Box, c Color) {
	box = box.Clip(b.Bounds())
	if box.Empty() {
		return
	}
	v := byte(c)
	for y := box.Y1; y <= box.Y2; y++ {
		row := b.Pix[y*b.Width+box.X1:][:box.Width()]
		for i := range row {
			row[i] = v
		}
	}
}
