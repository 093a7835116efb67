package blit

func FlipH(b *Bitmap) {
	w := b.Width
	for y := 0; y < b.Height; y++ {
		row := b.Pix[y*w:][:w]
		for l, r := 0, w-1; l < r; l, r = l+1, r-1 {
			row[l], row[r] = row[r], row[l]
		}
	}
}

func FlipV(b *Bitmap) {
	w := b.Width
	tmp := make([]byte, w)
	for t, u := 0, b.Height-1; t < u; t, u = t+1, u-1 {
		top := b.Pix[t*w:][:w]
		bottom := b.Pix[u*w:][:w]
		copy(tmp, top)
		copy(top, bottom)
		copy(bottom, tmp)
	}
}

// FlippedH returns a horizontally mirrored copy of b.
func FlippedH(b *Bitmap) *Bitmap {
	c := b.Clone()
	FlipH(c)
	return c
}
