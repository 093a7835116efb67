package blit

const scaleOne = 32768

// Remap is a palette change table. Entries hold the replacement colour
// multiplied by ten.
type Remap [16]byte

// Scale resamples src to dstW×dstH with nearest-neighbour fixed-point
// accumulators. dstW is rounded up to a multiple of 8 before the step is
// computed. When remap is not nil each output pixel becomes remap[c]/10.
func Scale(src *Bitmap, dstW, dstH int, remap *Remap) *Bitmap {
	if dstW%8 != 0 {
		dstW = dstW/8*8 + 8
	}
	dst := New(dstW, dstH)
	if dstW <= 0 || dstH <= 0 || src.Width == 0 || src.Height == 0 {
		return dst
	}

	stepX := scaleOne * src.Width / dstW
	stepY := scaleOne * src.Height / dstH

	for y, yCtr := 0, 0; y < dstH; y, yCtr = y+1, yCtr+stepY {
		srcLine := src.Pix[(yCtr/scaleOne)*src.Width:][:src.Width]
		dstLine := dst.Pix[y*dstW:][:dstW]
		for x, xCtr := 0, 0; x < dstW; x, xCtr = x+1, xCtr+stepX {
			c := srcLine[xCtr/scaleOne]
			if remap != nil {
				c = remap[c&0xF] / 10
			}
			dstLine[x] = c
		}
	}
	return dst
}

// ScaledDimension applies a depth scale expressed in 32nds.
func ScaledDimension(dim, scale int) int {
	return (dim*scale + scale/2) / 32
}
