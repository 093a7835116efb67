package resource

import (
	"bufio"
	"bytes"

	"github.com/32bitkid/bitreader"
	"github.com/32bitkid/dm/blit"
	"github.com/pkg/errors"
)

// Opcodes live in the high nibble of each control byte; the low nibble is
// the colour.
const (
	opShortRunMax = 0x7
	opByteRun     = 0x8
	opRaw         = 0x9
	opByteAbove   = 0xB
	opWordRun     = 0xC
	opWordAbove   = 0xF
)

type bitmapReader struct {
	bits bitreader.BitReader
}

func (r bitmapReader) count(op uint8) (int, error) {
	switch op {
	case opByteRun, opByteAbove, opRaw:
		n, err := r.bits.Read8(8)
		return int(n), err
	case opWordRun, opWordAbove:
		n, err := r.bits.Read16(16)
		return int(n), err
	}
	return int(op), nil
}

// DecodeBitmap unpacks a run-length encoded item into one pixel per byte.
func DecodeBitmap(payload []byte) (*blit.Bitmap, error) {
	r := bitmapReader{
		bitreader.NewReader(bufio.NewReader(bytes.NewReader(payload))),
	}

	var header struct{ Width, Height uint16 }
	var err error
	if header.Width, err = r.bits.Read16(16); err != nil {
		return nil, errors.Wrap(err, "bitmap width")
	}
	if header.Height, err = r.bits.Read16(16); err != nil {
		return nil, errors.Wrap(err, "bitmap height")
	}

	bmp := blit.New(int(header.Width), int(header.Height))
	pix := bmp.Pix
	width := bmp.Width

	for k := 0; k < len(pix); {
		op, err := r.bits.Read8(4)
		if err != nil {
			return nil, errors.Wrapf(err, "opcode at pixel %d", k)
		}
		color, err := r.bits.Read8(4)
		if err != nil {
			return nil, errors.Wrapf(err, "colour at pixel %d", k)
		}

		n, err := r.count(op)
		if err != nil {
			return nil, errors.Wrapf(err, "count of opcode %#x at pixel %d", op, k)
		}
		n++

		switch op {
		case opByteRun, opWordRun, 0, 1, 2, 3, 4, 5, 6, 7:
			if k+n > len(pix) {
				return nil, errors.Errorf("run of %d overflows bitmap at pixel %d", n, k)
			}
			for end := k + n; k < end; k++ {
				pix[k] = color
			}

		case opByteAbove, opWordAbove:
			if k < width {
				return nil, errors.Errorf("copy from above on first row at pixel %d", k)
			}
			if k+n+1 > len(pix) {
				return nil, errors.Errorf("copy of %d overflows bitmap at pixel %d", n, k)
			}
			for end := k + n; k < end; k++ {
				pix[k] = pix[k-width]
			}
			pix[k] = color
			k++

		case opRaw:
			if k+n > len(pix) {
				return nil, errors.Errorf("raw run of %d overflows bitmap at pixel %d", n, k)
			}
			// an even count byte carries the first pixel in the colour nibble
			if n%2 == 1 {
				pix[k] = color
				k++
			}
			for j := 0; j < n/2; j++ {
				hi, err := r.bits.Read8(4)
				if err != nil {
					return nil, errors.Wrapf(err, "raw pixel at %d", k)
				}
				lo, err := r.bits.Read8(4)
				if err != nil {
					return nil, errors.Wrapf(err, "raw pixel at %d", k+1)
				}
				pix[k], pix[k+1] = hi, lo
				k += 2
			}

		default:
			return nil, errors.Errorf("unknown opcode %#x at pixel %d", op, k)
		}
	}

	return bmp, nil
}
