package resource

import (
	"encoding/binary"

	"github.com/32bitkid/dm/blit"
)

const (
	maxByteCount = 0xFF + 1
	maxWordCount = 0xFFFF + 1
	minRawRun    = 3
)

// EncodeBitmap packs bmp with a greedy choice between runs, copies from
// the row above and raw nibble pairs. Decoding the result yields bmp.
func EncodeBitmap(bmp *blit.Bitmap) []byte {
	out := make([]byte, 4, 4+len(bmp.Pix)/2)
	binary.BigEndian.PutUint16(out[0:], uint16(bmp.Width))
	binary.BigEndian.PutUint16(out[2:], uint16(bmp.Height))

	e := encoder{pix: bmp.Pix, width: bmp.Width, out: out}
	for k := 0; k < len(e.pix); {
		k = e.next(k)
	}
	return e.out
}

type encoder struct {
	pix   []byte
	width int
	out   []byte
}

func (e *encoder) runAt(k int) int {
	n := 1
	for k+n < len(e.pix) && n < maxWordCount && e.pix[k+n] == e.pix[k] {
		n++
	}
	return n
}

// aboveAt counts pixels equal to the row above, leaving room for the
// trailing literal pixel the copy opcodes always emit.
func (e *encoder) aboveAt(k int) int {
	if k < e.width {
		return 0
	}
	n := 0
	for k+n+1 < len(e.pix) && n < maxWordCount && e.pix[k+n] == e.pix[k+n-e.width] {
		n++
	}
	return n
}

func (e *encoder) op(op, color byte) {
	e.out = append(e.out, op<<4|color&0xF)
}

func (e *encoder) count(n int) {
	if n <= maxByteCount {
		e.out = append(e.out, byte(n-1))
		return
	}
	e.out = binary.BigEndian.AppendUint16(e.out, uint16(n-1))
}

func (e *encoder) next(k int) int {
	run := e.runAt(k)
	above := e.aboveAt(k)

	switch {
	case above >= 2 && above+1 > run:
		color := e.pix[k+above]
		if above <= maxByteCount {
			e.op(opByteAbove, color)
		} else {
			e.op(opWordAbove, color)
		}
		e.count(above)
		return k + above + 1

	case run >= minRawRun || run == 2:
		color := e.pix[k]
		switch {
		case run <= opShortRunMax+1:
			e.op(byte(run-1), color)
		case run <= maxByteCount:
			e.op(opByteRun, color)
			e.count(run)
		default:
			e.op(opWordRun, color)
			e.count(run)
		}
		return k + run
	}

	n := e.rawAt(k)
	if n < minRawRun {
		e.op(0, e.pix[k])
		return k + 1
	}

	pix := e.pix[k : k+n]
	if n%2 == 1 {
		e.op(opRaw, pix[0])
		pix = pix[1:]
	} else {
		e.op(opRaw, 0)
	}
	e.count(n)
	for i := 0; i < len(pix); i += 2 {
		e.out = append(e.out, pix[i]<<4|pix[i+1]&0xF)
	}
	return k + n
}

// rawAt counts the isolated pixels starting at k that no run or copy
// would encode better.
func (e *encoder) rawAt(k int) int {
	n := 0
	for k+n < len(e.pix) && n < maxByteCount {
		if n > 0 && (e.runAt(k+n) >= minRawRun || e.aboveAt(k+n) >= minRawRun) {
			break
		}
		n++
	}
	return n
}
