package resource

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/32bitkid/dm/blit"
)

func header(w, h int) []byte {
	return []byte{byte(w >> 8), byte(w), byte(h >> 8), byte(h)}
}

func repeat(c byte, n int) []byte {
	return bytes.Repeat([]byte{c}, n)
}

type opcodeCase struct {
	name     string
	w, h     int
	packed   []byte
	expected []byte
}

var opcodeCases = []opcodeCase{
	{"short run", 4, 1, []byte{0x3A}, repeat(0xA, 4)},
	{"short runs", 3, 1, []byte{0x05, 0x1C}, []byte{5, 0xC, 0xC}},
	{"longest short run", 8, 1, []byte{0x7E}, repeat(0xE, 8)},
	{"byte run", 10, 1, []byte{0x87, 0x09}, repeat(7, 10)},
	{"word run", 300, 1, []byte{0xC2, 0x01, 0x2B}, repeat(2, 300)},
	{"raw odd count byte", 4, 1, []byte{0x90, 0x03, 0x12, 0x34}, []byte{1, 2, 3, 4}},
	{"raw even count byte", 3, 1, []byte{0x9F, 0x02, 0x12}, []byte{0xF, 1, 2}},
	{"byte copy above", 3, 2, []byte{0x21, 0xB5, 0x01}, []byte{1, 1, 1, 1, 1, 5}},
	{"word copy above", 2, 3, []byte{0x13, 0xF7, 0x00, 0x02}, []byte{3, 3, 3, 3, 3, 7}},
	{"copy above keeps gradient", 2, 3, []byte{0x01, 0x02, 0xB9, 0x00, 0xB8, 0x00}, []byte{1, 2, 1, 9, 1, 8}},
}

func TestDecodeOpcodes(t *testing.T) {
	for _, c := range opcodeCases {
		payload := append(header(c.w, c.h), c.packed...)
		bmp, err := DecodeBitmap(payload)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if bmp.Width != c.w || bmp.Height != c.h {
			t.Fatalf("%s: expected(%dx%d) != actual(%dx%d)", c.name, c.w, c.h, bmp.Width, bmp.Height)
		}
		if !bytes.Equal(bmp.Pix, c.expected) {
			t.Fatalf("%s: expected(%v) != actual(%v)", c.name, c.expected, bmp.Pix)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name    string
		payload []byte
	}{
		{"short header", []byte{0, 4, 0}},
		{"truncated stream", append(header(4, 1), 0x1A)},
		{"truncated count", append(header(20, 1), 0x8A)},
		{"unknown opcode", append(header(4, 1), 0xA3)},
		{"run overflow", append(header(2, 1), 0x3A)},
		{"copy above on first row", append(header(4, 2), 0xB1, 0x00)},
		{"raw overflow", append(header(2, 1), 0x90, 0x03, 0x12, 0x34)},
	}
	for _, c := range cases {
		if _, err := DecodeBitmap(c.payload); err == nil {
			t.Errorf("%s: expected error", c.name)
		}
	}
}

func TestDecodeIsDeterministic(t *testing.T) {
	for _, c := range opcodeCases {
		payload := append(header(c.w, c.h), c.packed...)
		a, _ := DecodeBitmap(payload)
		b, _ := DecodeBitmap(payload)
		if !bytes.Equal(a.Pix, b.Pix) {
			t.Fatalf("%s: decoding twice differs", c.name)
		}
	}
}

func noisyGradient(w, h int, seed int64) *blit.Bitmap {
	rnd := rand.New(rand.NewSource(seed))
	bmp := blit.New(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var c byte
			switch {
			case y > 0 && rnd.Intn(3) == 0:
				c = bmp.At(x, y-1)
			case x > 0 && rnd.Intn(2) == 0:
				c = bmp.At(x-1, y)
			default:
				c = byte(rnd.Intn(16))
			}
			bmp.Set(x, y, c)
		}
	}
	return bmp
}

func TestEncodeRoundTrip(t *testing.T) {
	images := []*blit.Bitmap{
		noisyGradient(1, 1, 1),
		noisyGradient(7, 3, 2),
		noisyGradient(224, 136, 3),
		noisyGradient(64, 51, 4),
		blit.New(600, 2),
	}
	for i, img := range images {
		packed := EncodeBitmap(img)
		decoded, err := DecodeBitmap(packed)
		if err != nil {
			t.Fatalf("%d: %v", i, err)
		}
		if decoded.Width != img.Width || decoded.Height != img.Height || !bytes.Equal(decoded.Pix, img.Pix) {
			t.Fatalf("%d: decode(encode(bitmap)) differs from bitmap", i)
		}
		if again := EncodeBitmap(decoded); !bytes.Equal(again, packed) {
			t.Fatalf("%d: re-encoding does not reproduce the packed bytes", i)
		}
	}
}

func TestEncodeUsesEveryOpcode(t *testing.T) {
	seen := map[byte]bool{}
	for _, c := range opcodeCases {
		bmp := &blit.Bitmap{Width: c.w, Height: c.h, Pix: c.expected}
		packed := EncodeBitmap(bmp)
		decoded, err := DecodeBitmap(packed)
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		if !bytes.Equal(decoded.Pix, c.expected) {
			t.Fatalf("%s: round trip differs", c.name)
		}
		seen[packed[4]>>4] = true
	}
	for _, op := range []byte{opByteRun, opWordRun, opRaw} {
		if !seen[op] {
			t.Errorf("opcode %#x never emitted", op)
		}
	}
}
