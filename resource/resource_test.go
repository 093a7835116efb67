package resource

import (
	"bytes"
	"testing"

	"github.com/32bitkid/dm/blit"
)

func TestItemTable(t *testing.T) {
	table := ItemTable{
		CompressedSizes:   []uint16{10, 20, 5},
		DecompressedSizes: []uint16{64, 128, 0},
	}

	var buf bytes.Buffer
	n, err := table.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 14 || int64(buf.Len()) != n {
		t.Fatalf("expected(14) != actual(%d, %d)", n, buf.Len())
	}
	if expected := []byte{0, 3, 0, 10, 0, 20, 0, 5}; !bytes.Equal(buf.Bytes()[:8], expected) {
		t.Fatalf("expected(%v) != actual(%v)", expected, buf.Bytes()[:8])
	}

	parsed, err := ParseItemTable(&buf)
	if err != nil {
		t.Fatal(err)
	}
	offsets := []int64{0, 10, 30, 35}
	for i, expected := range offsets {
		if actual := parsed.Offset(i); actual != expected {
			t.Errorf("%d: expected(%d) != actual(%d)", i, expected, actual)
		}
	}
	if parsed.HeaderSize() != 14 || parsed.DataSize() != 35 {
		t.Errorf("unexpected sizes %d %d", parsed.HeaderSize(), parsed.DataSize())
	}
}

func TestItemTableTruncated(t *testing.T) {
	if _, err := ParseItemTable(bytes.NewReader([]byte{0, 2, 0, 1})); err == nil {
		t.Fatal("expected error")
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		index int
		kind  Kind
	}{
		{0, KindBitmap}, {20, KindBitmap}, {21, KindSkipped}, {22, KindBitmap},
		{532, KindBitmap}, {533, KindSkipped}, {FontItem, KindFont}, {560, KindSkipped},
	}
	for _, c := range cases {
		if actual := KindOf(c.index); actual != c.kind {
			t.Errorf("%d: expected(%v) != actual(%v)", c.index, c.kind, actual)
		}
	}
}

func TestDecodeFont(t *testing.T) {
	packed := make([]byte, FontGlyphs*FontGlyphHeight)
	// glyph 1, top row: 10101; glyph 0, bottom row: 11111 with junk high bits
	packed[1] = 0x15
	packed[5*FontGlyphs] = 0xFF

	bmp, err := DecodeFont(packed)
	if err != nil {
		t.Fatal(err)
	}
	if bmp.Width != 768 || bmp.Height != 6 {
		t.Fatalf("expected(768x6) != actual(%dx%d)", bmp.Width, bmp.Height)
	}
	if row := bmp.Pix[6:12]; !bytes.Equal(row, []byte{0, 1, 0, 1, 0, 1}) {
		t.Fatalf("glyph 1 row 0: %v", row)
	}
	if row := bmp.Pix[5*768 : 5*768+6]; !bytes.Equal(row, []byte{0, 1, 1, 1, 1, 1}) {
		t.Fatalf("glyph 0 row 5: %v", row)
	}

	repacked, err := EncodeFont(bmp)
	if err != nil {
		t.Fatal(err)
	}
	packed[5*FontGlyphs] = 0x1F
	if !bytes.Equal(repacked, packed) {
		t.Fatal("font round trip differs")
	}

	if _, err := DecodeFont(packed[:10]); err == nil {
		t.Fatal("expected truncated font error")
	}
	if _, err := EncodeFont(blit.New(4, 4)); err == nil {
		t.Fatal("expected size error")
	}
}
