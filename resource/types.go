package resource

// Kind classifies the items of a graphics file by how they are unpacked.
type Kind uint8

const (
	KindBitmap Kind = iota
	KindFont
	KindSkipped
)

// FontItem holds the 1-bit 5×6 glyph font.
const FontItem = 557

const (
	lastLowBitmap  = 20
	firstHiBitmap  = 22
	lastHighBitmap = 532
)

func (k Kind) String() string {
	switch k {
	case KindBitmap:
		return "Kind(Bitmap)"
	case KindFont:
		return "Kind(Font)"
	case KindSkipped:
		return "Kind(Skipped)"
	}
	return "Kind(UNKNOWN)"
}

// KindOf reports how item index of a graphics file is unpacked. Items 21
// and 533 onward, other than the font, carry no bitmap.
func KindOf(index int) Kind {
	switch {
	case index == FontItem:
		return KindFont
	case index >= 0 && index <= lastLowBitmap:
		return KindBitmap
	case index >= firstHiBitmap && index <= lastHighBitmap:
		return KindBitmap
	}
	return KindSkipped
}
