package screen

import (
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"
)

// RGB12 is a 0x0RGB colour with four bits per channel.
type RGB12 uint16

func (c RGB12) nibbles() (r, g, b uint8) {
	return uint8(c>>8) & 0xF, uint8(c>>4) & 0xF, uint8(c) & 0xF
}

// Colorful expands each nibble n to n*16, the way the hardware palette
// registers were loaded.
func (c RGB12) Colorful() clr.Color {
	r, g, b := c.nibbles()
	return clr.Color{
		R: float64(r<<4) / 255,
		G: float64(g<<4) / 255,
		B: float64(b<<4) / 255,
	}
}

func (c RGB12) RGBA() (r, g, b, a uint32) {
	return c.Colorful().RGBA()
}

type Palette16 [16]RGB12

func (p *Palette16) Palette() color.Palette {
	out := make(color.Palette, len(p))
	for i, c := range p {
		out[i] = c
	}
	return out
}

// DungeonPalette holds one palette per light level, brightest first.
type DungeonPalette [6]Palette16

const (
	PaletteIndexBrightest = 0
	PaletteIndexDarkest   = 5
)

// DefaultDungeonView is the dungeon view palette before any creature
// colour replacement.
var DefaultDungeonView = DungeonPalette{
	{0x000, 0x666, 0x888, 0x620, 0x0CC, 0x840, 0x080, 0x0C0, 0xF00, 0xFA0, 0xC86, 0xFF0, 0x444, 0xAAA, 0x00F, 0xFFF},
	{0x000, 0x444, 0x666, 0x620, 0x0CC, 0x820, 0x060, 0x0A0, 0xC00, 0x000, 0x000, 0xFC0, 0x222, 0x888, 0x00C, 0xCCC},
	{0x000, 0x222, 0x444, 0x420, 0x0CC, 0x620, 0x040, 0x080, 0xA00, 0x000, 0x000, 0xFA0, 0x000, 0x666, 0x00A, 0xAAA},
	{0x000, 0x000, 0x222, 0x200, 0x0CC, 0x420, 0x020, 0x060, 0x800, 0x000, 0x000, 0xC80, 0x000, 0x444, 0x008, 0x888},
	{0x000, 0x000, 0x000, 0x000, 0x0CC, 0x200, 0x000, 0x040, 0x600, 0x000, 0x000, 0xA60, 0x000, 0x222, 0x006, 0x666},
	{0x000, 0x000, 0x000, 0x000, 0x0CC, 0x000, 0x000, 0x020, 0x400, 0x000, 0x000, 0x640, 0x000, 0x000, 0x004, 0x444},
}

var DefaultPalettes = struct {
	Swoosh       Palette16
	MousePointer Palette16
	Credits      Palette16
	Entrance     Palette16
}{
	// the end of the swoosh palette animation
	Swoosh:       Palette16{0x000, 0xFFF, 0xFFF, 0xFFF, 0xFFF, 0xFFF, 0xFFF, 0xFFF, 0x000, 0xFFF, 0xAAA, 0xFFF, 0xAAA, 0x444, 0xFF0, 0xFF0},
	MousePointer: Palette16{0x000, 0x666, 0x888, 0x620, 0x0CC, 0x840, 0x080, 0x0C0, 0xF00, 0xFA0, 0xC86, 0xFF0, 0x000, 0xAAA, 0x00F, 0xFFF},
	Credits:      Palette16{0x006, 0x0AA, 0xFF6, 0x840, 0xFF8, 0x000, 0x080, 0xA00, 0xC84, 0xFFA, 0xF84, 0xFC0, 0xFA0, 0x000, 0x620, 0xFFC},
	Entrance:     Palette16{0x000, 0x666, 0x888, 0x840, 0xCA8, 0x0C0, 0x080, 0x0A0, 0x864, 0xF00, 0xA86, 0x642, 0x444, 0xAAA, 0x620, 0xFFF},
}

// CreatureColors is a replacement for one of the two creature-specific
// palette entries: a colour per light level plus the palette change
// values used when the creature is shrunk to D2 and D3.
type CreatureColors struct {
	RGB [6]RGB12
	D2  byte
	D3  byte
}

var CreatureReplacements = [13]CreatureColors{
	{[6]RGB12{0xCA0, 0xA80, 0x860, 0x640, 0x420, 0x200}, 90, 90},
	{[6]RGB12{0x060, 0x040, 0x020, 0x000, 0x000, 0x000}, 0, 0},
	{[6]RGB12{0x860, 0x640, 0x420, 0x200, 0x000, 0x000}, 100, 100},
	{[6]RGB12{0x640, 0x420, 0x200, 0x000, 0x000, 0x000}, 90, 0},
	{[6]RGB12{0x00A, 0x008, 0x006, 0x004, 0x002, 0x000}, 90, 100},
	{[6]RGB12{0x008, 0x006, 0x004, 0x002, 0x000, 0x000}, 100, 0},
	{[6]RGB12{0x808, 0x606, 0x404, 0x202, 0x000, 0x000}, 90, 0},
	{[6]RGB12{0xA0A, 0x808, 0x606, 0x404, 0x202, 0x000}, 100, 90},
	{[6]RGB12{0xFA0, 0xC80, 0xA60, 0x840, 0x620, 0x400}, 100, 50},
	{[6]RGB12{0xF80, 0xC60, 0xA40, 0x820, 0x600, 0x200}, 50, 70},
	{[6]RGB12{0x800, 0x600, 0x400, 0x200, 0x000, 0x000}, 100, 120},
	{[6]RGB12{0x600, 0x400, 0x200, 0x000, 0x000, 0x000}, 120, 0},
	{[6]RGB12{0xC86, 0xA64, 0x842, 0x620, 0x400, 0x200}, 100, 50},
}
