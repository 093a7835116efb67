package screen

import (
	"strings"

	"github.com/pkg/errors"
)

// TextureBlock covers the 5×6 output pixels of one source pixel. A set
// bit keeps the pixel colour, a clear bit shades it.
type TextureBlock [6][5]bool

// Texture tiles blocks over the source image, row by row.
type Texture [][]TextureBlock

func (t Texture) at(x, y int) *TextureBlock {
	row := t[y%len(t)]
	return &row[x%len(row)]
}

// TextureFromTemplate reads a texture drawn with one character per output
// pixel. '_', '-' and '0' are shaded, everything else is kept.
func TextureFromTemplate(s string) (Texture, error) {
	var lines [][]rune
	for _, l := range strings.Split(strings.Trim(s, "\n"), "\n") {
		lines = append(lines, []rune(strings.TrimSpace(l)))
	}

	if len(lines) == 0 || len(lines)%6 != 0 {
		return nil, errors.Errorf("invalid template height: %d is not a multiple of 6", len(lines))
	}
	width := len(lines[0])
	for _, line := range lines {
		if len(line) != width {
			return nil, errors.Errorf("invalid template width: %d is abnormal", len(line))
		}
	}
	if width == 0 || width%5 != 0 {
		return nil, errors.Errorf("invalid template width: %d is not divisible by 5", width)
	}

	var tex Texture
	for h := 0; h < len(lines)/6; h++ {
		var row []TextureBlock
		for w := 0; w < width/5; w++ {
			var block TextureBlock
			for y := 0; y < 6; y++ {
				line := lines[h*6+y]
				for x := 0; x < 5; x++ {
					tr := line[w*5+x]
					block[y][x] = tr != '_' && tr != '-' && tr != '0'
				}
			}
			row = append(row, block)
		}
		tex = append(tex, row)
	}
	return tex, nil
}

func mustTexture(s string) Texture {
	t, err := TextureFromTemplate(s)
	if err != nil {
		panic(err)
	}
	return t
}

var DefaultTextures = struct {
	// ScanLines shades the last row of every pixel.
	ScanLines Texture
	// Grille shades a column and a row, like an aperture grille.
	Grille Texture
	// Dither shades every other output pixel.
	Dither Texture
}{
	ScanLines: mustTexture(`
XXXXX
XXXXX
XXXXX
XXXXX
XXXXX
_____
`),

	Grille: mustTexture(`
XXXX_
XXXX_
XXXX_
XXXX_
XXXX_
_____
`),

	Dither: mustTexture(`
X_X_X_X_X_
_X_X_X_X_X
X_X_X_X_X_
_X_X_X_X_X
X_X_X_X_X_
_X_X_X_X_X
`),
}
