package screen

import (
	"image"
	"sort"

	"github.com/pkg/errors"
)

// Scaler magnifies a rendered screen for display.
type Scaler interface {
	Scale(src image.Image) image.Image
}

type ScalerFunc func(src image.Image) image.Image

func (f ScalerFunc) Scale(src image.Image) image.Image { return f(src) }

var scalers = map[string]Scaler{
	"1x1":      Scaler1x1{Factor: 1},
	"3x3":      Scaler1x1{Factor: 3},
	"5x6":      Scaler5x6{},
	"5x6-scan": Scaler5x6{Texture: DefaultTextures.ScanLines, Shade: 0.35},
	"5x6-grid": Scaler5x6{Texture: DefaultTextures.Grille, Shade: 0.5},
	"crt":      ScalerFunc(RenderToCRT),
}

// ScalerNamed looks a scaler up by name.
func ScalerNamed(name string) (Scaler, error) {
	s, ok := scalers[name]
	if !ok {
		return nil, errors.Errorf("unknown scaler %q, want one of %v", name, ScalerNames())
	}
	return s, nil
}

func ScalerNames() []string {
	names := make([]string, 0, len(scalers))
	for n := range scalers {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
