package palette

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Size is the number of entries in every palette.
const Size = 256

// Palette maps an iteration count or plasma value to a color. Entries carry
// no alpha; Color always returns opaque colors.
type Palette [Size]RGB

type RGB struct {
	R, G, B uint8
}

// Color returns the entry at i clamped to [0, 255].
func (p *Palette) Color(i int) color.NRGBA {
	c := p[min(max(i, 0), Size-1)]
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// ColorPalette converts p for use with image.Paletted and the RIFF writer.
func (p *Palette) ColorPalette() color.Palette {
	pal := make(color.Palette, Size)
	for i, c := range p {
		pal[i] = color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
	}
	return pal
}

// FromColors builds a palette from up to 256 colors; missing entries stay
// black.
func FromColors(colors color.Palette) (Palette, error) {
	var p Palette
	if len(colors) > Size {
		return p, fmt.Errorf("palette has %d colors, at most %d supported", len(colors), Size)
	}
	for i, col := range colors {
		c := color.NRGBAModel.Convert(col).(color.NRGBA)
		p[i] = RGB{R: c.R, G: c.G, B: c.B}
	}
	return p, nil
}

var builtins = map[string]func() Palette{
	"grayscale": Grayscale,
	"greens":    Greens,
	"blues":     Blues,
	"linear":    Linear,
	"fire":      func() Palette { return Gradient(RGB{}, RGB{R: 255, G: 200}) },
}

// Names lists the built-in palettes.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Load resolves a built-in palette name, or reads a RIFF PAL file (.pal) or a
// Fractint map file (.map).
func Load(name string) (Palette, error) {
	if gen, ok := builtins[strings.ToLower(name)]; ok {
		return gen(), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return Palette{}, fmt.Errorf("unknown palette %q: %w", name, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(name)) {
	case ".pal":
		return LoadRIFF(f)
	case ".map":
		return LoadMap(f)
	}
	return Palette{}, fmt.Errorf("unsupported palette file %q: expected .pal or .map", name)
}
