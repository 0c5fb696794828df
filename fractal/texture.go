package fractal

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"math"
	"slices"

	"rasterproc/raster"
)

// Texture maps a point of the plane straight to a color index.
type Texture func(x, y float64) int

// Circles draws concentric rings: the index is x² + y² wrapped to a byte.
func Circles(x, y float64) int {
	return int(x*x+y*y) & 255
}

// FMSynth draws the interference bands of a frequency modulated sine.
func FMSynth(x, y float64) int {
	v := 100 + 100*math.Sin(x/4+2*math.Sin(x/15+y/40))
	return int(v) & 255
}

var textures = map[string]Texture{
	"circles":  Circles,
	"fm-synth": FMSynth,
}

func LookupTexture(name string) (Texture, bool) {
	t, ok := textures[name]
	return t, ok
}

func TextureNames() []string {
	return slices.Sorted(maps.Keys(textures))
}

// RenderTexture evaluates tex at every pixel of b mapped through rect. A zero
// rect means pixel coordinates and nil colors means Linear.
func RenderTexture(ctx context.Context, b *raster.Buffer, rect Rect, tex Texture, colors Colorizer, opts ...Option) error {
	if b == nil {
		return raster.ErrNilBuffer
	}
	if !b.Valid() {
		return raster.ErrNilStorage
	}
	if tex == nil {
		return fmt.Errorf("%w: no texture", ErrInvalidParams)
	}
	width, height := b.Width(), b.Height()
	if rect == (Rect{}) {
		rect = Rect{XMax: float64(width), YMax: float64(height)}
	}
	if colors == nil {
		colors = Linear{}
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	slog.Debug("Rendering texture", "width", width, "height", height, "workers", o.pool.Workers())

	err := o.pool.Rows(ctx, height, func(y int) {
		for x := range width {
			p := rect.At(x, y, width, height)
			_ = b.SetPixel(x, y, colors.Color(tex(real(p), imag(p))))
		}
	})
	if err != nil {
		return fmt.Errorf("render interrupted: %w", err)
	}
	return nil
}
