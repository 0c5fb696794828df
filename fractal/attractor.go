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

// Map advances a point of a two-dimensional strange attractor with the
// coefficients a, b, c and d.
type Map func(x, y float64, k [4]float64) (float64, float64)

// Hopalong is Martin's map. The square-root term only applies right of the
// y axis.
func Hopalong(x, y float64, k [4]float64) (float64, float64) {
	step := 0.0
	if x > 0 {
		step = math.Sqrt(math.Abs(k[1]*x - k[2]))
	}
	return y - step, k[0] - x
}

func DeJong(x, y float64, k [4]float64) (float64, float64) {
	return math.Sin(k[0]*y) - math.Cos(k[1]*x), math.Sin(k[2]*x) - math.Cos(k[3]*y)
}

func Bedhead(x, y float64, k [4]float64) (float64, float64) {
	return math.Sin(x*y/k[1])*y + math.Cos(k[0]*x-y), x + math.Sin(y)/k[1]
}

func FractalDream(x, y float64, k [4]float64) (float64, float64) {
	return math.Sin(k[1]*y) - k[2]*math.Sin(k[1]*x), math.Sin(k[0]*x) - k[3]*math.Sin(k[0]*y)
}

// Rampe1, Rampe2 and Rampe3 are Jason Rampe's sine and cosine variations.
func Rampe1(x, y float64, k [4]float64) (float64, float64) {
	return math.Cos(k[1]*y) + k[2]*math.Sin(k[1]*x), math.Cos(k[0]*x) + k[3]*math.Sin(k[0]*y)
}

func Rampe2(x, y float64, k [4]float64) (float64, float64) {
	return math.Cos(k[1]*y) + k[2]*math.Cos(k[1]*x), math.Cos(k[0]*x) + k[3]*math.Cos(k[0]*y)
}

func Rampe3(x, y float64, k [4]float64) (float64, float64) {
	return math.Sin(k[1]*y) + k[2]*math.Cos(k[1]*x), math.Cos(k[0]*x) + k[3]*math.Sin(k[0]*y)
}

var attractors = map[string]Map{
	"hopalong":      Hopalong,
	"de-jong":       DeJong,
	"bedhead":       Bedhead,
	"fractal-dream": FractalDream,
	"rampe1":        Rampe1,
	"rampe2":        Rampe2,
	"rampe3":        Rampe3,
}

func LookupAttractor(name string) (Map, bool) {
	m, ok := attractors[name]
	return m, ok
}

func AttractorNames() []string {
	return slices.Sorted(maps.Keys(attractors))
}

const (
	// settlePoints are iterated before hits are counted.
	settlePoints = 100
	maxHits      = 200
	// pollPoints is how often a running orbit checks its context.
	pollPoints = 1 << 16
)

// AttractorParams selects what RenderAttractor draws. Points land at
// center + Scale·(x, y) + Offset.
type AttractorParams struct {
	Map    Map
	K      [4]float64
	Points int
	Scale  float64
	Offset [2]float64
	Colors Colorizer
}

// RenderAttractor follows one orbit of params.Map from the origin, counts
// how often each pixel is hit, at most maxHits times, and colors b by the
// counts stretched to 0..255. The orbit is sequential, so there is no pool
// option.
func RenderAttractor(ctx context.Context, b *raster.Buffer, params AttractorParams) error {
	if b == nil {
		return raster.ErrNilBuffer
	}
	if !b.Valid() {
		return raster.ErrNilStorage
	}
	switch {
	case params.Map == nil:
		return fmt.Errorf("%w: no attractor map", ErrInvalidParams)
	case params.Points <= 0:
		return fmt.Errorf("%w: point count must be positive, got %d", ErrInvalidParams, params.Points)
	case params.Scale <= 0:
		return fmt.Errorf("%w: scale must be positive, got %g", ErrInvalidParams, params.Scale)
	}
	colors := params.Colors
	if colors == nil {
		colors = Linear{}
	}

	width, height := b.Width(), b.Height()
	slog.Debug("Rendering attractor", "width", width, "height", height, "points", params.Points)

	hits := make([]int, width*height)
	cx := float64(width)/2 + params.Offset[0]
	cy := float64(height)/2 + params.Offset[1]
	x, y := 0.0, 0.0
	for i := range params.Points {
		if i%pollPoints == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("render interrupted: %w", err)
			}
		}
		x, y = params.Map(x, y, params.K)
		if i < settlePoints {
			continue
		}
		px := int(math.Floor(cx + params.Scale*x))
		py := int(math.Floor(cy + params.Scale*y))
		if px < 0 || py < 0 || px >= width || py >= height {
			continue
		}
		if h := &hits[py*width+px]; *h < maxHits {
			*h++
		}
	}

	lo, hi := slices.Min(hits), slices.Max(hits)
	span := max(hi-lo, 1)
	for py := range height {
		for px := range width {
			_ = b.SetPixel(px, py, colors.Color((hits[py*width+px]-lo)*255/span))
		}
	}
	return nil
}
