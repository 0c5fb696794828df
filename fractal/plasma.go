package fractal

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"

	"rasterproc/raster"
)

// PlasmaParams drives the diamond-square generator. Corners holds the
// starting values for the top-left, top-right, bottom-left and bottom-right
// corners and is used as given. Delta is the initial perturbation amplitude
// and halves at every level.
type PlasmaParams struct {
	Corners [4]int
	Delta   int
	Seed    uint64
}

// DefaultCorners starts every corner at mid-range.
var DefaultCorners = [4]int{128, 128, 128, 128}

type plasma struct {
	b      *raster.Buffer
	colors Colorizer
}

// Plasma fills b with diamond-square noise colored through colors. Output
// depends only on params, not on the pool size.
func Plasma(b *raster.Buffer, colors Colorizer, params PlasmaParams, opts ...Option) error {
	if b == nil {
		return raster.ErrNilBuffer
	}
	if !b.Valid() {
		return raster.ErrNilStorage
	}
	if params.Delta < 0 {
		return fmt.Errorf("%w: negative delta %d", ErrInvalidParams, params.Delta)
	}
	if colors == nil {
		colors = Linear{}
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	slog.Debug("Rendering plasma", "width", b.Width(), "height", b.Height(), "delta", params.Delta, "seed", params.Seed)

	pl := &plasma{b: b, colors: colors}
	rng := rand.New(rand.NewPCG(params.Seed, params.Seed^0x9e3779b97f4a7c15))
	w, h := b.Width(), b.Height()
	c1, c2, c3, c4 := params.Corners[0], params.Corners[1], params.Corners[2], params.Corners[3]

	if w <= 1 && h <= 1 {
		pl.leaf(0, 0, c1, c2, c3, c4)
		return nil
	}

	// Top level split: each quadrant gets its own stream so that the
	// quadrants can be filled concurrently.
	q := pl.split(rng, 0, 0, w, h, c1, c2, c3, c4, params.Delta)
	tasks := make([]func(), 0, len(q))
	for _, r := range q {
		sub := rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64()))
		tasks = append(tasks, func() {
			pl.fill(sub, r)
		})
	}
	o.pool.Tasks(tasks...)

	return nil
}

type region struct {
	x1, y1, x2, y2 int
	c1, c2, c3, c4 int
	delta          int
}

func (pl *plasma) fill(rng *rand.Rand, r region) {
	if r.x2-r.x1 <= 1 && r.y2-r.y1 <= 1 {
		pl.leaf(r.x1, r.y1, r.c1, r.c2, r.c3, r.c4)
		return
	}
	for _, child := range pl.split(rng, r.x1, r.y1, r.x2, r.y2, r.c1, r.c2, r.c3, r.c4, r.delta) {
		pl.fill(rng, child)
	}
}

// split computes the edge midpoints and the perturbed centre of the region
// and returns its non-empty quadrants.
func (pl *plasma) split(rng *rand.Rand, x1, y1, x2, y2, c1, c2, c3, c4, delta int) []region {
	c12 := (c1 + c2) >> 1
	c13 := (c1 + c3) >> 1
	c24 := (c2 + c4) >> 1
	c34 := (c3 + c4) >> 1
	c := (c13 + c24) >> 1
	if max(x2-x1, y2-y1) > 2 && delta > 0 {
		c += rng.IntN(2*delta+1) - delta
	}
	c = clamp(c)
	delta >>= 1

	dx, dy := (x2-x1)>>1, (y2-y1)>>1
	xm, ym := x1+dx, y1+dy
	quads := []region{
		{x1, y1, xm, ym, clamp(c1), c12, c13, c, delta},
		{xm, y1, x2, ym, c12, clamp(c2), c, c24, delta},
		{x1, ym, xm, y2, c13, c, clamp(c3), c34, delta},
		{xm, ym, x2, y2, c, c24, c34, clamp(c4), delta},
	}
	return slices.DeleteFunc(quads, func(q region) bool {
		return q.x2 <= q.x1 || q.y2 <= q.y1
	})
}

func (pl *plasma) leaf(x, y, c1, c2, c3, c4 int) {
	_ = pl.b.SetPixel(x, y, pl.colors.Color(clamp((c1+c2+c3+c4)/4)))
}

func clamp(v int) int {
	return min(max(v, 0), 255)
}
