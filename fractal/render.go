package fractal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"rasterproc/parallel"
	"rasterproc/raster"
)

var ErrInvalidParams = errors.New("invalid render parameters")

type options struct {
	pool *parallel.Pool
}

type Option func(*options)

// WithPool spreads the work over the workers of p.
func WithPool(p *parallel.Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// Params selects what Render draws. A zero Rect means DefaultRect and a nil
// Colors means Linear.
type Params struct {
	Rect    Rect
	Rule    Rule
	MaxIter int
	Colors  Colorizer
}

// Render evaluates every pixel of b. Rows are independent; ctx is polled
// between rows and a cancelled render leaves the remaining rows untouched.
func Render(ctx context.Context, b *raster.Buffer, params Params, opts ...Option) error {
	if b == nil {
		return raster.ErrNilBuffer
	}
	if !b.Valid() {
		return raster.ErrNilStorage
	}
	if params.MaxIter <= 0 {
		return fmt.Errorf("%w: maximum iterations must be positive, got %d", ErrInvalidParams, params.MaxIter)
	}
	rect := params.Rect
	if rect == (Rect{}) {
		rect = DefaultRect
	}
	colors := params.Colors
	if colors == nil {
		colors = Linear{}
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	width, height := b.Width(), b.Height()
	start := time.Now()
	slog.Debug("Rendering fractal", "width", width, "height", height, "maxiter", params.MaxIter, "workers", o.pool.Workers())

	err := o.pool.Rows(ctx, height, func(y int) {
		for x := range width {
			i := params.Rule.Iterations(rect.At(x, y, width, height), params.MaxIter)
			_ = b.SetPixel(x, y, colors.Color(i))
		}
	})
	if err != nil {
		return fmt.Errorf("render interrupted: %w", err)
	}

	slog.Debug("Fractal rendered", "elapsed", time.Since(start))
	return nil
}
