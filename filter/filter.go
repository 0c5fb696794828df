package filter

import (
	"context"
	"image/color"

	"rasterproc/parallel"
	"rasterproc/raster"
)

type options struct {
	pool *parallel.Pool
	ctx  context.Context
}

type Option func(*options)

// WithPool spreads the interior rows over the workers of p.
func WithPool(p *parallel.Pool) Option {
	return func(o *options) {
		o.pool = p
	}
}

// WithContext stops scheduling rows once ctx is done. A cancelled run leaves
// the buffer untouched.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

// Apply convolves b with k. Pixels closer than Size/2 to an edge keep their
// value; interior pixels receive the clamped weighted sum with alpha 0. Every
// neighbor read sees the unfiltered image.
func Apply(b *raster.Buffer, k Kernel, opts ...Option) error {
	if b == nil {
		return raster.ErrNilBuffer
	}
	if !b.Valid() {
		return raster.ErrNilStorage
	}
	if err := k.Validate(); err != nil {
		return err
	}

	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	dst := raster.Clone(b)
	limit := k.Size / 2
	width, height := b.Width(), b.Height()

	err := o.pool.Rows(o.ctx, height-2*limit, func(row int) {
		y := row + limit
		var src color.NRGBA
		for x := limit; x < width-limit; x++ {
			var r, g, bl int
			for dy := -limit; dy <= limit; dy++ {
				for dx := -limit; dx <= limit; dx++ {
					_ = b.PixelInto(x+dx, y+dy, &src)
					w := k.weight(dx, dy)
					r += int(src.R) * w
					g += int(src.G) * w
					bl += int(src.B) * w
				}
			}
			_ = dst.SetPixel(x, y, color.NRGBA{
				R: clamp(r / k.Divisor),
				G: clamp(g / k.Divisor),
				B: clamp(bl / k.Divisor),
			})
		}
	})
	if err != nil {
		return err
	}

	return b.CopyFrom(dst)
}

// Filtered returns a filtered copy of b and leaves b unchanged.
func Filtered(b *raster.Buffer, k Kernel, opts ...Option) (*raster.Buffer, error) {
	if b == nil {
		return nil, raster.ErrNilBuffer
	}
	out := raster.Clone(b)
	if err := Apply(out, k, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func clamp(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}
