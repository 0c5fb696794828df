package generate

import (
	"context"
	"fmt"
	"image/color"
	"math"

	"github.com/alecthomas/kong"

	"rasterproc/config"
	"rasterproc/raster"
	"rasterproc/rasterize"
)

type LinesCmd struct {
	Rays       int    `help:"Number of rays drawn from the center" default:"24"`
	Step       int    `help:"Grid spacing, 0 disables the grid" default:"32"`
	Antialias  bool   `help:"Draw the rays antialiased" default:"true" negatable:""`
	Background string `help:"Background color" default:"#000000"`
	GridColor  string `help:"Grid color" default:"#303030"`
	Color      string `help:"Ray and border color" default:"#ffffff"`
	Size
	Output

	bg, grid, fg color.NRGBA `kong:"-"`
}

func (c *LinesCmd) Validate(kctx *kong.Context) error {
	if c.Rays < 0 || c.Step < 0 {
		return fmt.Errorf("invalid rays %d or grid step %d", c.Rays, c.Step)
	}
	var err error
	if c.bg, err = raster.ParseHex(c.Background); err != nil {
		return err
	}
	if c.grid, err = raster.ParseHex(c.GridColor); err != nil {
		return err
	}
	if c.fg, err = raster.ParseHex(c.Color); err != nil {
		return err
	}
	return c.validate()
}

func (c *LinesCmd) Run(ctx context.Context, cfg *config.Config) error {
	w, h := c.resolve(cfg.Render)
	b, err := raster.New(w, h, c.depth())
	if err != nil {
		return err
	}
	if err := c.draw(b); err != nil {
		return err
	}
	return c.save(ctx, b, "lines", cfg)
}

func (c *LinesCmd) draw(b *raster.Buffer) error {
	w, h := b.Width(), b.Height()
	for y := range h {
		if err := rasterize.HLine(b, 0, w-1, y, c.bg); err != nil {
			return err
		}
	}

	if c.Step > 0 {
		if err := rasterize.Grid(b, c.Step, c.grid); err != nil {
			return err
		}
	}

	line := rasterize.Line
	if c.Antialias {
		line = rasterize.AALine
	}
	cx, cy := w/2, h/2
	r := max(float64(min(w, h))/2-1, 0)
	for i := range c.Rays {
		a := 2 * math.Pi * float64(i) / float64(c.Rays)
		x := cx + int(math.Round(r*math.Cos(a)))
		y := cy + int(math.Round(r*math.Sin(a)))
		if err := line(b, cx, cy, x, y, c.fg); err != nil {
			return err
		}
	}

	return rasterize.Rect(b, 0, 0, w-1, h-1, c.fg)
}
