// Package generate holds the commands that draw a new picture rather than
// editing existing files.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/alecthomas/kong"

	"rasterproc/config"
	"rasterproc/fractal"
	"rasterproc/parallel"
	"rasterproc/raster"
)

type CLICmd struct {
	Fractal   FractalCmd   `cmd:"" help:"Render an escape-time fractal preset"`
	Plasma    PlasmaCmd    `cmd:"" help:"Render diamond-square plasma noise"`
	Texture   TextureCmd   `cmd:"" help:"Render a procedural texture"`
	Attractor AttractorCmd `cmd:"" help:"Render the orbit of a strange attractor"`
	Lines     LinesCmd     `cmd:"" help:"Draw a line test card"`
	Compose   ComposeCmd   `cmd:"" help:"Interlace or blend two pictures"`
}

type FractalCmd struct {
	Preset  string `arg:"" optional:"" help:"Preset name" default:"mandelbrot"`
	List    bool   `help:"List the available presets and exit"`
	MaxIter int    `help:"Override the preset iteration limit"`
	Palette string `help:"Override the preset palette: built-in name, PAL or MAP file"`
	Size
	Output
}

func (c *FractalCmd) Validate(kctx *kong.Context) error {
	if c.MaxIter < 0 {
		return fmt.Errorf("invalid iteration limit: %d", c.MaxIter)
	}
	return c.validate()
}

func (c *FractalCmd) Run(ctx context.Context, cfg *config.Config, pool *parallel.Pool) error {
	if c.List {
		for _, name := range cfg.Names() {
			fmt.Fprintln(os.Stdout, name)
		}
		return nil
	}

	p, err := cfg.Preset(c.Preset)
	if err != nil {
		return err
	}
	if c.MaxIter > 0 {
		p.MaxIter = c.MaxIter
	}
	if c.Palette != "" {
		p.Palette = c.Palette
	}

	rule, err := p.FractalRule()
	if err != nil {
		return fmt.Errorf("preset %q: %w", p.Name, err)
	}
	colors, err := colorizer(p.Palette)
	if err != nil {
		return err
	}

	w, h := c.resolve(cfg.Render)
	b, err := raster.New(w, h, c.depth())
	if err != nil {
		return err
	}

	params := fractal.Params{
		Rect:    p.FractalRect(w, h),
		Rule:    rule,
		MaxIter: p.MaxIter,
		Colors:  colors,
	}
	if err := fractal.Render(ctx, b, params, fractal.WithPool(pool)); err != nil {
		return err
	}
	return c.save(ctx, b, p.Name, cfg)
}

type PlasmaCmd struct {
	Delta   int    `help:"Initial random displacement, halved at every level" default:"100"`
	Seed    uint64 `help:"Random seed, 0 picks one"`
	Corners []int  `help:"Starting values of the top-left, top-right, bottom-left and bottom-right corners" sep:"," default:"128,128,128,128"`
	Palette string `help:"Built-in palette name, PAL or MAP file" default:"linear"`
	Size
	Output
}

func (c *PlasmaCmd) Validate(kctx *kong.Context) error {
	if c.Delta < 0 {
		return fmt.Errorf("invalid delta: %d", c.Delta)
	}
	if len(c.Corners) != 0 && len(c.Corners) != 4 {
		return fmt.Errorf("expected 4 corner values, got %d", len(c.Corners))
	}
	return c.validate()
}

func (c *PlasmaCmd) Run(ctx context.Context, cfg *config.Config, pool *parallel.Pool) error {
	colors, err := colorizer(c.Palette)
	if err != nil {
		return err
	}

	w, h := c.resolve(cfg.Render)
	b, err := raster.New(w, h, c.depth())
	if err != nil {
		return err
	}

	params := fractal.PlasmaParams{Corners: fractal.DefaultCorners, Delta: c.Delta, Seed: c.Seed}
	if params.Seed == 0 {
		params.Seed = rand.Uint64()
	}
	if len(c.Corners) == 4 {
		copy(params.Corners[:], c.Corners)
	}
	slog.Info("plasma", "seed", params.Seed, "delta", params.Delta, "corners", params.Corners)

	if err := fractal.Plasma(b, colors, params, fractal.WithPool(pool)); err != nil {
		return err
	}
	return c.save(ctx, b, "plasma", cfg)
}
