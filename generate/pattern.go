package generate

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"rasterproc/config"
	"rasterproc/fractal"
	"rasterproc/parallel"
	"rasterproc/raster"
)

type TextureCmd struct {
	Name    string    `arg:"" optional:"" help:"Texture name" default:"circles"`
	List    bool      `help:"List the available textures and exit"`
	Rect    []float64 `help:"Plane region as xmin,ymin,xmax,ymax. Defaults to pixel coordinates" sep:","`
	Palette string    `help:"Built-in palette name, PAL or MAP file" default:"linear"`
	Size
	Output
}

func (c *TextureCmd) Validate(kctx *kong.Context) error {
	if len(c.Rect) != 0 && len(c.Rect) != 4 {
		return fmt.Errorf("expected 4 rect values, got %d", len(c.Rect))
	}
	return c.validate()
}

func (c *TextureCmd) Run(ctx context.Context, cfg *config.Config, pool *parallel.Pool) error {
	if c.List {
		for _, name := range fractal.TextureNames() {
			fmt.Fprintln(os.Stdout, name)
		}
		return nil
	}
	tex, ok := fractal.LookupTexture(strings.ToLower(c.Name))
	if !ok {
		return fmt.Errorf("unknown texture %q", c.Name)
	}
	colors, err := colorizer(c.Palette)
	if err != nil {
		return err
	}

	w, h := c.resolve(cfg.Render)
	b, err := raster.New(w, h, c.depth())
	if err != nil {
		return err
	}
	var rect fractal.Rect
	if len(c.Rect) == 4 {
		rect = fractal.Rect{XMin: c.Rect[0], YMin: c.Rect[1], XMax: c.Rect[2], YMax: c.Rect[3]}
	}
	if err := fractal.RenderTexture(ctx, b, rect, tex, colors, fractal.WithPool(pool)); err != nil {
		return err
	}
	return c.save(ctx, b, c.Name, cfg)
}

// attractorDefault holds coefficients that give a pleasant picture and the
// half-size of the orbit in plane units.
type attractorDefault struct {
	k      [4]float64
	extent float64
}

var attractorDefaults = map[string]attractorDefault{
	"hopalong":      {[4]float64{2, 1, 0}, 8},
	"de-jong":       {[4]float64{1.4, -2.3, 2.4, -2.1}, 2.2},
	"bedhead":       {[4]float64{-0.81, -0.92}, 3},
	"fractal-dream": {[4]float64{-0.966918, 2.879879, 0.765145, 0.744728}, 2},
	"rampe1":        {[4]float64{-2.7918, 2.1196, 1.0284, 0.1384}, 2.2},
	"rampe2":        {[4]float64{1.4, -2.3, 2.4, -2.1}, 3.5},
	"rampe3":        {[4]float64{2.6, 1.8, 0.7, 0.5}, 2},
}

type AttractorCmd struct {
	Name    string    `arg:"" optional:"" help:"Attractor name" default:"de-jong"`
	List    bool      `help:"List the available attractors and exit"`
	K       []float64 `help:"Coefficients a,b,c,d. Defaults depend on the attractor" sep:","`
	Points  int       `help:"Orbit length" default:"1000000"`
	Scale   float64   `help:"Pixels per plane unit, 0 fits the orbit to the image"`
	Palette string    `help:"Built-in palette name, PAL or MAP file" default:"linear"`
	Size
	Output
}

func (c *AttractorCmd) Validate(kctx *kong.Context) error {
	if len(c.K) > 4 {
		return fmt.Errorf("expected at most 4 coefficients, got %d", len(c.K))
	}
	if c.Points < 0 || c.Scale < 0 {
		return fmt.Errorf("invalid points %d or scale %g", c.Points, c.Scale)
	}
	return c.validate()
}

func (c *AttractorCmd) Run(ctx context.Context, cfg *config.Config) error {
	if c.List {
		for _, name := range fractal.AttractorNames() {
			fmt.Fprintln(os.Stdout, name)
		}
		return nil
	}
	name := strings.ToLower(c.Name)
	m, ok := fractal.LookupAttractor(name)
	if !ok {
		return fmt.Errorf("unknown attractor %q", c.Name)
	}
	colors, err := colorizer(c.Palette)
	if err != nil {
		return err
	}

	w, h := c.resolve(cfg.Render)
	b, err := raster.New(w, h, c.depth())
	if err != nil {
		return err
	}

	def := attractorDefaults[name]
	params := fractal.AttractorParams{
		Map:    m,
		K:      def.k,
		Points: c.Points,
		Scale:  c.Scale,
		Colors: colors,
	}
	if len(c.K) > 0 {
		params.K = [4]float64{}
		copy(params.K[:], c.K)
	}
	if params.Scale == 0 {
		params.Scale = float64(min(w, h)) / 2 / def.extent
	}
	if err := fractal.RenderAttractor(ctx, b, params); err != nil {
		return err
	}
	return c.save(ctx, b, name, cfg)
}
