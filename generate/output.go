package generate

import (
	"context"
	"fmt"
	"strings"

	"rasterproc/config"
	"rasterproc/encode"
	"rasterproc/fractal"
	"rasterproc/palette"
	"rasterproc/raster"
)

type Output struct {
	Out    string   `help:"Output path. The extension of each format is appended unless the path already names one" short:"o"`
	Format []string `help:"Output formats (ppm, bmp, tga, png, tiff, jpeg, gif). Defaults to the configured formats" short:"f" sep:","`
	Depth  string   `help:"Pixel layout of the rendered buffer" enum:"gray,rgb,rgba" default:"rgb"`
}

func (o *Output) targets(name string, defaults []string) ([]encode.Target, error) {
	base := o.Out
	if base == "" {
		base = name
	}
	if len(o.Format) == 0 {
		if f, err := encode.FormatOf(base); err == nil {
			return []encode.Target{{Path: base, Format: f}}, nil
		}
	}

	formats := o.Format
	if len(formats) == 0 {
		formats = defaults
	}
	if len(formats) == 0 {
		formats = []string{string(encode.PNGFormat)}
	}

	targets := make([]encode.Target, 0, len(formats))
	for _, s := range formats {
		f, err := encode.ParseFormat(s)
		if err != nil {
			return nil, err
		}
		targets = append(targets, encode.Target{Path: base + "." + string(f), Format: f})
	}
	return targets, nil
}

func (o *Output) depth() raster.Depth {
	switch o.Depth {
	case "gray":
		return raster.Gray
	case "rgba":
		return raster.RGBA
	}
	return raster.RGB
}

// save writes b to every target derived from o.
func (o *Output) save(ctx context.Context, b *raster.Buffer, name string, cfg *config.Config) error {
	targets, err := o.targets(name, cfg.Render.Formats)
	if err != nil {
		return err
	}
	return encode.SaveAll(ctx, b, targets)
}

type Size struct {
	Width  int `help:"Image width, 0 uses the configured width"`
	Height int `help:"Image height, 0 uses the configured height"`
}

func (s *Size) validate() error {
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("invalid size %dx%d", s.Width, s.Height)
	}
	return nil
}

func (s *Size) resolve(r config.Render) (int, int) {
	w, h := s.Width, s.Height
	if w == 0 {
		w = r.Width
	}
	if h == 0 {
		h = r.Height
	}
	return w, h
}

// colorizer maps an empty name to the linear ramp and anything else to a
// palette.
func colorizer(name string) (fractal.Colorizer, error) {
	if name == "" || strings.EqualFold(name, "linear") {
		return fractal.Linear{}, nil
	}
	pal, err := palette.Load(name)
	if err != nil {
		return nil, err
	}
	return &pal, nil
}
