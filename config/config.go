// Package config loads render defaults and named fractal presets from TOML.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"rasterproc/fractal"
)

var ErrUnknownPreset = errors.New("unknown preset")

type Config struct {
	Render  Render   `toml:"render"`
	Fractal []Preset `toml:"fractal"`
}

type Render struct {
	Width   int      `toml:"width"`
	Height  int      `toml:"height"`
	Workers int      `toml:"workers"`
	Formats []string `toml:"formats"`
}

// View mirrors fractal.View; a zero scale means "not set".
type View struct {
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
	Scale float64 `toml:"scale"`
}

// Preset describes one fractal. Terms (C, Seed, First, Second) are either
// "pixel", "zero" or a complex literal such as "0.285+0.01i".
//
// Rule is hybrid, mandeljulia or any fractal.FamilyNames entry. Julia
// families need C; for the others C is an optional starting z₀.
type Preset struct {
	Name      string     `toml:"name"`
	Rule      string     `toml:"rule"`
	C         string     `toml:"c"`
	Seed      string     `toml:"seed"`
	First     string     `toml:"first"`
	Second    string     `toml:"second"`
	Switch    string     `toml:"switch"` // never, alternate or threshold
	Threshold int        `toml:"threshold"`
	Angle     float64    `toml:"angle"` // degrees
	View      View       `toml:"view"`
	Rect      [4]float64 `toml:"rect"`
	MaxIter   int        `toml:"maxiter"`
	Bailout   float64    `toml:"bailout"` // squared escape radius, 0 keeps the rule's own
	Palette   string     `toml:"palette"`
}

// Load reads path on top of Default. Presets in the file replace built-in
// presets of the same name. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("could not read config %q: %w", path, err)
	}

	var file Config
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return cfg, fmt.Errorf("could not parse config %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("unknown keys in config %q: %s", path, strings.Join(keys, ", "))
	}

	if md.IsDefined("render", "width") {
		cfg.Render.Width = file.Render.Width
	}
	if md.IsDefined("render", "height") {
		cfg.Render.Height = file.Render.Height
	}
	if md.IsDefined("render", "workers") {
		cfg.Render.Workers = file.Render.Workers
	}
	if md.IsDefined("render", "formats") {
		cfg.Render.Formats = file.Render.Formats
	}

	for _, p := range file.Fractal {
		if _, err := p.FractalRule(); err != nil {
			return cfg, fmt.Errorf("preset %q: %w", p.Name, err)
		}
		if i := slices.IndexFunc(cfg.Fractal, func(q Preset) bool { return q.Name == p.Name }); i >= 0 {
			cfg.Fractal[i] = p
		} else {
			cfg.Fractal = append(cfg.Fractal, p)
		}
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Render.Width <= 0 || c.Render.Height <= 0:
		return fmt.Errorf("invalid render size %dx%d", c.Render.Width, c.Render.Height)
	case c.Render.Workers < 0:
		return fmt.Errorf("invalid worker count: %d", c.Render.Workers)
	}
	for _, p := range c.Fractal {
		if p.Name == "" {
			return errors.New("preset without a name")
		}
		if p.MaxIter <= 0 {
			return fmt.Errorf("preset %q: maxiter must be positive, got %d", p.Name, p.MaxIter)
		}
	}
	return nil
}

// Preset returns the preset called name.
func (c Config) Preset(name string) (Preset, error) {
	for _, p := range c.Fractal {
		if p.Name == name {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Names lists the preset names in file order.
func (c Config) Names() []string {
	names := make([]string, len(c.Fractal))
	for i, p := range c.Fractal {
		names[i] = p.Name
	}
	return names
}

// FractalRule builds the iteration rule described by p.
func (p Preset) FractalRule() (fractal.Rule, error) {
	if p.Bailout < 0 {
		return fractal.Rule{}, fmt.Errorf("negative bailout %g", p.Bailout)
	}
	r, err := p.rule()
	if err != nil {
		return fractal.Rule{}, err
	}
	if p.Bailout > 0 {
		r.Bailout = p.Bailout
	}
	return r, nil
}

func (p Preset) rule() (fractal.Rule, error) {
	name := strings.ToLower(p.Rule)
	switch name {
	case "", "mandelbrot":
		return fractal.Mandelbrot(), nil
	case "julia":
		c, err := parseComplex(p.C)
		if err != nil {
			return fractal.Rule{}, fmt.Errorf("invalid c: %w", err)
		}
		return fractal.Julia(c), nil
	case "mandeljulia":
		c, err := parseComplex(p.C)
		if err != nil {
			return fractal.Rule{}, fmt.Errorf("invalid c: %w", err)
		}
		return fractal.MandelJulia(c, p.Angle*math.Pi/180), nil
	case "hybrid":
		seed, err := parseTerm(p.Seed, fractal.Const(0))
		if err != nil {
			return fractal.Rule{}, fmt.Errorf("invalid seed: %w", err)
		}
		first, err := parseTerm(p.First, fractal.Pixel)
		if err != nil {
			return fractal.Rule{}, fmt.Errorf("invalid first term: %w", err)
		}
		second, err := parseTerm(p.Second, first)
		if err != nil {
			return fractal.Rule{}, fmt.Errorf("invalid second term: %w", err)
		}
		s, err := p.strategy()
		if err != nil {
			return fractal.Rule{}, err
		}
		return fractal.Hybrid(seed, first, second, s), nil
	}

	fam, ok := fractal.LookupFamily(name)
	if !ok {
		return fractal.Rule{}, fmt.Errorf("unknown rule %q", p.Rule)
	}
	var c complex128
	if fam.Julia || strings.TrimSpace(p.C) != "" {
		var err error
		if c, err = parseComplex(p.C); err != nil {
			return fractal.Rule{}, fmt.Errorf("invalid c: %w", err)
		}
	}
	return fam.Rule(c), nil
}

func (p Preset) strategy() (fractal.SwitchStrategy, error) {
	switch strings.ToLower(p.Switch) {
	case "", "never":
		return fractal.Never, nil
	case "alternate":
		return fractal.Alternate, nil
	case "threshold":
		if p.Threshold < 0 {
			return nil, fmt.Errorf("negative threshold %d", p.Threshold)
		}
		return fractal.Threshold{After: p.Threshold}, nil
	}
	return nil, fmt.Errorf("unknown switch strategy %q", p.Switch)
}

// FractalRect returns the complex-plane region for a width×height render:
// the view if it has a scale, the rect if set, DefaultRect otherwise.
func (p Preset) FractalRect(width, height int) fractal.Rect {
	switch {
	case p.View.Scale > 0:
		return fractal.View{CenterX: p.View.X, CenterY: p.View.Y, Scale: p.View.Scale}.Rect(width, height)
	case p.Rect != [4]float64{}:
		return fractal.Rect{XMin: p.Rect[0], YMin: p.Rect[1], XMax: p.Rect[2], YMax: p.Rect[3]}
	}
	return fractal.DefaultRect
}

func parseTerm(s string, def fractal.Term) (fractal.Term, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return def, nil
	case "pixel":
		return fractal.Pixel, nil
	case "zero":
		return fractal.Const(0), nil
	}
	c, err := parseComplex(s)
	if err != nil {
		return fractal.Term{}, err
	}
	return fractal.Const(c), nil
}

func parseComplex(s string) (complex128, error) {
	if strings.TrimSpace(s) == "" {
		return 0, errors.New("missing complex constant")
	}
	return strconv.ParseComplex(strings.ReplaceAll(s, " ", ""), 128)
}
