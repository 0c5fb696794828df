package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"rasterproc/config"
	"rasterproc/generate"
	"rasterproc/mangle"
	"rasterproc/palette"
	"rasterproc/parallel"
)

type CLI struct {
	Debug   bool   `help:"Enable debug logging"`
	Config  string `help:"TOML file with render defaults and fractal presets" type:"existingfile"`
	Workers int    `help:"Number of worker goroutines, 0 uses the configured count or one per CPU"`

	generate.CLICmd

	Mangle  mangle.CLICmd `cmd:"" help:"Resize, filter and remap every picture in a folder"`
	Palette struct {
		List   paletteListCmd   `cmd:"" help:"List the built-in palettes"`
		Export paletteExportCmd `cmd:"" help:"Write a palette as a RIFF PAL file"`
	} `cmd:"" help:"Inspect and convert palettes"`
}

func (c *CLI) Validate(kctx *kong.Context) error {
	if c.Workers < 0 {
		return fmt.Errorf("invalid worker count: %d", c.Workers)
	}
	return nil
}

type paletteListCmd struct{}

func (c *paletteListCmd) Run() error {
	for _, name := range palette.Names() {
		fmt.Fprintln(os.Stdout, name)
	}
	return nil
}

type paletteExportCmd struct {
	Name string `arg:"" help:"Built-in palette name, PAL or MAP file"`
	Dest string `arg:"" help:"Destination PAL file"`
}

func (c *paletteExportCmd) Run() (err error) {
	pal, err := palette.Load(c.Name)
	if err != nil {
		return err
	}

	outFile, err := os.Create(c.Dest)
	if err != nil {
		return fmt.Errorf("could not open destination file %q: %w", c.Dest, err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close destination file %q: %w", c.Dest, closeErr)
		}
	}()

	n, err := palette.WriteRIFF(outFile, pal)
	if err != nil {
		return fmt.Errorf("could not write palette %q: %w", c.Dest, err)
	}
	slog.Info("Palette exported", "palette", c.Name, "file", c.Dest, "colors", n)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("rasterproc"),
		kong.Description("Render fractals, plasma and line art, and run convolution filters over pictures."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.Default()
	if cli.Config != "" {
		var err error
		cfg, err = config.Load(cli.Config)
		if err != nil {
			slog.Error("invalid configuration", "file", cli.Config, "error", err)
		}
		kctx.FatalIfErrorf(err)
	}

	workers := cfg.Render.Workers
	if cli.Workers > 0 {
		workers = cli.Workers
	}
	pool := parallel.Start(workers)
	slog.Debug("running", "command", kctx.Command(), "workers", pool.Workers())

	err := kctx.Run(&cfg, pool)
	pool.Wait(true)
	if err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
	}
	kctx.FatalIfErrorf(err)
}
