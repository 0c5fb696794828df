// Package mangle batch-processes a folder of pictures: resize, convolution
// filters and palette remapping.
package mangle

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"rasterproc/encode"
	"rasterproc/filter"
	"rasterproc/palette"
	"rasterproc/parallel"
	"rasterproc/raster"
)

type CLICmd struct {
	Scan      string      `help:"Source folder to scan" default:"."`
	Dest      string      `help:"Destination folder for processed pictures. Relative to scan dir if not absolute. If same as scan dir, will overwrite source files." default:"mangled"`
	Resize    bool        `help:"Resize image" default:"false" group:"resize"`
	Width     int         `help:"Max width" group:"resize"`
	Height    int         `help:"Max height" group:"resize"`
	Crop      bool        `help:"Crop image to maintain requested aspect ratio" default:"false" group:"resize"`
	Stretch   bool        `help:"Ignore the aspect ratio" default:"false" group:"resize"`
	Fill      string      `help:"If given and not cropping, will fill background with this color to maintain destination aspect ratio" group:"resize"`
	Kernel    []string    `help:"Convolution kernels to apply in order (box, gauss, sharpen, edge1, edge2, edge3, horizontal-edge, vertical-edge, sobel-h, sobel-v, laplacian)" group:"filter"`
	Gray      bool        `help:"Process in grayscale" default:"false" group:"filter"`
	Palette   string      `help:"Palette name or PAL/MAP file to apply" group:"palette"`
	Dither    bool        `help:"Apply dithering" default:"false" group:"palette"`
	Format    string      `help:"Output format of mangled image, 'same' keeps the source format when it can be written" enum:"same,ppm,bmp,tga,png,tiff,jpeg,gif" default:"png"`
	FillColor color.Color `kong:"-"`

	kernels []filter.Kernel  `kong:"-"`
	pal     *palette.Palette `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = errors.New("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	if c.Resize {
		switch {
		case c.Width < 0:
			return fmt.Errorf("invalid resize width: %d", c.Width)
		case c.Height < 0:
			return fmt.Errorf("invalid resize height: %d", c.Height)
		case c.Width == 0 && c.Height == 0:
			return errors.New("no resize dimensions given")
		case c.Crop && c.Stretch:
			return errors.New("crop and stretch are mutually exclusive")
		}
	}

	if !c.Crop && c.Fill != "" {
		if c.FillColor, err = raster.ParseHex(c.Fill); err != nil {
			return err
		}
	}

	c.kernels = c.kernels[:0]
	for _, name := range c.Kernel {
		k, ok := filter.Preset(strings.ToLower(name))
		if !ok {
			return fmt.Errorf("unknown kernel %q", name)
		}
		c.kernels = append(c.kernels, k)
	}

	if c.Palette != "" {
		pal, err := palette.Load(c.Palette)
		if err != nil {
			return err
		}
		c.pal = &pal
	}

	return nil
}

// Run decodes every file of the scan folder on the pool. Kernels run on the
// worker that owns the file.
func (c *CLICmd) Run(pool *parallel.Pool) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var processedCount, errCount atomic.Uint64
	var jobs []func()
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		jobs = append(jobs, func() {
			logger := slog.Default().With("file", filepath.Join(c.Scan, file.Name()))
			if err := c.process(logger, file.Name()); err != nil {
				errCount.Add(1)
				logger.Error("could not process image", "error", err)
				return
			}
			processedCount.Add(1)
		})
	}
	pool.Tasks(jobs...)

	processed := processedCount.Load()
	failed := errCount.Load()
	slog.Info("stats", "processed", processed, "errors", failed,
		"total", processed+failed)

	if failed > 0 {
		return fmt.Errorf("error processing %d files", failed)
	}
	return nil
}

func (c *CLICmd) process(logger *slog.Logger, fileName string) error {
	imgFile, err := os.Open(filepath.Join(c.Scan, fileName))
	if err != nil {
		return fmt.Errorf("could not open image: %w", err)
	}
	img, imgType, err := image.Decode(imgFile)
	if closeErr := imgFile.Close(); closeErr != nil {
		logger.Error("could not close image", "error", closeErr)
	}
	if err != nil {
		return fmt.Errorf("could not decode image: %w", err)
	}

	depth := raster.RGB
	if c.Gray {
		depth = raster.Gray
	}
	b, err := raster.FromImage(img, depth)
	if err != nil {
		return err
	}

	if c.Resize {
		fit := raster.Pad
		switch {
		case c.Crop:
			fit = raster.Crop
		case c.Stretch:
			fit = raster.Stretch
		}
		logger.Debug("resizing", "from", b.Bounds().Size(), "width", c.Width, "height", c.Height, "fit", fit)
		if b, err = raster.Resize(b, c.Width, c.Height, fit, c.FillColor); err != nil {
			return fmt.Errorf("could not resize image: %w", err)
		}
	}

	for i, k := range c.kernels {
		if err = filter.Apply(b, k); err != nil {
			return fmt.Errorf("could not apply kernel %q: %w", c.Kernel[i], err)
		}
	}

	if c.pal != nil {
		b, err = repalette(logger.With("palette", c.Palette), b, c.pal, c.Dither)
		if err != nil {
			return fmt.Errorf("could not change image palette: %w", err)
		}
	}

	f := outputFormat(c.Format, imgType)
	destName := strings.TrimSuffix(fileName, filepath.Ext(fileName)) + "." + string(f)
	return encode.Save(filepath.Join(c.Dest, destName), f, b)
}

// outputFormat resolves "same" to the decoded type, falling back to PNG for
// types without an encoder.
func outputFormat(format, imgType string) encode.Format {
	if format == "same" {
		format = imgType
	}
	f, err := encode.ParseFormat(format)
	if err != nil {
		return encode.PNGFormat
	}
	return f
}
