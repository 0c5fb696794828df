package generate

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"rasterproc/config"
	"rasterproc/raster"
)

var composers = map[string]func(dst, src1, src2 *raster.Buffer) error{
	"columns": raster.InterlaceColumns,
	"rows":    raster.InterlaceRows,
	"checker": raster.Checkerboard,
	"blend":   raster.Blend,
}

type ComposeCmd struct {
	First  string `arg:"" type:"existingfile" help:"First picture"`
	Second string `arg:"" type:"existingfile" help:"Second picture, scaled to the size of the first"`
	Mode   string `help:"How pictures are combined" enum:"columns,rows,checker,blend" default:"blend"`
	Output
}

func (c *ComposeCmd) Run(ctx context.Context, cfg *config.Config) error {
	depth := c.depth()
	src1, err := loadPicture(c.First, depth)
	if err != nil {
		return err
	}
	src2, err := loadPicture(c.Second, depth)
	if err != nil {
		return err
	}
	if src1.Bounds() != src2.Bounds() {
		slog.Debug("scaling second picture", "from", src2.Bounds().Size(), "to", src1.Bounds().Size())
		if src2, err = raster.Resize(src2, src1.Width(), src1.Height(), raster.Stretch, nil); err != nil {
			return err
		}
	}

	dst, err := raster.New(src1.Width(), src1.Height(), depth)
	if err != nil {
		return err
	}
	if err := composers[c.Mode](dst, src1, src2); err != nil {
		return fmt.Errorf("could not compose %q and %q: %w", c.First, c.Second, err)
	}
	return c.save(ctx, dst, c.Mode, cfg)
}

func loadPicture(path string, depth raster.Depth) (*raster.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close image", "file", path, "error", closeErr)
		}
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode image %q: %w", path, err)
	}
	return raster.FromImage(img, depth)
}
