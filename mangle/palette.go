package mangle

import (
	"image"
	"log/slog"

	"golang.org/x/image/draw"

	"rasterproc/palette"
	"rasterproc/raster"
)

func repalette(logger *slog.Logger, b *raster.Buffer, pal *palette.Palette, dither bool) (*raster.Buffer, error) {
	logger.Info("applying palette", "colors", palette.Size, "dither", dither)
	r := b.Bounds()
	dest := image.NewPaletted(r, pal.ColorPalette())

	if dither {
		draw.FloydSteinberg.Draw(dest, r, b, r.Min)
	} else {
		draw.Draw(dest, r, b, r.Min, draw.Src)
	}
	return raster.FromImage(dest, b.Depth())
}
