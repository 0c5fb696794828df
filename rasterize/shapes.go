package rasterize

import (
	"fmt"
	"image/color"

	"rasterproc/raster"
)

// Rect outlines the rectangle spanned by two opposite corners. Both corners
// must lie inside the buffer.
func Rect(b *raster.Buffer, x1, y1, x2, y2 int, c color.NRGBA) error {
	if err := check(b); err != nil {
		return err
	}
	if !b.InBounds(x1, y1) || !b.InBounds(x2, y2) {
		return raster.ErrOutOfBounds
	}
	for _, y := range []int{y1, y2} {
		if err := HLine(b, x1, x2, y, c); err != nil {
			return err
		}
	}
	for _, x := range []int{x1, x2} {
		if err := VLine(b, x, y1, y2, c); err != nil {
			return err
		}
	}
	return nil
}

// Grid covers b with lines every step pixels, starting at row and column 0.
func Grid(b *raster.Buffer, step int, c color.NRGBA) error {
	if err := check(b); err != nil {
		return err
	}
	if step <= 0 {
		return fmt.Errorf("grid step must be positive, got %d", step)
	}
	w, h := b.Width(), b.Height()
	for x := 0; x < w; x += step {
		if err := VLine(b, x, 0, h-1, c); err != nil {
			return err
		}
	}
	for y := 0; y < h; y += step {
		if err := HLine(b, 0, w-1, y, c); err != nil {
			return err
		}
	}
	return nil
}
