// Package rasterize draws spans and lines into raster buffers.
package rasterize

import (
	"errors"
	"image/color"

	"rasterproc/raster"
)

// HLine fills row y from x1 to x2 inclusive. If any coordinate lies outside
// the buffer nothing is drawn and raster.ErrOutOfBounds is returned.
func HLine(b *raster.Buffer, x1, x2, y int, c color.NRGBA) error {
	if err := check(b); err != nil {
		return err
	}
	if !b.InBounds(x1, y) || !b.InBounds(x2, y) {
		return raster.ErrOutOfBounds
	}
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if err := b.SetPixel(x, y, c); err != nil {
			return err
		}
	}
	return nil
}

// VLine fills column x from y1 to y2 inclusive, with the same bounds contract
// as HLine.
func VLine(b *raster.Buffer, x, y1, y2 int, c color.NRGBA) error {
	if err := check(b); err != nil {
		return err
	}
	if !b.InBounds(x, y1) || !b.InBounds(x, y2) {
		return raster.ErrOutOfBounds
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		if err := b.SetPixel(x, y, c); err != nil {
			return err
		}
	}
	return nil
}

// Line draws a Bresenham line including both endpoints. Pixels outside the
// buffer are skipped. Swapping the endpoints yields the same pixels.
func Line(b *raster.Buffer, x1, y1, x2, y2 int, c color.NRGBA) error {
	if err := check(b); err != nil {
		return err
	}
	if x1 > x2 || (x1 == x2 && y1 > y2) {
		tx, ty := x1, y1
		x1, y1 = x2, y2
		x2, y2 = tx, ty
	}

	dx, sx := abs(x2-x1), sign(x2-x1)
	dy, sy := abs(y2-y1), sign(y2-y1)
	err := -dy / 2
	if dx > dy {
		err = dx / 2
	}

	for {
		if err := b.SetPixel(x1, y1, c); err != nil && !errors.Is(err, raster.ErrOutOfBounds) {
			return err
		}
		if x1 == x2 && y1 == y2 {
			return nil
		}
		e2 := err
		if e2 > -dx {
			err -= dy
			x1 += sx
		}
		if e2 < dy {
			err += dx
			y1 += sy
		}
	}
}

func check(b *raster.Buffer) error {
	if b == nil {
		return raster.ErrNilBuffer
	}
	if !b.Valid() {
		return raster.ErrNilStorage
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
