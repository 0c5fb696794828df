package raster

import "image/color"

// InterlaceColumns fills dst with odd columns taken from src1 and even columns
// from src2.
func InterlaceColumns(dst, src1, src2 *Buffer) error {
	return composite(dst, src1, src2, func(x, _ int) bool {
		return x%2 == 1
	})
}

// InterlaceRows fills dst with odd rows taken from src1 and even rows from
// src2.
func InterlaceRows(dst, src1, src2 *Buffer) error {
	return composite(dst, src1, src2, func(_, y int) bool {
		return y%2 == 1
	})
}

// Checkerboard takes src1 where exactly one of x and y is odd.
func Checkerboard(dst, src1, src2 *Buffer) error {
	return composite(dst, src1, src2, func(x, y int) bool {
		return (x%2)^(y%2) == 1
	})
}

// Blend writes the per-channel average of src1 and src2, alpha included.
func Blend(dst, src1, src2 *Buffer) error {
	if err := checkAll(dst, src1, src2); err != nil {
		return err
	}

	var c1, c2 color.NRGBA
	for y := range src1.height {
		for x := range src1.width {
			if src1.PixelInto(x, y, &c1) != nil || src2.PixelInto(x, y, &c2) != nil {
				continue
			}
			_ = dst.SetPixel(x, y, color.NRGBA{
				R: uint8((uint16(c1.R) + uint16(c2.R)) >> 1),
				G: uint8((uint16(c1.G) + uint16(c2.G)) >> 1),
				B: uint8((uint16(c1.B) + uint16(c2.B)) >> 1),
				A: uint8((uint16(c1.A) + uint16(c2.A)) >> 1),
			})
		}
	}
	return nil
}

func composite(dst, src1, src2 *Buffer, first func(x, y int) bool) error {
	if err := checkAll(dst, src1, src2); err != nil {
		return err
	}

	var c color.NRGBA
	for y := range src1.height {
		for x := range src1.width {
			src := src2
			if first(x, y) {
				src = src1
			}
			// pixels missing from a smaller source or destination are skipped
			if src.PixelInto(x, y, &c) != nil {
				continue
			}
			_ = dst.SetPixel(x, y, c)
		}
	}
	return nil
}

func checkAll(bufs ...*Buffer) error {
	for _, b := range bufs {
		if err := b.check(); err != nil {
			return err
		}
	}
	return nil
}
