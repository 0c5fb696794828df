package rasterize

import (
	"errors"
	"image/color"

	"rasterproc/raster"
)

// AALine draws an antialiased line. Like Line it clips silently: pixels
// outside the buffer are skipped whatever the direction of the line.
//
// Each step along the major axis writes two pixels adjacent on the minor axis
// with complementary intensities through SetPixelMax. A channel of c that is
// 255 stays 255 on both pixels; every other channel receives the intensity.
func AALine(b *raster.Buffer, x1, y1, x2, y2 int, c color.NRGBA) error {
	if err := check(b); err != nil {
		return err
	}
	if x1 == x2 || y1 == y2 {
		clipSpan(b, x1, y1, x2, y2, c)
		return nil
	}
	if x1 > x2 {
		tx, ty := x1, y1
		x1, y1 = x2, y2
		x2, y2 = tx, ty
	}

	dx, dy := x2-x1, y2-y1

	var (
		x, y         = x1, y1
		major, minor int
		stepX, stepY int // major axis step
		offX, offY   int // minor axis step
	)
	if dx > abs(dy) {
		major, minor = dx, abs(dy)
		stepX, offY = 1, sign(dy)
	} else {
		major, minor = abs(dy), dx
		stepY = 1
		offX = 1
		if dy < 0 {
			x, y = x2, y2
			offX = -1
		}
	}

	// e/major is the intensity of the offset pixel, kept in [0, 256).
	e := 255 * major
	for range major + 1 {
		c1 := e / major
		c2 := 255 - c1
		if err := plot(b, x+offX, y+offY, shade(c, c1)); err != nil {
			return err
		}
		if err := plot(b, x, y, shade(c, c2)); err != nil {
			return err
		}

		e -= minor * 256
		x += stepX
		y += stepY
		if e < 0 {
			e += 256 * major
			x += offX
			y += offY
		}
	}
	return nil
}

// clipSpan fills the part of an axis-aligned segment that lies inside b.
func clipSpan(b *raster.Buffer, x1, y1, x2, y2 int, c color.NRGBA) {
	x1, x2 = max(min(x1, x2), 0), min(max(x1, x2), b.Width()-1)
	y1, y2 = max(min(y1, y2), 0), min(max(y1, y2), b.Height()-1)
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			_ = b.SetPixel(x, y, c)
		}
	}
}

func shade(c color.NRGBA, intensity int) color.NRGBA {
	v := uint8(intensity)
	ch := func(u uint8) uint8 {
		if u == 255 {
			return 255
		}
		return v
	}
	return color.NRGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}

func plot(b *raster.Buffer, x, y int, c color.NRGBA) error {
	if err := b.SetPixelMax(x, y, c); err != nil && !errors.Is(err, raster.ErrOutOfBounds) {
		return err
	}
	return nil
}
