package fractal

import "image/color"

// Colorizer turns an iteration count or plasma value into a pixel color.
// *palette.Palette satisfies it.
type Colorizer interface {
	Color(i int) color.NRGBA
}

// Linear colors i as (2i, 3i, 5i) modulo 256.
type Linear struct{}

func (Linear) Color(i int) color.NRGBA {
	return color.NRGBA{R: uint8(2 * i), G: uint8(3 * i), B: uint8(5 * i), A: 0xff}
}
