package raster

import (
	"fmt"
	"image/color"
	"strings"
)

// ParseHex reads a #RGB, #RGBA, #RRGGBB or #RRGGBBAA color. Forms without
// alpha are opaque.
func ParseHex(s string) (color.NRGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return color.NRGBA{}, fmt.Errorf("invalid color %q, should start with #", s)
	}

	var digits []uint8
	for _, r := range hex {
		var d uint8
		switch {
		case r >= '0' && r <= '9':
			d = uint8(r - '0')
		case r >= 'a' && r <= 'f':
			d = uint8(r-'a') + 10
		case r >= 'A' && r <= 'F':
			d = uint8(r-'A') + 10
		default:
			return color.NRGBA{}, fmt.Errorf("invalid color %q: bad digit %q", s, r)
		}
		digits = append(digits, d)
	}

	c := color.NRGBA{A: 0xFF}
	switch len(digits) {
	case 3, 4:
		c.R = digits[0]<<4 | digits[0]
		c.G = digits[1]<<4 | digits[1]
		c.B = digits[2]<<4 | digits[2]
		if len(digits) == 4 {
			c.A = digits[3]<<4 | digits[3]
		}
	case 6, 8:
		c.R = digits[0]<<4 | digits[1]
		c.G = digits[2]<<4 | digits[3]
		c.B = digits[4]<<4 | digits[5]
		if len(digits) == 8 {
			c.A = digits[6]<<4 | digits[7]
		}
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q, should be #RGB, #RGBA, #RRGGBB or #RRGGBBAA", s)
	}
	return c, nil
}
