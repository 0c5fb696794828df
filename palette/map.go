package palette

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadMap reads a Fractint-style map file: one "r g b" triple per line,
// anything after the third field is ignored. Blank lines are skipped. Missing
// entries stay black.
func LoadMap(r io.Reader) (Palette, error) {
	var p Palette

	sc := bufio.NewScanner(r)
	n, line := 0, 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if n == Size {
			return p, fmt.Errorf("line %d: more than %d colors", line, Size)
		}
		if len(fields) < 3 {
			return p, fmt.Errorf("line %d: expected 3 components, got %d", line, len(fields))
		}

		var rgb [3]uint8
		for i := range rgb {
			v, err := strconv.ParseUint(fields[i], 10, 8)
			if err != nil {
				return p, fmt.Errorf("line %d: invalid component %q: %w", line, fields[i], err)
			}
			rgb[i] = uint8(v)
		}
		p[n] = RGB{R: rgb[0], G: rgb[1], B: rgb[2]}
		n++
	}
	if err := sc.Err(); err != nil {
		return p, fmt.Errorf("could not read map: %w", err)
	}
	if n == 0 {
		return p, fmt.Errorf("map contains no colors")
	}

	return p, nil
}
