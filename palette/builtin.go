package palette

// Grayscale ramps from black to white. The last entry stays black, so
// points that never escape are drawn black.
func Grayscale() Palette {
	var p Palette
	for i := range Size - 1 {
		p[i] = RGB{R: uint8(i), G: uint8(i), B: uint8(i)}
	}
	return p
}

// Greens runs black → green → yellow → white → yellow → green → black.
func Greens() Palette {
	var p Palette
	i := 0
	put := func(r, g, b int) {
		p[i] = RGB{R: clampByte(r), G: clampByte(g), B: clampByte(b)}
		i++
	}

	for j := range 32 {
		put(0, 4+j*6, 0)
	}
	for j := range 32 {
		put(4+j*6, min(200+j*2, 252), 0)
	}
	for j := range 32 {
		put(min(200+j*2, 252), 252, j*6)
	}
	for j := range 48 {
		put(252, 252, 252-j*6)
	}
	for j := range 48 {
		put(252-j*6, 252, 0)
	}
	for j := range 48 {
		put(0, 252-j*6, 0)
	}
	return p
}

// Blues cycles through dark blue, cyan and white twice.
func Blues() Palette {
	var p Palette
	for i := range Size {
		t := i % 128
		switch {
		case t < 64:
			p[i] = RGB{R: 0, G: uint8(t * 2), B: uint8(64 + t*3)}
		default:
			u := t - 64
			p[i] = RGB{R: uint8(u * 4), G: uint8(128 + u*2), B: 255}
		}
	}
	return p
}

// Linear reproduces the palette-free coloring r=2i, g=3i, b=5i (mod 256).
func Linear() Palette {
	var p Palette
	for i := range Size {
		p[i] = RGB{R: uint8(2 * i), G: uint8(3 * i), B: uint8(5 * i)}
	}
	return p
}

// Gradient interpolates linearly from one color to another.
func Gradient(from, to RGB) Palette {
	var p Palette
	lerp := func(a, b uint8, i int) uint8 {
		return uint8(int(a) + (int(b)-int(a))*i/(Size-1))
	}
	for i := range Size {
		p[i] = RGB{
			R: lerp(from.R, to.R, i),
			G: lerp(from.G, to.G, i),
			B: lerp(from.B, to.B, i),
		}
	}
	return p
}

func clampByte(v int) uint8 {
	return uint8(min(max(v, 0), 255))
}
