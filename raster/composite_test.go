package raster

import (
	"errors"
	"image/color"
	"testing"
)

func filled(t *testing.T, c color.NRGBA) *Buffer {
	t.Helper()
	b := mustNew(t, 4, 4, RGBA)
	for y := range 4 {
		for x := range 4 {
			_ = b.SetPixel(x, y, c)
		}
	}
	return b
}

func TestInterlace(t *testing.T) {
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}

	tests := []struct {
		name  string
		op    func(dst, src1, src2 *Buffer) error
		first func(x, y int) bool
	}{
		{"columns", InterlaceColumns, func(x, _ int) bool { return x%2 == 1 }},
		{"rows", InterlaceRows, func(_, y int) bool { return y%2 == 1 }},
		{"checkerboard", Checkerboard, func(x, y int) bool { return (x+y)%2 == 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := mustNew(t, 4, 4, RGBA)
			if err := tt.op(dst, filled(t, red), filled(t, blue)); err != nil {
				t.Fatal(err)
			}
			for y := range 4 {
				for x := range 4 {
					want := blue
					if tt.first(x, y) {
						want = red
					}
					if got, _ := dst.Pixel(x, y); got != want {
						t.Errorf("(%d, %d): got %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestBlend(t *testing.T) {
	dst := mustNew(t, 4, 4, RGBA)
	src1 := filled(t, color.NRGBA{R: 100, G: 255, B: 1, A: 255})
	src2 := filled(t, color.NRGBA{R: 50, G: 255, B: 2, A: 0})
	if err := Blend(dst, src1, src2); err != nil {
		t.Fatal(err)
	}
	want := color.NRGBA{R: 75, G: 255, B: 1, A: 127}
	if got, _ := dst.Pixel(3, 3); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCompositeNilBuffers(t *testing.T) {
	b := mustNew(t, 1, 1, RGB)
	if err := Blend(nil, b, b); !errors.Is(err, ErrNilBuffer) {
		t.Errorf("got %v, want %v", err, ErrNilBuffer)
	}
	if err := InterlaceRows(b, &Buffer{}, b); !errors.Is(err, ErrNilStorage) {
		t.Errorf("got %v, want %v", err, ErrNilStorage)
	}
}
