package raster

import (
	"image"
	"image/color"
	"testing"
)

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 10, 13, 12))
	src.SetNRGBA(12, 11, color.NRGBA{R: 7, G: 8, B: 9, A: 255})

	b, err := FromImage(src, RGB)
	if err != nil {
		t.Fatal(err)
	}
	if b.Width() != 3 || b.Height() != 2 {
		t.Fatalf("geometry: got %dx%d, want 3x2", b.Width(), b.Height())
	}
	want := color.NRGBA{R: 7, G: 8, B: 9, A: 255}
	if got, _ := b.Pixel(2, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestImageInterface(t *testing.T) {
	b := mustNew(t, 2, 2, RGBA)
	b.Set(1, 0, color.RGBA{R: 255, A: 255})
	if got := b.At(1, 0); got != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("At: got %v", got)
	}
	if got := b.At(5, 5); got != (color.NRGBA{}) {
		t.Errorf("At outside bounds: got %v, want transparent", got)
	}
	if got := b.Bounds(); got != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds: got %v", got)
	}
}

func TestResize(t *testing.T) {
	b := mustNew(t, 8, 4, RGB)
	for y := range 4 {
		for x := range 8 {
			_ = b.SetPixel(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	tests := []struct {
		name          string
		width, height int
		fit           Fit
	}{
		{"stretch", 4, 4, Stretch},
		{"crop", 4, 4, Crop},
		{"pad", 4, 4, Pad},
		{"keep height", 16, 0, Stretch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Resize(b, tt.width, tt.height, tt.fit, color.Black)
			if err != nil {
				t.Fatal(err)
			}
			wantH := tt.height
			if wantH == 0 {
				wantH = b.Height()
			}
			if r.Width() != tt.width || r.Height() != wantH {
				t.Fatalf("geometry: got %dx%d, want %dx%d", r.Width(), r.Height(), tt.width, wantH)
			}
			if r.Depth() != RGB {
				t.Errorf("depth: got %v, want %v", r.Depth(), RGB)
			}
		})
	}

	padded, _ := Resize(b, 4, 4, Pad, color.Black)
	if got, _ := padded.Pixel(0, 0); got != (color.NRGBA{A: 255}) {
		t.Errorf("pad margin: got %v, want black", got)
	}
	if got, _ := padded.Pixel(2, 2); got.R < 190 {
		t.Errorf("pad content: got %v", got)
	}
}
