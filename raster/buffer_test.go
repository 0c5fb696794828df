package raster

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustNew(t *testing.T, width, height int, depth Depth) *Buffer {
	t.Helper()
	b, err := New(width, height, depth)
	if err != nil {
		t.Fatalf("New(%d, %d, %v): %v", width, height, depth, err)
	}
	return b
}

func isInvalid(b *Buffer) bool {
	return b != nil && b.width == 0 && b.height == 0 && b.depth == 0 && b.pix == nil
}

func TestSizeNilBuffer(t *testing.T) {
	var b *Buffer
	if got := b.Size(); got != 0 {
		t.Errorf("nil buffer size: got %d, want 0", got)
	}
	if got := (&Buffer{}).Size(); got != 0 {
		t.Errorf("invalid buffer size: got %d, want 0", got)
	}
}

func TestNewRejectsInvalidParameters(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		depth         Depth
		want          error
	}{
		{"zero width", 0, 100, RGBA, ErrInvalidDimensions},
		{"zero height", 100, 0, RGBA, ErrInvalidDimensions},
		{"negative width", -1, 100, RGBA, ErrInvalidDimensions},
		{"too wide", MaxWidth + 1, 100, RGBA, ErrInvalidDimensions},
		{"too high", 100, MaxHeight + 1, RGBA, ErrInvalidDimensions},
		{"depth zero", 100, 100, 0, ErrInvalidDepth},
		{"depth two", 100, 100, 2, ErrInvalidDepth},
		{"depth five", 100, 100, 5, ErrInvalidDepth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.width, tt.height, tt.depth)
			if !errors.Is(err, tt.want) {
				t.Errorf("error: got %v, want %v", err, tt.want)
			}
			if !isInvalid(b) {
				t.Errorf("expected canonical invalid buffer, got %+v", b)
			}
		})
	}
}

func TestNewValid(t *testing.T) {
	for _, depth := range []Depth{Gray, RGB, RGBA} {
		b := mustNew(t, 100, 50, depth)
		if got, want := b.Size(), 100*50*int(depth); got != want {
			t.Errorf("%v size: got %d, want %d", depth, got, want)
		}
		if got := len(b.pix); got != b.Size() {
			t.Errorf("%v storage length: got %d, want %d", depth, got, b.Size())
		}
	}
}

func TestClone(t *testing.T) {
	if !isInvalid(Clone(nil)) {
		t.Error("cloning nil should yield the invalid buffer")
	}
	if !isInvalid(Clone(&Buffer{width: 100, height: 100, depth: Gray})) {
		t.Error("cloning a buffer without storage should yield the invalid buffer")
	}
	if !isInvalid(Clone(&Buffer{width: MaxWidth + 1, height: MaxHeight + 1, depth: RGB, pix: []byte{}})) {
		t.Error("cloning an oversized buffer should yield the invalid buffer")
	}

	b := mustNew(t, 3, 2, RGB)
	_ = b.SetPixel(1, 1, color.NRGBA{R: 1, G: 2, B: 3})
	c := Clone(b)
	if c.Width() != 3 || c.Height() != 2 || c.Depth() != RGB {
		t.Fatalf("clone geometry: got %dx%dx%v", c.Width(), c.Height(), c.Depth())
	}
	if diff := cmp.Diff(b.Pix(), c.Pix()); diff != "" {
		t.Errorf("clone pixels differ (-want +got):\n%s", diff)
	}
	_ = c.SetPixel(0, 0, color.NRGBA{R: 9})
	if got, _ := b.Pixel(0, 0); got.R != 0 {
		t.Errorf("clone shares storage with its source")
	}
}

func TestClear(t *testing.T) {
	var nilBuf *Buffer
	if err := nilBuf.Clear(); !errors.Is(err, ErrNilBuffer) {
		t.Errorf("nil buffer: got %v, want %v", err, ErrNilBuffer)
	}
	if err := (&Buffer{width: 100, height: 100, depth: Gray}).Clear(); !errors.Is(err, ErrNilStorage) {
		t.Errorf("no storage: got %v, want %v", err, ErrNilStorage)
	}

	b := mustNew(t, 10, 10, RGBA)
	for i := range b.pix {
		b.pix[i] = 0xaa
	}
	if err := b.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	for i, v := range b.pix {
		if v != 0 {
			t.Fatalf("byte %d not cleared: %d", i, v)
		}
	}
}

func TestSetPixelErrors(t *testing.T) {
	var nilBuf *Buffer
	c := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	setters := map[string]func(*Buffer, int, int, color.NRGBA) error{
		"SetPixel":    (*Buffer).SetPixel,
		"SetPixelMax": (*Buffer).SetPixelMax,
	}
	for name, set := range setters {
		t.Run(name, func(t *testing.T) {
			if err := set(nilBuf, 0, 0, c); !errors.Is(err, ErrNilBuffer) {
				t.Errorf("nil buffer: got %v, want %v", err, ErrNilBuffer)
			}
			if err := set(&Buffer{width: 100, height: 100, depth: Gray}, 0, 0, c); !errors.Is(err, ErrNilStorage) {
				t.Errorf("no storage: got %v, want %v", err, ErrNilStorage)
			}

			b := mustNew(t, 100, 100, Gray)
			for _, p := range [][2]int{{-1, 0}, {0, -1}, {-1, -1}, {100, 0}, {0, 100}, {101, 101}} {
				if err := set(b, p[0], p[1], c); !errors.Is(err, ErrOutOfBounds) {
					t.Errorf("(%d, %d): got %v, want %v", p[0], p[1], err, ErrOutOfBounds)
				}
			}
			for i, v := range b.pix {
				if v != 0 {
					t.Fatalf("out-of-bounds write changed byte %d", i)
				}
			}
		})
	}
}

func TestSetPixelLayouts(t *testing.T) {
	tests := []struct {
		depth Depth
		want  []byte
	}{
		{RGB, []byte{1, 2, 3}},
		{RGBA, []byte{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		b := mustNew(t, 1, 1, tt.depth)
		if err := b.SetPixel(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 4}); err != nil {
			t.Fatalf("%v: %v", tt.depth, err)
		}
		if diff := cmp.Diff(tt.want, b.Pix()); diff != "" {
			t.Errorf("%v layout (-want +got):\n%s", tt.depth, diff)
		}
	}
}

func TestSetPixelGrayscaleLuma(t *testing.T) {
	b := mustNew(t, 1, 1, Gray)
	if err := b.SetPixel(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 4}); err != nil {
		t.Fatal(err)
	}
	if got := b.pix[0]; got != 1 {
		t.Errorf("luma of (1, 2, 3): got %d, want 1", got)
	}
	if err := b.SetPixel(0, 0, color.NRGBA{R: 10, G: 20, B: 30}); err != nil {
		t.Fatal(err)
	}
	if got := b.pix[0]; got != 18 {
		t.Errorf("luma of (10, 20, 30): got %d, want 18", got)
	}
}

func TestSetPixelMax(t *testing.T) {
	b := mustNew(t, 1, 1, RGBA)
	_ = b.SetPixel(0, 0, color.NRGBA{R: 10, G: 200, B: 30, A: 40})
	if err := b.SetPixelMax(0, 0, color.NRGBA{R: 100, G: 100, B: 20, A: 5}); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{100, 200, 30, 5}, b.Pix()); diff != "" {
		t.Errorf("rgba max (-want +got):\n%s", diff)
	}

	rgb := mustNew(t, 1, 1, RGB)
	_ = rgb.SetPixelMax(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	_ = rgb.SetPixelMax(0, 0, color.NRGBA{R: 0, G: 5, B: 0, A: 4})
	if diff := cmp.Diff([]byte{1, 5, 3}, rgb.Pix()); diff != "" {
		t.Errorf("rgb max (-want +got):\n%s", diff)
	}

	gray := mustNew(t, 1, 1, Gray)
	_ = gray.SetPixelMax(0, 0, color.NRGBA{R: 10, G: 20, B: 30})
	_ = gray.SetPixelMax(0, 0, color.NRGBA{R: 1, G: 2, B: 3})
	if got := gray.pix[0]; got != 18 {
		t.Errorf("gray max: got %d, want 18", got)
	}
}

func TestPixel(t *testing.T) {
	tests := []struct {
		depth       Depth
		initial     color.NRGBA
		afterSet    color.NRGBA
		setArgument color.NRGBA
	}{
		{RGB, color.NRGBA{0, 0, 0, 255}, color.NRGBA{1, 2, 3, 255}, color.NRGBA{1, 2, 3, 4}},
		{RGBA, color.NRGBA{0, 0, 0, 0}, color.NRGBA{1, 2, 3, 4}, color.NRGBA{1, 2, 3, 4}},
		{Gray, color.NRGBA{0, 0, 0, 255}, color.NRGBA{1, 1, 1, 255}, color.NRGBA{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.depth.String(), func(t *testing.T) {
			b := mustNew(t, 100, 100, tt.depth)
			got, err := b.Pixel(0, 0)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.initial {
				t.Errorf("cleared pixel: got %v, want %v", got, tt.initial)
			}
			_ = b.SetPixel(0, 0, tt.setArgument)
			if got, _ = b.Pixel(0, 0); got != tt.afterSet {
				t.Errorf("after set: got %v, want %v", got, tt.afterSet)
			}
		})
	}
}

func TestPixelErrors(t *testing.T) {
	var nilBuf *Buffer
	if _, err := nilBuf.Pixel(0, 0); !errors.Is(err, ErrNilBuffer) {
		t.Errorf("nil buffer: got %v", err)
	}
	if _, err := (&Buffer{width: 1, height: 1, depth: RGB}).Pixel(0, 0); !errors.Is(err, ErrNilStorage) {
		t.Errorf("no storage: got %v", err)
	}

	b := mustNew(t, 100, 100, Gray)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {-1, -1}, {101, 0}, {0, 101}, {100, 99}} {
		if _, err := b.Pixel(p[0], p[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("(%d, %d): got %v, want %v", p[0], p[1], err, ErrOutOfBounds)
		}
	}
	if err := b.PixelInto(0, 0, nil); !errors.Is(err, ErrNilComponent) {
		t.Errorf("nil destination: got %v, want %v", err, ErrNilComponent)
	}
}

func TestCopyFromMismatch(t *testing.T) {
	a := mustNew(t, 2, 2, RGB)
	b := mustNew(t, 2, 3, RGB)
	if err := a.CopyFrom(b); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("got %v, want %v", err, ErrInvalidDimensions)
	}
}
