package filter

import (
	"context"
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"rasterproc/parallel"
	"rasterproc/raster"
)

func pattern(t *testing.T, w, h int, depth raster.Depth) *raster.Buffer {
	t.Helper()
	b, err := raster.New(w, h, depth)
	if err != nil {
		t.Fatal(err)
	}
	for y := range h {
		for x := range w {
			c := color.NRGBA{
				R: uint8(x*37 + y*11),
				G: uint8(x*5 + y*53),
				B: uint8(x * y),
				A: uint8(200 + x),
			}
			if err := b.SetPixel(x, y, c); err != nil {
				t.Fatal(err)
			}
		}
	}
	return b
}

func fill(t *testing.T, w, h int, depth raster.Depth, c color.NRGBA) *raster.Buffer {
	t.Helper()
	b, err := raster.New(w, h, depth)
	if err != nil {
		t.Fatal(err)
	}
	for y := range h {
		for x := range w {
			_ = b.SetPixel(x, y, c)
		}
	}
	return b
}

func TestValidate(t *testing.T) {
	tests := map[string]Kernel{
		"zero size":     {0, nil, 1},
		"even size":     {2, []int{1, 1, 1, 1}, 4},
		"negative size": {-3, nil, 1},
		"short weights": {3, []int{1, 1, 1}, 1},
		"zero divisor":  {3, make([]int, 9), 0},
	}
	for name, k := range tests {
		t.Run(name, func(t *testing.T) {
			if err := k.Validate(); !errors.Is(err, ErrInvalidKernel) {
				t.Errorf("got %v, want %v", err, ErrInvalidKernel)
			}
		})
	}

	for _, name := range PresetNames() {
		k, _ := Preset(name)
		if err := k.Validate(); err != nil {
			t.Errorf("preset %q: %v", name, err)
		}
	}
}

func TestPresetIsPrivateCopy(t *testing.T) {
	k, ok := Preset("gauss")
	if !ok {
		t.Fatal("gauss preset missing")
	}
	for i := range k.Weights {
		k.Weights[i] = 0
	}

	again, _ := Preset("gauss")
	if diff := cmp.Diff(Gaussian, again); diff != "" {
		t.Errorf("preset changed after editing a copy (-want +got):\n%s", diff)
	}
	if Gaussian.Weights[4] == 0 {
		t.Error("editing a preset copy changed Gaussian")
	}

	if _, ok := Preset("no-such-kernel"); ok {
		t.Error("unknown preset found")
	}
	if names := PresetNames(); len(names) != 11 || names[0] != "box" {
		t.Errorf("unexpected preset names %v", names)
	}
}

func TestCloneKernel(t *testing.T) {
	k := Sharpen.Clone()
	k.Weights[4] = 1
	if Sharpen.Weights[4] == 1 {
		t.Error("Clone shares weights with Sharpen")
	}
}

func TestInvalidKernelIsNoop(t *testing.T) {
	b := pattern(t, 6, 5, raster.RGB)
	before := b.Pix()

	err := Apply(b, Kernel{Size: 3, Weights: make([]int, 9)}, WithPool(nil))
	if !errors.Is(err, ErrInvalidKernel) {
		t.Fatalf("got %v, want %v", err, ErrInvalidKernel)
	}
	if diff := cmp.Diff(before, b.Pix()); diff != "" {
		t.Errorf("buffer changed (-want +got):\n%s", diff)
	}
}

func TestApplyNilBuffer(t *testing.T) {
	if err := Apply(nil, BoxBlur); !errors.Is(err, raster.ErrNilBuffer) {
		t.Errorf("got %v, want %v", err, raster.ErrNilBuffer)
	}
	invalid, _ := raster.New(0, 0, raster.RGB)
	if err := Apply(invalid, BoxBlur); !errors.Is(err, raster.ErrNilStorage) {
		t.Errorf("got %v, want %v", err, raster.ErrNilStorage)
	}
}

func TestBoxBlurUniform(t *testing.T) {
	b := fill(t, 5, 4, raster.RGB, color.NRGBA{R: 90, G: 45, B: 255, A: 255})
	if err := Apply(b, BoxBlur); err != nil {
		t.Fatal(err)
	}
	for y := range 4 {
		for x := range 5 {
			got, _ := b.Pixel(x, y)
			if want := (color.NRGBA{R: 90, G: 45, B: 255, A: 255}); got != want {
				t.Errorf("(%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestBordersUnchanged(t *testing.T) {
	for _, name := range PresetNames() {
		k, _ := Preset(name)
		t.Run(name, func(t *testing.T) {
			b := pattern(t, 9, 7, raster.RGBA)
			orig := raster.Clone(b)
			if err := Apply(b, k); err != nil {
				t.Fatal(err)
			}
			for y := range 7 {
				for x := range 9 {
					if x > 0 && x < 8 && y > 0 && y < 6 {
						continue
					}
					got, _ := b.Pixel(x, y)
					want, _ := orig.Pixel(x, y)
					if got != want {
						t.Errorf("border (%d,%d): got %v, want %v", x, y, got, want)
					}
				}
			}
		})
	}
}

func TestInteriorValues(t *testing.T) {
	tests := []struct {
		name         string
		kernel       Kernel
		center, side uint8
		want         uint8
	}{
		{"sharpen clamps high", Sharpen, 100, 50, 255},
		{"edge2 clamps low", EdgeDetection2, 10, 20, 0},
		{"gauss truncates", Gaussian, 1, 0, 0},
		{"gauss", Gaussian, 16, 16, 16},
		{"laplacian", Laplacian, 60, 10, 200},
		{"vertical edge on flat", VerticalEdge, 77, 77, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := fill(t, 3, 3, raster.Gray, color.NRGBA{R: tt.side, G: tt.side, B: tt.side})
			_ = b.SetPixel(1, 1, color.NRGBA{R: tt.center, G: tt.center, B: tt.center})
			if err := Apply(b, tt.kernel); err != nil {
				t.Fatal(err)
			}
			got, _ := b.Pixel(1, 1)
			if got.R != tt.want {
				t.Errorf("got %d, want %d", got.R, tt.want)
			}
		})
	}
}

func TestInteriorAlphaCleared(t *testing.T) {
	b := fill(t, 3, 3, raster.RGBA, color.NRGBA{R: 9, G: 9, B: 9, A: 255})
	if err := Apply(b, BoxBlur); err != nil {
		t.Fatal(err)
	}
	if got, _ := b.Pixel(1, 1); got != (color.NRGBA{R: 9, G: 9, B: 9}) {
		t.Errorf("center: got %v, want alpha 0", got)
	}
	if got, _ := b.Pixel(0, 0); got.A != 255 {
		t.Errorf("corner alpha: got %d, want 255", got.A)
	}
}

func TestKernelLargerThanImage(t *testing.T) {
	b := pattern(t, 4, 4, raster.RGB)
	before := b.Pix()
	k := Kernel{Size: 5, Weights: make([]int, 25), Divisor: 1}
	if err := Apply(b, k); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(before, b.Pix()); diff != "" {
		t.Errorf("buffer changed (-want +got):\n%s", diff)
	}
}

func TestFilteredLeavesSource(t *testing.T) {
	b := pattern(t, 8, 8, raster.RGB)
	before := b.Pix()

	out, err := Filtered(b, EdgeDetection2)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(before, b.Pix()); diff != "" {
		t.Errorf("source changed (-want +got):\n%s", diff)
	}

	want := raster.Clone(b)
	if err := Apply(want, EdgeDetection2); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want.Pix(), out.Pix()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	seq := pattern(t, 64, 48, raster.RGBA)
	par := raster.Clone(seq)

	if err := Apply(seq, Gaussian); err != nil {
		t.Fatal(err)
	}

	pool := parallel.Start(4)
	defer pool.Wait(true)
	if err := Apply(par, Gaussian, WithPool(pool)); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(seq.Pix(), par.Pix()); diff != "" {
		t.Errorf("parallel output differs (-seq +par):\n%s", diff)
	}
}

func TestCancelledLeavesBuffer(t *testing.T) {
	b := pattern(t, 10, 10, raster.RGB)
	before := b.Pix()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Apply(b, Sharpen, WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want %v", err, context.Canceled)
	}
	if diff := cmp.Diff(before, b.Pix()); diff != "" {
		t.Errorf("buffer changed (-want +got):\n%s", diff)
	}
}
