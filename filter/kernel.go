package filter

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var ErrInvalidKernel = errors.New("invalid kernel")

// Kernel is a square convolution matrix. Weights are stored row major and the
// weighted sum is divided by Divisor before clamping.
type Kernel struct {
	Size    int
	Weights []int
	Divisor int
}

func (k Kernel) Validate() error {
	if k.Size <= 0 || k.Size%2 == 0 {
		return fmt.Errorf("%w: size %d is not an odd positive number", ErrInvalidKernel, k.Size)
	}
	if len(k.Weights) != k.Size*k.Size {
		return fmt.Errorf("%w: %d weights for a %dx%d matrix", ErrInvalidKernel, len(k.Weights), k.Size, k.Size)
	}
	if k.Divisor == 0 {
		return fmt.Errorf("%w: zero divisor", ErrInvalidKernel)
	}
	return nil
}

// Clone returns a copy of k that shares no storage with it.
func (k Kernel) Clone() Kernel {
	k.Weights = slices.Clone(k.Weights)
	return k
}

func (k Kernel) weight(dx, dy int) int {
	r := k.Size / 2
	return k.Weights[(dy+r)*k.Size+dx+r]
}

// Built-in kernels. Their weights are shared with every user; Clone one
// before changing it.
var (
	BoxBlur = Kernel{3, []int{
		1, 1, 1,
		1, 1, 1,
		1, 1, 1,
	}, 9}
	Gaussian = Kernel{3, []int{
		1, 2, 1,
		2, 4, 2,
		1, 2, 1,
	}, 16}
	Sharpen = Kernel{3, []int{
		0, -1, 0,
		-1, 5, -1,
		0, -1, 0,
	}, 1}
	EdgeDetection1 = Kernel{3, []int{
		0, -1, 0,
		-1, 4, -1,
		0, -1, 0,
	}, 1}
	EdgeDetection2 = Kernel{3, []int{
		-1, -1, -1,
		-1, 8, -1,
		-1, -1, -1,
	}, 1}
	EdgeDetection3 = Kernel{3, []int{
		0, 1, 0,
		1, -4, 1,
		0, 1, 0,
	}, 1}
	HorizontalEdge = Kernel{3, []int{
		-1, -1, -1,
		0, 0, 0,
		1, 1, 1,
	}, 1}
	VerticalEdge = Kernel{3, []int{
		-1, 0, 1,
		-1, 0, 1,
		-1, 0, 1,
	}, 1}
	HorizontalSobel = Kernel{3, []int{
		-1, 0, 1,
		-2, 0, 2,
		-1, 0, 1,
	}, 1}
	VerticalSobel = Kernel{3, []int{
		-1, -2, -1,
		0, 0, 0,
		1, 2, 1,
	}, 1}
	Laplacian = Kernel{3, []int{
		0, -1, 0,
		-1, 4, -1,
		0, -1, 0,
	}, 1}
)

var presets = map[string]Kernel{
	"box":             BoxBlur,
	"gauss":           Gaussian,
	"sharpen":         Sharpen,
	"edge1":           EdgeDetection1,
	"edge2":           EdgeDetection2,
	"edge3":           EdgeDetection3,
	"horizontal-edge": HorizontalEdge,
	"vertical-edge":   VerticalEdge,
	"sobel-h":         HorizontalSobel,
	"sobel-v":         VerticalSobel,
	"laplacian":       Laplacian,
}

// Preset returns a private copy of the built-in kernel called name.
func Preset(name string) (Kernel, bool) {
	k, ok := presets[name]
	if !ok {
		return Kernel{}, false
	}
	return k.Clone(), true
}

// PresetNames lists the names accepted by Preset in sorted order.
func PresetNames() []string {
	return slices.Sorted(maps.Keys(presets))
}
