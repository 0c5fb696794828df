// Package fractal renders escape-time fractals and diamond-square plasma into
// raster buffers.
package fractal

import "math"

// Term evaluates to Scale·p + Offset for the mapped pixel p.
type Term struct {
	Scale  float64
	Offset complex128
}

var Pixel = Term{Scale: 1}

func Const(c complex128) Term {
	return Term{Offset: c}
}

func (t Term) At(p complex128) complex128 {
	return complex(t.Scale, 0)*p + t.Offset
}

// SwitchStrategy decides which term drives iteration i of a hybrid rule.
type SwitchStrategy interface {
	UseSecond(i int) bool
}

type never struct{}

func (never) UseSecond(int) bool { return false }

// Never always iterates with the first term.
var Never SwitchStrategy = never{}

type alternate struct{}

func (alternate) UseSecond(i int) bool { return i%2 == 1 }

// Alternate uses the second term on odd iterations.
var Alternate SwitchStrategy = alternate{}

// Threshold uses the second term for every iteration past After.
type Threshold struct {
	After int
}

func (t Threshold) UseSecond(i int) bool { return i > t.After }

type SwitchFunc func(i int) bool

func (f SwitchFunc) UseSecond(i int) bool { return f(i) }

// Rule describes z₀ = Seed(p), z ← Formula(z, prev, c(p)) where c is First
// or Second as chosen by Switch and prev is the iterate before z, starting
// at Prev(p). A nil Formula is Quadratic and a nil Switch behaves like Never.
//
// Iteration stops once |z|² exceeds Bailout, 4 when unset, or when Trap
// reports that z has settled.
type Rule struct {
	Seed    Term
	First   Term
	Second  Term
	Switch  SwitchStrategy
	Formula Formula
	Prev    Term
	Bailout float64
	Trap    Trap
}

// DefaultBailout is the squared escape radius used when Rule.Bailout is unset.
const DefaultBailout = 4

func Mandelbrot() Rule {
	return Rule{Seed: Const(0), First: Pixel, Second: Pixel, Switch: Never}
}

func Julia(c complex128) Rule {
	return Rule{Seed: Pixel, First: Const(c), Second: Const(c), Switch: Never}
}

func Hybrid(seed, first, second Term, s SwitchStrategy) Rule {
	return Rule{Seed: seed, First: first, Second: second, Switch: s}
}

// MandelJulia rotates between the Julia set for c (angle 0) and the
// Mandelbrot set (angle π/2) through the four-dimensional parameter space.
func MandelJulia(c complex128, angle float64) Rule {
	sin, cos := math.Sincos(angle)
	t := Term{Scale: sin, Offset: c * complex(cos, 0)}
	return Rule{
		Seed:   Term{Scale: cos},
		First:  t,
		Second: t,
		Switch: Never,
	}
}

// Iterations returns how many iterations p survives before |z|² exceeds the
// bailout, capped at maxIter. A trapped point returns its count plus the
// trap offset.
func (r Rule) Iterations(p complex128, maxIter int) int {
	z, prev := r.Seed.At(p), r.Prev.At(p)
	first, second := r.First.At(p), r.Second.At(p)
	bailout := r.Bailout
	if bailout <= 0 {
		bailout = DefaultBailout
	}

	i := 0
	for i < maxIter {
		zx, zy := real(z), imag(z)
		if zx*zx+zy*zy > bailout {
			break
		}
		if r.Trap != nil {
			if offset, ok := r.Trap(z); ok {
				return i + offset
			}
		}
		c := first
		if r.Switch != nil && r.Switch.UseSecond(i) {
			c = second
		}
		if r.Formula == nil {
			z, prev = z*z+c, z
		} else {
			z, prev = r.Formula(z, prev, c), z
		}
		i++
	}
	return i
}
