package fractal

import (
	"maps"
	"math"
	"math/cmplx"
	"slices"
)

// Formula computes the next iterate from z, the iterate before it and c.
type Formula func(z, prev, c complex128) complex128

// Trap reports whether z has settled and what to add to the iteration count
// when it has.
type Trap func(z complex128) (offset int, ok bool)

func Quadratic(z, _, c complex128) complex128 {
	return z*z + c
}

func Quartic(z, _, c complex128) complex128 {
	z2 := z * z
	return z2*z2 + c
}

func QuadraticPlusZ(z, _, c complex128) complex128 {
	return z*z + z + c
}

func QuadraticMinusZ(z, _, c complex128) complex128 {
	return z*z - z + c
}

// SelfPower iterates z^z + z² + c.
func SelfPower(z, _, c complex128) complex128 {
	return cmplx.Pow(z, z) + z*z + c
}

// Sine iterates c·sin z.
func Sine(z, _, c complex128) complex128 {
	return c * cmplx.Sin(z)
}

// Lambda iterates the logistic map c·z·(1 − z).
func Lambda(z, _, c complex128) complex128 {
	return c * z * (1 - z)
}

// Manowar feeds the previous iterate back: z² + prev + c.
func Manowar(z, prev, c complex128) complex128 {
	return z*z + prev + c
}

// Phoenix adds the previous iterate scaled by imag(c): z² + real(c) +
// imag(c)·prev.
func Phoenix(z, prev, c complex128) complex128 {
	return z*z + complex(real(c), 0) + complex(imag(c), 0)*prev
}

// BarnsleyM1 is Barnsley's first map: (z − 1)·c right of the imaginary axis
// and (z + 1)·c left of it.
func BarnsleyM1(z, _, c complex128) complex128 {
	if real(z) >= 0 {
		return (z - 1) * c
	}
	return (z + 1) * c
}

// BarnsleyM2 is Barnsley's second map: (z − 1)·c or (z + 1)·c depending on
// the sign of imag(z·c).
func BarnsleyM2(z, _, c complex128) complex128 {
	if imag(z*c) >= 0 {
		return (z - 1) * c
	}
	return (z + 1) * c
}

// BarnsleyM3 is Barnsley's third map: z² − 1, plus c·real(z) while z lies in
// the left half plane.
func BarnsleyM3(z, _, c complex128) complex128 {
	n := z*z - 1
	if real(z) > 0 {
		return n
	}
	return n + c*complex(real(z), 0)
}

// Magnet is the first magnet map ((z² + c − 1) / (2z + c − 2))².
func Magnet(z, _, c complex128) complex128 {
	q := (z*z + c - 1) / (2*z + c - 2)
	return q * q
}

// Newton is one Newton-Raphson step towards a root of z³ − 1.
func Newton(z, _, _ complex128) complex128 {
	return z - (z*z*z-1)/(3*z*z)
}

const (
	magnetBailout = 100
	trapEpsilon   = 0.001
)

var cubeRoots = [3]complex128{
	1,
	complex(-0.5, math.Sqrt(3)/2),
	complex(-0.5, -math.Sqrt(3)/2),
}

// magnetTrap catches orbits that settle on the fixed point 1.
func magnetTrap(z complex128) (int, bool) {
	d := z - 1
	return 0, real(d)*real(d)+imag(d)*imag(d) < trapEpsilon
}

// newtonTrap catches orbits that reach a cube root of unity and shifts the
// count by 0, 128 or 192 so that each basin gets its own part of a palette.
func newtonTrap(z complex128) (int, bool) {
	for i, r := range cubeRoots {
		d := z - r
		if real(d)*real(d)+imag(d)*imag(d) < trapEpsilon {
			return [3]int{0, 128, 192}[i], true
		}
	}
	return 0, false
}

// Family is a named kind of escape-time fractal.
type Family struct {
	// Julia families iterate every pixel with one constant c. The others take
	// c from the pixel and use the parameter as the starting z₀ when they
	// start from a constant.
	Julia bool
	rule  func(c complex128) Rule
}

// Rule returns the family's rule for parameter c.
func (f Family) Rule(c complex128) Rule {
	return f.rule(c)
}

func mandelLike(f Formula) Family {
	return Family{rule: func(c complex128) Rule {
		return Rule{Seed: Const(c), First: Pixel, Second: Pixel, Switch: Never, Formula: f}
	}}
}

func pixelSeeded(f Formula) Family {
	return Family{rule: func(complex128) Rule {
		return Rule{Seed: Pixel, First: Pixel, Second: Pixel, Switch: Never, Formula: f}
	}}
}

func juliaLike(f Formula) Family {
	return Family{Julia: true, rule: func(c complex128) Rule {
		return Rule{Seed: Pixel, First: Const(c), Second: Const(c), Switch: Never, Formula: f}
	}}
}

var families = map[string]Family{
	"mandelbrot":        mandelLike(Quadratic),
	"julia":             juliaLike(Quadratic),
	"mandelbrot-z4":     mandelLike(Quartic),
	"julia-z4":          juliaLike(Quartic),
	"z2-plus-z":         mandelLike(QuadraticPlusZ),
	"z2-minus-z":        mandelLike(QuadraticMinusZ),
	"self-power":        pixelSeeded(SelfPower),
	"mandelbrot-sin":    pixelSeeded(Sine),
	"julia-sin":         juliaLike(Sine),
	"lambda":            juliaLike(Lambda),
	"lambda-mandelbrot": mandelLike(Lambda),
	"barnsley-m1":       pixelSeeded(BarnsleyM1),
	"barnsley-m2":       pixelSeeded(BarnsleyM2),
	"barnsley-m3":       pixelSeeded(BarnsleyM3),
	"barnsley-j1":       juliaLike(BarnsleyM1),
	"barnsley-j2":       juliaLike(BarnsleyM2),
	"barnsley-j3":       juliaLike(BarnsleyM3),
	"manowar": {rule: func(complex128) Rule {
		return Rule{Seed: Pixel, Prev: Pixel, First: Pixel, Second: Pixel, Switch: Never, Formula: Manowar}
	}},
	"manowar-julia": {Julia: true, rule: func(c complex128) Rule {
		return Rule{Seed: Pixel, Prev: Pixel, First: Const(c), Second: Const(c), Switch: Never, Formula: Manowar}
	}},
	"phoenix":            juliaLike(Phoenix),
	"phoenix-mandelbrot": pixelSeeded(Phoenix),
	"magnet": {rule: func(c complex128) Rule {
		return Rule{Seed: Const(c), First: Pixel, Second: Pixel, Switch: Never, Formula: Magnet, Bailout: magnetBailout, Trap: magnetTrap}
	}},
	"magnet-julia": {Julia: true, rule: func(c complex128) Rule {
		return Rule{Seed: Pixel, First: Const(c), Second: Const(c), Switch: Never, Formula: Magnet, Bailout: magnetBailout, Trap: magnetTrap}
	}},
	"newton": {rule: func(complex128) Rule {
		return Rule{Seed: Pixel, Switch: Never, Formula: Newton, Bailout: math.Inf(1), Trap: newtonTrap}
	}},
}

// LookupFamily returns the family called name.
func LookupFamily(name string) (Family, bool) {
	f, ok := families[name]
	return f, ok
}

// FamilyNames lists the known families in sorted order.
func FamilyNames() []string {
	return slices.Sorted(maps.Keys(families))
}
