// Copyright 2020 Aleksandr Demakin. All rights reserved.

package efloat

import (
	"math"

	"github.com/chewxy/math32"
)

var (
	belowOne      = NextDown32(1)
	aboveMinusOne = NextUp32(-1)
)

// Floor returns the greatest integer value less than or equal to f.
func (f Float32) Floor() Float32 {
	return f.pointwise("floor", math32.Floor, math.Floor)
}

// Ceil returns the least integer value greater than or equal to f.
func (f Float32) Ceil() Float32 {
	return f.pointwise("ceil", math32.Ceil, math.Ceil)
}

// Round returns the nearest integer, rounding half away from zero.
func (f Float32) Round() Float32 {
	return f.pointwise("round", math32.Round, math.Round)
}

// Trunc returns the integer part of f.
func (f Float32) Trunc() Float32 {
	return f.pointwise("trunc", math32.Trunc, math.Trunc)
}

// pointwise applies a non-decreasing function to the value and both bounds,
// then rounds the bounds outwards.
func (f Float32) pointwise(op string, fn func(float32) float32, fn64 func(float64) float64) Float32 {
	r := Float32{
		precise: f.precise.apply(fn64),
		v:       fn(f.v),
		low:     NextDown32(fn(f.low)),
		high:    NextUp32(fn(f.high)),
	}
	r.check(op)
	return r
}

// Fract returns the fractional part of f, which has the sign of f.
// If the bounds have different integer parts, the result can't be represented as a single interval,
// so it is widened to [0, 1), (-1, 0], or (-1, 1), depending on the sign of the bounds.
func (f Float32) Fract() Float32 {
	r := Float32{
		precise: f.precise.apply(fract64),
		v:       fract32(f.v),
	}
	switch {
	case math32.Trunc(f.low) == math32.Trunc(f.high):
		// x - trunc(x) is exact and increasing within a single integer part.
		r.low, r.high = fract32(f.low), fract32(f.high)
	case f.low >= 0:
		r.low, r.high = 0, belowOne
	case f.high <= 0:
		r.low, r.high = aboveMinusOne, 0
	default:
		r.low, r.high = aboveMinusOne, belowOne
	}
	r.check("fract")
	return r
}

// Signum returns 1 if f is positive or +0, -1 if f is negative or -0, and NaN for a NaN.
func (f Float32) Signum() Float32 {
	r := Float32{
		precise: f.precise.apply(signum64),
		v:       signum32(f.v),
		low:     signum32(f.low),
		high:    signum32(f.high),
	}
	r.check("signum")
	return r
}

func fract32(x float32) float32 {
	return x - math32.Trunc(x)
}

func fract64(x float64) float64 {
	return x - math.Trunc(x)
}

func signum32(x float32) float32 {
	if math32.IsNaN(x) {
		return x
	}
	return math32.Copysign(1, x)
}

func signum64(x float64) float64 {
	if math.IsNaN(x) {
		return x
	}
	return math.Copysign(1, x)
}
