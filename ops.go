// Copyright 2020 Aleksandr Demakin. All rights reserved.

package efloat

import (
	"cmp"
	"math"

	"github.com/chewxy/math32"

	mu "github.com/avdva/efloat/internal/mathutil"
)

var (
	posInf  = math32.Inf(1)
	negInf  = math32.Inf(-1)
	negZero = math32.Copysign(0, -1)
)

// Add returns f+other.
func (f Float32) Add(other Float32) Float32 {
	r := Float32{
		precise: f.precise.combine(other.precise, add64),
		v:       f.v + other.v,
		// interval addition, with the result rounded away from r.v to be conservative.
		low:  NextDown32(f.low + other.low),
		high: NextUp32(f.high + other.high),
	}
	r.check("add")
	return r
}

// Sub returns f-other.
func (f Float32) Sub(other Float32) Float32 {
	r := Float32{
		precise: f.precise.combine(other.precise, sub64),
		v:       f.v - other.v,
		low:     NextDown32(f.low - other.high),
		high:    NextUp32(f.high - other.low),
	}
	r.check("sub")
	return r
}

// Mul returns f*other.
func (f Float32) Mul(other Float32) Float32 {
	r := Float32{
		precise: f.precise.combine(other.precise, mul64),
		v:       f.v * other.v,
	}
	r.low, r.high = outward(
		f.low*other.low,
		f.high*other.low,
		f.low*other.high,
		f.high*other.high,
	)
	r.check("mul")
	return r
}

// Div returns f/other.
// If other straddles zero, the result is bounded by the infinities.
func (f Float32) Div(other Float32) Float32 {
	v, p := f.v/other.v, f.precise.combine(other.precise, div64)
	if straddlesZero(other) {
		return unbounded("div", v, p)
	}
	dl, dh := divisorBounds(other)
	r := Float32{precise: p, v: v}
	r.low, r.high = outward(f.low/dl, f.high/dl, f.low/dh, f.high/dh)
	r.check("div")
	return r
}

// Rem returns the remainder of f/other, which has the sign of f, like math.Mod.
// If other straddles zero, the result is bounded by the infinities.
func (f Float32) Rem(other Float32) Float32 {
	v, p := math32.Mod(f.v, other.v), f.precise.combine(other.precise, math.Mod)
	if straddlesZero(other) {
		return unbounded("rem", v, p)
	}
	dl, dh := divisorBounds(other)
	r := Float32{precise: p, v: v}
	// x mod y == x - trunc(x/y)*y is linear in both x and y, while trunc(x/y) stays the same,
	// so the corners are enough only if all the quotients truncate to the same integer.
	qlo, qhi, ok := mu.MinMax(
		float64(f.low)/float64(dl),
		float64(f.high)/float64(dl),
		float64(f.low)/float64(dh),
		float64(f.high)/float64(dh),
	)
	if ok && mu.Trunc64Range(NextDown64(qlo), NextUp64(qhi)) {
		r.low, r.high = outward(
			math32.Mod(f.low, dl),
			math32.Mod(f.high, dl),
			math32.Mod(f.low, dh),
			math32.Mod(f.high, dh),
		)
		r.check("rem")
		return r
	}
	m := math32.Max(math32.Abs(dl), math32.Abs(dh))
	if m == 0 {
		return unbounded("rem", v, p)
	}
	// |x mod y| < |y| and |x mod y| <= |x|.
	switch {
	case f.low >= 0:
		r.low, r.high = 0, math32.Min(f.high, m)
	case f.high <= 0:
		r.low, r.high = math32.Max(f.low, -m), 0
	default:
		r.low, r.high = math32.Max(f.low, -m), math32.Min(f.high, m)
	}
	r.check("rem")
	return r
}

// Neg returns -f. Negation is exact, so the bounds are just swapped.
func (f Float32) Neg() Float32 {
	r := Float32{
		precise: f.precise.apply(neg64),
		v:       -f.v,
		low:     -f.high,
		high:    -f.low,
	}
	r.check("neg")
	return r
}

// Abs returns |f|.
func (f Float32) Abs() Float32 {
	switch {
	case f.low >= 0:
		// the entire interval is not negative, so we are done.
		return f
	case f.high <= 0:
		// the entire interval is not positive.
		r := Float32{
			precise: f.precise.apply(math.Abs),
			v:       math32.Abs(f.v),
			low:     -f.high,
			high:    -f.low,
		}
		r.check("abs")
		return r
	default:
		r := Float32{
			precise: f.precise.apply(math.Abs),
			v:       math32.Abs(f.v),
			low:     0,
			high:    math32.Max(-f.low, f.high),
		}
		r.check("abs")
		return r
	}
}

// Sqrt returns the square root of f.
// A negative low bound is treated as zero.
func (f Float32) Sqrt() Float32 {
	low := f.low
	if low < 0 {
		low = 0
	}
	r := Float32{
		precise: f.precise.apply(math.Sqrt),
		v:       math32.Sqrt(f.v),
		low:     NextDown32(math32.Sqrt(low)),
		high:    NextUp32(math32.Sqrt(f.high)),
	}
	r.check("sqrt")
	return r
}

// Recip returns 1/f.
// If f straddles zero, the result is bounded by the infinities.
func (f Float32) Recip() Float32 {
	v, p := 1/f.v, f.precise.apply(recip64)
	if straddlesZero(f) {
		return unbounded("recip", v, p)
	}
	dl, dh := divisorBounds(f)
	r := Float32{precise: p, v: v}
	r.low, r.high = outward(1/dl, 1/dh)
	r.check("recip")
	return r
}

// MulAdd returns f*a+b computed with a single rounding.
func (f Float32) MulAdd(a, b Float32) Float32 {
	var corners [8]float32
	i := 0
	for _, x := range [...]float32{f.low, f.high} {
		for _, y := range [...]float32{a.low, a.high} {
			for _, z := range [...]float32{b.low, b.high} {
				corners[i] = fma32(x, y, z)
				i++
			}
		}
	}
	r := Float32{
		precise: f.precise.mulAdd(a.precise, b.precise),
		v:       fma32(f.v, a.v, b.v),
	}
	r.low, r.high = outward(corners[:]...)
	r.check("muladd")
	return r
}

// Max returns the maximum of f and other. Max is exact.
func (f Float32) Max(other Float32) Float32 {
	r := Float32{
		precise: f.precise.combine(other.precise, math.Max),
		v:       math32.Max(f.v, other.v),
		low:     math32.Max(f.low, other.low),
		high:    math32.Max(f.high, other.high),
	}
	r.check("max")
	return r
}

// Min returns the minimum of f and other. Min is exact.
func (f Float32) Min(other Float32) Float32 {
	r := Float32{
		precise: f.precise.combine(other.precise, math.Min),
		v:       math32.Min(f.v, other.v),
		low:     math32.Min(f.low, other.low),
		high:    math32.Min(f.high, other.high),
	}
	r.check("min")
	return r
}

// Dim returns the maximum of f-other or 0.
func (f Float32) Dim(other Float32) Float32 {
	return f.Sub(other).Max(Zero())
}

// Eq returns true, if both values have the same best estimate.
// The bounds are not compared, so values with different errors can be equal.
func (f Float32) Eq(other Float32) bool {
	return f.v == other.v
}

// Cmp compares the best estimates of two values, ignoring the bounds.
// Returns -1 if a < b, 0 if a == b, 1 if a > b. A NaN is less than any other value.
func (f Float32) Cmp(other Float32) int {
	return cmp.Compare(f.v, other.v)
}

// Less returns true, if the best estimate of f is less than other's.
func (f Float32) Less(other Float32) bool {
	return f.v < other.v
}

// outward returns the smallest and the largest of the corners, rounded down and up.
// A NaN corner (like 0*Inf) says nothing about the result, so everything is returned then.
func outward(corners ...float32) (lo, hi float32) {
	lo, hi, ok := mu.MinMax(corners...)
	if !ok {
		return negInf, posInf
	}
	return NextDown32(lo), NextUp32(hi)
}

func unbounded(op string, v float32, p shadow) Float32 {
	r := Float32{precise: p, v: v, low: negInf, high: posInf}
	r.check(op)
	return r
}

func straddlesZero(f Float32) bool {
	return f.low < 0 && f.high > 0
}

// divisorBounds returns the bounds of a divisor that doesn't straddle zero,
// with a zero bound signed towards the rest of the interval,
// so that x/0 overflows to the infinity on the right side.
func divisorBounds(f Float32) (lo, hi float32) {
	lo, hi = f.low, f.high
	if lo == 0 {
		lo = 0 // +0
	}
	if hi == 0 {
		hi = negZero
	}
	return lo, hi
}

// fma32 evaluates x*y+z in float64 and rounds it to float32.
// The product of two float32 values is exact in float64, and the second rounding
// moves the result by less than one float32 ulp, which the outward rounding absorbs.
func fma32(x, y, z float32) float32 {
	return float32(math.FMA(float64(x), float64(y), float64(z)))
}

func add64(a, b float64) float64 { return a + b }

func sub64(a, b float64) float64 { return a - b }

func mul64(a, b float64) float64 { return a * b }

func div64(a, b float64) float64 { return a / b }

func neg64(a float64) float64 { return -a }

func recip64(a float64) float64 { return 1 / a }
