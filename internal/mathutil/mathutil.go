// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package mathutil contains width-generic helpers for IEEE-754 values.
package mathutil

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// MinMax returns the smallest and the largest of vals.
// ok is false if vals is empty or any of them is NaN.
func MinMax[T constraints.Float](vals ...T) (lo, hi T, ok bool) {
	if len(vals) == 0 {
		return 0, 0, false
	}
	lo, hi = vals[0], vals[0]
	for _, v := range vals {
		if math.IsNaN(float64(v)) {
			return 0, 0, false
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi, true
}

// ULPDistance returns the number of representable steps between a and b,
// where bits reinterprets a value as an unsigned integer of the same width.
// +0 and -0 are zero steps apart. Neither a nor b can be NaN.
func ULPDistance[F constraints.Float, U constraints.Unsigned](a, b F, bits func(F) U) U {
	var one U = 1
	sign := one << (unsafe.Sizeof(one)*8 - 1)
	ua, ub := bits(a), bits(b)
	ma, mb := ua&^sign, ub&^sign
	if ua&sign != ub&sign {
		// on the opposite sides of zero: both magnitudes count.
		return ma + mb
	}
	if ma > mb {
		return ma - mb
	}
	return mb - ma
}

// ULPDistance32 is ULPDistance for float32 values.
func ULPDistance32(a, b float32) uint32 {
	return ULPDistance(a, b, math32.Float32bits)
}

// ULPDistance64 is ULPDistance for float64 values.
func ULPDistance64(a, b float64) uint64 {
	return ULPDistance(a, b, math.Float64bits)
}

// Trunc64Range reports whether truncating every value in [lo, hi] yields the same integer.
func Trunc64Range(lo, hi float64) bool {
	return math.Trunc(lo) == math.Trunc(hi)
}
