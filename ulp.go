// Copyright 2020 Aleksandr Demakin. All rights reserved.

package efloat

import (
	"math"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// width describes an IEEE-754 format by the unsigned integer holding its bit pattern.
type width[F constraints.Float, U constraints.Unsigned] struct {
	bits     func(F) U
	fromBits func(U) F
}

var (
	width32 = width[float32, uint32]{bits: math32.Float32bits, fromBits: math32.Float32frombits}
	width64 = width[float64, uint64]{bits: math.Float64bits, fromBits: math.Float64frombits}
)

// up returns the smallest value greater than f.
// Bit patterns of negative values grow away from zero,
// so stepping up means decrementing them.
func (w width[F, U]) up(f F) F {
	switch {
	case math.IsNaN(float64(f)), math.IsInf(float64(f), 1):
		return f
	case f == 0 && math.Signbit(float64(f)):
		return 0
	}
	u := w.bits(f)
	if f >= 0 {
		u++
	} else {
		u--
	}
	return w.fromBits(u)
}

// down returns the largest value less than f.
func (w width[F, U]) down(f F) F {
	switch {
	case math.IsNaN(float64(f)), math.IsInf(float64(f), -1):
		return f
	case f == 0 && !math.Signbit(float64(f)):
		return -f
	}
	u := w.bits(f)
	if f <= 0 {
		u++
	} else {
		u--
	}
	return w.fromBits(u)
}

// NextUp returns the smallest representable value strictly greater than f.
// NextUp(+Inf) is +Inf, NextUp(-0) is +0, NaN is returned as is.
func NextUp[T constraints.Float](f T) T {
	if unsafe.Sizeof(f) == 4 {
		return T(width32.up(float32(f)))
	}
	return T(width64.up(float64(f)))
}

// NextDown returns the largest representable value strictly less than f.
// NextDown(-Inf) is -Inf, NextDown(+0) is -0, NaN is returned as is.
func NextDown[T constraints.Float](f T) T {
	if unsafe.Sizeof(f) == 4 {
		return T(width32.down(float32(f)))
	}
	return T(width64.down(float64(f)))
}

// NextUp32 is NextUp for float32.
func NextUp32(f float32) float32 { return width32.up(f) }

// NextDown32 is NextDown for float32.
func NextDown32(f float32) float32 { return width32.down(f) }

// NextUp64 is NextUp for float64.
func NextUp64(f float64) float64 { return width64.up(f) }

// NextDown64 is NextDown for float64.
func NextDown64(f float64) float64 { return width64.down(f) }
