// Copyright 2020 Aleksandr Demakin. All rights reserved.

package efloat

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/chewxy/math32"
)

const (
	// epsilon is the difference between 1 and the next float32.
	epsilon = 0x1p-23
	// minPositive is the smallest positive normal float32.
	minPositive = 0x1p-126
	// parsePrec is enough to hold any float32 written in base 2, 8, or 16 exactly.
	parsePrec = 256
)

// Zero returns an exact 0.
func Zero() Float32 { return New(0) }

// One returns an exact 1.
func One() Float32 { return New(1) }

// NaN returns a NaN value.
func NaN() Float32 { return New(math32.NaN()) }

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) Float32 { return New(math32.Inf(sign)) }

// NegZero returns an exact -0.
func NegZero() Float32 { return New(negZero) }

// MaxValue returns the largest finite float32.
func MaxValue() Float32 { return New(math.MaxFloat32) }

// MinValue returns the lowest finite float32.
func MinValue() Float32 { return New(-math.MaxFloat32) }

// MinPositive returns the smallest positive normal float32.
func MinPositive() Float32 { return New(minPositive) }

// Epsilon returns the difference between 1 and the next representable float32.
func Epsilon() Float32 { return New(epsilon) }

// IsZero returns true, if zero is within the bounds.
func (f Float32) IsZero() bool {
	return f.low <= 0 && f.high >= 0
}

// IsOne returns true, if one is within the bounds.
func (f Float32) IsOne() bool {
	return f.low <= 1 && f.high >= 1
}

// IsNaN returns true, if the best estimate is NaN.
func (f Float32) IsNaN() bool { return math32.IsNaN(f.v) }

// IsInf returns true, if the best estimate is an infinity.
func (f Float32) IsInf() bool { return math32.IsInf(f.v, 0) }

// IsFinite returns true, if the best estimate is neither an infinity nor NaN.
func (f Float32) IsFinite() bool { return isFinite(f.v) }

// IsNormal returns true, if the best estimate is neither zero, subnormal, infinite, nor NaN.
func (f Float32) IsNormal() bool {
	return isFinite(f.v) && math32.Abs(f.v) >= minPositive
}

// IsSignPositive returns true, if the best estimate has no sign bit.
// There is no single answer for the bounds, so they are not taken into account.
func (f Float32) IsSignPositive() bool { return !math32.Signbit(f.v) }

// IsSignNegative returns true, if the best estimate has the sign bit.
func (f Float32) IsSignNegative() bool { return math32.Signbit(f.v) }

// Float32 returns the best estimate.
func (f Float32) Float32() float32 { return f.v }

// Float64 returns the best estimate as a float64.
func (f Float32) Float64() float64 { return float64(f.v) }

// Parse returns an exact value for s written in the given radix: 2, 8, 10, or 16.
// Radices other than 10 accept a 'p' exponent, like "1.8p1".
func Parse(s string, radix int) (Float32, error) {
	switch radix {
	case 10:
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return Float32{}, fmt.Errorf("parsing failed: %w", err)
		}
		return New(float32(v)), nil
	case 2, 8, 16:
		bf, _, err := big.ParseFloat(s, radix, parsePrec, big.ToNearestEven)
		if err != nil {
			return Float32{}, fmt.Errorf("parsing failed: %w", err)
		}
		v, _ := bf.Float32()
		return New(v), nil
	default:
		return Float32{}, fmt.Errorf("unsupported radix %d", radix)
	}
}

// MustParse is like Parse for radix 10, but panics on error.
func MustParse(s string) Float32 {
	f, err := Parse(s, 10)
	if err != nil {
		panic(err)
	}
	return f
}
