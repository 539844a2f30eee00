// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package exact expands binary floating-point numbers into exact decimals.
// Every finite float is a dyadic rational m*2^e, so its decimal expansion is finite.
package exact

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

const mantBits = 53

var (
	errBadFloat = fmt.Errorf("bad float number")
	five        = big.NewInt(5)
)

// Float64 returns the exact decimal value of f.
// Returns an error for infinities and not-a-numbers.
func Float64(f float64) (decimal.Decimal, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, errBadFloat
	}
	frac, e := math.Frexp(f)
	// frac has at most 53 significant bits, so this is an exact integer.
	mant := int64(math.Ldexp(frac, mantBits))
	return fromMantAndExp2(mant, e-mantBits), nil
}

// Float32 returns the exact decimal value of f.
func Float32(f float32) (decimal.Decimal, error) {
	return Float64(float64(f))
}

// MustFloat64 is like Float64, but panics on error.
func MustFloat64(f float64) decimal.Decimal {
	d, err := Float64(f)
	if err != nil {
		panic(err)
	}
	return d
}

// fromMantAndExp2 returns mant*2^e.
func fromMantAndExp2(mant int64, e int) decimal.Decimal {
	m := big.NewInt(mant)
	if e >= 0 {
		return decimal.NewFromBigInt(m.Lsh(m, uint(e)), 0)
	}
	// 2^-k == 5^k * 10^-k
	k := -e
	m.Mul(m, new(big.Int).Exp(five, big.NewInt(int64(k)), nil))
	return decimal.NewFromBigInt(m, int32(-k))
}

// Within reports whether low <= d <= high, with all three compared exactly.
// Infinite bounds are open on their side, NaN bounds never contain anything.
func Within(d decimal.Decimal, low, high float64) bool {
	if math.IsNaN(low) || math.IsNaN(high) {
		return false
	}
	if !math.IsInf(low, -1) {
		if math.IsInf(low, 1) || MustFloat64(low).Cmp(d) > 0 {
			return false
		}
	}
	if !math.IsInf(high, 1) {
		if math.IsInf(high, -1) || MustFloat64(high).Cmp(d) < 0 {
			return false
		}
	}
	return true
}
