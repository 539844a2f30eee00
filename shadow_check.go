// Copyright 2020 Aleksandr Demakin. All rights reserved.

//go:build efloatcheck

package efloat

import (
	"math"

	"github.com/chewxy/math32"
)

// Verifying is true if the package is built with the efloatcheck tag,
// i.e. every value carries a float64 reference checked against its bounds.
const Verifying = true

// shadow is the result of the same computation carried out in float64.
type shadow float64

func newShadow(p float64) shadow { return shadow(p) }

func (s shadow) apply(fn func(float64) float64) shadow {
	return shadow(fn(float64(s)))
}

func (s shadow) combine(other shadow, fn func(a, b float64) float64) shadow {
	return shadow(fn(float64(s), float64(other)))
}

func (s shadow) mulAdd(a, b shadow) shadow {
	return shadow(math.FMA(float64(s), float64(a), float64(b)))
}

func (s shadow) value() float64 { return float64(s) }

// escapes returns a non-empty reason if a finite v has its reference outside [low, high].
func (s shadow) escapes(v, low, high float32) string {
	if math32.IsInf(v, 0) || math32.IsNaN(v) {
		return ""
	}
	p := float64(s)
	switch {
	case !(float64(low) <= p):
		return "precise value below the low bound"
	case !(p <= float64(high)):
		return "precise value above the high bound"
	}
	return ""
}

// NewWithPreciseErr returns a value with bounds [v-err, v+err], rounded outwards,
// whose reference value is p instead of v. It is used by tests that know the exact answer.
func NewWithPreciseErr(v float32, p float64, err float32) Float32 {
	f := NewWithErr(v, err)
	f.precise = shadow(p)
	f.check("new")
	return f
}

// RelativeError returns |precise-value|/precise.
func (f Float32) RelativeError() float32 {
	p := float64(f.precise)
	return float32(math.Abs((p - float64(f.v)) / p))
}

// Precise returns the reference value computed in float64.
func (f Float32) Precise() float64 {
	return float64(f.precise)
}
