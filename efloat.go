// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package efloat implements a float32 which remembers how far off it might be
// from the precise value, based on its history. Along with the value itself it keeps
// lower and upper bounds, which are guaranteed to contain the exact result of
// the computation the value came from.
//
// A few tips:
//   - multiplication and division don't cause too much error.
//   - addition is ok, but subtraction (or addition of differing signs) has a terrible error bound.
//   - operate on small numbers first, so that larger errors don't propagate and grow.
//
// Built with the efloatcheck tag, every value also carries the same computation
// performed in float64, and each operation checks it stays within the bounds.
package efloat

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

var (
	jsonParts = []string{`{"v":`, `,"low":`, `,"high":`, `}`}
)

// Float32 is a float32 value with error bounds.
// Float32 is immutable, all the operations return new values.
type Float32 struct {
	// zero-size in regular builds, so it goes first to avoid trailing padding.
	precise shadow

	v, low, high float32
}

// New returns an exact value, with both bounds equal to v.
func New(v float32) Float32 {
	f := Float32{
		precise: newShadow(float64(v)),
		v:       v,
		low:     v,
		high:    v,
	}
	f.check("new")
	return f
}

// NewWithErr returns a value within [v-err, v+err], where err is a non-negative absolute error.
// Both bounds are rounded outwards, so rounding can't exclude the true bound.
func NewWithErr(v, err float32) Float32 {
	f := Float32{
		precise: newShadow(float64(v)),
		v:       v,
		low:     NextDown32(v - err),
		high:    NextUp32(v + err),
	}
	f.check("new")
	return f
}

// Value returns the best estimate, which ordinary float32 arithmetic would have produced.
func (f Float32) Value() float32 {
	return f.v
}

// UpperBound returns the upper bound of the value.
func (f Float32) UpperBound() float32 {
	return f.high
}

// LowerBound returns the lower bound of the value.
func (f Float32) LowerBound() float32 {
	return f.low
}

// Bounds returns both bounds.
func (f Float32) Bounds() (low, high float32) {
	return f.low, f.high
}

// AbsoluteError returns the width of the interval.
func (f Float32) AbsoluteError() float32 {
	return f.high - f.low
}

// Contains reports whether x lies within the bounds.
func (f Float32) Contains(x float64) bool {
	return float64(f.low) <= x && x <= float64(f.high)
}

// String returns a string like `1 [0.99999994, 1.0000001]`.
func (f Float32) String() string {
	var builder strings.Builder
	builder.WriteString(formatFloat(f.v))
	builder.WriteString(" [")
	builder.WriteString(formatFloat(f.low))
	builder.WriteString(", ")
	builder.WriteString(formatFloat(f.high))
	builder.WriteRune(']')
	return builder.String()
}

// GoString returns debug string representation.
func (f Float32) GoString() string {
	return f.String() + fmt.Sprintf(" {%#x, %#x, %#x}",
		math32.Float32bits(f.v), math32.Float32bits(f.low), math32.Float32bits(f.high))
}

// MarshalJSON marshals the value like `{"v":1,"low":0.99999994,"high":1.0000001}`.
// Infinities and NaNs are marshaled as strings, like `"+Inf"`.
func (f Float32) MarshalJSON() ([]byte, error) {
	var builder strings.Builder
	for i, v := range [...]float32{f.v, f.low, f.high} {
		builder.WriteString(jsonParts[i])
		builder.WriteString(jsonFloat(v))
	}
	builder.WriteString(jsonParts[3])
	return []byte(builder.String()), nil
}

// UnmarshalJSON unmarshals an object produced by MarshalJSON.
// Returns an error if the bounds don't contain the value.
func (f *Float32) UnmarshalJSON(data []byte) error {
	var d struct {
		V, Low, High json.RawMessage
	}
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	var parsed [3]float32
	for i, raw := range [...]json.RawMessage{d.V, d.Low, d.High} {
		if len(raw) == 0 {
			return fmt.Errorf("missing field %q", strings.Trim(jsonParts[i], `{,:"`))
		}
		v, err := strconv.ParseFloat(strings.Trim(string(raw), `"`), 32)
		if err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
		parsed[i] = float32(v)
	}
	result := Float32{
		precise: newShadow(float64(parsed[0])),
		v:       parsed[0],
		low:     parsed[1],
		high:    parsed[2],
	}
	if !math32.IsNaN(result.v) && !result.Contains(float64(result.v)) {
		return fmt.Errorf("value %v is out of bounds [%v, %v]", result.v, result.low, result.high)
	}
	if err := result.validate("unmarshal"); err != nil {
		return err
	}
	*f = result
	return nil
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func jsonFloat(v float32) string {
	if math32.IsInf(v, 0) || math32.IsNaN(v) {
		return strconv.Quote(formatFloat(v))
	}
	return formatFloat(v)
}
