// Copyright 2020 Aleksandr Demakin. All rights reserved.

package efloat

import (
	"fmt"

	"github.com/chewxy/math32"
	"go.uber.org/zap"
)

// InvariantError is the panic value of an operation which produced inconsistent bounds.
// It always means a bug in the interval arithmetic, never a bad input.
type InvariantError struct {
	Op               string
	Value, Low, High float32
	// Precise is the float64 reference value, zero without the efloatcheck tag.
	Precise float64
	Reason  string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("efloat: %s: %s (value %v, bounds [%v, %v])", e.Op, e.Reason, e.Value, e.Low, e.High)
}

// Check panics with an *InvariantError if the low bound is above the high bound,
// or, in efloatcheck builds, if the reference value escaped the bounds.
// The order of the bounds is not checked, if any of them is infinite or NaN.
func (f Float32) Check() {
	f.check("check")
}

func (f Float32) check(op string) {
	if err := f.validate(op); err != nil {
		logger.Error("interval invariant violated",
			zap.String("op", op),
			zap.String("reason", err.Reason),
			zap.Float32("value", f.v),
			zap.Float32("low", f.low),
			zap.Float32("high", f.high),
			zap.Float64("precise", err.Precise),
		)
		panic(err)
	}
}

func (f Float32) validate(op string) *InvariantError {
	reason := ""
	if isFinite(f.low) && isFinite(f.high) && f.low > f.high {
		reason = "low bound is above the high bound"
	} else {
		reason = f.precise.escapes(f.v, f.low, f.high)
	}
	if reason == "" {
		return nil
	}
	return &InvariantError{
		Op:      op,
		Value:   f.v,
		Low:     f.low,
		High:    f.high,
		Precise: f.precise.value(),
		Reason:  reason,
	}
}

func isFinite(v float32) bool {
	return !math32.IsInf(v, 0) && !math32.IsNaN(v)
}
