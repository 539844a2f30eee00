// Copyright 2020 Aleksandr Demakin. All rights reserved.

//go:build efloatcheck

package efloat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifying(t *testing.T) {
	a := assert.New(t)
	a.True(Verifying)

	x := New(0.87234)
	y := New(0.2348709)
	w := One().Sub(x.Mul(y))
	a.Equal(1.0-float64(float32(0.87234))*float64(float32(0.2348709)), w.Precise())
	a.Less(w.RelativeError(), float32(1e-6))
}

func TestNewWithPreciseErr(t *testing.T) {
	a := assert.New(t)
	f := NewWithPreciseErr(0.1, 0.1, 0)
	a.Equal(0.1, f.Precise())
	a.Equal(float32(0.1), f.Value())
	a.Greater(f.RelativeError(), float32(0))

	err := recoverError(func() { NewWithPreciseErr(1, 2, 0.5) })
	var ie *InvariantError
	if a.True(errors.As(err, &ie)) {
		a.Equal("new", ie.Op)
		a.Equal(2.0, ie.Precise)
		a.Equal("precise value above the high bound", ie.Reason)
	}
	err = recoverError(func() { NewWithPreciseErr(1, 0, 0.5) })
	if a.True(errors.As(err, &ie)) {
		a.Equal("precise value below the low bound", ie.Reason)
	}
}

func TestPreciseFollowsOperations(t *testing.T) {
	a := assert.New(t)
	p := 3.0000001
	x := NewWithPreciseErr(3, p, 0.001)
	a.Equal(p*p, x.Mul(x).Precise())
	a.Equal(-p, x.Neg().Precise())
	a.Equal(1/p, x.Recip().Precise())
	a.Equal(2*p+1, x.MulAdd(New(2), New(1)).Precise())
	// infinite values are never checked.
	a.NotPanics(func() { NewWithPreciseErr(1, 1, 0).Div(Zero()) })
}
