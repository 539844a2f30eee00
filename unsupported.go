// Copyright 2020 Aleksandr Demakin. All rights reserved.

package efloat

import (
	"errors"
	"fmt"
)

// ErrUnsupported is wrapped by the panic values of the operations,
// which have no sound interval implementation yet.
var ErrUnsupported = errors.New("efloat: operation is not supported")

func unsupported(op string) error {
	return fmt.Errorf("%s: %w", op, ErrUnsupported)
}

// Exp is not supported and panics.
func (f Float32) Exp() Float32 { panic(unsupported("Exp")) }

// Exp2 is not supported and panics.
func (f Float32) Exp2() Float32 { panic(unsupported("Exp2")) }

// ExpM1 is not supported and panics.
func (f Float32) ExpM1() Float32 { panic(unsupported("ExpM1")) }

// Ln is not supported and panics.
func (f Float32) Ln() Float32 { panic(unsupported("Ln")) }

// Ln1p is not supported and panics.
func (f Float32) Ln1p() Float32 { panic(unsupported("Ln1p")) }

// Log is not supported and panics.
func (f Float32) Log(base Float32) Float32 { panic(unsupported("Log")) }

// Log2 is not supported and panics.
func (f Float32) Log2() Float32 { panic(unsupported("Log2")) }

// Log10 is not supported and panics.
func (f Float32) Log10() Float32 { panic(unsupported("Log10")) }

// Powi is not supported and panics.
func (f Float32) Powi(n int) Float32 { panic(unsupported("Powi")) }

// Powf is not supported and panics.
func (f Float32) Powf(n Float32) Float32 { panic(unsupported("Powf")) }

// Cbrt is not supported and panics.
func (f Float32) Cbrt() Float32 { panic(unsupported("Cbrt")) }

// Hypot is not supported and panics.
func (f Float32) Hypot(other Float32) Float32 { panic(unsupported("Hypot")) }

// Sin is not supported and panics.
func (f Float32) Sin() Float32 { panic(unsupported("Sin")) }

// Cos is not supported and panics.
func (f Float32) Cos() Float32 { panic(unsupported("Cos")) }

// Tan is not supported and panics.
func (f Float32) Tan() Float32 { panic(unsupported("Tan")) }

// SinCos is not supported and panics.
func (f Float32) SinCos() (sin, cos Float32) { panic(unsupported("SinCos")) }

// Asin is not supported and panics.
func (f Float32) Asin() Float32 { panic(unsupported("Asin")) }

// Acos is not supported and panics.
func (f Float32) Acos() Float32 { panic(unsupported("Acos")) }

// Atan is not supported and panics.
func (f Float32) Atan() Float32 { panic(unsupported("Atan")) }

// Atan2 is not supported and panics.
func (f Float32) Atan2(other Float32) Float32 { panic(unsupported("Atan2")) }

// Sinh is not supported and panics.
func (f Float32) Sinh() Float32 { panic(unsupported("Sinh")) }

// Cosh is not supported and panics.
func (f Float32) Cosh() Float32 { panic(unsupported("Cosh")) }

// Tanh is not supported and panics.
func (f Float32) Tanh() Float32 { panic(unsupported("Tanh")) }

// Asinh is not supported and panics.
func (f Float32) Asinh() Float32 { panic(unsupported("Asinh")) }

// Acosh is not supported and panics.
func (f Float32) Acosh() Float32 { panic(unsupported("Acosh")) }

// Atanh is not supported and panics.
func (f Float32) Atanh() Float32 { panic(unsupported("Atanh")) }

// IntegerDecode is not supported and panics.
func (f Float32) IntegerDecode() (mant uint64, exp int16, sign int8) {
	panic(unsupported("IntegerDecode"))
}
