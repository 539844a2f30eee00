// Copyright 2020 Aleksandr Demakin. All rights reserved.

//go:build !efloatcheck

package efloat

// Verifying is true if the package is built with the efloatcheck tag,
// i.e. every value carries a float64 reference checked against its bounds.
const Verifying = false

// shadow takes no space and does nothing without the efloatcheck tag.
type shadow struct{}

func newShadow(float64) shadow { return shadow{} }

func (s shadow) apply(func(float64) float64) shadow { return s }

func (s shadow) combine(shadow, func(a, b float64) float64) shadow { return s }

func (s shadow) mulAdd(a, b shadow) shadow { return s }

func (s shadow) value() float64 { return 0 }

func (s shadow) escapes(v, low, high float32) string { return "" }
