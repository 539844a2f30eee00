package mathutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinMax(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		vals   []float32
		lo, hi float32
		ok     bool
	}{
		{nil, 0, 0, false},
		{[]float32{1}, 1, 1, true},
		{[]float32{3, -1, 2, 0}, -1, 3, true},
		{[]float32{float32(math.Inf(-1)), 5, float32(math.Inf(1))}, float32(math.Inf(-1)), float32(math.Inf(1)), true},
		{[]float32{1, float32(math.NaN()), 2}, 0, 0, false},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			lo, hi, ok := MinMax(test.vals...)
			a.Equal(test.ok, ok)
			a.Equal(test.lo, lo)
			a.Equal(test.hi, hi)
		})
	}
}

func TestULPDistance32(t *testing.T) {
	a := assert.New(t)
	one := float32(1)
	tests := []struct {
		x, y float32
		d    uint32
	}{
		{one, one, 0},
		{0, float32(math.Copysign(0, -1)), 0},
		{one, math.Nextafter32(one, 2), 1},
		{math.Nextafter32(one, 0), math.Nextafter32(one, 2), 2},
		{math.SmallestNonzeroFloat32, -math.SmallestNonzeroFloat32, 2},
		{0, math.SmallestNonzeroFloat32, 1},
		{math.MaxFloat32, float32(math.Inf(1)), 1},
		{float32(math.Inf(-1)), float32(math.Inf(1)), 2 * 0x7f800000},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.d, ULPDistance32(test.x, test.y))
			a.Equal(test.d, ULPDistance32(test.y, test.x))
		})
	}
}

func TestULPDistance64(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint64(0), ULPDistance64(1, 1))
	a.Equal(uint64(1), ULPDistance64(1, math.Nextafter(1, 2)))
	a.Equal(uint64(2), ULPDistance64(-math.SmallestNonzeroFloat64, math.SmallestNonzeroFloat64))
	a.Equal(uint64(2*0x7ff0000000000000), ULPDistance64(math.Inf(-1), math.Inf(1)))
}

func TestTrunc64Range(t *testing.T) {
	a := assert.New(t)
	a.True(Trunc64Range(2.1, 2.9))
	a.True(Trunc64Range(-0.5, 0.5))
	a.False(Trunc64Range(2.9, 3.1))
	a.False(Trunc64Range(-1.5, -0.5))
}

func BenchmarkULPDistance32(b *testing.B) {
	var dummy uint32
	for i := 0; i < b.N; i++ {
		dummy += ULPDistance32(float32(i), -float32(i))
	}
	// this metric is just to prevent unwanted optimisations in calculations of `dummy.`
	b.ReportMetric(float64(dummy), "dummy_metric")
}
