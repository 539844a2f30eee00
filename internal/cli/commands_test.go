// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cli

import (
	"context"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avdva/efloat"
)

func TestNextResult(t *testing.T) {
	a := assert.New(t)
	r, err := nextResult("-0", 32, true, true)
	require.NoError(t, err)
	a.Equal("-0", r.Value.Float)
	a.Equal("0x80000000", r.Value.Bits)
	a.Equal("0", r.Up.Float)
	a.Equal("0x00000000", r.Up.Bits)
	a.Equal("0x80000001", r.Down.Bits)
	a.Equal("-1e-45", r.Down.Float)
	a.Equal("0", r.Value.Exact)
	a.Equal("0", r.Up.Exact)
	a.True(strings.HasPrefix(r.Down.Exact, "-0.00000000000000000000000000000000000000000000140129846432481707"), r.Down.Exact)

	r, err = nextResult("inf", 64, true, true)
	require.NoError(t, err)
	a.Equal("+Inf", r.Value.Float)
	a.Equal("+Inf", r.Up.Exact)
	a.Equal(fmt.Sprintf("0x%016x", math.Float64bits(math.MaxFloat64)), r.Down.Bits)
}

func TestULPs(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		a, b  string
		width int
		ulps  uint64
	}{
		{"1", "2", 32, 1 << 23},
		{"2", "1", 32, 1 << 23},
		{"1", "2", 64, 1 << 52},
		{"-1", "1", 32, 0x3f800000 * 2},
		{"0", "-0", 32, 0},
		{"1e-45", "-1e-45", 32, 2},
		{"1", "inf", 32, 0x7f800000 - 0x3f800000},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			r, err := ulps(test.a, test.b, test.width)
			if a.NoError(err) {
				a.Equal(test.ulps, r.ULPs)
			}
		})
	}
}

func TestEval(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		expr      string
		v, lo, hi float32
	}{
		{"2 3 *", 6, efloat.NextDown32(6), efloat.NextUp32(6)},
		{"3 2 swap -", -1, efloat.NextDown32(-1), efloat.NextUp32(-1)},
		{"4 sqrt", 2, efloat.NextDown32(2), efloat.NextUp32(2)},
		{"2 3 4 fma", 10, efloat.NextDown32(10), efloat.NextUp32(10)},
		{"2.5 fract", 0.5, 0.5, 0.5},
		{"7 4 %", 3, efloat.NextDown32(3), efloat.NextUp32(3)},
		{"1 neg abs", 1, 1, 1},
		{"1 2 max", 2, 2, 2},
		{"4 recip", 0.25, efloat.NextDown32(0.25), efloat.NextUp32(0.25)},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			f, err := eval(strings.Fields(test.expr), 0, zap.NewNop())
			if a.NoError(err) {
				a.Equal(test.v, f.Value(), test.expr)
				a.Equal(test.lo, f.LowerBound(), test.expr)
				a.Equal(test.hi, f.UpperBound(), test.expr)
			}
		})
	}
}

func TestEvalWithErr(t *testing.T) {
	a := assert.New(t)
	f, err := eval([]string{"1", "1", "-"}, 0.5, zap.NewNop())
	require.NoError(t, err)
	a.Equal(float32(0), f.Value())
	a.Less(f.LowerBound(), float32(-1))
	a.Greater(f.UpperBound(), float32(1))

	_, err = eval([]string{"1"}, -1, zap.NewNop())
	if a.Error(err) {
		a.Equal("invalid error -1: must not be negative", err.Error())
		a.Equal(ExitCommandError, GetExitCode(err))
	}
}

func TestSweep(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		from, to         uint32
		workers          int
		checked, skipped uint64
	}{
		{0x3f800000, 0x3f801000, 3, 0x1000, 0},
		{0, 4, 8, 4, 0},
		{0x80000000, 0x80000004, 2, 4, 0},
		{0x7f7fffff, 0x7f800002, 1, 1, 2},
		{0xff7ffffe, 0xffffffff, 4, 2, 0x7fffff},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			r, err := sweep(context.Background(), SweepOptions{From: test.from, To: test.to, Workers: test.workers}, zap.NewNop())
			if a.NoError(err) {
				a.Equal(test.checked, r.Checked)
				a.Equal(test.skipped, r.Skipped)
				a.Zero(r.Failures)
			}
		})
	}
}

func TestSweepCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sweep(ctx, SweepOptions{From: 0, To: 0x100000, Workers: 2}, zap.NewNop())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
