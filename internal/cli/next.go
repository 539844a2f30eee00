// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/avdva/efloat"
	"github.com/avdva/efloat/internal/exact"
)

// NextResult holds a value and its neighbours.
type NextResult struct {
	Width int      `json:"width" yaml:"width"`
	Value NextItem `json:"value" yaml:"value"`
	Up    NextItem `json:"up" yaml:"up"`
	Down  NextItem `json:"down" yaml:"down"`
}

// NextItem is a single float, optionally with its bits and exact decimal value.
type NextItem struct {
	Float string `json:"float" yaml:"float"`
	Bits  string `json:"bits,omitempty" yaml:"bits,omitempty"`
	Exact string `json:"exact,omitempty" yaml:"exact,omitempty"`
}

func (r NextResult) String() string {
	var builder strings.Builder
	for i, item := range [...]NextItem{r.Value, r.Up, r.Down} {
		if i > 0 {
			builder.WriteRune('\n')
		}
		builder.WriteString(fmt.Sprintf("%-6s %s", [...]string{"value", "up", "down"}[i], item.Float))
		if item.Bits != "" {
			builder.WriteString(" bits=" + item.Bits)
		}
		if item.Exact != "" {
			builder.WriteString(" exact=" + item.Exact)
		}
	}
	return builder.String()
}

// NewNextCommand creates the next32 or the next64 command, depending on width.
func NewNextCommand(rootOpts *RootOptions, width int) *cobra.Command {
	var bits, exactFlag bool
	cmd := &cobra.Command{
		Use:   fmt.Sprintf("next%d <value>", width),
		Short: fmt.Sprintf("Show the float%d neighbours of a value", width),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := nextResult(args[0], width, bits, exactFlag)
			if err != nil {
				return err
			}
			rootOpts.Logger().Debug("neighbours computed", zap.Int("width", width), zap.String("value", result.Value.Float))
			return newFormatter(rootOpts, cmd).Success(result)
		},
	}
	cmd.Flags().BoolVar(&bits, "bits", false, "show bit patterns")
	cmd.Flags().BoolVar(&exactFlag, "exact", false, "show exact decimal values")
	return cmd
}

func nextResult(s string, width int, bits, exactFlag bool) (NextResult, error) {
	v, err := strconv.ParseFloat(s, width)
	if err != nil {
		return NextResult{}, WrapExitError(ExitCommandError, "bad value", err)
	}
	result := NextResult{Width: width}
	items := [...]*NextItem{&result.Value, &result.Up, &result.Down}
	if width == 32 {
		f := float32(v)
		for i, x := range [...]float32{f, efloat.NextUp32(f), efloat.NextDown32(f)} {
			*items[i] = NextItem{Float: formatFloat32(x)}
			if bits {
				items[i].Bits = fmt.Sprintf("0x%08x", math32.Float32bits(x))
			}
			if exactFlag {
				items[i].Exact = exactString32(x)
			}
		}
		return result, nil
	}
	for i, x := range [...]float64{v, efloat.NextUp64(v), efloat.NextDown64(v)} {
		*items[i] = NextItem{Float: formatFloat64(x)}
		if bits {
			items[i].Bits = fmt.Sprintf("0x%016x", math.Float64bits(x))
		}
		if exactFlag {
			items[i].Exact = exactString(x)
		}
	}
	return result, nil
}

func exactString32(v float32) string {
	d, err := exact.Float32(v)
	if err != nil {
		return formatFloat32(v)
	}
	return d.String()
}

// exactString returns the exact decimal value of v, or its usual form for infinities and NaNs.
func exactString(v float64) string {
	d, err := exact.Float64(v)
	if err != nil {
		return formatFloat64(v)
	}
	return d.String()
}
