// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	mu "github.com/avdva/efloat/internal/mathutil"
)

var printer = message.NewPrinter(language.English)

// ULPsResult holds the number of representable steps between two values.
type ULPsResult struct {
	A     string `json:"a" yaml:"a"`
	B     string `json:"b" yaml:"b"`
	Width int    `json:"width" yaml:"width"`
	ULPs  uint64 `json:"ulps" yaml:"ulps"`
}

func (r ULPsResult) String() string {
	return printer.Sprintf("%d ulps between %s and %s (float%d)", r.ULPs, r.A, r.B, r.Width)
}

// NewULPsCommand creates the ulps command.
func NewULPsCommand(rootOpts *RootOptions) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:   "ulps <a> <b>",
		Short: "Count representable floats between two values",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := ulps(args[0], args[1], width)
			if err != nil {
				return err
			}
			return newFormatter(rootOpts, cmd).Success(result)
		},
	}
	cmd.Flags().IntVar(&width, "width", 32, "float width (32|64)")
	return cmd
}

func ulps(as, bs string, width int) (ULPsResult, error) {
	if width != 32 && width != 64 {
		return ULPsResult{}, NewExitError(ExitCommandError, fmt.Sprintf("invalid width %d: must be 32 or 64", width))
	}
	var vals [2]float64
	for i, s := range [...]string{as, bs} {
		v, err := strconv.ParseFloat(s, width)
		if err != nil {
			return ULPsResult{}, WrapExitError(ExitCommandError, "bad value", err)
		}
		if math.IsNaN(v) {
			return ULPsResult{}, NewExitError(ExitCommandError, fmt.Sprintf("bad value %q: NaN has no position", s))
		}
		vals[i] = v
	}
	result := ULPsResult{Width: width}
	if width == 32 {
		a, b := float32(vals[0]), float32(vals[1])
		result.A, result.B = formatFloat32(a), formatFloat32(b)
		result.ULPs = uint64(mu.ULPDistance32(a, b))
	} else {
		result.A, result.B = formatFloat64(vals[0]), formatFloat64(vals[1])
		result.ULPs = mu.ULPDistance64(vals[0], vals[1])
	}
	return result, nil
}
