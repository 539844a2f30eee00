// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avdva/efloat"
)

// IntervalResult is an efloat.Float32 in a printable form.
type IntervalResult struct {
	Value string `json:"value" yaml:"value"`
	Low   string `json:"low" yaml:"low"`
	High  string `json:"high" yaml:"high"`
	Width string `json:"width" yaml:"width"`
}

func newIntervalResult(f efloat.Float32) IntervalResult {
	return IntervalResult{
		Value: formatFloat32(f.Value()),
		Low:   formatFloat32(f.LowerBound()),
		High:  formatFloat32(f.UpperBound()),
		Width: formatFloat32(f.AbsoluteError()),
	}
}

func (r IntervalResult) String() string {
	return fmt.Sprintf("value %s\nlow   %s\nhigh  %s\nwidth %s", r.Value, r.Low, r.High, r.Width)
}

// NewIntervalCommand creates the interval command.
func NewIntervalCommand(rootOpts *RootOptions) *cobra.Command {
	var errValue float32
	cmd := &cobra.Command{
		Use:   "interval <value>",
		Short: "Show the bounds of a value with an absolute error",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if errValue < 0 {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid error %v: must not be negative", errValue))
			}
			v, err := efloat.Parse(args[0], 10)
			if err != nil {
				return WrapExitError(ExitCommandError, "bad value", err)
			}
			return newFormatter(rootOpts, cmd).Success(newIntervalResult(efloat.NewWithErr(v.Value(), errValue)))
		},
	}
	cmd.Flags().Float32Var(&errValue, "err", 0, "absolute error of the value")
	return cmd
}
