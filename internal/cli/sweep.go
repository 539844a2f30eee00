// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cli

import (
	"context"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/spf13/cobra"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/avdva/efloat"
)

// SweepOptions configure a sweep over float32 bit patterns.
type SweepOptions struct {
	From, To uint32 // [From, To)
	Workers  int
}

// SweepResult holds the sweep statistics.
type SweepResult struct {
	From     string `json:"from" yaml:"from"`
	To       string `json:"to" yaml:"to"`
	Checked  uint64 `json:"checked" yaml:"checked"`
	Skipped  uint64 `json:"skipped" yaml:"skipped"`
	Failures uint64 `json:"failures" yaml:"failures"`
}

func (r SweepResult) String() string {
	return printer.Sprintf("checked %d values in [%s, %s), skipped %d, %d failures",
		r.Checked, r.From, r.To, r.Skipped, r.Failures)
}

// NewSweepCommand creates the sweep command.
func NewSweepCommand(rootOpts *RootOptions) *cobra.Command {
	opts := SweepOptions{}
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Check that NextUp32 and NextDown32 invert each other over a range of bit patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := sweep(cmd.Context(), opts, rootOpts.Logger())
			if err != nil {
				return err
			}
			if err := newFormatter(rootOpts, cmd).Success(result); err != nil {
				return err
			}
			if result.Failures > 0 {
				return NewExitError(ExitFailure, printer.Sprintf("found %d failures", result.Failures))
			}
			return nil
		},
	}
	cmd.Flags().Uint32Var(&opts.From, "from", 0x3f800000, "first bit pattern")
	cmd.Flags().Uint32Var(&opts.To, "to", 0x40000000, "bit pattern after the last one")
	cmd.Flags().IntVar(&opts.Workers, "workers", 4, "number of parallel workers")
	return cmd
}

func sweep(ctx context.Context, opts SweepOptions, logger *zap.Logger) (SweepResult, error) {
	if opts.To <= opts.From {
		return SweepResult{}, NewExitError(ExitCommandError,
			fmt.Sprintf("empty range [%#x, %#x)", opts.From, opts.To))
	}
	if opts.Workers < 1 {
		return SweepResult{}, NewExitError(ExitCommandError, fmt.Sprintf("invalid number of workers %d", opts.Workers))
	}
	if ctx == nil {
		ctx = context.Background()
	}
	var (
		checked  = atomic.NewUint64(0)
		skipped  = atomic.NewUint64(0)
		failures = atomic.NewUint64(0)
	)
	total := uint64(opts.To - opts.From)
	chunk := (total + uint64(opts.Workers) - 1) / uint64(opts.Workers)
	g, ctx := errgroup.WithContext(ctx)
	for start := uint64(opts.From); start < uint64(opts.To); start += chunk {
		start := start
		end := min(start+chunk, uint64(opts.To))
		g.Go(func() error {
			for b := start; b < end; b++ {
				// check the context once in a while.
				if b&0xffff == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				f := math32.Float32frombits(uint32(b))
				if !checkNeighbours(f) {
					if math32.IsNaN(f) || math32.IsInf(f, 0) {
						skipped.Inc()
						continue
					}
					failures.Inc()
					logger.Warn("neighbours don't invert each other", zap.Uint64("bits", b), zap.Float32("value", f))
				}
				checked.Inc()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SweepResult{}, WrapExitError(ExitFailure, "sweep interrupted", err)
	}
	result := SweepResult{
		From:     fmt.Sprintf("0x%08x", opts.From),
		To:       fmt.Sprintf("0x%08x", opts.To),
		Checked:  checked.Load(),
		Skipped:  skipped.Load(),
		Failures: failures.Load(),
	}
	logger.Debug("sweep finished", zap.Uint64("checked", result.Checked), zap.Uint64("failures", result.Failures))
	return result, nil
}

// checkNeighbours reports whether f is a finite value whose neighbours step back to it.
func checkNeighbours(f float32) bool {
	if math32.IsNaN(f) || math32.IsInf(f, 0) {
		return false
	}
	bits := math32.Float32bits(f)
	up, down := efloat.NextUp32(f), efloat.NextDown32(f)
	// the neighbours of zeros are zeros of the other sign.
	return (f == 0 || up > f && down < f) &&
		math32.Float32bits(efloat.NextDown32(up)) == bits &&
		math32.Float32bits(efloat.NextUp32(down)) == bits
}
