// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package cli implements the efloat debugging command.
package cli

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/avdva/efloat"
	"github.com/avdva/efloat/internal/xlog"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "text" | "json" | "yaml"
	LogFile string

	logger  *zap.Logger
	closeFn func()
}

// Logger returns the logger built from the flags, or a no-op logger before the command runs.
func (o *RootOptions) Logger() *zap.Logger {
	if o.logger == nil {
		return zap.NewNop()
	}
	return o.logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// Close flushes and closes the log output. It is safe to call more than once.
func (o *RootOptions) Close() {
	if o.closeFn != nil {
		o.closeFn()
		o.closeFn = nil
	}
}

// Execute runs the root command with args and closes the log output afterwards,
// whether the command succeeded or not.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts := &RootOptions{}
	cmd := newRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	defer opts.Close()
	return cmd.ExecuteContext(ctx)
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "efloat",
		Short: "Inspect float32 values with error bounds",
		Long: `Inspect IEEE-754 neighbours, ulp distances, and float32 intervals
which are guaranteed to contain the exact result of a computation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			opts.Close()
			opts.logger, opts.closeFn = xlog.New(xlog.Options{
				Verbose: opts.Verbose,
				File:    opts.LogFile,
				Stderr:  cmd.ErrOrStderr(),
			})
			efloat.SetLogger(opts.logger)
			opts.logger.Debug("command started", zap.String("command", cmd.Name()), zap.Strings("args", args))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.LogFile, "log-file", "", "write logs to a rotated file instead of stderr")

	cmd.AddCommand(NewNextCommand(opts, 32))
	cmd.AddCommand(NewNextCommand(opts, 64))
	cmd.AddCommand(NewULPsCommand(opts))
	cmd.AddCommand(NewIntervalCommand(opts))
	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewSweepCommand(opts))

	return cmd
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format: opts.Format,
		Writer: cmd.OutOrStdout(),
	}
}
