// Copyright 2020 Aleksandr Demakin. All rights reserved.

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/avdva/efloat"
)

var (
	unaryOps = map[string]func(efloat.Float32) efloat.Float32{
		"neg":    efloat.Float32.Neg,
		"abs":    efloat.Float32.Abs,
		"sqrt":   efloat.Float32.Sqrt,
		"floor":  efloat.Float32.Floor,
		"ceil":   efloat.Float32.Ceil,
		"round":  efloat.Float32.Round,
		"trunc":  efloat.Float32.Trunc,
		"fract":  efloat.Float32.Fract,
		"signum": efloat.Float32.Signum,
		"recip":  efloat.Float32.Recip,
	}
	binaryOps = map[string]func(efloat.Float32, efloat.Float32) efloat.Float32{
		"+":   efloat.Float32.Add,
		"-":   efloat.Float32.Sub,
		"*":   efloat.Float32.Mul,
		"/":   efloat.Float32.Div,
		"%":   efloat.Float32.Rem,
		"max": efloat.Float32.Max,
		"min": efloat.Float32.Min,
	}
)

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	var errValue float32
	cmd := &cobra.Command{
		Use:   "eval <tokens...>",
		Short: "Evaluate an expression in reverse polish notation",
		Long: `Evaluate an expression in reverse polish notation, like "1 2 + 3 *".
Numbers are exact unless --err is set. Operators:
  + - * / % max min          binary
  neg abs sqrt floor ceil round trunc fract signum recip  unary
  fma                        a b c -> a*b+c
  dup swap                   stack manipulation
Put "--" before the tokens if any of them starts with a minus.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens := strings.Fields(strings.Join(args, " "))
			f, err := eval(tokens, errValue, rootOpts.Logger())
			if err != nil {
				return err
			}
			return newFormatter(rootOpts, cmd).Success(newIntervalResult(f))
		},
	}
	cmd.Flags().Float32Var(&errValue, "err", 0, "absolute error of every number")
	return cmd
}

func eval(tokens []string, errValue float32, logger *zap.Logger) (efloat.Float32, error) {
	if errValue < 0 {
		return efloat.Float32{}, NewExitError(ExitCommandError, fmt.Sprintf("invalid error %v: must not be negative", errValue))
	}
	var stack []efloat.Float32
	pop := func(token string, n int) ([]efloat.Float32, error) {
		if len(stack) < n {
			return nil, NewExitError(ExitCommandError, fmt.Sprintf("%s: stack underflow", token))
		}
		args := stack[len(stack)-n:]
		stack = stack[:len(stack)-n]
		return args, nil
	}
	for _, token := range tokens {
		if op, found := unaryOps[token]; found {
			args, err := pop(token, 1)
			if err != nil {
				return efloat.Float32{}, err
			}
			stack = append(stack, op(args[0]))
		} else if op, found := binaryOps[token]; found {
			args, err := pop(token, 2)
			if err != nil {
				return efloat.Float32{}, err
			}
			stack = append(stack, op(args[0], args[1]))
		} else {
			switch token {
			case "fma":
				args, err := pop(token, 3)
				if err != nil {
					return efloat.Float32{}, err
				}
				stack = append(stack, args[0].MulAdd(args[1], args[2]))
			case "dup":
				args, err := pop(token, 1)
				if err != nil {
					return efloat.Float32{}, err
				}
				stack = append(stack, args[0], args[0])
			case "swap":
				args, err := pop(token, 2)
				if err != nil {
					return efloat.Float32{}, err
				}
				stack = append(stack, args[1], args[0])
			default:
				f, err := efloat.Parse(token, 10)
				if err != nil {
					return efloat.Float32{}, WrapExitError(ExitCommandError, fmt.Sprintf("bad token %q", token), err)
				}
				if errValue != 0 {
					f = efloat.NewWithErr(f.Value(), errValue)
				}
				stack = append(stack, f)
			}
		}
		if len(stack) > 0 {
			logger.Debug("eval step", zap.String("token", token), zap.Stringer("top", stack[len(stack)-1]))
		}
	}
	if len(stack) != 1 {
		return efloat.Float32{}, NewExitError(ExitCommandError, fmt.Sprintf("stack has %d values, want 1", len(stack)))
	}
	return stack[0], nil
}
