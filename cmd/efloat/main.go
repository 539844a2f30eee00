// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Command efloat inspects float neighbours and float32 intervals.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/avdva/efloat/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(cli.GetExitCode(err))
	}
}
