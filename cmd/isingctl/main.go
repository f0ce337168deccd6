// SPDX-License-Identifier: MIT
// Command isingctl computes exact and Monte Carlo thermal averages of an
// Ising model described by a YAML file.
//
//	isingctl exact   --model ring.yaml --temps 0.5,1,2 --workers 4
//	isingctl sample  --model ring.yaml --samples 20000 --burn 2000 --chains 4
//	isingctl compare --model ring.yaml --format json
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "isingctl:", err)
		os.Exit(1)
	}
}
