// Command incarcnet analyses per-state incarceration and crime records:
// regression statistics, a rate-difference network with centrality, paths
// and k-filtering, and similarity clusters.
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
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "incarcnet:", err)
		os.Exit(1)
	}
}
