// Command sentinel is the command-line companion of the sentinel API: it
// classifies views, exports DOT diagrams, validates catalogs, runs
// component analysis and hosts the terminal explorer.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/GoSim-25-26J-441/sentinel-backend/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		ui.Bad.Fprintf(os.Stderr, "sentinel: %v\n", err)
		stop()
		os.Exit(1)
	}
}
