package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"

	"deskorg/internal/faults"
	"deskorg/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := fang.Execute(ctx, newRootCommand(), fang.WithVersion(version.Get().String()))
	if err != nil {
		stop()
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 when the run could not start or was stopped by a fatal error
// and 1 for every other failure.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case faults.IsFatal(err):
		return 2
	default:
		return 1
	}
}
