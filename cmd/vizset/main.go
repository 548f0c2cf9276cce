package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/vizset/internal/cli"
	vzerrors "github.com/matzehuels/vizset/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context) error {
	c := cli.New(os.Stderr, cli.LogInfo)
	return c.RootCommand().ExecuteContext(ctx)
}

// exitCode maps error codes to distinct exit statuses so scripts can tell a
// bad binding from an unreadable input.
func exitCode(err error) int {
	switch vzerrors.GetCode(err) {
	case vzerrors.ErrCodeBinding, vzerrors.ErrCodeConfiguration:
		return 2
	case vzerrors.ErrCodeSizeLimit:
		return 3
	case vzerrors.ErrCodeUnsupportedGraph, vzerrors.ErrCodeInvalidInput, vzerrors.ErrCodeFileNotFound:
		return 4
	}
	return 1
}
