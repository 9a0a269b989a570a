package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rook-computer/iconbanner/internal/cli"
	"github.com/rook-computer/iconbanner/internal/errors"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Cancellation takes effect between icons; the one in flight is finished.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := cli.NewRootCommand(cli.Options{
		Version:       version,
		RedirectStdIO: redirectStdIO,
	})
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "iconbanner:", err)
		stop()
		os.Exit(exitCode(err))
	}
}

// exitCode maps error codes to process exit status: 2 for bad configuration
// or values, 1 for everything else.
func exitCode(err error) int {
	switch errors.CodeOf(err) {
	case errors.ErrCodeConfiguration, errors.ErrCodeValidation:
		return 2
	default:
		return 1
	}
}
