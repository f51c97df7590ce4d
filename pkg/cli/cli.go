package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
)

// Run executes the provhash CLI and returns a process exit code. Interrupt
// and termination signals cancel the command context, which matters for the
// long-running watch command.
func Run(ctx context.Context, args []string) (int, error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCmd(nil)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) ||
			errors.Is(err, context.DeadlineExceeded) {
			return 130, err
		}
		return 1, err
	}
	return 0, nil
}
