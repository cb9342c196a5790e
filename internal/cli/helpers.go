package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/parley/pkg/domain"
	"golang.org/x/term"
)

// ErrInterrupted is the cancellation cause of a context stopped by SIGINT or SIGTERM.
var ErrInterrupted = errors.New("interrupted")

// InterruptContext returns a context cancelled on SIGINT or SIGTERM.
// context.Cause reports ErrInterrupted together with the signal name.
// Calling stop releases the signal handler.
func InterruptContext(parent context.Context) (ctx context.Context, stop func()) {
	ctx, cancel := context.WithCancelCause(parent)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigs)
		select {
		case sig := <-sigs:
			cancel(fmt.Errorf("%w by %s", ErrInterrupted, sig))
		case <-ctx.Done():
		}
	}()

	return ctx, func() { cancel(nil) }
}

// isTerminal reports whether f is attached to an interactive terminal.
func isTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// isInterrupted reports errors that end a session without being failures:
// the user hit Ctrl+C or closed the input stream.
func isInterrupted(err error) bool {
	return errors.Is(err, context.Canceled) ||
		errors.Is(err, domain.ErrInputExhausted) ||
		errors.Is(err, io.EOF)
}

func handleExecutionError(ctx context.Context, logger *slog.Logger, err error) error {
	if err == nil {
		return nil
	}
	if isInterrupted(err) {
		attrs := []any{"err", err}
		if cause := context.Cause(ctx); cause != nil {
			attrs = append(attrs, "cause", cause)
		}
		logger.Info("session interrupted", attrs...)
		return nil
	}
	return err
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(ctx context.Context, e *domain.NodeEvent) {
			logger.Debug("Enter Node", "node_id", e.NodeID, "kind", e.NodeKind, "run_id", e.RunID)
		},
		OnNodeLeave: func(ctx context.Context, e *domain.NodeEvent) {
			logger.Debug("Leave Node", "node_id", e.NodeID, "next", e.Next, "run_id", e.RunID)
		},
	}
}
