package ports

import (
	"context"

	"github.com/aretw0/parley/pkg/domain"
)

// Console is the boundary a dialogue talks through.
// Implementations decide how each message is presented (plain text, JSON, ...).
type Console interface {
	// Output writes exactly one line of dialogue output.
	Output(ctx context.Context, msg domain.Message) error

	// Input blocks until one line of input is available.
	// It returns io.EOF once the stream is exhausted.
	Input(ctx context.Context) (string, error)
}
