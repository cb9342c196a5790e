package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/parley"
	"github.com/aretw0/parley/internal/demo"
	"github.com/aretw0/parley/internal/presentation/graph"
	"github.com/aretw0/parley/internal/validator"
	"github.com/aretw0/parley/pkg/runner"
)

// PrintGraph writes the Mermaid diagram of the demo conversation.
// When replay holds selections, the demo is first played with them and the
// path it took is highlighted; the last entered node is marked current.
func PrintGraph(ctx context.Context, w io.Writer, replay []string) error {
	var overlay *graph.GraphOverlay
	opts := []parley.Option{}

	if len(replay) > 0 {
		overlay = &graph.GraphOverlay{}
		input := strings.Join(replay, "\n") + "\n"
		opts = append(opts,
			parley.WithConsole(runner.NewTextHandler(strings.NewReader(input), io.Discard)),
			parley.WithLifecycleHooks(overlay.Hooks()),
		)
	}

	d, err := demo.Build(0, opts...)
	if err != nil {
		return err
	}

	if overlay != nil {
		// Running out of selections mid-choice is how a partial path ends.
		if err := d.Run(ctx); err != nil && !isInterrupted(err) {
			return fmt.Errorf("replay failed: %w", err)
		}
	}

	_, err = fmt.Fprint(w, graph.GenerateMermaid(d.Inspect(), overlay))
	return err
}

// Validate checks the demo conversation for dangling edges and unreachable nodes.
func Validate(w io.Writer) error {
	d, err := demo.Build(0)
	if err != nil {
		return err
	}
	report := validator.ValidateGraph(d.Inspect())
	if err := report.Err(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "ok: %d nodes reachable from the entry node\n", len(report.Reachable))
	return err
}
