package tests

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
)

// ConsoleFactory builds a console reading from in and writing to out.
type ConsoleFactory func(in io.Reader, out *bytes.Buffer) ports.Console

// ConsoleContractTest is a reusable test suite that verifies if an adapter complies with ports.Console.
func ConsoleContractTest(t *testing.T, newConsole ConsoleFactory) {
	t.Helper()

	t.Run("Output_OneLinePerMessage", func(t *testing.T) {
		out := &bytes.Buffer{}
		console := newConsole(strings.NewReader(""), out)
		msgs := []domain.Message{
			domain.Text("Pick"),
			domain.OptionLabel("X"),
			domain.OptionLabel("Y"),
			domain.Notice("Invalid selection: Z"),
		}
		for _, m := range msgs {
			if err := console.Output(context.Background(), m); err != nil {
				t.Fatalf("unexpected error writing %v: %v", m, err)
			}
		}

		lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
		if len(lines) != len(msgs) {
			t.Fatalf("expected %d lines, got %d: %q", len(msgs), len(lines), out.String())
		}
		for i, m := range msgs {
			if !strings.Contains(lines[i], m.Text) {
				t.Errorf("line %d %q does not carry %q", i, lines[i], m.Text)
			}
		}
	})

	t.Run("Input_InOrderThenEOF", func(t *testing.T) {
		console := newConsole(strings.NewReader("first\nsecond\n"), &bytes.Buffer{})
		ctx := context.Background()

		for _, want := range []string{"first", "second"} {
			got, err := console.Input(ctx)
			if err != nil {
				t.Fatalf("unexpected error reading %q: %v", want, err)
			}
			if strings.TrimSpace(got) != want {
				t.Errorf("got %q, want %q", got, want)
			}
		}

		if _, err := console.Input(ctx); !errors.Is(err, io.EOF) {
			t.Errorf("expected io.EOF after the last line, got %v", err)
		}
	})

	t.Run("Input_Cancelled", func(t *testing.T) {
		console := newConsole(strings.NewReader("ignored\n"), &bytes.Buffer{})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := console.Input(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("Input_CancelledWhileBlocked", func(t *testing.T) {
		pr, pw := io.Pipe()
		defer pw.Close()
		console := newConsole(pr, &bytes.Buffer{})

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() {
			_, err := console.Input(ctx)
			done <- err
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case err := <-done:
			if !errors.Is(err, context.Canceled) {
				t.Errorf("expected context.Canceled, got %v", err)
			}
		case <-time.After(time.Second):
			t.Fatal("Input is still blocked after cancellation")
		}
	})

	t.Run("Input_RejectsControlCharacters", func(t *testing.T) {
		console := newConsole(strings.NewReader("X\x1b\nX\n"), &bytes.Buffer{})
		ctx := context.Background()

		if _, err := console.Input(ctx); !errors.Is(err, domain.ErrRejectedInput) {
			t.Errorf("expected domain.ErrRejectedInput, got %v", err)
		}
		got, err := console.Input(ctx)
		if err != nil {
			t.Fatalf("the line after a rejected one must still be readable: %v", err)
		}
		if strings.TrimSpace(got) != "X" {
			t.Errorf("got %q, want %q", got, "X")
		}
	})
}
