package runner

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
)

// OptionFormat is how a TextHandler renders a choice option.
const OptionFormat = "[ %s ]"

// TextHandler implements ports.Console with plain text lines.
type TextHandler struct {
	Writer io.Writer

	// Prompt is written before every read. Empty by default so output stays one line per message.
	Prompt string

	pump *linePump
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithPrompt sets the marker written before each read, e.g. "> " on interactive terminals.
func WithPrompt(prompt string) TextHandlerOption {
	return func(h *TextHandler) {
		h.Prompt = prompt
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Writer: w,
		pump:   newLinePump(r),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Output writes one line. Options are wrapped in brackets.
func (h *TextHandler) Output(ctx context.Context, msg domain.Message) error {
	text := msg.Text
	if msg.Kind == domain.MessageOption {
		text = fmt.Sprintf(OptionFormat, msg.Text)
	}
	_, err := fmt.Fprintln(h.Writer, text)
	return err
}

// Input returns the next raw line, including its line terminator.
// A line failing CheckInput is consumed and reported as domain.ErrRejectedInput.
func (h *TextHandler) Input(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if h.Prompt != "" {
		fmt.Fprint(h.Writer, h.Prompt)
	}

	line, err := h.pump.next(ctx)
	if err != nil {
		return "", err
	}
	if err := CheckInput(line); err != nil {
		return "", err
	}
	return line, nil
}

var _ ports.Console = (*TextHandler)(nil)
