package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
)

// JSONHandler implements ports.Console for structured JSON-Lines communication.
type JSONHandler struct {
	Writer  io.Writer
	Encoder *json.Encoder

	pump *linePump
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Writer:  w,
		Encoder: json.NewEncoder(w),
		pump:    newLinePump(r),
	}
}

// Output emits the message as a single JSON object line.
func (h *JSONHandler) Output(ctx context.Context, msg domain.Message) error {
	return h.Encoder.Encode(msg)
}

// Input reads one line. A JSON string is unquoted; anything else is returned as plain text.
// The resulting selection goes through CheckInput, so escapes such as "\u001b" are rejected too.
func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	line, err := h.pump.next(ctx)
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(line)
	var val string
	if err := json.Unmarshal([]byte(text), &val); err == nil {
		text = val
	}

	if err := CheckInput(text); err != nil {
		return "", err
	}
	return text, nil
}

var _ ports.Console = (*JSONHandler)(nil)
