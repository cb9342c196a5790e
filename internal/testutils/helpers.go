package testutils

import (
	"context"
	"io"
	"sync"

	"github.com/aretw0/parley/pkg/domain"
)

// ScriptedConsole replays a fixed list of input lines and records every output message.
// Once the script runs out, Input returns io.EOF.
type ScriptedConsole struct {
	mu       sync.Mutex
	inputs   []string
	messages []domain.Message
	reads    int

	// OutputErr, when set, is returned by every Output call.
	// Set it with FailOutput once the console is shared with a running dialogue.
	OutputErr error
}

// NewScriptedConsole creates a console that will answer with the given lines in order.
func NewScriptedConsole(inputs ...string) *ScriptedConsole {
	return &ScriptedConsole{inputs: inputs}
}

func (c *ScriptedConsole) Output(ctx context.Context, msg domain.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.OutputErr != nil {
		return c.OutputErr
	}
	c.messages = append(c.messages, msg)
	return nil
}

func (c *ScriptedConsole) Input(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.reads >= len(c.inputs) {
		return "", io.EOF
	}
	line := c.inputs[c.reads]
	c.reads++
	return line, nil
}

// Messages returns a copy of everything written so far.
func (c *ScriptedConsole) Messages() []domain.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Lines returns only the text of everything written so far.
func (c *ScriptedConsole) Lines() []string {
	msgs := c.Messages()
	out := make([]string, len(msgs))
	for i, m := range msgs {
		out[i] = m.Text
	}
	return out
}

// Reads returns how many input lines were consumed.
func (c *ScriptedConsole) Reads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads
}

// FailOutput makes every later Output call return err.
func (c *ScriptedConsole) FailOutput(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.OutputErr = err
}
