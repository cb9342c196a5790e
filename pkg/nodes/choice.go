package nodes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
)

// InvalidSelectionFormat is the notice written when input matches no label.
const InvalidSelectionFormat = "Invalid selection: %s"

// Choice is a node whose successor is picked by the user from a set of options.
type Choice struct {
	prompt   string
	options  OptionTable
	fallback domain.NodeID

	// next holds the successor resolved by the latest visit.
	next domain.NodeID

	// maxAttempts bounds rejected selections per visit. Zero means unbounded.
	maxAttempts int
}

// ChoiceOption configures a Choice.
type ChoiceOption func(*Choice)

// WithMaxAttempts limits how many invalid selections a single visit accepts
// before failing with domain.ErrTooManyAttempts. Zero (the default) keeps
// prompting forever.
func WithMaxAttempts(n int) ChoiceOption {
	return func(c *Choice) {
		c.SetMaxAttempts(n)
	}
}

// NewChoice creates a choice with no options.
func NewChoice(prompt string, opts ...ChoiceOption) *Choice {
	c := &Choice{prompt: prompt}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// InsertOption adds a selectable label leading to id.
// An existing label keeps its position and gets the new destination.
func (c *Choice) InsertOption(label string, to domain.NodeID) {
	c.options.Insert(label, to)
}

// Options returns the options in display order.
func (c *Choice) Options() []domain.Option {
	return c.options.All()
}

// Prompt returns the displayed prompt.
func (c *Choice) Prompt() string {
	return c.prompt
}

// SetMaxAttempts changes the invalid selection limit. Negative values mean unbounded.
func (c *Choice) SetMaxAttempts(n int) {
	if n < 0 {
		n = 0
	}
	c.maxAttempts = n
}

// MaxAttempts returns the invalid selection limit, zero when unbounded.
func (c *Choice) MaxAttempts() int {
	return c.maxAttempts
}

// Connect sets the fallback successor. It only takes effect while the choice has no options.
func (c *Choice) Connect(id domain.NodeID) {
	c.fallback = id
	c.next = id
}

// Emit writes the prompt and the options, then reads input until a label matches.
// Lines the console rejects count as invalid selections.
func (c *Choice) Emit(ctx context.Context, console ports.Console) (domain.NodeID, error) {
	if err := console.Output(ctx, domain.Text(c.prompt)); err != nil {
		return domain.Terminal, err
	}

	if c.options.Len() == 0 {
		c.next = c.fallback
		return c.next, nil
	}

	for _, opt := range c.options.All() {
		if err := console.Output(ctx, domain.OptionLabel(opt.Label)); err != nil {
			return domain.Terminal, err
		}
	}

	rejected := 0
	for {
		if err := ctx.Err(); err != nil {
			return domain.Terminal, err
		}

		var notice string
		raw, err := console.Input(ctx)
		switch {
		case errors.Is(err, io.EOF):
			return domain.Terminal, fmt.Errorf("%w: awaiting selection", domain.ErrInputExhausted)
		case errors.Is(err, domain.ErrRejectedInput):
			// The line itself is never echoed back: it may hold terminal escapes.
			notice = fmt.Sprintf(InvalidSelectionFormat, err)
		case err != nil:
			return domain.Terminal, err
		default:
			selection := strings.TrimSpace(raw)
			if to, ok := c.options.Lookup(selection); ok {
				c.next = to
				return to, nil
			}
			notice = fmt.Sprintf(InvalidSelectionFormat, selection)
		}

		if err := console.Output(ctx, domain.Notice(notice)); err != nil {
			return domain.Terminal, err
		}

		rejected++
		if c.maxAttempts > 0 && rejected >= c.maxAttempts {
			return domain.Terminal, fmt.Errorf("%w: %d rejected", domain.ErrTooManyAttempts, rejected)
		}
	}
}

func (c *Choice) Describe() domain.NodeInfo {
	return domain.NodeInfo{
		Kind:    domain.KindChoice,
		Text:    c.prompt,
		Next:    c.fallback,
		Options: c.options.All(),
	}
}

var (
	_ ports.Node      = (*Choice)(nil)
	_ ports.Describer = (*Choice)(nil)
)
