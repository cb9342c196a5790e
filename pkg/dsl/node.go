package dsl

import (
	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/nodes"
	"github.com/aretw0/parley/pkg/ports"
)

// LineBuilder configures a line node.
type LineBuilder struct {
	text    string
	next    domain.NodeID
	hasNext bool
}

// Go sets the successor.
func (l *LineBuilder) Go(target domain.NodeID) *LineBuilder {
	l.next = target
	l.hasNext = true
	return l
}

// Terminal marks the line as the end of the conversation.
func (l *LineBuilder) Terminal() *LineBuilder {
	return l.Go(domain.Terminal)
}

func (l *LineBuilder) build(int) (ports.Node, error) {
	return nodes.NewLine(l.text), nil
}

func (l *LineBuilder) successor() (domain.NodeID, bool) {
	return l.next, l.hasNext
}

// ChoiceBuilder configures a choice node.
type ChoiceBuilder struct {
	prompt      string
	options     []domain.Option
	fallback    domain.NodeID
	hasFallback bool
	maxAttempts int
}

// Option adds a selectable label. Repeating a label overrides its destination.
func (c *ChoiceBuilder) Option(label string, target domain.NodeID) *ChoiceBuilder {
	c.options = append(c.options, domain.Option{Label: label, To: target})
	return c
}

// Fallback sets the successor used when the choice ends up with no options.
func (c *ChoiceBuilder) Fallback(target domain.NodeID) *ChoiceBuilder {
	c.fallback = target
	c.hasFallback = true
	return c
}

// MaxAttempts overrides the builder-wide invalid selection limit. Zero means unbounded.
func (c *ChoiceBuilder) MaxAttempts(n int) *ChoiceBuilder {
	c.maxAttempts = n
	return c
}

func (c *ChoiceBuilder) build(defaultMaxAttempts int) (ports.Node, error) {
	attempts := c.maxAttempts
	if attempts < 0 {
		attempts = defaultMaxAttempts
	}

	choice := nodes.NewChoice(c.prompt, nodes.WithMaxAttempts(attempts))
	for _, opt := range c.options {
		if opt.Label == "" {
			return nil, domain.ErrEmptyLabel
		}
		choice.InsertOption(opt.Label, opt.To)
	}
	return choice, nil
}

func (c *ChoiceBuilder) successor() (domain.NodeID, bool) {
	return c.fallback, c.hasFallback
}
