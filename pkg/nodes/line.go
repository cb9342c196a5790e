package nodes

import (
	"context"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
)

// Line is a node with static text and a fixed successor.
type Line struct {
	text string
	next domain.NodeID
}

// NewLine creates a line ending the conversation until it is connected.
func NewLine(text string) *Line {
	return &Line{text: text, next: domain.Terminal}
}

// Emit writes the text and returns the successor.
func (l *Line) Emit(ctx context.Context, console ports.Console) (domain.NodeID, error) {
	if err := console.Output(ctx, domain.Text(l.text)); err != nil {
		return domain.Terminal, err
	}
	return l.next, nil
}

// Connect sets the successor.
func (l *Line) Connect(id domain.NodeID) {
	l.next = id
}

// Text returns the displayed text.
func (l *Line) Text() string {
	return l.text
}

// Next returns the current successor.
func (l *Line) Next() domain.NodeID {
	return l.next
}

func (l *Line) Describe() domain.NodeInfo {
	return domain.NodeInfo{
		Kind: domain.KindLine,
		Text: l.text,
		Next: l.next,
	}
}

var (
	_ ports.Node      = (*Line)(nil)
	_ ports.Describer = (*Line)(nil)
)
