// Package demo holds the sample conversation shipped with the parley command.
package demo

import (
	"github.com/aretw0/parley"
	"github.com/aretw0/parley/pkg/dsl"
)

// Builder declares the sample conversation.
func Builder(maxAttempts int) *dsl.Builder {
	b := dsl.New(dsl.WithMaxAttempts(maxAttempts), dsl.Strict())

	b.Line(1, "First dialogue line!").Go(2)
	b.Line(2, "This is the second dialogue line, terminated by a newline.").Go(3)
	b.Line(3, "This is the third dialogue line! Very cool!").Go(4)

	b.Choice(4, "Do you want to keep talking?").
		Option("yes", 5).
		Option("no", 8)

	b.Choice(5, "Pick a topic.").
		Option("weather", 6).
		Option("dragons", 7).
		Option("nothing", 8)

	b.Line(6, "It looks like rain. Bring a cloak.").Go(4)
	b.Line(7, "Dragons are rare these days, and grumpy.").Go(4)
	b.Line(8, "Farewell!").Terminal()

	return b
}

// Build creates the sample dialogue.
func Build(maxAttempts int, opts ...parley.Option) (*parley.Dialogue, error) {
	return Builder(maxAttempts).Build(opts...)
}
