package dsl

import (
	"context"
	"testing"

	"github.com/aretw0/parley"
	"github.com/aretw0/parley/internal/testutils"
	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/nodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_SimpleFlow(t *testing.T) {
	b := New()
	b.Line(1, "Hello, DSL!").Go(2)
	b.Choice(2, "Continue?").
		Option("yes", 3).
		Option("no", 4)
	b.Line(3, "Onwards.").Terminal()
	b.Line(4, "Goodbye!")

	console := testutils.NewScriptedConsole("maybe", "no")
	d, err := b.Build(parley.WithConsole(console))
	require.NoError(t, err)
	assert.Equal(t, 4, d.Len())

	require.NoError(t, d.Run(context.Background()))
	assert.Equal(t, []string{
		"Hello, DSL!",
		"Continue?",
		"yes",
		"no",
		"Invalid selection: maybe",
		"Goodbye!",
	}, console.Lines())
}

func TestBuilder_OptionOverrideKeepsOrder(t *testing.T) {
	b := New()
	b.Choice(1, "Pick").
		Option("a", 2).
		Option("b", 3).
		Option("a", 4)

	d, err := b.Build()
	require.NoError(t, err)

	info := d.Inspect()[0]
	assert.Equal(t, []domain.Option{{Label: "a", To: 4}, {Label: "b", To: 3}}, info.Options)
}

func TestBuilder_MaxAttempts(t *testing.T) {
	b := New(WithMaxAttempts(3))
	b.Choice(1, "inherit").Option("x", 0)
	b.Choice(2, "own").Option("x", 0).MaxAttempts(1)
	b.Choice(3, "unbounded").Option("x", 0).MaxAttempts(0)

	d, err := b.Build()
	require.NoError(t, err)

	for id, want := range map[domain.NodeID]int{1: 3, 2: 1, 3: 0} {
		node, ok := d.Node(id)
		require.True(t, ok)
		assert.Equal(t, want, node.(*nodes.Choice).MaxAttempts(), "node %d", id)
	}
}

func TestBuilder_EmptyLabel(t *testing.T) {
	b := New()
	b.Choice(1, "Pick").Option("", 2)

	_, err := b.Build()
	assert.ErrorIs(t, err, domain.ErrEmptyLabel)
}

func TestBuilder_RedeclareReplaces(t *testing.T) {
	b := New()
	b.Line(1, "first").Go(2)
	b.Line(1, "second")
	b.Line(2, "unreached")

	console := testutils.NewScriptedConsole()
	d, err := b.Build(parley.WithConsole(console))
	require.NoError(t, err)
	require.NoError(t, d.Run(context.Background()))
	assert.Equal(t, []string{"second"}, console.Lines())
}

func TestBuilder_DanglingEdges(t *testing.T) {
	build := func(opts ...BuilderOption) error {
		b := New(opts...)
		b.Line(1, "A").Go(99)
		b.Choice(2, "Pick").Option("x", 42)
		_, err := b.Build()
		return err
	}

	assert.NoError(t, build(), "dangling edges are valid by default")

	err := build(Strict())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDanglingEdge)
	assert.Contains(t, err.Error(), "edge 1 -> 99")
	assert.Contains(t, err.Error(), `option "x" of node 2 -> 42`)
}

func TestBuilder_ChoiceFallback(t *testing.T) {
	b := New()
	b.Choice(1, "Nothing here").Fallback(2)
	b.Line(2, "fell through")

	console := testutils.NewScriptedConsole()
	d, err := b.Build(parley.WithConsole(console))
	require.NoError(t, err)
	require.NoError(t, d.Run(context.Background()))
	assert.Equal(t, []string{"Nothing here", "fell through"}, console.Lines())
}

func TestBuilder_PopulateExisting(t *testing.T) {
	d := parley.New()
	d.InsertNode(5, nodes.NewLine("kept"))

	b := New()
	b.Line(1, "new").Go(5)
	require.NoError(t, b.Populate(d))

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, domain.NodeID(5), d.Inspect()[0].Next)
}

func TestBuilder_StrictPopulateSeesExistingNodes(t *testing.T) {
	d := parley.New()
	d.InsertNode(5, nodes.NewLine("already there"))

	b := New(Strict())
	b.Line(1, "A").Go(5)
	b.Choice(2, "Pick").Option("old", 5)
	require.NoError(t, b.Populate(d))

	b = New(Strict())
	b.Choice(3, "Pick").Option("gone", 6)
	err := b.Populate(d)
	assert.ErrorIs(t, err, domain.ErrDanglingEdge)
	assert.Contains(t, err.Error(), `option "gone" of node 3 -> 6`)
}
