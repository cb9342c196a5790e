package nodes

import (
	"context"
	"fmt"
	"testing"

	"github.com/aretw0/parley/internal/testutils"
	"github.com/aretw0/parley/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pick() *Choice {
	c := NewChoice("Pick")
	c.InsertOption("X", 2)
	c.InsertOption("Y", 3)
	return c
}

func TestChoice_ResolvesExactMatch(t *testing.T) {
	console := testutils.NewScriptedConsole("Y\n")

	next, err := pick().Emit(context.Background(), console)
	require.NoError(t, err)
	assert.Equal(t, domain.NodeID(3), next)
	assert.Equal(t, []domain.Message{
		domain.Text("Pick"),
		domain.OptionLabel("X"),
		domain.OptionLabel("Y"),
	}, console.Messages())
}

func TestChoice_TrimsInput(t *testing.T) {
	console := testutils.NewScriptedConsole("  X \t\r\n")

	next, err := pick().Emit(context.Background(), console)
	require.NoError(t, err)
	assert.Equal(t, domain.NodeID(2), next)
}

func TestChoice_RejectsUntilValid(t *testing.T) {
	console := testutils.NewScriptedConsole("Z\n", "x\n", "X Y\n", "X\n")

	next, err := pick().Emit(context.Background(), console)
	require.NoError(t, err)
	assert.Equal(t, domain.NodeID(2), next)
	assert.Equal(t, 4, console.Reads())
	assert.Equal(t, []domain.Message{
		domain.Text("Pick"),
		domain.OptionLabel("X"),
		domain.OptionLabel("Y"),
		domain.Notice("Invalid selection: Z"),
		domain.Notice("Invalid selection: x"),
		domain.Notice("Invalid selection: X Y"),
	}, console.Messages())
}

func TestChoice_DisplayOrderSurvivesOverrides(t *testing.T) {
	c := NewChoice("Where to?")
	c.InsertOption("north", 2)
	c.InsertOption("south", 3)
	c.InsertOption("east", 4)
	c.InsertOption("north", 5)
	c.InsertOption("south", 6)

	console := testutils.NewScriptedConsole("north")
	next, err := c.Emit(context.Background(), console)
	require.NoError(t, err)
	assert.Equal(t, domain.NodeID(5), next)
	assert.Equal(t, []string{"Where to?", "north", "south", "east"}, console.Lines())
	assert.Len(t, c.Options(), 3)
}

func TestChoice_InputExhausted(t *testing.T) {
	console := testutils.NewScriptedConsole("nope")

	_, err := pick().Emit(context.Background(), console)
	assert.ErrorIs(t, err, domain.ErrInputExhausted)
}

func TestChoice_MaxAttempts(t *testing.T) {
	c := NewChoice("Pick", WithMaxAttempts(2))
	c.InsertOption("X", 2)
	console := testutils.NewScriptedConsole("a", "b", "X")

	_, err := c.Emit(context.Background(), console)
	assert.ErrorIs(t, err, domain.ErrTooManyAttempts)
	assert.Equal(t, 2, console.Reads())
}

func TestChoice_MaxAttemptsNegativeIsUnbounded(t *testing.T) {
	c := NewChoice("Pick", WithMaxAttempts(-4))
	assert.Equal(t, 0, c.MaxAttempts())
}

func TestChoice_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pick().Emit(ctx, testutils.NewScriptedConsole("X"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestChoice_FallbackOnlyWithoutOptions(t *testing.T) {
	empty := NewChoice("Nothing to pick")
	empty.Connect(4)

	console := testutils.NewScriptedConsole()
	next, err := empty.Emit(context.Background(), console)
	require.NoError(t, err)
	assert.Equal(t, domain.NodeID(4), next)
	assert.Equal(t, 0, console.Reads())

	withOptions := pick()
	withOptions.Connect(9)
	next, err = withOptions.Emit(context.Background(), testutils.NewScriptedConsole("Y"))
	require.NoError(t, err)
	assert.Equal(t, domain.NodeID(3), next, "option resolution supersedes the fallback")
}

func TestChoice_Describe(t *testing.T) {
	info := pick().Describe()
	assert.Equal(t, domain.KindChoice, info.Kind)
	assert.Equal(t, "Pick", info.Text)
	assert.Equal(t, []domain.Option{{Label: "X", To: 2}, {Label: "Y", To: 3}}, info.Options)
}

// rejectingConsole answers every read with a rejected line.
type rejectingConsole struct {
	*testutils.ScriptedConsole
	reads int
}

func (c *rejectingConsole) Input(context.Context) (string, error) {
	c.reads++
	return "", fmt.Errorf("%w: line is too long", domain.ErrRejectedInput)
}

func TestChoice_RejectedInputCountsAsAttempt(t *testing.T) {
	c := NewChoice("Pick", WithMaxAttempts(3))
	c.InsertOption("X", 2)
	console := &rejectingConsole{ScriptedConsole: testutils.NewScriptedConsole()}

	_, err := c.Emit(context.Background(), console)
	assert.ErrorIs(t, err, domain.ErrTooManyAttempts)
	assert.Equal(t, 3, console.reads)
	assert.Equal(t, []domain.Message{
		domain.Text("Pick"),
		domain.OptionLabel("X"),
		domain.Notice("Invalid selection: input rejected: line is too long"),
		domain.Notice("Invalid selection: input rejected: line is too long"),
		domain.Notice("Invalid selection: input rejected: line is too long"),
	}, console.Messages())
}
