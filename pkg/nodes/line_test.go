package nodes

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/parley/internal/testutils"
	"github.com/aretw0/parley/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine_EmitWritesTextAndReturnsSuccessor(t *testing.T) {
	line := NewLine("Hello")
	console := testutils.NewScriptedConsole()

	next, err := line.Emit(context.Background(), console)
	require.NoError(t, err)
	assert.Equal(t, domain.Terminal, next, "default successor is terminal")
	assert.Equal(t, []domain.Message{domain.Text("Hello")}, console.Messages())

	line.Connect(7)
	next, err = line.Emit(context.Background(), console)
	require.NoError(t, err)
	assert.Equal(t, domain.NodeID(7), next)
	assert.Equal(t, 0, console.Reads(), "line nodes never read input")
}

func TestLine_ConnectOverrides(t *testing.T) {
	line := NewLine("x")
	line.Connect(2)
	line.Connect(3)
	assert.Equal(t, domain.NodeID(3), line.Next())
	assert.Equal(t, domain.NodeInfo{Kind: domain.KindLine, Text: "x", Next: 3}, line.Describe())
}

func TestLine_OutputError(t *testing.T) {
	boom := errors.New("closed pipe")
	console := testutils.NewScriptedConsole()
	console.FailOutput(boom)

	_, err := NewLine("x").Emit(context.Background(), console)
	assert.ErrorIs(t, err, boom)
}
