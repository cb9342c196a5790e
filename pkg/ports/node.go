package ports

import (
	"context"

	"github.com/aretw0/parley/pkg/domain"
)

// Node is one unit of dialogue content.
type Node interface {
	// Emit produces the node's output on the console and returns the id to visit next.
	// Returning domain.Terminal is the normal way to end a conversation.
	Emit(ctx context.Context, console Console) (domain.NodeID, error)

	// Connect sets or overrides the node's default successor.
	Connect(id domain.NodeID)
}

// Describer is implemented by nodes that can describe themselves for introspection.
type Describer interface {
	Describe() domain.NodeInfo
}
