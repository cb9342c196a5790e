package domain

import "strconv"

// NodeID identifies a node inside a dialogue.
type NodeID uint32

const (
	// Terminal is the sentinel successor that ends a traversal.
	// It is never the key of a real node.
	Terminal NodeID = 0

	// Entry is the fixed id where every traversal starts.
	Entry NodeID = 1
)

// IsTerminal reports whether id is the end-of-conversation sentinel.
func (id NodeID) IsTerminal() bool {
	return id == Terminal
}

func (id NodeID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// NodeKind names the concrete behavior of a node.
type NodeKind string

const (
	// KindLine displays text and continues to a fixed successor.
	KindLine NodeKind = "line"
	// KindChoice displays a prompt with options and waits for a selection.
	KindChoice NodeKind = "choice"
)

// Option pairs a label shown to the user with the node it leads to.
type Option struct {
	Label string `json:"label"`
	To    NodeID `json:"to"`
}

// NodeInfo describes a node without exposing its behavior.
type NodeInfo struct {
	ID      NodeID   `json:"id"`
	Kind    NodeKind `json:"kind"`
	Text    string   `json:"text"`
	Next    NodeID   `json:"next"`
	Options []Option `json:"options,omitempty"`
}
