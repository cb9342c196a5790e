package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventRunStart  EventType = "run_start"
	EventNodeEnter EventType = "node_enter"
	EventNodeLeave EventType = "node_leave"
	EventRunEnd    EventType = "run_end"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	RunID     string    `json:"run_id"`
}

// NodeEvent represents entry or exit from a node.
// Next is only meaningful on EventNodeLeave.
type NodeEvent struct {
	EventBase
	NodeID   NodeID   `json:"node_id"`
	NodeKind NodeKind `json:"node_kind,omitempty"`
	Next     NodeID   `json:"next"`
}

// RunEvent represents the start or the end of a traversal.
type RunEvent struct {
	EventBase
	Steps    int           `json:"steps"`
	Duration time.Duration `json:"duration,omitempty"`
	Err      error         `json:"-"`
}

// LifecycleHooks defines callbacks for dialogue observability.
// Every field is optional.
type LifecycleHooks struct {
	OnRunStart  func(context.Context, *RunEvent)
	OnNodeEnter func(context.Context, *NodeEvent)
	OnNodeLeave func(context.Context, *NodeEvent)
	OnRunEnd    func(context.Context, *RunEvent)
}
