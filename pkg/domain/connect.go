package domain

import "fmt"

// ConnectResult reports what happened when two nodes were connected.
type ConnectResult int

const (
	// ConnectOK means the source exists and the destination is either a node or Terminal.
	ConnectOK ConnectResult = iota
	// ConnectSourceMissing means no node exists at the source id. Nothing changed.
	ConnectSourceMissing
	// ConnectDestinationMissing means the edge was created but points to an id with no node.
	ConnectDestinationMissing
)

func (r ConnectResult) String() string {
	switch r {
	case ConnectOK:
		return "ok"
	case ConnectSourceMissing:
		return "source_missing"
	case ConnectDestinationMissing:
		return "destination_missing"
	default:
		return fmt.Sprintf("ConnectResult(%d)", int(r))
	}
}

// Created reports whether the edge exists after the call.
func (r ConnectResult) Created() bool {
	return r != ConnectSourceMissing
}

// Err converts the result into one of the sentinel errors, or nil on success.
func (r ConnectResult) Err() error {
	switch r {
	case ConnectSourceMissing:
		return ErrNodeNotFound
	case ConnectDestinationMissing:
		return ErrDanglingEdge
	default:
		return nil
	}
}
