package domain

import "errors"

// ErrNodeNotFound is returned when an operation references an id with no node behind it.
var ErrNodeNotFound = errors.New("node not found")

// ErrDanglingEdge is returned when an edge was created towards an id that has no node yet.
// Dangling edges are valid: traversal ends when it reaches one.
var ErrDanglingEdge = errors.New("edge points to a missing node")

// ErrInputExhausted is returned when the input stream ends while a choice awaits a selection.
var ErrInputExhausted = errors.New("input exhausted")

// ErrTooManyAttempts is returned when a choice rejects more selections than its configured limit.
var ErrTooManyAttempts = errors.New("too many invalid selections")

// ErrEmptyLabel is returned when an option is defined without a label.
var ErrEmptyLabel = errors.New("option label is empty")

// ErrNotChoice is returned when options are inserted into a node that cannot hold them.
var ErrNotChoice = errors.New("node does not accept options")

// ErrRejectedInput is returned by a console when a line was read but cannot be offered as a selection,
// e.g. it is too large or carries terminal control sequences. A choice counts it as an invalid attempt.
var ErrRejectedInput = errors.New("input rejected")
