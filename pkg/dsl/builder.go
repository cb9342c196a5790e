package dsl

import (
	"errors"
	"fmt"

	"github.com/aretw0/parley"
	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
)

// Builder manages the graph construction.
type Builder struct {
	order       []domain.NodeID
	nodes       map[domain.NodeID]nodeBuilder
	maxAttempts int
	strict      bool
}

type nodeBuilder interface {
	build(defaultMaxAttempts int) (ports.Node, error)
	successor() (domain.NodeID, bool)
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithMaxAttempts applies an invalid selection limit to every choice that does not set its own.
func WithMaxAttempts(n int) BuilderOption {
	return func(b *Builder) {
		b.maxAttempts = n
	}
}

// Strict makes Build and Populate fail when an edge or an option points to an id
// that has no node in the resulting dialogue.
func Strict() BuilderOption {
	return func(b *Builder) {
		b.strict = true
	}
}

// New creates a new graph builder.
func New(opts ...BuilderOption) *Builder {
	b := &Builder{
		nodes: make(map[domain.NodeID]nodeBuilder),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) put(id domain.NodeID, nb nodeBuilder) {
	if _, ok := b.nodes[id]; !ok {
		b.order = append(b.order, id)
	}
	b.nodes[id] = nb
}

// Line declares a line node. Declaring an id twice replaces the earlier node.
func (b *Builder) Line(id domain.NodeID, text string) *LineBuilder {
	lb := &LineBuilder{text: text}
	b.put(id, lb)
	return lb
}

// Choice declares a choice node. Declaring an id twice replaces the earlier node.
func (b *Builder) Choice(id domain.NodeID, prompt string) *ChoiceBuilder {
	cb := &ChoiceBuilder{prompt: prompt, maxAttempts: -1}
	b.put(id, cb)
	return cb
}

// Build creates a Dialogue holding every declared node and edge.
func (b *Builder) Build(opts ...parley.Option) (*parley.Dialogue, error) {
	d := parley.New(opts...)
	if err := b.Populate(d); err != nil {
		return nil, err
	}
	return d, nil
}

// Populate inserts the declared nodes into an existing dialogue.
// Nodes already present under the same ids are replaced.
func (b *Builder) Populate(d *parley.Dialogue) error {
	var errs []error

	for _, id := range b.order {
		node, err := b.nodes[id].build(b.maxAttempts)
		if err != nil {
			errs = append(errs, fmt.Errorf("node %d: %w", id, err))
			continue
		}
		d.InsertNode(id, node)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	for _, id := range b.order {
		to, ok := b.nodes[id].successor()
		if !ok {
			continue
		}
		res := d.ConnectNodes(id, to)
		if res == domain.ConnectSourceMissing || (b.strict && res != domain.ConnectOK) {
			errs = append(errs, fmt.Errorf("edge %d -> %d: %w", id, to, res.Err()))
		}
	}

	if b.strict {
		for _, id := range b.order {
			cb, ok := b.nodes[id].(*ChoiceBuilder)
			if !ok {
				continue
			}
			for _, opt := range cb.options {
				if _, exists := d.Node(opt.To); !exists && !opt.To.IsTerminal() {
					errs = append(errs, fmt.Errorf("option %q of node %d -> %d: %w", opt.Label, id, opt.To, domain.ErrDanglingEdge))
				}
			}
		}
	}

	return errors.Join(errs...)
}
