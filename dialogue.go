package parley

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/aretw0/parley/pkg/ports"
	"github.com/aretw0/parley/pkg/runner"
	"github.com/google/uuid"
)

// OptionInserter is implemented by nodes that hold selectable options.
type OptionInserter interface {
	InsertOption(label string, to domain.NodeID)
}

// Dialogue owns a set of nodes and drives the conversation through them.
type Dialogue struct {
	nodes   map[domain.NodeID]ports.Node
	console ports.Console
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	runID   func() string
}

// Option defines a functional option for configuring a Dialogue.
type Option func(*Dialogue)

// WithConsole sets the output/input boundary used by Run.
// Defaults to a plain text console over stdin and stdout.
func WithConsole(c ports.Console) Option {
	return func(d *Dialogue) {
		d.console = c
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(d *Dialogue) {
		d.hooks = hooks
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dialogue) {
		d.logger = logger
	}
}

// WithRunIDGenerator overrides how run correlation ids are created.
func WithRunIDGenerator(gen func() string) Option {
	return func(d *Dialogue) {
		d.runID = gen
	}
}

// New creates an empty dialogue.
func New(opts ...Option) *Dialogue {
	d := &Dialogue{
		nodes: make(map[domain.NodeID]ports.Node),
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if d.runID == nil {
		d.runID = uuid.NewString
	}
	return d
}

// InsertNode stores node under id, replacing whatever was there.
// Inserting a nil node removes the id.
func (d *Dialogue) InsertNode(id domain.NodeID, node ports.Node) {
	if node == nil {
		delete(d.nodes, id)
		return
	}
	if _, exists := d.nodes[id]; exists {
		d.logger.Debug("replacing node", "node_id", id)
	}
	d.nodes[id] = node
}

// ConnectNodes sets the successor of the node at from.
// When from has no node nothing changes and ConnectSourceMissing is returned.
// An edge to an id without a node is still created; it ends traversal when reached.
func (d *Dialogue) ConnectNodes(from, to domain.NodeID) domain.ConnectResult {
	node, ok := d.nodes[from]
	if !ok {
		d.logger.Warn("connect ignored: source node missing", "from", from, "to", to)
		return domain.ConnectSourceMissing
	}

	node.Connect(to)

	if !to.IsTerminal() {
		if _, ok := d.nodes[to]; !ok {
			d.logger.Debug("dangling edge", "from", from, "to", to)
			return domain.ConnectDestinationMissing
		}
	}
	return domain.ConnectOK
}

// InsertOption adds an option to the choice stored at id.
func (d *Dialogue) InsertOption(id domain.NodeID, label string, to domain.NodeID) error {
	node, ok := d.nodes[id]
	if !ok {
		return fmt.Errorf("insert option %q: %w: %d", label, domain.ErrNodeNotFound, id)
	}
	inserter, ok := node.(OptionInserter)
	if !ok {
		return fmt.Errorf("insert option %q into node %d: %w", label, id, domain.ErrNotChoice)
	}
	inserter.InsertOption(label, to)
	return nil
}

// Node returns the node stored under id.
func (d *Dialogue) Node(id domain.NodeID) (ports.Node, bool) {
	node, ok := d.nodes[id]
	return node, ok
}

// Len returns the number of stored nodes.
func (d *Dialogue) Len() int {
	return len(d.nodes)
}

// Inspect describes every node, ordered by id.
func (d *Dialogue) Inspect() []domain.NodeInfo {
	ids := make([]domain.NodeID, 0, len(d.nodes))
	for id := range d.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	infos := make([]domain.NodeInfo, 0, len(ids))
	for _, id := range ids {
		info := describe(d.nodes[id])
		info.ID = id
		infos = append(infos, info)
	}
	return infos
}

// Run performs the whole conversation starting at domain.Entry.
// It returns nil once a terminal id or a missing node is reached.
// There is no cycle detection: a loop of lines runs until ctx is cancelled.
func (d *Dialogue) Run(ctx context.Context) error {
	console := d.console
	if console == nil {
		console = runner.NewTextHandler(os.Stdin, os.Stdout)
	}
	return d.RunWith(ctx, console)
}

// RunWith is Run with an explicit console, overriding the configured one.
func (d *Dialogue) RunWith(ctx context.Context, console ports.Console) error {
	runID := d.runID()
	logger := d.logger.With("run_id", runID)
	started := time.Now()

	d.emitRunStart(ctx, runID)
	logger.Info("dialogue started", "nodes", len(d.nodes))

	steps, err := d.walk(ctx, console, runID, logger)

	d.emitRunEnd(ctx, runID, steps, time.Since(started), err)
	if err != nil {
		logger.Error("dialogue failed", "steps", steps, "err", err)
		return err
	}
	logger.Info("dialogue finished", "steps", steps)
	return nil
}

func (d *Dialogue) walk(ctx context.Context, console ports.Console, runID string, logger *slog.Logger) (int, error) {
	steps := 0
	current := domain.Entry

	for !current.IsTerminal() {
		if err := ctx.Err(); err != nil {
			return steps, err
		}

		node, ok := d.nodes[current]
		if !ok {
			logger.Debug("no node at id, ending", "node_id", current)
			return steps, nil
		}

		kind := describe(node).Kind
		d.emitNodeEnter(ctx, runID, current, kind)

		next, err := node.Emit(ctx, console)
		if err != nil {
			return steps, fmt.Errorf("node %d: %w", current, err)
		}
		steps++

		logger.Debug("node visited", "node_id", current, "kind", kind, "next", next)
		d.emitNodeLeave(ctx, runID, current, kind, next)
		current = next
	}
	return steps, nil
}

func describe(node ports.Node) domain.NodeInfo {
	if d, ok := node.(ports.Describer); ok {
		return d.Describe()
	}
	return domain.NodeInfo{}
}
