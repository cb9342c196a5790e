package parley

import (
	"context"
	"time"

	"github.com/aretw0/parley/pkg/domain"
)

func (d *Dialogue) emitRunStart(ctx context.Context, runID string) {
	if d.hooks.OnRunStart == nil {
		return
	}
	d.hooks.OnRunStart(ctx, &domain.RunEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventRunStart, RunID: runID},
	})
}

func (d *Dialogue) emitRunEnd(ctx context.Context, runID string, steps int, elapsed time.Duration, err error) {
	if d.hooks.OnRunEnd == nil {
		return
	}
	d.hooks.OnRunEnd(ctx, &domain.RunEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventRunEnd, RunID: runID},
		Steps:     steps,
		Duration:  elapsed,
		Err:       err,
	})
}

func (d *Dialogue) emitNodeEnter(ctx context.Context, runID string, id domain.NodeID, kind domain.NodeKind) {
	if d.hooks.OnNodeEnter == nil {
		return
	}
	d.hooks.OnNodeEnter(ctx, &domain.NodeEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventNodeEnter, RunID: runID},
		NodeID:    id,
		NodeKind:  kind,
	})
}

func (d *Dialogue) emitNodeLeave(ctx context.Context, runID string, id domain.NodeID, kind domain.NodeKind, next domain.NodeID) {
	if d.hooks.OnNodeLeave == nil {
		return
	}
	d.hooks.OnNodeLeave(ctx, &domain.NodeEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventNodeLeave, RunID: runID},
		NodeID:    id,
		NodeKind:  kind,
		Next:      next,
	})
}
