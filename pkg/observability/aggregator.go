package observability

import (
	"context"

	"github.com/aretw0/parley/pkg/domain"
)

// Chain combines several hook sets into one. Hooks run in the given order.
func Chain(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var (
		runStart  []func(context.Context, *domain.RunEvent)
		nodeEnter []func(context.Context, *domain.NodeEvent)
		nodeLeave []func(context.Context, *domain.NodeEvent)
		runEnd    []func(context.Context, *domain.RunEvent)
	)
	for _, s := range sets {
		if s.OnRunStart != nil {
			runStart = append(runStart, s.OnRunStart)
		}
		if s.OnNodeEnter != nil {
			nodeEnter = append(nodeEnter, s.OnNodeEnter)
		}
		if s.OnNodeLeave != nil {
			nodeLeave = append(nodeLeave, s.OnNodeLeave)
		}
		if s.OnRunEnd != nil {
			runEnd = append(runEnd, s.OnRunEnd)
		}
	}

	return domain.LifecycleHooks{
		OnRunStart:  fanOut(runStart),
		OnNodeEnter: fanOut(nodeEnter),
		OnNodeLeave: fanOut(nodeLeave),
		OnRunEnd:    fanOut(runEnd),
	}
}

func fanOut[E any](fns []func(context.Context, E)) func(context.Context, E) {
	switch len(fns) {
	case 0:
		return nil
	case 1:
		return fns[0]
	}
	return func(ctx context.Context, e E) {
		for _, fn := range fns {
			fn(ctx, e)
		}
	}
}
