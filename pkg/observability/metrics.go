package observability

import (
	"context"
	"errors"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Run outcomes reported by the runs counter.
const (
	OutcomeCompleted = "completed"
	OutcomeExhausted = "input_exhausted"
	OutcomeGaveUp    = "too_many_attempts"
	OutcomeCanceled  = "canceled"
	OutcomeFailed    = "failed"
)

// Metrics records dialogue activity in Prometheus collectors.
type Metrics struct {
	NodeVisits  *prometheus.CounterVec
	Transitions *prometheus.CounterVec
	Runs        *prometheus.CounterVec
	RunDuration prometheus.Histogram
	RunSteps    prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		NodeVisits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parley_node_visits_total",
				Help: "Total number of node visits",
			},
			[]string{"node_id", "kind"},
		),
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parley_transitions_total",
				Help: "Total number of resolved transitions between nodes",
			},
			[]string{"from", "to"},
		),
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "parley_runs_total",
				Help: "Total number of finished traversals by outcome",
			},
			[]string{"outcome"},
		),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "parley_run_duration_seconds",
			Help:    "Wall time of a traversal, including time spent waiting for input",
			Buckets: prometheus.ExponentialBuckets(0.01, 4, 10),
		}),
		RunSteps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "parley_run_steps",
			Help:    "Number of nodes emitted per traversal",
			Buckets: prometheus.LinearBuckets(1, 5, 10),
		}),
	}

	for _, c := range []prometheus.Collector{m.NodeVisits, m.Transitions, m.Runs, m.RunDuration, m.RunSteps} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks feeding the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeEnter: func(_ context.Context, e *domain.NodeEvent) {
			m.NodeVisits.WithLabelValues(e.NodeID.String(), string(e.NodeKind)).Inc()
		},
		OnNodeLeave: func(_ context.Context, e *domain.NodeEvent) {
			m.Transitions.WithLabelValues(e.NodeID.String(), e.Next.String()).Inc()
		},
		OnRunEnd: func(_ context.Context, e *domain.RunEvent) {
			m.Runs.WithLabelValues(Outcome(e.Err)).Inc()
			m.RunDuration.Observe(e.Duration.Seconds())
			m.RunSteps.Observe(float64(e.Steps))
		},
	}
}

// Outcome classifies the error a traversal ended with.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeCompleted
	case errors.Is(err, domain.ErrInputExhausted):
		return OutcomeExhausted
	case errors.Is(err, domain.ErrTooManyAttempts):
		return OutcomeGaveUp
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	default:
		return OutcomeFailed
	}
}
