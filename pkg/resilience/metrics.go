package resilience

import "github.com/prometheus/client_golang/prometheus"

const (
	outcomeSuccess          = "success"
	outcomeFailure          = "failure"
	outcomeTimeout          = "timeout"
	outcomeCanceled         = "canceled"
	outcomeRejectedBulkhead = "rejected_bulkhead"
	outcomeRejectedOpen     = "rejected_open"
)

// Metrics records call outcomes and the breaker state for one policy.
type Metrics struct {
	calls *prometheus.CounterVec
	state prometheus.Gauge
}

// NewMetrics registers the resilience metrics on the provided registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}
	calls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "resilience_calls_total",
		Help: "Policy-wrapped downstream calls by outcome.",
	}, []string{"outcome"})
	state := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "resilience_breaker_state",
		Help: "Breaker state: 0 closed, 1 open, 2 half-open.",
	})
	reg.MustRegister(calls, state)
	return &Metrics{calls: calls, state: state}
}

// IncOutcome increments the outcome counter.
func (m *Metrics) IncOutcome(outcome string) {
	if m == nil || m.calls == nil {
		return
	}
	m.calls.WithLabelValues(outcome).Inc()
}

// SetState records the breaker state transition.
func (m *Metrics) SetState(s State) {
	if m == nil || m.state == nil {
		return
	}
	m.state.Set(float64(s))
}
