package resilience

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrCircuitOpen is returned when the breaker rejects a call pre-flight.
	ErrCircuitOpen = errors.New("resilience: circuit open")
	// ErrBulkheadFull is returned when no concurrency permit is available.
	ErrBulkheadFull = errors.New("resilience: concurrency limit reached")
	// ErrTimeout is returned when a call exceeds the configured deadline.
	ErrTimeout = errors.New("resilience: call timed out")
)

// Config drives a Policy. All fields are required.
type Config struct {
	Timeout        time.Duration
	MaxConcurrent  int
	WindowSize     int
	FailureRatio   float64
	OpenCooldown   time.Duration
	HalfOpenProbes int
}

// Option customizes a Policy.
type Option func(*Policy)

// WithIgnoredErrors marks errors that represent business outcomes rather than
// infrastructure failures. Matching errors pass through unchanged and count as
// successes in breaker accounting.
func WithIgnoredErrors(match func(error) bool) Option {
	return func(p *Policy) {
		p.ignore = match
	}
}

// WithMetrics attaches Prometheus instrumentation to the policy.
func WithMetrics(m *Metrics) Option {
	return func(p *Policy) {
		p.metrics = m
	}
}

// Policy wraps a downstream call with a circuit breaker, a bulkhead, and a
// timeout, composed in that order. One Policy instance guards one logical
// downstream; construct it once and share it by reference.
type Policy struct {
	timeout time.Duration
	permits chan struct{}
	breaker *breaker
	ignore  func(error) bool
	metrics *Metrics
}

// New validates the configuration and builds a Policy.
func New(cfg Config, opts ...Option) (*Policy, error) {
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("resilience: timeout must be positive")
	}
	if cfg.MaxConcurrent <= 0 {
		return nil, fmt.Errorf("resilience: max concurrent must be positive")
	}
	if cfg.WindowSize <= 0 {
		return nil, fmt.Errorf("resilience: window size must be positive")
	}
	if cfg.FailureRatio <= 0 || cfg.FailureRatio > 1 {
		return nil, fmt.Errorf("resilience: failure ratio must be in (0, 1]")
	}
	if cfg.HalfOpenProbes <= 0 {
		return nil, fmt.Errorf("resilience: half-open probes must be positive")
	}

	p := &Policy{
		timeout: cfg.Timeout,
		permits: make(chan struct{}, cfg.MaxConcurrent),
		breaker: newBreaker(cfg.WindowSize, cfg.FailureRatio, cfg.OpenCooldown, cfg.HalfOpenProbes),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.metrics != nil {
		p.breaker.onStateChange = p.metrics.SetState
		p.metrics.SetState(StateClosed)
	}
	return p, nil
}

// State reports the breaker state; intended for health and tests.
func (p *Policy) State() State {
	return p.breaker.CurrentState()
}

// Do executes op under the policy. Rejections are immediate: an open breaker
// or an exhausted bulkhead fails without touching the downstream, and a call
// that outlives the timeout is abandoned. Bulkhead rejections and timeouts are
// recorded as failures in the breaker window; breaker rejections are not
// recorded at all, since no call was executed.
func (p *Policy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	if err := p.breaker.allow(); err != nil {
		p.metrics.IncOutcome(outcomeRejectedOpen)
		return err
	}

	select {
	case p.permits <- struct{}{}:
	default:
		p.breaker.record(true)
		p.metrics.IncOutcome(outcomeRejectedBulkhead)
		return ErrBulkheadFull
	}
	defer func() { <-p.permits }()

	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- op(callCtx)
	}()

	select {
	case err := <-done:
		return p.settle(ctx, err)
	case <-callCtx.Done():
		if ctx.Err() != nil {
			// caller abandoned the request; the outcome is unknown, so the
			// admission slot is returned instead of recorded
			p.breaker.release()
			p.metrics.IncOutcome(outcomeCanceled)
			return ctx.Err()
		}
		p.breaker.record(true)
		p.metrics.IncOutcome(outcomeTimeout)
		return ErrTimeout
	}
}

func (p *Policy) settle(ctx context.Context, err error) error {
	switch {
	case err == nil:
		p.breaker.record(false)
		p.metrics.IncOutcome(outcomeSuccess)
		return nil
	case p.ignore != nil && p.ignore(err):
		p.breaker.record(false)
		p.metrics.IncOutcome(outcomeSuccess)
		return err
	case errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil:
		// the op observed the call deadline itself and returned the ctx error
		p.breaker.record(true)
		p.metrics.IncOutcome(outcomeTimeout)
		return ErrTimeout
	case errors.Is(err, context.Canceled) && ctx.Err() != nil:
		p.breaker.release()
		p.metrics.IncOutcome(outcomeCanceled)
		return err
	default:
		p.breaker.record(true)
		p.metrics.IncOutcome(outcomeFailure)
		return err
	}
}
