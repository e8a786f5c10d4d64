package resilience

import (
	"sync"
	"time"
)

// State enumerates the circuit breaker admission states.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half_open"
	}
	return "unknown"
}

// breaker is the sliding-window circuit breaker gating admission to the
// downstream. All state is guarded by mu; many concurrent callers share one
// instance.
type breaker struct {
	windowSize int
	threshold  float64
	cooldown   time.Duration
	probeQuota int

	mu       sync.Mutex
	state    State
	openedAt time.Time

	// ring of recorded outcomes, true = failure
	window      []bool
	windowIdx   int
	windowCount int
	failures    int

	probesIssued  int
	probesDone    int
	probeFailures int

	now           func() time.Time
	onStateChange func(to State)
}

func newBreaker(windowSize int, threshold float64, cooldown time.Duration, probeQuota int) *breaker {
	return &breaker{
		windowSize: windowSize,
		threshold:  threshold,
		cooldown:   cooldown,
		probeQuota: probeQuota,
		window:     make([]bool, windowSize),
		now:        time.Now,
	}
}

// allow decides whether a call may proceed. A rejection here never enters the
// outcome window: the call was not executed.
func (b *breaker) allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		return nil
	case StateOpen:
		if b.now().Sub(b.openedAt) < b.cooldown {
			return ErrCircuitOpen
		}
		b.transition(StateHalfOpen)
		b.probesIssued = 0
		b.probesDone = 0
		b.probeFailures = 0
	}

	// half-open: admit up to probeQuota trial calls
	if b.probesIssued >= b.probeQuota {
		return ErrCircuitOpen
	}
	b.probesIssued++
	return nil
}

// record registers the outcome of an executed call.
func (b *breaker) record(failure bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case StateClosed:
		b.push(failure)
		if b.windowCount == b.windowSize && b.failureRatio() > b.threshold {
			b.trip()
		}
	case StateHalfOpen:
		b.probesDone++
		if failure {
			b.probeFailures++
		}
		if b.probesDone >= b.probeQuota {
			if float64(b.probeFailures)/float64(b.probeQuota) < b.threshold {
				b.reset()
			} else {
				b.trip()
			}
		}
	case StateOpen:
		// a call admitted before the trip resolved late; the window is frozen
	}
}

// release returns an admission slot whose outcome will never be known, such
// as a probe abandoned because the caller went away. Without this a
// half-open breaker could exhaust its probe quota on abandoned calls and
// reject every later call forever.
func (b *breaker) release() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.state == StateHalfOpen && b.probesIssued > b.probesDone {
		b.probesIssued--
	}
}

// CurrentState reports the state without mutating it.
func (b *breaker) CurrentState() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

func (b *breaker) push(failure bool) {
	if b.windowCount == b.windowSize {
		if b.window[b.windowIdx] {
			b.failures--
		}
	} else {
		b.windowCount++
	}
	b.window[b.windowIdx] = failure
	if failure {
		b.failures++
	}
	b.windowIdx = (b.windowIdx + 1) % b.windowSize
}

func (b *breaker) failureRatio() float64 {
	if b.windowCount == 0 {
		return 0
	}
	return float64(b.failures) / float64(b.windowCount)
}

func (b *breaker) trip() {
	b.transition(StateOpen)
	b.openedAt = b.now()
}

func (b *breaker) reset() {
	b.transition(StateClosed)
	b.window = make([]bool, b.windowSize)
	b.windowIdx = 0
	b.windowCount = 0
	b.failures = 0
}

func (b *breaker) transition(to State) {
	if b.state == to {
		return
	}
	b.state = to
	if b.onStateChange != nil {
		b.onStateChange(to)
	}
}
