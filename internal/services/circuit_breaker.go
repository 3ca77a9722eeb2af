package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var ErrStoreUnavailable = errors.New("report store unavailable")

type BreakerState int

const (
	BreakerClosed BreakerState = iota
	BreakerOpen
	BreakerHalfOpen
)

func (s BreakerState) String() string {
	switch s {
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half_open"
	default:
		return "closed"
	}
}

// CircuitBreaker stops report reads against a store that keeps failing.
// Once resetTimeout has passed it lets a single probe through; the probe's
// outcome closes or reopens it. A maxFailures of zero disables it.
type CircuitBreaker struct {
	mu           sync.Mutex
	maxFailures  int
	resetTimeout time.Duration
	state        BreakerState
	failures     int
	openedAt     time.Time
	probing      bool
	now          func() time.Time
}

func NewCircuitBreaker(maxFailures int, resetTimeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		maxFailures:  maxFailures,
		resetTimeout: resetTimeout,
		now:          time.Now,
	}
}

// Allow reports whether a read may go to the store. Every true result must
// be followed by exactly one Record.
func (cb *CircuitBreaker) Allow() bool {
	if cb.maxFailures <= 0 {
		return true
	}

	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case BreakerOpen:
		if cb.now().Sub(cb.openedAt) < cb.resetTimeout {
			return false
		}
		cb.state = BreakerHalfOpen
		cb.probing = true
		return true
	case BreakerHalfOpen:
		if cb.probing {
			return false
		}
		cb.probing = true
		return true
	default:
		return true
	}
}

// Record feeds the outcome of an allowed read back into the breaker.
// Cancellation by the caller says nothing about the store and is ignored.
func (cb *CircuitBreaker) Record(err error) {
	if cb.maxFailures <= 0 {
		return
	}

	cb.mu.Lock()
	defer cb.mu.Unlock()

	if errors.Is(err, context.Canceled) {
		cb.probing = false
		return
	}

	if err == nil {
		if cb.state != BreakerClosed {
			slog.Info("report store breaker closed")
		}
		cb.state = BreakerClosed
		cb.failures = 0
		cb.probing = false
		return
	}

	cb.failures++
	if cb.state == BreakerHalfOpen || cb.failures >= cb.maxFailures {
		if cb.state != BreakerOpen {
			slog.Warn("report store breaker opened", "failures", cb.failures, "retry_after", cb.resetTimeout)
		}
		cb.state = BreakerOpen
		cb.openedAt = cb.now()
		cb.probing = false
	}
}

func (cb *CircuitBreaker) State() BreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}
