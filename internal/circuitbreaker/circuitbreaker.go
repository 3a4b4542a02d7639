// Package circuitbreaker guards MongoDB repository calls so a struggling
// database sheds load instead of stalling every request.
package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// ErrCircuitOpen is returned while the breaker is rejecting calls.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// State is the breaker position.
type State int

const (
	// StateClosed passes calls through and counts failures.
	StateClosed State = iota
	// StateOpen rejects calls until the probation deadline passes.
	StateOpen
	// StateHalfOpen lets trial calls through to test recovery.
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// Config tunes when the breaker trips and recovers.
type Config struct {
	// FailureThreshold is how many consecutive failures trip the breaker.
	FailureThreshold int
	// SuccessThreshold is how many trial successes close it again.
	SuccessThreshold int
	// Timeout is how long the breaker stays open before trialing.
	Timeout time.Duration
	// Name identifies the guarded collection in logs and health checks.
	Name string
}

// DefaultConfig returns the thresholds used when none are configured.
func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		SuccessThreshold: 2,
		Timeout:          30 * time.Second,
		Name:             "circuit-breaker",
	}
}

// CircuitBreaker tracks consecutive outcomes and trips between states.
type CircuitBreaker struct {
	cfg Config

	mu          sync.RWMutex
	state       State
	failures    int
	successes   int
	lastFailure time.Time
	openUntil   time.Time
}

// New returns a closed breaker with the given configuration.
func New(cfg Config) *CircuitBreaker {
	return &CircuitBreaker{cfg: cfg, state: StateClosed}
}

// Execute runs fn under the breaker. An open breaker rejects the call
// with ErrCircuitOpen without invoking fn; a cancelled context is
// rejected the same way before fn runs.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !cb.admit() {
		return ErrCircuitOpen
	}

	if err := fn(); err != nil {
		cb.recordFailure()
		return err
	}
	cb.recordSuccess()
	return nil
}

// admit decides whether a call may proceed, moving an expired open
// breaker into half-open.
func (cb *CircuitBreaker) admit() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != StateOpen {
		return true
	}
	if time.Now().Before(cb.openUntil) {
		return false
	}

	cb.state = StateHalfOpen
	cb.successes = 0
	log.Info().
		Str("circuit_breaker", cb.cfg.Name).
		Msg("Circuit breaker probation expired, trialing calls")
	return true
}

func (cb *CircuitBreaker) recordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures++
	cb.lastFailure = time.Now()

	switch cb.state {
	case StateClosed:
		if cb.failures >= cb.cfg.FailureThreshold {
			cb.trip("Circuit breaker opened after consecutive failures")
		}
	case StateHalfOpen:
		// One failed trial call is enough to reopen.
		cb.failures = cb.cfg.FailureThreshold
		cb.trip("Circuit breaker reopened after failed trial call")
	}
}

// trip must be called with cb.mu held.
func (cb *CircuitBreaker) trip(msg string) {
	cb.state = StateOpen
	cb.openUntil = time.Now().Add(cb.cfg.Timeout)
	log.Warn().
		Str("circuit_breaker", cb.cfg.Name).
		Int("failure_count", cb.failures).
		Msg(msg)
}

func (cb *CircuitBreaker) recordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures = 0

	if cb.state != StateHalfOpen {
		cb.successes = 0
		return
	}
	cb.successes++
	if cb.successes >= cb.cfg.SuccessThreshold {
		cb.state = StateClosed
		cb.successes = 0
		log.Info().
			Str("circuit_breaker", cb.cfg.Name).
			Msg("Circuit breaker closed after recovery")
	}
}

// State returns the current breaker position.
func (cb *CircuitBreaker) State() State {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// IsOpen reports whether calls are currently rejected.
func (cb *CircuitBreaker) IsOpen() bool {
	return cb.State() == StateOpen
}

// Stats is a point-in-time snapshot for health reporting.
type Stats struct {
	State        string
	FailureCount int
	SuccessCount int
	LastFailure  time.Time
	IsHealthy    bool
}

// GetStats returns the snapshot surfaced by the health endpoint.
func (cb *CircuitBreaker) GetStats() Stats {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return Stats{
		State:        cb.state.String(),
		FailureCount: cb.failures,
		SuccessCount: cb.successes,
		LastFailure:  cb.lastFailure,
		IsHealthy:    cb.state == StateClosed,
	}
}
