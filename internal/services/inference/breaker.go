package inference

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"

	apperrors "github.com/hanjaplatform/hanja-api/pkg/errors"
)

// BreakerSettings tunes the per-operation circuit breakers.
type BreakerSettings struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

func (s BreakerSettings) normalize() BreakerSettings {
	if s.MaxRequests == 0 {
		s.MaxRequests = 1
	}
	if s.Timeout <= 0 {
		s.Timeout = 30 * time.Second
	}
	if s.FailureThreshold == 0 {
		s.FailureThreshold = 5
	}
	return s
}

// Executor runs backend calls behind one circuit breaker per operation.
// Calls are never retried.
type Executor struct {
	settings BreakerSettings
	observer Observer

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[any]
}

// NewExecutor creates an executor. observer may be nil.
func NewExecutor(settings BreakerSettings, observer Observer) *Executor {
	return &Executor{
		settings: settings.normalize(),
		observer: observer,
		breakers: make(map[string]*gobreaker.CircuitBreaker[any]),
	}
}

// Execute runs fn under the breaker for operation. While the breaker is
// open fn is not called and a SERVICE_DOWN error naming service is returned.
func (e *Executor) Execute(ctx context.Context, service, operation string, fn func(context.Context) error) error {
	op := strings.TrimSpace(operation)
	if op == "" {
		op = "unknown"
	}

	start := time.Now()
	_, err := e.circuitBreaker(op).Execute(func() (any, error) {
		return nil, fn(ctx)
	})
	if e.observer != nil {
		e.observer.ObserveInference(op, err, time.Since(start))
	}

	if IsCircuitOpen(err) {
		return apperrors.ServiceDownError(service, err)
	}
	return err
}

// State reports the breaker state of operation.
func (e *Executor) State(operation string) gobreaker.State {
	return e.circuitBreaker(operation).State()
}

// States reports the state of every breaker created so far, keyed by
// operation.
func (e *Executor) States() map[string]string {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make(map[string]string, len(e.breakers))
	for op, breaker := range e.breakers {
		out[op] = breaker.State().String()
	}
	return out
}

func (e *Executor) circuitBreaker(operation string) *gobreaker.CircuitBreaker[any] {
	e.mu.Lock()
	defer e.mu.Unlock()

	if breaker, ok := e.breakers[operation]; ok {
		return breaker
	}

	threshold := e.settings.FailureThreshold
	settings := gobreaker.Settings{
		Name:        operation,
		MaxRequests: e.settings.MaxRequests,
		Interval:    e.settings.Interval,
		Timeout:     e.settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: recordsSuccess,
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("circuit_breaker_state_change", "operation", name, "from", from.String(), "to", to.String())
		},
	}

	breaker := gobreaker.NewCircuitBreaker[any](settings)
	e.breakers[operation] = breaker
	return breaker
}

// recordsSuccess decides which errors count against a backend. Caller
// cancellation and well-formed empty answers do not.
func recordsSuccess(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return true
	}
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeNoResults, apperrors.ErrCodeValidation:
		return true
	}
	return false
}

// IsCircuitOpen reports whether err came from an open or saturated breaker.
func IsCircuitOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
