package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_OpensAfterThresholdAndRecovers(t *testing.T) {
	t.Parallel()

	now := time.Now()
	breaker := NewCircuitBreaker(3, 10*time.Second, 1)
	breaker.now = func() time.Time { return now }

	for range 3 {
		if err := breaker.Allow(); err != nil {
			t.Fatalf("closed breaker must allow: %v", err)
		}
		breaker.RecordFailure()
	}

	if err := breaker.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected open breaker, got err=%v", err)
	}
	if got := breaker.State(); got != CircuitStateOpen {
		t.Fatalf("expected open state, got %s", got)
	}

	// After the open timeout one probe is let through; its success
	// closes the breaker again.
	now = now.Add(11 * time.Second)
	if err := breaker.Allow(); err != nil {
		t.Fatalf("half-open breaker must allow a probe: %v", err)
	}
	breaker.RecordSuccess()

	if got := breaker.State(); got != CircuitStateClosed {
		t.Fatalf("expected closed state after probe success, got %s", got)
	}
}

func TestCircuitBreaker_FailedProbeReopens(t *testing.T) {
	t.Parallel()

	now := time.Now()
	breaker := NewCircuitBreaker(1, 5*time.Second, 1)
	breaker.now = func() time.Time { return now }

	_ = breaker.Allow()
	breaker.RecordFailure()

	now = now.Add(6 * time.Second)
	if err := breaker.Allow(); err != nil {
		t.Fatalf("expected probe slot: %v", err)
	}
	breaker.RecordFailure()

	if err := breaker.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("failed probe must reopen the breaker, got err=%v", err)
	}
}

func TestCircuitBreaker_HalfOpenLimitsProbes(t *testing.T) {
	t.Parallel()

	now := time.Now()
	breaker := NewCircuitBreaker(1, 5*time.Second, 2)
	breaker.now = func() time.Time { return now }

	_ = breaker.Allow()
	breaker.RecordFailure()
	now = now.Add(6 * time.Second)

	if err := breaker.Allow(); err != nil {
		t.Fatalf("first probe must be allowed: %v", err)
	}
	if err := breaker.Allow(); err != nil {
		t.Fatalf("second probe must be allowed: %v", err)
	}
	if err := breaker.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("third concurrent probe must be rejected, got err=%v", err)
	}
}
