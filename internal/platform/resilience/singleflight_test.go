package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_CollapsesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var flight SingleFlight
	var executions atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		val, err, _ := flight.Do("key", func() (any, error) {
			close(started)
			executions.Add(1)
			<-release
			return 42, nil
		})
		if err != nil || val != 42 {
			t.Errorf("leader Do: val=%v err=%v", val, err)
		}
	}()

	<-started
	var sharedCount atomic.Int32
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			val, err, shared := flight.Do("key", func() (any, error) {
				executions.Add(1)
				return -1, nil
			})
			if err != nil || val != 42 {
				t.Errorf("waiter Do: val=%v err=%v", val, err)
			}
			if shared {
				sharedCount.Add(1)
			}
		}()
	}

	// Give the waiters time to park on the in-flight call before the
	// leader completes.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := executions.Load(); got != 1 {
		t.Fatalf("expected one execution, got %d", got)
	}
	if got := sharedCount.Load(); got != 4 {
		t.Fatalf("expected four shared results, got %d", got)
	}
}

func TestSingleFlight_KeyIsReusableAfterCompletion(t *testing.T) {
	t.Parallel()

	var flight SingleFlight
	var executions atomic.Int32

	for range 3 {
		if _, err, _ := flight.Do("key", func() (any, error) {
			executions.Add(1)
			return nil, nil
		}); err != nil {
			t.Fatalf("Do: %v", err)
		}
	}

	if got := executions.Load(); got != 3 {
		t.Fatalf("sequential calls must each execute, got %d", got)
	}
}
