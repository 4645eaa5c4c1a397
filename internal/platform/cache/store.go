package cache

import (
	"context"
	"fmt"
	"sync"

	"github.com/riskibarqy/match-forecast/internal/platform/resilience"
)

// Store is the session memo for retrieved provider payloads. Entries
// live for the whole session: there is no TTL, no eviction and no
// invalidation surface, so a league/mode pair is retrieved at most once
// per process. Failed loads are never stored, which leaves the key free
// for a retry on the next request.
type Store struct {
	mu      sync.RWMutex
	entries map[string]any
	flight  resilience.SingleFlight
}

func NewStore() *Store {
	return &Store{entries: make(map[string]any)}
}

func (s *Store) Get(_ context.Context, key string) (any, bool) {
	if key == "" {
		return nil, false
	}

	s.mu.RLock()
	value, ok := s.entries[key]
	s.mu.RUnlock()
	return value, ok
}

func (s *Store) Set(_ context.Context, key string, value any) {
	if key == "" {
		return
	}

	s.mu.Lock()
	s.entries[key] = value
	s.mu.Unlock()
}

// GetOrLoad returns the memoized value for key, invoking loader at most
// once even under concurrent first access for the same key.
func (s *Store) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}

	if value, ok := s.Get(ctx, key); ok {
		return value, nil
	}

	value, err, _ := s.flight.Do(key, func() (any, error) {
		if cached, ok := s.Get(ctx, key); ok {
			return cached, nil
		}

		loaded, loadErr := loader(ctx)
		if loadErr != nil {
			return nil, loadErr
		}
		s.Set(ctx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}
