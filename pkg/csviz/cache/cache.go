// Package cache memoizes built chart specifications per source key for a
// bounded time window, so repeated requests for an unchanged dataset do not
// re-run the parsing pipeline.
package cache

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/tiendc/go-deepcopy"
	"golang.org/x/sync/singleflight"

	"github.com/csviz/csviz-go/pkg/csviz/models"
)

// BuildFunc produces a fresh chart specification for a key.
type BuildFunc func() (*models.ChartSpec, error)

type entry struct {
	builtAt time.Time
	spec    *models.ChartSpec
}

// Store is a process-scoped TTL cache of built chart specifications, keyed
// by source identifier. Rebuilds are serialized per key, so at most one
// build runs for a key at any time.
type Store struct {
	ttl     time.Duration
	clock   clockwork.Clock
	metrics *storeMetrics
	group   singleflight.Group

	mu      sync.RWMutex
	entries map[string]entry
}

// Option configures a Store.
type Option func(*Store)

// WithClock injects the clock used for staleness checks. Tests use a fake
// clock to exercise TTL expiry deterministically.
func WithClock(c clockwork.Clock) Option {
	return func(s *Store) { s.clock = c }
}

// NewStore creates a Store whose entries go stale after ttl.
func NewStore(ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		ttl:     ttl,
		clock:   clockwork.NewRealClock(),
		entries: make(map[string]entry),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Get returns the specification cached under key, rebuilding it via build
// when the entry is absent or older than the TTL. The returned specification
// is a deep copy, so the caller owns it and cannot mutate the cached entry.
// A failed rebuild returns no specification and leaves every other key
// untouched.
func (s *Store) Get(key string, build BuildFunc) (*models.ChartSpec, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if ok && s.clock.Since(e.builtAt) <= s.ttl {
		s.metrics.hit()
		return copySpec(e.spec)
	}

	s.metrics.miss()
	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		// another caller may have refreshed the entry while we waited
		s.mu.RLock()
		e, ok := s.entries[key]
		s.mu.RUnlock()
		if ok && s.clock.Since(e.builtAt) <= s.ttl {
			return e.spec, nil
		}

		spec, err := build()
		if err != nil {
			s.metrics.buildError()
			return nil, err
		}
		s.mu.Lock()
		s.entries[key] = entry{builtAt: s.clock.Now(), spec: spec}
		s.mu.Unlock()
		s.metrics.rebuild()
		return spec, nil
	})
	if err != nil {
		return nil, err
	}
	return copySpec(v.(*models.ChartSpec))
}

// Invalidate drops the entry for key, forcing the next Get to rebuild.
func (s *Store) Invalidate(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}

// Len returns the number of cached entries, stale ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func copySpec(src *models.ChartSpec) (*models.ChartSpec, error) {
	dst := &models.ChartSpec{}
	if err := deepcopy.Copy(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}
