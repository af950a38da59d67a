package cache

import (
	"sync"
	"time"
)

// Clock returns the current time. Injectable so tests can control expiry
// without sleeping.
type Clock func() time.Time

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// TTLCache is a concurrency-safe in-memory cache where entries expire a fixed
// duration after insertion. Stale entries are overwritten on the next compute,
// not proactively purged; the process lifetime is short enough that this is
// acceptable.
type TTLCache[V any] struct {
	mu      sync.RWMutex
	entries map[string]entry[V]
	ttl     time.Duration
	now     Clock
}

// New creates a TTLCache using the wall clock.
func New[V any](ttl time.Duration) *TTLCache[V] {
	return NewWithClock[V](ttl, time.Now)
}

// NewWithClock creates a TTLCache with an explicit clock.
func NewWithClock[V any](ttl time.Duration, now Clock) *TTLCache[V] {
	return &TTLCache[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		now:     now,
	}
}

// Get returns the cached value for key if present and not expired.
func (c *TTLCache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.storedAt) >= c.ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key, resetting its TTL.
func (c *TTLCache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{value: value, storedAt: c.now()}
}

// GetOrCompute returns the cached value for key, or computes, stores and
// returns a fresh one when the entry is missing or expired.
func (c *TTLCache[V]) GetOrCompute(key string, compute func() (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err := compute()
	if err != nil {
		var zero V
		return zero, err
	}

	c.Set(key, v)
	return v, nil
}

// Len reports the number of entries, expired ones included.
func (c *TTLCache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
