package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
}

// TTL is an in-memory keyed cache whose entries expire after a fixed
// duration. A read is a hit only while now - storedAt < ttl. The cache is
// an explicit injectable component, safe for concurrent use.
type TTL[V any] struct {
	mu  sync.RWMutex
	ttl time.Duration
	now func() time.Time
	m   map[string]entry[V]
}

func NewTTL[V any](ttl time.Duration) *TTL[V] {
	return NewTTLWithClock[V](ttl, time.Now)
}

// NewTTLWithClock injects the clock, preserving per-test isolation.
func NewTTLWithClock[V any](ttl time.Duration, now func() time.Time) *TTL[V] {
	return &TTL[V]{
		ttl: ttl,
		now: now,
		m:   make(map[string]entry[V]),
	}
}

func (c *TTL[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.m[key]
	c.mu.RUnlock()

	if !ok {
		var zero V
		return zero, false
	}

	if c.now().Sub(e.storedAt) >= c.ttl {
		// Expired entries are evicted lazily on read.
		c.mu.Lock()
		if cur, ok := c.m[key]; ok && cur.storedAt.Equal(e.storedAt) {
			delete(c.m, key)
		}
		c.mu.Unlock()

		var zero V
		return zero, false
	}

	return e.value, true
}

func (c *TTL[V]) Put(key string, value V) {
	c.mu.Lock()
	c.m[key] = entry[V]{value: value, storedAt: c.now()}
	c.mu.Unlock()
}

// Clear drops every entry.
func (c *TTL[V]) Clear() {
	c.mu.Lock()
	c.m = make(map[string]entry[V])
	c.mu.Unlock()
}
