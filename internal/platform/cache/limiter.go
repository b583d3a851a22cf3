package cache

import (
	"sync"
	"time"
)

// Cooldown is a lossy per-key rate limiter: one "last dispatch" timestamp
// per external dependency. A call is allowed only if the cooldown has
// elapsed since the previous dispatch; otherwise it is rejected, not
// queued. Best-effort throttling, not linearizable request coalescing.
type Cooldown struct {
	mu       sync.Mutex
	interval time.Duration
	now      func() time.Time
	last     map[string]time.Time
}

func NewCooldown(interval time.Duration) *Cooldown {
	return NewCooldownWithClock(interval, time.Now)
}

func NewCooldownWithClock(interval time.Duration, now func() time.Time) *Cooldown {
	return &Cooldown{
		interval: interval,
		now:      now,
		last:     make(map[string]time.Time),
	}
}

// Allow reports whether a dispatch for key may proceed and, if so, records
// it as the new last dispatch.
func (l *Cooldown) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if last, ok := l.last[key]; ok && now.Sub(last) < l.interval {
		return false
	}

	l.last[key] = now
	return true
}
