package cache

import (
	"testing"
	"time"
)

func TestTTLExpiry(t *testing.T) {
	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewTTLWithClock[string](5*time.Minute, func() time.Time { return clock })

	if _, ok := c.Get("k"); ok {
		t.Fatal("expected miss on empty cache")
	}

	c.Put("k", "v")

	v, ok := c.Get("k")
	if !ok || v != "v" {
		t.Fatalf("Get = (%q, %v), want (v, true)", v, ok)
	}

	clock = clock.Add(4*time.Minute + 59*time.Second)
	if _, ok := c.Get("k"); !ok {
		t.Fatal("expected hit just before TTL")
	}

	clock = clock.Add(time.Second)
	if _, ok := c.Get("k"); ok {
		t.Fatal("expected miss at exactly TTL")
	}
}

func TestTTLClear(t *testing.T) {
	c := NewTTL[int](time.Minute)
	c.Put("a", 1)
	c.Clear()

	if _, ok := c.Get("a"); ok {
		t.Fatal("expected miss after Clear")
	}
}
