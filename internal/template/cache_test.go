package template

import (
	"fmt"
	"testing"
	"time"
)

func TestCacheGetSet(t *testing.T) {
	c := NewCache(5, time.Minute)

	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected miss on empty cache")
	}

	c.Set("k1", "content")
	got, ok := c.Get("k1")
	if !ok || got != "content" {
		t.Fatalf("expected hit with stored content, got %q ok=%v", got, ok)
	}
	if c.Hits() != 1 {
		t.Fatalf("expected 1 hit, got %d", c.Hits())
	}
}

func TestCacheTTLExpiry(t *testing.T) {
	c := NewCache(5, 20*time.Millisecond)

	c.Set("k1", "content")
	time.Sleep(40 * time.Millisecond)

	if _, ok := c.Get("k1"); ok {
		t.Fatal("expected expired entry to miss")
	}
}

func TestCacheEvictsOldestAtCapacity(t *testing.T) {
	c := NewCache(3, time.Minute)

	for i := 0; i < 3; i++ {
		c.Set(fmt.Sprintf("k%d", i), "v")
		time.Sleep(time.Millisecond)
	}
	c.Set("k3", "v")

	if c.Len() != 3 {
		t.Fatalf("expected capacity 3, got %d", c.Len())
	}
	if _, ok := c.Get("k0"); ok {
		t.Fatal("expected the oldest entry to be evicted")
	}
	if _, ok := c.Get("k3"); !ok {
		t.Fatal("expected the newest entry to remain")
	}
}

func TestCacheOverwriteDoesNotEvict(t *testing.T) {
	c := NewCache(2, time.Minute)

	c.Set("k1", "v1")
	c.Set("k2", "v2")
	c.Set("k1", "v1b")

	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
	got, ok := c.Get("k1")
	if !ok || got != "v1b" {
		t.Fatalf("expected overwritten content, got %q", got)
	}
}

func TestRecorderRingBuffer(t *testing.T) {
	r := NewRecorder(3, nil)

	for i := 0; i < 5; i++ {
		r.Record(SecurityEvent{Kind: EventBlockedVariable, Path: fmt.Sprintf("p%d", i)})
	}

	events := r.Events()
	if len(events) != 3 {
		t.Fatalf("expected 3 retained events, got %d", len(events))
	}
	if events[0].Path != "p2" || events[2].Path != "p4" {
		t.Fatalf("expected oldest-first p2..p4, got %+v", events)
	}
}
