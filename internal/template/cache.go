package template

import (
	"sync"
	"time"
)

type cacheEntry struct {
	key       string
	content   string
	createdAt time.Time
	expiresAt time.Time
}

// Cache bounds generated-document text by entry count and TTL. Content-hash
// keys make concurrent overwrites idempotent, so a plain RWMutex suffices.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	maxSize int
	ttl     time.Duration
	hits    uint64
}

// NewCache creates a cache with the given capacity and TTL.
func NewCache(maxSize int, ttl time.Duration) *Cache {
	if maxSize <= 0 {
		maxSize = 100
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &Cache{entries: make(map[string]*cacheEntry), maxSize: maxSize, ttl: ttl}
}

// Get returns cached content if present and not expired.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok || time.Now().After(entry.expiresAt) {
		return "", false
	}

	c.mu.Lock()
	c.hits++
	c.mu.Unlock()
	return entry.content, true
}

// Set stores content, evicting the oldest entry at capacity.
func (c *Cache) Set(key, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	now := time.Now()
	c.entries[key] = &cacheEntry{
		key:       key,
		content:   content,
		createdAt: now,
		expiresAt: now.Add(c.ttl),
	}
}

// evictOldest removes the entry with the earliest creation time. Caller
// holds the lock.
func (c *Cache) evictOldest() {
	var oldestKey string
	var oldestAt time.Time
	for k, e := range c.entries {
		if oldestKey == "" || e.createdAt.Before(oldestAt) {
			oldestKey = k
			oldestAt = e.createdAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// Len returns the number of stored entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Hits returns the number of cache hits served.
func (c *Cache) Hits() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits
}
