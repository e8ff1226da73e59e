package server

import (
	"sync"
	"time"

	"courseboard/internal/store"
)

// ttlCache is the per-process result cache for tab queries. Entries expire
// after a fixed TTL and are dropped lazily on the next lookup; the data set
// is seven tabs, so no eviction beyond that is needed.
type ttlCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	at      time.Time
	records []store.Record
}

func newTTLCache(ttl time.Duration) *ttlCache {
	return &ttlCache{ttl: ttl, entries: make(map[string]cacheEntry)}
}

func (c *ttlCache) get(key string) ([]store.Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Since(entry.at) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.records, true
}

func (c *ttlCache) set(key string, records []store.Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{at: time.Now(), records: records}
}
