package cache

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"
)

// InMemoryViewCache is a process-local ViewCache used in tests and when
// Redis is disabled
type InMemoryViewCache struct {
	mu      sync.RWMutex
	entries map[string]inMemoryEntry
}

type inMemoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewInMemoryViewCache creates an empty in-memory view cache
func NewInMemoryViewCache() *InMemoryViewCache {
	return &InMemoryViewCache{
		entries: make(map[string]inMemoryEntry),
	}
}

// Get retrieves and unmarshals a cached view
func (c *InMemoryViewCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return false, nil
	}

	if err := json.Unmarshal(entry.data, dest); err != nil {
		return false, nil
	}
	return true, nil
}

// Set stores a view under key for the given TTL
func (c *InMemoryViewCache) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.entries[key] = inMemoryEntry{
		data:      data,
		expiresAt: time.Now().Add(ttl),
	}
	c.mu.Unlock()
	return nil
}

// Delete removes the given keys
func (c *InMemoryViewCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	c.mu.Unlock()
	return nil
}

// DeleteByPrefix removes every key starting with prefix
func (c *InMemoryViewCache) DeleteByPrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
	return nil
}

// Len returns the number of live entries
func (c *InMemoryViewCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Interface compliance check
var _ ViewCache = (*InMemoryViewCache)(nil)
