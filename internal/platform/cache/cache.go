// Package cache provides the in-memory read cache that backs the query layer.
// Writes to the API never patch cached values; they invalidate keys so the next
// read re-fetches from the server.
package cache

import (
	"context"
	"strconv"
	"sync"
	"time"
)

// ListKey returns the cache key scoping an entity's list read.
func ListKey(entity string) string {
	return entity
}

// ItemKey returns the cache key scoping a single record read.
func ItemKey(entity string, id int) string {
	return entity + "/" + strconv.Itoa(id)
}

// entry holds a cached value and its expiration time.
type entry struct {
	value     any
	expiresAt time.Time
}

// Store is a thread-safe in-memory cache with lazy expiration.
type Store struct {
	entries map[string]*entry
	mu      sync.RWMutex
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		entries: make(map[string]*entry),
	}
}

// Get retrieves a value from the cache. Performs lazy expiration: deletes the
// entry and returns a miss if it has expired.
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

// Set stores a value in the cache with the given TTL.
func (s *Store) Set(key string, value any, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = &entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

// Delete removes a single entry from the cache.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Clear removes all entries from the cache.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]*entry)
}

// Len reports the number of entries currently held, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// StartCleanup runs a background goroutine that periodically removes expired
// entries. It stops when the context is cancelled.
func (s *Store) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.mu.Lock()
				now := time.Now()
				for k, e := range s.entries {
					if now.After(e.expiresAt) {
						delete(s.entries, k)
					}
				}
				s.mu.Unlock()
			}
		}
	}()
}
