package cache

import (
	"context"
	"sync"
	"time"
)

// Memory is a process-local cache backed by a map
type Memory struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemory makes an in-memory cache, zero ttl means DefaultTTL
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{ttl: ttl, now: time.Now, entries: make(map[string]Entry)}
}

// Get returns cached text for url if present and not expired
func (m *Memory) Get(_ context.Context, url string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[Key(url)]
	if !ok || e.expired(m.now(), m.ttl) {
		return "", false
	}
	return e.RawText, true
}

// Put stores text for url, replacing any previous entry
func (m *Memory) Put(_ context.Context, url, text string) {
	m.mu.Lock()
	m.entries[Key(url)] = Entry{FetchedAt: m.now(), RawText: text}
	m.mu.Unlock()
}

// Len returns the number of stored entries, expired ones included
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
