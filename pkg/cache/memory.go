package cache

import (
	"sync"
	"time"
)

// DefaultTTL is the entry lifetime used when a non-positive TTL is given.
const DefaultTTL = 5 * time.Minute

// entry wraps a cached value with its expiration time.
type entry struct {
	value     any
	expiresAt time.Time
}

// expired reports whether the entry is past its expiry at now.
// An entry is still valid at exactly expiresAt.
func (e entry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// Memory is an in-process [Store] with a fixed TTL per entry.
// It is safe for concurrent use by multiple goroutines.
type Memory struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

// MemoryOption configures a [Memory] store.
type MemoryOption func(*Memory)

// WithClock replaces the time source, which lets tests advance time
// without sleeping.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) {
		if now != nil {
			m.now = now
		}
	}
}

// NewMemory creates a Memory store whose entries live for ttl.
// A non-positive ttl falls back to [DefaultTTL].
func NewMemory(ttl time.Duration, opts ...MemoryOption) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m := &Memory{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// TTL returns the lifetime applied to every entry on [Memory.Set].
func (m *Memory) TTL() time.Duration { return m.ttl }

// Get returns the value for key if present and not expired.
// An expired entry is deleted and reported as a miss.
func (m *Memory) Get(key string) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if e.expired(m.now()) {
		delete(m.entries, key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key with an expiry of now plus the store TTL.
func (m *Memory) Set(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = entry{value: value, expiresAt: m.now().Add(m.ttl)}
}

// Clear removes all entries.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]entry)
}

// Len returns the number of stored entries, including expired entries that
// have not been looked up since they expired.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Ensure Memory implements Store.
var _ Store = (*Memory)(nil)
