package ratelimit

import (
	"context"
	"sync"
	"time"
)

type counter struct {
	count     int
	expiresAt time.Time
}

// MemoryRateLimiter keeps counters in a mutex-guarded map. Expired entries
// are dropped lazily on access and by Cleanup.
type MemoryRateLimiter struct {
	mu       sync.Mutex
	counters map[string]*counter
	now      func() time.Time
}

func NewMemoryRateLimiter() *MemoryRateLimiter {
	return &MemoryRateLimiter{
		counters: make(map[string]*counter),
		now:      time.Now,
	}
}

func (m *MemoryRateLimiter) CheckAndIncrement(_ context.Context, key string, limit int, window time.Duration) error {
	if limit <= 0 {
		return ErrRateLimitExceeded
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	c, ok := m.counters[key]
	if !ok || !now.Before(c.expiresAt) {
		m.counters[key] = &counter{count: 1, expiresAt: now.Add(window)}
		return nil
	}

	if c.count >= limit {
		return ErrRateLimitExceeded
	}
	c.count++
	return nil
}

func (m *MemoryRateLimiter) Reset(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.counters, key)
	return nil
}

// Cleanup removes every expired counter.
func (m *MemoryRateLimiter) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for key, c := range m.counters {
		if !now.Before(c.expiresAt) {
			delete(m.counters, key)
		}
	}
}

func (m *MemoryRateLimiter) len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.counters)
}
