package cache

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// TTLCache memoizes one value per election id for a fixed TTL. It serves
// display reads only: nothing on the voting write path is allowed to
// consult it, so a stale entry can never influence eligibility.
type TTLCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[uuid.UUID]entry
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

func New(ttl time.Duration) *TTLCache {
	return NewWithClock(ttl, time.Now)
}

func NewWithClock(ttl time.Duration, now func() time.Time) *TTLCache {
	return &TTLCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[uuid.UUID]entry),
	}
}

func (c *TTLCache) Get(key uuid.UUID) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}

	return e.value, true
}

func (c *TTLCache) Set(key uuid.UUID, value interface{}) {
	c.mu.Lock()
	c.entries[key] = entry{
		value:     value,
		expiresAt: c.now().Add(c.ttl),
	}
	c.mu.Unlock()
}

func (c *TTLCache) Invalidate(key uuid.UUID) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}
