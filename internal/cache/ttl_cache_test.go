package cache

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGet_MissWhenEmpty(t *testing.T) {
	c := New(time.Minute)

	_, ok := c.Get(uuid.New())
	assert.False(t, ok)
}

func TestGet_HitWithinTTL(t *testing.T) {
	c := New(time.Minute)

	key := uuid.New()
	c.Set(key, "cached")

	value, ok := c.Get(key)
	assert.True(t, ok)
	assert.Equal(t, "cached", value)
}

func TestGet_MissAfterTTL(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	c := NewWithClock(5*time.Second, func() time.Time { return now })

	key := uuid.New()
	c.Set(key, "cached")

	now = now.Add(6 * time.Second)

	_, ok := c.Get(key)
	assert.False(t, ok)
}

func TestGet_HitExactlyAtExpiry(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	c := NewWithClock(5*time.Second, func() time.Time { return now })

	key := uuid.New()
	c.Set(key, "cached")

	// The entry expires strictly after its deadline.
	now = now.Add(5 * time.Second)

	_, ok := c.Get(key)
	assert.True(t, ok)
}

func TestSet_RefreshesExpiry(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	c := NewWithClock(5*time.Second, func() time.Time { return now })

	key := uuid.New()
	c.Set(key, "first")

	now = now.Add(4 * time.Second)
	c.Set(key, "second")

	now = now.Add(4 * time.Second)

	value, ok := c.Get(key)
	assert.True(t, ok)
	assert.Equal(t, "second", value)
}

func TestInvalidate_RemovesEntry(t *testing.T) {
	c := New(time.Minute)

	key := uuid.New()
	c.Set(key, "cached")
	c.Invalidate(key)

	_, ok := c.Get(key)
	assert.False(t, ok)
}

func TestInvalidate_LeavesOtherKeysAlone(t *testing.T) {
	c := New(time.Minute)

	first := uuid.New()
	second := uuid.New()
	c.Set(first, 1)
	c.Set(second, 2)

	c.Invalidate(first)

	_, ok := c.Get(first)
	assert.False(t, ok)

	value, ok := c.Get(second)
	assert.True(t, ok)
	assert.Equal(t, 2, value)
}
