package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissAndSet(t *testing.T) {
	c := New[string](time.Hour)

	_, ok := c.Get("k")
	assert.False(t, ok)

	c.Set("k", "v")
	v, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestEntriesExpire(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	c := NewWithClock[int](time.Hour, func() time.Time { return now })

	c.Set("k", 42)

	now = now.Add(59 * time.Minute)
	_, ok := c.Get("k")
	assert.True(t, ok, "entry should still be fresh before the TTL")

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok, "entry should expire once the TTL has passed")
}

func TestGetOrComputeMemoizes(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	c := NewWithClock[int](time.Hour, func() time.Time { return now })

	calls := 0
	compute := func() (int, error) {
		calls++
		return calls, nil
	}

	v, err := c.GetOrCompute("k", compute)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = c.GetOrCompute("k", compute)
	require.NoError(t, err)
	assert.Equal(t, 1, v, "second lookup should hit the cache")
	assert.Equal(t, 1, calls)

	// After expiry the value is recomputed and overwritten in place.
	now = now.Add(2 * time.Hour)
	v, err = c.GetOrCompute("k", compute)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())
}

func TestGetOrComputeError(t *testing.T) {
	c := New[string](time.Hour)

	_, err := c.GetOrCompute("k", func() (string, error) {
		return "", errors.New("boom")
	})
	require.Error(t, err)

	_, ok := c.Get("k")
	assert.False(t, ok, "failed computations must not be cached")
}
