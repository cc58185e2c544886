package geo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spatialtag/spatial-engine/internal/models"
)

func testPoints(id string) []IndexedPoint {
	return []IndexedPoint{{ID: id, Confidence: 1}}
}

func TestQueryCache_SetGet(t *testing.T) {
	cache := NewQueryCache(4, time.Minute)
	center, err := models.NewLocation(46.5, 14.2, 100, 1.0)
	require.NoError(t, err)

	key := cache.Key(center, 25)
	_, ok := cache.Get(key)
	assert.False(t, ok)

	cache.Set(key, testPoints("a"))
	got, ok := cache.Get(key)
	require.True(t, ok)
	assert.Equal(t, "a", got[0].ID)
}

func TestQueryCache_KeyDistinguishesRadiusAndCenter(t *testing.T) {
	cache := NewQueryCache(4, time.Minute)
	a, err := models.NewLocation(46.5, 14.2, 100, 1.0)
	require.NoError(t, err)
	b, err := models.NewLocation(46.6, 14.2, 100, 1.0)
	require.NoError(t, err)

	assert.NotEqual(t, cache.Key(a, 25), cache.Key(a, 30))
	assert.NotEqual(t, cache.Key(a, 25), cache.Key(b, 25))
}

func TestQueryCache_TTLExpiry(t *testing.T) {
	cache := NewQueryCache(4, 10*time.Millisecond)
	center, err := models.NewLocation(0, 0, 0, 1.0)
	require.NoError(t, err)

	key := cache.Key(center, 10)
	cache.Set(key, testPoints("a"))
	time.Sleep(20 * time.Millisecond)

	_, ok := cache.Get(key)
	assert.False(t, ok)
}

func TestQueryCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := NewQueryCache(2, time.Minute)
	cache.Set("k1", testPoints("a"))
	cache.Set("k2", testPoints("b"))

	// Touch k1 so k2 becomes the eviction victim.
	_, ok := cache.Get("k1")
	require.True(t, ok)

	cache.Set("k3", testPoints("c"))

	_, ok = cache.Get("k2")
	assert.False(t, ok)
	_, ok = cache.Get("k1")
	assert.True(t, ok)
	_, ok = cache.Get("k3")
	assert.True(t, ok)
}

func TestQueryCache_Purge(t *testing.T) {
	cache := NewQueryCache(4, time.Minute)
	cache.Set("k1", testPoints("a"))
	cache.Set("k2", testPoints("b"))
	cache.Purge()

	_, ok := cache.Get("k1")
	assert.False(t, ok)
	_, ok = cache.Get("k2")
	assert.False(t, ok)
}

func TestQueryCache_HitRate(t *testing.T) {
	cache := NewQueryCache(4, time.Minute)
	cache.Set("k1", testPoints("a"))

	cache.Get("k1")
	cache.Get("missing")

	assert.InDelta(t, 0.5, cache.HitRate(), 1e-9)
}
