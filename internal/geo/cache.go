package geo

import (
	"container/list"
	"fmt"
	"sync"
	"time"

	"github.com/mmcloughlin/geohash"

	"github.com/spatialtag/spatial-engine/internal/models"
)

// queryCacheEntry is one cached radius-query result.
type queryCacheEntry struct {
	key       string
	points    []IndexedPoint
	timestamp time.Time
}

// QueryCache is a thread-safe LRU cache with TTL for radius-query results.
// Keys combine the geohash of the query center with the radius, so nearby
// repeated queries hit without recomputation. The cache is purged wholesale
// whenever the underlying index changes; it is purely an optimization and
// never alters visible semantics.
type QueryCache struct {
	capacity  int
	ttl       time.Duration
	items     map[string]*list.Element
	evictList *list.List
	mu        sync.Mutex

	hits   uint64
	misses uint64
}

// NewQueryCache creates an LRU query cache.
func NewQueryCache(capacity int, ttl time.Duration) *QueryCache {
	return &QueryCache{
		capacity:  capacity,
		ttl:       ttl,
		items:     make(map[string]*list.Element),
		evictList: list.New(),
	}
}

// Key derives the cache key for a query center and radius. Geohash
// precision 9 resolves to roughly 5 m cells, enough to distinguish query
// centers at the engine's operating scale.
func (c *QueryCache) Key(center models.Location, radiusMeters float64) string {
	h := geohash.EncodeWithPrecision(center.Latitude, center.Longitude, 9)
	return fmt.Sprintf("%s:%.1f:%.1f", h, center.Altitude, radiusMeters)
}

// Get retrieves a cached result if present and fresh.
func (c *QueryCache) Get(key string) ([]IndexedPoint, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		c.misses++
		return nil, false
	}

	ent := elem.Value.(*queryCacheEntry)
	if time.Since(ent.timestamp) > c.ttl {
		c.removeElement(elem)
		c.misses++
		return nil, false
	}

	c.evictList.MoveToFront(elem)
	c.hits++
	return ent.points, true
}

// Set stores a query result, evicting the least recently used entry when
// over capacity.
func (c *QueryCache) Set(key string, points []IndexedPoint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.evictList.MoveToFront(elem)
		ent := elem.Value.(*queryCacheEntry)
		ent.points = points
		ent.timestamp = time.Now()
		return
	}

	elem := c.evictList.PushFront(&queryCacheEntry{
		key:       key,
		points:    points,
		timestamp: time.Now(),
	})
	c.items[key] = elem

	for c.evictList.Len() > c.capacity {
		oldest := c.evictList.Back()
		if oldest == nil {
			break
		}
		c.removeElement(oldest)
	}
}

// Purge drops every entry. Called after any mutation of the backing index.
func (c *QueryCache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.evictList.Init()
}

// HitRate returns the fraction of lookups served from cache.
func (c *QueryCache) HitRate() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := c.hits + c.misses
	if total == 0 {
		return 0
	}
	return float64(c.hits) / float64(total)
}

func (c *QueryCache) removeElement(elem *list.Element) {
	c.evictList.Remove(elem)
	ent := elem.Value.(*queryCacheEntry)
	delete(c.items, ent.key)
}
