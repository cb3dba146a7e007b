package openweather

import (
	"context"
	"fmt"
	"sync"

	"skymood/internal/domain"
	"skymood/internal/observability"
)

// CachedGeocodeProvider wraps a GeocodeProvider with an in-memory LRU cache.
// Repeated prefixes while the user types are served without refetching.
type CachedGeocodeProvider struct {
	inner   domain.GeocodeProvider
	cache   *lruCache
	metrics *observability.Metrics
}

// NewCachedGeocodeProvider creates a cache decorator around a geocode provider.
func NewCachedGeocodeProvider(inner domain.GeocodeProvider, maxEntries int, metrics *observability.Metrics) *CachedGeocodeProvider {
	return &CachedGeocodeProvider{
		inner:   inner,
		cache:   newLRUCache(maxEntries),
		metrics: metrics,
	}
}

func (c *CachedGeocodeProvider) SearchCities(ctx context.Context, query string, limit int) ([]domain.CityRecord, error) {
	key := fmt.Sprintf("%s|%d", query, limit)
	if records, ok := c.cache.get(key); ok {
		c.metrics.SuggestionCache.WithLabelValues("hit").Inc()
		return records, nil
	}
	c.metrics.SuggestionCache.WithLabelValues("miss").Inc()

	records, err := c.inner.SearchCities(ctx, query, limit)
	if err != nil {
		return records, err
	}
	// Only cache non-empty results so transient "no matches" responses can be retried.
	if len(records) > 0 {
		c.cache.put(key, records)
	}
	return records, nil
}

// lruCache is a simple thread-safe LRU cache for geocoding result lists.
type lruCache struct {
	maxEntries int
	mu         sync.Mutex
	entries    map[string]*entry
	head       *entry // most recently used
	tail       *entry // least recently used
}

type entry struct {
	key   string
	value []domain.CityRecord
	prev  *entry
	next  *entry
}

func newLRUCache(maxEntries int) *lruCache {
	return &lruCache{
		maxEntries: maxEntries,
		entries:    make(map[string]*entry),
	}
}

func (c *lruCache) get(key string) ([]domain.CityRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.moveToFront(e)
	return e.value, true
}

func (c *lruCache) put(key string, value []domain.CityRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		c.moveToFront(e)
		return
	}

	e := &entry{key: key, value: value}
	c.entries[key] = e
	c.addToFront(e)

	if len(c.entries) > c.maxEntries {
		c.evictTail()
	}
}

func (c *lruCache) moveToFront(e *entry) {
	if e == c.head {
		return
	}
	c.remove(e)
	c.addToFront(e)
}

func (c *lruCache) addToFront(e *entry) {
	e.next = c.head
	e.prev = nil
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) remove(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
}

func (c *lruCache) evictTail() {
	if c.tail == nil {
		return
	}
	delete(c.entries, c.tail.key)
	c.remove(c.tail)
}
