package cache

import (
	"context"
	"sync"
	"time"

	"github.com/valam21/currency-converter/internal/domain/model"
	"github.com/valam21/currency-converter/pkg/logger"
)

type entry[V any] struct {
	value     V
	fetchedAt time.Time
}

// Cache is an in-memory TTL cache. Entries past their TTL behave as misses
// and are evicted on read. There is no entry-count bound: the keyspace is the
// set of currency-pair combinations, which is small.
type Cache[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]
	ttl     time.Duration
	now     func() time.Time
	log     *logger.Logger
}

func New[V any](ttl time.Duration, log *logger.Logger) *Cache[V] {
	return &Cache[V]{
		entries: make(map[string]entry[V]),
		ttl:     ttl,
		now:     time.Now,
		log:     log,
	}
}

// WithClock replaces the cache's clock. Intended for tests.
func (c *Cache[V]) WithClock(now func() time.Time) *Cache[V] {
	c.now = now
	return c
}

func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, found := c.entries[key]
	if !found {
		c.log.Debug("Cache miss", "key", key)
		return zero, false
	}

	if c.now().Sub(e.fetchedAt) > c.ttl {
		delete(c.entries, key)
		c.log.Debug("Cache entry expired", "key", key)
		return zero, false
	}

	c.log.Debug("Cache hit", "key", key)
	return e.value, true
}

// Put overwrites any existing entry, resetting its timestamp to now.
func (c *Cache[V]) Put(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{value: value, fetchedAt: c.now()}
	c.log.Debug("Cache set", "key", key)
}

// InvalidateExpired sweeps out every stale entry and returns how many were
// removed.
func (c *Cache[V]) InvalidateExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, e := range c.entries {
		if now.Sub(e.fetchedAt) > c.ttl {
			delete(c.entries, key)
			removed++
		}
	}

	if removed > 0 {
		c.log.Debug("Removed expired cache entries", "count", removed)
	}
	return removed
}

func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// MemoryTableCache adapts Cache to the TableCache port, keying tables by
// their base currency.
type MemoryTableCache struct {
	inner *Cache[*model.RateTable]
}

func NewMemoryTableCache(ttl time.Duration, log *logger.Logger) *MemoryTableCache {
	return &MemoryTableCache{inner: New[*model.RateTable](ttl, log)}
}

// WithClock replaces the underlying cache's clock. Intended for tests.
func (c *MemoryTableCache) WithClock(now func() time.Time) *MemoryTableCache {
	c.inner.WithClock(now)
	return c
}

func (c *MemoryTableCache) Get(ctx context.Context, base model.Currency) (*model.RateTable, bool) {
	return c.inner.Get(base.String())
}

func (c *MemoryTableCache) Set(ctx context.Context, table *model.RateTable) error {
	c.inner.Put(table.Base.String(), table)
	return nil
}

func (c *MemoryTableCache) ClearExpired(ctx context.Context) error {
	c.inner.InvalidateExpired()
	return nil
}
