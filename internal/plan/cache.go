package plan

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"queryable-projector/internal/analyze"
	"queryable-projector/internal/include"
)

type cacheKey struct {
	src, dst reflect.Type
	includes string
	rules    string
	settings string
}

// flightKey identifies types by identity, function local types may share their names.
func (k cacheKey) flightKey() string {
	return fmt.Sprintf("%p|%p|%s|%s|%s", k.src, k.dst, k.includes, k.rules, k.settings)
}

// Cache keeps compiled plans keyed by (source, target, normalized includes, rules, compiler settings).
// Plans are immutable, a cached plan is shared by every caller asking for the same key.
// A Cache is safe for concurrent use; concurrent misses on one key compile once.
type Cache struct {
	mu     sync.RWMutex
	plans  map[cacheKey]*TypePlan
	flight singleflight.Group
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{plans: make(map[cacheKey]*TypePlan)}
}

// Len returns the number of cached plans.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.plans)
}

// Stats returns the number of cache hits and misses so far.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Reset drops every cached plan.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.plans)
}

func (c *Cache) get(key cacheKey) (*TypePlan, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.plans[key]

	return p, ok
}

func (c *Cache) put(key cacheKey, p *TypePlan) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.plans == nil {
		c.plans = make(map[cacheKey]*TypePlan)
	}

	c.plans[key] = p
}

// CompileCached is Compile backed by the compiler cache.
// Without a cache it compiles on every call.
func (c *Compiler) CompileCached(src, dst reflect.Type, includes []string) (*TypePlan, error) {
	if c.cache == nil {
		return c.Compile(src, dst, includes)
	}

	key := cacheKey{
		src:      analyze.Indirect(src),
		dst:      analyze.Indirect(dst),
		includes: include.Key(includes),
		rules:    c.rules.Fingerprint(),
		settings: c.settings,
	}

	if p, ok := c.cache.get(key); ok {
		c.cache.hits.Add(1)
		c.logger.Debug("projection plan cache hit", "source", fmt.Sprint(src), "target", fmt.Sprint(dst), "includes", key.includes)

		return p, nil
	}

	v, err, _ := c.cache.flight.Do(key.flightKey(), func() (any, error) {
		if p, ok := c.cache.get(key); ok {
			return p, nil
		}

		c.cache.misses.Add(1)

		p, err := c.Compile(src, dst, includes)
		if err != nil {
			return nil, err
		}

		c.cache.put(key, p)

		return p, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*TypePlan), nil
}
