package dictionary

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/petcare-basedata/internal/domain"
)

var (
	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dict_cache_hits_total",
		Help: "Dictionary value cache hits.",
	})
	cacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dict_cache_misses_total",
		Help: "Dictionary value cache misses.",
	})
	cacheInvalidationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dict_cache_invalidations_total",
		Help: "Dictionary cache invalidations caused by value writes.",
	})
)

const (
	defaultCacheSize = 512
	defaultCacheTTL  = 10 * time.Minute
)

// cacheKey identifies one cached list. All-values and by-parent lists of the
// same dictionary never share a key.
type cacheKey struct {
	dictCode string
	parent   string
	byParent bool
}

func valuesKey(dictCode string) cacheKey {
	return cacheKey{dictCode: dictCode}
}

func parentKey(dictCode, parent string) cacheKey {
	return cacheKey{dictCode: dictCode, parent: parent, byParent: true}
}

// valueCache holds active value lists. Cached slices are shared between
// callers and must not be modified.
//
// Each dictCode carries a generation bumped by invalidate. A reader takes the
// generation before it queries the store and its result is only cached if no
// invalidation happened in between, so a list read before a write cannot be
// stored after that write's invalidation.
type valueCache struct {
	lru *expirable.LRU[cacheKey, []*domain.DictValue]

	mu   sync.Mutex
	gens map[string]uint64
}

func newValueCache(size int, ttl time.Duration) *valueCache {
	if size <= 0 {
		size = defaultCacheSize
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &valueCache{
		lru:  expirable.NewLRU[cacheKey, []*domain.DictValue](size, nil, ttl),
		gens: make(map[string]uint64),
	}
}

func (c *valueCache) get(key cacheKey) ([]*domain.DictValue, bool) {
	vals, ok := c.lru.Get(key)
	if ok {
		cacheHitsTotal.Inc()
		return vals, true
	}
	cacheMissesTotal.Inc()
	return nil, false
}

// generation returns the current generation of dictCode.
func (c *valueCache) generation(dictCode string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[dictCode]
}

// set stores vals unless dictCode was invalidated after gen was taken.
func (c *valueCache) set(key cacheKey, gen uint64, vals []*domain.DictValue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[key.dictCode] != gen {
		return
	}
	c.lru.Add(key, vals)
}

// invalidate drops every list of dictCode and no other.
func (c *valueCache) invalidate(dictCode string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[dictCode]++
	for _, k := range c.lru.Keys() {
		if k.dictCode == dictCode {
			c.lru.Remove(k)
		}
	}
	cacheInvalidationsTotal.Inc()
}

func (c *valueCache) len() int {
	return c.lru.Len()
}
