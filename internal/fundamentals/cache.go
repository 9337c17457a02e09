package fundamentals

import (
	"strings"
	"sync"
	"time"
)

type cacheEntry struct {
	report   *Report
	storedAt time.Time
}

// reportCache is a process-wide TTL cache of assembled reports, keyed by
// upper-cased ticker. Expired entries are evicted lazily on read.
type reportCache struct {
	mu  sync.RWMutex
	ttl time.Duration
	m   map[string]cacheEntry
}

func newReportCache(ttl time.Duration) *reportCache {
	return &reportCache{
		ttl: ttl,
		m:   make(map[string]cacheEntry),
	}
}

func (c *reportCache) get(ticker string) (*Report, bool) {
	key := strings.ToUpper(ticker)

	c.mu.RLock()
	e, ok := c.m[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if time.Since(e.storedAt) >= c.ttl {
		c.mu.Lock()
		delete(c.m, key)
		c.mu.Unlock()
		return nil, false
	}
	return e.report, true
}

func (c *reportCache) set(ticker string, r *Report) {
	c.mu.Lock()
	c.m[strings.ToUpper(ticker)] = cacheEntry{report: r, storedAt: time.Now()}
	c.mu.Unlock()
}
