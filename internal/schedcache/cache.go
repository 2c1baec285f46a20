package schedcache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"smart-scheduler/internal/scheduler"
)

// Cache memoizes schedule responses for identical requests. The scheduler is
// deterministic, so a cached response is exactly what a re-run would produce;
// the TTL only bounds staleness against a moving "now" for requests that omit
// an explicit start date. Owned by the HTTP layer — the scheduler itself
// stays pure.
type Cache struct {
	entries *expirable.LRU[string, scheduler.ScheduleOutput]
}

// New creates a cache holding up to size responses for ttl each.
func New(size int, ttl time.Duration) *Cache {
	if size <= 0 {
		size = 256
	}
	return &Cache{
		entries: expirable.NewLRU[string, scheduler.ScheduleOutput](size, nil, ttl),
	}
}

// Key derives the cache key for a raw request body.
func Key(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// Get returns the cached response for key, if present and unexpired.
func (c *Cache) Get(key string) (scheduler.ScheduleOutput, bool) {
	return c.entries.Get(key)
}

// Add stores a response under key.
func (c *Cache) Add(key string, out scheduler.ScheduleOutput) {
	c.entries.Add(key, out)
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	return c.entries.Len()
}
