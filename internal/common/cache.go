package common

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache memoises derived views over the content store. Entries are never
// invalidated by writes because the store is immutable; expiration only
// bounds memory.
type Cache struct {
	*cache.Cache
	metrics *Metrics
}

func NewCache(expirationTime, cleanupTime time.Duration) *Cache {
	return &Cache{Cache: cache.New(expirationTime, cleanupTime)}
}

// WithMetrics records hits and misses on m.
func (c *Cache) WithMetrics(m *Metrics) *Cache {
	c.metrics = m
	return c
}

func (c *Cache) Set(key string, value interface{}, expiration ...time.Duration) {
	if len(expiration) > 0 {
		c.Cache.Set(key, value, expiration[0])
		return
	}
	c.Cache.Set(key, value, cache.DefaultExpiration)
}

func (c *Cache) Get(key string) (interface{}, bool) {
	v, ok := c.Cache.Get(key)
	if c.metrics != nil {
		c.metrics.RecordCacheLookup(ok)
	}
	return v, ok
}

func (c *Cache) Flush() {
	c.Cache.Flush()
}

// Remember returns the cached value of type T for key, computing and storing
// it with fn on a miss. A hit returns the stored value itself, so callers
// handing slices out must copy them.
func Remember[T any](c *Cache, key string, fn func() T) T {
	if c == nil {
		return fn()
	}
	if v, ok := c.Get(key); ok {
		if t, ok := v.(T); ok {
			return t
		}
	}
	t := fn()
	c.Set(key, t)
	return t
}

// CacheKeyPosts quotes each part so free-text labels and search terms
// containing the separator cannot collide.
func CacheKeyPosts(category, label, title string) string {
	return fmt.Sprintf("posts:%q:%q:%q", category, label, strings.ToLower(title))
}

func CacheKeyMusic() string {
	return "music"
}

func CacheKeyPersonalBests() string {
	return "pbs"
}

func CacheKeyWeekly() string {
	return "training:weekly"
}

func CacheKeyStats(start, end time.Time) string {
	return "training:stats:" + start.Format("2006-01-02") + ":" + end.Format("2006-01-02")
}

func CacheKeyYearAverage(year int) string {
	return "training:year:" + strconv.Itoa(year)
}

func CacheKeySummary(timeframe string, ref time.Time) string {
	return "training:summary:" + timeframe + ":" + ref.Format("2006-01-02")
}
