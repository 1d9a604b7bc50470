package reason

import (
	"strings"
	"sync"

	"github.com/o3sigma/manual-extractor/internal/entity"
)

// cache memoizes classifications for the lifetime of one classifier
// instance. The key is the normalized description only - cause is ignored,
// which can reuse a classification for alarms that share wording but differ
// in root cause. That is an accepted trade-off to bound model-call volume.
// The mutex makes the cache safe for concurrent chunk workers.
type cache struct {
	mu      sync.Mutex
	entries map[string]entity.Classification
}

func newCache() *cache {
	return &cache{entries: make(map[string]entity.Classification)}
}

func cacheKey(description string) string {
	return strings.ToLower(strings.TrimSpace(description))
}

func (c *cache) get(description string) (entity.Classification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	result, ok := c.entries[cacheKey(description)]
	return result, ok
}

func (c *cache) set(description string, result entity.Classification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cacheKey(description)] = result
}
