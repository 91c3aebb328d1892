package describe

import "sync"

// Cache stores fetched descriptions so repeated lookups for the same
// hotel do not refetch. Implementations must be safe for concurrent use.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string)
}

type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]string)}
}

func (c *MemoryCache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *MemoryCache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

func cacheKey(hotel HotelInfo) string {
	return hotel.Name + "|" + hotel.Location
}
