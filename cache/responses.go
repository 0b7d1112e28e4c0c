package cache

import (
	"time"

	"github.com/umakantv/go-utils/cache"
)

// Cache keys of the list endpoints
const (
	ClothingListKey = "clothing:list"
	DesignsListKey  = "designs:list"
	OutfitsListKey  = "outfits:list"
)

// Responses keeps serialized JSON bodies under string keys.
// Values are stored as strings so they survive the Redis round trip.
// A nil Responses or nil backend misses every lookup.
type Responses struct {
	backend cache.Cache
}

func NewResponses(backend cache.Cache) *Responses {
	return &Responses{backend: backend}
}

// Get returns the body stored under key
func (c *Responses) Get(key string) ([]byte, bool) {
	if c == nil || c.backend == nil {
		return nil, false
	}

	cached, err := c.backend.Get(key)
	if err != nil {
		return nil, false
	}

	switch body := cached.(type) {
	case string:
		return []byte(body), true
	case []byte:
		return body, true
	}
	return nil, false
}

func (c *Responses) Set(key string, body []byte, ttl time.Duration) {
	if c == nil || c.backend == nil {
		return
	}
	c.backend.Set(key, string(body), ttl)
}

// Delete drops every key
func (c *Responses) Delete(keys ...string) {
	if c == nil || c.backend == nil {
		return
	}
	for _, key := range keys {
		c.backend.Delete(key)
	}
}
