package cache

import (
	"sync"

	"github.com/resellhub/pricing-engine/internal/pricing"
)

// RefDataCache holds the loaded reference-data snapshot. Snapshots are
// replaced wholesale, never mutated, so readers always see a complete set.
type RefDataCache struct {
	mu   sync.RWMutex
	data *pricing.RefData
}

func NewRefDataCache() *RefDataCache {
	return &RefDataCache{}
}

func (c *RefDataCache) Get() (*pricing.RefData, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data, c.data != nil
}

func (c *RefDataCache) Set(data *pricing.RefData) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = data
}
