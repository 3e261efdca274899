// Package tripcache holds the session-lifetime trip snapshot. The remote
// trip table is fetched in full once and reused until a manual refresh
// invalidates it.
package tripcache

import (
	"context"
	"sync"

	"github.com/fleetops/leakwatch/internal/models"
)

// Loader fetches the full trip snapshot from the remote table.
type Loader func(ctx context.Context) ([]models.Trip, error)

// Cache memoizes one trip snapshot behind a mutex. A failed load caches
// nothing, so the next read retries the source.
type Cache struct {
	load Loader

	mu     sync.Mutex
	trips  []models.Trip
	loaded bool
}

func New(load Loader) *Cache {
	return &Cache{load: load}
}

// Trips returns the cached snapshot, fetching it on first use. Concurrent
// callers during a fetch wait for the single in-flight load.
func (c *Cache) Trips(ctx context.Context) ([]models.Trip, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		trips, err := c.load(ctx)
		if err != nil {
			return nil, err
		}
		c.trips = trips
		c.loaded = true
	}
	return c.trips, nil
}

// Invalidate drops the snapshot; the next Trips call re-fetches. This is the
// manual refresh action, safe to call at any time.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.trips = nil
	c.loaded = false
}
