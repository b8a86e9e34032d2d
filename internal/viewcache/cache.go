package viewcache

import (
	"log/slog"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// Routes whose assembled views are cached.
const (
	RouteLanding   = "/"
	RouteDashboard = "/admin"
)

// Cache holds assembled views keyed by route. A mutation calls Invalidate
// with the routes it affects and the next read recomputes them.
// A Cache built with a non-positive TTL stores nothing.
//
// Each route carries a generation bumped by Invalidate. A reader takes the
// generation before fetching and hands it back to Set, so a view built from
// data read before an invalidation is never stored after it.
type Cache struct {
	store  *cache.Cache
	logger *slog.Logger

	mu          sync.Mutex
	generations map[string]uint64
}

// New creates a view cache with the given TTL.
func New(ttl time.Duration, logger *slog.Logger) *Cache {
	c := &Cache{logger: logger, generations: make(map[string]uint64)}
	if ttl > 0 {
		c.store = cache.New(ttl, 2*ttl)
	}
	return c
}

// Enabled reports whether views are stored at all.
func (c *Cache) Enabled() bool {
	return c != nil && c.store != nil
}

// Get returns the cached view for route.
func (c *Cache) Get(route string) (interface{}, bool) {
	if !c.Enabled() {
		return nil, false
	}
	return c.store.Get(route)
}

// Generation returns the current generation of route. Take it before
// reading the data a view is built from.
func (c *Cache) Generation(route string) uint64 {
	if !c.Enabled() {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[route]
}

// Set stores a view for route using the default TTL, unless route was
// invalidated since gen was taken. It reports whether the view was stored.
func (c *Cache) Set(route string, view interface{}, gen uint64) bool {
	if !c.Enabled() {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[route] != gen {
		c.logger.Debug("discarding view built before invalidation", "route", route)
		return false
	}
	c.store.Set(route, view, cache.DefaultExpiration)
	return true
}

// Invalidate marks the views for routes stale.
func (c *Cache) Invalidate(routes ...string) {
	if !c.Enabled() {
		return
	}
	c.mu.Lock()
	for _, route := range routes {
		c.generations[route]++
		c.store.Delete(route)
	}
	c.mu.Unlock()
	c.logger.Debug("views invalidated", "routes", routes)
}
