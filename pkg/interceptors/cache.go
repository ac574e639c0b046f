package interceptors

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/agentstation/datakit/pkg/catalog"
)

// Compile-time interface checks to ensure proper implementation.
var _ catalog.Interceptor = (*Cache)(nil)

// Cache is a read-through LRU cache over loads. A cache hit
// short-circuits the rest of the chain, so neither inner interceptors
// nor the handle see the load. Saves invalidate the cached entry before
// forwarding, since the value the handle ends up storing may differ
// from the one observed at this layer.
type Cache struct {
	entries *lru.Cache[string, any]
}

// NewCache creates a Cache holding at most size resources.
func NewCache(size int) (*Cache, error) {
	entries, err := lru.New[string, any](size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// OnLoad returns the cached value if present, otherwise runs the rest
// of the chain and caches its result.
func (c *Cache) OnLoad(name string, next catalog.LoadFunc) (any, error) {
	if value, ok := c.entries.Get(name); ok {
		return value, nil
	}

	value, err := next()
	if err != nil {
		return nil, err
	}
	c.entries.Add(name, value)
	return value, nil
}

// OnSave invalidates the cached entry and forwards the save unchanged.
func (c *Cache) OnSave(name string, next catalog.SaveFunc, data any) error {
	c.entries.Remove(name)
	return next(data)
}

// Len returns the number of cached resources.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Purge drops every cached entry.
func (c *Cache) Purge() {
	c.entries.Purge()
}
