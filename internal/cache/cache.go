// Package cache holds tenant-scoped query results between mutations.
//
// Keys have the shape resource|tenant|params so a mutation can drop every
// cached read of one resource in one condominium without touching others.
package cache

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

const sep = "|"

// loadTimeout bounds a shared load once it no longer follows any caller.
const loadTimeout = 30 * time.Second

// QueryCache is a bounded, expiring cache of tenant-scoped reads.
//
// Every invalidation bumps a generation. A load that started under an older
// generation still answers its own callers but is never stored, and reads
// issued after the invalidation start a fresh load instead of joining it.
type QueryCache struct {
	lru   *expirable.LRU[string, any]
	group singleflight.Group

	mu  sync.Mutex
	gen uint64
}

// New creates a cache holding at most size entries for ttl each.
func New(size int, ttl time.Duration) *QueryCache {
	if size <= 0 {
		size = 1024
	}
	return &QueryCache{lru: expirable.NewLRU[string, any](size, nil, ttl)}
}

// Key builds the cache key for a read.
func Key(resource string, tenant uuid.UUID, params string) string {
	return resource + sep + tenant.String() + sep + params
}

func (c *QueryCache) Get(key string) (any, bool) {
	return c.lru.Get(key)
}

func (c *QueryCache) Set(key string, value any) {
	c.lru.Add(key, value)
}

// InvalidateResource drops every cached read of resource in tenant.
func (c *QueryCache) InvalidateResource(tenant uuid.UUID, resource string) int {
	prefix := resource + sep + tenant.String() + sep
	return c.remove(func(k string) bool { return strings.HasPrefix(k, prefix) })
}

// InvalidateEverywhere drops every cached read of resource in all tenants.
func (c *QueryCache) InvalidateEverywhere(resource string) int {
	prefix := resource + sep
	return c.remove(func(k string) bool { return strings.HasPrefix(k, prefix) })
}

// InvalidateTenant drops every cached read of tenant, whatever the resource.
func (c *QueryCache) InvalidateTenant(tenant uuid.UUID) int {
	marker := sep + tenant.String() + sep
	return c.remove(func(k string) bool { return strings.Contains(k, marker) })
}

func (c *QueryCache) remove(match func(string) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	removed := 0
	for _, k := range c.lru.Keys() {
		if match(k) && c.lru.Remove(k) {
			removed++
		}
	}
	return removed
}

func (c *QueryCache) generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen
}

// store keeps value only if nothing was invalidated since gen was read.
func (c *QueryCache) store(key string, value any, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen == gen {
		c.lru.Add(key, value)
	}
}

// Len reports the number of live entries.
func (c *QueryCache) Len() int {
	return c.lru.Len()
}

// Fetch returns the cached value for key or loads it, collapsing concurrent
// loads of the same key. Errors are never cached. A nil cache always loads.
//
// The shared load is detached from the caller that started it, so one
// cancelled request does not fail the others waiting on the same key. Each
// caller still stops waiting when its own ctx is done.
func Fetch[T any](ctx context.Context, c *QueryCache, key string, load func(context.Context) (T, error)) (T, error) {
	var zero T
	if c == nil {
		return load(ctx)
	}
	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, nil
		}
	}

	gen := c.generation()
	flight := key + sep + strconv.FormatUint(gen, 10)
	ch := c.group.DoChan(flight, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()
		val, err := load(loadCtx)
		if err != nil {
			return nil, err
		}
		c.store(key, val, gen)
		return val, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}
