package cache

import (
	"context"
	"time"
)

// Hooks receives cache events. Implementations must be safe for concurrent use.
type Hooks interface {
	OnCacheHit(ctx context.Context)
	OnCacheMiss(ctx context.Context)
	OnCacheSet(ctx context.Context, size int)
	OnCacheError(ctx context.Context, op string)
}

// NoopHooks is a no-op implementation of Hooks.
type NoopHooks struct{}

func (NoopHooks) OnCacheHit(context.Context)           {}
func (NoopHooks) OnCacheMiss(context.Context)          {}
func (NoopHooks) OnCacheSet(context.Context, int)      {}
func (NoopHooks) OnCacheError(context.Context, string) {}

// instrumented forwards to a Cache and reports each outcome.
type instrumented struct {
	Cache
	hooks Hooks
}

// Instrumented wraps c so every Get and Set is reported to h.
func Instrumented(c Cache, h Hooks) Cache {
	if h == nil {
		return c
	}

	return &instrumented{Cache: c, hooks: h}
}

func (c *instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := c.Cache.Get(ctx, key)
	switch {
	case err != nil:
		c.hooks.OnCacheError(ctx, "get")
	case ok:
		c.hooks.OnCacheHit(ctx)
	default:
		c.hooks.OnCacheMiss(ctx)
	}

	return data, ok, err
}

func (c *instrumented) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := c.Cache.Set(ctx, key, data, ttl); err != nil {
		c.hooks.OnCacheError(ctx, "set")
		return err
	}
	c.hooks.OnCacheSet(ctx, len(data))

	return nil
}
