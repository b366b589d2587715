package cache

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// ComputeFunc produces the value for a key on a cache miss.
type ComputeFunc func(ctx context.Context) (json.RawMessage, error)

// Cache memoizes parsed responses under typed keys.
type Cache struct {
	store  Store
	group  singleflight.Group
	logger zerolog.Logger
}

// New creates a cache over the given store. A nil store gets a fresh
// MemoryStore, which scopes the cache to its owning client.
func New(store Store, logger zerolog.Logger) *Cache {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Cache{
		store:  store,
		logger: logger.With().Str("component", "cache").Logger(),
	}
}

// GetOrCompute returns the stored value for key, or invokes compute,
// stores the result on success and returns it. Concurrent calls for
// an identical key share one compute invocation. Store read failures
// are logged and degrade to a fresh compute.
func (c *Cache) GetOrCompute(ctx context.Context, key Key, compute ComputeFunc) (json.RawMessage, error) {
	k := key.String()

	data, ok, err := c.store.Get(ctx, k)
	if err != nil {
		cacheErrors.WithLabelValues("get").Inc()
		c.logger.Warn().Err(err).Str("key", k).Msg("Cache read failed, computing")
	} else if ok {
		cacheHits.Inc()
		c.logger.Debug().Str("key", k).Msg("Cache hit")
		return data, nil
	}
	cacheMisses.Inc()

	v, err, shared := c.group.Do(k, func() (interface{}, error) {
		// A concurrent flight may have stored the value while this
		// call waited on the group.
		if data, ok, err := c.store.Get(ctx, k); err == nil && ok {
			return data, nil
		}

		data, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		if err := c.store.Set(ctx, k, data); err != nil {
			cacheErrors.WithLabelValues("set").Inc()
			c.logger.Warn().Err(err).Str("key", k).Msg("Cache write failed")
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.logger.Debug().Str("key", k).Msg("Compute shared with concurrent caller")
	}
	return v.(json.RawMessage), nil
}

// Invalidate removes key from the cache.
func (c *Cache) Invalidate(ctx context.Context, key Key) error {
	if err := c.store.Delete(ctx, key.String()); err != nil {
		cacheErrors.WithLabelValues("delete").Inc()
		return err
	}
	return nil
}

// Clear removes every cached entry.
func (c *Cache) Clear(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		cacheErrors.WithLabelValues("clear").Inc()
		return err
	}
	return nil
}
