// File: internal/platform/cache/cache.go
package cache

import (
	"context"
	"fmt"
	"time"

	"revert_connect_backend/internal/config"

	"go.uber.org/zap"
)

// Store caches directory collections between requests.
// Values are stored JSON-encoded so every backend hands out independent copies.
type Store interface {
	// Get decodes the cached value into dest and reports whether the key was present.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// DeletePrefix drops every key starting with prefix.
	DeletePrefix(ctx context.Context, prefix string) error
}

// New builds the Store selected by CACHE_DRIVER. The returned func releases its resources.
func New(cfg *config.Config, logger *zap.Logger) (Store, func(), error) {
	log := logger.Named("cache")
	switch cfg.CacheDriver {
	case "redis":
		store, err := NewRedisStore(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("redis cache: %w", err)
		}
		log.Info("Using redis collection cache")
		return store, func() {
			if err := store.Close(); err != nil {
				log.Warn("Failed to close redis client", zap.Error(err))
			}
		}, nil
	case "none":
		log.Info("Collection cache disabled")
		return NoopStore{}, func() {}, nil
	default:
		log.Info("Using in-memory collection cache", zap.Duration("ttl", cfg.CacheTTL))
		return NewMemoryStore(cfg.CacheTTL), func() {}, nil
	}
}

// Loader wraps a Store with the read-through policy used by every directory screen.
type Loader struct {
	store  Store
	ttl    time.Duration
	logger *zap.Logger
}

// NewLoader creates a Loader. A nil store behaves like NoopStore.
func NewLoader(store Store, cfg *config.Config, logger *zap.Logger) *Loader {
	if store == nil {
		store = NoopStore{}
	}
	return &Loader{store: store, ttl: cfg.CacheTTL, logger: logger.Named("cache_loader")}
}

// Invalidate drops every cached collection under prefix. Failures are logged, not returned:
// a stale entry expires on its own TTL.
func (l *Loader) Invalidate(ctx context.Context, prefix string) {
	if err := l.store.DeletePrefix(ctx, prefix); err != nil {
		l.logger.Warn("Cache invalidation failed", zap.String("prefix", prefix), zap.Error(err))
	}
}

// GetOrLoad returns the cached collection for key or calls load and caches its result.
// Cache errors degrade to a direct load; load errors are returned and never cached.
func GetOrLoad[T any](ctx context.Context, l *Loader, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	var cached []T
	hit, err := l.store.Get(ctx, key, &cached)
	if err != nil {
		l.logger.Warn("Cache read failed, loading from store", zap.String("key", key), zap.Error(err))
	} else if hit {
		return cached, nil
	}

	records, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if err := l.store.Set(ctx, key, records, l.ttl); err != nil {
		l.logger.Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
	return records, nil
}

// NoopStore never holds anything.
type NoopStore struct{}

func (NoopStore) Get(context.Context, string, interface{}) (bool, error) { return false, nil }

func (NoopStore) Set(context.Context, string, interface{}, time.Duration) error { return nil }

func (NoopStore) DeletePrefix(context.Context, string) error { return nil }
