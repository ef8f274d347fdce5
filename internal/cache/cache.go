// Package cache holds rendered page responses keyed by request URI and
// grouped by logical path, so that a mutation can invalidate every cached
// variant of a page (all search queries and page numbers) at once.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/go-invoice-dashboard/internal/config"
	"github.com/MKhiriev/go-invoice-dashboard/internal/logger"
)

//go:generate mockgen -source=cache.go -destination=../mock/cache_mock.go -package=mock

// PageCache stores page bodies under a key that belongs to a logical path.
//
// Every path has a generation that Revalidate advances. A page rendered
// while a revalidation happened must not be stored, so callers read the
// generation before rendering and hand it back to Set.
type PageCache interface {
	// Get returns the cached body for key. ok is false on a miss.
	Get(ctx context.Context, key string) (body []byte, ok bool, err error)
	// Generation returns the current generation of path.
	Generation(ctx context.Context, path string) (int64, error)
	// Set stores body for key and records key under path. It returns
	// ErrStaleGeneration and stores nothing when path has been
	// revalidated since generation was read.
	Set(ctx context.Context, path, key string, generation int64, body []byte) error
	// Revalidate drops every entry recorded under path and advances its
	// generation.
	Revalidate(ctx context.Context, path string) error
}

// NewPageCache returns a Redis-backed cache when an address is configured
// and an in-process cache otherwise.
func NewPageCache(ctx context.Context, cfg config.Cache, log *logger.Logger) (PageCache, error) {
	if cfg.RedisAddress == "" {
		log.Info().Str("func", "cache.NewPageCache").Msg("using in-memory page cache")
		return NewMemoryCache(cfg.TTL), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Err(err).Str("func", "cache.NewPageCache").Str("address", cfg.RedisAddress).Msg("redis is unreachable")
		client.Close()
		return nil, fmt.Errorf("%w: %w", ErrCacheUnavailable, err)
	}

	log.Info().Str("func", "cache.NewPageCache").Str("address", cfg.RedisAddress).Msg("using redis page cache")
	return NewRedisCache(client, cfg.TTL), nil
}
