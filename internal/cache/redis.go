package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	pageKeyPrefix       = "page:"
	pathKeyPrefix       = "path:"
	generationKeyPrefix = "gen:"
)

// setIfGeneration stores a page and records it under its path only while
// the path generation still equals ARGV[1].
//
// KEYS: generation, page, path set. ARGV: generation, body, ttl in ms.
var setIfGeneration = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
if current ~= tonumber(ARGV[1]) then
	return 0
end
local ttl = tonumber(ARGV[3])
if ttl > 0 then
	redis.call('SET', KEYS[2], ARGV[2], 'PX', ttl)
	redis.call('SADD', KEYS[3], KEYS[2])
	redis.call('PEXPIRE', KEYS[3], ttl)
else
	redis.call('SET', KEYS[2], ARGV[2])
	redis.call('SADD', KEYS[3], KEYS[2])
end
return 1
`)

// revalidatePath drops every page recorded in the path set together with
// the set itself and advances the path generation.
//
// KEYS: path set, generation.
var revalidatePath = redis.NewScript(`
local pages = redis.call('SMEMBERS', KEYS[1])
for _, page in ipairs(pages) do
	redis.call('DEL', page)
end
redis.call('DEL', KEYS[1])
return redis.call('INCR', KEYS[2])
`)

// RedisCache is a [PageCache] shared between server replicas. Every path
// owns a Redis set holding the page keys stored under it and a counter
// holding its generation. Writes and revalidations run as scripts, so a
// revalidation never interleaves with a store.
type RedisCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisCache(client redis.UniversalClient, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	body, err := c.client.Get(ctx, pageKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("error reading cached page: %w", err)
	}

	return body, true, nil
}

func (c *RedisCache) Generation(ctx context.Context, path string) (int64, error) {
	generation, err := c.client.Get(ctx, generationKeyPrefix+path).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("error reading generation of %s: %w", path, err)
	}

	return generation, nil
}

func (c *RedisCache) Set(ctx context.Context, path, key string, generation int64, body []byte) error {
	keys := []string{generationKeyPrefix + path, pageKeyPrefix + key, pathKeyPrefix + path}

	stored, err := setIfGeneration.Run(ctx, c.client, keys, generation, body, c.ttl.Milliseconds()).Int64()
	if err != nil {
		return fmt.Errorf("error caching page: %w", err)
	}
	if stored == 0 {
		return ErrStaleGeneration
	}

	return nil
}

func (c *RedisCache) Revalidate(ctx context.Context, path string) error {
	keys := []string{pathKeyPrefix + path, generationKeyPrefix + path}

	if err := revalidatePath.Run(ctx, c.client, keys).Err(); err != nil {
		return fmt.Errorf("error revalidating %s: %w", path, err)
	}

	return nil
}

// Close releases the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
