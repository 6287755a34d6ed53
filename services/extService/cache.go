package extService

import (
	"context"
	"log"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// ResponseCache stores raw provider responses keyed by request.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

type MemoryCache struct {
	cache *cache.Cache
}

func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{cache: cache.New(ttl, ttl*2)}
}

func (m *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	cached, found := m.cache.Get(key)
	if !found {
		return nil, false
	}
	body, ok := cached.([]byte)
	return body, ok
}

func (m *MemoryCache) Set(_ context.Context, key string, value []byte) {
	m.cache.Set(key, value, cache.DefaultExpiration)
}

// RedisCache shares cached responses between instances.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

func NewRedisCache(redisURL string, ttl time.Duration) (*RedisCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	return &RedisCache{client: redis.NewClient(opts), ttl: ttl, prefix: "cfbd:"}, nil
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	body, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("redis cache get %s: %v", key, err)
		}
		return nil, false
	}
	return body, true
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte) {
	if err := r.client.Set(ctx, r.prefix+key, value, r.ttl).Err(); err != nil {
		log.Printf("redis cache set %s: %v", key, err)
	}
}

func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}
