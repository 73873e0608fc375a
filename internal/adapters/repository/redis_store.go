package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
)

var _ domain.KeyValueStore = (*RedisStore)(nil)

const DefaultRedisPrefix = "kanso"

type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisStore{
		client: client,
		prefix: prefix,
	}
}

func (r *RedisStore) cacheKey(key string) string {
	return fmt.Sprintf("%s:%s", r.prefix, key)
}

func (r *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.client.Get(ctx, r.cacheKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: redis get %s: %v", domain.ErrStoreUnavailable, key, err)
	}
	return val, true, nil
}

// Set writes without expiry: snapshots live until overwritten.
func (r *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.cacheKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("%w: redis set %s: %v", domain.ErrStoreUnavailable, key, err)
	}
	return nil
}
