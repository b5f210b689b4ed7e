package kvstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"vendortrack/pkg/sentinel"
)

// Redis persists keys through a Redis instance. All keys live under a
// namespace prefix so one instance can host multiple deployments.
type Redis struct {
	client    redis.Cmdable
	namespace string
}

// NewRedis wraps a Redis client. The namespace may be empty.
func NewRedis(client redis.Cmdable, namespace string) *Redis {
	return &Redis{client: client, namespace: namespace}
}

func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, r.qualify(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", sentinel.ErrNotFound
		}
		return "", fmt.Errorf("redis get %q: %w", key, err)
	}
	return value, nil
}

func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.qualify(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.qualify(key)).Err(); err != nil {
		return fmt.Errorf("redis delete %q: %w", key, err)
	}
	return nil
}

func (r *Redis) List(ctx context.Context, prefix string) ([]string, error) {
	var (
		keys   []string
		cursor uint64
	)
	match := r.qualify(prefix) + "*"
	for {
		batch, next, err := r.client.Scan(ctx, cursor, match, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("redis scan %q: %w", prefix, err)
		}
		for _, key := range batch {
			keys = append(keys, strings.TrimPrefix(key, r.namespacePrefix()))
		}
		cursor = next
		if cursor == 0 {
			return keys, nil
		}
	}
}

func (r *Redis) qualify(key string) string {
	return r.namespacePrefix() + key
}

func (r *Redis) namespacePrefix() string {
	if r.namespace == "" {
		return ""
	}
	return r.namespace + ":"
}
