package blob

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/rpggio/readycheck/internal/repository"
)

// Redis stores values as plain strings under "namespace:key".
type Redis struct {
	client    redis.UniversalClient
	namespace string
}

// NewRedis wraps an existing client.
func NewRedis(client redis.UniversalClient, namespace string) (*Redis, error) {
	if client == nil || strings.TrimSpace(namespace) == "" {
		return nil, repository.ErrInvalidInput
	}
	return &Redis{client: client, namespace: namespace}, nil
}

// DialRedis connects to addr and verifies the connection with PING.
func DialRedis(ctx context.Context, addr, namespace string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return NewRedis(client, namespace)
}

func (r *Redis) key(key string) string {
	return r.namespace + ":" + key
}

// Get returns the value stored under key.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %q: %w", key, err)
	}
	return data, nil
}

// Set stores value under key without expiry.
func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

// Close releases the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}

var _ repository.BlobRepository = (*Redis)(nil)
