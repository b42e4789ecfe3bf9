package redis

import (
	"context"
	"fmt"
	"riftview/pkg/config"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is a thin wrapper over the go-redis client.
type RedisClient struct {
	*redis.Client
}

// NewClient creates a Redis client from the configuration and verifies the connection.
func NewClient(cfg config.RedisConfig) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Host + ":" + cfg.Port,
		Password:     cfg.Password,
		DB:           0,
		MaxRetries:   3,
		PoolSize:     100,
		MinIdleConns: 10,
		PoolTimeout:  30 * time.Second,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("couldn't connect to redis: %w", err)
	}

	return &RedisClient{Client: client}, nil
}

// Close the client connection.
func (r *RedisClient) Close() error {
	return r.Client.Close()
}

// Get wrapper to return the Result directly.
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	return r.Client.Get(ctx, key).Result()
}

// Set wrapper to already return the .Err()
func (r *RedisClient) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return r.Client.Set(ctx, key, value, ttl).Err()
}

// GetKeysByPrefix returns every key matching the given prefix.
func (r *RedisClient) GetKeysByPrefix(ctx context.Context, prefix string) ([]string, error) {
	var (
		cursor uint64
		keys   []string
	)

	for {
		batch, next, err := r.Client.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return nil, err
		}

		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			break
		}
	}

	return keys, nil
}

// DeleteByPrefix removes every key matching the given prefix.
func (r *RedisClient) DeleteByPrefix(ctx context.Context, prefix string) error {
	keys, err := r.GetKeysByPrefix(ctx, prefix)
	if err != nil {
		return err
	}

	if len(keys) == 0 {
		return nil
	}

	return r.Client.Del(ctx, keys...).Err()
}
