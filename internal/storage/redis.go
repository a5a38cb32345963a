package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/frameloop/frameloop/internal/model"
)

// RedisBackend keeps the schedule document under a single key. The client is
// owned by the backend rather than a package-level global so a composition
// root can construct and tear it down explicitly.
type RedisBackend struct {
	client *redis.Client
	key    string
}

func NewRedisBackend(address, username, password, key string) *RedisBackend {
	client := redis.NewClient(&redis.Options{
		Addr:     address,
		Username: username,
		Password: password,
		DB:       0,
	})
	return &RedisBackend{client: client, key: key}
}

func (r *RedisBackend) Load(ctx context.Context) ([]model.Media, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage: redis get %s: %w", r.key, err)
	}
	return Decode(data)
}

func (r *RedisBackend) Save(ctx context.Context, entries []model.Media) error {
	data, err := Encode(entries)
	if err != nil {
		return err
	}
	// The schedule is the source of truth, never a cache: no expiration.
	if err := r.client.Set(ctx, r.key, data, 0).Err(); err != nil {
		return fmt.Errorf("storage: redis set %s: %w", r.key, err)
	}
	return nil
}

func (r *RedisBackend) Close() error {
	return r.client.Close()
}
