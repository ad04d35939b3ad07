package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss возвращается Get, когда ключа нет или его TTL истёк.
var ErrMiss = errors.New("cache: key not found")

// Cache — протухающее key-value хранилище. Единственная реализация —
// Redis, интерфейс нужен для подмены в тестах.
type Cache interface {
	// Get возвращает значение ключа или ErrMiss.
	Get(ctx context.Context, key string) (string, error)

	// Set записывает значение с временем жизни. По истечении TTL
	// ключ удаляется самим хранилищем, отдельной уборки нет.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Del немедленно удаляет ключ.
	Del(ctx context.Context, key string) error

	// Ping проверяет соединение (для /status).
	Ping(ctx context.Context) error
}

type redisCache struct {
	rdb *redis.Client
}

// NewRedisCache оборачивает готовый redis-клиент.
func NewRedisCache(rdb *redis.Client) Cache {
	return &redisCache{rdb: rdb}
}

func (c *redisCache) Get(ctx context.Context, key string) (string, error) {
	v, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrMiss
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (c *redisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

func (c *redisCache) Del(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err()
}

func (c *redisCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}
