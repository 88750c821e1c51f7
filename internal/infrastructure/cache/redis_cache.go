package cache

import (
	"context"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/ventaplus/ventaplus-api/internal/application/reports"
)

var _ reports.Cache = (*RedisCache)(nil)

// RedisCache adaptador del puerto reports.Cache sobre Redis. Los errores de
// infraestructura se degradan a miss: el caché nunca tumba una petición.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache construye el cliente. addr con formato "host:puerto".
func NewRedisCache(addr, password string, db int) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisCache{client: client}
}

// Ping verifica la conexión al arranque.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close cierra el cliente.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Get retorna el valor cacheado; ok=false en miss o error.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) || err != nil {
		return nil, false
	}
	return val, true
}

// Set guarda el valor con TTL; los errores se ignoran.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	_ = c.client.Set(ctx, key, value, ttl).Err()
}

// Delete invalida una clave; los errores se ignoran.
func (c *RedisCache) Delete(ctx context.Context, key string) {
	_ = c.client.Del(ctx, key).Err()
}
