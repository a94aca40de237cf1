package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aurea-shop/storefront-api/internal/usecase"
)

// RedisOrderStatusCache is a best-effort read-through for order status; the
// order row in MySQL stays authoritative.
type RedisOrderStatusCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisOrderStatusCache(rdb *redis.Client, ttl time.Duration) *RedisOrderStatusCache {
	return &RedisOrderStatusCache{rdb: rdb, ttl: ttl}
}

func statusKey(orderID string) string { return "order:status:" + orderID }

func (r *RedisOrderStatusCache) SetStatus(ctx context.Context, orderID, status string) error {
	return r.rdb.Set(ctx, statusKey(orderID), status, r.ttl).Err()
}

func (r *RedisOrderStatusCache) GetStatus(ctx context.Context, orderID string) (string, bool, error) {
	val, err := r.rdb.Get(ctx, statusKey(orderID)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

var _ usecase.OrderCache = (*RedisOrderStatusCache)(nil)
