package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aurea-shop/storefront-api/internal/cart"
)

// RedisCartStore persists session carts as JSON, so a cart survives a
// process restart. TTL 0 keeps carts indefinitely, matching the "no expiry"
// cart lifecycle; a positive TTL is refreshed on every save.
type RedisCartStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCartStore(rdb *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{rdb: rdb, ttl: ttl}
}

func cartKey(sessionID string) string { return "cart:" + sessionID }

func (s *RedisCartStore) Load(ctx context.Context, sessionID string) (cart.Cart, error) {
	raw, err := s.rdb.Get(ctx, cartKey(sessionID)).Bytes()
	if err == redis.Nil {
		return cart.Cart{}, nil
	}
	if err != nil {
		return cart.Cart{}, fmt.Errorf("load cart: %w", err)
	}
	var c cart.Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return cart.Cart{}, fmt.Errorf("decode cart: %w", err)
	}
	return c, nil
}

func (s *RedisCartStore) Save(ctx context.Context, sessionID string, c cart.Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	return s.rdb.Set(ctx, cartKey(sessionID), raw, s.ttl).Err()
}

func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	return s.rdb.Del(ctx, cartKey(sessionID)).Err()
}

var _ cart.Store = (*RedisCartStore)(nil)
