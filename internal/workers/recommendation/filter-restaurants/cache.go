// internal/workers/recommendation/filter-restaurants/cache.go
package filterrestaurants

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const reasonKeyPrefix = "reason:"

// ReasonCache stores AI-generated reasons per restaurant.
type ReasonCache interface {
	Get(ctx context.Context, restaurantID int) (string, bool, error)
	Set(ctx context.Context, restaurantID int, reason string) error
}

type RedisReasonCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisReasonCache(client *redis.Client, ttl time.Duration) *RedisReasonCache {
	return &RedisReasonCache{client: client, ttl: ttl}
}

func reasonKey(restaurantID int) string {
	return reasonKeyPrefix + strconv.Itoa(restaurantID)
}

// Get reports a miss, not an error, for absent keys.
func (c *RedisReasonCache) Get(ctx context.Context, restaurantID int) (string, bool, error) {
	val, err := c.client.Get(ctx, reasonKey(restaurantID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *RedisReasonCache) Set(ctx context.Context, restaurantID int, reason string) error {
	return c.client.Set(ctx, reasonKey(restaurantID), reason, c.ttl).Err()
}
