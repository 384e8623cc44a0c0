package query

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const availabilityTTL = 30 * time.Second

// RedisAvailabilityCache keeps the committed available counter per show under
// a short TTL, so hot availability reads skip the database.
type RedisAvailabilityCache struct {
	client redis.UniversalClient
}

func NewRedisAvailabilityCache(client redis.UniversalClient) *RedisAvailabilityCache {
	return &RedisAvailabilityCache{
		client: client,
	}
}

func (c *RedisAvailabilityCache) GetAvailability(ctx context.Context, showID int64) (int, bool, error) {
	available, err := c.client.Get(ctx, availabilityKey(showID)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}

		return 0, false, err
	}

	return available, true, nil
}

func (c *RedisAvailabilityCache) SetAvailability(ctx context.Context, showID int64, available int) error {
	return c.client.Set(ctx, availabilityKey(showID), available, availabilityTTL).Err()
}

func availabilityKey(showID int64) string {
	return fmt.Sprintf("show_avail:%d", showID)
}
