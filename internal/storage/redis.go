package storage

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) ReviewMarkerKey(orderID, customerID int) string {
	return "review:" + strconv.Itoa(orderID) + ":" + strconv.Itoa(customerID)
}

func (c *RedisCache) Exists(ctx context.Context, key string) (bool, error) {
	res, err := c.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (c *RedisCache) SetMarker(ctx context.Context, key string) error {
	return c.Client.Set(ctx, key, "1", c.TTL).Err()
}

func dailyKey(date string) string {
	return "analytics:daily:" + date
}

// IncrementItemScore bumps a menu item's count on today's leaderboard.
// Entries expire after a week.
func (c *RedisCache) IncrementItemScore(ctx context.Context, date string, menuItemID, quantity int) error {
	key := dailyKey(date)
	if err := c.Client.ZIncrBy(ctx, key, float64(quantity), strconv.Itoa(menuItemID)).Err(); err != nil {
		return err
	}
	return c.Client.Expire(ctx, key, 7*24*time.Hour).Err()
}

// TopItems returns the day's leaderboard, highest score first. The
// members are menu item ids.
func (c *RedisCache) TopItems(ctx context.Context, date string, limit int) (map[int]float64, error) {
	results, err := c.Client.ZRevRangeWithScores(ctx, dailyKey(date), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	scores := make(map[int]float64, len(results))
	for _, member := range results {
		id, err := strconv.Atoi(member.Member.(string))
		if err != nil {
			continue
		}
		scores[id] = member.Score
	}
	return scores, nil
}
