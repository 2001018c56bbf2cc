package storage

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newTestCache(t *testing.T) *RedisCache {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCache(client, time.Hour)
}

func TestRedisCache_ReviewMarker(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	key := cache.ReviewMarkerKey(42, 7)
	assert.Equal(t, "review:42:7", key)

	exists, err := cache.Exists(ctx, key)
	assert.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, cache.SetMarker(ctx, key))

	exists, err = cache.Exists(ctx, key)
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestRedisCache_ItemScores(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	assert.NoError(t, cache.IncrementItemScore(ctx, "2026-08-28", 3, 2))
	assert.NoError(t, cache.IncrementItemScore(ctx, "2026-08-28", 3, 4))
	assert.NoError(t, cache.IncrementItemScore(ctx, "2026-08-28", 1, 5))

	scores, err := cache.TopItems(ctx, "2026-08-28", 10)
	assert.NoError(t, err)
	assert.Equal(t, float64(6), scores[3])
	assert.Equal(t, float64(5), scores[1])

	scores, err = cache.TopItems(ctx, "2026-08-28", 1)
	assert.NoError(t, err)
	assert.Len(t, scores, 1)
	assert.Equal(t, float64(6), scores[3])
}

func TestRedisCache_TopItems_EmptyDay(t *testing.T) {
	cache := newTestCache(t)

	scores, err := cache.TopItems(context.Background(), "2026-01-01", 10)
	assert.NoError(t, err)
	assert.Empty(t, scores)
}
