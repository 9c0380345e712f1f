package middleware

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRateLimiterStore(t *testing.T) {
	addr := os.Getenv("RECIPES_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("RECIPES_TEST_REDIS_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())

	logger := zerolog.Nop()
	store := NewRedisRateLimiterStore(client, 2, time.Minute, &logger)
	identifier := uuid.NewString()
	t.Cleanup(func() { client.Del(context.Background(), rateLimitKeyPrefix+identifier) })

	for i := 0; i < 2; i++ {
		allowed, err := store.Allow(identifier)
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := store.Allow(identifier)
	require.NoError(t, err)
	assert.False(t, allowed)

	ttl, err := client.TTL(context.Background(), rateLimitKeyPrefix+identifier).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestRedisRateLimiterStore_FailsOpen(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })

	logger := zerolog.Nop()
	store := NewRedisRateLimiterStore(client, 1, time.Minute, &logger)

	for i := 0; i < 3; i++ {
		allowed, err := store.Allow("client")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
}
