package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/config"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestNetworkCacheRoundTrip(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	c := NewRedisNetworkCache(client, Settings{KeyPrefix: "test:network:", OverviewTTL: time.Minute})
	require.NoError(t, c.InvalidateAll(ctx))

	_, ok, err := c.GetOverview(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	overview := &domain.NetworkOverview{
		Stats:       domain.NetworkStats{TotalLocations: 5, ActiveRoutes: 7, CriticalShortages: 2, TotalValue: 54150},
		Alerts:      []domain.CriticalAlert{{LocationID: "store-downtown", ItemName: "Bluetooth Speaker", Stock: 8, Demand: 25}},
		Headline:    "2 critical alerts",
		GeneratedAt: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	}
	require.NoError(t, c.SetOverview(ctx, overview))

	got, ok, err := c.GetOverview(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, overview, got)

	locations := []domain.Location{{ID: "a", Name: "A", Kind: domain.KindStore, Inventory: []domain.InventoryLine{{ItemName: "X", Stock: 1, Optimal: 2}}}}
	require.NoError(t, c.SetLocations(ctx, locations))
	gotLocations, ok, err := c.GetLocations(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, locations, gotLocations)

	require.NoError(t, c.InvalidateAll(ctx))
	_, ok, _ = c.GetOverview(ctx)
	assert.False(t, ok)
	_, ok, _ = c.GetLocations(ctx)
	assert.False(t, ok)
}

func TestNewNetworkCacheDisabledIsNoop(t *testing.T) {
	c, err := NewNetworkCache(config.CacheConfig{Enabled: false})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, c.SetOverview(ctx, &domain.NetworkOverview{}))
	_, ok, err := c.GetOverview(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisOptions(t *testing.T) {
	opts, err := redisOptions(config.CacheConfig{RedisHost: "cache", RedisPort: "6380", RedisDB: 2})
	require.NoError(t, err)
	assert.Equal(t, "cache:6380", opts.Addr)
	assert.Equal(t, 2, opts.DB)

	opts, err = redisOptions(config.CacheConfig{RedisURL: "redis://:secret@example.com:6379/3"})
	require.NoError(t, err)
	assert.Equal(t, "example.com:6379", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 3, opts.DB)

	_, err = redisOptions(config.CacheConfig{RedisURL: "://bad"})
	assert.Error(t, err)

	opts, err = redisOptions(config.CacheConfig{})
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:6379", opts.Addr)
}

func TestRedisNetworkCacheViewTTLs(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()

	ctx := context.Background()
	c := NewRedisNetworkCache(client, Settings{KeyPrefix: "test:ttl:", OverviewTTL: time.Minute, LocationsTTL: time.Hour})
	require.NoError(t, c.InvalidateAll(ctx))
	defer c.InvalidateAll(ctx)

	require.NoError(t, c.SetOverview(ctx, &domain.NetworkOverview{Headline: "ok"}))
	require.NoError(t, c.SetLocations(ctx, []domain.Location{{ID: "a"}}))

	overviewTTL := client.TTL(ctx, "test:ttl:overview").Val()
	locationsTTL := client.TTL(ctx, "test:ttl:locations").Val()
	assert.LessOrEqual(t, overviewTTL, time.Minute)
	assert.Greater(t, overviewTTL, time.Duration(0))
	assert.Greater(t, locationsTTL, time.Minute)
}

func TestSettingsDefaults(t *testing.T) {
	s := Settings{}.withDefaults()
	assert.Equal(t, "rebalance:network:", s.KeyPrefix)
	assert.Equal(t, 10*time.Second, s.OverviewTTL)
	assert.Equal(t, 30*time.Second, s.LocationsTTL)

	c := NewRedisNetworkCache(nil, Settings{KeyPrefix: "tenant-a:"}).(*redisNetworkCache)
	assert.Equal(t, "tenant-a:overview", c.overview.key)
	assert.Equal(t, "tenant-a:locations", c.locations.key)
	assert.Equal(t, 30*time.Second, c.locations.ttl)
}
