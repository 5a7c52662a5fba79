package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"time"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/config"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix    = "rebalance:network:"
	defaultOverviewTTL  = 10 * time.Second
	defaultLocationsTTL = 30 * time.Second
	dialTimeout         = 5 * time.Second
)

// NetworkCache stores read-heavy derived views of the network. Every stock mutation and
// every new route batch must call InvalidateAll.
type NetworkCache interface {
	GetOverview(ctx context.Context) (*domain.NetworkOverview, bool, error)
	SetOverview(ctx context.Context, overview *domain.NetworkOverview) error
	GetLocations(ctx context.Context) ([]domain.Location, bool, error)
	SetLocations(ctx context.Context, locations []domain.Location) error
	InvalidateAll(ctx context.Context) error
}

// Settings names the keys and lifetimes of the cached views. The overview embeds a
// timestamp and route counts, so it expires sooner than the location listing.
type Settings struct {
	KeyPrefix    string
	OverviewTTL  time.Duration
	LocationsTTL time.Duration
}

func (s Settings) withDefaults() Settings {
	if s.KeyPrefix == "" {
		s.KeyPrefix = defaultKeyPrefix
	}
	if s.OverviewTTL <= 0 {
		s.OverviewTTL = defaultOverviewTTL
	}
	if s.LocationsTTL <= 0 {
		s.LocationsTTL = defaultLocationsTTL
	}
	return s
}

// view is one cached projection of the network
type view struct {
	key string
	ttl time.Duration
}

type redisNetworkCache struct {
	client    redis.UniversalClient
	overview  view
	locations view
}

type noopNetworkCache struct{}

// NewNetworkCache returns a redis-backed cache when enabled, otherwise a no-op cache
func NewNetworkCache(cfg config.CacheConfig) (NetworkCache, error) {
	if !cfg.Enabled {
		return &noopNetworkCache{}, nil
	}

	client, err := dialRedis(cfg)
	if err != nil {
		return nil, err
	}

	return NewRedisNetworkCache(client, Settings{
		KeyPrefix:    cfg.KeyPrefix,
		OverviewTTL:  cfg.OverviewTTL,
		LocationsTTL: cfg.LocationsTTL,
	}), nil
}

// NewRedisNetworkCache wraps an existing client
func NewRedisNetworkCache(client redis.UniversalClient, settings Settings) NetworkCache {
	settings = settings.withDefaults()
	return &redisNetworkCache{
		client:    client,
		overview:  view{key: settings.KeyPrefix + "overview", ttl: settings.OverviewTTL},
		locations: view{key: settings.KeyPrefix + "locations", ttl: settings.LocationsTTL},
	}
}

func NewNoopNetworkCache() NetworkCache {
	return &noopNetworkCache{}
}

func dialRedis(cfg config.CacheConfig) (*redis.Client, error) {
	opts, err := redisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	return client, nil
}

// redisOptions prefers REDIS_URL and otherwise assembles the address from host and port
func redisOptions(cfg config.CacheConfig) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		return opts, nil
	}

	host, port := cfg.RedisHost, cfg.RedisPort
	if host == "" {
		host = "127.0.0.1"
	}
	if port == "" {
		port = "6379"
	}

	return &redis.Options{
		Addr:         net.JoinHostPort(host, port),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	}, nil
}

func (c *redisNetworkCache) GetOverview(ctx context.Context) (*domain.NetworkOverview, bool, error) {
	var overview domain.NetworkOverview
	ok, err := c.get(ctx, c.overview, &overview)
	if err != nil || !ok {
		return nil, ok, err
	}
	return &overview, true, nil
}

func (c *redisNetworkCache) SetOverview(ctx context.Context, overview *domain.NetworkOverview) error {
	return c.set(ctx, c.overview, overview)
}

func (c *redisNetworkCache) GetLocations(ctx context.Context) ([]domain.Location, bool, error) {
	var locations []domain.Location
	ok, err := c.get(ctx, c.locations, &locations)
	if err != nil || !ok {
		return nil, ok, err
	}
	return locations, true, nil
}

func (c *redisNetworkCache) SetLocations(ctx context.Context, locations []domain.Location) error {
	return c.set(ctx, c.locations, locations)
}

// InvalidateAll drops both views in one round trip
func (c *redisNetworkCache) InvalidateAll(ctx context.Context) error {
	if err := c.client.Del(ctx, c.overview.key, c.locations.key).Err(); err != nil {
		return fmt.Errorf("redis invalidate network views: %w", err)
	}
	return nil
}

func (c *redisNetworkCache) get(ctx context.Context, v view, dst any) (bool, error) {
	payload, err := c.client.Get(ctx, v.key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %s: %w", v.key, err)
	}

	if err := json.Unmarshal(payload, dst); err != nil {
		return false, fmt.Errorf("decode %s cache: %w", v.key, err)
	}
	return true, nil
}

func (c *redisNetworkCache) set(ctx context.Context, v view, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s cache: %w", v.key, err)
	}

	if err := c.client.Set(ctx, v.key, payload, v.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", v.key, err)
	}
	return nil
}

func (n *noopNetworkCache) GetOverview(ctx context.Context) (*domain.NetworkOverview, bool, error) {
	return nil, false, nil
}

func (n *noopNetworkCache) SetOverview(ctx context.Context, overview *domain.NetworkOverview) error {
	return nil
}

func (n *noopNetworkCache) GetLocations(ctx context.Context) ([]domain.Location, bool, error) {
	return nil, false, nil
}

func (n *noopNetworkCache) SetLocations(ctx context.Context, locations []domain.Location) error {
	return nil
}

func (n *noopNetworkCache) InvalidateAll(ctx context.Context) error {
	return nil
}
