package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"resumatch-utils/internal/config"
)

const pageKeyPrefix = "jobpage:"

// PageCache stores fetched job pages in Redis so repeated analyses of the
// same posting do not hit the remote site again
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache connects to Redis using the fetcher and redis config sections.
// Returns nil without error when caching is disabled.
func NewPageCache(cfg *config.Config) (*PageCache, error) {
	if !cfg.Fetcher.CacheEnabled {
		return nil, nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	opts.DialTimeout = cfg.Redis.Timeout
	opts.ReadTimeout = cfg.Redis.Timeout
	opts.WriteTimeout = cfg.Redis.Timeout

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.Timeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &PageCache{
		client: client,
		ttl:    cfg.Fetcher.CacheTTL,
	}, nil
}

// Get returns the cached text for a URL, or false when absent
func (c *PageCache) Get(ctx context.Context, url string) (string, bool) {
	if c == nil {
		return "", false
	}
	text, err := c.client.Get(ctx, pageKeyPrefix+url).Result()
	if err != nil {
		return "", false
	}
	return text, true
}

// Set stores the text for a URL with the configured TTL
func (c *PageCache) Set(ctx context.Context, url, text string) error {
	if c == nil {
		return nil
	}
	return c.client.Set(ctx, pageKeyPrefix+url, text, c.ttl).Err()
}

// Ping checks Redis connectivity
func (c *PageCache) Ping(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("page cache is disabled")
	}
	return c.client.Ping(ctx).Err()
}

// Close releases the Redis connection
func (c *PageCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
