// Package cache keeps JSON-encoded API responses in valkey under a shared key prefix.
package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valkey-io/valkey-go"
)

type Config struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
	Prefix   string
}

// Cache is a response cache. Entries expire after the configured TTL and can
// be dropped all at once with Flush.
type Cache struct {
	client valkey.Client
	ttl    time.Duration
	prefix string
	logger *slog.Logger
}

// New connects to valkey. Client-side caching is disabled: entries are
// rewritten wholesale and flushed by prefix.
func New(cfg Config, logger *slog.Logger) (*Cache, error) {
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, errors.New("cache: addr is empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress:  []string{addr},
		Password:     cfg.Password,
		SelectDB:     cfg.DB,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create valkey client: %w", err)
	}
	return &Cache{client: client, ttl: cfg.TTL, prefix: cfg.Prefix, logger: logger}, nil
}

func (c *Cache) key(key string) string { return c.prefix + key }

// Ping checks the connection.
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Do(ctx, c.client.B().Ping().Build()).Error(); err != nil {
		return fmt.Errorf("ping valkey: %w", err)
	}
	return nil
}

// Get decodes the entry stored under key into dst. It reports false on a miss.
func (c *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := c.client.Do(ctx, c.client.B().Get().Key(c.key(key)).Build()).AsBytes()
	if valkey.IsValkeyNil(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("cache decode %s: %w", key, err)
	}
	return true, nil
}

// Set stores value under key for the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode %s: %w", key, err)
	}
	set := c.client.B().Set().Key(c.key(key)).Value(valkey.BinaryString(payload))
	cmd := set.Build()
	if c.ttl > 0 {
		cmd = set.Ex(c.ttl).Build()
	}
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("cache set %s: %w", key, err)
	}
	return nil
}

// Flush deletes every entry under the prefix and returns how many were removed.
// SCAN keeps the server responsive on large keyspaces.
func (c *Cache) Flush(ctx context.Context) (int, error) {
	var deleted int
	var cursor uint64
	for {
		cmd := c.client.B().Scan().Cursor(cursor).Match(c.prefix + "*").Count(100).Build()
		result, err := c.client.Do(ctx, cmd).AsScanEntry()
		if err != nil {
			return deleted, fmt.Errorf("scan cache keys: %w", err)
		}
		if len(result.Elements) > 0 {
			n, err := c.client.Do(ctx, c.client.B().Del().Key(result.Elements...).Build()).AsInt64()
			if err != nil {
				return deleted, fmt.Errorf("delete cache keys: %w", err)
			}
			deleted += int(n)
		}
		cursor = result.Cursor
		if cursor == 0 {
			break
		}
	}
	c.logger.Info("cache_flushed", slog.String("prefix", c.prefix), slog.Int("deleted", deleted))
	return deleted, nil
}

func (c *Cache) Close() {
	c.client.Close()
}
