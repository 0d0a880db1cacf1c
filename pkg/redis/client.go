package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/onurcolak/gateway-dashboard/environments"
	"github.com/onurcolak/gateway-dashboard/pkg/logger"
)

type Client struct {
	client valkey.Client
	ttl    time.Duration
}

const viewStateKeyPrefix = "view_state:"

func NewRedisClient(cfg environments.RedisConfig) (*Client, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{fmt.Sprintf("%s:%s", cfg.Host, cfg.Port)},
		Password:    cfg.Password,
		SelectDB:    cfg.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Valkey client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()

		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Infof("Connected to Redis (via Valkey client)")

	ttl := cfg.ViewStateTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Client{client: client, ttl: ttl}, nil
}

func viewStateKey(viewID, screen string) string {
	return fmt.Sprintf("%s%s:%s", viewStateKeyPrefix, viewID, screen)
}

// CacheViewState stores the encoded snapshot of one screen of one view.
func (c *Client) CacheViewState(ctx context.Context, viewID, screen string, snapshot []byte) error {
	key := viewStateKey(viewID, screen)

	err := c.client.Do(ctx, c.client.B().Set().Key(key).Value(string(snapshot)).Ex(c.ttl).Build()).Error()
	if err != nil {
		return fmt.Errorf("failed to cache view state: %w", err)
	}

	logger.Debugf("Cached view state %s in Redis", key)

	return nil
}

// GetCachedViewState returns nil, nil when nothing is cached for the screen.
func (c *Client) GetCachedViewState(ctx context.Context, viewID, screen string) ([]byte, error) {
	result := c.client.Do(ctx, c.client.B().Get().Key(viewStateKey(viewID, screen)).Build())
	if result.Error() != nil {
		if valkey.IsValkeyNil(result.Error()) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached view state: %w", result.Error())
	}

	data, err := result.ToString()
	if err != nil {
		return nil, fmt.Errorf("failed to read cached view state: %w", err)
	}

	return []byte(data), nil
}

// ClearViewStates drops every cached screen of a view and reports how many
// keys were removed.
func (c *Client) ClearViewStates(ctx context.Context, viewID string) (int, error) {
	pattern := fmt.Sprintf("%s%s:*", viewStateKeyPrefix, viewID)

	var keys []string
	var cursor uint64
	for {
		result := c.client.Do(ctx, c.client.B().Scan().Cursor(cursor).Match(pattern).Count(100).Build())
		if result.Error() != nil {
			return 0, fmt.Errorf("failed to scan cache keys: %w", result.Error())
		}

		scanResult, err := result.AsScanEntry()
		if err != nil {
			return 0, fmt.Errorf("failed to parse scan result: %w", err)
		}

		keys = append(keys, scanResult.Elements...)
		cursor = scanResult.Cursor

		if cursor == 0 {
			break
		}
	}

	if len(keys) == 0 {
		return 0, nil
	}

	removed, err := c.client.Do(ctx, c.client.B().Del().Key(keys...).Build()).AsInt64()
	if err != nil {
		return 0, fmt.Errorf("failed to delete view state keys: %w", err)
	}

	return int(removed), nil
}

func (c *Client) Close() error {
	c.client.Close()
	return nil
}

func (c *Client) Ping(ctx context.Context) error {
	return c.client.Do(ctx, c.client.B().Ping().Build()).Error()
}
