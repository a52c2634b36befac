package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// SettlementCache implements ports.SettlementCache using Redis. It
// holds completed settlement outcomes keyed by game ID so a re-invoked
// settle call returns the recorded result instead of paying twice.
type SettlementCache struct {
	client *goredis.Client
	prefix string
}

// NewSettlementCache creates a new Redis-backed settlement cache.
func NewSettlementCache(client *goredis.Client) *SettlementCache {
	return &SettlementCache{
		client: client,
		prefix: "settlement:",
	}
}

// Get retrieves a cached settlement record by game ID.
// Returns nil, nil if the key does not exist.
func (c *SettlementCache) Get(ctx context.Context, gameID string) ([]byte, error) {
	val, err := c.client.Get(ctx, c.prefix+gameID).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis settlement get: %w", err)
	}
	return val, nil
}

// Set stores a settlement record with TTL.
func (c *SettlementCache) Set(ctx context.Context, gameID string, value []byte, ttl time.Duration) error {
	err := c.client.Set(ctx, c.prefix+gameID, value, ttl).Err()
	if err != nil {
		return fmt.Errorf("redis settlement set: %w", err)
	}
	return nil
}
