package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chug2k/pickleball-booking/internal/logger"
)

// Cache is a small JSON get/set layer over Redis. Lookups that fail for any
// reason behave like misses so callers can always fall through to Postgres.
type Cache struct {
	client *redis.Client
}

func New(addr string) *Cache {
	return &Cache{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
	}
}

func NewWithClient(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// GetJSON reads key into dest. The bool reports whether the key was found.
func (c *Cache) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		logger.Errorf("Bad cache payload for %s: %v", key, err)
		return false, nil
	}

	return true, nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *Cache) Close() error {
	return c.client.Close()
}
