package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func (c *Cache) Client() *redis.Client {
	return c.client
}

// AcquireScanLock takes a short per-ticket lock so two gates scanning the
// same QR at once cannot both observe a valid ticket before one consumes it.
func (c *Cache) AcquireScanLock(ctx context.Context, ticketID string, ttl time.Duration) (bool, error) {
	res := c.client.SetNX(ctx, "scan:"+ticketID, 1, ttl)
	return res.Val(), res.Err()
}

func (c *Cache) ReleaseScanLock(ctx context.Context, ticketID string) error {
	return c.client.Del(ctx, "scan:"+ticketID).Err()
}
