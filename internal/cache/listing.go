package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ListingCache keeps serialized listing responses in redis for a short time
// so the dashboard tabs do not hammer the database. Keys are built from the
// query tuple, which lets a status transition drop every page of the two
// affected tabs in one call.
type ListingCache struct {
	RDB *redis.Client
	TTL time.Duration
}

func NewListingCache(rdb *redis.Client, ttl time.Duration) *ListingCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &ListingCache{RDB: rdb, TTL: ttl}
}

// DriversListKey builds the cache key for one page of the drivers listing.
func DriversListKey(status string, page, pageSize int) string {
	return fmt.Sprintf("drivers:list:%s:%d:%d", status, page, pageSize)
}

// DriversListPrefix covers every cached page of one status tab.
func DriversListPrefix(status string) string {
	return fmt.Sprintf("drivers:list:%s:", status)
}

func (c *ListingCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.RDB.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *ListingCache) Set(ctx context.Context, key string, val []byte) {
	c.RDB.Set(ctx, key, val, c.TTL)
}

// Invalidate removes every key under the given prefix. Listing keys are few,
// so one SCAN pass per transition is fine.
func (c *ListingCache) Invalidate(ctx context.Context, prefix string) error {
	iter := c.RDB.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.RDB.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
