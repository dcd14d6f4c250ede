package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const slotTTL = 30 * time.Second

// SlotCache keeps the booked-slot union per (field, date). The TTL is
// short and every booking write invalidates the key, so a stale read
// only costs an extra conflict rejection, never a double booking.
type SlotCache struct {
	rdb *redis.Client
}

func NewSlotCache(rdb *redis.Client) *SlotCache {
	if rdb == nil {
		return nil
	}
	return &SlotCache{rdb: rdb}
}

func slotKey(fieldID uint, date string) string {
	return fmt.Sprintf("avail:%d:%s", fieldID, date)
}

func (c *SlotCache) Get(ctx context.Context, fieldID uint, date string) ([]string, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, slotKey(fieldID, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *SlotCache) Set(ctx context.Context, fieldID uint, date string, slots []string) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, slotKey(fieldID, date), raw, slotTTL)
}

func (c *SlotCache) Invalidate(ctx context.Context, fieldID uint, date string) {
	if c == nil {
		return
	}
	c.rdb.Del(ctx, slotKey(fieldID, date))
}
