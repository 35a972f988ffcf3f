package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// MetricsCache keeps dashboard snapshots warm in redis. A nil client
// degrades to a no-op so the API works without redis.
type MetricsCache struct {
	RDB *redis.Client
	TTL time.Duration
}

func NewMetricsCache(rdb *redis.Client) *MetricsCache {
	return &MetricsCache{RDB: rdb, TTL: 2 * time.Minute}
}

func snapshotKey(p Period) string {
	return fmt.Sprintf("dashboard:%s:%s", p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
}

// Get returns the cached snapshot or nil on miss.
func (c *MetricsCache) Get(ctx context.Context, p Period) (*DashboardSnapshot, error) {
	if c == nil || c.RDB == nil {
		return nil, nil
	}
	val, err := c.RDB.Get(ctx, snapshotKey(p)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var snap DashboardSnapshot
	if err := json.Unmarshal([]byte(val), &snap); err != nil {
		return nil, nil
	}
	return &snap, nil
}

func (c *MetricsCache) Set(ctx context.Context, p Period, snap *DashboardSnapshot) error {
	if c == nil || c.RDB == nil {
		return nil
	}
	b, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return c.RDB.Set(ctx, snapshotKey(p), b, c.TTL).Err()
}
