// Package cache keeps loaded records in redis so views can be rebuilt from
// them without a database read.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Kind 记录类型，用作 key 前缀
type Kind string

const (
	KindPost Kind = "post"
	KindUser Kind = "user"
)

// SnapshotCache 以 JSON 存储已加载的记录；nil 接收者为空操作
type SnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshotCache(client *redis.Client, ttl time.Duration) *SnapshotCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &SnapshotCache{client: client, ttl: ttl}
}

func Key(kind Kind, id int64) string { return fmt.Sprintf("view:%s:%d", kind, id) }

// Get 将缓存的记录解码到 dst，返回是否命中；缓存未命中不算错误
func (c *SnapshotCache) Get(ctx context.Context, kind Kind, id int64, dst any) (bool, error) {
	if c == nil || c.client == nil {
		return false, nil
	}
	data, err := c.client.Get(ctx, Key(kind, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("decode %s: %w", Key(kind, id), err)
	}
	return true, nil
}

func (c *SnapshotCache) Set(ctx context.Context, kind Kind, id int64, record any) error {
	if c == nil || c.client == nil {
		return nil
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, Key(kind, id), payload, c.ttl).Err()
}

func (c *SnapshotCache) Delete(ctx context.Context, kind Kind, ids ...int64) error {
	if c == nil || c.client == nil || len(ids) == 0 {
		return nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = Key(kind, id)
	}
	return c.client.Del(ctx, keys...).Err()
}
