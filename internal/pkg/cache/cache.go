package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// key 前缀，便于批量失效
const (
	contentListPrefix   = "catalog:content:list:"
	contentDetailPrefix = "catalog:content:detail:"
)

// Cache 公开目录的 Redis 读缓存
// 管理端的内容变更会使全部内容缓存失效
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// ContentListKey 列表缓存 key（按完整查询参数区分）
func ContentListKey(search string, page, limit int, sort, order string) string {
	return fmt.Sprintf("%s%s:%d:%d:%s:%s", contentListPrefix, search, page, limit, sort, order)
}

// ContentDetailKey 详情缓存 key
func ContentDetailKey(slug string) string {
	return contentDetailPrefix + slug
}

// Get 读取缓存并反序列化到 dest，未命中返回 false
func (c *Cache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set 序列化并写入缓存
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// InvalidateContent 内容发生变更后清空全部内容缓存
func (c *Cache) InvalidateContent(ctx context.Context) error {
	for _, pattern := range []string{contentListPrefix + "*", contentDetailPrefix + "*"} {
		iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
		for iter.Next(ctx) {
			if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
				return err
			}
		}
		if err := iter.Err(); err != nil {
			return err
		}
	}
	return nil
}
