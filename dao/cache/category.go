package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"Scribe/types"

	"github.com/redis/go-redis/v9"
)

// 分类和标签列表的统一缓存有效期
const categoryTTL = 30 * time.Minute

const categoryListKey = "category:list"

// CategoryCache 分类/标签列表缓存
// redis 为空时所有读取都视为未命中，写入为空操作，便于测试环境不依赖 redis
type CategoryCache struct {
	redis *redis.Client
}

func NewCategoryCache(redis *redis.Client) *CategoryCache {
	return &CategoryCache{redis: redis}
}

func (c *CategoryCache) tagsKey(category string) string {
	return fmt.Sprintf("category:tags:%s", category)
}

// GetCategoryList 读取分类列表缓存，未命中返回 nil
func (c *CategoryCache) GetCategoryList(ctx context.Context) []types.CategoryItem {
	if c == nil || c.redis == nil {
		return nil
	}
	data, err := c.redis.Get(ctx, categoryListKey).Bytes()
	if err != nil {
		return nil
	}
	var items []types.CategoryItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	return items
}

func (c *CategoryCache) SetCategoryList(ctx context.Context, items []types.CategoryItem) {
	if c == nil || c.redis == nil {
		return
	}
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	c.redis.Set(ctx, categoryListKey, data, categoryTTL)
}

// GetCategoryTags 读取分类下的标签列表缓存，未命中返回 nil
func (c *CategoryCache) GetCategoryTags(ctx context.Context, category string) *types.CategoryTagsResponse {
	if c == nil || c.redis == nil {
		return nil
	}
	data, err := c.redis.Get(ctx, c.tagsKey(category)).Bytes()
	if err != nil {
		return nil
	}
	var resp types.CategoryTagsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil
	}
	return &resp
}

func (c *CategoryCache) SetCategoryTags(ctx context.Context, category string, resp *types.CategoryTagsResponse) {
	if c == nil || c.redis == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	c.redis.Set(ctx, c.tagsKey(category), data, categoryTTL)
}

// Invalidate 分类或标签变更后的失效钩子
func (c *CategoryCache) Invalidate(ctx context.Context, categories ...string) {
	if c == nil || c.redis == nil {
		return
	}
	keys := []string{categoryListKey}
	for _, category := range categories {
		keys = append(keys, c.tagsKey(category))
	}
	c.redis.Del(ctx, keys...)
}
