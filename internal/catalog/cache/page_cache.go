package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rohitkatore/project-management/internal/catalog/domain"
)

const (
	versionKey = "catalog:projects:ver" // bumped on every project write
	keyPrefix  = "catalog:projects:"
	pageTTL    = 30 * time.Second
)

// PageCache is a read-through Redis cache for listing windows. Keys
// embed a version counter that is bumped on every project create or
// delete, so a window cached before a write can never be served after
// it. Redis errors degrade to a cache miss.
type PageCache struct {
	client *redis.Client
}

func NewPageCache(client *redis.Client) *PageCache {
	return &PageCache{client: client}
}

func (c *PageCache) key(ctx context.Context, req domain.PageRequest) (string, error) {
	ver, err := c.client.Get(ctx, versionKey).Result()
	if err != nil {
		if err == redis.Nil {
			ver = "0"
		} else {
			return "", err
		}
	}
	return fmt.Sprintf("%sv%s:page:%d:limit:%d", keyPrefix, ver, req.Page, req.Limit), nil
}

func (c *PageCache) Get(ctx context.Context, req domain.PageRequest) (*domain.ProjectPage, bool) {
	key, err := c.key(ctx, req)
	if err != nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var page domain.ProjectPage
	if err := json.Unmarshal(payload, &page); err != nil {
		return nil, false
	}
	return &page, true
}

func (c *PageCache) Set(ctx context.Context, req domain.PageRequest, page *domain.ProjectPage) {
	key, err := c.key(ctx, req)
	if err != nil {
		return
	}

	payload, err := json.Marshal(page)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, payload, pageTTL).Err(); err != nil {
		slog.Debug("page cache set failed", "key", key, "error", err)
	}
}

// Invalidate bumps the version counter; stale windows expire via TTL.
func (c *PageCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, versionKey).Err(); err != nil {
		slog.Debug("page cache invalidate failed", "error", err)
	}
}
