package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rohitkatore/project-management/internal/catalog/domain"
)

func setupCache(t *testing.T) (*PageCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewPageCache(client), mr
}

func samplePage(total int) *domain.ProjectPage {
	return &domain.ProjectPage{
		Projects: []domain.Project{
			{ID: "p1", Title: "First", Category: "Demo", Author: "alice", ImageURL: "https://example.com/1.png"},
		},
		Pagination: domain.Paginate(domain.NewPageRequest(1, 10), total),
	}
}

func TestPageCache_MissThenHit(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()
	req := domain.NewPageRequest(1, 10)

	_, ok := c.Get(ctx, req)
	require.False(t, ok)

	c.Set(ctx, req, samplePage(1))

	got, ok := c.Get(ctx, req)
	require.True(t, ok)
	assert.Equal(t, 1, got.Pagination.Total)
	require.Len(t, got.Projects, 1)
	assert.Equal(t, "p1", got.Projects[0].ID)
}

func TestPageCache_KeyedByWindow(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	c.Set(ctx, domain.NewPageRequest(1, 10), samplePage(1))

	_, ok := c.Get(ctx, domain.NewPageRequest(2, 10))
	assert.False(t, ok, "different page must not hit")

	_, ok = c.Get(ctx, domain.NewPageRequest(1, 5))
	assert.False(t, ok, "different limit must not hit")
}

func TestPageCache_InvalidateBumpsVersion(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()
	req := domain.NewPageRequest(1, 10)

	c.Set(ctx, req, samplePage(1))
	c.Invalidate(ctx)

	_, ok := c.Get(ctx, req)
	assert.False(t, ok, "window cached before a write must not be served after it")

	// fresh writes under the new version are served again
	c.Set(ctx, req, samplePage(2))
	got, ok := c.Get(ctx, req)
	require.True(t, ok)
	assert.Equal(t, 2, got.Pagination.Total)
}

func TestPageCache_ExpiresWithTTL(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()
	req := domain.NewPageRequest(1, 10)

	c.Set(ctx, req, samplePage(1))
	mr.FastForward(pageTTL * 2)

	_, ok := c.Get(ctx, req)
	assert.False(t, ok)
}

func TestPageCache_RedisDownDegradesToMiss(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()
	req := domain.NewPageRequest(1, 10)

	mr.Close()

	_, ok := c.Get(ctx, req)
	assert.False(t, ok)
	// Set and Invalidate must not panic either
	c.Set(ctx, req, samplePage(1))
	c.Invalidate(ctx)
}
