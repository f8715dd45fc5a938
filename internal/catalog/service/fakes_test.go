package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rohitkatore/project-management/internal/catalog/domain"
)

// fakeProjectStore keeps projects in insertion order, mirroring the
// creation-order guarantee of the Postgres repository.
type fakeProjectStore struct {
	projects []domain.Project
	nextID   int
	failWith error
}

func (f *fakeProjectStore) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.nextID++
	p.ID = fmt.Sprintf("p%d", f.nextID)
	p.CreatedAt = time.Now()
	f.projects = append(f.projects, p)
	out := p
	return &out, nil
}

func (f *fakeProjectStore) List(ctx context.Context, offset, limit int) ([]domain.Project, int, error) {
	if f.failWith != nil {
		return nil, 0, f.failWith
	}
	total := len(f.projects)
	if offset >= total {
		return []domain.Project{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	out := make([]domain.Project, end-offset)
	copy(out, f.projects[offset:end])
	return out, total, nil
}

func (f *fakeProjectStore) Get(ctx context.Context, id string) (*domain.Project, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, p := range f.projects {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProjectStore) Delete(ctx context.Context, id string) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	for i, p := range f.projects {
		if p.ID == id {
			f.projects = append(f.projects[:i], f.projects[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeCartStore struct {
	items    []domain.CartItem
	projects *fakeProjectStore
	nextID   int
	failWith error
}

func (f *fakeCartStore) Add(ctx context.Context, projectID, userID string) (*domain.CartItem, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.nextID++
	item := domain.CartItem{
		ID:        fmt.Sprintf("c%d", f.nextID),
		ProjectID: projectID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	f.items = append(f.items, item)
	out := item
	return &out, nil
}

func (f *fakeCartStore) ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]domain.CartItem, 0, len(f.items))
	// newest-first
	for i := len(f.items) - 1; i >= 0; i-- {
		item := f.items[i]
		if item.UserID != userID {
			continue
		}
		if f.projects != nil {
			if p, err := f.projects.Get(ctx, item.ProjectID); err == nil {
				item.Project = p
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeCartStore) Delete(ctx context.Context, id string) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	for i, item := range f.items {
		if item.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCartStore) DeleteDangling(ctx context.Context) (int64, error) {
	if f.failWith != nil {
		return 0, f.failWith
	}
	var kept []domain.CartItem
	var dropped int64
	for _, item := range f.items {
		if f.projects != nil {
			if _, err := f.projects.Get(ctx, item.ProjectID); err != nil {
				dropped++
				continue
			}
		}
		kept = append(kept, item)
	}
	f.items = kept
	return dropped, nil
}

// recordingCache notes cache traffic without storing anything, so the
// service's cache wiring can be asserted independently of Redis.
type recordingCache struct {
	gets        int
	sets        int
	invalidates int
	page        *domain.ProjectPage
}

func (c *recordingCache) Get(ctx context.Context, req domain.PageRequest) (*domain.ProjectPage, bool) {
	c.gets++
	if c.page != nil {
		return c.page, true
	}
	return nil, false
}

func (c *recordingCache) Set(ctx context.Context, req domain.PageRequest, page *domain.ProjectPage) {
	c.sets++
}

func (c *recordingCache) Invalidate(ctx context.Context) {
	c.invalidates++
}
