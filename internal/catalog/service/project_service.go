package service

import (
	"context"

	"github.com/rohitkatore/project-management/internal/catalog/domain"
)

// ProjectService owns the injected project store handle and the
// listing contract over it.
type ProjectService struct {
	store ProjectStore
	cache PageCache // nil disables caching
}

func NewProjectService(store ProjectStore, cache PageCache) *ProjectService {
	return &ProjectService{store: store, cache: cache}
}

// Create persists a new project. Fields are accepted as given; empty
// title or description is not rejected at this layer.
func (s *ProjectService) Create(ctx context.Context, fields domain.Project) (*domain.Project, error) {
	p, err := s.store.Create(ctx, fields)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return p, nil
}

// ListPage returns one listing window plus pagination metadata. The
// request must already be normalized via domain.NewPageRequest.
func (s *ProjectService) ListPage(ctx context.Context, req domain.PageRequest) (*domain.ProjectPage, error) {
	if s.cache != nil {
		if page, ok := s.cache.Get(ctx, req); ok {
			return page, nil
		}
	}

	items, total, err := s.store.List(ctx, req.Offset(), req.Limit)
	if err != nil {
		return nil, err
	}

	page := &domain.ProjectPage{
		Projects:   items,
		Pagination: domain.Paginate(req, total),
	}
	if s.cache != nil {
		s.cache.Set(ctx, req, page)
	}
	return page, nil
}

// Delete removes a project. Cart rows referencing it are deliberately
// left alone; cart reads tolerate the dangling reference and the
// janitor bounds its lifetime.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	ok, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return nil
}
