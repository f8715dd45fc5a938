package service

import (
	"context"

	"github.com/rohitkatore/project-management/internal/catalog/domain"
)

// ProjectStore is the persistence surface the services depend on.
// The Postgres implementation lives in the repository package.
type ProjectStore interface {
	Create(ctx context.Context, p domain.Project) (*domain.Project, error)
	List(ctx context.Context, offset, limit int) ([]domain.Project, int, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// CartStore persists cart rows.
type CartStore interface {
	Add(ctx context.Context, projectID, userID string) (*domain.CartItem, error)
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteDangling(ctx context.Context) (int64, error)
}

// PageCache caches whole listing windows. Implementations must never
// serve a window cached before the most recent project mutation.
type PageCache interface {
	Get(ctx context.Context, req domain.PageRequest) (*domain.ProjectPage, bool)
	Set(ctx context.Context, req domain.PageRequest, page *domain.ProjectPage)
	Invalidate(ctx context.Context)
}
