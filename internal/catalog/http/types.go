package http

import (
	"context"

	"github.com/rohitkatore/project-management/internal/catalog/domain"
)

// ProjectAPI is the slice of the project service the handlers use.
type ProjectAPI interface {
	Create(ctx context.Context, fields domain.Project) (*domain.Project, error)
	ListPage(ctx context.Context, req domain.PageRequest) (*domain.ProjectPage, error)
	Delete(ctx context.Context, id string) error
}

// CartAPI is the slice of the cart service the handlers use.
type CartAPI interface {
	Add(ctx context.Context, projectID, userID string) (*domain.CartItem, error)
	ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error)
	Remove(ctx context.Context, cartItemID string) error
}

type createProjectReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Author      string `json:"author"`
	ImageURL    string `json:"image_url"`
}

type addToCartReq struct {
	ProjectID string `json:"projectId"`
	UserID    string `json:"userId"`
}
