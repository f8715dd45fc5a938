package service

import (
	"context"

	"github.com/rohitkatore/project-management/internal/catalog/domain"
)

// CartService associates user ids with saved projects. The project
// must exist when a row is created; afterwards the reference is not
// enforced.
type CartService struct {
	cart     CartStore
	projects ProjectStore
}

func NewCartService(cart CartStore, projects ProjectStore) *CartService {
	return &CartService{cart: cart, projects: projects}
}

// Add saves a project for the given user, defaulting to the guest id.
// Returns domain.ErrNotFound when the project does not exist. The same
// user may save the same project more than once.
func (s *CartService) Add(ctx context.Context, projectID, userID string) (*domain.CartItem, error) {
	if userID == "" {
		userID = domain.GuestUserID
	}
	if _, err := s.projects.Get(ctx, projectID); err != nil {
		return nil, err
	}
	return s.cart.Add(ctx, projectID, userID)
}

// ListByUser returns the user's cart newest-first, defaulting to the
// guest id. Items whose project was deleted carry a nil Project.
func (s *CartService) ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	if userID == "" {
		userID = domain.GuestUserID
	}
	return s.cart.ListByUser(ctx, userID)
}

// Remove deletes a cart row by its own id, not by project id.
func (s *CartService) Remove(ctx context.Context, cartItemID string) error {
	ok, err := s.cart.Delete(ctx, cartItemID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// PruneDangling removes cart rows whose project no longer exists and
// reports how many were dropped.
func (s *CartService) PruneDangling(ctx context.Context) (int64, error) {
	return s.cart.DeleteDangling(ctx)
}
