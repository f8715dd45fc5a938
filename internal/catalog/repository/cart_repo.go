package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rohitkatore/project-management/internal/catalog/domain"
)

// CartRepo persists cart rows in Postgres. There is no uniqueness
// constraint on (project_id, user_id): the same user may save the same
// project more than once.
type CartRepo struct {
	db *pgxpool.Pool
}

func NewCartRepo(db *pgxpool.Pool) *CartRepo {
	return &CartRepo{db: db}
}

func (r *CartRepo) Add(ctx context.Context, projectID, userID string) (*domain.CartItem, error) {
	for i := 0; i < 5; i++ {
		id := uuid.NewString()

		const q = `
insert into cart_items (id, project_id, user_id)
values ($1, $2, $3)
returning id, project_id, user_id, created_at;
`
		var item domain.CartItem
		err := r.db.QueryRow(ctx, q, id, projectID, userID).
			Scan(&item.ID, &item.ProjectID, &item.UserID, &item.CreatedAt)
		if err == nil {
			return &item, nil
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("failed to generate unique cart item id")
}

// ListByUser returns the user's cart newest-first with the referenced
// project joined in. Rows whose project has been deleted are kept and
// carry a nil Project.
func (r *CartRepo) ListByUser(ctx context.Context, userID string) ([]domain.CartItem, error) {
	const q = `
select c.id, c.project_id, c.user_id, c.created_at,
       p.id, p.title, p.description, p.category, p.author, p.image_url, p.created_at
from cart_items c
left join projects p on p.id = c.project_id
where c.user_id = $1
order by c.created_at desc, c.id desc;
`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.CartItem, 0, 16)
	for rows.Next() {
		var (
			item    domain.CartItem
			pID     *string
			pTitle  *string
			pDesc   *string
			pCat    *string
			pAuthor *string
			pImage  *string
			pAt     *time.Time
		)
		if err := rows.Scan(&item.ID, &item.ProjectID, &item.UserID, &item.CreatedAt,
			&pID, &pTitle, &pDesc, &pCat, &pAuthor, &pImage, &pAt); err != nil {
			return nil, err
		}
		if pID != nil {
			item.Project = &domain.Project{
				ID:          *pID,
				Title:       *pTitle,
				Description: *pDesc,
				Category:    *pCat,
				Author:      *pAuthor,
				ImageURL:    *pImage,
				CreatedAt:   *pAt,
			}
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *CartRepo) Delete(ctx context.Context, id string) (bool, error) {
	const q = `delete from cart_items where id = $1;`
	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}

// DeleteDangling removes cart rows whose project no longer exists.
func (r *CartRepo) DeleteDangling(ctx context.Context) (int64, error) {
	const q = `
delete from cart_items c
where not exists (select 1 from projects p where p.id = c.project_id);
`
	ct, err := r.db.Exec(ctx, q)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}
