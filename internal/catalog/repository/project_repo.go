package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rohitkatore/project-management/internal/catalog/domain"
)

// ProjectRepo persists projects in Postgres.
type ProjectRepo struct {
	db *pgxpool.Pool
}

func NewProjectRepo(db *pgxpool.Pool) *ProjectRepo {
	return &ProjectRepo{db: db}
}

// Create inserts a new project with a fresh id. Fields are stored as
// given; no normalization happens at this layer.
func (r *ProjectRepo) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	for i := 0; i < 5; i++ {
		id := uuid.NewString()

		const q = `
insert into projects (id, title, description, category, author, image_url)
values ($1, $2, $3, $4, $5, $6)
returning id, title, description, category, author, image_url, created_at;
`
		var out domain.Project
		err := r.db.QueryRow(ctx, q, id, p.Title, p.Description, p.Category, p.Author, p.ImageURL).
			Scan(&out.ID, &out.Title, &out.Description, &out.Category, &out.Author, &out.ImageURL, &out.CreatedAt)
		if err == nil {
			return &out, nil
		}

		// unique violation on the generated id → retry
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			continue
		}
		return nil, err
	}

	return nil, fmt.Errorf("failed to generate unique project id")
}

// List returns one window in creation order plus the total count.
// The order is pinned (created_at, id) so repeated reads with no
// intervening writes return identical windows.
func (r *ProjectRepo) List(ctx context.Context, offset, limit int) ([]domain.Project, int, error) {
	const countQ = `select count(*) from projects;`
	var total int
	if err := r.db.QueryRow(ctx, countQ).Scan(&total); err != nil {
		return nil, 0, err
	}

	const q = `
select id, title, description, category, author, image_url, created_at
from projects
order by created_at, id
offset $1 limit $2;
`
	rows, err := r.db.Query(ctx, q, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, limit)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Author, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

func (r *ProjectRepo) Get(ctx context.Context, id string) (*domain.Project, error) {
	const q = `
select id, title, description, category, author, image_url, created_at
from projects
where id = $1;
`
	var p domain.Project
	err := r.db.QueryRow(ctx, q, id).
		Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Author, &p.ImageURL, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Delete removes the project row. Cart rows referencing it are left in
// place; reads tolerate the dangling reference.
func (r *ProjectRepo) Delete(ctx context.Context, id string) (bool, error) {
	const q = `delete from projects where id = $1;`
	ct, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() > 0, nil
}
