package repository

import (
	"context"
	"database/sql"
	"errors"

	"jendo/backend/internal/learning/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a learning material repository that uses the given db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, m *domain.Material) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
INSERT INTO learning_materials (title, category, content_url, summary, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`, m.Title, m.Category, m.ContentURL, m.Summary, m.CreatedAt).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.Material, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, title, category, content_url, summary, created_at
FROM learning_materials WHERE id = $1
`, id)
	var m domain.Material
	err := row.Scan(&m.ID, &m.Title, &m.Category, &m.ContentURL, &m.Summary, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*domain.Material, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, title, category, content_url, summary, created_at
FROM learning_materials ORDER BY created_at DESC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Material
	for rows.Next() {
		var m domain.Material
		if err := rows.Scan(&m.ID, &m.Title, &m.Category, &m.ContentURL, &m.Summary, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, m *domain.Material) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE learning_materials
SET title = $2, category = $3, content_url = $4, summary = $5
WHERE id = $1
`, m.ID, m.Title, m.Category, m.ContentURL, m.Summary)
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM learning_materials WHERE id = $1`, id)
	return err
}
