package repository

import (
	"context"
	"database/sql"
	"errors"

	"jendo/backend/internal/healthparam/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a health parameter repository that uses the given db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p *domain.Parameter) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
INSERT INTO health_parameters (user_id, name, value, unit, recorded_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`, p.UserID, p.Name, p.Value, p.Unit, p.RecordedAt, p.CreatedAt).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.Parameter, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, user_id, name, value, unit, recorded_at, created_at
FROM health_parameters WHERE id = $1
`, id)
	var p domain.Parameter
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Value, &p.Unit, &p.RecordedAt, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Parameter, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, name, value, unit, recorded_at, created_at
FROM health_parameters WHERE user_id = $1 ORDER BY recorded_at DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Parameter
	for rows.Next() {
		var p domain.Parameter
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Value, &p.Unit, &p.RecordedAt, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM health_parameters WHERE id = $1`, id)
	return err
}
