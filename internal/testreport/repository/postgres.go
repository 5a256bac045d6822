package repository

import (
	"context"
	"database/sql"
	"errors"

	"jendo/backend/internal/testreport/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a test report repository that uses the given db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rep *domain.Report) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
INSERT INTO test_reports (user_id, taken_at, summary, risk_level, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`, rep.UserID, rep.TakenAt, rep.Summary, rep.RiskLevel, rep.CreatedAt).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, user_id, taken_at, summary, risk_level, created_at
FROM test_reports WHERE id = $1
`, id)
	var rep domain.Report
	err := row.Scan(&rep.ID, &rep.UserID, &rep.TakenAt, &rep.Summary, &rep.RiskLevel, &rep.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rep, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Report, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, taken_at, summary, risk_level, created_at
FROM test_reports WHERE user_id = $1 ORDER BY taken_at DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Report
	for rows.Next() {
		var rep domain.Report
		if err := rows.Scan(&rep.ID, &rep.UserID, &rep.TakenAt, &rep.Summary, &rep.RiskLevel, &rep.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &rep)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM test_reports WHERE id = $1`, id)
	return err
}
