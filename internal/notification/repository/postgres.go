package repository

import (
	"context"
	"database/sql"
	"errors"

	"jendo/backend/internal/notification/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a notification repository that uses the given db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, n *domain.Notification) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
INSERT INTO notifications (user_id, title, body, read, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`, n.UserID, n.Title, n.Body, n.Read, n.CreatedAt).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.Notification, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, user_id, title, body, read, created_at
FROM notifications WHERE id = $1
`, id)
	var n domain.Notification
	err := row.Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &n.Read, &n.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, title, body, read, created_at
FROM notifications WHERE user_id = $1 ORDER BY created_at DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &n)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) MarkRead(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE notifications SET read = TRUE WHERE id = $1`, id)
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notifications WHERE id = $1`, id)
	return err
}
