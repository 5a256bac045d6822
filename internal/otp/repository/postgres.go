package repository

import (
	"context"
	"database/sql"
	"time"

	"jendo/backend/internal/otp/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an OTP challenge repository that uses the given db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Replace upserts the challenge keyed by email. The single-row upsert is what
// guarantees at most one live challenge per email under concurrent requests.
func (r *PostgresRepository) Replace(ctx context.Context, c *domain.Challenge) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO otp_challenges (email, code, issued_at, expires_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO UPDATE SET
	code = excluded.code,
	issued_at = excluded.issued_at,
	expires_at = excluded.expires_at
`, c.Email, c.Code, c.IssuedAt, c.ExpiresAt)
	return err
}

// Consume deletes the matching unexpired challenge in one statement and
// reports whether a row went away. Expired rows are not deleted; they stay
// until superseded by the next Replace.
func (r *PostgresRepository) Consume(ctx context.Context, email, code string, now time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
DELETE FROM otp_challenges
WHERE email = $1 AND code = $2 AND expires_at > $3
`, email, code, now)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
