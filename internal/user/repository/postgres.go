package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"jendo/backend/internal/user/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a user repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create persists the user and returns the id assigned by the database.
// A unique violation on email is mapped to ErrDuplicateEmail.
func (r *PostgresRepository) Create(ctx context.Context, u *domain.User) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
INSERT INTO users (email, password_hash, full_name, phone, date_of_birth, gender, role, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id
`, u.Email, u.PasswordHash, u.FullName, u.Phone, u.DateOfBirth, u.Gender, string(u.Role), u.CreatedAt, u.UpdatedAt).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, ErrDuplicateEmail
		}
		return 0, err
	}
	return id, nil
}

// GetByID returns the user for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

// GetByEmail returns the user with the given email, or nil if not found.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.get(ctx, `WHERE email = $1`, email)
}

func (r *PostgresRepository) get(ctx context.Context, where string, arg interface{}) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, email, password_hash, full_name, phone, date_of_birth, gender, role, created_at, updated_at
FROM users `+where, arg)
	var u domain.User
	var dob sql.NullTime
	var role string
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &u.Phone, &dob, &u.Gender, &role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if dob.Valid {
		t := dob.Time
		u.DateOfBirth = &t
	}
	u.Role = domain.Role(role)
	return &u, nil
}

// Update updates the existing user record. Missing rows are a no-op.
func (r *PostgresRepository) Update(ctx context.Context, u *domain.User) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE users
SET full_name = $2, phone = $3, date_of_birth = $4, gender = $5, role = $6, updated_at = $7
WHERE id = $1
`, u.ID, u.FullName, u.Phone, u.DateOfBirth, u.Gender, string(u.Role), u.UpdatedAt)
	return err
}

// Delete removes the user by id.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}
