package repository

import (
	"context"
	"database/sql"
	"errors"

	"jendo/backend/internal/doctor/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a doctor repository that uses the given db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, d *domain.Doctor) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
INSERT INTO doctors (full_name, specialization, hospital, email, phone, consultation_fee, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id
`, d.FullName, d.Specialization, d.Hospital, d.Email, d.Phone, d.ConsultationFee, d.CreatedAt, d.UpdatedAt).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.Doctor, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, full_name, specialization, hospital, email, phone, consultation_fee, created_at, updated_at
FROM doctors WHERE id = $1
`, id)
	var d domain.Doctor
	err := row.Scan(&d.ID, &d.FullName, &d.Specialization, &d.Hospital, &d.Email, &d.Phone, &d.ConsultationFee, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*domain.Doctor, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, full_name, specialization, hospital, email, phone, consultation_fee, created_at, updated_at
FROM doctors ORDER BY id
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Doctor
	for rows.Next() {
		var d domain.Doctor
		if err := rows.Scan(&d.ID, &d.FullName, &d.Specialization, &d.Hospital, &d.Email, &d.Phone, &d.ConsultationFee, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, d *domain.Doctor) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE doctors
SET full_name = $2, specialization = $3, hospital = $4, email = $5, phone = $6, consultation_fee = $7, updated_at = $8
WHERE id = $1
`, d.ID, d.FullName, d.Specialization, d.Hospital, d.Email, d.Phone, d.ConsultationFee, d.UpdatedAt)
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	return err
}
