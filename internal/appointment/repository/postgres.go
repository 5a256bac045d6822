package repository

import (
	"context"
	"database/sql"
	"errors"

	"jendo/backend/internal/appointment/domain"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an appointment repository that uses the given db.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, a *domain.Appointment) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
INSERT INTO appointments (user_id, doctor_id, scheduled_at, status, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`, a.UserID, a.DoctorID, a.ScheduledAt, string(a.Status), a.Notes, a.CreatedAt, a.UpdatedAt).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, user_id, doctor_id, scheduled_at, status, notes, created_at, updated_at
FROM appointments WHERE id = $1
`, id)
	a, err := scanAppointment(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user_id, doctor_id, scheduled_at, status, notes, created_at, updated_at
FROM appointments WHERE user_id = $1 ORDER BY scheduled_at
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, a *domain.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE appointments
SET doctor_id = $2, scheduled_at = $3, status = $4, notes = $5, updated_at = $6
WHERE id = $1
`, a.ID, a.DoctorID, a.ScheduledAt, string(a.Status), a.Notes, a.UpdatedAt)
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	return err
}

func scanAppointment(scan func(...interface{}) error) (*domain.Appointment, error) {
	var a domain.Appointment
	var status string
	if err := scan(&a.ID, &a.UserID, &a.DoctorID, &a.ScheduledAt, &status, &a.Notes, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Status = domain.Status(status)
	return &a, nil
}
