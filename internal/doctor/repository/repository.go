package repository

import (
	"context"

	"jendo/backend/internal/doctor/domain"
)

// Repository defines persistence for doctors.
type Repository interface {
	Create(ctx context.Context, d *domain.Doctor) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Doctor, error)
	List(ctx context.Context) ([]*domain.Doctor, error)
	Update(ctx context.Context, d *domain.Doctor) error
	Delete(ctx context.Context, id int64) error
}
