package repository

import (
	"context"

	"jendo/backend/internal/appointment/domain"
)

// Repository defines persistence for appointments.
type Repository interface {
	Create(ctx context.Context, a *domain.Appointment) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Appointment, error)
	Update(ctx context.Context, a *domain.Appointment) error
	Delete(ctx context.Context, id int64) error
}
