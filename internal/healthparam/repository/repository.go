package repository

import (
	"context"

	"jendo/backend/internal/healthparam/domain"
)

// Repository defines persistence for health parameter readings.
type Repository interface {
	Create(ctx context.Context, p *domain.Parameter) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Parameter, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Parameter, error)
	Delete(ctx context.Context, id int64) error
}
