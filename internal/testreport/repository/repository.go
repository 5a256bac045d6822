package repository

import (
	"context"

	"jendo/backend/internal/testreport/domain"
)

// Repository defines persistence for test reports.
type Repository interface {
	Create(ctx context.Context, rep *domain.Report) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Report, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Report, error)
	Delete(ctx context.Context, id int64) error
}
