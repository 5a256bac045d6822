package repository

import (
	"context"

	"jendo/backend/internal/learning/domain"
)

// Repository defines persistence for learning materials.
type Repository interface {
	Create(ctx context.Context, m *domain.Material) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Material, error)
	List(ctx context.Context) ([]*domain.Material, error)
	Update(ctx context.Context, m *domain.Material) error
	Delete(ctx context.Context, id int64) error
}
