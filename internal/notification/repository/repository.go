package repository

import (
	"context"

	"jendo/backend/internal/notification/domain"
)

// Repository defines persistence for notifications.
type Repository interface {
	Create(ctx context.Context, n *domain.Notification) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}
