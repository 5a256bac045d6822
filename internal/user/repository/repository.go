package repository

import (
	"context"
	"errors"

	"jendo/backend/internal/user/domain"
)

// ErrDuplicateEmail is returned by Create when the email is already registered.
var ErrDuplicateEmail = errors.New("email already registered")

// Repository defines persistence for users.
type Repository interface {
	// Create persists the user and returns its assigned numeric id.
	// Returns ErrDuplicateEmail if the email is taken.
	Create(ctx context.Context, u *domain.User) (int64, error)
	// GetByID returns the user for id, or nil if not found.
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// GetByEmail returns the user with the given email, or nil if not found.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, id int64) error
}
