package repository

import (
	"context"

	"user-registration-service/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// FindByUsernameOrEmail returns (nil, nil) when no record matches; Create
// hashes the password before the row is written and fills in the generated
// ID and timestamps on success.
type UserRepository interface {
	FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error)
	Create(ctx context.Context, u *entity.User) error
}
