package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"user-registration-service/internal/domain/entity"
	repo "user-registration-service/internal/domain/repository"
)

// ErrUserExists signals that the registration pre-check found a record with
// the same username or email.
var ErrUserExists = errors.New("user with this email or username already exists")

type Service struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewService(repo repo.UserRepository, logger *logrus.Logger) *Service {
	return &Service{Repo: repo, Logger: logger}
}

type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	DisplayName string
	AvatarURL   string
}

// Register normalizes the identifiers, checks for an existing record by
// username or email, and creates the user under the local provider. The
// lookup is an early exit only; a concurrent duplicate slipping past it is
// stopped by the store's unique indexes and reported as a create failure.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	username := strings.ToLower(strings.TrimSpace(in.Username))
	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := s.Repo.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	u := &entity.User{
		Username:    username,
		Email:       email,
		Password:    in.Password,
		Provider:    entity.ProviderLocal,
		DisplayName: in.DisplayName,
		AvatarURL:   in.AvatarURL,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", email).Error("create user failed")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}
