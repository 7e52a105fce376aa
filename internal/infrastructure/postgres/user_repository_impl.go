package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"user-registration-service/internal/domain/entity"
	"user-registration-service/internal/domain/repository"
	"user-registration-service/pkg/helpers"
)

// ErrDuplicate is returned when an insert collides with one of the unique
// indexes (email, username, provider_id). The indexes are the real
// uniqueness guarantee; the application-level lookup is only an early exit.
var ErrDuplicate = errors.New("duplicate user")

const uniqueViolation = "23505"

type UserRepository struct {
	pool       *pgxpool.Pool
	bcryptCost int
}

func NewUserRepository(pool *pgxpool.Pool, bcryptCost int) *UserRepository {
	return &UserRepository{pool: pool, bcryptCost: bcryptCost}
}

// Create hashes the password (when present) and inserts the row. The hash
// is computed exactly once, right before the write; plaintext never reaches
// the database. Empty optional fields are stored as NULL so the partial
// unique indexes ignore them.
func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	if u.Password != "" {
		hash, err := helpers.HashPassword(u.Password, r.bcryptCost)
		if err != nil {
			return err
		}
		u.Password = hash
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, email, password_hash, provider, provider_id, display_name, avatar_url)
		VALUES (NULLIF($1, ''), $2, NULLIF($3, ''), $4, NULLIF($5, ''), $6, $7)
		RETURNING id, created_at, updated_at
	`, u.Username, u.Email, u.Password, u.Provider, u.ProviderID, u.DisplayName, u.AvatarURL)

	if err := row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// FindByUsernameOrEmail looks up a record whose username or email matches
// the given values case-insensitively. Returns (nil, nil) when absent.
func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*entity.User, error) {
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, COALESCE(username, ''), email, COALESCE(password_hash, ''),
		       provider, COALESCE(provider_id, ''), display_name, avatar_url,
		       created_at, updated_at
		FROM users
		WHERE lower(email) = lower($1)
		   OR (username IS NOT NULL AND $2 <> '' AND lower(username) = lower($2))
	`, email, username)

	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password,
		&u.Provider, &u.ProviderID, &u.DisplayName, &u.AvatarURL,
		&u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
