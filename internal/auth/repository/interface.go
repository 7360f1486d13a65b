package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no user matches.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when the email or username is taken.
	ErrDuplicate = errors.New("duplicate user")
)

// User is a registered storefront account.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	Phone        string
	PasswordHash string
	Referral     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateUserParams contains data for creating a user.
type CreateUserParams struct {
	Email        string
	Username     string
	Phone        string
	PasswordHash string
	Referral     *string
}

// Repository is the user store the auth service depends on.
type Repository interface {
	CreateUser(ctx context.Context, params CreateUserParams) (User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (User, error)
	// GetUserByIdentifier matches identifier against email or username.
	GetUserByIdentifier(ctx context.Context, identifier string) (User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
}
