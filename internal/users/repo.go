package users

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates no user exists for the external identity.
	ErrNotFound = errors.New("user not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)

// Repo defines persistence operations for users.
type Repo interface {
	GetByExternalID(ctx context.Context, externalID string) (User, error)
	UpsertFromAuth(ctx context.Context, user User) (User, error)
	UpdateProfile(ctx context.Context, externalID string, profile Profile) (User, error)
}
