// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"adchecker/internal/domain/entity"
	"adchecker/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their internal ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByMetaUserID retrieves a single user by their Meta platform id.
	FindByMetaUserID(ctx context.Context, metaUserID string) (*entity.User, error)

	// Create persists a new user. The ID is assigned when zero.
	Create(ctx context.Context, user *entity.User) error

	// UpdateProfile overwrites the name and email of an existing user.
	UpdateProfile(ctx context.Context, user *entity.User) error
}
