// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"farmlink/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, with role profiles preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity together with its role profiles.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// SaveFarmerProfile upserts the farmer profile for a user.
	SaveFarmerProfile(ctx context.Context, profile *entity.FarmerProfile) error

	// SaveFirmProfile upserts the firm profile for a user.
	SaveFirmProfile(ctx context.Context, profile *entity.FirmProfile) error

	// ListFarmers retrieves all users with a farmer profile, including their crop listings.
	ListFarmers(ctx context.Context) ([]*entity.User, error)

	// ListAll retrieves every registered user with both role profiles preloaded.
	ListAll(ctx context.Context) ([]*entity.User, error)
}
