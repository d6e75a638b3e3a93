// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"farmlink/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateFarmerProfile(ctx context.Context, userID uuid.UUID, input *UpdateFarmerProfileInput) error
	UpdateFirmProfile(ctx context.Context, userID uuid.UUID, input *UpdateFirmProfileInput) error
	ListFarmers(ctx context.Context) ([]*entity.User, error)
	ListAllUsers(ctx context.Context) ([]*entity.User, error)
}

// --- Input DTOs ---

// UpdateFarmerProfileInput defines the data required to update a farmer profile.
// Nil fields are left unchanged.
type UpdateFarmerProfileInput struct {
	Phone *string `json:"phone,omitempty"`
	City  *string `json:"city,omitempty"`
	State *string `json:"state,omitempty"`
}

// UpdateFirmProfileInput defines the data required to update a firm profile.
// Nil fields are left unchanged.
type UpdateFirmProfileInput struct {
	CompanyName   *string `json:"company_name,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	City          *string `json:"city,omitempty"`
	State         *string `json:"state,omitempty"`
}
