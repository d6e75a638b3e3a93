// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"farmlink/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for purchase request persistence.
var (
	// ErrRequestNotFound is returned when a purchase request is not found.
	ErrRequestNotFound = errors.New("request not found")
	// ErrRequestNotPending is returned when a conditional status update finds
	// the request already resolved.
	ErrRequestNotPending = errors.New("request is no longer pending")
)

// CropRequestRepository defines the operations for targeted purchase requests,
// the ones a firm sends for one specific crop listing.
type CropRequestRepository interface {
	// FindByID retrieves a single request by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CropRequest, error)

	// ListByFirmID retrieves all requests created by a firm, newest first,
	// with the referenced crop resolved.
	ListByFirmID(ctx context.Context, firmID uuid.UUID) ([]*entity.CropRequest, error)

	// ListByFarmerID retrieves all requests addressed to a farmer, newest first,
	// with the referenced crop and requesting firm resolved.
	ListByFarmerID(ctx context.Context, farmerID uuid.UUID) ([]*entity.CropRequest, error)

	// Create persists a new targeted request.
	Create(ctx context.Context, request *entity.CropRequest) error

	// UpdateStatusIfPending transitions the request to the given status only if
	// it is still Pending. Returns ErrRequestNotPending when the request has
	// already been resolved, closing the race between two concurrent decisions.
	UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status entity.RequestStatus) error
}

// BuyRequestRepository defines the operations for open purchase requests,
// the ones a firm broadcasts to all farmers by crop name.
type BuyRequestRepository interface {
	// FindByID retrieves a single open request by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BuyRequest, error)

	// ListByFirmID retrieves all open requests created by a firm, newest first.
	ListByFirmID(ctx context.Context, firmID uuid.UUID) ([]*entity.BuyRequest, error)

	// ListPending retrieves all open requests still awaiting a decision, newest
	// first, with the posting firm resolved.
	ListPending(ctx context.Context) ([]*entity.BuyRequest, error)

	// Create persists a new open request.
	Create(ctx context.Context, request *entity.BuyRequest) error

	// UpdateStatusIfPending transitions the request to the given status only if
	// it is still Pending. Returns ErrRequestNotPending when the request has
	// already been resolved.
	UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status entity.RequestStatus) error
}
