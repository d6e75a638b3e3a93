// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"farmlink/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateCropRequestInput defines the data for a targeted purchase request
// against one specific crop listing.
type CreateCropRequestInput struct {
	CropID      uuid.UUID
	Deadline    time.Time
	Requirement string
}

// CreateBuyRequestInput defines the data for an open purchase request
// broadcast to all farmers by crop name.
type CreateBuyRequestInput struct {
	CropName    string
	Deadline    time.Time
	Requirement string
}

// RequestUsecase defines the interface for the purchase request lifecycle.
// Targeted requests are decided by the farmer who owns the referenced crop;
// open requests may be decided by any farmer.
type RequestUsecase interface {
	// CreateCropRequest files a targeted request from a firm and notifies the
	// crop's farmer by SMS.
	CreateCropRequest(ctx context.Context, firmID uuid.UUID, input *CreateCropRequestInput) (*entity.CropRequest, error)

	// CreateBuyRequest broadcasts an open request from a firm.
	CreateBuyRequest(ctx context.Context, firmID uuid.UUID, input *CreateBuyRequestInput) (*entity.BuyRequest, error)

	// AcceptCropRequest resolves a pending targeted request as Accepted.
	AcceptCropRequest(ctx context.Context, farmerID, requestID uuid.UUID) (*entity.CropRequest, error)

	// RejectCropRequest resolves a pending targeted request as Rejected.
	RejectCropRequest(ctx context.Context, farmerID, requestID uuid.UUID) (*entity.CropRequest, error)

	// AcceptBuyRequest resolves a pending open request as Accepted.
	AcceptBuyRequest(ctx context.Context, farmerID, requestID uuid.UUID) (*entity.BuyRequest, error)

	// RejectBuyRequest resolves a pending open request as Rejected.
	RejectBuyRequest(ctx context.Context, farmerID, requestID uuid.UUID) (*entity.BuyRequest, error)

	// MyCropRequests lists the targeted requests a firm has filed.
	MyCropRequests(ctx context.Context, firmID uuid.UUID) ([]*entity.CropRequest, error)

	// MyBuyRequests lists the open requests a firm has posted.
	MyBuyRequests(ctx context.Context, firmID uuid.UUID) ([]*entity.BuyRequest, error)

	// IncomingRequests lists the targeted requests addressed to a farmer.
	IncomingRequests(ctx context.Context, farmerID uuid.UUID) ([]*entity.CropRequest, error)

	// PendingBuyRequests lists all open requests still awaiting a decision.
	PendingBuyRequests(ctx context.Context) ([]*entity.BuyRequest, error)
}
