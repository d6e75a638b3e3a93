// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"

	"farmlink/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ImageUpload carries an uploaded image file through the use case layer
// without binding it to any HTTP framework type.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// CreateCropInput defines the data required to publish a new crop listing.
type CreateCropInput struct {
	Name           string
	Price          float64
	MinQuantity    float64
	TotalAvailable float64
	Grade          entity.CropGrade
	Image          *ImageUpload
}

// UpdateCropInput defines the data required to edit an existing listing.
// Nil fields are left unchanged; a nil Image keeps the current one.
type UpdateCropInput struct {
	Name           *string
	Price          *float64
	MinQuantity    *float64
	TotalAvailable *float64
	Grade          *entity.CropGrade
	Image          *ImageUpload
}

// ListCropsInput defines the optional browse filters.
type ListCropsInput struct {
	Name     string
	Grade    entity.CropGrade
	MaxPrice float64
}

// CropUsecase defines the interface for crop listing operations.
type CropUsecase interface {
	// ListCrops returns all listings matching the filters, newest first.
	ListCrops(ctx context.Context, input *ListCropsInput) ([]*entity.Crop, error)

	// GetCrop returns a single listing by ID.
	GetCrop(ctx context.Context, cropID uuid.UUID) (*entity.Crop, error)

	// CreateCrop publishes a new listing owned by the given farmer.
	CreateCrop(ctx context.Context, farmerID uuid.UUID, input *CreateCropInput) (*entity.Crop, error)

	// UpdateCrop edits a listing. Only the owning farmer may do this.
	UpdateCrop(ctx context.Context, farmerID, cropID uuid.UUID, input *UpdateCropInput) (*entity.Crop, error)

	// MyCrops returns all listings owned by the given farmer.
	MyCrops(ctx context.Context, farmerID uuid.UUID) ([]*entity.Crop, error)

	// CropShareQR renders a QR code image that links to the listing.
	CropShareQR(ctx context.Context, cropID uuid.UUID) ([]byte, error)
}
