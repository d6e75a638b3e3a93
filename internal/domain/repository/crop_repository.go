// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"farmlink/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCropNotFound is a domain-specific error returned when a crop listing is not found.
var ErrCropNotFound = errors.New("crop not found")

// CropFilter narrows down crop listing queries. Zero values mean "no filter".
type CropFilter struct {
	// Name matches crop names case-insensitively as a substring.
	Name string
	// Grade restricts listings to a single quality grade.
	Grade entity.CropGrade
	// MaxPrice keeps only listings at or below this unit price.
	MaxPrice float64
}

// CropRepository defines the standard operations for crop listing persistence.
type CropRepository interface {
	// FindByID retrieves a single crop by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Crop, error)

	// List retrieves all crop listings matching the filter, newest first.
	List(ctx context.Context, filter CropFilter) ([]*entity.Crop, error)

	// ListByFarmerID retrieves all crops owned by a specific farmer, newest first.
	ListByFarmerID(ctx context.Context, farmerID uuid.UUID) ([]*entity.Crop, error)

	// Create persists a new crop listing.
	Create(ctx context.Context, crop *entity.Crop) error

	// Update modifies an existing crop listing.
	Update(ctx context.Context, crop *entity.Crop) error
}
