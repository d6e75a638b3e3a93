// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"farmlink/internal/errors"

	"github.com/google/uuid"
)

// Listing validation errors. They are mapped to HTTP 400 by the delivery layer.
var (
	ErrCropNameRequired          = errors.New("crop name is required")
	ErrCropPriceInvalid          = errors.New("price must be a positive number")
	ErrCropMinQuantityInvalid    = errors.New("minimum quantity must be a positive number")
	ErrCropTotalAvailableInvalid = errors.New("total available quantity must be a positive number")
	ErrCropQuantityBounds        = errors.New("minimum quantity cannot exceed total available quantity")
	ErrCropGradeInvalid          = errors.New("grade must be one of A, B or C")
)

// CropGrade is the quality classification of a listed crop.
type CropGrade string

const (
	GradeA CropGrade = "A"
	GradeB CropGrade = "B"
	GradeC CropGrade = "C"
)

// IsValid checks if the CropGrade is a valid value.
func (g CropGrade) IsValid() bool {
	switch g {
	case GradeA, GradeB, GradeC:
		return true
	default:
		return false
	}
}

// Crop is a listing offered for sale by exactly one farmer.
type Crop struct {
	ID             uuid.UUID `json:"id"`
	FarmerID       uuid.UUID `json:"farmer_id"`       // owning farmer's user ID
	Name           string    `json:"name"`            // e.g. "Wheat", "Basmati Rice"
	Price          float64   `json:"price"`           // unit price, must be positive
	MinQuantity    float64   `json:"min_quantity"`    // minimum order quantity, positive
	TotalAvailable float64   `json:"total_available"` // total stock, positive and >= MinQuantity
	Grade          CropGrade `json:"grade"`
	ImagePath      string    `json:"image_path"` // public path of the stored image artifact
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Validate enforces the listing invariants shared by create and update.
func (c *Crop) Validate() error {
	if c.Name == "" {
		return ErrCropNameRequired
	}
	if c.Price <= 0 {
		return ErrCropPriceInvalid
	}
	if c.MinQuantity <= 0 {
		return ErrCropMinQuantityInvalid
	}
	if c.TotalAvailable <= 0 {
		return ErrCropTotalAvailableInvalid
	}
	if c.MinQuantity > c.TotalAvailable {
		return ErrCropQuantityBounds
	}
	if !c.Grade.IsValid() {
		return ErrCropGradeInvalid
	}

	return nil
}
