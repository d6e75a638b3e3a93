package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus tracks the lifecycle of a purchase request.
// Pending is the only state that allows a transition; Accepted and
// Rejected are terminal.
type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusAccepted RequestStatus = "Accepted"
	StatusRejected RequestStatus = "Rejected"
)

// IsValid checks if the RequestStatus is a valid value.
func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status can no longer change.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// CropRequest is a targeted purchase request from a firm for one
// specific crop listing. FarmerID is denormalized from the crop's
// owner at creation time so the farmer's inbox can be queried without
// joining through the crop.
type CropRequest struct {
	ID          uuid.UUID     `json:"id"`
	CropID      uuid.UUID     `json:"crop_id"`
	FarmerID    uuid.UUID     `json:"farmer_id"`
	FirmID      uuid.UUID     `json:"firm_id"`
	Deadline    time.Time     `json:"deadline"`    // must be today or later at creation
	Requirement string        `json:"requirement"` // quantity and terms, free text
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Resolved views, populated on reads that need them.
	Crop   *Crop          `json:"crop,omitempty"`
	Firm   *FirmProfile   `json:"firm,omitempty"`
	Farmer *FarmerProfile `json:"farmer,omitempty"`
}

// BuyRequest is an open purchase request broadcast by a firm. It names
// a crop rather than referencing a listing, and any farmer may accept
// or reject it.
type BuyRequest struct {
	ID          uuid.UUID     `json:"id"`
	FirmID      uuid.UUID     `json:"firm_id"`
	CropName    string        `json:"crop_name"`
	Deadline    time.Time     `json:"deadline"`
	Requirement string        `json:"requirement"`
	Status      RequestStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	Firm *FirmProfile `json:"firm,omitempty"`
}
