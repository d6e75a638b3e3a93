// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. It carries only the identity fields shared
// across both marketplace roles; role-specific data lives in the attached
// profiles. An account holds a role exactly when the matching profile is
// non-nil, so a single email can act as both a farmer and a firm.
type User struct {
	ID            uuid.UUID      `json:"id"`
	Email         string         `json:"email"`
	Name          string         `json:"name"`
	FarmerProfile *FarmerProfile `json:"farmer_profile,omitempty"` // nil unless the account sells crops
	FirmProfile   *FirmProfile   `json:"firm_profile,omitempty"`   // nil unless the account buys crops
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Roles derives the role set from the attached profiles.
func (u *User) Roles() Roles {
	var roles Roles
	if u.FarmerProfile != nil {
		roles = append(roles, RoleFarmer)
	}
	if u.FirmProfile != nil {
		roles = append(roles, RoleFirm)
	}

	return roles
}

// FarmerProfile holds data specific to the producer role. The farmer's crop
// listings hang off this profile via Crop.FarmerID.
type FarmerProfile struct {
	UserID    uuid.UUID `json:"user_id"`
	Phone     string    `json:"phone"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Crops     []*Crop   `json:"crops,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FirmProfile holds data specific to the buyer role.
type FirmProfile struct {
	UserID        uuid.UUID `json:"user_id"`
	CompanyName   string    `json:"company_name"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	UpdatedAt     time.Time `json:"updated_at"`
}
