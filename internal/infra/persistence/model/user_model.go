// Package model holds the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"index"`

	FarmerProfile   *FarmerProfileModel   `gorm:"foreignKey:UserID"`
	FirmProfile     *FirmProfileModel     `gorm:"foreignKey:UserID"`
	Authentications []AuthenticationModel `gorm:"foreignKey:UserID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// FarmerProfileModel mirrors the 'farmer_profiles' table. UserID references users.id (UUID).
type FarmerProfileModel struct {
	UserID    uuid.UUID    `gorm:"primaryKey"`
	Phone     string       `gorm:"type:varchar(20);not null"`
	City      string       `gorm:"type:varchar(100)"`
	State     string       `gorm:"type:varchar(100)"`
	Crops     []*CropModel `gorm:"foreignKey:FarmerID;references:UserID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FarmerProfileModel) TableName() string {
	return "farmer_profiles"
}

// FirmProfileModel mirrors the 'firm_profiles' table. UserID references users.id (UUID).
type FirmProfileModel struct {
	UserID        uuid.UUID `gorm:"primaryKey"`
	CompanyName   string    `gorm:"type:varchar(100);not null"`
	ContactPerson string    `gorm:"type:varchar(100)"`
	Phone         string    `gorm:"type:varchar(20)"`
	City          string    `gorm:"type:varchar(100)"`
	State         string    `gorm:"type:varchar(100)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (FirmProfileModel) TableName() string {
	return "firm_profiles"
}
