package model

import (
	"time"

	"github.com/google/uuid"
)

// CropRequestModel mirrors the 'crop_requests' table, one row per targeted
// purchase request. FarmerID is denormalized from the crop's owner so the
// farmer inbox query needs no join.
type CropRequestModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CropID      uuid.UUID `gorm:"type:uuid;not null;index"`
	FarmerID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FirmID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Deadline    time.Time `gorm:"not null"`
	Requirement string    `gorm:"type:text;not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'Pending';index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Crop   *CropModel          `gorm:"foreignKey:CropID"`
	Firm   *FirmProfileModel   `gorm:"foreignKey:FirmID;references:UserID"`
	Farmer *FarmerProfileModel `gorm:"foreignKey:FarmerID;references:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (CropRequestModel) TableName() string {
	return "crop_requests"
}

// BuyRequestModel mirrors the 'buy_requests' table, one row per open
// purchase request broadcast by a firm.
type BuyRequestModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FirmID      uuid.UUID `gorm:"type:uuid;not null;index"`
	CropName    string    `gorm:"type:varchar(100);not null"`
	Deadline    time.Time `gorm:"not null"`
	Requirement string    `gorm:"type:text;not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'Pending';index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Firm *FirmProfileModel `gorm:"foreignKey:FirmID;references:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (BuyRequestModel) TableName() string {
	return "buy_requests"
}
