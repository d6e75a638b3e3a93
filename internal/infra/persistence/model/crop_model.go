package model

import (
	"time"

	"github.com/google/uuid"
)

// CropModel mirrors the 'crops' table. FarmerID references farmer_profiles.user_id.
type CropModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FarmerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(100);not null;index"`
	Price          float64   `gorm:"type:numeric(12,2);not null"`
	MinQuantity    float64   `gorm:"type:numeric(12,2);not null"`
	TotalAvailable float64   `gorm:"type:numeric(12,2);not null"`
	Grade          string    `gorm:"type:varchar(1);not null"`
	ImagePath      string    `gorm:"type:varchar(512)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CropModel) TableName() string {
	return "crops"
}
