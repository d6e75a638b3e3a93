package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateCropShareQR generates a QR code encoding the public link of a crop listing
	GenerateCropShareQR(cropID uuid.UUID) ([]byte, error)
}
