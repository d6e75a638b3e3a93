// Package qrcode renders shareable QR codes for crop listings.
package qrcode

import (
	"fmt"
	"strings"

	"farmlink/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size    int
	baseURL string
}

// NewQRCodeService creates a new QR code service instance. The base URL is
// the public address of the marketplace frontend; generated codes point at
// the crop detail page under it.
func NewQRCodeService(size int, baseURL string) service.QRCodeService {
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:    size,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GenerateCropShareQR generates a QR code encoding the public link of a crop listing
func (s *qrcodeService) GenerateCropShareQR(cropID uuid.UUID) ([]byte, error) {
	link := fmt.Sprintf("%s/crops/%s", s.baseURL, cropID.String())

	qrCode, err := qrcode.New(link, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
