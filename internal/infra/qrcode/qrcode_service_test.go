package qrcode

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GeneratesPNG(t *testing.T) {
	svc := NewQRCodeService(256, "https://farmlink.example.com")

	png, err := svc.GenerateCropShareQR(uuid.New())

	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestQRCodeService_DefaultsSize(t *testing.T) {
	svc := NewQRCodeService(0, "https://farmlink.example.com/")

	png, err := svc.GenerateCropShareQR(uuid.New())

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestQRCodeService_DistinctCropsDistinctCodes(t *testing.T) {
	svc := NewQRCodeService(128, "https://farmlink.example.com")

	first, err := svc.GenerateCropShareQR(uuid.New())
	require.NoError(t, err)
	second, err := svc.GenerateCropShareQR(uuid.New())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
