package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCrop() Crop {
	return Crop{
		Name:           "Wheat",
		Price:          2200,
		MinQuantity:    10,
		TotalAvailable: 500,
		Grade:          GradeA,
	}
}

func TestCrop_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Crop)
		wantErr error
	}{
		{name: "valid", mutate: func(c *Crop) {}},
		{name: "empty name", mutate: func(c *Crop) { c.Name = "" }, wantErr: ErrCropNameRequired},
		{name: "zero price", mutate: func(c *Crop) { c.Price = 0 }, wantErr: ErrCropPriceInvalid},
		{name: "negative price", mutate: func(c *Crop) { c.Price = -10 }, wantErr: ErrCropPriceInvalid},
		{name: "zero min quantity", mutate: func(c *Crop) { c.MinQuantity = 0 }, wantErr: ErrCropMinQuantityInvalid},
		{name: "zero total", mutate: func(c *Crop) { c.TotalAvailable = 0 }, wantErr: ErrCropTotalAvailableInvalid},
		{name: "min exceeds total", mutate: func(c *Crop) { c.MinQuantity = 600 }, wantErr: ErrCropQuantityBounds},
		{name: "unknown grade", mutate: func(c *Crop) { c.Grade = "D" }, wantErr: ErrCropGradeInvalid},
		{name: "empty grade", mutate: func(c *Crop) { c.Grade = "" }, wantErr: ErrCropGradeInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crop := validCrop()
			tt.mutate(&crop)

			err := crop.Validate()

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRequestStatus(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.False(t, RequestStatus("Done").IsValid())

	assert.False(t, StatusPending.IsTerminal())
	assert.True(t, StatusAccepted.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
}
