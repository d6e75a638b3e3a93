package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/repository"
	mockRepo "farmlink/internal/mocks/repository"
	mockService "farmlink/internal/mocks/service"
	"farmlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cropServiceFixtures holds all test dependencies for crop service tests.
type cropServiceFixtures struct {
	service       usecase.CropUsecase
	cropRepo      *mockRepo.MockCropRepository
	artifactStore *mockService.MockArtifactStore
	qrService     *mockService.MockQRCodeService
}

func createTestCropService(t *testing.T) cropServiceFixtures {
	cropRepo := mockRepo.NewMockCropRepository(t)
	artifactStore := mockService.NewMockArtifactStore(t)
	qrService := mockService.NewMockQRCodeService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCropService(CropServiceParams{
		CropRepo:      cropRepo,
		ArtifactStore: artifactStore,
		QRService:     qrService,
		Logger:        logger,
	})

	return cropServiceFixtures{
		service:       service,
		cropRepo:      cropRepo,
		artifactStore: artifactStore,
		qrService:     qrService,
	}
}

func testImageUpload() *usecase.ImageUpload {
	return &usecase.ImageUpload{
		Filename:    "wheat.jpg",
		ContentType: "image/jpeg",
		Size:        16,
		Reader:      strings.NewReader("fake image bytes"),
	}
}

func TestCropService_CreateCrop_Success(t *testing.T) {
	fx := createTestCropService(t)

	ctx := context.Background()
	farmerID := uuid.New()

	fx.artifactStore.EXPECT().
		Save(ctx, "wheat.jpg", "image/jpeg", mock.Anything).
		Return("/uploads/wheat-1.jpg", nil)
	fx.cropRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Crop")).
		Run(func(ctx context.Context, crop *entity.Crop) {
			crop.ID = uuid.New()
		}).
		Return(nil)

	crop, err := fx.service.CreateCrop(ctx, farmerID, &usecase.CreateCropInput{
		Name:           "Wheat",
		Price:          2200,
		MinQuantity:    10,
		TotalAvailable: 500,
		Grade:          entity.GradeA,
		Image:          testImageUpload(),
	})

	require.NoError(t, err)
	require.NotNil(t, crop)
	assert.Equal(t, farmerID, crop.FarmerID)
	assert.Equal(t, "/uploads/wheat-1.jpg", crop.ImagePath)
	assert.NotEqual(t, uuid.Nil, crop.ID)
}

func TestCropService_CreateCrop_ImageRequired(t *testing.T) {
	fx := createTestCropService(t)

	crop, err := fx.service.CreateCrop(context.Background(), uuid.New(), &usecase.CreateCropInput{
		Name:           "Wheat",
		Price:          2200,
		MinQuantity:    10,
		TotalAvailable: 500,
		Grade:          entity.GradeA,
	})

	require.Error(t, err)
	assert.Nil(t, crop)
	assert.ErrorIs(t, err, domainerrors.ErrImageRequired)
}

func TestCropService_CreateCrop_RejectsNonImageUpload(t *testing.T) {
	fx := createTestCropService(t)

	tests := []struct {
		name  string
		image *usecase.ImageUpload
	}{
		{
			name: "executable",
			image: &usecase.ImageUpload{
				Filename:    "malware.exe",
				ContentType: "application/x-msdownload",
				Size:        128,
				Reader:      strings.NewReader("MZ"),
			},
		},
		{
			name: "image extension with non-image content type",
			image: &usecase.ImageUpload{
				Filename:    "script.png",
				ContentType: "text/html",
				Size:        128,
				Reader:      strings.NewReader("<script>"),
			},
		},
		{
			name: "no extension",
			image: &usecase.ImageUpload{
				Filename:    "photo",
				ContentType: "image/png",
				Size:        128,
				Reader:      strings.NewReader("png bytes"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The rejected file must never reach the artifact store.
			crop, err := fx.service.CreateCrop(context.Background(), uuid.New(), &usecase.CreateCropInput{
				Name:           "Wheat",
				Price:          2200,
				MinQuantity:    10,
				TotalAvailable: 500,
				Grade:          entity.GradeA,
				Image:          tt.image,
			})

			require.Error(t, err)
			assert.Nil(t, crop)
			assert.ErrorIs(t, err, domainerrors.ErrImageTypeInvalid)
		})
	}
}

func TestCropService_CreateCrop_RejectsOversizedImage(t *testing.T) {
	fx := createTestCropService(t)

	image := testImageUpload()
	image.Size = 5<<20 + 1

	crop, err := fx.service.CreateCrop(context.Background(), uuid.New(), &usecase.CreateCropInput{
		Name:           "Wheat",
		Price:          2200,
		MinQuantity:    10,
		TotalAvailable: 500,
		Grade:          entity.GradeA,
		Image:          image,
	})

	require.Error(t, err)
	assert.Nil(t, crop)
	assert.ErrorIs(t, err, domainerrors.ErrImageTooLarge)
}

func TestCropService_UpdateCrop_RejectsNonImageUpload(t *testing.T) {
	fx := createTestCropService(t)

	ctx := context.Background()
	farmerID := uuid.New()
	cropID := uuid.New()

	existing := &entity.Crop{
		ID:             cropID,
		FarmerID:       farmerID,
		Name:           "Rice",
		Price:          3000,
		MinQuantity:    5,
		TotalAvailable: 100,
		Grade:          entity.GradeB,
		ImagePath:      "/uploads/rice-1.jpg",
	}
	fx.cropRepo.EXPECT().FindByID(ctx, cropID).Return(existing, nil)

	crop, err := fx.service.UpdateCrop(ctx, farmerID, cropID, &usecase.UpdateCropInput{
		Image: &usecase.ImageUpload{
			Filename:    "payload.exe",
			ContentType: "application/x-msdownload",
			Size:        128,
			Reader:      strings.NewReader("MZ"),
		},
	})

	require.Error(t, err)
	assert.Nil(t, crop)
	assert.ErrorIs(t, err, domainerrors.ErrImageTypeInvalid)
}

func TestCropService_CreateCrop_QuantityBounds(t *testing.T) {
	fx := createTestCropService(t)

	// Validation runs before any artifact is stored, so no Save expectation.
	crop, err := fx.service.CreateCrop(context.Background(), uuid.New(), &usecase.CreateCropInput{
		Name:           "Wheat",
		Price:          2200,
		MinQuantity:    600,
		TotalAvailable: 500,
		Grade:          entity.GradeA,
		Image:          testImageUpload(),
	})

	require.Error(t, err)
	assert.Nil(t, crop)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCropService_CreateCrop_CompensatesStoredImage(t *testing.T) {
	fx := createTestCropService(t)

	ctx := context.Background()

	fx.artifactStore.EXPECT().
		Save(ctx, "wheat.jpg", "image/jpeg", mock.Anything).
		Return("/uploads/wheat-2.jpg", nil)
	fx.cropRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Crop")).
		Return(errors.New("connection reset"))
	fx.artifactStore.EXPECT().
		Delete(ctx, "/uploads/wheat-2.jpg").
		Return(nil)

	crop, err := fx.service.CreateCrop(ctx, uuid.New(), &usecase.CreateCropInput{
		Name:           "Wheat",
		Price:          2200,
		MinQuantity:    10,
		TotalAvailable: 500,
		Grade:          entity.GradeA,
		Image:          testImageUpload(),
	})

	require.Error(t, err)
	assert.Nil(t, crop)
}

func TestCropService_UpdateCrop_NotOwner(t *testing.T) {
	fx := createTestCropService(t)

	ctx := context.Background()
	cropID := uuid.New()

	existing := &entity.Crop{
		ID:       cropID,
		FarmerID: uuid.New(),
		Name:     "Rice",
	}
	fx.cropRepo.EXPECT().FindByID(ctx, cropID).Return(existing, nil)

	newName := "Basmati Rice"
	crop, err := fx.service.UpdateCrop(ctx, uuid.New(), cropID, &usecase.UpdateCropInput{Name: &newName})

	require.Error(t, err)
	assert.Nil(t, crop)
	assert.ErrorIs(t, err, domainerrors.ErrCropOwnershipViolation)
}

func TestCropService_UpdateCrop_PartialFields(t *testing.T) {
	fx := createTestCropService(t)

	ctx := context.Background()
	farmerID := uuid.New()
	cropID := uuid.New()

	existing := &entity.Crop{
		ID:             cropID,
		FarmerID:       farmerID,
		Name:           "Rice",
		Price:          3000,
		MinQuantity:    5,
		TotalAvailable: 100,
		Grade:          entity.GradeB,
		ImagePath:      "/uploads/rice-1.jpg",
	}
	fx.cropRepo.EXPECT().FindByID(ctx, cropID).Return(existing, nil)
	fx.cropRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Crop")).Return(nil)

	newPrice := 2800.0
	crop, err := fx.service.UpdateCrop(ctx, farmerID, cropID, &usecase.UpdateCropInput{Price: &newPrice})

	require.NoError(t, err)
	assert.Equal(t, 2800.0, crop.Price)
	// Untouched fields keep their stored values, including the image.
	assert.Equal(t, "Rice", crop.Name)
	assert.Equal(t, "/uploads/rice-1.jpg", crop.ImagePath)
}

func TestCropService_UpdateCrop_ReplacesImage(t *testing.T) {
	fx := createTestCropService(t)

	ctx := context.Background()
	farmerID := uuid.New()
	cropID := uuid.New()

	existing := &entity.Crop{
		ID:             cropID,
		FarmerID:       farmerID,
		Name:           "Rice",
		Price:          3000,
		MinQuantity:    5,
		TotalAvailable: 100,
		Grade:          entity.GradeB,
		ImagePath:      "/uploads/rice-old.jpg",
	}
	fx.cropRepo.EXPECT().FindByID(ctx, cropID).Return(existing, nil)
	fx.artifactStore.EXPECT().
		Save(ctx, "wheat.jpg", "image/jpeg", mock.Anything).
		Return("/uploads/rice-new.jpg", nil)
	fx.cropRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Crop")).Return(nil)
	fx.artifactStore.EXPECT().Delete(ctx, "/uploads/rice-old.jpg").Return(nil)

	crop, err := fx.service.UpdateCrop(ctx, farmerID, cropID, &usecase.UpdateCropInput{Image: testImageUpload()})

	require.NoError(t, err)
	assert.Equal(t, "/uploads/rice-new.jpg", crop.ImagePath)
}

func TestCropService_ListCrops_PassesFilters(t *testing.T) {
	fx := createTestCropService(t)

	ctx := context.Background()
	expected := []*entity.Crop{{ID: uuid.New(), Name: "Wheat"}}

	fx.cropRepo.EXPECT().
		List(ctx, repository.CropFilter{Name: "wheat", Grade: entity.GradeA, MaxPrice: 2500}).
		Return(expected, nil)

	crops, err := fx.service.ListCrops(ctx, &usecase.ListCropsInput{
		Name:     "wheat",
		Grade:    entity.GradeA,
		MaxPrice: 2500,
	})

	require.NoError(t, err)
	assert.Equal(t, expected, crops)
}

func TestCropService_CropShareQR_Success(t *testing.T) {
	fx := createTestCropService(t)

	ctx := context.Background()
	cropID := uuid.New()
	pngBytes := []byte{0x89, 'P', 'N', 'G'}

	fx.cropRepo.EXPECT().FindByID(ctx, cropID).Return(&entity.Crop{ID: cropID}, nil)
	fx.qrService.EXPECT().GenerateCropShareQR(cropID).Return(pngBytes, nil)

	png, err := fx.service.CropShareQR(ctx, cropID)

	require.NoError(t, err)
	assert.Equal(t, pngBytes, png)
}

func TestCropService_CropShareQR_CropNotFound(t *testing.T) {
	fx := createTestCropService(t)

	ctx := context.Background()
	cropID := uuid.New()

	fx.cropRepo.EXPECT().FindByID(ctx, cropID).Return(nil, repository.ErrCropNotFound)

	png, err := fx.service.CropShareQR(ctx, cropID)

	require.Error(t, err)
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrCropNotFound)
}
