package impl

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/repository"
	"farmlink/internal/domain/service"
	"farmlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxImageBytes caps a single crop image upload at 5 MB.
const maxImageBytes = 5 << 20

// Accepted upload formats, matched on both the file extension and the
// declared content type.
var (
	allowedImageExtensions = map[string]struct{}{
		".jpeg": {},
		".jpg":  {},
		".png":  {},
		".webp": {},
	}
	allowedImageContentTypes = map[string]struct{}{
		"image/jpeg": {},
		"image/jpg":  {},
		"image/png":  {},
		"image/webp": {},
	}
)

// validateImageUpload rejects anything that is not a plausible image before
// it can reach the publicly served uploads directory.
func validateImageUpload(image *usecase.ImageUpload) error {
	ext := strings.ToLower(filepath.Ext(image.Filename))
	if _, ok := allowedImageExtensions[ext]; !ok {
		return errors.Wrap(domainerrors.ErrImageTypeInvalid, "unsupported image extension")
	}
	if _, ok := allowedImageContentTypes[image.ContentType]; !ok {
		return errors.Wrap(domainerrors.ErrImageTypeInvalid, "unsupported image content type")
	}
	if image.Size > maxImageBytes {
		return errors.Wrap(domainerrors.ErrImageTooLarge, "image exceeds size limit")
	}

	return nil
}

// cropService implements the CropUsecase interface.
type cropService struct {
	cropRepo      repository.CropRepository
	artifactStore service.ArtifactStore
	qrService     service.QRCodeService
	logger        *slog.Logger
}

// CropServiceParams holds dependencies for CropService, injected by Fx.
type CropServiceParams struct {
	fx.In

	CropRepo      repository.CropRepository
	ArtifactStore service.ArtifactStore
	QRService     service.QRCodeService
	Logger        *slog.Logger
}

// NewCropService is the constructor for cropService.
func NewCropService(params CropServiceParams) usecase.CropUsecase {
	return &cropService{
		cropRepo:      params.CropRepo,
		artifactStore: params.ArtifactStore,
		qrService:     params.QRService,
		logger:        params.Logger,
	}
}

func (srv *cropService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCrops returns all listings matching the browse filters, newest first.
func (srv *cropService) ListCrops(ctx context.Context, input *usecase.ListCropsInput) ([]*entity.Crop, error) {
	filter := repository.CropFilter{}
	if input != nil {
		filter.Name = input.Name
		filter.Grade = input.Grade
		filter.MaxPrice = input.MaxPrice
	}

	crops, err := srv.cropRepo.List(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list crops", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list crops")
	}

	return crops, nil
}

// GetCrop returns a single listing by ID.
func (srv *cropService) GetCrop(ctx context.Context, cropID uuid.UUID) (*entity.Crop, error) {
	crop, err := srv.cropRepo.FindByID(ctx, cropID)
	if err != nil {
		if errors.Is(err, repository.ErrCropNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCropNotFound, "crop lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find crop")
	}

	return crop, nil
}

// CreateCrop publishes a new listing. The image is stored first; if the
// database insert then fails, the stored artifact is removed so no orphan
// file is left behind.
func (srv *cropService) CreateCrop(ctx context.Context, farmerID uuid.UUID, input *usecase.CreateCropInput) (*entity.Crop, error) {
	srv.log(ctx).Info("Creating crop listing", slog.Any("farmerID", farmerID), slog.String("name", input.Name))

	if input.Image == nil {
		return nil, errors.Wrap(domainerrors.ErrImageRequired, "crop image missing")
	}
	if err := validateImageUpload(input.Image); err != nil {
		return nil, err
	}

	crop := &entity.Crop{
		FarmerID:       farmerID,
		Name:           input.Name,
		Price:          input.Price,
		MinQuantity:    input.MinQuantity,
		TotalAvailable: input.TotalAvailable,
		Grade:          input.Grade,
	}
	if err := crop.Validate(); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "invalid crop listing")
	}

	imagePath, err := srv.artifactStore.Save(ctx, input.Image.Filename, input.Image.ContentType, input.Image.Reader)
	if err != nil {
		srv.log(ctx).Error("Failed to store crop image", slog.Any("farmerID", farmerID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrImageStoreFailed, "failed to store crop image")
	}
	crop.ImagePath = imagePath

	if err := srv.cropRepo.Create(ctx, crop); err != nil {
		// Compensate: the listing never existed, so its image must not either.
		if delErr := srv.artifactStore.Delete(ctx, imagePath); delErr != nil {
			srv.log(ctx).Warn("Failed to delete orphaned crop image", slog.String("path", imagePath), slog.Any("error", delErr))
		}
		srv.log(ctx).Error("Failed to create crop", slog.Any("farmerID", farmerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create crop")
	}

	return crop, nil
}

// UpdateCrop edits an existing listing. Only the owning farmer may do this,
// regardless of what the client claims.
func (srv *cropService) UpdateCrop(ctx context.Context, farmerID, cropID uuid.UUID, input *usecase.UpdateCropInput) (*entity.Crop, error) {
	srv.log(ctx).Info("Updating crop listing", slog.Any("farmerID", farmerID), slog.Any("cropID", cropID))

	crop, err := srv.cropRepo.FindByID(ctx, cropID)
	if err != nil {
		if errors.Is(err, repository.ErrCropNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCropNotFound, "crop lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find crop")
	}

	if crop.FarmerID != farmerID {
		srv.log(ctx).Warn("Crop update denied", slog.Any("farmerID", farmerID), slog.Any("cropID", cropID))

		return nil, errors.Wrap(domainerrors.ErrCropOwnershipViolation, "crop belongs to another farmer")
	}

	if input.Name != nil {
		crop.Name = *input.Name
	}
	if input.Price != nil {
		crop.Price = *input.Price
	}
	if input.MinQuantity != nil {
		crop.MinQuantity = *input.MinQuantity
	}
	if input.TotalAvailable != nil {
		crop.TotalAvailable = *input.TotalAvailable
	}
	if input.Grade != nil {
		crop.Grade = *input.Grade
	}

	if err := crop.Validate(); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "invalid crop listing")
	}

	oldImagePath := crop.ImagePath
	if input.Image != nil {
		if err := validateImageUpload(input.Image); err != nil {
			return nil, err
		}

		imagePath, err := srv.artifactStore.Save(ctx, input.Image.Filename, input.Image.ContentType, input.Image.Reader)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrImageStoreFailed, "failed to store crop image")
		}
		crop.ImagePath = imagePath
	}

	if err := srv.cropRepo.Update(ctx, crop); err != nil {
		if input.Image != nil {
			if delErr := srv.artifactStore.Delete(ctx, crop.ImagePath); delErr != nil {
				srv.log(ctx).Warn("Failed to delete orphaned crop image", slog.String("path", crop.ImagePath), slog.Any("error", delErr))
			}
		}

		return nil, errors.Wrap(err, "failed to update crop")
	}

	// The replaced image is no longer referenced by anything.
	if input.Image != nil && oldImagePath != "" {
		if delErr := srv.artifactStore.Delete(ctx, oldImagePath); delErr != nil {
			srv.log(ctx).Warn("Failed to delete replaced crop image", slog.String("path", oldImagePath), slog.Any("error", delErr))
		}
	}

	return crop, nil
}

// MyCrops returns all listings owned by the farmer, newest first.
func (srv *cropService) MyCrops(ctx context.Context, farmerID uuid.UUID) ([]*entity.Crop, error) {
	crops, err := srv.cropRepo.ListByFarmerID(ctx, farmerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list farmer crops", slog.Any("farmerID", farmerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list farmer crops")
	}

	return crops, nil
}

// CropShareQR renders a QR code pointing at the listing's public page.
func (srv *cropService) CropShareQR(ctx context.Context, cropID uuid.UUID) ([]byte, error) {
	// Verify the listing exists before minting a code for it.
	if _, err := srv.cropRepo.FindByID(ctx, cropID); err != nil {
		if errors.Is(err, repository.ErrCropNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCropNotFound, "crop lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find crop")
	}

	png, err := srv.qrService.GenerateCropShareQR(cropID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate crop QR code", slog.Any("cropID", cropID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate crop QR code")
	}

	return png, nil
}
