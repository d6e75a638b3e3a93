package postgres

import (
	"context"

	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/repository"
	"farmlink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cropRepository implements the domain's CropRepository interface using GORM.
type cropRepository struct {
	db *gorm.DB
}

// NewCropRepository is the constructor for cropRepository.
func NewCropRepository(db *gorm.DB) repository.CropRepository {
	return &cropRepository{db: db}
}

// FindByID retrieves a single crop by its unique ID.
func (repo *cropRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Crop, error) {
	var cropM model.CropModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cropM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCropNotFound
		}

		return nil, errors.Wrap(err, "failed to find crop by id")
	}

	return toCropDomain(&cropM), nil
}

// List retrieves all crop listings matching the filter, newest first.
func (repo *cropRepository) List(ctx context.Context, filter repository.CropFilter) ([]*entity.Crop, error) {
	query := repo.db.WithContext(ctx).Model(&model.CropModel{})

	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Grade != "" {
		query = query.Where("grade = ?", string(filter.Grade))
	}
	if filter.MaxPrice > 0 {
		query = query.Where("price <= ?", filter.MaxPrice)
	}

	var cropMs []*model.CropModel
	if err := query.Order("created_at DESC").Find(&cropMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list crops")
	}

	return toCropDomains(cropMs), nil
}

// ListByFarmerID retrieves all crops owned by a specific farmer, newest first.
func (repo *cropRepository) ListByFarmerID(ctx context.Context, farmerID uuid.UUID) ([]*entity.Crop, error) {
	var cropMs []*model.CropModel
	err := repo.db.WithContext(ctx).
		Where("farmer_id = ?", farmerID).
		Order("created_at DESC").
		Find(&cropMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list crops by farmer id")
	}

	return toCropDomains(cropMs), nil
}

// Create persists a new crop listing.
func (repo *cropRepository) Create(ctx context.Context, crop *entity.Crop) error {
	cropM := fromCropDomain(crop)

	if err := repo.db.WithContext(ctx).Create(cropM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("no farmer profile for crop owner")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required crop information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create crop")
	}

	crop.ID = cropM.ID
	crop.CreatedAt = cropM.CreatedAt
	crop.UpdatedAt = cropM.UpdatedAt

	return nil
}

// Update modifies an existing crop listing.
func (repo *cropRepository) Update(ctx context.Context, crop *entity.Crop) error {
	cropM := fromCropDomain(crop)

	if err := repo.db.WithContext(ctx).Save(cropM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update crop")
	}

	crop.UpdatedAt = cropM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toCropDomain(data *model.CropModel) *entity.Crop {
	if data == nil {
		return nil
	}

	return &entity.Crop{
		ID:             data.ID,
		FarmerID:       data.FarmerID,
		Name:           data.Name,
		Price:          data.Price,
		MinQuantity:    data.MinQuantity,
		TotalAvailable: data.TotalAvailable,
		Grade:          entity.CropGrade(data.Grade),
		ImagePath:      data.ImagePath,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toCropDomains(data []*model.CropModel) []*entity.Crop {
	crops := make([]*entity.Crop, 0, len(data))
	for _, cropM := range data {
		crops = append(crops, toCropDomain(cropM))
	}

	return crops
}

func fromCropDomain(data *entity.Crop) *model.CropModel {
	if data == nil {
		return nil
	}

	return &model.CropModel{
		ID:             data.ID,
		FarmerID:       data.FarmerID,
		Name:           data.Name,
		Price:          data.Price,
		MinQuantity:    data.MinQuantity,
		TotalAvailable: data.TotalAvailable,
		Grade:          string(data.Grade),
		ImagePath:      data.ImagePath,
	}
}
