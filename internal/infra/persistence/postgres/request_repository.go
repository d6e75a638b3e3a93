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

// cropRequestRepository implements the domain's CropRequestRepository interface using GORM.
type cropRequestRepository struct {
	db *gorm.DB
}

// NewCropRequestRepository is the constructor for cropRequestRepository.
func NewCropRequestRepository(db *gorm.DB) repository.CropRequestRepository {
	return &cropRequestRepository{db: db}
}

// FindByID retrieves a single request by its unique ID.
func (repo *cropRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CropRequest, error) {
	var requestM model.CropRequestModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find crop request by id")
	}

	return toCropRequestDomain(&requestM), nil
}

// ListByFirmID retrieves all requests created by a firm, newest first, with
// the referenced crop and its farmer resolved.
func (repo *cropRequestRepository) ListByFirmID(ctx context.Context, firmID uuid.UUID) ([]*entity.CropRequest, error) {
	var requestMs []*model.CropRequestModel
	err := repo.db.WithContext(ctx).
		Preload("Crop").
		Preload("Farmer").
		Where("firm_id = ?", firmID).
		Order("created_at DESC").
		Find(&requestMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list crop requests by firm id")
	}

	return toCropRequestDomains(requestMs), nil
}

// ListByFarmerID retrieves all requests addressed to a farmer, newest first,
// with the referenced crop and requesting firm resolved.
func (repo *cropRequestRepository) ListByFarmerID(ctx context.Context, farmerID uuid.UUID) ([]*entity.CropRequest, error) {
	var requestMs []*model.CropRequestModel
	err := repo.db.WithContext(ctx).
		Preload("Crop").
		Preload("Firm").
		Where("farmer_id = ?", farmerID).
		Order("created_at DESC").
		Find(&requestMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list crop requests by farmer id")
	}

	return toCropRequestDomains(requestMs), nil
}

// Create persists a new targeted request.
func (repo *cropRequestRepository) Create(ctx context.Context, request *entity.CropRequest) error {
	requestM := fromCropRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("request references a missing crop or firm")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create crop request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// UpdateStatusIfPending transitions the request to the given status only if
// it is still Pending. The WHERE clause makes the transition atomic: of two
// concurrent decisions, exactly one updates the row.
func (repo *cropRequestRepository) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status entity.RequestStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CropRequestModel{}).
		Where("id = ? AND status = ?", id, string(entity.StatusPending)).
		Update("status", string(status))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update crop request status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRequestNotPending
	}

	return nil
}

// buyRequestRepository implements the domain's BuyRequestRepository interface using GORM.
type buyRequestRepository struct {
	db *gorm.DB
}

// NewBuyRequestRepository is the constructor for buyRequestRepository.
func NewBuyRequestRepository(db *gorm.DB) repository.BuyRequestRepository {
	return &buyRequestRepository{db: db}
}

// FindByID retrieves a single open request by its unique ID.
func (repo *buyRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BuyRequest, error) {
	var requestM model.BuyRequestModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find buy request by id")
	}

	return toBuyRequestDomain(&requestM), nil
}

// ListByFirmID retrieves all open requests created by a firm, newest first.
func (repo *buyRequestRepository) ListByFirmID(ctx context.Context, firmID uuid.UUID) ([]*entity.BuyRequest, error) {
	var requestMs []*model.BuyRequestModel
	err := repo.db.WithContext(ctx).
		Where("firm_id = ?", firmID).
		Order("created_at DESC").
		Find(&requestMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list buy requests by firm id")
	}

	return toBuyRequestDomains(requestMs), nil
}

// ListPending retrieves all open requests still awaiting a decision, newest
// first, with the posting firm resolved.
func (repo *buyRequestRepository) ListPending(ctx context.Context) ([]*entity.BuyRequest, error) {
	var requestMs []*model.BuyRequestModel
	err := repo.db.WithContext(ctx).
		Preload("Firm").
		Where("status = ?", string(entity.StatusPending)).
		Order("created_at DESC").
		Find(&requestMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending buy requests")
	}

	return toBuyRequestDomains(requestMs), nil
}

// Create persists a new open request.
func (repo *buyRequestRepository) Create(ctx context.Context, request *entity.BuyRequest) error {
	requestM := fromBuyRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("request references a missing firm")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create buy request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt
	request.UpdatedAt = requestM.UpdatedAt

	return nil
}

// UpdateStatusIfPending transitions the request to the given status only if it is still Pending.
func (repo *buyRequestRepository) UpdateStatusIfPending(ctx context.Context, id uuid.UUID, status entity.RequestStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BuyRequestModel{}).
		Where("id = ? AND status = ?", id, string(entity.StatusPending)).
		Update("status", string(status))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update buy request status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRequestNotPending
	}

	return nil
}

// --- Mapper Functions ---

func toCropRequestDomain(data *model.CropRequestModel) *entity.CropRequest {
	if data == nil {
		return nil
	}

	return &entity.CropRequest{
		ID:          data.ID,
		CropID:      data.CropID,
		FarmerID:    data.FarmerID,
		FirmID:      data.FirmID,
		Deadline:    data.Deadline,
		Requirement: data.Requirement,
		Status:      entity.RequestStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		Crop:        toCropDomain(data.Crop),
		Firm:        toFirmProfileDomain(data.Firm),
		Farmer:      toFarmerProfileDomain(data.Farmer),
	}
}

func toCropRequestDomains(data []*model.CropRequestModel) []*entity.CropRequest {
	requests := make([]*entity.CropRequest, 0, len(data))
	for _, requestM := range data {
		requests = append(requests, toCropRequestDomain(requestM))
	}

	return requests
}

func fromCropRequestDomain(data *entity.CropRequest) *model.CropRequestModel {
	if data == nil {
		return nil
	}

	return &model.CropRequestModel{
		ID:          data.ID,
		CropID:      data.CropID,
		FarmerID:    data.FarmerID,
		FirmID:      data.FirmID,
		Deadline:    data.Deadline,
		Requirement: data.Requirement,
		Status:      string(data.Status),
	}
}

func toBuyRequestDomain(data *model.BuyRequestModel) *entity.BuyRequest {
	if data == nil {
		return nil
	}

	return &entity.BuyRequest{
		ID:          data.ID,
		FirmID:      data.FirmID,
		CropName:    data.CropName,
		Deadline:    data.Deadline,
		Requirement: data.Requirement,
		Status:      entity.RequestStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		Firm:        toFirmProfileDomain(data.Firm),
	}
}

func toBuyRequestDomains(data []*model.BuyRequestModel) []*entity.BuyRequest {
	requests := make([]*entity.BuyRequest, 0, len(data))
	for _, requestM := range data {
		requests = append(requests, toBuyRequestDomain(requestM))
	}

	return requests
}

func fromBuyRequestDomain(data *entity.BuyRequest) *model.BuyRequestModel {
	if data == nil {
		return nil
	}

	return &model.BuyRequestModel{
		ID:          data.ID,
		FirmID:      data.FirmID,
		CropName:    data.CropName,
		Deadline:    data.Deadline,
		Requirement: data.Requirement,
		Status:      string(data.Status),
	}
}
