// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// userRepository implements the domain's UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading both role profiles.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("FarmerProfile").
		Preload("FirmProfile").
		Where("id = ?", id).
		First(&userM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address, preloading both role profiles.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("FarmerProfile").
		Preload("FirmProfile").
		Where("email = ?", email).
		First(&userM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity, including its associated profiles.
// GORM's Create with associations inserts into users, farmer_profiles and/or
// firm_profiles within a single statement batch.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid foreign key reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	if user.FarmerProfile != nil && userM.FarmerProfile != nil {
		user.FarmerProfile.UserID = userM.FarmerProfile.UserID
		user.FarmerProfile.UpdatedAt = userM.FarmerProfile.UpdatedAt
	}
	if user.FirmProfile != nil && userM.FirmProfile != nil {
		user.FirmProfile.UserID = userM.FirmProfile.UserID
		user.FirmProfile.UpdatedAt = userM.FirmProfile.UpdatedAt
	}

	return nil
}

// Update modifies an existing user entity, including its associated profiles.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	// Use Session with FullSaveAssociations to update nested associations
	if err := repo.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("invalid foreign key reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt
	if user.FarmerProfile != nil && userM.FarmerProfile != nil {
		user.FarmerProfile.UpdatedAt = userM.FarmerProfile.UpdatedAt
	}
	if user.FirmProfile != nil && userM.FirmProfile != nil {
		user.FirmProfile.UpdatedAt = userM.FirmProfile.UpdatedAt
	}

	return nil
}

// SaveFarmerProfile upserts the farmer profile row for a user.
func (repo *userRepository) SaveFarmerProfile(ctx context.Context, profile *entity.FarmerProfile) error {
	profileM := fromFarmerProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Save(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("no such user for farmer profile")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save farmer profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// SaveFirmProfile upserts the firm profile row for a user.
func (repo *userRepository) SaveFirmProfile(ctx context.Context, profile *entity.FirmProfile) error {
	profileM := fromFirmProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Save(profileM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("no such user for firm profile")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save firm profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// ListFarmers retrieves all users holding the farmer role, with their crop
// listings preloaded for the producer directory.
func (repo *userRepository) ListFarmers(ctx context.Context) ([]*entity.User, error) {
	var userMs []*model.UserModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN farmer_profiles ON farmer_profiles.user_id = users.id").
		Preload("FarmerProfile").
		Preload("FarmerProfile.Crops", func(db *gorm.DB) *gorm.DB {
			return db.Order("crops.created_at DESC")
		}).
		Order("users.created_at DESC").
		Find(&userMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list farmers")
	}

	users := make([]*entity.User, 0, len(userMs))
	for _, userM := range userMs {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// ListAll retrieves every registered user with both role profiles preloaded.
func (repo *userRepository) ListAll(ctx context.Context) ([]*entity.User, error) {
	var userMs []*model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("FarmerProfile").
		Preload("FirmProfile").
		Order("created_at DESC").
		Find(&userMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userMs))
	for _, userM := range userMs {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:            data.ID,
		Email:         data.Email,
		Name:          data.Name,
		FarmerProfile: toFarmerProfileDomain(data.FarmerProfile),
		FirmProfile:   toFirmProfileDomain(data.FirmProfile),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:            data.ID,
		Email:         data.Email,
		Name:          data.Name,
		FarmerProfile: fromFarmerProfileDomain(data.FarmerProfile),
		FirmProfile:   fromFirmProfileDomain(data.FirmProfile),
	}
}

// toFarmerProfileDomain converts a GORM FarmerProfileModel to a domain FarmerProfile entity.
func toFarmerProfileDomain(data *model.FarmerProfileModel) *entity.FarmerProfile {
	if data == nil {
		return nil
	}

	crops := make([]*entity.Crop, 0, len(data.Crops))
	for _, crop := range data.Crops {
		crops = append(crops, toCropDomain(crop))
	}

	return &entity.FarmerProfile{
		UserID:    data.UserID,
		Phone:     data.Phone,
		City:      data.City,
		State:     data.State,
		Crops:     crops,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromFarmerProfileDomain converts a domain FarmerProfile entity to a GORM FarmerProfileModel.
// Crops are persisted through their own repository, never through the profile.
func fromFarmerProfileDomain(data *entity.FarmerProfile) *model.FarmerProfileModel {
	if data == nil {
		return nil
	}

	return &model.FarmerProfileModel{
		UserID: data.UserID,
		Phone:  data.Phone,
		City:   data.City,
		State:  data.State,
	}
}

// toFirmProfileDomain converts a GORM FirmProfileModel to a domain FirmProfile entity.
func toFirmProfileDomain(data *model.FirmProfileModel) *entity.FirmProfile {
	if data == nil {
		return nil
	}

	return &entity.FirmProfile{
		UserID:        data.UserID,
		CompanyName:   data.CompanyName,
		ContactPerson: data.ContactPerson,
		Phone:         data.Phone,
		City:          data.City,
		State:         data.State,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromFirmProfileDomain converts a domain FirmProfile entity to a GORM FirmProfileModel.
func fromFirmProfileDomain(data *entity.FirmProfile) *model.FirmProfileModel {
	if data == nil {
		return nil
	}

	return &model.FirmProfileModel{
		UserID:        data.UserID,
		CompanyName:   data.CompanyName,
		ContactPerson: data.ContactPerson,
		Phone:         data.Phone,
		City:          data.City,
		State:         data.State,
	}
}
