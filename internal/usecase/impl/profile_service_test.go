package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/repository"
	mockRepo "farmlink/internal/mocks/repository"
	"farmlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service  usecase.ProfileUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewProfileService(ProfileServiceParams{
		UserRepo: userRepo,
		Logger:   logger,
	})

	return profileServiceFixtures{
		service:  service,
		userRepo: userRepo,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{
		ID:            userID,
		Name:          "Ramesh",
		FarmerProfile: &entity.FarmerProfile{UserID: userID, City: "Nashik"},
	}
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

	got, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	got, err := fx.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UpdateFarmerProfile_PartialFields(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{
		ID: userID,
		FarmerProfile: &entity.FarmerProfile{
			UserID: userID,
			Phone:  "+911111111111",
			City:   "Nashik",
			State:  "Maharashtra",
		},
	}
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.userRepo.EXPECT().
		SaveFarmerProfile(ctx, mock.AnythingOfType("*entity.FarmerProfile")).
		Run(func(ctx context.Context, profile *entity.FarmerProfile) {
			assert.Equal(t, "Pune", profile.City)
			// Fields not present in the input keep their stored values.
			assert.Equal(t, "+911111111111", profile.Phone)
			assert.Equal(t, "Maharashtra", profile.State)
		}).
		Return(nil)

	newCity := "Pune"
	err := fx.service.UpdateFarmerProfile(ctx, userID, &usecase.UpdateFarmerProfileInput{City: &newCity})

	require.NoError(t, err)
}

func TestProfileService_UpdateFarmerProfile_NoProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	firmOnly := &entity.User{
		ID:          userID,
		FirmProfile: &entity.FirmProfile{UserID: userID},
	}
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(firmOnly, nil)

	newCity := "Pune"
	err := fx.service.UpdateFarmerProfile(ctx, userID, &usecase.UpdateFarmerProfileInput{City: &newCity})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_UpdateFirmProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{
		ID: userID,
		FirmProfile: &entity.FirmProfile{
			UserID:      userID,
			CompanyName: "Old Traders",
		},
	}
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.userRepo.EXPECT().
		SaveFirmProfile(ctx, mock.AnythingOfType("*entity.FirmProfile")).
		Run(func(ctx context.Context, profile *entity.FirmProfile) {
			assert.Equal(t, "New Traders", profile.CompanyName)
		}).
		Return(nil)

	newName := "New Traders"
	err := fx.service.UpdateFirmProfile(ctx, userID, &usecase.UpdateFirmProfileInput{CompanyName: &newName})

	require.NoError(t, err)
}

func TestProfileService_ListFarmers(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	farmers := []*entity.User{
		{ID: uuid.New(), FarmerProfile: &entity.FarmerProfile{City: "Nashik"}},
	}

	fx.userRepo.EXPECT().ListFarmers(ctx).Return(farmers, nil)

	got, err := fx.service.ListFarmers(ctx)

	require.NoError(t, err)
	assert.Equal(t, farmers, got)
}

func TestProfileService_ListAllUsers(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	users := []*entity.User{{ID: uuid.New()}, {ID: uuid.New()}}

	fx.userRepo.EXPECT().ListAll(ctx).Return(users, nil)

	got, err := fx.service.ListAllUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, users, got)
}
