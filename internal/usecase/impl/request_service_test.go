package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/repository"
	mockRepo "farmlink/internal/mocks/repository"
	mockService "farmlink/internal/mocks/service"
	"farmlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// requestServiceFixtures holds all test dependencies for request service tests.
type requestServiceFixtures struct {
	service         usecase.RequestUsecase
	txManager       *mockRepo.MockTransactionManager
	cropRepo        *mockRepo.MockCropRepository
	cropRequestRepo *mockRepo.MockCropRequestRepository
	buyRequestRepo  *mockRepo.MockBuyRequestRepository
	userRepo        *mockRepo.MockUserRepository
	smsSender       *mockService.MockSMSSender
}

func createTestRequestService(t *testing.T) requestServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	cropRepo := mockRepo.NewMockCropRepository(t)
	cropRequestRepo := mockRepo.NewMockCropRequestRepository(t)
	buyRequestRepo := mockRepo.NewMockBuyRequestRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	smsSender := mockService.NewMockSMSSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewRequestService(RequestServiceParams{
		TxManager:       txManager,
		CropRepo:        cropRepo,
		CropRequestRepo: cropRequestRepo,
		BuyRequestRepo:  buyRequestRepo,
		UserRepo:        userRepo,
		SMSSender:       smsSender,
		Logger:          logger,
	})

	return requestServiceFixtures{
		service:         service,
		txManager:       txManager,
		cropRepo:        cropRepo,
		cropRequestRepo: cropRequestRepo,
		buyRequestRepo:  buyRequestRepo,
		userRepo:        userRepo,
		smsSender:       smsSender,
	}
}

func TestRequestService_CreateCropRequest_Success(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	firmID := uuid.New()
	farmerID := uuid.New()
	cropID := uuid.New()
	deadline := time.Now().AddDate(0, 0, 7)

	crop := &entity.Crop{
		ID:       cropID,
		FarmerID: farmerID,
		Name:     "Wheat",
	}
	farmer := &entity.User{
		ID: farmerID,
		FarmerProfile: &entity.FarmerProfile{
			UserID: farmerID,
			Phone:  "+919876543210",
		},
	}

	smsSent := make(chan struct{})
	fx.smsSender.EXPECT().
		Send(mock.Anything, "+919876543210", mock.AnythingOfType("string")).
		Run(func(ctx context.Context, phone string, message string) {
			assert.Contains(t, message, "Wheat")
			close(smsSent)
		}).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCropRepo := mockRepo.NewMockCropRepository(t)
			mockRequestRepo := mockRepo.NewMockCropRequestRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().CropRepo().Return(mockCropRepo)
			mockFactory.EXPECT().CropRequestRepo().Return(mockRequestRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockCropRepo.EXPECT().FindByID(ctx, cropID).Return(crop, nil)
			mockUserRepo.EXPECT().FindByID(ctx, farmerID).Return(farmer, nil)
			mockRequestRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.CropRequest")).
				Run(func(ctx context.Context, request *entity.CropRequest) {
					request.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	request, err := fx.service.CreateCropRequest(ctx, firmID, &usecase.CreateCropRequestInput{
		CropID:      cropID,
		Deadline:    deadline,
		Requirement: "500 quintals, moisture below 12%",
	})

	require.NoError(t, err)
	require.NotNil(t, request)
	assert.Equal(t, entity.StatusPending, request.Status)
	assert.Equal(t, firmID, request.FirmID)
	// The farmer is resolved from the crop row, never trusted from the client.
	assert.Equal(t, farmerID, request.FarmerID)
	assert.Equal(t, cropID, request.CropID)

	select {
	case <-smsSent:
	case <-time.After(2 * time.Second):
		t.Fatal("expected SMS notification to be attempted")
	}
}

func TestRequestService_CreateCropRequest_StaleDeadline(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()

	request, err := fx.service.CreateCropRequest(ctx, uuid.New(), &usecase.CreateCropRequestInput{
		CropID:      uuid.New(),
		Deadline:    time.Now().AddDate(0, 0, -1),
		Requirement: "too late",
	})

	require.Error(t, err)
	assert.Nil(t, request)
	assert.ErrorIs(t, err, domainerrors.ErrDeadlineInPast)
	// Nothing may be persisted: no transaction expectations were set.
}

func TestRequestService_CreateCropRequest_TodayDeadlineAccepted(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	firmID := uuid.New()
	farmerID := uuid.New()
	cropID := uuid.New()

	crop := &entity.Crop{ID: cropID, FarmerID: farmerID, Name: "Rice"}
	// No phone on the profile, so no SMS attempt is expected.
	farmer := &entity.User{ID: farmerID, FarmerProfile: &entity.FarmerProfile{UserID: farmerID}}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCropRepo := mockRepo.NewMockCropRepository(t)
			mockRequestRepo := mockRepo.NewMockCropRequestRepository(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().CropRepo().Return(mockCropRepo)
			mockFactory.EXPECT().CropRequestRepo().Return(mockRequestRepo)
			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockCropRepo.EXPECT().FindByID(ctx, cropID).Return(crop, nil)
			mockUserRepo.EXPECT().FindByID(ctx, farmerID).Return(farmer, nil)
			mockRequestRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.CropRequest")).Return(nil)

			return fn(mockFactory)
		})

	request, err := fx.service.CreateCropRequest(ctx, firmID, &usecase.CreateCropRequestInput{
		CropID:      cropID,
		Deadline:    time.Now(),
		Requirement: "same-day pickup",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, request.Status)
}

func TestRequestService_CreateCropRequest_CropNotFound(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	cropID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCropRepo := mockRepo.NewMockCropRepository(t)

			mockFactory.EXPECT().CropRepo().Return(mockCropRepo)
			mockFactory.EXPECT().CropRequestRepo().Return(mockRepo.NewMockCropRequestRepository(t))
			mockFactory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))
			mockCropRepo.EXPECT().FindByID(ctx, cropID).Return(nil, repository.ErrCropNotFound)

			return fn(mockFactory)
		})

	request, err := fx.service.CreateCropRequest(ctx, uuid.New(), &usecase.CreateCropRequestInput{
		CropID:      cropID,
		Deadline:    time.Now().AddDate(0, 0, 3),
		Requirement: "anything",
	})

	require.Error(t, err)
	assert.Nil(t, request)
	assert.ErrorIs(t, err, domainerrors.ErrCropNotFound)
}

func TestRequestService_CreateBuyRequest_Success(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	firmID := uuid.New()

	fx.buyRequestRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.BuyRequest")).
		Return(nil)

	request, err := fx.service.CreateBuyRequest(ctx, firmID, &usecase.CreateBuyRequestInput{
		CropName:    "Soybean",
		Deadline:    time.Now().AddDate(0, 1, 0),
		Requirement: "200 quintals",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, request.Status)
	assert.Equal(t, firmID, request.FirmID)
	assert.Equal(t, "Soybean", request.CropName)
}

func TestRequestService_CreateBuyRequest_StaleDeadline(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()

	request, err := fx.service.CreateBuyRequest(ctx, uuid.New(), &usecase.CreateBuyRequestInput{
		CropName:    "Soybean",
		Deadline:    time.Now().AddDate(0, 0, -2),
		Requirement: "200 quintals",
	})

	require.Error(t, err)
	assert.Nil(t, request)
	assert.ErrorIs(t, err, domainerrors.ErrDeadlineInPast)
}

func TestRequestService_AcceptCropRequest_Success(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	farmerID := uuid.New()
	requestID := uuid.New()

	pending := &entity.CropRequest{
		ID:       requestID,
		FarmerID: farmerID,
		Status:   entity.StatusPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRequestRepo := mockRepo.NewMockCropRequestRepository(t)

			mockFactory.EXPECT().CropRequestRepo().Return(mockRequestRepo)
			mockRequestRepo.EXPECT().FindByID(ctx, requestID).Return(pending, nil)
			mockRequestRepo.EXPECT().UpdateStatusIfPending(ctx, requestID, entity.StatusAccepted).Return(nil)

			return fn(mockFactory)
		})

	resolved, err := fx.service.AcceptCropRequest(ctx, farmerID, requestID)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusAccepted, resolved.Status)
}

func TestRequestService_AcceptCropRequest_NotOwner(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	requestID := uuid.New()

	pending := &entity.CropRequest{
		ID:       requestID,
		FarmerID: uuid.New(),
		Status:   entity.StatusPending,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRequestRepo := mockRepo.NewMockCropRequestRepository(t)

			mockFactory.EXPECT().CropRequestRepo().Return(mockRequestRepo)
			mockRequestRepo.EXPECT().FindByID(ctx, requestID).Return(pending, nil)

			return fn(mockFactory)
		})

	resolved, err := fx.service.AcceptCropRequest(ctx, uuid.New(), requestID)

	require.Error(t, err)
	assert.Nil(t, resolved)
	assert.ErrorIs(t, err, domainerrors.ErrRequestOwnershipViolation)
}

func TestRequestService_AcceptCropRequest_AlreadyResolved(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	farmerID := uuid.New()
	requestID := uuid.New()

	accepted := &entity.CropRequest{
		ID:       requestID,
		FarmerID: farmerID,
		Status:   entity.StatusAccepted,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRequestRepo := mockRepo.NewMockCropRequestRepository(t)

			mockFactory.EXPECT().CropRequestRepo().Return(mockRequestRepo)
			mockRequestRepo.EXPECT().FindByID(ctx, requestID).Return(accepted, nil)

			return fn(mockFactory)
		})

	resolved, err := fx.service.RejectCropRequest(ctx, farmerID, requestID)

	require.Error(t, err)
	assert.Nil(t, resolved)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "REQUEST_ALREADY_RESOLVED", appErr.ErrorCode())
	// The conflict names the status that actually won.
	assert.Contains(t, appErr.Message(), "Accepted")
}

func TestRequestService_AcceptCropRequest_LosesRace(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	farmerID := uuid.New()
	requestID := uuid.New()

	pending := &entity.CropRequest{
		ID:       requestID,
		FarmerID: farmerID,
		Status:   entity.StatusPending,
	}
	rejected := &entity.CropRequest{
		ID:       requestID,
		FarmerID: farmerID,
		Status:   entity.StatusRejected,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRequestRepo := mockRepo.NewMockCropRequestRepository(t)

			mockFactory.EXPECT().CropRequestRepo().Return(mockRequestRepo)
			// First read still sees Pending; a concurrent reject wins before
			// the conditional update lands.
			mockRequestRepo.EXPECT().FindByID(ctx, requestID).Return(pending, nil).Once()
			mockRequestRepo.EXPECT().UpdateStatusIfPending(ctx, requestID, entity.StatusAccepted).Return(repository.ErrRequestNotPending)
			mockRequestRepo.EXPECT().FindByID(ctx, requestID).Return(rejected, nil).Once()

			return fn(mockFactory)
		})

	resolved, err := fx.service.AcceptCropRequest(ctx, farmerID, requestID)

	require.Error(t, err)
	assert.Nil(t, resolved)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "REQUEST_ALREADY_RESOLVED", appErr.ErrorCode())
	assert.Contains(t, appErr.Message(), "Rejected")
}

func TestRequestService_AcceptBuyRequest_Success(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	farmerID := uuid.New()
	requestID := uuid.New()

	farmer := &entity.User{
		ID:            farmerID,
		FarmerProfile: &entity.FarmerProfile{UserID: farmerID},
	}
	pending := &entity.BuyRequest{
		ID:     requestID,
		FirmID: uuid.New(),
		Status: entity.StatusPending,
	}

	fx.userRepo.EXPECT().FindByID(ctx, farmerID).Return(farmer, nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRequestRepo := mockRepo.NewMockBuyRequestRepository(t)

			mockFactory.EXPECT().BuyRequestRepo().Return(mockRequestRepo)
			mockRequestRepo.EXPECT().FindByID(ctx, requestID).Return(pending, nil)
			mockRequestRepo.EXPECT().UpdateStatusIfPending(ctx, requestID, entity.StatusAccepted).Return(nil)

			return fn(mockFactory)
		})

	resolved, err := fx.service.AcceptBuyRequest(ctx, farmerID, requestID)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusAccepted, resolved.Status)
}

func TestRequestService_AcceptBuyRequest_RequiresFarmerRole(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	callerID := uuid.New()

	// A firm-only account must not be able to claim open requests.
	firmOnly := &entity.User{
		ID:          callerID,
		FirmProfile: &entity.FirmProfile{UserID: callerID},
	}

	fx.userRepo.EXPECT().FindByID(ctx, callerID).Return(firmOnly, nil)

	resolved, err := fx.service.AcceptBuyRequest(ctx, callerID, uuid.New())

	require.Error(t, err)
	assert.Nil(t, resolved)
	assert.ErrorIs(t, err, domainerrors.ErrRoleRequired)
}

func TestRequestService_ListScoping(t *testing.T) {
	fx := createTestRequestService(t)

	ctx := context.Background()
	firmID := uuid.New()
	farmerID := uuid.New()

	firmRequests := []*entity.CropRequest{{ID: uuid.New(), FirmID: firmID}}
	incoming := []*entity.CropRequest{{ID: uuid.New(), FarmerID: farmerID}}
	pendingOpen := []*entity.BuyRequest{{ID: uuid.New(), Status: entity.StatusPending}}

	fx.cropRequestRepo.EXPECT().ListByFirmID(ctx, firmID).Return(firmRequests, nil)
	fx.cropRequestRepo.EXPECT().ListByFarmerID(ctx, farmerID).Return(incoming, nil)
	fx.buyRequestRepo.EXPECT().ListPending(ctx).Return(pendingOpen, nil)

	mine, err := fx.service.MyCropRequests(ctx, firmID)
	require.NoError(t, err)
	assert.Equal(t, firmRequests, mine)

	addressed, err := fx.service.IncomingRequests(ctx, farmerID)
	require.NoError(t, err)
	assert.Equal(t, incoming, addressed)

	open, err := fx.service.PendingBuyRequests(ctx)
	require.NoError(t, err)
	assert.Equal(t, pendingOpen, open)
}
