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
	"farmlink/internal/domain/service"
	mockRepo "farmlink/internal/mocks/repository"
	mockService "farmlink/internal/mocks/service"
	"farmlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          usecase.UserUsecase
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockService.MockPasswordHasher
	tokenService     *mockService.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewUserService(UserServiceParams{
		TxManager:        txManager,
		UserRepo:         userRepo,
		AuthRepo:         authRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Logger:           logger,
	})

	return userServiceFixtures{
		service:          svc,
		txManager:        txManager,
		userRepo:         userRepo,
		authRepo:         authRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

func TestUserService_RegisterFarmer_NewAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	email := "ramesh@example.com"

	fx.hasher.EXPECT().Hash("password123").Return("hashed_password", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, email).
				Return(nil, repository.ErrAuthNotFound)
			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)
			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Run(func(ctx context.Context, auth *entity.Authentication) {
					assert.Equal(t, "hashed_password", auth.PasswordHash)
					assert.Equal(t, email, auth.ProviderUserID)
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterFarmer(ctx, &usecase.RegisterFarmerInput{
		Name:     "Ramesh",
		Email:    email,
		Password: "password123",
		Phone:    "+919876543210",
		City:     "Nashik",
		State:    "Maharashtra",
	})

	require.NoError(t, err)
	require.NotNil(t, output.User)
	require.NotNil(t, output.User.FarmerProfile)
	assert.Equal(t, "+919876543210", output.User.FarmerProfile.Phone)
	assert.Nil(t, output.User.FirmProfile)
}

func TestUserService_RegisterFirm_AttachesProfileToExistingAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	email := "ramesh@example.com"
	userID := uuid.New()

	authRecord := &entity.Authentication{
		UserID:         userID,
		Provider:       entity.ProviderTypeEmail,
		ProviderUserID: email,
		PasswordHash:   "hashed_password",
	}
	existing := &entity.User{
		ID:            userID,
		Name:          "Ramesh",
		Email:         email,
		FarmerProfile: &entity.FarmerProfile{UserID: userID},
	}

	fx.hasher.EXPECT().Check("password123", "hashed_password").Return(true)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, email).
				Return(authRecord, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)
			mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterFirm(ctx, &usecase.RegisterFirmInput{
		Name:        "Ramesh",
		Email:       email,
		Password:    "password123",
		CompanyName: "Ramesh Agro Traders",
	})

	require.NoError(t, err)
	// The same account now holds both roles.
	require.NotNil(t, output.User.FarmerProfile)
	require.NotNil(t, output.User.FirmProfile)
	assert.Equal(t, "Ramesh Agro Traders", output.User.FirmProfile.CompanyName)
}

func TestUserService_RegisterFirm_ProfileAlreadyExists(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	email := "buyer@example.com"
	userID := uuid.New()

	authRecord := &entity.Authentication{
		UserID:         userID,
		Provider:       entity.ProviderTypeEmail,
		ProviderUserID: email,
		PasswordHash:   "hashed_password",
	}
	existing := &entity.User{
		ID:          userID,
		Email:       email,
		FirmProfile: &entity.FirmProfile{UserID: userID},
	}

	fx.hasher.EXPECT().Check("password123", "hashed_password").Return(true)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().AuthRepo().Return(mockAuthRepo)
			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeEmail, email).
				Return(authRecord, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterFirm(ctx, &usecase.RegisterFirmInput{
		Email:       email,
		Password:    "password123",
		CompanyName: "Duplicate Traders",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	email := "ramesh@example.com"
	userID := uuid.New()

	authRecord := &entity.Authentication{
		UserID:         userID,
		Provider:       entity.ProviderTypeEmail,
		ProviderUserID: email,
		PasswordHash:   "hashed_password",
	}
	user := &entity.User{
		ID:            userID,
		Email:         email,
		FarmerProfile: &entity.FarmerProfile{UserID: userID},
	}

	fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, email).Return(authRecord, nil)
	fx.hasher.EXPECT().Check("password123", "hashed_password").Return(true)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.tokenService.EXPECT().
		GenerateTokens(userID, []string{entity.RoleFarmer.String()}).
		Return("access-token", "refresh-token", nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-token-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, "refresh-token-hash", token.TokenHash)
			assert.Equal(t, userID, token.UserID)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: email, Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	email := "ramesh@example.com"

	authRecord := &entity.Authentication{
		UserID:       uuid.New(),
		PasswordHash: "hashed_password",
	}

	fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, email).Return(authRecord, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: email, Password: "wrong"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "nobody@example.com").
		Return(nil, repository.ErrAuthNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "x"})

	require.Error(t, err)
	assert.Nil(t, output)
	// Unknown accounts and wrong passwords are indistinguishable to the caller.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_RefreshToken_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	claims := &service.Claims{
		UserID: userID,
		Roles:  []string{entity.RoleFarmer.String()},
		Type:   service.TokenTypeRefresh,
	}
	user := &entity.User{
		ID:            userID,
		FarmerProfile: &entity.FarmerProfile{UserID: userID},
	}
	storedToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: "refresh-token-hash",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenService.EXPECT().ValidateToken("refresh-token").Return(claims, nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-token-hash")
	fx.tokenService.EXPECT().
		GenerateTokens(userID, []string{entity.RoleFarmer.String()}).
		Return("new-access-token", "unused-refresh", nil)
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
			mockRefreshRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-token-hash").Return(storedToken, nil)
			mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "new-access-token", output.AccessToken)
}

func TestUserService_RefreshToken_RejectsAccessToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	claims := &service.Claims{
		UserID: uuid.New(),
		Type:   service.TokenTypeAccess,
	}
	fx.tokenService.EXPECT().ValidateToken("access-token").Return(claims, nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "access-token"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_RefreshToken_ExpiredSession(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()

	claims := &service.Claims{
		UserID: userID,
		Type:   service.TokenTypeRefresh,
	}
	storedToken := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: "refresh-token-hash",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.tokenService.EXPECT().ValidateToken("refresh-token").Return(claims, nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-token-hash")
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockRepo.NewMockUserRepository(t))
			mockFactory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)
			mockRefreshRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-token-hash").Return(storedToken, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenExpired)
}

func TestUserService_Logout_DeletesSession(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateToken("refresh-token").Return(&service.Claims{Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-token-hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "refresh-token-hash").Return(nil)

	err := fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
}
