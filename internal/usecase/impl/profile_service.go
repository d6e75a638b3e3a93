package impl

import (
	"context"
	"log/slog"

	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/repository"
	"farmlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the account with both role profiles resolved.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "profile lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateFarmerProfile applies partial changes to the caller's farmer profile.
func (srv *profileService) UpdateFarmerProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateFarmerProfileInput) error {
	srv.log(ctx).Info("Updating farmer profile", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}
	if user.FarmerProfile == nil {
		return errors.Wrap(domainerrors.ErrProfileNotFound, "account has no farmer profile")
	}

	if input.Phone != nil {
		user.FarmerProfile.Phone = *input.Phone
	}
	if input.City != nil {
		user.FarmerProfile.City = *input.City
	}
	if input.State != nil {
		user.FarmerProfile.State = *input.State
	}

	if err := srv.userRepo.SaveFarmerProfile(ctx, user.FarmerProfile); err != nil {
		srv.log(ctx).Error("Failed to update farmer profile", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to save farmer profile")
	}

	return nil
}

// UpdateFirmProfile applies partial changes to the caller's firm profile.
func (srv *profileService) UpdateFirmProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateFirmProfileInput) error {
	srv.log(ctx).Info("Updating firm profile", slog.Any("userID", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}
	if user.FirmProfile == nil {
		return errors.Wrap(domainerrors.ErrProfileNotFound, "account has no firm profile")
	}

	if input.CompanyName != nil {
		user.FirmProfile.CompanyName = *input.CompanyName
	}
	if input.ContactPerson != nil {
		user.FirmProfile.ContactPerson = *input.ContactPerson
	}
	if input.Phone != nil {
		user.FirmProfile.Phone = *input.Phone
	}
	if input.City != nil {
		user.FirmProfile.City = *input.City
	}
	if input.State != nil {
		user.FirmProfile.State = *input.State
	}

	if err := srv.userRepo.SaveFirmProfile(ctx, user.FirmProfile); err != nil {
		srv.log(ctx).Error("Failed to update firm profile", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to save firm profile")
	}

	return nil
}

// ListFarmers returns the public producer directory with their listings.
func (srv *profileService) ListFarmers(ctx context.Context) ([]*entity.User, error) {
	farmers, err := srv.userRepo.ListFarmers(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list farmers", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list farmers")
	}

	return farmers, nil
}

// ListAllUsers returns every account with both profiles attached. Served
// on the unauthenticated admin dump endpoint.
func (srv *profileService) ListAllUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.ListAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}
