package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "farmlink/internal/delivery/context"
	"farmlink/internal/domain/entity"
	domainerrors "farmlink/internal/domain/errors"
	"farmlink/internal/domain/lifecycle"
	"farmlink/internal/domain/repository"
	"farmlink/internal/domain/service"
	"farmlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// requestService implements the RequestUsecase interface.
type requestService struct {
	txManager       repository.TransactionManager
	cropRepo        repository.CropRepository
	cropRequestRepo repository.CropRequestRepository
	buyRequestRepo  repository.BuyRequestRepository
	userRepo        repository.UserRepository
	smsSender       service.SMSSender
	logger          *slog.Logger
}

// RequestServiceParams holds dependencies for RequestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	CropRepo        repository.CropRepository
	CropRequestRepo repository.CropRequestRepository
	BuyRequestRepo  repository.BuyRequestRepository
	UserRepo        repository.UserRepository
	SMSSender       service.SMSSender
	Logger          *slog.Logger
}

// NewRequestService is the constructor for requestService.
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	return &requestService{
		txManager:       params.TxManager,
		cropRepo:        params.CropRepo,
		cropRequestRepo: params.CropRequestRepo,
		buyRequestRepo:  params.BuyRequestRepo,
		userRepo:        params.UserRepo,
		smsSender:       params.SMSSender,
		logger:          params.Logger,
	}
}

func (srv *requestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// validateDeadline accepts today and future dates. Comparison is against the
// start of the current day so a deadline of "today" remains valid all day.
func validateDeadline(deadline time.Time) error {
	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if deadline.Before(startOfToday) {
		return errors.Wrap(domainerrors.ErrDeadlineInPast, "deadline already passed")
	}

	return nil
}

// CreateCropRequest files a targeted request against one crop listing. The
// farmer ID is copied from the listing at creation time, never taken from the
// client. The farmer is notified by SMS outside the request path.
func (srv *requestService) CreateCropRequest(ctx context.Context, firmID uuid.UUID, input *usecase.CreateCropRequestInput) (*entity.CropRequest, error) {
	srv.log(ctx).Info("Creating crop request", slog.Any("firmID", firmID), slog.Any("cropID", input.CropID))

	if err := validateDeadline(input.Deadline); err != nil {
		return nil, err
	}

	var request *entity.CropRequest
	var farmer *entity.User
	var cropName string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cropRepo := repoFactory.CropRepo()
		requestRepo := repoFactory.CropRequestRepo()
		userRepo := repoFactory.UserRepo()

		crop, err := cropRepo.FindByID(ctx, input.CropID)
		if err != nil {
			if errors.Is(err, repository.ErrCropNotFound) {
				return errors.Wrap(domainerrors.ErrCropNotFound, "crop lookup failed")
			}

			return errors.Wrap(err, "failed to find crop")
		}

		farmer, err = userRepo.FindByID(ctx, crop.FarmerID)
		if err != nil {
			return errors.Wrap(err, "failed to find crop owner")
		}
		cropName = crop.Name

		request = &entity.CropRequest{
			CropID:      crop.ID,
			FarmerID:    crop.FarmerID,
			FirmID:      firmID,
			Deadline:    input.Deadline,
			Requirement: input.Requirement,
			Status:      entity.StatusPending,
		}

		if err := requestRepo.Create(ctx, request); err != nil {
			return errors.Wrap(err, "failed to create crop request")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute crop request transaction", slog.Any("firmID", firmID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute crop request transaction")
	}

	srv.notifyFarmer(ctx, farmer, cropName, request)

	return request, nil
}

// notifyFarmer sends the new-request SMS in the background. Delivery failure
// is logged, never surfaced: the request itself has already been committed.
func (srv *requestService) notifyFarmer(ctx context.Context, farmer *entity.User, cropName string, request *entity.CropRequest) {
	if farmer == nil || farmer.FarmerProfile == nil || farmer.FarmerProfile.Phone == "" {
		return
	}

	phone := farmer.FarmerProfile.Phone
	message := fmt.Sprintf("New purchase request for your %s. Requirement: %s. Respond by %s.",
		cropName, request.Requirement, request.Deadline.Format("2006-01-02"))
	logger := srv.log(ctx)

	go func() {
		smsCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		if err := srv.smsSender.Send(smsCtx, phone, message); err != nil {
			logger.Warn("Failed to send request SMS", slog.Any("requestID", request.ID), slog.Any("error", err))
		}
	}()
}

// CreateBuyRequest broadcasts an open request visible to all farmers.
func (srv *requestService) CreateBuyRequest(ctx context.Context, firmID uuid.UUID, input *usecase.CreateBuyRequestInput) (*entity.BuyRequest, error) {
	srv.log(ctx).Info("Creating buy request", slog.Any("firmID", firmID), slog.String("cropName", input.CropName))

	if err := validateDeadline(input.Deadline); err != nil {
		return nil, err
	}
	if input.CropName == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "crop name is required")
	}

	request := &entity.BuyRequest{
		FirmID:      firmID,
		CropName:    input.CropName,
		Deadline:    input.Deadline,
		Requirement: input.Requirement,
		Status:      entity.StatusPending,
	}

	if err := srv.buyRequestRepo.Create(ctx, request); err != nil {
		srv.log(ctx).Error("Failed to create buy request", slog.Any("firmID", firmID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create buy request")
	}

	return request, nil
}

// AcceptCropRequest resolves a pending targeted request as Accepted.
func (srv *requestService) AcceptCropRequest(ctx context.Context, farmerID, requestID uuid.UUID) (*entity.CropRequest, error) {
	return srv.resolveCropRequest(ctx, farmerID, requestID, entity.StatusAccepted)
}

// RejectCropRequest resolves a pending targeted request as Rejected.
func (srv *requestService) RejectCropRequest(ctx context.Context, farmerID, requestID uuid.UUID) (*entity.CropRequest, error) {
	return srv.resolveCropRequest(ctx, farmerID, requestID, entity.StatusRejected)
}

// resolveCropRequest carries out a targeted decision. Only the farmer the
// request is addressed to may decide it, and the transition is conditional on
// the row still being Pending so two concurrent decisions cannot both win.
func (srv *requestService) resolveCropRequest(ctx context.Context, farmerID, requestID uuid.UUID, status entity.RequestStatus) (*entity.CropRequest, error) {
	srv.log(ctx).Info("Resolving crop request", slog.Any("farmerID", farmerID), slog.Any("requestID", requestID), slog.Any("status", status))

	var resolved *entity.CropRequest

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.CropRequestRepo()

		request, err := requestRepo.FindByID(ctx, requestID)
		if err != nil {
			if errors.Is(err, repository.ErrRequestNotFound) {
				return errors.Wrap(domainerrors.ErrRequestNotFound, "crop request lookup failed")
			}

			return errors.Wrap(err, "failed to find crop request")
		}

		if request.FarmerID != farmerID {
			srv.log(ctx).Warn("Crop request decision denied", slog.Any("farmerID", farmerID), slog.Any("requestID", requestID))

			return errors.Wrap(domainerrors.ErrRequestOwnershipViolation, "request addressed to another farmer")
		}

		if request.Status.IsTerminal() {
			return errors.Wrap(domainerrors.NewRequestAlreadyResolvedError(string(request.Status)), "crop request already resolved")
		}

		if err := requestRepo.UpdateStatusIfPending(ctx, requestID, status); err != nil {
			if errors.Is(err, repository.ErrRequestNotPending) {
				// Lost the race to a concurrent decision; report the winner's status.
				current, findErr := requestRepo.FindByID(ctx, requestID)
				if findErr == nil {
					return errors.Wrap(domainerrors.NewRequestAlreadyResolvedError(string(current.Status)), "crop request already resolved")
				}

				return errors.Wrap(domainerrors.ErrConflict, "crop request already resolved")
			}

			return errors.Wrap(err, "failed to update crop request status")
		}

		request.Status = status
		resolved = request

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute crop request decision transaction")
	}

	return resolved, nil
}

// AcceptBuyRequest resolves a pending open request as Accepted.
func (srv *requestService) AcceptBuyRequest(ctx context.Context, farmerID, requestID uuid.UUID) (*entity.BuyRequest, error) {
	return srv.resolveBuyRequest(ctx, farmerID, requestID, entity.StatusAccepted)
}

// RejectBuyRequest resolves a pending open request as Rejected.
func (srv *requestService) RejectBuyRequest(ctx context.Context, farmerID, requestID uuid.UUID) (*entity.BuyRequest, error) {
	return srv.resolveBuyRequest(ctx, farmerID, requestID, entity.StatusRejected)
}

// resolveBuyRequest carries out an open decision. Any farmer may decide an
// open request; first decision wins.
func (srv *requestService) resolveBuyRequest(ctx context.Context, farmerID, requestID uuid.UUID, status entity.RequestStatus) (*entity.BuyRequest, error) {
	srv.log(ctx).Info("Resolving buy request", slog.Any("farmerID", farmerID), slog.Any("requestID", requestID), slog.Any("status", status))

	// The caller must actually hold the farmer role.
	farmer, err := srv.userRepo.FindByID(ctx, farmerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find farmer")
	}
	if farmer.FarmerProfile == nil {
		return nil, errors.Wrap(domainerrors.ErrRoleRequired, "only farmers can decide buy requests")
	}

	var resolved *entity.BuyRequest

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		requestRepo := repoFactory.BuyRequestRepo()

		request, err := requestRepo.FindByID(ctx, requestID)
		if err != nil {
			if errors.Is(err, repository.ErrRequestNotFound) {
				return errors.Wrap(domainerrors.ErrRequestNotFound, "buy request lookup failed")
			}

			return errors.Wrap(err, "failed to find buy request")
		}

		if request.Status.IsTerminal() {
			return errors.Wrap(domainerrors.NewRequestAlreadyResolvedError(string(request.Status)), "buy request already resolved")
		}

		if err := requestRepo.UpdateStatusIfPending(ctx, requestID, status); err != nil {
			if errors.Is(err, repository.ErrRequestNotPending) {
				current, findErr := requestRepo.FindByID(ctx, requestID)
				if findErr == nil {
					return errors.Wrap(domainerrors.NewRequestAlreadyResolvedError(string(current.Status)), "buy request already resolved")
				}

				return errors.Wrap(domainerrors.ErrConflict, "buy request already resolved")
			}

			return errors.Wrap(err, "failed to update buy request status")
		}

		request.Status = status
		resolved = request

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute buy request decision transaction")
	}

	return resolved, nil
}

// MyCropRequests lists the targeted requests a firm has filed, newest first.
func (srv *requestService) MyCropRequests(ctx context.Context, firmID uuid.UUID) ([]*entity.CropRequest, error) {
	requests, err := srv.cropRequestRepo.ListByFirmID(ctx, firmID)
	if err != nil {
		srv.log(ctx).Error("Failed to list firm crop requests", slog.Any("firmID", firmID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list firm crop requests")
	}

	return requests, nil
}

// MyBuyRequests lists the open requests a firm has posted, newest first.
func (srv *requestService) MyBuyRequests(ctx context.Context, firmID uuid.UUID) ([]*entity.BuyRequest, error) {
	requests, err := srv.buyRequestRepo.ListByFirmID(ctx, firmID)
	if err != nil {
		srv.log(ctx).Error("Failed to list firm buy requests", slog.Any("firmID", firmID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list firm buy requests")
	}

	return requests, nil
}

// IncomingRequests lists the targeted requests addressed to a farmer.
func (srv *requestService) IncomingRequests(ctx context.Context, farmerID uuid.UUID) ([]*entity.CropRequest, error) {
	requests, err := srv.cropRequestRepo.ListByFarmerID(ctx, farmerID)
	if err != nil {
		srv.log(ctx).Error("Failed to list incoming requests", slog.Any("farmerID", farmerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list incoming requests")
	}

	return requests, nil
}

// PendingBuyRequests lists all open requests still awaiting a decision.
func (srv *requestService) PendingBuyRequests(ctx context.Context) ([]*entity.BuyRequest, error) {
	requests, err := srv.buyRequestRepo.ListPending(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list pending buy requests", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list pending buy requests")
	}

	return requests, nil
}
