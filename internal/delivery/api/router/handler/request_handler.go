package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"farmlink/internal/delivery/api/response"
	"farmlink/internal/domain/entity"
	"farmlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RequestHandler holds dependencies for purchase request handlers.
type RequestHandler struct {
	uc     usecase.RequestUsecase
	logger *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler, injected by Fx.
func NewRequestHandler(uc usecase.RequestUsecase, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{
		uc:     uc,
		logger: logger,
	}
}

type createCropRequestRequest struct {
	Deadline    string `json:"deadline" validate:"required"`
	Requirement string `json:"requirement" validate:"required"`
}

type createBuyRequestRequest struct {
	CropName    string `json:"crop_name" validate:"required"`
	Deadline    string `json:"deadline" validate:"required"`
	Requirement string `json:"requirement" validate:"required"`
}

// CreateCropRequest files a targeted purchase request against one listing.
func (h *RequestHandler) CreateCropRequest(c echo.Context) error {
	firmID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	cropID, err := uuid.Parse(c.Param("cropId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid crop ID")
	}

	var req createCropRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid request input", err.Error())
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "deadline must be a date in YYYY-MM-DD or RFC 3339 format")
	}

	request, err := h.uc.CreateCropRequest(c.Request().Context(), firmID, &usecase.CreateCropRequestInput{
		CropID:      cropID,
		Deadline:    deadline,
		Requirement: req.Requirement,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request)
}

// CreateBuyRequest broadcasts an open purchase request to all farmers.
func (h *RequestHandler) CreateBuyRequest(c echo.Context) error {
	firmID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req createBuyRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Invalid request input", err.Error())
	}

	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "deadline must be a date in YYYY-MM-DD or RFC 3339 format")
	}

	request, err := h.uc.CreateBuyRequest(c.Request().Context(), firmID, &usecase.CreateBuyRequestInput{
		CropName:    req.CropName,
		Deadline:    deadline,
		Requirement: req.Requirement,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request)
}

// AcceptCropRequest resolves a pending targeted request as Accepted.
func (h *RequestHandler) AcceptCropRequest(c echo.Context) error {
	return h.resolveCropRequest(c, h.uc.AcceptCropRequest)
}

// RejectCropRequest resolves a pending targeted request as Rejected.
func (h *RequestHandler) RejectCropRequest(c echo.Context) error {
	return h.resolveCropRequest(c, h.uc.RejectCropRequest)
}

// AcceptBuyRequest resolves a pending open request as Accepted.
func (h *RequestHandler) AcceptBuyRequest(c echo.Context) error {
	return h.resolveBuyRequest(c, h.uc.AcceptBuyRequest)
}

// RejectBuyRequest resolves a pending open request as Rejected.
func (h *RequestHandler) RejectBuyRequest(c echo.Context) error {
	return h.resolveBuyRequest(c, h.uc.RejectBuyRequest)
}

// MyCropRequests lists the targeted requests the authenticated firm has filed.
func (h *RequestHandler) MyCropRequests(c echo.Context) error {
	firmID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requests, err := h.uc.MyCropRequests(c.Request().Context(), firmID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests)
}

// MyBuyRequests lists the open requests the authenticated firm has posted.
func (h *RequestHandler) MyBuyRequests(c echo.Context) error {
	firmID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requests, err := h.uc.MyBuyRequests(c.Request().Context(), firmID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests)
}

// IncomingRequests lists the targeted requests addressed to the authenticated
// farmer's listings.
func (h *RequestHandler) IncomingRequests(c echo.Context) error {
	farmerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requests, err := h.uc.IncomingRequests(c.Request().Context(), farmerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests)
}

// PendingBuyRequests lists all open requests still awaiting a decision.
func (h *RequestHandler) PendingBuyRequests(c echo.Context) error {
	requests, err := h.uc.PendingBuyRequests(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests)
}

func (h *RequestHandler) resolveCropRequest(
	c echo.Context,
	resolve func(ctx context.Context, farmerID, requestID uuid.UUID) (*entity.CropRequest, error),
) error {
	farmerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requestID, err := uuid.Parse(c.Param("requestId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request ID")
	}

	request, err := resolve(c.Request().Context(), farmerID, requestID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request)
}

func (h *RequestHandler) resolveBuyRequest(
	c echo.Context,
	resolve func(ctx context.Context, farmerID, requestID uuid.UUID) (*entity.BuyRequest, error),
) error {
	farmerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	requestID, err := uuid.Parse(c.Param("requestId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid request ID")
	}

	request, err := resolve(c.Request().Context(), farmerID, requestID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request)
}

// parseDeadline accepts either a bare date or a full RFC 3339 timestamp.
// Bare dates are read in server-local time so they line up with the
// start-of-today deadline check downstream.
func parseDeadline(raw string) (time.Time, error) {
	if deadline, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
		return deadline, nil
	}

	return time.Parse(time.RFC3339, raw)
}
