package handler

import (
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"

	"farmlink/internal/delivery/api/response"
	"farmlink/internal/domain/entity"
	"farmlink/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CropHandler holds dependencies for crop listing handlers.
type CropHandler struct {
	uc     usecase.CropUsecase
	logger *slog.Logger
}

// NewCropHandler is the constructor for CropHandler, injected by Fx.
func NewCropHandler(uc usecase.CropUsecase, logger *slog.Logger) *CropHandler {
	return &CropHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListCrops returns all listings, optionally filtered by name substring,
// grade and maximum price.
func (h *CropHandler) ListCrops(c echo.Context) error {
	input := &usecase.ListCropsInput{
		Name:  c.QueryParam("name"),
		Grade: entity.CropGrade(c.QueryParam("grade")),
	}

	if raw := c.QueryParam("max_price"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil || maxPrice < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "max_price must be a non-negative number")
		}
		input.MaxPrice = maxPrice
	}

	if input.Grade != "" && !input.Grade.IsValid() {
		return response.BadRequest(c, "INVALID_INPUT", "grade must be one of A, B, C")
	}

	crops, err := h.uc.ListCrops(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, crops)
}

// GetCrop returns a single listing by ID.
func (h *CropHandler) GetCrop(c echo.Context) error {
	cropID, err := uuid.Parse(c.Param("cropId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid crop ID")
	}

	crop, err := h.uc.GetCrop(c.Request().Context(), cropID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, crop)
}

// CropShareQR renders a PNG QR code that links to the listing.
func (h *CropHandler) CropShareQR(c echo.Context) error {
	cropID, err := uuid.Parse(c.Param("cropId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid crop ID")
	}

	png, err := h.uc.CropShareQR(c.Request().Context(), cropID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// CreateCrop publishes a new listing from a multipart form. The image part
// is mandatory.
func (h *CropHandler) CreateCrop(c echo.Context) error {
	farmerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	input := &usecase.CreateCropInput{
		Name:  c.FormValue("name"),
		Grade: entity.CropGrade(c.FormValue("grade")),
	}

	var err error
	if input.Price, err = parseFormFloat(c, "price"); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}
	if input.MinQuantity, err = parseFormFloat(c, "min_quantity"); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}
	if input.TotalAvailable, err = parseFormFloat(c, "total_available"); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	image, closeImage, err := openImagePart(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Image file is required")
	}
	defer closeImage()
	input.Image = image

	crop, err := h.uc.CreateCrop(c.Request().Context(), farmerID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, crop)
}

// UpdateCrop edits a listing from a multipart form. Absent fields keep their
// current values; an absent image part keeps the current image.
func (h *CropHandler) UpdateCrop(c echo.Context) error {
	farmerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	cropID, err := uuid.Parse(c.Param("cropId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid crop ID")
	}

	input := &usecase.UpdateCropInput{}

	if name := c.FormValue("name"); name != "" {
		input.Name = &name
	}
	if raw := c.FormValue("grade"); raw != "" {
		grade := entity.CropGrade(raw)
		input.Grade = &grade
	}
	for field, target := range map[string]**float64{
		"price":           &input.Price,
		"min_quantity":    &input.MinQuantity,
		"total_available": &input.TotalAvailable,
	} {
		if c.FormValue(field) == "" {
			continue
		}
		value, err := parseFormFloat(c, field)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", err.Error())
		}
		*target = &value
	}

	image, closeImage, err := openImagePart(c)
	if err == nil {
		defer closeImage()
		input.Image = image
	}

	crop, err := h.uc.UpdateCrop(c.Request().Context(), farmerID, cropID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, crop)
}

// MyCrops returns all listings owned by the authenticated farmer.
func (h *CropHandler) MyCrops(c echo.Context) error {
	farmerID, ok := currentUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	crops, err := h.uc.MyCrops(c.Request().Context(), farmerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, crops)
}

// parseFormFloat reads a required numeric multipart field.
func parseFormFloat(c echo.Context, field string) (float64, error) {
	raw := c.FormValue(field)
	if raw == "" {
		return 0, errors.Errorf("%s is required", field)
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Errorf("%s must be a number", field)
	}

	return value, nil
}

// openImagePart opens the "image" part of a multipart form. The caller must
// invoke the returned close function after the upload has been consumed.
func openImagePart(c echo.Context) (*usecase.ImageUpload, func(), error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return nil, nil, err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, nil, err
	}

	return &usecase.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: detectContentType(fileHeader),
		Size:        fileHeader.Size,
		Reader:      src,
	}, func() { _ = src.Close() }, nil
}

func detectContentType(fileHeader *multipart.FileHeader) string {
	if contentType := fileHeader.Header.Get("Content-Type"); contentType != "" {
		return contentType
	}

	return "application/octet-stream"
}

// currentUserID extracts the authenticated user ID placed on the context by
// the auth middleware.
func currentUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get("userID").(uuid.UUID)

	return userID, ok
}
