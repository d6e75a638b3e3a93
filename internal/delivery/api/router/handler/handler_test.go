package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"farmlink/internal/delivery/api/validator"
	mockService "farmlink/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/health", "")

	err := HealthCheck(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestAuthHandler_RegisterFarmer_InvalidJSON(t *testing.T) {
	h := NewAuthHandler(nil, mockService.NewMockTokenService(t), testLogger())

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/farmer/register", "{not json")

	err := h.RegisterFarmer(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAuthHandler_RegisterFarmer_ValidationFailed(t *testing.T) {
	h := NewAuthHandler(nil, mockService.NewMockTokenService(t), testLogger())

	body := `{"name":"Ramesh","email":"not-an-email","password":"short","phone":"+919876543210"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/auth/farmer/register", body)

	err := h.RegisterFarmer(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAuthHandler_RegisterFirm_RequiresCompanyName(t *testing.T) {
	h := NewAuthHandler(nil, mockService.NewMockTokenService(t), testLogger())

	body := `{"name":"Acme","email":"acme@example.com","password":"password123","phone":"+911234567890"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/auth/firm/register", body)

	err := h.RegisterFirm(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestAuthHandler_RefreshToken_MissingToken(t *testing.T) {
	h := NewAuthHandler(nil, mockService.NewMockTokenService(t), testLogger())

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/refresh", `{}`)

	err := h.RefreshToken(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCropHandler_ListCrops_RejectsBadFilters(t *testing.T) {
	h := NewCropHandler(nil, testLogger())

	tests := []struct {
		name  string
		query string
	}{
		{name: "non-numeric max price", query: "max_price=cheap"},
		{name: "negative max price", query: "max_price=-5"},
		{name: "unknown grade", query: "grade=D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(t, http.MethodGet, "/api/crops?"+tt.query, "")

			err := h.ListCrops(c)

			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestCropHandler_GetCrop_InvalidID(t *testing.T) {
	h := NewCropHandler(nil, testLogger())

	c, rec := newTestContext(t, http.MethodGet, "/api/crop-details/abc", "")
	c.SetParamNames("cropId")
	c.SetParamValues("abc")

	err := h.GetCrop(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestHandler_CreateCropRequest_RequiresAuthContext(t *testing.T) {
	h := NewRequestHandler(nil, testLogger())

	body := `{"deadline":"2030-01-01","requirement":"100 quintals"}`
	c, rec := newTestContext(t, http.MethodPost, "/api/crop-request/"+uuid.NewString(), body)

	// No userID was set by the auth middleware.
	err := h.CreateCropRequest(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequestHandler_CreateBuyRequest_ValidationFailed(t *testing.T) {
	h := NewRequestHandler(nil, testLogger())

	c, rec := newTestContext(t, http.MethodPost, "/api/add-request", `{"deadline":"2030-01-01"}`)
	c.Set("userID", uuid.New())

	err := h.CreateBuyRequest(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Contains(t, string(envelope["error"]), "VALIDATION_FAILED")
}

func TestParseDeadline(t *testing.T) {
	plain, err := parseDeadline("2030-06-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2030, 6, 15, 0, 0, 0, 0, time.Local), plain)

	stamped, err := parseDeadline("2030-06-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, stamped.Hour())

	_, err = parseDeadline("15/06/2030")
	require.Error(t, err)
}

// A bare date typed by a client means "that calendar day where the server
// runs". Pin a far-west zone and confirm today's date still lands at or
// after the local start of day, so the deadline check downstream accepts it.
func TestParseDeadline_BareDateHonorsLocalZone(t *testing.T) {
	loc, err := time.LoadLocation("Etc/GMT+12")
	require.NoError(t, err)

	restore := time.Local
	time.Local = loc
	defer func() { time.Local = restore }()

	now := time.Now().In(loc)
	deadline, err := parseDeadline(now.Format("2006-01-02"))
	require.NoError(t, err)

	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	assert.False(t, deadline.Before(startOfToday))
}
