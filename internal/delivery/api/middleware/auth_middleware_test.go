package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"farmlink/internal/domain/service"
	mockService "farmlink/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, mutate func(*http.Request)) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/listed-crops", nil)
	if mutate != nil {
		mutate(req)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))

	c, rec := newAuthTestContext(t, nil)

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_BearerHeader(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	userID := uuid.New()
	tokenSvc.EXPECT().ValidateToken("valid-token").Return(&service.Claims{
		UserID: userID,
		Roles:  []string{"farmer"},
		Type:   service.TokenTypeAccess,
	}, nil)

	c, rec := newAuthTestContext(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer valid-token")
	})

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, c.Get("userID"))
	assert.Equal(t, []string{"farmer"}, c.Get("roles"))
}

func TestAuthMiddleware_CookieFallback(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().ValidateToken("cookie-token").Return(&service.Claims{
		UserID: uuid.New(),
		Roles:  []string{"firm"},
		Type:   service.TokenTypeAccess,
	}, nil)

	c, rec := newAuthTestContext(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
	})

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_MalformedHeaderIgnoresCookie(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))

	// A present but malformed header must not fall through to the cookie.
	c, rec := newAuthTestContext(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		req.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie-token"})
	})

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RejectsRefreshToken(t *testing.T) {
	tokenSvc := mockService.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().ValidateToken("refresh-token").Return(&service.Claims{
		UserID: uuid.New(),
		Type:   service.TokenTypeRefresh,
	}, nil)

	c, rec := newAuthTestContext(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer refresh-token")
	})

	err := m.Authenticate(okHandler)(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockService.NewMockTokenService(t))

	tests := []struct {
		name       string
		roles      any
		wantStatus int
	}{
		{name: "has role", roles: []string{"farmer", "firm"}, wantStatus: http.StatusOK},
		{name: "missing role", roles: []string{"firm"}, wantStatus: http.StatusForbidden},
		{name: "no role info", roles: nil, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newAuthTestContext(t, nil)
			if tt.roles != nil {
				c.Set("roles", tt.roles)
			}

			err := m.RequireRole("farmer")(okHandler)(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
