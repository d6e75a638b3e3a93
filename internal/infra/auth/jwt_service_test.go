package auth

import (
	"testing"
	"time"

	"farmlink/config"
	"farmlink/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestJWTService(t *testing.T) service.TokenService {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestJWTService_RequiresSecrets(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "only-access"

	svc, err := NewJWTService(cfg)

	require.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := createTestJWTService(t)

	userID := uuid.New()
	roles := []string{"farmer", "firm"}

	accessToken, refreshToken, err := svc.GenerateTokens(userID, roles)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, roles, accessClaims.Roles)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)

	refreshClaims, err := svc.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
	// Roles ride only in the access token.
	assert.Empty(t, refreshClaims.Roles)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	svc := createTestJWTService(t)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "different-access-secret"
	otherCfg.SecretKey.Refresh = "different-refresh-secret"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	foreignToken, _, err := other.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(foreignToken)

	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL:  -time.Minute,
		RefreshTokenTTL: -time.Minute,
	}

	// Negative TTLs fall back to the defaults, so force expiry through the
	// private generator instead.
	svc := &jwtService{
		accessSecret:  cfg.SecretKey.Access,
		refreshSecret: cfg.SecretKey.Refresh,
		accessTTL:     -time.Minute,
		refreshTTL:    -time.Minute,
	}

	expired, err := svc.generateToken(uuid.New(), nil, -time.Minute, svc.accessSecret, service.TokenTypeAccess)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(expired)

	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := createTestJWTService(t)

	claims, err := svc.ValidateToken("not-a-jwt")

	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_HashToken(t *testing.T) {
	svc := createTestJWTService(t)

	first := svc.HashToken("some-refresh-token")
	second := svc.HashToken("some-refresh-token")
	different := svc.HashToken("another-token")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, different)
	assert.NotContains(t, first, "some-refresh-token")
	assert.Len(t, first, 64)
}

func TestJWTService_ConfiguredDurations(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL:  30 * time.Minute,
		RefreshTokenTTL: 48 * time.Hour,
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, svc.GetAccessTokenDuration())
	assert.Equal(t, 48*time.Hour, svc.GetRefreshTokenDuration())
}
