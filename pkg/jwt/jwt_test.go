package jwt

import (
	"testing"
	"time"

	"go-library-management/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := testService("test-secret")
	userID := uuid.New()
	roles := []string{"user", "librarian"}

	token, tokenID, err := svc.GenerateAccessToken(userID, "alice@example.com", roles)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenHasRefreshType(t *testing.T) {
	svc := testService("test-secret")

	token, _, err := svc.GenerateRefreshToken(uuid.New(), "alice@example.com", []string{"user"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := testService("secret-a").GenerateAccessToken(uuid.New(), "a@example.com", []string{"user"})
	require.NoError(t, err)

	_, err = testService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: -time.Minute,
	})

	token, _, err := svc.GenerateAccessToken(uuid.New(), "a@example.com", []string{"user"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := testService("test-secret").ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenIDsAreUnique(t *testing.T) {
	svc := testService("test-secret")
	userID := uuid.New()

	_, id1, err := svc.GenerateAccessToken(userID, "a@example.com", []string{"user"})
	require.NoError(t, err)
	_, id2, err := svc.GenerateAccessToken(userID, "a@example.com", []string{"user"})
	require.NoError(t, err)

	assert.NotEqual(t, id1, id2)
}
