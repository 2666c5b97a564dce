package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, CheckPasswordHash("s3cret-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 2*time.Hour)

	token, err := manager.GenerateAccessToken(7, "admin", "admin")
	require.NoError(t, err)

	claims, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTRefreshRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 2*time.Hour)

	token, err := manager.GenerateRefreshToken(42)
	require.NoError(t, err)

	userID, err := manager.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 2*time.Hour)
	other := NewJWTManager("other-secret", time.Hour, 2*time.Hour)

	token, err := manager.GenerateAccessToken(7, "admin", "admin")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}
