package utils

import (
	"testing"
	"time"

	"speakerhub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withSecret(t *testing.T, secret string) {
	t.Helper()
	prev := config.AppConfig.JWTSecret
	config.AppConfig.JWTSecret = secret
	t.Cleanup(func() { config.AppConfig.JWTSecret = prev })
}

func TestTokenRoundTrip(t *testing.T) {
	withSecret(t, "test-secret")

	token, err := GenerateToken("user-1", "device-1", time.Hour)
	require.NoError(t, err)

	userID, deviceID, err := ExtractIDsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "device-1", deviceID)
}

func TestExtractIDsFromToken_Rejects(t *testing.T) {
	withSecret(t, "test-secret")

	expired, err := GenerateToken("user-1", "device-1", -time.Minute)
	require.NoError(t, err)
	_, _, err = ExtractIDsFromToken(expired)
	assert.Error(t, err)

	_, _, err = ExtractIDsFromToken("not-a-token")
	assert.Error(t, err)

	token, err := GenerateToken("user-1", "device-1", time.Hour)
	require.NoError(t, err)
	withSecret(t, "other-secret")
	_, _, err = ExtractIDsFromToken(token)
	assert.Error(t, err)
}

func TestGenerateToken_RequiresSecret(t *testing.T) {
	withSecret(t, "")
	_, err := GenerateToken("user-1", "device-1", time.Hour)
	assert.Error(t, err)
}
