// internal/auth/auth_test.go
package auth

import (
	"testing"
	"time"

	"smartspend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(expiry time.Duration) config.Config {
	return config.Config{JWTSecret: "test-secret", JWTExpiresIn: expiry}
}

func TestTokenRoundTrip(t *testing.T) {
	ts := NewTokenService(testConfig(time.Hour))

	token, err := ts.GenerateToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ts.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestExpiredTokenRejected(t *testing.T) {
	ts := NewTokenService(testConfig(-time.Minute))

	token, err := ts.GenerateToken("user-123")
	require.NoError(t, err)

	_, err = ts.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenSignedWithDifferentSecretRejected(t *testing.T) {
	issuer := NewTokenService(testConfig(time.Hour))
	verifier := NewTokenService(config.Config{JWTSecret: "other-secret", JWTExpiresIn: time.Hour})

	token, err := issuer.GenerateToken("user-123")
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	ts := NewTokenService(testConfig(time.Hour))
	_, err := ts.ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", hash)

	assert.True(t, CheckPassword("pw123", hash))
	assert.False(t, CheckPassword("wrong", hash))
	assert.False(t, CheckPassword("pw123", "not-a-hash"))
}
