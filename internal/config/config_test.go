// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("JWT_EXPIRES_IN", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":5000", cfg.ServerPort)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.JWTExpiresIn)
	assert.Contains(t, cfg.DBConn, "postgres://")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_EXPIRES_IN", "30m")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/app")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerPort)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiresIn)
	assert.Equal(t, "postgres://u:p@db:5432/app", cfg.DBConn)
}

func TestLoadRejectsBadExpiry(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRES_IN", "soon")

	_, err := Load()
	assert.Error(t, err)
}
