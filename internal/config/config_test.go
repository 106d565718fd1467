package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRES_IN", "24")
	t.Setenv("BCRYPT_COST", "12")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "_edu_token", cfg.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.False(t, cfg.IsProduction())
}

func TestLoadMissingSecret(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrSecretRequired)
}

func TestLoadMissingExpiry(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_EXPIRES_IN", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrExpiryRequired)
}

func TestLoadZeroExpiry(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_EXPIRES_IN", "0")

	_, err := Load()
	assert.ErrorIs(t, err, ErrExpiryRequired)
}

func TestLoadMissingCost(t *testing.T) {
	setRequired(t)
	t.Setenv("BCRYPT_COST", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrCostRequired)
}

func TestLoadProduction(t *testing.T) {
	setRequired(t)
	t.Setenv("ENV", "production")
	t.Setenv("TOKEN_COOKIE_NAME", "_session")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "_session", cfg.CookieName)
}
