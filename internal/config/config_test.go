package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("DB_CONNECTION_STRING", "postgres://localhost:5432/expenses")
	t.Setenv("JWT_TTL", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("SERVER_ADDR", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Hour, cfg.JWTDuration)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, ":8080", cfg.ServerAddr)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_CONNECTION_STRING", "postgres://localhost:5432/expenses")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "too-short")
	t.Setenv("DB_CONNECTION_STRING", "postgres://localhost:5432/expenses")

	_, err := Load()
	assert.ErrorIs(t, err, ErrWeakJWTSecret)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("DB_CONNECTION_STRING", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingDatabaseURL)
}

func TestLoad_CustomValues(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("DB_CONNECTION_STRING", "postgres://localhost:5432/expenses")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("SERVER_ADDR", ":9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.JWTDuration)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, ":9090", cfg.ServerAddr)
}

func TestLoad_InvalidTTL(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("DB_CONNECTION_STRING", "postgres://localhost:5432/expenses")
	t.Setenv("JWT_TTL", "ten hours")

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidJWTDuration)
}

func TestLoad_InvalidBcryptCost(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("DB_CONNECTION_STRING", "postgres://localhost:5432/expenses")
	t.Setenv("JWT_TTL", "")
	t.Setenv("BCRYPT_COST", "99")

	_, err := Load()
	assert.ErrorIs(t, err, ErrInvalidBcryptCost)
}
