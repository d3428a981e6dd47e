package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventsnow/backend/internal/config"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "unit-test-secret")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "eventsnow", cfg.MongoDatabase)
	assert.Equal(t, 24, cfg.JWTExpirationHours)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, time.Minute, cfg.EventCacheTTL)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")
	t.Setenv("EVENT_CACHE_TTL_SECONDS", "5")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 2, cfg.JWTExpirationHours)
	assert.Equal(t, 5*time.Second, cfg.EventCacheTTL)
}

func TestLoad_FailsClosed(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T)
	}{
		{
			name: "missing JWT secret",
			setup: func(t *testing.T) {
				t.Setenv("JWT_SECRET", "")
				t.Setenv("MONGO_URI", "mongodb://localhost:27017")
			},
		},
		{
			name: "missing mongo URI",
			setup: func(t *testing.T) {
				t.Setenv("JWT_SECRET", "unit-test-secret")
				t.Setenv("MONGO_URI", "")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup(t)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_IgnoresUnparsableInt(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_EXPIRATION_HOURS", "not-a-number")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.JWTExpirationHours)
}
