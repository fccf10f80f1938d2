package config_test

import (
	"testing"
	"time"

	"github.com/hanksha/club-booking-backend/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost:5432/clubs")
		t.Setenv("JWT_SECRET", "secret")

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, "Europe/Paris", cfg.Timezone)
		assert.Equal(t, time.Minute, cfg.ExpirySweepInterval)
		assert.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL)
		assert.Equal(t, 120, cfg.RateLimitPerMinute)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost:5432/clubs")
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("ENV", "production")
		t.Setenv("REDIS_DB", "3")
		t.Setenv("EXPIRY_SWEEP_INTERVAL", "30s")
		t.Setenv("TIMEZONE", "UTC")

		cfg, err := config.Load()

		require.NoError(t, err)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, 3, cfg.RedisDB)
		assert.Equal(t, 30*time.Second, cfg.ExpirySweepInterval)
		assert.Equal(t, "UTC", cfg.Timezone)
	})

	t.Run("missing database url", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("JWT_SECRET", "secret")

		_, err := config.Load()

		require.ErrorIs(t, err, config.ErrMissingSetting)
	})

	t.Run("non positive durations", func(t *testing.T) {
		for _, key := range []string{"EXPIRY_SWEEP_INTERVAL", "CATALOG_CACHE_TTL"} {
			t.Run(key, func(t *testing.T) {
				t.Setenv("DATABASE_URL", "postgres://localhost/club")
				t.Setenv("JWT_SECRET", "secret")
				t.Setenv(key, "0s")

				_, err := config.Load()

				require.ErrorContains(t, err, key)
			})
		}
	})
}
