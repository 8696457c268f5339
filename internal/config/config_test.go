package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"PORT", "DB_DSN", "REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "CATALOG_CACHE_TTL",
	"JWT_SECRET", "JWT_ISSUER", "AUTH_INTROSPECT_URL", "AUTH_INTROSPECT_API_KEY", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "SEED_DEMO_USER", "SHUTDOWN_TIMEOUT",
}

// clearEnv deja las claves vacías; t.Setenv las restaura al terminar.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Empty(t, cfg.DBDSN)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL)
	assert.Empty(t, cfg.JWTSecret)
	assert.Equal(t, 20.0, cfg.RateLimitRPS)
	assert.Equal(t, 40, cfg.RateLimitBurst)
	assert.Empty(t, cfg.SeedDemoUser)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DSN", "postgres://localhost/pets")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CATALOG_CACHE_TTL", "30s")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "5")
	t.Setenv("SEED_DEMO_USER", " demo ")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "postgres://localhost/pets", cfg.DBDSN)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 30*time.Second, cfg.CatalogCacheTTL)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 5, cfg.RateLimitBurst)
	assert.Equal(t, "demo", cfg.SeedDemoUser)
}

func TestLoad_DotEnvDoesNotOverrideEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")
	// godotenv solo completa variables ausentes, no vacías
	require.NoError(t, os.Unsetenv("SEED_DEMO_USER"))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=1234\nSEED_DEMO_USER=from-file\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "from-file", cfg.SeedDemoUser)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"REDIS_DB":          "zero",
		"CATALOG_CACHE_TTL": "5 minutes",
		"RATE_LIMIT_RPS":    "fast",
		"RATE_LIMIT_BURST":  "1.5",
		"SHUTDOWN_TIMEOUT":  "soon",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.ErrorContains(t, err, key)
		})
	}
}

func TestLoad_NonPositiveRateLimit(t *testing.T) {
	cases := []struct{ key, val string }{
		{"RATE_LIMIT_RPS", "0"},
		{"RATE_LIMIT_RPS", "-1.5"},
		{"RATE_LIMIT_BURST", "0"},
		{"RATE_LIMIT_BURST", "-3"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.val, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.val)

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.ErrorContains(t, err, tc.key+" must be > 0")
		})
	}
}
