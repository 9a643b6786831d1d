package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSecret(t *testing.T, dir, name, value string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(value+"\n"), 0o600))
}

func TestLoadConfigTestEnvironment(t *testing.T) {
	secrets := t.TempDir()
	writeSecret(t, secrets, "db_password", "s3cret")
	writeSecret(t, secrets, "jwt_secret", "jwt-from-file")

	t.Setenv("CI", "")
	t.Setenv("ENV", "test")
	t.Setenv("SECRETS_DIR", secrets)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "recipeprep_test")
	t.Setenv("JWT_SECRET", "ignored-when-file-exists")
	t.Setenv("GROCERY_CACHE_TTL", "5m")
	t.Setenv("RATE_LIMIT_REQUESTS", "3")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, Test, cfg.Environment)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "recipeprep_test", cfg.DBName)
	assert.Equal(t, "s3cret", cfg.DBPassword)
	assert.Equal(t, "jwt-from-file", cfg.JWTSecret)
	assert.Equal(t, 5*time.Minute, cfg.GroceryCacheTTL)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, 3, cfg.RateLimitRequests)
	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
}

func TestLoadConfigFallsBackToEnvSecrets(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "development")
	t.Setenv("SECRETS_DIR", t.TempDir())
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "dev.db"))
	t.Setenv("JWT_SECRET", "dev-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "dev-secret", cfg.JWTSecret)
	assert.False(t, cfg.RedisEnabled())
}

func TestLoadConfigCI(t *testing.T) {
	t.Setenv("CI", "true")
	t.Setenv("TEST_DB_PASSWORD", "ci-db")
	t.Setenv("TEST_JWT_SECRET", "ci-jwt")
	t.Setenv("TEST_REDIS_URL", "redis://redis:6379/0")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, CI, cfg.Environment)
	assert.Equal(t, "ci-db", cfg.DBPassword)
	assert.Equal(t, "ci-jwt", cfg.JWTSecret)
	assert.True(t, cfg.RedisEnabled())
}

func TestValidateConfigCollectsErrors(t *testing.T) {
	cfg := &Config{
		Environment:       Production,
		DBDriver:          DriverSQLite,
		JWTSecret:         "short",
		RateLimitWindow:   0,
		RateLimitRequests: 0,
		GroceryCacheTTL:   -time.Second,
		S3Bucket:          "lists",
	}

	err := ValidateConfig(cfg)
	require.Error(t, err)
	for _, want := range []string{
		"SERVER_PORT", "sqlite is not supported", "SQLITE_PATH", "jwt_secret",
		"GROCERY_CACHE_TTL", "RATE_LIMIT_WINDOW", "RATE_LIMIT_REQUESTS", "AWS_REGION",
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestValidateConfigUnknownDriver(t *testing.T) {
	cfg := &Config{
		Environment:       Development,
		ServerPort:        "8080",
		DBDriver:          "mysql",
		JWTSecret:         "x",
		RateLimitWindow:   time.Minute,
		RateLimitRequests: 1,
	}

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown driver "mysql"`)
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())
}
