package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

const minProductionSecretLen = 32

// ValidateConfig checks cfg against the requirements of its environment and
// reports every problem at once.
func ValidateConfig(cfg *Config) error {
	var errs []ValidationError
	add := func(field, msg string) {
		errs = append(errs, ValidationError{Field: field, Message: msg})
	}

	if cfg.ServerPort == "" {
		add("SERVER_PORT", "is required")
	}

	switch cfg.DBDriver {
	case DriverPostgres:
		for _, f := range []struct{ field, value string }{
			{"DB_HOST", cfg.DBHost},
			{"DB_PORT", cfg.DBPort},
			{"DB_USER", cfg.DBUser},
			{"DB_NAME", cfg.DBName},
		} {
			if f.value == "" {
				add(f.field, "is required for the postgres driver")
			}
		}
		if cfg.Environment != Development && cfg.Environment != Test && cfg.DBPassword == "" {
			add("db_password", "secret is required")
		}
	case DriverSQLite:
		if cfg.Environment == Production {
			add("DB_DRIVER", "sqlite is not supported in production")
		}
		if cfg.SQLitePath == "" {
			add("SQLITE_PATH", "is required for the sqlite driver")
		}
	default:
		add("DB_DRIVER", fmt.Sprintf("unknown driver %q", cfg.DBDriver))
	}

	if cfg.JWTSecret == "" {
		add("jwt_secret", "secret is required")
	} else if cfg.Environment == Production && len(cfg.JWTSecret) < minProductionSecretLen {
		add("jwt_secret", fmt.Sprintf("must be at least %d characters in production", minProductionSecretLen))
	}

	if cfg.GroceryCacheTTL < 0 {
		add("GROCERY_CACHE_TTL", "must not be negative")
	}
	if cfg.RateLimitWindow <= 0 {
		add("RATE_LIMIT_WINDOW", "must be positive")
	}
	if cfg.RateLimitRequests <= 0 {
		add("RATE_LIMIT_REQUESTS", "must be positive")
	}
	if cfg.S3Bucket != "" && cfg.AWSRegion == "" {
		add("AWS_REGION", "is required when S3_BUCKET_NAME is set")
	}

	if len(errs) == 0 {
		return nil
	}

	lines := make([]string, len(errs))
	for i, e := range errs {
		lines[i] = e.Error()
	}
	return fmt.Errorf("configuration validation failed:\n%s", strings.Join(lines, "\n"))
}
