package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Database drivers understood by database.Open.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort string
	ServerHost string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Redis configuration. An empty RedisURL and RedisHost disables Redis.
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// Export storage. An empty bucket disables uploads.
	S3Bucket  string
	AWSRegion string

	GroceryCacheTTL   time.Duration
	RateLimitWindow   time.Duration
	RateLimitRequests int

	LogLevel string

	CORSAllowedOrigins []string
}

// envBindings maps viper keys to the environment variables that set them.
var envBindings = map[string]string{
	"server.host":        "SERVER_HOST",
	"server.port":        "SERVER_PORT",
	"db.driver":          "DB_DRIVER",
	"db.host":            "DB_HOST",
	"db.port":            "DB_PORT",
	"db.user":            "DB_USER",
	"db.password":        "DB_PASSWORD",
	"db.name":            "DB_NAME",
	"db.ssl_mode":        "DB_SSL_MODE",
	"db.sqlite_path":     "SQLITE_PATH",
	"redis.host":         "REDIS_HOST",
	"redis.port":         "REDIS_PORT",
	"redis.password":     "REDIS_PASSWORD",
	"redis.db":           "REDIS_DB",
	"redis.url":          "REDIS_URL",
	"jwt.secret":         "JWT_SECRET",
	"s3.bucket":          "S3_BUCKET_NAME",
	"aws.region":         "AWS_REGION",
	"grocery.cache_ttl":  "GROCERY_CACHE_TTL",
	"rate_limit.window":  "RATE_LIMIT_WINDOW",
	"rate_limit.request": "RATE_LIMIT_REQUESTS",
	"log_level":          "LOG_LEVEL",
	"cors.origins":       "CORS_ALLOWED_ORIGINS",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("db.driver", DriverPostgres)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.name", "recipeprep")
	v.SetDefault("db.ssl_mode", "disable")
	v.SetDefault("db.sqlite_path", "recipeprep.db")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("grocery.cache_ttl", 10*time.Minute)
	v.SetDefault("rate_limit.window", time.Minute)
	v.SetDefault("rate_limit.request", 10)
	v.SetDefault("log_level", "info")
	v.SetDefault("cors.origins", "http://localhost:5173")
}

// LoadConfig builds the Config for the current environment. Plain settings
// come from environment variables (and a .env file outside production and
// CI). Secrets come from Docker secret files, except in CI where the runner
// provides them as environment variables.
func LoadConfig() (*Config, error) {
	env := GetEnvironment()

	if env == Development || env == Test {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	v := viper.New()
	setDefaults(v)
	for key, envVar := range envBindings {
		if err := v.BindEnv(key, envVar); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", envVar, err)
		}
	}

	cfg := fromViper(v)
	cfg.Environment = env

	switch env {
	case CI:
		loadCISecrets(cfg)
	case Development, Test:
		loadDevSecrets(cfg, v)
	case Production:
		loadProdSecrets(cfg)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		ServerHost:         v.GetString("server.host"),
		ServerPort:         v.GetString("server.port"),
		DBDriver:           strings.ToLower(v.GetString("db.driver")),
		DBHost:             v.GetString("db.host"),
		DBPort:             v.GetString("db.port"),
		DBUser:             v.GetString("db.user"),
		DBName:             v.GetString("db.name"),
		DBSSLMode:          v.GetString("db.ssl_mode"),
		SQLitePath:         v.GetString("db.sqlite_path"),
		RedisHost:          v.GetString("redis.host"),
		RedisPort:          v.GetString("redis.port"),
		RedisDB:            v.GetInt("redis.db"),
		RedisURL:           v.GetString("redis.url"),
		S3Bucket:           v.GetString("s3.bucket"),
		AWSRegion:          v.GetString("aws.region"),
		GroceryCacheTTL:    v.GetDuration("grocery.cache_ttl"),
		RateLimitWindow:    v.GetDuration("rate_limit.window"),
		RateLimitRequests:  v.GetInt("rate_limit.request"),
		LogLevel:           v.GetString("log_level"),
		CORSAllowedOrigins: splitList(v.GetString("cors.origins")),
	}
}

// loadCISecrets reads secrets the CI runner exposes as variables
func loadCISecrets(cfg *Config) {
	cfg.DBPassword = os.Getenv("TEST_DB_PASSWORD")
	cfg.JWTSecret = os.Getenv("TEST_JWT_SECRET")
	cfg.RedisPassword = os.Getenv("TEST_REDIS_PASSWORD")
	if url := os.Getenv("TEST_REDIS_URL"); url != "" {
		cfg.RedisURL = url
	}
}

// loadDevSecrets prefers Docker secrets and falls back to the environment so
// a plain .env works locally.
func loadDevSecrets(cfg *Config, v *viper.Viper) {
	cfg.DBPassword = firstNonEmpty(readSecret("db_password"), v.GetString("db.password"))
	cfg.JWTSecret = firstNonEmpty(readSecret("jwt_secret"), v.GetString("jwt.secret"))
	cfg.RedisPassword = firstNonEmpty(readSecret("redis_password"), v.GetString("redis.password"))
}

// loadProdSecrets reads secrets from Docker secrets only
func loadProdSecrets(cfg *Config) {
	cfg.DBPassword = readSecret("db_password")
	cfg.JWTSecret = readSecret("jwt_secret")
	cfg.RedisPassword = readSecret("redis_password")
}

// Address returns host:port for the HTTP server
func (c *Config) Address() string {
	return c.ServerHost + ":" + c.ServerPort
}

// PostgresDSN returns the lib/pq style connection string
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// RedisEnabled reports whether enough Redis settings are present to connect
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// secretsDir returns the Docker secrets mount point
func secretsDir() string {
	if dir := os.Getenv("SECRETS_DIR"); dir != "" {
		return dir
	}
	return "/run/secrets"
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	data, err := os.ReadFile(filepath.Join(secretsDir(), name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// splitList parses a comma separated setting, dropping blanks
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
