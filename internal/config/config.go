package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string

	// Storage selects the persistence backend: "postgres" or "memory"
	Storage string

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	ThemesDir      string
	DeadLetterPath string
	LogDir         string

	EventMaxRetries int
	EventRetryDelay time.Duration

	// AuditInterval controls the background replay sweep; zero disables it
	AuditInterval   time.Duration
	AuditSweepLimit int

	// TrustedProxies lists proxy IPs whose X-Forwarded-For header is honored
	TrustedProxies []string

	APIKey  string // API key for authentication
	Version string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:          getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:         getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment:       getEnv("ENVIRONMENT", DefaultEnvironment),
		Storage:           getEnv("STORAGE", StorageBackendPostgres),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		ThemesDir:         getEnv("THEMES_DIR", DefaultThemesDir),
		DeadLetterPath:    getEnv("DEAD_LETTER_PATH", DefaultDeadLetterPath),
		LogDir:            getEnv("LOG_DIR", DefaultLogDir),
		EventMaxRetries:   getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:   getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		AuditInterval:     getEnvAsDuration("AUDIT_INTERVAL", DefaultAuditInterval),
		AuditSweepLimit:   getEnvAsInt("AUDIT_SWEEP_LIMIT", DefaultAuditSweepLimit),
		TrustedProxies:    splitAndTrim(getEnv("TRUSTED_PROXIES", "")),
		APIKey:            getEnv("API_KEY", ""),
		Version:           getEnv("VERSION", "dev"),
	}

	port, err := strconv.Atoi(getEnv("PORT", DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.Storage != StorageBackendPostgres && cfg.Storage != StorageBackendMemory {
		return nil, fmt.Errorf("invalid STORAGE value %q: must be %q or %q",
			cfg.Storage, StorageBackendPostgres, StorageBackendMemory)
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// splitAndTrim splits a comma separated list, dropping empty entries
func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an int, falling back to
// the default on absence or parse failure
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvAsDuration retrieves an environment variable as a time.Duration,
// falling back to the default on absence or parse failure
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// UseMemoryStorage reports whether the in-memory backend is selected
func (c *Config) UseMemoryStorage() bool {
	return c.Storage == StorageBackendMemory
}
