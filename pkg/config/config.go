package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// External APIs
	EDGAR EDGARConfig
	Yahoo YahooConfig

	// Result cache expiry (fundamentals responses are cached per ticker)
	CacheTTL time.Duration

	// Logging
	LogLevel  string
	LogFormat string
}

// EDGARConfig holds SEC EDGAR API configuration
type EDGARConfig struct {
	// UserAgent identifies the caller per SEC's fair-use policy.
	// SEC expects a real contact, e.g. "Jane Doe jane@example.com".
	UserAgent string
	DataURL   string // data.sec.gov (submissions, companyfacts APIs)
	FilesURL  string // www.sec.gov (ticker file, filing archives)

	// RequestsPerSecond caps outbound calls; SEC allows at most 10/s.
	RequestsPerSecond int
	Timeout           time.Duration
}

// YahooConfig holds the Yahoo Finance quote endpoint configuration
type YahooConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try multiple paths for .env file
	loadEnvFile()

	cfg := &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		EDGAR: EDGARConfig{
			UserAgent:         getEnv("EDGAR_USER_AGENT", "secfund admin@secfund.dev"),
			DataURL:           getEnv("EDGAR_DATA_URL", "https://data.sec.gov"),
			FilesURL:          getEnv("EDGAR_FILES_URL", "https://www.sec.gov"),
			RequestsPerSecond: getEnvAsInt("EDGAR_RATE_LIMIT", 10),
			Timeout:           getEnvAsDuration("EDGAR_TIMEOUT", "30s"),
		},

		Yahoo: YahooConfig{
			BaseURL: getEnv("YAHOO_BASE_URL", "https://query1.finance.yahoo.com"),
			Timeout: getEnvAsDuration("YAHOO_TIMEOUT", "10s"),
		},

		CacheTTL: getEnvAsDuration("CACHE_TTL", "1h"),

		// Logging
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	// Validate configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	// SEC rejects anonymous clients
	if c.EDGAR.UserAgent == "" {
		return fmt.Errorf("EDGAR_USER_AGENT is required")
	}

	if c.EDGAR.RequestsPerSecond <= 0 || c.EDGAR.RequestsPerSecond > 10 {
		return fmt.Errorf("EDGAR_RATE_LIMIT must be between 1 and 10")
	}

	// Validate environment
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	// Try paths in order of priority
	paths := []string{
		".env", // Current directory
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to default
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
