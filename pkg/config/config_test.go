package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Check defaults
	if cfg.Port != "8080" {
		t.Errorf("Expected Port to be 8080, got %s", cfg.Port)
	}

	if cfg.Env != "development" {
		t.Errorf("Expected Env to be development, got %s", cfg.Env)
	}

	if cfg.EDGAR.RequestsPerSecond != 10 {
		t.Errorf("Expected EDGAR rate limit to be 10, got %d", cfg.EDGAR.RequestsPerSecond)
	}

	if cfg.CacheTTL != time.Hour {
		t.Errorf("Expected CacheTTL to be 1h, got %v", cfg.CacheTTL)
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	// Set custom environment variables
	os.Setenv("PORT", "9000")
	os.Setenv("ENV", "production")
	os.Setenv("EDGAR_USER_AGENT", "Test Suite test@example.com")
	os.Setenv("EDGAR_RATE_LIMIT", "5")
	os.Setenv("LOG_LEVEL", "debug")

	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("ENV")
		os.Unsetenv("EDGAR_USER_AGENT")
		os.Unsetenv("EDGAR_RATE_LIMIT")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Expected Port to be 9000, got %s", cfg.Port)
	}

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be production, got %s", cfg.Env)
	}

	if cfg.EDGAR.UserAgent != "Test Suite test@example.com" {
		t.Errorf("Expected custom EDGAR user agent, got %s", cfg.EDGAR.UserAgent)
	}

	if cfg.EDGAR.RequestsPerSecond != 5 {
		t.Errorf("Expected EDGAR rate limit to be 5, got %d", cfg.EDGAR.RequestsPerSecond)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("Expected LogLevel to be debug, got %s", cfg.LogLevel)
	}
}

func TestValidateInvalidRateLimit(t *testing.T) {
	os.Setenv("EDGAR_RATE_LIMIT", "25")
	defer os.Unsetenv("EDGAR_RATE_LIMIT")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when EDGAR_RATE_LIMIT exceeds 10, got nil")
	}
}

func TestValidateInvalidEnv(t *testing.T) {
	os.Setenv("ENV", "invalid")
	defer os.Unsetenv("ENV")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when ENV is invalid, got nil")
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	os.Setenv("TEST_DURATION", "2h")
	defer os.Unsetenv("TEST_DURATION")

	duration := getEnvAsDuration("TEST_DURATION", "1h")
	expected := 2 * time.Hour

	if duration != expected {
		t.Errorf("Expected duration to be %v, got %v", expected, duration)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	os.Setenv("TEST_INT", "100")
	defer os.Unsetenv("TEST_INT")

	value := getEnvAsInt("TEST_INT", 50)
	if value != 100 {
		t.Errorf("Expected value to be 100, got %d", value)
	}
}
