package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultServerPort   = "8080"
	defaultOpenAIAPIURL = "https://api.openai.com/v1/chat/completions"
	defaultOpenAIModel  = "gpt-4o-mini"
	defaultRateLimit    = 20
	defaultCORSOrigin   = "http://localhost:3000"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Model provider configuration
	OpenAIAPIKey string
	OpenAIAPIURL string
	OpenAIModel  string

	// Redis configuration, only used for rate limiting
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Generation requests allowed per client per hour
	RateLimitPerHour int

	CORSAllowedOrigins []string
}

// LoadConfig creates a new Config instance with values from environment variables or secrets.
// Environment variables win over Docker secrets.
func LoadConfig() (*Config, error) {
	apiKey, err := loadAPIKey()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerPort:         lookup("SERVER_PORT", "server_port", defaultServerPort),
		ServerHost:         lookup("SERVER_HOST", "server_host", ""),
		OpenAIAPIKey:       apiKey,
		OpenAIAPIURL:       lookup("OPENAI_API_URL", "openai_api_url", defaultOpenAIAPIURL),
		OpenAIModel:        lookup("OPENAI_MODEL", "openai_model", defaultOpenAIModel),
		RedisHost:          lookup("REDIS_HOST", "redis_host", ""),
		RedisPort:          lookup("REDIS_PORT", "redis_port", "6379"),
		RedisPassword:      lookup("REDIS_PASSWORD", "redis_password", ""),
		RedisURL:           lookup("REDIS_URL", "redis_url", ""),
		RateLimitPerHour:   defaultRateLimit,
		CORSAllowedOrigins: splitList(lookup("CORS_ALLOWED_ORIGINS", "", defaultCORSOrigin)),
	}

	if db := os.Getenv("REDIS_DB"); db != "" {
		n, err := strconv.Atoi(db)
		if err != nil {
			return nil, fmt.Errorf("REDIS_DB must be a number: %w", err)
		}
		cfg.RedisDB = n
	}
	if limit := os.Getenv("RATE_LIMIT_PER_HOUR"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return nil, fmt.Errorf("RATE_LIMIT_PER_HOUR must be a number: %w", err)
		}
		cfg.RateLimitPerHour = n
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Address returns the host:port the HTTP server listens on.
func (c *Config) Address() string {
	return c.ServerHost + ":" + c.ServerPort
}

// RedisEnabled reports whether any Redis location was configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// loadAPIKey resolves the provider credential from OPENAI_API_KEY,
// OPENAI_API_KEY_FILE or the openai_api_key secret, in that order.
func loadAPIKey() (string, error) {
	if key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); key != "" {
		return key, nil
	}

	if keyFile := os.Getenv("OPENAI_API_KEY_FILE"); keyFile != "" {
		data, err := os.ReadFile(keyFile)
		if err != nil {
			return "", fmt.Errorf("failed to read API key file: %w", err)
		}
		if key := strings.TrimSpace(string(data)); key != "" {
			return key, nil
		}
		return "", fmt.Errorf("%w: API key file is empty", ErrMissingCredential)
	}

	if key := readSecret("openai_api_key"); key != "" {
		return key, nil
	}

	return "", fmt.Errorf("%w: OPENAI_API_KEY or OPENAI_API_KEY_FILE must be set", ErrMissingCredential)
}

// lookup returns the environment variable, then the Docker secret, then the fallback.
func lookup(envVar, secret, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(envVar)); value != "" {
		return value
	}
	if secret != "" {
		if value := readSecret(secret); value != "" {
			return value
		}
	}
	return fallback
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
