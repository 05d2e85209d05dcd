package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every config source at an empty place so the host
// environment cannot leak into a test.
func isolate(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CI", "ENV", "SERVER_PORT", "SERVER_HOST", "OPENAI_API_KEY", "OPENAI_API_KEY_FILE",
		"OPENAI_API_URL", "OPENAI_MODEL", "REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD",
		"REDIS_URL", "REDIS_DB", "RATE_LIMIT_PER_HOUR", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}
	t.Setenv("SECRETS_DIR", t.TempDir())
}

func TestLoadConfig(t *testing.T) {
	isolate(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("RATE_LIMIT_PER_HOUR", "5")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, ":9090", cfg.Address())
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
	assert.Equal(t, defaultOpenAIAPIURL, cfg.OpenAIAPIURL)
	assert.Equal(t, 5, cfg.RateLimitPerHour)
	assert.True(t, cfg.RedisEnabled())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfigWithDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, defaultServerPort, cfg.ServerPort)
	assert.Equal(t, defaultOpenAIModel, cfg.OpenAIModel)
	assert.Equal(t, defaultRateLimit, cfg.RateLimitPerHour)
	assert.False(t, cfg.RedisEnabled())
	assert.Equal(t, []string{defaultCORSOrigin}, cfg.CORSAllowedOrigins)
}

func TestLoadConfigMissingCredential(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig()
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, ErrMissingCredential))
}

func TestLoadConfigCredentialFromFile(t *testing.T) {
	isolate(t)
	keyFile := filepath.Join(t.TempDir(), "key")
	require.NoError(t, os.WriteFile(keyFile, []byte("sk-from-file\n"), 0o600))
	t.Setenv("OPENAI_API_KEY_FILE", keyFile)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "sk-from-file", cfg.OpenAIAPIKey)
}

func TestLoadConfigProductionUsesEnvKey(t *testing.T) {
	isolate(t)
	t.Setenv("ENV", "production")
	t.Setenv("OPENAI_API_KEY", "sk-from-env")

	secrets := os.Getenv("SECRETS_DIR")
	require.NoError(t, os.WriteFile(filepath.Join(secrets, "openai_api_key"), []byte("sk-secret"), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "sk-from-env", cfg.OpenAIAPIKey)
}

func TestLoadConfigProductionFallsBackToSecrets(t *testing.T) {
	isolate(t)
	t.Setenv("ENV", "production")

	secrets := os.Getenv("SECRETS_DIR")
	require.NoError(t, os.WriteFile(filepath.Join(secrets, "openai_api_key"), []byte("sk-secret"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(secrets, "server_port"), []byte("8443"), 0o600))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "sk-secret", cfg.OpenAIAPIKey)
	assert.Equal(t, "8443", cfg.ServerPort)
}

func TestValidateConfig(t *testing.T) {
	cfg := &Config{
		ServerPort:       "8080",
		OpenAIAPIKey:     "sk-test",
		OpenAIAPIURL:     "not a url",
		OpenAIModel:      "gpt-4o-mini",
		RateLimitPerHour: 0,
	}

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_URL")
	assert.Contains(t, err.Error(), "RATE_LIMIT_PER_HOUR")
}

func TestGetEnvironment(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("ENV", "production")
	assert.Equal(t, Production, GetEnvironment())
	assert.True(t, IsProduction())

	t.Setenv("CI", "true")
	assert.Equal(t, CI, GetEnvironment())

	t.Setenv("CI", "")
	t.Setenv("ENV", "")
	assert.Equal(t, Development, GetEnvironment())
}
