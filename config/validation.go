package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrMissingCredential means no model provider credential was configured.
// The generation endpoint cannot serve anything without one.
var ErrMissingCredential = errors.New("missing model provider credential")

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the configuration can be used to serve requests
func ValidateConfig(cfg *Config) error {
	if cfg.OpenAIAPIKey == "" {
		return ErrMissingCredential
	}

	var problems []string

	if cfg.ServerPort == "" {
		problems = append(problems, ValidationError{"SERVER_PORT", "must not be empty"}.Error())
	}
	if u, err := url.Parse(cfg.OpenAIAPIURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, ValidationError{"OPENAI_API_URL", "must be an absolute URL"}.Error())
	}
	if cfg.OpenAIModel == "" {
		problems = append(problems, ValidationError{"OPENAI_MODEL", "must not be empty"}.Error())
	}
	if cfg.RateLimitPerHour <= 0 {
		problems = append(problems, ValidationError{"RATE_LIMIT_PER_HOUR", "must be greater than zero"}.Error())
	}
	if cfg.RedisDB < 0 {
		problems = append(problems, ValidationError{"REDIS_DB", "must not be negative"}.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(problems, "\n"))
	}

	return nil
}
