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

// ValidateConfig checks that the loaded configuration is usable in the
// current environment. Connection settings have defaults, so validation
// focuses on values that cannot be guessed.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if cfg.JWTSecret == "" {
		errors = append(errors, "JWT_SECRET is required")
	}

	if IsProduction() {
		if cfg.DBUser == "" {
			errors = append(errors, "db_user secret is required in production")
		}
		if cfg.DBPassword == "" {
			errors = append(errors, "db_password secret is required in production")
		}
		if cfg.DBSSLMode == "disable" {
			errors = append(errors, "DB_SSL_MODE must not be 'disable' in production")
		}
	}

	// Generation endpoints refuse requests for providers without a key, so
	// missing provider keys are a warning-level condition everywhere except
	// production, where at least one provider must work.
	if IsProduction() && cfg.OpenAIAPIKey == "" && cfg.AnthropicAPIKey == "" {
		errors = append(errors, "at least one of OPENAI_API_KEY or ANTHROPIC_API_KEY is required in production")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
