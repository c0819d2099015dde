package config

import (
	"os"
)

// Environment is the runtime environment the server was started in.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment resolves the current environment. CI is detected from the
// standard CI variable; everything else comes from ENV, defaulting to
// development.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}

	switch os.Getenv("ENV") {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

// IsProduction reports whether the server runs in production.
func IsProduction() bool {
	return GetEnvironment() == Production
}
