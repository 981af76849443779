package config

import (
	"fmt"
	"os"
	"strings"
)

// RequiredEnvVars lists the environment variables a postgres deployment
// must set before setup or startup is attempted
var RequiredEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
}

// MinAPIKeyLength is the shortest API key accepted without a warning
const MinAPIKeyLength = 32

// ValidateEnv checks that all required environment variables are set
func ValidateEnv() error {
	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues alongside any hard failure
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == "postgres" {
		warnings = append(warnings, "DB_PASSWORD is using the default value - please use a real password")
	}

	if len(os.Getenv("API_KEY")) < MinAPIKeyLength {
		warnings = append(warnings, fmt.Sprintf("API_KEY is shorter than %d characters - generate one with: openssl rand -hex 32", MinAPIKeyLength))
	}

	return warnings, nil
}
