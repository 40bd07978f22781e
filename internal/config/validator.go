package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout version this build understands.
// Bump it together with any breaking change to the required variables.
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must all be set when running with strict validation
// (production deployments). The schema version stays first so callers can
// slice it off when they only care about the value variables.
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"API_KEY",
}

// Placeholder values copied verbatim from .env.example. Their presence in a
// real environment means the operator forgot to fill them in.
var placeholderValues = map[string]string{
	"DB_PASSWORD": "change_this_secure_password",
	"API_KEY":     "generate_with_openssl_rand_hex_32",
}

// ValidateEnv checks that the environment declares the expected schema
// version and that every required variable is set.
func ValidateEnv() error {
	version := os.Getenv(RequiredEnvVars[0])
	switch {
	case version == "":
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set; add it to your .env file (expected %s)", ExpectedEnvSchemaVersion)
	case version != ExpectedEnvSchemaVersion:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s; your .env file may be outdated", ExpectedEnvSchemaVersion, version)
	}

	var missing []string
	for _, name := range RequiredEnvVars[1:] {
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and additionally flags variables
// still carrying example placeholder values.
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for name, placeholder := range placeholderValues {
		if os.Getenv(name) == placeholder {
			warnings = append(warnings, fmt.Sprintf("%s still has the example value; replace it before going live", name))
		}
	}
	return warnings, nil
}
