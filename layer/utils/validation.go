package utils

import (
	"fmt"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// Validation Functions

func requiredVariables(mode CredentialMode) []string {
	if mode == CredentialsFromSecretsManager {
		return []string{
			Constants["HOST"],
			Constants["PORT"],
			Constants["USER"],
			Constants["DATABASE"],
			Constants["SECRET_NAME"],
		}
	}
	return []string{
		Constants["HOST"],
		Constants["PORT"],
		Constants["USER"],
		Constants["PASSWORD"],
		Constants["DATABASE"],
	}
}

func validateRequired(lookup LookupFunc, keys []string) (map[string]string, error) {
	values := make(map[string]string, len(keys))
	for _, key := range keys {
		value, _ := lookup(key)
		if err := validation.Validate(value, validation.Required); err != nil {
			return nil, fmt.Errorf("missing required environment variable: %s", key)
		}
		values[key] = value
	}
	return values, nil
}

func parsePort(key string, value string) (int, error) {
	if err := validation.Validate(value, is.Port); err != nil {
		return 0, fmt.Errorf("invalid environment variable %s: %v", key, err)
	}
	port, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid environment variable %s: %w", key, err)
	}
	return port, nil
}
