package utils

import (
	"crypto/tls"
	"strings"
	"time"
)

// LookupFunc resolves a configuration variable; os.LookupEnv in production.
type LookupFunc func(key string) (string, bool)

type CredentialMode int

const (
	CredentialsFromEnvironment CredentialMode = iota
	CredentialsFromSecretsManager
)

// Config is resolved once at the start of an invocation and passed down.
type Config struct {
	Host           string
	Port           int
	User           string
	Password       string
	Database       string
	SecretName     string
	Region         string
	UseSSL         bool
	LogToFirestore bool
}

type ConnectionParameters struct {
	Host              string
	Port              int
	User              string
	Password          string
	Database          string
	ConnectionTimeout time.Duration
	TLSMode           string
	// TLSConfig is nil when SSL is disabled.
	TLSConfig *tls.Config
}

func LoadConfig(lookup LookupFunc, mode CredentialMode) (Config, *InvocationError) {
	values, err := validateRequired(lookup, requiredVariables(mode))
	if err != nil {
		return Config{}, NewInvocationError(ConfigMissing, err)
	}

	port, err := parsePort(Constants["PORT"], values[Constants["PORT"]])
	if err != nil {
		return Config{}, NewInvocationError(ConfigMissing, err)
	}

	cfg := Config{
		Host:           values[Constants["HOST"]],
		Port:           port,
		User:           values[Constants["USER"]],
		Database:       values[Constants["DATABASE"]],
		UseSSL:         isTrue(lookup, Constants["USE_SSL"]),
		LogToFirestore: isTrue(lookup, Constants["LOG_TO_FIRESTORE"]),
	}

	if mode == CredentialsFromSecretsManager {
		cfg.SecretName = values[Constants["SECRET_NAME"]]
		cfg.Region = getEnv(lookup, Constants["REGION"],
			getEnv(lookup, Constants["AWS_REGION"], Constants["DEFAULT_REGION"]))
	} else {
		cfg.Password = values[Constants["PASSWORD"]]
	}

	return cfg, nil
}

// ConnectionParameters builds the per-invocation connection settings.
// Enabling SSL attaches a TLS config that skips hostname and certificate
// verification.
func (c Config) ConnectionParameters() ConnectionParameters {
	params := ConnectionParameters{
		Host:              c.Host,
		Port:              c.Port,
		User:              c.User,
		Password:          c.Password,
		Database:          c.Database,
		ConnectionTimeout: DefaultConnectionTimeout,
		TLSMode:           TLSModeRequire,
	}
	if c.UseSSL {
		params.TLSConfig = insecureTLSConfig()
	}
	return params
}

func insecureTLSConfig() *tls.Config {
	// TODO: accept a CA bundle and server name so verification can be turned on.
	return &tls.Config{
		InsecureSkipVerify: true,
		MinVersion:         tls.VersionTLS12,
	}
}

func isTrue(lookup LookupFunc, key string) bool {
	value, _ := lookup(key)
	return strings.EqualFold(value, "true")
}

func getEnv(lookup LookupFunc, key string, defaultVal string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return defaultVal
}
