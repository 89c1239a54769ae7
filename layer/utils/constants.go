package utils

import "time"

var Constants = map[string]string{
	"ENV_DEVELOPMENT": "DEVELOPMENT",
	"ENV_PRODUCTION":  "PRODUCTION",
	"ENVIRONMENT":     "environment",
	"FIRE_STORE_CRED": "firestoreCred",
	"LOGS_COLLECTION": "logs",

	"HOST":             "HOST",
	"PORT":             "PORT",
	"USER":             "USER",
	"PASSWORD":         "PASSWORD",
	"DATABASE":         "DATABASE",
	"SECRET_NAME":      "SECRET_NAME",
	"USE_SSL":          "USE_SSL",
	"REGION":           "REGION",
	"AWS_REGION":       "AWS_REGION",
	"LOG_LEVEL":        "LOG_LEVEL",
	"LOG_TO_FIRESTORE": "LOG_TO_FIRESTORE",

	"DEFAULT_REGION":       "us-west-2",
	"VERTICA_HEALTH_CHECK": "VERTICA_HEALTH_CHECK",
}

const (
	HealthCheckQuery         = "SELECT 1;"
	TLSModeRequire           = "require"
	DefaultConnectionTimeout = 10 * time.Second
)
