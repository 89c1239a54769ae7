package main

import (
	"errors"

	"github.com/Real-Dev-Squad/vertica-conn/layer/utils/mocks"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
)

func validEnv() map[string]string {
	return map[string]string{
		"HOST":        "vertica.example.com",
		"PORT":        "5433",
		"USER":        "dbadmin",
		"DATABASE":    "analytics",
		"SECRET_NAME": "prod/vertica/dbadmin",
	}
}

func envWithout(key string) map[string]string {
	env := validEnv()
	delete(env, key)
	return env
}

var MissingConfigTests = []struct {
	Name        string
	Env         map[string]string
	Field       string
	Description string
}{
	{Name: "MissingHost", Env: envWithout("HOST"), Field: "HOST", Description: "HOST not set"},
	{Name: "MissingPort", Env: envWithout("PORT"), Field: "PORT", Description: "PORT not set"},
	{Name: "MissingUser", Env: envWithout("USER"), Field: "USER", Description: "USER not set"},
	{Name: "MissingDatabase", Env: envWithout("DATABASE"), Field: "DATABASE", Description: "DATABASE not set"},
	{Name: "MissingSecretName", Env: envWithout("SECRET_NAME"), Field: "SECRET_NAME", Description: "SECRET_NAME not set"},
}

var SecretFailureTests = []struct {
	Name            string
	SecretsManager  func() *mocks.SecretsManager
	ExpectedMessage string
	Description     string
}{
	{
		Name: "AccessDenied",
		SecretsManager: func() *mocks.SecretsManager {
			return &mocks.SecretsManager{Err: awserr.New("AccessDeniedException", "not authorized to perform secretsmanager:GetSecretValue", nil)}
		},
		ExpectedMessage: "AccessDeniedException",
		Description:     "API call fails",
	},
	{
		Name: "ResourceNotFound",
		SecretsManager: func() *mocks.SecretsManager {
			return &mocks.SecretsManager{Err: awserr.New(secretsmanager.ErrCodeResourceNotFoundException, "Secrets Manager can't find the specified secret.", nil)}
		},
		ExpectedMessage: "ResourceNotFoundException",
		Description:     "secret does not exist",
	},
	{
		Name: "NotJSON",
		SecretsManager: func() *mocks.SecretsManager {
			return &mocks.SecretsManager{SecretString: aws.String("hunter2")}
		},
		ExpectedMessage: "error decoding secret",
		Description:     "payload is not JSON",
	},
	{
		Name: "JSONArray",
		SecretsManager: func() *mocks.SecretsManager {
			return &mocks.SecretsManager{SecretString: aws.String(`["hunter2"]`)}
		},
		ExpectedMessage: "error decoding secret",
		Description:     "payload is not a JSON object",
	},
	{
		Name: "MissingPasswordKey",
		SecretsManager: func() *mocks.SecretsManager {
			return &mocks.SecretsManager{SecretString: aws.String(`{"username": "dbadmin"}`)}
		},
		ExpectedMessage: `"password"`,
		Description:     "payload has no password key",
	},
	{
		Name: "NonStringPassword",
		SecretsManager: func() *mocks.SecretsManager {
			return &mocks.SecretsManager{SecretString: aws.String(`{"password": 1234}`)}
		},
		ExpectedMessage: `"password"`,
		Description:     "password is not a string",
	},
	{
		Name: "EmptySecret",
		SecretsManager: func() *mocks.SecretsManager {
			return &mocks.SecretsManager{}
		},
		ExpectedMessage: "neither a string nor a binary value",
		Description:     "secret has no value",
	},
}

var RegionTests = []struct {
	Name     string
	Env      map[string]string
	Expected string
}{
	{Name: "Default", Env: map[string]string{}, Expected: "us-west-2"},
	{Name: "Explicit", Env: map[string]string{"REGION": "eu-central-1"}, Expected: "eu-central-1"},
	{Name: "LambdaRuntimeRegion", Env: map[string]string{"AWS_REGION": "ap-south-1"}, Expected: "ap-south-1"},
	{Name: "ExplicitWins", Env: map[string]string{"REGION": "eu-central-1", "AWS_REGION": "ap-south-1"}, Expected: "eu-central-1"},
}

var errDial = errors.New("dial tcp 10.0.0.1:5433: i/o timeout")

var TriggerEventTests = []struct {
	Name        string
	Event       string
	Description string
}{
	{Name: "EmptyObject", Event: `{}`, Description: "empty event"},
	{Name: "String", Event: `"ping"`, Description: "bare JSON string"},
	{Name: "Array", Event: `[1]`, Description: "JSON array"},
	{Name: "ObjectBody", Event: `{"body": {"a": 1}}`, Description: "body is not a string"},
	{Name: "ScheduledEvent", Event: `{"source": "aws.events", "detail-type": "Scheduled Event", "detail": {}}`, Description: "EventBridge schedule"},
	{Name: "Null", Event: `null`, Description: "JSON null"},
}
