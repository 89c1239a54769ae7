package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/aws/aws-sdk-go/service/secretsmanager/secretsmanageriface"
)

var (
	ErrSecretEmpty     = errors.New("secret has neither a string nor a binary value")
	ErrPasswordMissing = errors.New(`secret does not contain a string "password" key`)
)

type SecretsClientFactory func(region string) (secretsmanageriface.SecretsManagerAPI, error)

func NewSecretsManagerClient(region string) (secretsmanageriface.SecretsManagerAPI, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, fmt.Errorf("error creating aws session: %w", err)
	}
	return secretsmanager.New(sess), nil
}

// FetchPassword resolves the database password stored under secretName.
// The secret must be a JSON object with a "password" key.
func FetchPassword(ctx context.Context, newClient SecretsClientFactory, secretName string, region string) (string, *InvocationError) {
	client, err := newClient(region)
	if err != nil {
		return "", NewInvocationError(CredentialError, err)
	}

	secret, err := getSecret(ctx, client, secretName)
	if err != nil {
		return "", NewInvocationError(CredentialError, err)
	}

	password, ok := secret["password"].(string)
	if !ok {
		return "", NewInvocationError(CredentialError, fmt.Errorf("%s: %w", secretName, ErrPasswordMissing))
	}
	return password, nil
}

func getSecret(ctx context.Context, client secretsmanageriface.SecretsManagerAPI, secretName string) (map[string]interface{}, error) {
	output, err := client.GetSecretValueWithContext(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretName),
	})
	if err != nil {
		return nil, fmt.Errorf("error retrieving secret %s: %w", secretName, err)
	}

	var payload []byte
	switch {
	case output.SecretString != nil:
		payload = []byte(*output.SecretString)
	case output.SecretBinary != nil:
		payload = output.SecretBinary
	default:
		return nil, fmt.Errorf("%s: %w", secretName, ErrSecretEmpty)
	}

	var secret map[string]interface{}
	if err := json.Unmarshal(payload, &secret); err != nil {
		return nil, fmt.Errorf("error decoding secret %s: %w", secretName, err)
	}
	if secret == nil {
		return nil, fmt.Errorf("error decoding secret %s: payload is not a JSON object", secretName)
	}
	return secret, nil
}
