package mocks

import (
	"github.com/Real-Dev-Squad/vertica-conn/layer/utils"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/secretsmanager"
	"github.com/aws/aws-sdk-go/service/secretsmanager/secretsmanageriface"
)

type SecretsManager struct {
	secretsmanageriface.SecretsManagerAPI

	SecretString *string
	SecretBinary []byte
	Err          error

	Regions  []string
	Requests []*secretsmanager.GetSecretValueInput
}

func (m *SecretsManager) GetSecretValueWithContext(ctx aws.Context, input *secretsmanager.GetSecretValueInput, opts ...request.Option) (*secretsmanager.GetSecretValueOutput, error) {
	m.Requests = append(m.Requests, input)
	if m.Err != nil {
		return nil, m.Err
	}
	return &secretsmanager.GetSecretValueOutput{
		Name:         input.SecretId,
		SecretString: m.SecretString,
		SecretBinary: m.SecretBinary,
	}, nil
}

// Factory hands out m for every region and records the regions requested.
func (m *SecretsManager) Factory() utils.SecretsClientFactory {
	return func(region string) (secretsmanageriface.SecretsManagerAPI, error) {
		m.Regions = append(m.Regions, region)
		return m, nil
	}
}
