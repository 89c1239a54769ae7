package mocks

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/ssm"
	"github.com/aws/aws-sdk-go/service/ssm/ssmiface"
)

type SSM struct {
	ssmiface.SSMAPI

	Values map[string]string
	Err    error
}

func (m *SSM) GetParameterWithContext(ctx aws.Context, input *ssm.GetParameterInput, opts ...request.Option) (*ssm.GetParameterOutput, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	value, ok := m.Values[aws.StringValue(input.Name)]
	if !ok {
		return nil, &ssm.ParameterNotFound{Message_: aws.String("parameter not found")}
	}
	return &ssm.GetParameterOutput{
		Parameter: &ssm.Parameter{Name: input.Name, Value: aws.String(value)},
	}, nil
}
