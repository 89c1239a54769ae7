package utils

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ssm"
	"github.com/aws/aws-sdk-go/service/ssm/ssmiface"
)

var ErrUnknownEnvironment = errors.New("unknown environment")

// ParameterStore resolves deployment parameters. In DEVELOPMENT they come
// from the process environment, in PRODUCTION from SSM Parameter Store.
type ParameterStore struct {
	lookup    LookupFunc
	newClient func() (ssmiface.SSMAPI, error)
}

func NewParameterStore(lookup LookupFunc, newClient func() (ssmiface.SSMAPI, error)) *ParameterStore {
	return &ParameterStore{lookup: lookup, newClient: newClient}
}

func NewSSMClient() (ssmiface.SSMAPI, error) {
	sess, err := session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating aws session: %w", err)
	}
	return ssm.New(sess), nil
}

func (p *ParameterStore) GetParameter(ctx context.Context, name string) (string, error) {
	environment, _ := p.lookup(Constants["ENVIRONMENT"])
	switch environment {
	case Constants["ENV_DEVELOPMENT"]:
		value, ok := p.lookup(name)
		if !ok {
			return "", fmt.Errorf("parameter %s is not set", name)
		}
		return value, nil
	case Constants["ENV_PRODUCTION"]:
		client, err := p.newClient()
		if err != nil {
			return "", err
		}
		results, err := client.GetParameterWithContext(ctx, &ssm.GetParameterInput{
			Name:           aws.String(name),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			return "", fmt.Errorf("error fetching parameter %s: %w", name, err)
		}
		if results.Parameter == nil || results.Parameter.Value == nil {
			return "", fmt.Errorf("parameter %s has no value", name)
		}
		return *results.Parameter.Value, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, environment)
	}
}
