package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/Real-Dev-Squad/vertica-conn/layer/utils"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

type deps struct {
	lookup           utils.LookupFunc
	newSecretsClient utils.SecretsClientFactory
	connector        utils.Connector
	newLogSink       utils.LogSinkFactory
	logger           *zap.Logger
}

// handler checks Vertica connectivity with the password stored in Secrets
// Manager under SECRET_NAME. The trigger event is ignored, so any JSON
// payload is accepted.
func (d *deps) handler(ctx context.Context, event json.RawMessage) (events.APIGatewayProxyResponse, error) {
	logger := utils.RequestLogger(ctx, d.logger)

	cfg, cfgErr := utils.LoadConfig(d.lookup, utils.CredentialsFromSecretsManager)
	if cfgErr != nil {
		logger.Error("invalid configuration", zap.Error(cfgErr))
		return utils.Failure(cfgErr).Response(), nil
	}

	password, credErr := utils.FetchPassword(ctx, d.newSecretsClient, cfg.SecretName, cfg.Region)
	if credErr != nil {
		logger.Error("unable to resolve vertica password",
			zap.String("secret", cfg.SecretName),
			zap.String("region", cfg.Region),
			zap.Error(credErr))
		result := utils.Failure(credErr)
		utils.LogHealth(ctx, logger, d.newLogSink, cfg, result)
		return result.Response(), nil
	}
	cfg.Password = password

	result := utils.CheckVertica(ctx, logger, d.connector, cfg.ConnectionParameters())
	utils.LogHealth(ctx, logger, d.newLogSink, cfg, result)
	return result.Response(), nil
}

func main() {
	logger, err := utils.NewLogger(os.LookupEnv)
	if err != nil {
		logger = zap.NewNop()
	}
	defer logger.Sync()

	d := deps{
		lookup:           os.LookupEnv,
		newSecretsClient: utils.NewSecretsManagerClient,
		connector:        utils.NewVerticaConnector(),
		newLogSink:       utils.FirestoreLogSinkFactory(os.LookupEnv),
		logger:           logger,
	}
	lambda.Start(d.handler)
}
