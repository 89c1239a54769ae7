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
	lookup     utils.LookupFunc
	connector  utils.Connector
	newLogSink utils.LogSinkFactory
	logger     *zap.Logger
}

// handler checks Vertica connectivity using the password from PASSWORD.
// The trigger event is ignored, so any JSON payload is accepted.
func (d *deps) handler(ctx context.Context, event json.RawMessage) (events.APIGatewayProxyResponse, error) {
	logger := utils.RequestLogger(ctx, d.logger)

	cfg, cfgErr := utils.LoadConfig(d.lookup, utils.CredentialsFromEnvironment)
	if cfgErr != nil {
		logger.Error("invalid configuration", zap.Error(cfgErr))
		return utils.Failure(cfgErr).Response(), nil
	}

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
		lookup:     os.LookupEnv,
		connector:  utils.NewVerticaConnector(),
		newLogSink: utils.FirestoreLogSinkFactory(os.LookupEnv),
		logger:     logger,
	}
	lambda.Start(d.handler)
}
