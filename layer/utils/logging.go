package utils

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logging Functions

// NewLogger builds the production JSON logger. LOG_LEVEL picks the level;
// unknown values fall back to info.
func NewLogger(lookup LookupFunc) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	level, err := zap.ParseAtomicLevel(getEnv(lookup, Constants["LOG_LEVEL"], "info"))
	if err != nil {
		level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	config.Level = level
	return config.Build()
}

func RequestLogger(ctx context.Context, logger *zap.Logger) *zap.Logger {
	fields := []zap.Field{zap.String("function_name", lambdacontext.FunctionName)}
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		fields = append(fields, zap.String("aws_request_id", lc.AwsRequestID))
	}
	return logger.With(fields...)
}

func NewHealthCheckLog(ctx context.Context, cfg Config, result InvocationResult) Log {
	meta := map[string]interface{}{
		"host":     cfg.Host,
		"database": cfg.Database,
	}
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		meta["requestId"] = lc.AwsRequestID
	}
	return Log{
		Type:      Constants["VERTICA_HEALTH_CHECK"],
		Timestamp: time.Now(),
		Meta:      meta,
		Body: map[string]interface{}{
			"statusCode": result.StatusCode,
			"status":     string(result.Status),
			"message":    result.Message,
		},
	}
}

// LogHealth records the invocation outcome when LOG_TO_FIRESTORE is on.
// It never affects the result returned to the caller.
func LogHealth(ctx context.Context, logger *zap.Logger, newSink LogSinkFactory, cfg Config, result InvocationResult) {
	if !cfg.LogToFirestore || newSink == nil {
		return
	}

	sink, err := newSink(ctx)
	if err != nil {
		logger.Warn("unable to open health log sink", zap.Error(err))
		return
	}
	defer func() {
		if err := sink.Close(); err != nil {
			logger.Debug("ignoring error while closing health log sink", zap.Error(err))
		}
	}()

	if err := sink.Add(ctx, NewHealthCheckLog(ctx, cfg, result)); err != nil {
		logger.Warn("unable to write health log", zap.Error(err))
	}
}
