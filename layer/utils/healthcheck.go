package utils

import (
	"context"

	"go.uber.org/zap"
)

// RoundTrip connects, runs HealthCheckQuery and fetches one row. The cursor
// and then the connection are released on every path; release failures are
// discarded.
func RoundTrip(ctx context.Context, logger *zap.Logger, connector Connector, params ConnectionParameters) (Row, error) {
	var (
		conn   Connection
		cursor Cursor
	)
	defer func() {
		if cursor != nil {
			release(logger, "cursor", cursor.Close)
		}
		if conn != nil {
			release(logger, "connection", conn.Close)
		}
	}()

	logger.Info("Connecting to Vertica...")
	conn, err := connector.Connect(ctx, params)
	if err != nil {
		return nil, err
	}
	cursor, err = conn.Cursor()
	if err != nil {
		return nil, err
	}
	logger.Info("Connection established. Executing test query...")

	if err := cursor.Execute(ctx, HealthCheckQuery); err != nil {
		return nil, err
	}
	return cursor.FetchOne()
}

// CheckVertica runs one round trip and reports it. Every database-phase
// failure is reported the same way.
func CheckVertica(ctx context.Context, logger *zap.Logger, connector Connector, params ConnectionParameters) InvocationResult {
	if params.TLSConfig != nil && params.TLSConfig.InsecureSkipVerify {
		logger.Warn("TLS enabled without hostname or certificate verification",
			zap.String("host", params.Host))
	}

	row, err := RoundTrip(ctx, logger, connector, params)
	if err != nil {
		logger.Error("vertica health check failed", zap.Error(err))
		return Failure(NewInvocationError(DatabaseError, err))
	}

	logger.Info("vertica health check succeeded", zap.Stringer("row", row))
	return Success(row)
}

func release(logger *zap.Logger, name string, closeFn func() error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Debug("ignoring panic while closing "+name, zap.Any("panic", r))
		}
	}()
	if err := closeFn(); err != nil {
		logger.Debug("ignoring error while closing "+name, zap.Error(err))
	}
}
