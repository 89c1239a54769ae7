package mocks

import (
	"context"

	"github.com/Real-Dev-Squad/vertica-conn/layer/utils"
)

type LogSink struct {
	AddErr  error
	Entries []utils.Log
	Closed  bool
}

func (s *LogSink) Add(ctx context.Context, entry utils.Log) error {
	s.Entries = append(s.Entries, entry)
	return s.AddErr
}

func (s *LogSink) Close() error {
	s.Closed = true
	return nil
}

func (s *LogSink) Factory() utils.LogSinkFactory {
	return func(ctx context.Context) (utils.LogSink, error) {
		return s, nil
	}
}
