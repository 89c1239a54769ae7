package utils

import (
	"context"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"

	"google.golang.org/api/option"
)

// Firestore Functions

// LogSink stores invocation logs.
type LogSink interface {
	Add(ctx context.Context, entry Log) error
	Close() error
}

type LogSinkFactory func(ctx context.Context) (LogSink, error)

func InitializeFirestoreClient(ctx context.Context, params *ParameterStore) (*firestore.Client, error) {
	cred, err := params.GetParameter(ctx, Constants["FIRE_STORE_CRED"])
	if err != nil {
		return nil, err
	}

	sa := option.WithCredentialsJSON([]byte(cred))
	app, err := firebase.NewApp(ctx, nil, sa)
	if err != nil {
		return nil, err
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, err
	}

	return client, nil
}

type firestoreSink struct {
	client *firestore.Client
}

// FirestoreLogSinkFactory writes logs to the Firestore logs collection, with
// credentials resolved through a ParameterStore backed by lookup.
func FirestoreLogSinkFactory(lookup LookupFunc) LogSinkFactory {
	return func(ctx context.Context) (LogSink, error) {
		client, err := InitializeFirestoreClient(ctx, NewParameterStore(lookup, NewSSMClient))
		if err != nil {
			return nil, err
		}
		return &firestoreSink{client: client}, nil
	}
}

func (s *firestoreSink) Add(ctx context.Context, entry Log) error {
	_, _, err := s.client.Collection(Constants["LOGS_COLLECTION"]).Add(ctx, entry)
	return err
}

func (s *firestoreSink) Close() error {
	return s.client.Close()
}
