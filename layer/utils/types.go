package utils

import (
	"fmt"
	"strings"
	"time"
)

// Structures

type Log struct {
	Type      string                 `firestore:"type,omitempty"`
	Timestamp time.Time              `firestore:"timestamp,omitempty"`
	Meta      map[string]interface{} `firestore:"meta,omitempty"`
	Body      map[string]interface{} `firestore:"body,omitempty"`
}

type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// ErrorKind classifies every failure a health-check invocation can report.
type ErrorKind int

const (
	ConfigMissing ErrorKind = iota + 1
	CredentialError
	DatabaseError
)

func (k ErrorKind) String() string {
	switch k {
	case ConfigMissing:
		return "ConfigMissing"
	case CredentialError:
		return "CredentialError"
	case DatabaseError:
		return "DatabaseError"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

type InvocationError struct {
	Kind ErrorKind
	Err  error
}

func NewInvocationError(kind ErrorKind, err error) *InvocationError {
	return &InvocationError{Kind: kind, Err: err}
}

func (e *InvocationError) Error() string {
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *InvocationError) Unwrap() error {
	return e.Err
}

// Message is the caller-visible text reported in the response body.
func (e *InvocationError) Message() string {
	switch e.Kind {
	case ConfigMissing:
		return "Configuration error: " + e.Err.Error()
	case CredentialError:
		return "Error retrieving secret from Secrets Manager: " + e.Err.Error()
	default:
		return "Error connecting to Vertica: " + e.Err.Error()
	}
}

// Row is a single fetched result row.
type Row []any

// String renders the row as a tuple, e.g. (1,) for a single column.
func (r Row) String() string {
	parts := make([]string, len(r))
	for i, v := range r {
		parts[i] = formatValue(v)
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func formatValue(v any) string {
	switch value := v.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + value + "'"
	case []byte:
		return "'" + string(value) + "'"
	case time.Time:
		return value.Format(time.RFC3339Nano)
	default:
		return fmt.Sprint(value)
	}
}
