package utils

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

type InvocationResult struct {
	StatusCode int
	Status     Status
	Message    string
}

type responseBody struct {
	Status  Status `json:"status"`
	Message string `json:"message"`
}

func Success(row Row) InvocationResult {
	return InvocationResult{
		StatusCode: http.StatusOK,
		Status:     StatusSuccess,
		Message:    "Connected to Vertica successfully. Query result: " + row.String(),
	}
}

func Failure(err *InvocationError) InvocationResult {
	return InvocationResult{
		StatusCode: http.StatusInternalServerError,
		Status:     StatusError,
		Message:    err.Message(),
	}
}

// Response encodes the result the way API Gateway and direct invokers expect:
// a status code plus a JSON string body.
func (r InvocationResult) Response() events.APIGatewayProxyResponse {
	body, _ := json.Marshal(responseBody{Status: r.Status, Message: r.Message})
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}
