package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
)

// Error is an invocation failure carrying the status code the platform
// response should use. Errors without one map to 500.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newTimeoutError(d time.Duration) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Message: fmt.Sprintf("request timed out after %s", d),
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// errorResponse converts any failure into the error envelope returned to the
// platform. Only the status code and message cross the boundary.
func errorResponse(err error) events.APIGatewayProxyResponse {
	status := http.StatusInternalServerError
	msg := "internal server error"
	if err != nil {
		msg = err.Error()
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Status > 0 {
		status = apiErr.Status
	}

	body, _ := json.Marshal(errorBody{Error: msg})
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}
