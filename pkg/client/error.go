package client

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ResponseError is returned for any non 2xx response. Message holds the
// "error" field of the response body, when present.
type ResponseError struct {
	StatusCode int
	Message    string
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected response code %d (%s)", e.StatusCode, http.StatusText(e.StatusCode))
	}

	return fmt.Sprintf("unexpected response code %d: %s", e.StatusCode, e.Message)
}

func IsNotFound(err error) bool {
	return hasStatusCode(err, http.StatusNotFound)
}

func IsBadRequest(err error) bool {
	return hasStatusCode(err, http.StatusBadRequest)
}

func hasStatusCode(err error, statusCode int) bool {
	var resErr *ResponseError
	if errors.As(err, &resErr) {
		return resErr.StatusCode == statusCode
	}

	return false
}
