package client

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrEmptyRecord is returned when a 2xx response carries no car record.
var ErrEmptyRecord = errors.New("response contained no car record")

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	// Message is the "error" field of a JSON error body, if the server sent one.
	Message string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("request failed with status code %d", e.StatusCode)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// IsNotFound reports whether err is a 404 from the car API.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}
