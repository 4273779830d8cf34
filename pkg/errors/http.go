package errors

import "net/http"

// HTTPError is a domain error already translated for the HTTP layer.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError with the given status code and client-facing message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// Common HTTP errors shared across delivery packages.
var (
	ErrBadRequest   = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrUnauthorized = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrForbidden    = NewHTTPError(http.StatusForbidden, "forbidden")
	ErrNotFound     = NewHTTPError(http.StatusNotFound, "not found")
	ErrTooManyReq   = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrInternal     = NewHTTPError(http.StatusInternalServerError, "internal server error")
)
