package client

import (
	"errors"
	"fmt"
)

// Common errors returned by the client.
var (
	// ErrNoCookies is returned before any network call when a cookie
	// authenticated endpoint family is used without cookies.
	ErrNoCookies = errors.New("no cookies provided")

	// ErrNoAuthKey is returned before any network call when an
	// authkey authenticated endpoint family is used without one.
	ErrNoAuthKey = errors.New("no authkey provided")

	// ErrDataNotPublic is returned when the requested user record is
	// hidden by its owner.
	ErrDataNotPublic = errors.New("user's data is not public")

	// ErrRetryExhausted is returned when all retry attempts for a
	// transport failure are exhausted.
	ErrRetryExhausted = errors.New("retry attempts exhausted")

	// ErrContextCancelled is returned when the context is cancelled
	// during retry backoff.
	ErrContextCancelled = errors.New("context cancelled")
)

// ErrorClass classifies request failures for retry decisions and
// observability.
type ErrorClass string

const (
	// ErrorClassAPI is a well-formed envelope with a non-zero
	// retcode: a remote business error, never retried.
	ErrorClassAPI ErrorClass = "api"

	// ErrorClassClient is a definitive 4xx HTTP status; retrying
	// cannot change the outcome, so it is never retried.
	ErrorClassClient ErrorClass = "client"

	// ErrorClassTransport is a network, timeout, 5xx or malformed
	// envelope failure; eligible for bounded retry.
	ErrorClassTransport ErrorClass = "transport"
)

// APIError is a non-zero retcode from a well-formed response
// envelope. Code and message are the remote's values verbatim; the
// client never interprets or translates them.
type APIError struct {
	Retcode int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Retcode, e.Message)
}

// StatusError is a non-2xx HTTP status from the remote, surfaced
// before envelope decoding.
type StatusError struct {
	StatusCode int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("http status %d", e.StatusCode)
}

// classifyError maps an error to its class. Authentication errors are
// raised before any request and never reach classification.
func classifyError(err error) ErrorClass {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return ErrorClassAPI
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode >= 400 && statusErr.StatusCode < 500 {
		return ErrorClassClient
	}
	return ErrorClassTransport
}

// shouldRetry reports whether an error class is worth retrying.
// Remote business errors and 4xx statuses are final; only transport
// failures are potentially transient.
func shouldRetry(class ErrorClass) bool {
	return class == ErrorClassTransport
}
