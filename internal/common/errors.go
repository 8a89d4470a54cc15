// Package common defines shared constants and sentinel errors used across
// the jokecli packages. Callers should use errors.Is (or errors.As for
// *APIResponseError) to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Invocation errors.
	ErrUsage = errors.New("usage error")

	// Network-level failures (DNS, TLS, connection refused, timeouts).
	ErrTransport = errors.New("transport error")

	// Malformed or unexpected data, either from the API or from the user.
	ErrParse = errors.New("parse error")

	// Parse error variants.
	ErrMissingField    = fmt.Errorf("%w: missing field", ErrParse)
	ErrNotANumber      = fmt.Errorf("%w: not a number", ErrParse)
	ErrIndexOutOfRange = fmt.Errorf("%w: index out of range", ErrParse)
	ErrUnknownJokeType = fmt.Errorf("%w: unknown joke type", ErrParse)
)

// APIResponseError reports a response whose status was outside 200–299.
type APIResponseError struct {
	StatusCode int
	Reason     string
}

func (e *APIResponseError) Error() string {
	return fmt.Sprintf("HTTP request did not return success. The return code was %d (%s)", e.StatusCode, e.Reason)
}

// IsSuccessStatus reports whether code is in the 2xx range.
func IsSuccessStatus(code int) bool {
	return code >= 200 && code <= 299
}
