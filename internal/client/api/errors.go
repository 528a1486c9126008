package api

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError reports a transport-level failure: the backend answered
// with a non-2xx status. Message carries the backend's own message
// verbatim when the error body was parseable, else a per-operation
// fallback, so domain errors such as a favorites limit survive intact.
type StatusError struct {
	Op         string
	Message    string
	StatusCode int
}

func (e *StatusError) Error() string {
	return e.Message
}

// MalformedError reports a success status whose body lacks the
// expected data payload. It is distinct from a transport failure:
// the call reached the backend, but the reply cannot be trusted.
type MalformedError struct {
	Op string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("%s: malformed response: missing data", e.Op)
}

// IsUnauthorized reports whether err is a 401 from the backend,
// meaning the session token was rejected and local state must be
// cleared.
func IsUnauthorized(err error) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == http.StatusUnauthorized
	}
	return false
}
