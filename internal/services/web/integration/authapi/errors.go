package authapi

import (
	"errors"
	"fmt"
	"net/http"
)

// CodeEmailTaken is the error_code the registration endpoint returns when the
// submitted email already belongs to an account.
const CodeEmailTaken = "USER WITH EMAIL ALREADY EXISTS"

var (
	// ErrUnavailable marks a call that produced no response: dial failures,
	// timeouts and cancelled contexts.
	ErrUnavailable = errors.New("auth api unavailable")
	// ErrInvalidResponse marks a 2xx response whose body could not be used.
	ErrInvalidResponse = errors.New("auth api invalid response")
)

// StatusError reports a non-2xx API response.
type StatusError struct {
	Op         string
	StatusCode int
	// Code is the optional error_code from the response body.
	Code string
}

func (e *StatusError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Code)
	}
	return fmt.Sprintf("%s: status %d", e.Op, e.StatusCode)
}

// AsStatusError unwraps err into a *StatusError.
func AsStatusError(err error) (*StatusError, bool) {
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		return nil, false
	}
	return statusErr, true
}

// IsEmailTaken reports whether err is the registration conflict response.
func IsEmailTaken(err error) bool {
	statusErr, ok := AsStatusError(err)
	return ok && statusErr.StatusCode == http.StatusBadRequest && statusErr.Code == CodeEmailTaken
}

// IsUnauthorized reports whether the API rejected the supplied credentials.
func IsUnauthorized(err error) bool {
	statusErr, ok := AsStatusError(err)
	if !ok {
		return false
	}
	return statusErr.StatusCode == http.StatusBadRequest || statusErr.StatusCode == http.StatusUnauthorized
}
