package clients

import (
	"errors"
	"net/http"

	errorutils "github.com/brave-intl/alipay-go/libs/errors"
)

// messages of the errors.ErrorBundle values the transport returns
const (
	// ErrProtocolError the gateway answered outside 2xx
	ErrProtocolError = "protocol error"
	// ErrUnableToEscapeURL the url could not be escaped
	ErrUnableToEscapeURL = "unable to escape url"
	// ErrInvalidHost the host was invalid
	ErrInvalidHost = "invalid host"
	// ErrMalformedRequest the request was malformed
	ErrMalformedRequest = "malformed request"
)

// HTTPState captures the state of the response to be read by lower fns in the stack
type HTTPState struct {
	Status int
	Path   string
	Body   interface{}
}

// Retryable reports whether the same request may succeed later. Requests are
// never retried automatically, callers decide.
func (s HTTPState) Retryable() bool {
	return s.Status == http.StatusTooManyRequests || s.Status >= 500
}

// NewHTTPError creates a new errors.ErrorBundle with an HTTPState wrapping the status, path and v.
func NewHTTPError(err error, path, message string, status int, v interface{}) error {
	return errorutils.New(err, message, HTTPState{
		Status: status,
		Path:   path,
		Body:   v,
	})
}

// UnwrapHTTPState digs the HTTPState out of an error created by NewHTTPError
func UnwrapHTTPState(err error) (*HTTPState, bool) {
	var eb *errorutils.ErrorBundle
	if errors.As(err, &eb) {
		if state, ok := eb.Data().(HTTPState); ok {
			return &state, true
		}
	}
	return nil, false
}
