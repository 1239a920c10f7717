package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingKey - a signing or verification key was not configured
	ErrMissingKey = errors.New("missing key material")
	// ErrInvalidKey - key material could not be parsed
	ErrInvalidKey = errors.New("invalid key material")
	// ErrSignatureEncoding - a signature could not be decoded from base64
	ErrSignatureEncoding = errors.New("malformed signature encoding")
	// ErrFailedBodyRead - failed to read body
	ErrFailedBodyRead = errors.New("failed to read the response body")
)

// ErrorBundle is an error carrying a cause and diagnostic data for whoever
// ends up reporting it
type ErrorBundle struct {
	cause   error
	message string
	data    interface{}
}

// New creates a new error bundle
func New(cause error, message string, data interface{}) error {
	return &ErrorBundle{
		cause:   cause,
		message: message,
		data:    data,
	}
}

// Wrap wraps an error
func Wrap(cause error, message string) error {
	return New(cause, message, nil)
}

// Data from error origin
func (e ErrorBundle) Data() interface{} {
	return e.data
}

// Unwrap returns the associated cause
func (e ErrorBundle) Unwrap() error {
	return e.cause
}

// Error turns into an error
func (e ErrorBundle) Error() string {
	return e.message
}

// DataToString returns string representation of data
func (e ErrorBundle) DataToString() string {
	if e.data == nil {
		return "no error bundle data"
	}
	b, err := json.Marshal(e.data)
	if err != nil {
		return fmt.Sprintf("error retrieving error bundle data %s", err.Error())
	}
	return string(b)
}

// MultiError - collects independent errors, errors.Is and errors.As see all of them
type MultiError struct {
	Errs []error
}

// Append - append new errors to this multierror, nils are skipped
func (me *MultiError) Append(errs ...error) {
	for _, err := range errs {
		if err != nil {
			me.Errs = append(me.Errs, err)
		}
	}
}

// Count - get the number of errors contained herein
func (me *MultiError) Count() int {
	return len(me.Errs)
}

// ErrorOrNil - nil when nothing was appended, the multierror otherwise
func (me *MultiError) ErrorOrNil() error {
	if me == nil || me.Count() == 0 {
		return nil
	}
	return me
}

// Unwrap - the contained errors
func (me *MultiError) Unwrap() []error {
	return me.Errs
}

// Error - implement Error interface
func (me *MultiError) Error() string {
	msgs := make([]string, 0, len(me.Errs))
	for _, err := range me.Errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}
