package errors

import "errors"

// IsErrInvalidSignature is a helper method for determining if an error indicates there was an invalid signature
func IsErrInvalidSignature(err error) bool {
	type invalidSignature interface {
		InvalidSignature() bool
	}
	var te invalidSignature
	return errors.As(err, &te) && te.InvalidSignature()
}

// IsErrBusinessFailure is a helper method for determining if an error indicates the remote
// side processed the request and declined it
func IsErrBusinessFailure(err error) bool {
	type businessFailure interface {
		BusinessFailure() bool
	}
	var te businessFailure
	return errors.As(err, &te) && te.BusinessFailure()
}

// IsErrMisconfigured is a helper method for determining if an error indicates a client misconfiguration
func IsErrMisconfigured(err error) bool {
	type misconfigured interface {
		Misconfigured() bool
	}
	var te misconfigured
	return errors.As(err, &te) && te.Misconfigured()
}
