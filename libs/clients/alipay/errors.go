package alipay

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingTradeReference - neither out_trade_no nor trade_no was given
	ErrMissingTradeReference = errors.New("one of out_trade_no or trade_no is required")
	// ErrMissingOrderReference - neither out_biz_no nor order_id was given
	ErrMissingOrderReference = errors.New("one of out_biz_no or order_id is required")
	// ErrInvalidScene - trade pay scene is not bar_code or wave_code
	ErrInvalidScene = errors.New("scene must be bar_code or wave_code")
	// ErrInvalidPayeeType - transfer payee type is not a known kind
	ErrInvalidPayeeType = errors.New("payee_type must be ALIPAY_USERID or ALIPAY_LOGONID")
	// ErrMalformedResponse - the gateway answered with something other than a response envelope
	ErrMalformedResponse = errors.New("malformed gateway response")
	// ErrSignatureMismatch - the response signature does not cover the signed span
	ErrSignatureMismatch = errors.New("response signature does not match")
	// ErrSignTypeMismatch - the declared sign_type differs from the configured one
	ErrSignTypeMismatch = errors.New("sign_type does not match the configured sign type")
	// ErrUnsupportedSignType - sign type other than RSA or RSA2
	ErrUnsupportedSignType = errors.New("unsupported sign type")
	// ErrUnknownOperation - the method is not in the operation registry
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrRedirectOperation - the operation is completed by the payer's browser or app, not by the client
	ErrRedirectOperation = errors.New("operation is not executed by the client, build a signed query instead")
	// ErrMissingAuthToken - delegated mode could not obtain an app auth token
	ErrMissingAuthToken = errors.New("app auth token unavailable")
	// ErrNoRSACertificate - a certificate chain held no RSA signed certificate
	ErrNoRSACertificate = errors.New("no rsa signed certificate in chain")
)

// ConfigurationError - the client was asked to do something its configuration cannot support
type ConfigurationError struct {
	Field string
	Err   error
}

// Error implements error
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("alipay configuration: %s: %s", e.Field, e.Err)
}

// Unwrap returns the cause
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Misconfigured marks the error for errors.IsErrMisconfigured
func (e *ConfigurationError) Misconfigured() bool {
	return true
}

func configErr(field string, err error) error {
	return &ConfigurationError{Field: field, Err: err}
}

// BusinessError - the gateway processed the request and declined it
type BusinessError struct {
	Code    string `json:"code"`
	Msg     string `json:"msg,omitempty"`
	SubCode string `json:"sub_code,omitempty"`
	SubMsg  string `json:"sub_msg,omitempty"`
	// Body is the raw gateway response, kept for diagnostics
	Body []byte `json:"-"`
}

// Error implements error
func (e *BusinessError) Error() string {
	if e.SubCode != "" {
		return strings.TrimSpace(fmt.Sprintf("alipay business error %s (%s): %s %s", e.Code, e.SubCode, e.Msg, e.SubMsg))
	}
	if e.Msg != "" {
		return fmt.Sprintf("alipay business error %s: %s", e.Code, e.Msg)
	}
	return fmt.Sprintf("alipay business error %s: %s", e.Code, string(e.Body))
}

// BusinessFailure marks the error for errors.IsErrBusinessFailure
func (e *BusinessError) BusinessFailure() bool {
	return true
}

func businessErr(result Params, raw []byte) *BusinessError {
	code := result.GetString("code")
	if code == "" {
		code = "0"
	}
	return &BusinessError{
		Code:    code,
		Msg:     result.GetString("msg"),
		SubCode: result.GetString("sub_code"),
		SubMsg:  result.GetString("sub_msg"),
		Body:    raw,
	}
}

// ValidationError - a response or notification failed signature verification,
// its content must not be trusted
type ValidationError struct {
	Field string
	Err   error
}

// Error implements error
func (e *ValidationError) Error() string {
	return fmt.Sprintf("alipay signature validation failed for %s: %s", e.Field, e.Err)
}

// Unwrap returns the cause
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// InvalidSignature marks the error for errors.IsErrInvalidSignature
func (e *ValidationError) InvalidSignature() bool {
	return true
}
