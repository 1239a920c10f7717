package context

import "errors"

// CTXKey - a type for context keys
type CTXKey string

const (
	// EnvironmentCTXKey - the key used for service context
	EnvironmentCTXKey CTXKey = "environment"
	// DebugLoggingCTXKey - context key for debug logging
	DebugLoggingCTXKey CTXKey = "debug_logging"
	// LogLevelCTXKey - context key for application logging level
	LogLevelCTXKey CTXKey = "log_level"
	// LogWriterCTXKey - context key for the log writer
	LogWriterCTXKey CTXKey = "log_writer"
	// LoggerCTXKey - the context key for the logger
	LoggerCTXKey CTXKey = "logger"

	// VersionCTXKey - context key for version of code
	VersionCTXKey CTXKey = "version"
	// CommitCTXKey - context key for the commit of the code
	CommitCTXKey CTXKey = "commit"
	// BuildTimeCTXKey - context key for the build time of code
	BuildTimeCTXKey CTXKey = "build_time"

	// RateLimiterBurstCTXKey - context key for the burst allowed by the rate limiter
	RateLimiterBurstCTXKey CTXKey = "rate_limiter_burst"
	// RateLimitPerMinuteCTXKey - context key for requests allowed per minute from one address
	RateLimitPerMinuteCTXKey CTXKey = "rate_limit_per_minute"

	// AlipayClientCTXKey - context key for an alipay client used instead of one built from flags
	AlipayClientCTXKey CTXKey = "alipay_client"
)

var (
	// ErrNotInContext - error you get when you ask for something not in the context.
	ErrNotInContext = errors.New("failed to get value from context")
	// ErrValueWrongType - error you get when you ask for something, and it is not the type you expected
	ErrValueWrongType = errors.New("context value of wrong type")
)
