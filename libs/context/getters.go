package context

import (
	"context"

	"github.com/rs/zerolog"
)

// GetStringFromContext - given a CTXKey return the string value from the context if it exists
func GetStringFromContext(ctx context.Context, key CTXKey) (string, error) {
	v := ctx.Value(key)
	if v == nil {
		return "", ErrNotInContext
	}
	if s, ok := v.(string); ok {
		return s, nil
	}
	return "", ErrValueWrongType
}

// GetBoolFromContext - given a CTXKey return the bool value from the context if it exists
func GetBoolFromContext(ctx context.Context, key CTXKey) (bool, error) {
	v := ctx.Value(key)
	if v == nil {
		return false, ErrNotInContext
	}
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return false, ErrValueWrongType
}

// GetLogLevelFromContext - given a CTXKey return the log level from the context, defaults to info
func GetLogLevelFromContext(ctx context.Context, key CTXKey) (zerolog.Level, error) {
	v := ctx.Value(key)
	if v == nil {
		return zerolog.InfoLevel, ErrNotInContext
	}
	switch l := v.(type) {
	case zerolog.Level:
		return l, nil
	case string:
		level, err := zerolog.ParseLevel(l)
		if err != nil {
			return zerolog.InfoLevel, err
		}
		return level, nil
	}
	return zerolog.InfoLevel, ErrValueWrongType
}

// GetLogger - return the logger value from the context if it exists
func GetLogger(ctx context.Context) (*zerolog.Logger, error) {
	v := ctx.Value(LoggerCTXKey)
	if v == nil {
		return nil, ErrNotInContext
	}
	if l, ok := v.(*zerolog.Logger); ok {
		return l, nil
	}
	return nil, ErrValueWrongType
}
