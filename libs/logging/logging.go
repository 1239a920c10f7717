package logging

import (
	"context"
	"io"
	"os"
	"time"

	appctx "github.com/brave-intl/alipay-go/libs/context"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
)

var (
	// counts the messages the diode writer dropped instead of blocking the caller
	droppedLogTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dropped_log_events_total",
			Help: "A counter for the number of dropped log messages",
		},
	)
	// Writer is the writer backing loggers created by SetupLogger, close it on exit
	Writer io.WriteCloser
)

func init() {
	prometheus.MustRegister(droppedLogTotal)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// writerFor picks where logs go: the writer placed in the context, a console
// for local runs, otherwise a ring buffer over stdout that drops messages
// rather than block
func writerFor(ctx context.Context) io.WriteCloser {
	if w, ok := ctx.Value(appctx.LogWriterCTXKey).(io.Writer); ok {
		return nopCloser{w}
	}
	env, err := appctx.GetStringFromContext(ctx, appctx.EnvironmentCTXKey)
	if err != nil || env == "" || env == "local" {
		return nopCloser{zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}}
	}
	return diode.NewWriter(os.Stdout, 1000, 20*time.Millisecond, func(missed int) {
		droppedLogTotal.Add(float64(missed))
	})
}

// SetupLoggerWithLevel - helper to setup a logger and associate with context with a given log level
func SetupLoggerWithLevel(ctx context.Context, level zerolog.Level) (context.Context, *zerolog.Logger) {
	ctx = context.WithValue(ctx, appctx.LogLevelCTXKey, level)
	return SetupLogger(ctx)
}

// SetupLogger - helper to setup a logger and associate with context. Debug
// logging in the context overrides the level.
func SetupLogger(ctx context.Context) (context.Context, *zerolog.Logger) {
	Writer = writerFor(ctx)

	// defaults to info level
	level, _ := appctx.GetLogLevelFromContext(ctx, appctx.LogLevelCTXKey)
	if debug, err := appctx.GetBoolFromContext(ctx, appctx.DebugLoggingCTXKey); err == nil && debug {
		level = zerolog.DebugLevel
	}

	lc := zerolog.New(Writer).With().Timestamp()
	if version, err := appctx.GetStringFromContext(ctx, appctx.VersionCTXKey); err == nil && version != "" {
		lc = lc.Str("version", version)
	}
	l := lc.Logger().Level(level)

	ctx = context.WithValue(ctx, appctx.LoggerCTXKey, &l)
	return l.WithContext(ctx), &l
}

// Logger - get a module scoped logger from the context, creating one if needed
func Logger(ctx context.Context, module string) *zerolog.Logger {
	sl := FromContext(ctx).With().Str("module", module).Logger()
	return &sl
}

// FromContext - retrieves logger from context or gets a new logger if not present
func FromContext(ctx context.Context) *zerolog.Logger {
	logger, err := appctx.GetLogger(ctx)
	if err != nil {
		_, logger = SetupLogger(ctx)
	}
	return logger
}

// LogAndError - helper to log and error
func LogAndError(logger *zerolog.Logger, msg string, err error) error {
	if logger != nil {
		logger.Error().Err(err).Msg(msg)
	}
	return err
}
