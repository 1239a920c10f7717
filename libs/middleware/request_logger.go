package middleware

import (
	"fmt"
	"net/http"
	"regexp"
	"runtime/debug"
	"time"

	"github.com/brave-intl/alipay-go/libs/requestutils"
	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// panics mentioning an address:port are grouped together in sentry
var ipPortRE = regexp.MustCompile(`[0-9]+(?:\.[0-9]+){3}(:[0-9]+)?`)

// RequestLogger logs the completion of incoming requests and recovers from
// panics, reporting them to sentry. The logger hlog put on the request is
// preferred over base.
func RequestLogger(base *zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// scrapes would drown everything else
			if r.URL.EscapedPath() == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			logger := hlog.FromRequest(r)
			if logger.GetLevel() == zerolog.Disabled && base != nil {
				logger = base
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				if rec := recover(); rec != nil {
					logger.Error().
						Str("panic", fmt.Sprintf("%+v", rec)).
						Str("stacktrace", string(debug.Stack())).
						Msg("panic recovered")

					event := sentry.NewEvent()
					event.Message = ipPortRE.ReplaceAllString(fmt.Sprint(rec), "x.x.x.x:xxxx")
					sentry.CaptureEvent(event)

					http.Error(ww, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}

				status := ww.Status()
				levelFor(logger, status).
					Str("http_method", r.Method).
					Str("uri", r.URL.EscapedPath()).
					Str("remote_addr", r.RemoteAddr).
					Str("request_id", requestutils.GetRequestID(r.Context())).
					Int("status", status).
					Int("size", ww.BytesWritten()).
					Dur("duration", time.Since(start)).
					Msg("request complete")
			}()

			next.ServeHTTP(ww, r.WithContext(logger.WithContext(r.Context())))
		})
	}
}

// levelFor picks how loudly a response with status is logged
func levelFor(logger *zerolog.Logger, status int) *zerolog.Event {
	switch {
	case status >= 500:
		return logger.Error()
	case status >= 400:
		return logger.Warn()
	default:
		return logger.Info()
	}
}
