package middleware

import (
	"context"
	"net/http"

	appctx "github.com/brave-intl/alipay-go/libs/context"
	"github.com/brave-intl/alipay-go/libs/logging"
	"github.com/throttled/throttled"
	"github.com/throttled/throttled/store/memstore"
)

// addresses tracked by the in-memory store before the least recent is evicted
const memstoreSize = 65536

// RateLimiter limits each remote address to perMin requests a minute with a
// GCRA leaky bucket kept in memory, so limits are per instance. The burst
// allowed on top comes from RateLimiterBurstCTXKey. Limited requests are
// answered 429 with a "failure" body, which the gateway treats as a delivery
// to retry later.
func RateLimiter(ctx context.Context, perMin int) func(next http.Handler) http.Handler {
	logger := logging.Logger(ctx, "middleware.RateLimiter")

	burst, _ := ctx.Value(appctx.RateLimiterBurstCTXKey).(int)

	store, err := memstore.New(memstoreSize)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create rate limiter store")
	}
	limiter, err := throttled.NewGCRARateLimiter(store, throttled.RateQuota{
		MaxRate:  throttled.PerMin(perMin),
		MaxBurst: burst,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create rate limiter")
	}

	httpRateLimiter := throttled.HTTPRateLimiter{
		RateLimiter: limiter,
		VaryBy:      &throttled.VaryBy{RemoteAddr: true},
		DeniedHandler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Warn().Str("remote_addr", r.RemoteAddr).Msg("rate limited")
			w.Header().Set("content-type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte("failure"))
		}),
	}
	return httpRateLimiter.RateLimit
}
