package cmd

import (
	"context"
	"net/http"
	"time"

	"github.com/brave-intl/alipay-go/libs/clients/alipay"
	cmdutils "github.com/brave-intl/alipay-go/libs/cmd"
	appctx "github.com/brave-intl/alipay-go/libs/context"
	"github.com/brave-intl/alipay-go/libs/logging"
	"github.com/brave-intl/alipay-go/libs/middleware"
	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi"
	chiware "github.com/go-chi/chi/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NotifyListenCmd serves the asynchronous notification endpoint
var NotifyListenCmd = &cobra.Command{
	Use:   "notify-listen",
	Short: "receive and verify asynchronous notifications from the gateway",
	Run:   Perform("notify listen", NotifyListenRun),
}

func init() {
	cmdutils.NewFlagBuilder(NotifyListenCmd).
		String("address", ":8080", "the address to listen on").
		Bind("address").
		Env("ADDR").
		Flag().Int("rate-limit-per-min", 600, "notifications accepted per minute from one address").
		Bind("rate-limit-per-min").
		Env("RATE_LIMIT_PER_MIN")
}

// NotifyRouter routes gateway notifications to fn once their signature verifies
func NotifyRouter(ctx context.Context, verifier *alipay.Verifier, fn alipay.NotificationFunc, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// id / transfer -> ip -> heartbeat -> request logger / recovery -> rate limit
	// -> instrumentation -> handler
	r.Use(chiware.RequestID)
	r.Use(middleware.RequestIDTransfer)
	r.Use(chiware.RealIP)
	r.Use(chiware.Heartbeat("/"))
	if logger != nil {
		// Also handles panic recovery
		r.Use(hlog.NewHandler(*logger))
		r.Use(hlog.UserAgentHandler("user_agent"))
		r.Use(hlog.RequestIDHandler("req_id", "Request-Id"))
		r.Use(middleware.RequestLogger(logger))
	}
	r.Use(chiware.Timeout(15 * time.Second))

	perMin, ok := ctx.Value(appctx.RateLimitPerMinuteCTXKey).(int)
	if !ok || perMin <= 0 {
		perMin = 600
	}
	r.Use(middleware.RateLimiter(ctx, perMin))

	r.Method(http.MethodPost, "/notify", middleware.InstrumentHandler("notify", alipay.NotificationHandler(verifier, fn, logger)))
	r.Get("/metrics", middleware.Metrics())
	return r
}

// logNotification acknowledges every verified notification after logging it
func logNotification(ctx context.Context, params alipay.Params) error {
	logging.FromContext(ctx).Info().
		Str("notify_type", params.GetString("notify_type")).
		Str("out_trade_no", params.GetString("out_trade_no")).
		Str("trade_no", params.GetString("trade_no")).
		Str("trade_status", params.GetString("trade_status")).
		Str("total_amount", params.GetString("total_amount")).
		Msg("notification received")
	return nil
}

// NotifyListenRun serves verified notifications until the server fails
func NotifyListenRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	logger := logging.Logger(ctx, "notify")

	verifier, err := AlipayVerifier(ctx)
	if err != nil {
		return err
	}

	ctx = context.WithValue(ctx, appctx.RateLimitPerMinuteCTXKey, viper.GetInt("rate-limit-per-min"))
	if viper.GetString("environment") == "production" {
		// allow a burst of 4
		ctx = context.WithValue(ctx, appctx.RateLimiterBurstCTXKey, 4)
	}
	r := NotifyRouter(ctx, verifier, logNotification, logger)

	addr := viper.GetString("address")
	logger.Info().Str("address", addr).Msg("starting notification listener")

	srv := http.Server{
		Addr:         addr,
		Handler:      chi.ServerBaseContext(ctx, r),
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 20 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		sentry.CaptureException(err)
		return err
	}
	return nil
}
