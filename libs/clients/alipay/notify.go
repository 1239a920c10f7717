package alipay

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
)

const (
	notifySuccess = "success"
	notifyFailure = "failure"
)

// VerifyNotification checks the signature of an asynchronous notification or a
// return url query. A declared sign_type must match the configured one, sign
// and sign_type themselves are not part of the signed content.
func (v *Verifier) VerifyNotification(params Params, signature string) (bool, error) {
	if declared := params.GetString("sign_type"); declared != "" && declared != v.signType.String() {
		return false, configErr("sign_type", fmt.Errorf("%w: %s", ErrSignTypeMismatch, declared))
	}
	pairs, err := Canonicalize(params.Without("sign", "sign_type"))
	if err != nil {
		return false, err
	}
	ok, err := v.signer.Verify([]byte(pairs.String()), signature)
	if err != nil || !ok {
		signatureFailures.WithLabelValues("notification").Inc()
	}
	return ok, err
}

// NotificationFunc handles a verified notification, returning an error makes
// the gateway deliver it again later
type NotificationFunc func(ctx context.Context, params Params) error

// NotificationHandler serves the gateway's asynchronous notifications. The
// gateway keeps retrying until it reads "success".
func NotificationHandler(verifier *Verifier, fn NotificationFunc, logger *zerolog.Logger) http.Handler {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "text/plain; charset=utf-8")

		if err := r.ParseForm(); err != nil {
			logger.Warn().Err(err).Msg("failed to parse notification form")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(notifyFailure))
			return
		}

		// the notify url may carry its own query, only the posted form is signed
		params := ParamsFromValues(r.PostForm)
		sublog := logger.With().
			Str("notify_id", params.GetString("notify_id")).
			Str("out_trade_no", params.GetString("out_trade_no")).
			Logger()

		ok, err := verifier.VerifyNotification(params, params.GetString("sign"))
		if err != nil || !ok {
			sublog.Warn().Err(err).Msg("rejected notification with invalid signature")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(notifyFailure))
			return
		}

		if err := fn(r.Context(), params.Without("sign", "sign_type")); err != nil {
			sublog.Error().Err(err).Msg("failed to handle notification")
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(notifyFailure))
			return
		}

		sublog.Info().Str("trade_status", params.GetString("trade_status")).Msg("handled notification")
		_, _ = w.Write([]byte(notifySuccess))
	})
}
