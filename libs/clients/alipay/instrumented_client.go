package alipay

// DO NOT EDIT!
// This code is generated with http://github.com/hexdigest/gowrap tool
// using https://raw.githubusercontent.com/hexdigest/gowrap/1741ed8de90dd8c90b4939df7f3a500ac9922b1b/templates/prometheus template

//go:generate gowrap gen -p github.com/brave-intl/alipay-go/libs/clients/alipay -i Client -t https://raw.githubusercontent.com/hexdigest/gowrap/1741ed8de90dd8c90b4939df7f3a500ac9922b1b/templates/prometheus -o instrumented_client.go

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ClientWithPrometheus implements Client interface with all methods wrapped
// with Prometheus metrics
type ClientWithPrometheus struct {
	base         Client
	instanceName string
}

var clientDurationSummaryVec = promauto.NewSummaryVec(
	prometheus.SummaryOpts{
		Name:       "alipay_client_duration_seconds",
		Help:       "client runtime duration and result",
		MaxAge:     time.Minute,
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	},
	[]string{"instance_name", "method", "result"})

// NewClientWithPrometheus returns an instance of the Client decorated with prometheus summary metric
func NewClientWithPrometheus(base Client, instanceName string) ClientWithPrometheus {
	return ClientWithPrometheus{
		base:         base,
		instanceName: instanceName,
	}
}

// Execute implements Client
func (_d ClientWithPrometheus) Execute(ctx context.Context, op Operation, biz Params, opts ...EnvelopeOption) (p1 Params, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "Execute", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.Execute(ctx, op, biz, opts...)
}

// FundTransOrderQuery implements Client
func (_d ClientWithPrometheus) FundTransOrderQuery(ctx context.Context, req FundTransOrderQueryRequest) (pf1 *FundTransOrderQueryResponse, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "FundTransOrderQuery", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.FundTransOrderQuery(ctx, req)
}

// FundTransToAccountTransfer implements Client
func (_d ClientWithPrometheus) FundTransToAccountTransfer(ctx context.Context, req FundTransToAccountTransferRequest) (pf1 *FundTransToAccountTransferResponse, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "FundTransToAccountTransfer", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.FundTransToAccountTransfer(ctx, req)
}

// Gateway implements Client
func (_d ClientWithPrometheus) Gateway() (s1 string) {
	_since := time.Now()
	defer func() {
		result := "ok"
		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "Gateway", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.Gateway()
}

// OpenAppAlipayCertDownload implements Client
func (_d ClientWithPrometheus) OpenAppAlipayCertDownload(ctx context.Context, alipayCertSN string) (s1 string, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "OpenAppAlipayCertDownload", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.OpenAppAlipayCertDownload(ctx, alipayCertSN)
}

// OpenAuthTokenApp implements Client
func (_d ClientWithPrometheus) OpenAuthTokenApp(ctx context.Context, refreshToken string) (pa1 *AppAuthToken, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "OpenAuthTokenApp", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.OpenAuthTokenApp(ctx, refreshToken)
}

// OpenAuthTokenAppQuery implements Client
func (_d ClientWithPrometheus) OpenAuthTokenAppQuery(ctx context.Context) (po1 *OpenAuthTokenAppQueryResponse, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "OpenAuthTokenAppQuery", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.OpenAuthTokenAppQuery(ctx)
}

// SignedQuery implements Client
func (_d ClientWithPrometheus) SignedQuery(ctx context.Context, op Operation, biz Params, opts ...EnvelopeOption) (s1 string, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "SignedQuery", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.SignedQuery(ctx, op, biz, opts...)
}

// TradeAppPay implements Client
func (_d ClientWithPrometheus) TradeAppPay(ctx context.Context, req TradeAppPayRequest, opts ...EnvelopeOption) (s1 string, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "TradeAppPay", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.TradeAppPay(ctx, req, opts...)
}

// TradeCancel implements Client
func (_d ClientWithPrometheus) TradeCancel(ctx context.Context, req TradeCancelRequest) (pt1 *TradeCancelResponse, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "TradeCancel", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.TradeCancel(ctx, req)
}

// TradeClose implements Client
func (_d ClientWithPrometheus) TradeClose(ctx context.Context, req TradeCloseRequest) (pt1 *TradeCloseResponse, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "TradeClose", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.TradeClose(ctx, req)
}

// TradeFastpayRefundQuery implements Client
func (_d ClientWithPrometheus) TradeFastpayRefundQuery(ctx context.Context, req TradeFastpayRefundQueryRequest) (pt1 *TradeFastpayRefundQueryResponse, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "TradeFastpayRefundQuery", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.TradeFastpayRefundQuery(ctx, req)
}

// TradeOrderSettle implements Client
func (_d ClientWithPrometheus) TradeOrderSettle(ctx context.Context, req TradeOrderSettleRequest) (pt1 *TradeOrderSettleResponse, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "TradeOrderSettle", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.TradeOrderSettle(ctx, req)
}

// TradePagePay implements Client
func (_d ClientWithPrometheus) TradePagePay(ctx context.Context, req TradePagePayRequest, opts ...EnvelopeOption) (s1 string, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "TradePagePay", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.TradePagePay(ctx, req, opts...)
}

// TradePay implements Client
func (_d ClientWithPrometheus) TradePay(ctx context.Context, req TradePayRequest, opts ...EnvelopeOption) (pt1 *TradePayResponse, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "TradePay", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.TradePay(ctx, req, opts...)
}

// TradePrecreate implements Client
func (_d ClientWithPrometheus) TradePrecreate(ctx context.Context, req TradePrecreateRequest, opts ...EnvelopeOption) (pt1 *TradePrecreateResponse, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "TradePrecreate", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.TradePrecreate(ctx, req, opts...)
}

// TradeQuery implements Client
func (_d ClientWithPrometheus) TradeQuery(ctx context.Context, req TradeQueryRequest) (pt1 *TradeQueryResponse, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "TradeQuery", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.TradeQuery(ctx, req)
}

// TradeRefund implements Client
func (_d ClientWithPrometheus) TradeRefund(ctx context.Context, req TradeRefundRequest) (pt1 *TradeRefundResponse, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "TradeRefund", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.TradeRefund(ctx, req)
}

// TradeWapPay implements Client
func (_d ClientWithPrometheus) TradeWapPay(ctx context.Context, req TradeWapPayRequest, opts ...EnvelopeOption) (s1 string, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "TradeWapPay", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.TradeWapPay(ctx, req, opts...)
}

// VerifyNotification implements Client
func (_d ClientWithPrometheus) VerifyNotification(params Params, signature string) (b1 bool, err error) {
	_since := time.Now()
	defer func() {
		result := "ok"
		if err != nil {
			result = "error"
		}

		clientDurationSummaryVec.WithLabelValues(_d.instanceName, "VerifyNotification", result).Observe(time.Since(_since).Seconds())
	}()
	return _d.base.VerifyNotification(params, signature)
}
