package alipay

import (
	"fmt"
	"sort"
	"strings"
)

// Operation describes a gateway method
type Operation struct {
	// Method is the gateway method name, e.g. alipay.trade.query
	Method string
	// Notifiable operations carry notify_url when one is configured
	Notifiable bool
	// SkipAuthToken operations never carry the delegated app_auth_token
	SkipAuthToken bool
	// Redirect operations are completed by the payer's browser or app with the
	// signed query, the client never sends them itself
	Redirect bool
}

// ResponseField is the name of the result object in the gateway response
func (o Operation) ResponseField() string {
	return strings.ReplaceAll(o.Method, ".", "_") + "_response"
}

var (
	// OpTradePagePay - desktop web checkout
	OpTradePagePay = Operation{Method: "alipay.trade.page.pay", Notifiable: true, Redirect: true}
	// OpTradeWapPay - mobile web checkout
	OpTradeWapPay = Operation{Method: "alipay.trade.wap.pay", Notifiable: true, Redirect: true}
	// OpTradeAppPay - native app checkout
	OpTradeAppPay = Operation{Method: "alipay.trade.app.pay", Notifiable: true, Redirect: true}
	// OpTradePay - face to face payment with a scanned buyer code
	OpTradePay = Operation{Method: "alipay.trade.pay", Notifiable: true}
	// OpTradePrecreate - face to face payment with a merchant qr code
	OpTradePrecreate = Operation{Method: "alipay.trade.precreate", Notifiable: true}
	// OpTradeQuery - trade status
	OpTradeQuery = Operation{Method: "alipay.trade.query"}
	// OpTradeRefund - refund a trade
	OpTradeRefund = Operation{Method: "alipay.trade.refund"}
	// OpTradeCancel - cancel a trade
	OpTradeCancel = Operation{Method: "alipay.trade.cancel"}
	// OpTradeClose - close an unpaid trade
	OpTradeClose = Operation{Method: "alipay.trade.close"}
	// OpTradeFastpayRefundQuery - refund status
	OpTradeFastpayRefundQuery = Operation{Method: "alipay.trade.fastpay.refund.query"}
	// OpTradeOrderSettle - split settlement of a trade
	OpTradeOrderSettle = Operation{Method: "alipay.trade.order.settle"}
	// OpFundTransToAccountTransfer - transfer to an alipay account
	OpFundTransToAccountTransfer = Operation{Method: "alipay.fund.trans.toaccount.transfer"}
	// OpFundTransOrderQuery - transfer status
	OpFundTransOrderQuery = Operation{Method: "alipay.fund.trans.order.query"}
	// OpOpenAuthTokenApp - exchange an auth code or refresh token for an app auth token
	OpOpenAuthTokenApp = Operation{Method: "alipay.open.auth.token.app", SkipAuthToken: true}
	// OpOpenAuthTokenAppQuery - app auth token details
	OpOpenAuthTokenAppQuery = Operation{Method: "alipay.open.auth.token.app.query", SkipAuthToken: true}
	// OpOpenAppAlipayCertDownload - download a gateway public key certificate
	OpOpenAppAlipayCertDownload = Operation{Method: "alipay.open.app.alipaycert.download", Redirect: true}
)

var operations = map[string]Operation{}

func init() {
	for _, op := range []Operation{
		OpTradePagePay,
		OpTradeWapPay,
		OpTradeAppPay,
		OpTradePay,
		OpTradePrecreate,
		OpTradeQuery,
		OpTradeRefund,
		OpTradeCancel,
		OpTradeClose,
		OpTradeFastpayRefundQuery,
		OpTradeOrderSettle,
		OpFundTransToAccountTransfer,
		OpFundTransOrderQuery,
		OpOpenAuthTokenApp,
		OpOpenAuthTokenAppQuery,
		OpOpenAppAlipayCertDownload,
	} {
		operations[op.Method] = op
	}
}

// LookupOperation finds a registered operation by method name
func LookupOperation(method string) (Operation, error) {
	op, ok := operations[method]
	if !ok {
		return Operation{}, fmt.Errorf("%w: %s", ErrUnknownOperation, method)
	}
	return op, nil
}

// Operations lists the registered operations ordered by method
func Operations() []Operation {
	ops := make([]Operation, 0, len(operations))
	for _, op := range operations {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool {
		return ops[i].Method < ops[j].Method
	})
	return ops
}
