package alipay

import (
	"context"

	"github.com/shopspring/decimal"
)

const (
	productCodePage = "FAST_INSTANT_TRADE_PAY"
	productCodeWap  = "QUICK_WAP_PAY"
	productCodeApp  = "QUICK_MSECURITY_PAY"

	// SceneBarCode - the merchant scans the buyer's bar code
	SceneBarCode = "bar_code"
	// SceneWaveCode - the merchant reads the buyer's sound wave code
	SceneWaveCode = "wave_code"
)

// amount renders money with the two decimals the gateway expects
func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// tradeReference adds out_trade_no and trade_no, at least one is required
func tradeReference(biz Params, outTradeNo, tradeNo string) (Params, error) {
	if outTradeNo == "" && tradeNo == "" {
		return nil, ErrMissingTradeReference
	}
	if outTradeNo != "" {
		biz["out_trade_no"] = outTradeNo
	}
	if tradeNo != "" {
		biz["trade_no"] = tradeNo
	}
	return biz, nil
}

// ResponseStatus is common to every gateway result
type ResponseStatus struct {
	Code    string `json:"code"`
	Msg     string `json:"msg"`
	SubCode string `json:"sub_code,omitempty"`
	SubMsg  string `json:"sub_msg,omitempty"`
}

// FundBill is one funding channel of a payment
type FundBill struct {
	FundChannel string          `json:"fund_channel"`
	Amount      decimal.Decimal `json:"amount"`
	RealAmount  decimal.Decimal `json:"real_amount,omitempty"`
}

// CheckoutRequest describes a trade paid through a redirect checkout
type CheckoutRequest struct {
	Subject     string
	OutTradeNo  string
	TotalAmount decimal.Decimal
	// Extra carries any other biz_content field, e.g. timeout_express or body
	Extra Params
}

func (r CheckoutRequest) biz(productCode string) (Params, error) {
	if r.OutTradeNo == "" {
		return nil, ErrMissingTradeReference
	}
	return Params{
		"subject":      r.Subject,
		"out_trade_no": r.OutTradeNo,
		"total_amount": amount(r.TotalAmount),
		"product_code": productCode,
	}.With(r.Extra), nil
}

// TradePagePayRequest - desktop web checkout
type TradePagePayRequest CheckoutRequest

// TradeWapPayRequest - mobile web checkout
type TradeWapPayRequest CheckoutRequest

// TradeAppPayRequest - native app checkout
type TradeAppPayRequest CheckoutRequest

func (c *HTTPClient) checkout(ctx context.Context, op Operation, req CheckoutRequest, productCode string, opts []EnvelopeOption) (string, error) {
	biz, err := req.biz(productCode)
	if err != nil {
		return "", err
	}
	return c.assembler.SignedQuery(ctx, op, biz, opts...)
}

// TradePagePay implements Client, send the payer to Gateway() + "?" + the result
func (c *HTTPClient) TradePagePay(ctx context.Context, req TradePagePayRequest, opts ...EnvelopeOption) (string, error) {
	return c.checkout(ctx, OpTradePagePay, CheckoutRequest(req), productCodePage, opts)
}

// TradeWapPay implements Client
func (c *HTTPClient) TradeWapPay(ctx context.Context, req TradeWapPayRequest, opts ...EnvelopeOption) (string, error) {
	return c.checkout(ctx, OpTradeWapPay, CheckoutRequest(req), productCodeWap, opts)
}

// TradeAppPay implements Client, the result is the order string handed to the app sdk
func (c *HTTPClient) TradeAppPay(ctx context.Context, req TradeAppPayRequest, opts ...EnvelopeOption) (string, error) {
	return c.checkout(ctx, OpTradeAppPay, CheckoutRequest(req), productCodeApp, opts)
}

// TradePayRequest - face to face payment
type TradePayRequest struct {
	OutTradeNo  string
	Scene       string
	AuthCode    string
	Subject     string
	TotalAmount decimal.Decimal
	Extra       Params
}

// TradePayResponse - alipay.trade.pay result
type TradePayResponse struct {
	ResponseStatus
	TradeNo        string          `json:"trade_no"`
	OutTradeNo     string          `json:"out_trade_no"`
	BuyerLogonID   string          `json:"buyer_logon_id"`
	BuyerUserID    string          `json:"buyer_user_id"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	ReceiptAmount  decimal.Decimal `json:"receipt_amount"`
	BuyerPayAmount decimal.Decimal `json:"buyer_pay_amount"`
	PointAmount    decimal.Decimal `json:"point_amount"`
	InvoiceAmount  decimal.Decimal `json:"invoice_amount"`
	GmtPayment     string          `json:"gmt_payment"`
	FundBillList   []FundBill      `json:"fund_bill_list"`
}

// TradePay implements Client
func (c *HTTPClient) TradePay(ctx context.Context, req TradePayRequest, opts ...EnvelopeOption) (*TradePayResponse, error) {
	if req.OutTradeNo == "" {
		return nil, ErrMissingTradeReference
	}
	if req.Scene != SceneBarCode && req.Scene != SceneWaveCode {
		return nil, ErrInvalidScene
	}
	biz := Params{
		"out_trade_no": req.OutTradeNo,
		"scene":        req.Scene,
		"auth_code":    req.AuthCode,
		"subject":      req.Subject,
	}
	if !req.TotalAmount.IsZero() {
		biz["total_amount"] = amount(req.TotalAmount)
	}
	var resp TradePayResponse
	if err := c.executeInto(ctx, OpTradePay, biz.With(req.Extra), &resp, opts...); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TradePrecreateRequest - qr code payment
type TradePrecreateRequest struct {
	Subject     string
	OutTradeNo  string
	TotalAmount decimal.Decimal
	Extra       Params
}

// TradePrecreateResponse - alipay.trade.precreate result
type TradePrecreateResponse struct {
	ResponseStatus
	OutTradeNo string `json:"out_trade_no"`
	QRCode     string `json:"qr_code"`
}

// TradePrecreate implements Client
func (c *HTTPClient) TradePrecreate(ctx context.Context, req TradePrecreateRequest, opts ...EnvelopeOption) (*TradePrecreateResponse, error) {
	if req.OutTradeNo == "" {
		return nil, ErrMissingTradeReference
	}
	biz := Params{
		"out_trade_no": req.OutTradeNo,
		"total_amount": amount(req.TotalAmount),
		"subject":      req.Subject,
	}
	var resp TradePrecreateResponse
	if err := c.executeInto(ctx, OpTradePrecreate, biz.With(req.Extra), &resp, opts...); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TradeQueryRequest - one of OutTradeNo or TradeNo is required
type TradeQueryRequest struct {
	OutTradeNo string
	TradeNo    string
}

// TradeQueryResponse - alipay.trade.query result
type TradeQueryResponse struct {
	ResponseStatus
	TradeNo        string          `json:"trade_no"`
	OutTradeNo     string          `json:"out_trade_no"`
	OpenID         string          `json:"open_id"`
	BuyerLogonID   string          `json:"buyer_logon_id"`
	BuyerUserID    string          `json:"buyer_user_id"`
	TradeStatus    string          `json:"trade_status"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	ReceiptAmount  decimal.Decimal `json:"receipt_amount"`
	BuyerPayAmount decimal.Decimal `json:"buyer_pay_amount"`
	PointAmount    decimal.Decimal `json:"point_amount"`
	InvoiceAmount  decimal.Decimal `json:"invoice_amount"`
	SendPayDate    string          `json:"send_pay_date"`
	FundBillList   []FundBill      `json:"fund_bill_list"`
}

// TradeQuery implements Client
func (c *HTTPClient) TradeQuery(ctx context.Context, req TradeQueryRequest) (*TradeQueryResponse, error) {
	biz, err := tradeReference(Params{}, req.OutTradeNo, req.TradeNo)
	if err != nil {
		return nil, err
	}
	var resp TradeQueryResponse
	if err := c.executeInto(ctx, OpTradeQuery, biz, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TradeRefundRequest - one of OutTradeNo or TradeNo is required, OutRequestNo
// identifies a partial refund
type TradeRefundRequest struct {
	OutTradeNo   string
	TradeNo      string
	RefundAmount decimal.Decimal
	RefundReason string
	OutRequestNo string
	Extra        Params
}

// TradeRefundResponse - alipay.trade.refund result
type TradeRefundResponse struct {
	ResponseStatus
	TradeNo      string          `json:"trade_no"`
	OutTradeNo   string          `json:"out_trade_no"`
	BuyerLogonID string          `json:"buyer_logon_id"`
	BuyerUserID  string          `json:"buyer_user_id"`
	FundChange   string          `json:"fund_change"`
	RefundFee    decimal.Decimal `json:"refund_fee"`
	GmtRefundPay string          `json:"gmt_refund_pay"`
}

// TradeRefund implements Client
func (c *HTTPClient) TradeRefund(ctx context.Context, req TradeRefundRequest) (*TradeRefundResponse, error) {
	biz := Params{"refund_amount": amount(req.RefundAmount)}.With(req.Extra)
	if req.RefundReason != "" {
		biz["refund_reason"] = req.RefundReason
	}
	if req.OutRequestNo != "" {
		biz["out_request_no"] = req.OutRequestNo
	}
	biz, err := tradeReference(biz, req.OutTradeNo, req.TradeNo)
	if err != nil {
		return nil, err
	}
	var resp TradeRefundResponse
	if err := c.executeInto(ctx, OpTradeRefund, biz, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TradeCancelRequest - one of OutTradeNo or TradeNo is required
type TradeCancelRequest struct {
	OutTradeNo string
	TradeNo    string
}

// TradeCancelResponse - alipay.trade.cancel result, RetryFlag Y means cancel again
type TradeCancelResponse struct {
	ResponseStatus
	TradeNo    string `json:"trade_no"`
	OutTradeNo string `json:"out_trade_no"`
	RetryFlag  string `json:"retry_flag"`
	Action     string `json:"action"`
}

// TradeCancel implements Client
func (c *HTTPClient) TradeCancel(ctx context.Context, req TradeCancelRequest) (*TradeCancelResponse, error) {
	biz, err := tradeReference(Params{}, req.OutTradeNo, req.TradeNo)
	if err != nil {
		return nil, err
	}
	var resp TradeCancelResponse
	if err := c.executeInto(ctx, OpTradeCancel, biz, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TradeCloseRequest - one of OutTradeNo or TradeNo is required
type TradeCloseRequest struct {
	OutTradeNo string
	TradeNo    string
	OperatorID string
}

// TradeCloseResponse - alipay.trade.close result
type TradeCloseResponse struct {
	ResponseStatus
	TradeNo    string `json:"trade_no"`
	OutTradeNo string `json:"out_trade_no"`
}

// TradeClose implements Client
func (c *HTTPClient) TradeClose(ctx context.Context, req TradeCloseRequest) (*TradeCloseResponse, error) {
	biz, err := tradeReference(Params{}, req.OutTradeNo, req.TradeNo)
	if err != nil {
		return nil, err
	}
	if req.OperatorID != "" {
		biz["operator_id"] = req.OperatorID
	}
	var resp TradeCloseResponse
	if err := c.executeInto(ctx, OpTradeClose, biz, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TradeFastpayRefundQueryRequest - OutRequestNo is the refund's request number,
// or the out_trade_no when the refund did not set one
type TradeFastpayRefundQueryRequest struct {
	OutRequestNo string
	OutTradeNo   string
	TradeNo      string
}

// TradeFastpayRefundQueryResponse - alipay.trade.fastpay.refund.query result
type TradeFastpayRefundQueryResponse struct {
	ResponseStatus
	TradeNo      string          `json:"trade_no"`
	OutTradeNo   string          `json:"out_trade_no"`
	OutRequestNo string          `json:"out_request_no"`
	RefundReason string          `json:"refund_reason"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	RefundAmount decimal.Decimal `json:"refund_amount"`
	RefundStatus string          `json:"refund_status"`
}

// TradeFastpayRefundQuery implements Client, trade_no wins when both references are given
func (c *HTTPClient) TradeFastpayRefundQuery(ctx context.Context, req TradeFastpayRefundQueryRequest) (*TradeFastpayRefundQueryResponse, error) {
	outTradeNo := req.OutTradeNo
	if req.TradeNo != "" {
		outTradeNo = ""
	}
	biz, err := tradeReference(Params{"out_request_no": req.OutRequestNo}, outTradeNo, req.TradeNo)
	if err != nil {
		return nil, err
	}
	var resp TradeFastpayRefundQueryResponse
	if err := c.executeInto(ctx, OpTradeFastpayRefundQuery, biz, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RoyaltyParameter is one leg of a settlement split
type RoyaltyParameter struct {
	TransOut         string          `json:"trans_out,omitempty"`
	TransIn          string          `json:"trans_in"`
	TransInType      string          `json:"trans_in_type,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	AmountPercentage int             `json:"amount_percentage,omitempty"`
	Desc             string          `json:"desc,omitempty"`
}

// TradeOrderSettleRequest - split settlement of a paid trade
type TradeOrderSettleRequest struct {
	OutRequestNo      string
	TradeNo           string
	RoyaltyParameters []RoyaltyParameter
	Extra             Params
}

// TradeOrderSettleResponse - alipay.trade.order.settle result
type TradeOrderSettleResponse struct {
	ResponseStatus
	TradeNo  string `json:"trade_no"`
	SettleNo string `json:"settle_no"`
}

// TradeOrderSettle implements Client
func (c *HTTPClient) TradeOrderSettle(ctx context.Context, req TradeOrderSettleRequest) (*TradeOrderSettleResponse, error) {
	if req.TradeNo == "" {
		return nil, ErrMissingTradeReference
	}
	biz := Params{
		"out_request_no":     req.OutRequestNo,
		"trade_no":           req.TradeNo,
		"royalty_parameters": req.RoyaltyParameters,
	}
	var resp TradeOrderSettleResponse
	if err := c.executeInto(ctx, OpTradeOrderSettle, biz.With(req.Extra), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
