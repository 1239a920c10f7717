package alipay

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

const (
	// PayeeTypeUserID - the payee account is a 2088 prefixed user id
	PayeeTypeUserID = "ALIPAY_USERID"
	// PayeeTypeLogonID - the payee account is an email or phone number
	PayeeTypeLogonID = "ALIPAY_LOGONID"
)

// FundTransToAccountTransferRequest - single transfer to an alipay account
type FundTransToAccountTransferRequest struct {
	OutBizNo      string
	PayeeType     string
	PayeeAccount  string
	Amount        decimal.Decimal
	PayerShowName string
	PayeeRealName string
	Remark        string
	Extra         Params
}

// FundTransToAccountTransferResponse - alipay.fund.trans.toaccount.transfer result
type FundTransToAccountTransferResponse struct {
	ResponseStatus
	OutBizNo string `json:"out_biz_no"`
	OrderID  string `json:"order_id"`
	PayDate  string `json:"pay_date"`
}

// FundTransToAccountTransfer implements Client
func (c *HTTPClient) FundTransToAccountTransfer(ctx context.Context, req FundTransToAccountTransferRequest) (*FundTransToAccountTransferResponse, error) {
	if req.PayeeType != PayeeTypeUserID && req.PayeeType != PayeeTypeLogonID {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPayeeType, req.PayeeType)
	}
	biz := Params{
		"out_biz_no":    req.OutBizNo,
		"payee_type":    req.PayeeType,
		"payee_account": req.PayeeAccount,
		"amount":        amount(req.Amount),
	}
	for k, v := range map[string]string{
		"payer_show_name": req.PayerShowName,
		"payee_real_name": req.PayeeRealName,
		"remark":          req.Remark,
	} {
		if v != "" {
			biz[k] = v
		}
	}

	var resp FundTransToAccountTransferResponse
	if err := c.executeInto(ctx, OpFundTransToAccountTransfer, biz.With(req.Extra), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// FundTransOrderQueryRequest - one of OutBizNo or OrderID is required
type FundTransOrderQueryRequest struct {
	OutBizNo string
	OrderID  string
}

// FundTransOrderQueryResponse - alipay.fund.trans.order.query result
type FundTransOrderQueryResponse struct {
	ResponseStatus
	OrderID        string          `json:"order_id"`
	OutBizNo       string          `json:"out_biz_no"`
	Status         string          `json:"status"`
	PayDate        string          `json:"pay_date"`
	ArrivalTimeEnd string          `json:"arrival_time_end"`
	OrderFee       decimal.Decimal `json:"order_fee"`
	FailReason     string          `json:"fail_reason"`
	ErrorCode      string          `json:"error_code"`
}

// FundTransOrderQuery implements Client
func (c *HTTPClient) FundTransOrderQuery(ctx context.Context, req FundTransOrderQueryRequest) (*FundTransOrderQueryResponse, error) {
	if req.OutBizNo == "" && req.OrderID == "" {
		return nil, ErrMissingOrderReference
	}
	biz := Params{}
	if req.OutBizNo != "" {
		biz["out_biz_no"] = req.OutBizNo
	}
	if req.OrderID != "" {
		biz["order_id"] = req.OrderID
	}

	var resp FundTransOrderQueryResponse
	if err := c.executeInto(ctx, OpFundTransOrderQuery, biz, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
