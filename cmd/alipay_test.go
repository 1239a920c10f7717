package cmd

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brave-intl/alipay-go/libs/clients/alipay"
	mock_alipay "github.com/brave-intl/alipay-go/libs/clients/alipay/mock"
	errorutils "github.com/brave-intl/alipay-go/libs/errors"
	"github.com/brave-intl/alipay-go/libs/requestutils"
	"github.com/brave-intl/alipay-go/libs/test"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	should "github.com/stretchr/testify/assert"
	must "github.com/stretchr/testify/require"
)

func TestSignRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mock_alipay.NewMockClient(ctrl)

	client.EXPECT().
		SignedQuery(gomock.Any(), gomock.Any(), test.JSONEq(`{"out_trade_no":"20150320010101001","total_amount":"88.88"}`), gomock.Any()).
		Do(func(_ context.Context, op alipay.Operation, _ alipay.Params, opts ...alipay.EnvelopeOption) {
			should.Equal(t, "alipay.trade.page.pay", op.Method)
			should.Len(t, opts, 1)
		}).
		Return("app_id=2016080300157106&sign=c2ln", nil)
	client.EXPECT().Gateway().Return(alipay.SandboxGateway)

	out, err := run(t, SignCmd, SignRun, client, map[string]string{
		"method":     "alipay.trade.page.pay",
		"biz":        `{"out_trade_no":"20150320010101001","total_amount":"88.88"}`,
		"return-url": "https://merchant.example.com/return",
	})
	must.NoError(t, err)
	should.Equal(t, alipay.SandboxGateway+"?app_id=2016080300157106&sign=c2ln\n", out)
}

func TestSignRun_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mock_alipay.NewMockClient(ctrl)

	_, err := run(t, SignCmd, SignRun, client, map[string]string{"method": "alipay.trade.unknown"})
	should.ErrorIs(t, err, alipay.ErrUnknownOperation)

	_, err = run(t, SignCmd, SignRun, client, map[string]string{
		"method": "alipay.trade.query",
		"biz":    `["not","an","object"]`,
	})
	should.Error(t, err)
}

func TestSignRun_FromConfig(t *testing.T) {
	useGatewayKeys(t)
	setViper(t, "alipay-sandbox", true)

	out, err := run(t, SignCmd, SignRun, nil, map[string]string{
		"method": "alipay.trade.page.pay",
		"biz":    `{"out_trade_no":"20150320010101001","total_amount":88.88,"subject":"test"}`,
	})
	must.NoError(t, err)

	u, err := url.Parse(strings.TrimSpace(out))
	must.NoError(t, err)
	should.Equal(t, "openapi.alipaydev.com", u.Host)
	should.Equal(t, "alipay.trade.page.pay", u.Query().Get("method"))
	should.Equal(t, "RSA2", u.Query().Get("sign_type"))
	should.Equal(t, `{"out_trade_no":"20150320010101001","subject":"test","total_amount":88.88}`, u.Query().Get("biz_content"))
	should.NotEmpty(t, u.Query().Get("sign"))
}

func TestExecuteRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mock_alipay.NewMockClient(ctrl)

	client.EXPECT().
		Execute(gomock.Any(), gomock.Any(), test.JSONEq(`{"trade_no":"2017041121001004070200183979"}`)).
		Return(alipay.Params{"code": "10000", "trade_status": "TRADE_SUCCESS"}, nil)

	out, err := run(t, ExecuteCmd, ExecuteRun, client, map[string]string{
		"method": "alipay.trade.query",
		"biz":    `{"trade_no":"2017041121001004070200183979"}`,
	})
	must.NoError(t, err)
	should.JSONEq(t, `{"code":"10000","trade_status":"TRADE_SUCCESS"}`, out)
}

func TestExecuteRun_BusinessError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mock_alipay.NewMockClient(ctrl)

	client.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &alipay.BusinessError{Code: "40004", SubCode: "ACQ.TRADE_NOT_EXIST"})

	out, err := run(t, ExecuteCmd, ExecuteRun, client, map[string]string{"method": "alipay.trade.query"})
	should.Empty(t, out)
	should.True(t, errorutils.IsErrBusinessFailure(err))

	var be *alipay.BusinessError
	must.True(t, errors.As(err, &be))
	should.Equal(t, "ACQ.TRADE_NOT_EXIST", be.SubCode)
}

func TestQueryRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mock_alipay.NewMockClient(ctrl)

	outTradeNo := test.RandomTradeNo()
	client.EXPECT().
		TradeQuery(gomock.Any(), alipay.TradeQueryRequest{OutTradeNo: outTradeNo}).
		Return(&alipay.TradeQueryResponse{
			OutTradeNo:  outTradeNo,
			TradeStatus: "TRADE_SUCCESS",
			TotalAmount: decimal.RequireFromString("88.88"),
		}, nil)

	out, err := run(t, QueryCmd, QueryRun, client, map[string]string{"out-trade-no": outTradeNo})
	must.NoError(t, err)
	should.Contains(t, out, `"trade_status": "TRADE_SUCCESS"`)
	should.Contains(t, out, outTradeNo)
}

func TestRefundRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mock_alipay.NewMockClient(ctrl)

	amount := test.RandomAmount()
	client.EXPECT().
		TradeRefund(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req alipay.TradeRefundRequest) (*alipay.TradeRefundResponse, error) {
			should.True(t, test.DecEq(amount).Matches(req.RefundAmount))
			should.Equal(t, "2017041121001004070200183979", req.TradeNo)
			should.Equal(t, "HZ01RF001", req.OutRequestNo)
			return &alipay.TradeRefundResponse{FundChange: "Y", RefundFee: amount}, nil
		})

	out, err := run(t, RefundCmd, RefundRun, client, map[string]string{
		"trade-no":       "2017041121001004070200183979",
		"amount":         amount.String(),
		"out-request-no": "HZ01RF001",
	})
	must.NoError(t, err)
	should.Contains(t, out, `"fund_change": "Y"`)
}

func TestRefundRun_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mock_alipay.NewMockClient(ctrl)

	for _, amount := range []string{"twelve", "0", "-1.00"} {
		_, err := run(t, RefundCmd, RefundRun, client, map[string]string{
			"trade-no": "2017041121001004070200183979",
			"amount":   amount,
		})
		should.Error(t, err, amount)
	}
}

func TestVerifyNotifyRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mock_alipay.NewMockClient(ctrl)

	expected := alipay.Params{
		"out_trade_no": "20150320010101001",
		"trade_status": "TRADE_SUCCESS",
		"sign_type":    "RSA2",
		"sign":         "c2lnbmF0dXJl",
	}
	client.EXPECT().VerifyNotification(expected, "c2lnbmF0dXJl").Return(true, nil)
	client.EXPECT().VerifyNotification(gomock.Any(), "Zm9yZ2Vk").Return(false, nil)

	out, err := run(t, VerifyNotifyCmd, VerifyNotifyRun, client, map[string]string{
		"query": "?out_trade_no=20150320010101001&trade_status=TRADE_SUCCESS&sign_type=RSA2&sign=c2lnbmF0dXJl",
	})
	must.NoError(t, err)
	should.Equal(t, "verified\n", out)

	_, err = run(t, VerifyNotifyCmd, VerifyNotifyRun, client, map[string]string{
		"query": "out_trade_no=20150320010101001&sign=Zm9yZ2Vk",
	})
	should.ErrorIs(t, err, ErrNotificationRejected)
}

func TestVerifyRun(t *testing.T) {
	setViper(t, "alipay-public-key-file", fixturePath("alipay_public.pem"))
	setViper(t, "alipay-sign-type", "RSA2")

	body := signedResponse(t, "alipay_trade_query_response",
		`{"code":"10000","msg":"Success","out_trade_no":"20150320010101001","total_amount":88.88}`)
	file := filepath.Join(t.TempDir(), "response.json")
	must.NoError(t, os.WriteFile(file, body, 0600))

	out, err := run(t, VerifyCmd, VerifyRun, nil, map[string]string{
		"method": "alipay.trade.query",
		"file":   file,
	})
	must.NoError(t, err)
	should.JSONEq(t, `{"code":"10000","msg":"Success","out_trade_no":"20150320010101001","total_amount":88.88}`, out)

	tampered := strings.Replace(string(body), "88.88", "8888.00", 1)
	VerifyCmd.SetIn(strings.NewReader(tampered))
	_, err = run(t, VerifyCmd, VerifyRun, nil, map[string]string{
		"field": "alipay_trade_query_response",
	})
	should.True(t, errorutils.IsErrInvalidSignature(err))
}

func TestVerifyRun_NeedsField(t *testing.T) {
	_, err := run(t, VerifyCmd, VerifyRun, nil, nil)
	should.Error(t, err)
}

func TestCertSNRun(t *testing.T) {
	out, err := run(t, CertSNCmd, CertSNRun, nil, map[string]string{
		"app-cert":  fixturePath("app_cert.pem"),
		"root-cert": fixturePath("root_chain.pem"),
	})
	must.NoError(t, err)
	should.Equal(t,
		"app_cert_sn: 73119c414e6861e7795739a89c6644b1\n"+
			"alipay_root_cert_sn: 1e90f9eeac70853dda190be5daebc607_a4ec12b9680dbd613590c070004296ae\n",
		out)

	_, err = run(t, CertSNCmd, CertSNRun, nil, map[string]string{
		"root-cert": fixturePath("ec_root.pem"),
	})
	should.ErrorIs(t, err, alipay.ErrNoRSACertificate)
}

func TestAlipayClient(t *testing.T) {
	useGatewayKeys(t)

	client, err := AlipayClient(context.Background())
	must.NoError(t, err)
	should.Equal(t, alipay.ProductionGateway, client.Gateway())

	setViper(t, "alipay-gateway", "https://gateway.example.com/gateway.do")
	client, err = AlipayClient(context.Background())
	must.NoError(t, err)
	should.Equal(t, "https://gateway.example.com/gateway.do", client.Gateway())
}

func TestAlipayClient_Misconfigured(t *testing.T) {
	useGatewayKeys(t)
	setViper(t, "alipay-app-id", "")

	_, err := AlipayClient(context.Background())
	should.True(t, errorutils.IsErrMisconfigured(err))

	setViper(t, "alipay-app-id", "2016080300157106")
	setViper(t, "alipay-sign-type", "MD5")
	_, err = AlipayClient(context.Background())
	should.ErrorIs(t, err, alipay.ErrUnsupportedSignType)

	// every problem is reported together
	setViper(t, "alipay-private-key-file", filepath.Join(t.TempDir(), "missing.pem"))
	_, err = AlipayClient(context.Background())
	should.ErrorIs(t, err, os.ErrNotExist)
	should.ErrorIs(t, err, alipay.ErrUnsupportedSignType)
	should.Contains(t, err.Error(), "missing.pem")
}

func TestAlipayVerifier_CertificateMode(t *testing.T) {
	setViper(t, "alipay-cert-file", fixturePath("alipay_cert.pem"))
	setViper(t, "alipay-sign-type", "RSA2")

	verifier, err := AlipayVerifier(context.Background())
	must.NoError(t, err)

	result, err := verifier.ParseAndVerify(signedResponse(t, "alipay_trade_query_response", `{"code":"10000"}`), "alipay_trade_query_response")
	must.NoError(t, err)
	should.Equal(t, "10000", result.GetString("code"))
}

func TestTagInvocation(t *testing.T) {
	_, err := run(t, VersionCmd, func(cmd *cobra.Command, _ []string) error { return nil }, nil, nil)
	must.NoError(t, err)
	should.NotEmpty(t, requestutils.GetRequestID(VersionCmd.Context()))
}
