package alipay

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	goldenCanonical = `app_id=2016101100660467&biz_content={"out_trade_no":"20170321001"}&charset=utf-8&method=alipay.trade.query&sign_type=RSA2&timestamp=2017-03-21 13:29:17&version=1.0`
	goldenSignature = "nIDTK+5n8bMC3/59SiQhfa6Wh0xpaoVIXw4XaWCUe2K5Hiqn5CtbEUV/6g6H3l2whieI7uJfmiFsh5CMmagd0kly10EgIVtpzCxefj8EnZBWnPzk/Sg6cuIBna5pFcAN/1JBnwQgAQ0IanxFmzpzKd6ATzPhBRwr9h7Bz4hWENIyDCCuwMf7H3+YbJORQSFpKENQXSU9x7T3rGAhLiks+WRlqsJpvBqVDp/dtz/n3OI4Tc5Yj0Oj48iKP61e2DLglc1i9STB6/5JjKFXcxw4O18I75ORKnADDvW+kL0s4VzDQ0u5/TjkocAzRkedOoKEeyZOwidrNmedJZEZwopnuw=="
	goldenQuery     = "app_id=2016101100660467&biz_content=%7B%22out_trade_no%22%3A%2220170321001%22%7D&charset=utf-8&method=alipay.trade.query&sign_type=RSA2&timestamp=2017-03-21+13%3A29%3A17&version=1.0&sign=nIDTK%2B5n8bMC3%2F59SiQhfa6Wh0xpaoVIXw4XaWCUe2K5Hiqn5CtbEUV%2F6g6H3l2whieI7uJfmiFsh5CMmagd0kly10EgIVtpzCxefj8EnZBWnPzk%2FSg6cuIBna5pFcAN%2F1JBnwQgAQ0IanxFmzpzKd6ATzPhBRwr9h7Bz4hWENIyDCCuwMf7H3%2BYbJORQSFpKENQXSU9x7T3rGAhLiks%2BWRlqsJpvBqVDp%2Fdtz%2Fn3OI4Tc5Yj0Oj48iKP61e2DLglc1i9STB6%2F5JjKFXcxw4O18I75ORKnADDvW%2BkL0s4VzDQ0u5%2FTjkocAzRkedOoKEeyZOwidrNmedJZEZwopnuw%3D%3D"

	goldenAppCertSN  = "73119c414e6861e7795739a89c6644b1"
	goldenRootCertSN = "1e90f9eeac70853dda190be5daebc607_a4ec12b9680dbd613590c070004296ae"
)

type failingDecorator struct{}

func (failingDecorator) Decorate(context.Context, Operation, *Envelope) error {
	return errors.New("decorator failed")
}

type EnvelopeTestSuite struct {
	suite.Suite
	assembler *Assembler
}

func TestEnvelopeTestSuite(t *testing.T) {
	suite.Run(t, new(EnvelopeTestSuite))
}

func (suite *EnvelopeTestSuite) SetupTest() {
	suite.assembler = suite.newAssembler()
}

func (suite *EnvelopeTestSuite) newAssembler(decorators ...EnvelopeDecorator) *Assembler {
	a := NewAssembler(testAppID, SignTypeRSA2, appSigner(suite.T(), SignTypeRSA2), decorators...)
	a.clock = fixedClock
	a.location = time.UTC
	a.notifyURL = "https://merchant.example.com/notify"
	return a
}

func (suite *EnvelopeTestSuite) TestSignedQuery_Golden() {
	actual, err := suite.assembler.SignedQuery(context.Background(), OpTradeQuery, Params{"out_trade_no": "20170321001"})
	suite.Require().NoError(err)
	suite.Assert().Equal(goldenQuery, actual)
}

func (suite *EnvelopeTestSuite) TestSign_Golden() {
	params, err := suite.assembler.BuildParams(context.Background(), OpTradeQuery, Params{"out_trade_no": "20170321001"})
	suite.Require().NoError(err)

	pairs, sig, err := suite.assembler.Sign(params)
	suite.Require().NoError(err)
	suite.Assert().Equal(goldenCanonical, pairs.String())
	suite.Assert().Equal(goldenSignature, sig)

	ok, err := appSigner(suite.T(), SignTypeRSA2).Verify([]byte(pairs.String()), sig)
	suite.Require().NoError(err)
	suite.Assert().True(ok)
}

func (suite *EnvelopeTestSuite) TestSign_ExcludesSign() {
	params, err := suite.assembler.BuildParams(context.Background(), OpTradeQuery, Params{"out_trade_no": "20170321001"})
	suite.Require().NoError(err)

	_, expected, err := suite.assembler.Sign(params)
	suite.Require().NoError(err)
	_, actual, err := suite.assembler.Sign(params.With(Params{"sign": "stale"}))
	suite.Require().NoError(err)

	suite.Assert().Equal(expected, actual)
}

func (suite *EnvelopeTestSuite) TestBuildParams_NotifyURLOnlyOnNotifiableOperations() {
	ctx := context.Background()

	query, err := suite.assembler.BuildParams(ctx, OpTradeQuery, nil)
	suite.Require().NoError(err)
	suite.Assert().NotContains(query, "notify_url")

	precreate, err := suite.assembler.BuildParams(ctx, OpTradePrecreate, nil)
	suite.Require().NoError(err)
	suite.Assert().Equal("https://merchant.example.com/notify", precreate["notify_url"])

	override, err := suite.assembler.BuildParams(ctx, OpTradePagePay, nil, WithNotifyURL("https://other.example.com/n"))
	suite.Require().NoError(err)
	suite.Assert().Equal("https://other.example.com/n", override["notify_url"])

	ignored, err := suite.assembler.BuildParams(ctx, OpTradeRefund, nil, WithNotifyURL("https://other.example.com/n"))
	suite.Require().NoError(err)
	suite.Assert().NotContains(ignored, "notify_url")
}

func (suite *EnvelopeTestSuite) TestBuildParams_ReturnURL() {
	params, err := suite.assembler.BuildParams(context.Background(), OpTradePagePay, Params{"subject": "a"},
		WithReturnURL("https://merchant.example.com/done"))
	suite.Require().NoError(err)
	suite.Assert().Equal("https://merchant.example.com/done", params["return_url"])
	suite.Assert().Equal(Params{"subject": "a"}, params["biz_content"])
}

func (suite *EnvelopeTestSuite) TestBuildParams_EmptyBizContent() {
	params, err := suite.assembler.BuildParams(context.Background(), OpTradeQuery, nil)
	suite.Require().NoError(err)

	pairs, err := Canonicalize(params)
	suite.Require().NoError(err)
	suite.Assert().Contains(pairs.String(), "biz_content={}")
}

func (suite *EnvelopeTestSuite) TestBuildParams_Decorators() {
	certs, err := NewCertificateDecorator(readFixture(suite.T(), "app_cert.pem"), readFixture(suite.T(), "root_chain.pem"))
	suite.Require().NoError(err)
	auth, err := NewAuthTokenProvider("merchant-token", "")
	suite.Require().NoError(err)

	a := suite.newAssembler(certs, auth)
	ctx := context.Background()

	params, err := a.BuildParams(ctx, OpTradeQuery, nil)
	suite.Require().NoError(err)
	suite.Assert().Equal(goldenAppCertSN, params["app_cert_sn"])
	suite.Assert().Equal(goldenRootCertSN, params["alipay_root_cert_sn"])
	suite.Assert().Equal("merchant-token", params["app_auth_token"])

	exchange, err := a.BuildParams(ctx, OpOpenAuthTokenApp, nil)
	suite.Require().NoError(err)
	suite.Assert().NotContains(exchange, "app_auth_token")
	suite.Assert().Equal(goldenAppCertSN, exchange["app_cert_sn"])

	skipped, err := a.BuildParams(ctx, OpTradeQuery, nil, WithoutAuthToken())
	suite.Require().NoError(err)
	suite.Assert().NotContains(skipped, "app_auth_token")

	query, err := a.SignedQuery(ctx, OpTradeQuery, nil)
	suite.Require().NoError(err)
	values, err := url.ParseQuery(query)
	suite.Require().NoError(err)
	suite.Assert().Equal("merchant-token", values.Get("app_auth_token"))
	suite.Assert().NotEmpty(values.Get("sign"))
}

func (suite *EnvelopeTestSuite) TestBuildParams_DecoratorError() {
	a := suite.newAssembler(failingDecorator{})
	_, err := a.SignedQuery(context.Background(), OpTradeQuery, nil)
	suite.Assert().EqualError(err, "decorator failed")
}

func (suite *EnvelopeTestSuite) TestSignedQuery_RSA() {
	a := NewAssembler(testAppID, SignTypeRSA, appSigner(suite.T(), SignTypeRSA))
	a.clock = fixedClock
	a.location = time.UTC

	query, err := a.SignedQuery(context.Background(), OpTradeQuery, Params{"out_trade_no": "20170321001"})
	suite.Require().NoError(err)

	values, err := url.ParseQuery(query)
	suite.Require().NoError(err)
	suite.Assert().Equal("RSA", values.Get("sign_type"))

	params, err := a.BuildParams(context.Background(), OpTradeQuery, Params{"out_trade_no": "20170321001"})
	suite.Require().NoError(err)
	pairs, err := Canonicalize(params)
	suite.Require().NoError(err)

	ok, err := appSigner(suite.T(), SignTypeRSA).Verify([]byte(pairs.String()), values.Get("sign"))
	suite.Require().NoError(err)
	suite.Assert().True(ok)
}
