package alipay

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/brave-intl/alipay-go/libs/clients"
	"github.com/brave-intl/alipay-go/libs/cryptography"
	"github.com/rs/zerolog"
)

const (
	// ProductionGateway is the live gateway
	ProductionGateway = "https://openapi.alipay.com/gateway.do"
	// SandboxGateway is the developer sandbox gateway
	SandboxGateway = "https://openapi.alipaydev.com/gateway.do"
	// DefaultTimeout bounds a gateway round trip
	DefaultTimeout = 15 * time.Second
)

//go:generate mockgen -destination=mock/mock.go -package=mock_alipay github.com/brave-intl/alipay-go/libs/clients/alipay Client

// Client is the gateway surface
type Client interface {
	// TradePagePay returns the signed query for a desktop web checkout
	TradePagePay(ctx context.Context, req TradePagePayRequest, opts ...EnvelopeOption) (string, error)
	// TradeWapPay returns the signed query for a mobile web checkout
	TradeWapPay(ctx context.Context, req TradeWapPayRequest, opts ...EnvelopeOption) (string, error)
	// TradeAppPay returns the signed order string for a native app checkout
	TradeAppPay(ctx context.Context, req TradeAppPayRequest, opts ...EnvelopeOption) (string, error)
	// OpenAppAlipayCertDownload returns the signed query downloading a gateway certificate
	OpenAppAlipayCertDownload(ctx context.Context, alipayCertSN string) (string, error)
	// TradePay charges a scanned buyer payment code
	TradePay(ctx context.Context, req TradePayRequest, opts ...EnvelopeOption) (*TradePayResponse, error)
	// TradePrecreate creates a trade paid by scanning the returned qr code
	TradePrecreate(ctx context.Context, req TradePrecreateRequest, opts ...EnvelopeOption) (*TradePrecreateResponse, error)
	// TradeQuery fetches the state of a trade
	TradeQuery(ctx context.Context, req TradeQueryRequest) (*TradeQueryResponse, error)
	// TradeRefund refunds all or part of a trade
	TradeRefund(ctx context.Context, req TradeRefundRequest) (*TradeRefundResponse, error)
	// TradeCancel cancels a trade, reversing any payment
	TradeCancel(ctx context.Context, req TradeCancelRequest) (*TradeCancelResponse, error)
	// TradeClose closes an unpaid trade
	TradeClose(ctx context.Context, req TradeCloseRequest) (*TradeCloseResponse, error)
	// TradeFastpayRefundQuery fetches the state of a refund
	TradeFastpayRefundQuery(ctx context.Context, req TradeFastpayRefundQueryRequest) (*TradeFastpayRefundQueryResponse, error)
	// TradeOrderSettle splits a trade's settlement between accounts
	TradeOrderSettle(ctx context.Context, req TradeOrderSettleRequest) (*TradeOrderSettleResponse, error)
	// FundTransToAccountTransfer transfers funds to an alipay account
	FundTransToAccountTransfer(ctx context.Context, req FundTransToAccountTransferRequest) (*FundTransToAccountTransferResponse, error)
	// FundTransOrderQuery fetches the state of a transfer
	FundTransOrderQuery(ctx context.Context, req FundTransOrderQueryRequest) (*FundTransOrderQueryResponse, error)
	// OpenAuthTokenApp exchanges the configured auth code, or the given refresh token, for an app auth token
	OpenAuthTokenApp(ctx context.Context, refreshToken string) (*AppAuthToken, error)
	// OpenAuthTokenAppQuery describes the current app auth token
	OpenAuthTokenAppQuery(ctx context.Context) (*OpenAuthTokenAppQueryResponse, error)
	// Execute calls any registered synchronous operation and returns its verified result
	Execute(ctx context.Context, op Operation, biz Params, opts ...EnvelopeOption) (Params, error)
	// SignedQuery builds the signed query string for any operation without sending it
	SignedQuery(ctx context.Context, op Operation, biz Params, opts ...EnvelopeOption) (string, error)
	// VerifyNotification checks the signature of an asynchronous notification
	VerifyNotification(params Params, signature string) (bool, error)
	// Gateway is the gateway url signed queries are sent to
	Gateway() string
}

// Conf holds the credentials of a client, keys and certificates are PEM text
// (bare base64 key bodies are accepted too)
type Conf struct {
	AppID           string
	PrivateKey      string
	AlipayPublicKey string
	SignType        SignType
	Sandbox         bool
	NotifyURL       string
	Timeout         time.Duration

	// certificate mode, all three or none
	AppPublicCert    string
	AlipayPublicCert string
	AlipayRootCert   string
}

func (c Conf) certificateMode() bool {
	return c.AppPublicCert != "" || c.AlipayPublicCert != "" || c.AlipayRootCert != ""
}

type options struct {
	httpClient   *http.Client
	logger       *zerolog.Logger
	clock        func() time.Time
	location     *time.Location
	appAuthToken string
	appAuthCode  string
	delegated    bool
	gateway      string
}

// Option customizes a client
type Option func(*options)

// WithHTTPClient sends requests with hc instead of an instrumented default client
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// WithLogger logs with l, clients are silent by default
func WithLogger(l *zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithClock stamps envelopes with the time from clock
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithLocation renders envelope timestamps in loc, the gateway expects China Standard Time
func WithLocation(loc *time.Location) Option {
	return func(o *options) {
		o.location = loc
	}
}

// WithAppAuthToken acts on behalf of a merchant with a known app auth token
func WithAppAuthToken(token string) Option {
	return func(o *options) {
		o.delegated = true
		o.appAuthToken = token
	}
}

// WithAppAuthCode acts on behalf of a merchant, exchanging code for an app auth token on first use
func WithAppAuthCode(code string) Option {
	return func(o *options) {
		o.delegated = true
		o.appAuthCode = code
	}
}

// WithGateway sends requests to a different gateway url
func WithGateway(gateway string) Option {
	return func(o *options) {
		o.gateway = gateway
	}
}

// HTTPClient implements Client against the gateway over http
type HTTPClient struct {
	client    *clients.SimpleHTTPClient
	assembler *Assembler
	verifier  *Verifier
	auth      *AuthTokenProvider
	certs     *CertificateDecorator
	logger    *zerolog.Logger
	gateway   string
}

// New validates conf and creates a client, every problem is a *ConfigurationError
func New(conf Conf, opts ...Option) (*HTTPClient, error) {
	o := options{
		clock:    time.Now,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		nop := zerolog.Nop()
		o.logger = &nop
	}

	if conf.AppID == "" {
		return nil, configErr("app_id", fmt.Errorf("app id is required"))
	}
	if conf.SignType == "" {
		conf.SignType = SignTypeRSA2
	}
	if !conf.SignType.Valid() {
		return nil, configErr("sign_type", fmt.Errorf("%w: %q", ErrUnsupportedSignType, string(conf.SignType)))
	}
	if conf.NotifyURL != "" && !govalidator.IsURL(conf.NotifyURL) {
		return nil, configErr("notify_url", fmt.Errorf("not a url: %q", conf.NotifyURL))
	}

	gateway := ProductionGateway
	if conf.Sandbox {
		gateway = SandboxGateway
	}
	if o.gateway != "" {
		gateway = o.gateway
	}
	if !govalidator.IsRequestURL(gateway) {
		return nil, configErr("gateway", fmt.Errorf("not a url: %q", gateway))
	}

	privateKey, err := cryptography.ParseRSAPrivateKeyPEM([]byte(conf.PrivateKey))
	if err != nil {
		return nil, configErr("private_key", err)
	}

	var (
		decorators []EnvelopeDecorator
		certs      *CertificateDecorator
		publicKey  *rsa.PublicKey
	)
	if conf.certificateMode() {
		if conf.AppPublicCert == "" || conf.AlipayPublicCert == "" || conf.AlipayRootCert == "" {
			return nil, configErr("certificates", fmt.Errorf("certificate mode needs the app, alipay and root certificates"))
		}
		certs, err = NewCertificateDecorator(conf.AppPublicCert, conf.AlipayRootCert)
		if err != nil {
			return nil, err
		}
		decorators = append(decorators, certs)
	}

	if conf.certificateMode() {
		publicKey, err = PublicKeyFromCert(conf.AlipayPublicCert)
	} else {
		publicKey, err = cryptography.ParseRSAPublicKeyPEM([]byte(conf.AlipayPublicKey))
	}
	if err != nil {
		return nil, configErr("alipay_public_key", err)
	}

	var auth *AuthTokenProvider
	if o.delegated {
		auth, err = NewAuthTokenProvider(o.appAuthToken, o.appAuthCode)
		if err != nil {
			return nil, err
		}
		decorators = append(decorators, auth)
	}

	signer, err := cryptography.NewRSASigner(privateKey, nil, conf.SignType.Hash())
	if err != nil {
		return nil, configErr("sign_type", err)
	}
	assembler := NewAssembler(conf.AppID, conf.SignType, signer, decorators...)
	assembler.notifyURL = conf.NotifyURL
	if o.clock != nil {
		assembler.clock = o.clock
	}
	if o.location != nil {
		assembler.location = o.location
	}

	verifier, err := NewVerifier(publicKey, conf.SignType, o.logger)
	if err != nil {
		return nil, err
	}

	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	var transport *clients.SimpleHTTPClient
	if o.httpClient != nil {
		transport, err = clients.NewWithHTTPClient(gateway, o.httpClient)
		if err == nil {
			transport.Timeout = timeout
		}
	} else {
		transport, err = clients.NewInstrumented("alipay", gateway, timeout)
	}
	if err != nil {
		return nil, configErr("gateway", err)
	}

	c := &HTTPClient{
		client:    transport,
		assembler: assembler,
		verifier:  verifier,
		auth:      auth,
		certs:     certs,
		logger:    o.logger,
		gateway:   gateway,
	}
	if auth != nil {
		auth.exchanger = c
	}
	return c, nil
}

// Gateway implements Client
func (c *HTTPClient) Gateway() string {
	return c.gateway
}

// Verifier returns the gateway signature verifier
func (c *HTTPClient) Verifier() *Verifier {
	return c.verifier
}

// CertificateSNs returns the app certificate and root chain fingerprints in
// certificate mode, empty strings otherwise
func (c *HTTPClient) CertificateSNs() (string, string) {
	if c.certs == nil {
		return "", ""
	}
	return c.certs.AppCertSN(), c.certs.RootCertSN()
}

// SignedQuery implements Client
func (c *HTTPClient) SignedQuery(ctx context.Context, op Operation, biz Params, opts ...EnvelopeOption) (string, error) {
	return c.assembler.SignedQuery(ctx, op, biz, opts...)
}

// VerifyNotification implements Client
func (c *HTTPClient) VerifyNotification(params Params, signature string) (bool, error) {
	return c.verifier.VerifyNotification(params, signature)
}

// Execute implements Client
func (c *HTTPClient) Execute(ctx context.Context, op Operation, biz Params, opts ...EnvelopeOption) (Params, error) {
	if op.Redirect {
		return nil, fmt.Errorf("%w: %s", ErrRedirectOperation, op.Method)
	}
	raw, err := c.roundTrip(ctx, op, biz, opts...)
	if err != nil {
		return nil, err
	}
	return c.verifier.ParseAndVerify(raw, op.ResponseField())
}

// executeInto calls op and decodes its verified result into dst
func (c *HTTPClient) executeInto(ctx context.Context, op Operation, biz Params, dst interface{}, opts ...EnvelopeOption) error {
	raw, err := c.roundTrip(ctx, op, biz, opts...)
	if err != nil {
		return err
	}
	span, err := c.verifier.VerifiedSpan(raw, op.ResponseField())
	if err != nil {
		return err
	}
	if err := json.Unmarshal(span, dst); err != nil {
		return fmt.Errorf("%w: failed to decode %s: %s", ErrMalformedResponse, op.ResponseField(), err.Error())
	}
	return nil
}

// roundTrip sends the signed query for op to the gateway and returns the raw response body
func (c *HTTPClient) roundTrip(ctx context.Context, op Operation, biz Params, opts ...EnvelopeOption) ([]byte, error) {
	query, err := c.assembler.SignedQuery(ctx, op, biz, opts...)
	if err != nil {
		return nil, err
	}

	req, err := c.client.NewRequest(ctx, http.MethodGet, "", clients.RawQuery(query))
	if err != nil {
		return nil, err
	}

	c.logger.Debug().Str("method", op.Method).Msg("sending alipay request")
	body, err := c.client.Do(ctx, req)
	if err != nil {
		c.logger.Error().Err(err).Str("method", op.Method).Msg("alipay request failed")
		return nil, err
	}
	return body, nil
}

// exchangeAuthCode implements tokenExchanger
func (c *HTTPClient) exchangeAuthCode(ctx context.Context, code string) (*AppAuthToken, error) {
	return c.openAuthTokenApp(ctx, Params{
		"grant_type": "authorization_code",
		"code":       code,
	})
}

// refreshAuthToken implements tokenExchanger
func (c *HTTPClient) refreshAuthToken(ctx context.Context, refreshToken string) (*AppAuthToken, error) {
	return c.openAuthTokenApp(ctx, Params{
		"grant_type":    "refresh_token",
		"refresh_token": refreshToken,
	})
}
