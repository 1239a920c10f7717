package alipay

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/brave-intl/alipay-go/libs/cryptography"
	"github.com/google/go-querystring/query"
)

const (
	envelopeCharset = "utf-8"
	envelopeVersion = "1.0"
)

// Envelope holds the protocol parameters surrounding biz_content
type Envelope struct {
	AppID            string   `url:"app_id"`
	Method           string   `url:"method"`
	Charset          string   `url:"charset"`
	SignType         SignType `url:"sign_type"`
	Timestamp        string   `url:"timestamp"`
	Version          string   `url:"version"`
	NotifyURL        string   `url:"notify_url,omitempty"`
	ReturnURL        string   `url:"return_url,omitempty"`
	AppAuthToken     string   `url:"app_auth_token,omitempty"`
	AppCertSN        string   `url:"app_cert_sn,omitempty"`
	AlipayRootCertSN string   `url:"alipay_root_cert_sn,omitempty"`
}

// EnvelopeDecorator adds mode specific fields to an envelope before it is signed
type EnvelopeDecorator interface {
	Decorate(ctx context.Context, op Operation, env *Envelope) error
}

type envelopeOptions struct {
	notifyURL     string
	returnURL     string
	skipAuthToken bool
}

// EnvelopeOption adjusts a single envelope
type EnvelopeOption func(*envelopeOptions)

// WithNotifyURL overrides the client's notify url, only notifiable operations carry it
func WithNotifyURL(u string) EnvelopeOption {
	return func(o *envelopeOptions) {
		o.notifyURL = u
	}
}

// WithReturnURL sets the page the payer is sent back to
func WithReturnURL(u string) EnvelopeOption {
	return func(o *envelopeOptions) {
		o.returnURL = u
	}
}

// WithoutAuthToken leaves the delegated app_auth_token off the envelope
func WithoutAuthToken() EnvelopeOption {
	return func(o *envelopeOptions) {
		o.skipAuthToken = true
	}
}

// Assembler builds and signs request envelopes
type Assembler struct {
	appID      string
	signType   SignType
	signer     *cryptography.RSASigner
	notifyURL  string
	clock      func() time.Time
	location   *time.Location
	decorators []EnvelopeDecorator
}

// NewAssembler creates an assembler signing as appID
func NewAssembler(appID string, signType SignType, signer *cryptography.RSASigner, decorators ...EnvelopeDecorator) *Assembler {
	return &Assembler{
		appID:      appID,
		signType:   signType,
		signer:     signer,
		clock:      time.Now,
		location:   time.Local,
		decorators: decorators,
	}
}

// BuildParams returns the complete unsigned request parameters for op
func (a *Assembler) BuildParams(ctx context.Context, op Operation, biz Params, opts ...EnvelopeOption) (Params, error) {
	var o envelopeOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.skipAuthToken {
		op.SkipAuthToken = true
	}

	env := Envelope{
		AppID:     a.appID,
		Method:    op.Method,
		Charset:   envelopeCharset,
		SignType:  a.signType,
		Timestamp: a.clock().In(a.location).Format(TimestampLayout),
		Version:   envelopeVersion,
		ReturnURL: o.returnURL,
	}
	if op.Notifiable {
		env.NotifyURL = a.notifyURL
		if o.notifyURL != "" {
			env.NotifyURL = o.notifyURL
		}
	}

	for _, d := range a.decorators {
		if err := d.Decorate(ctx, op, &env); err != nil {
			return nil, err
		}
	}
	if op.SkipAuthToken {
		env.AppAuthToken = ""
	}

	values, err := query.Values(env)
	if err != nil {
		return nil, fmt.Errorf("failed to render envelope: %w", err)
	}

	params := ParamsFromValues(values)
	if biz == nil {
		biz = Params{}
	}
	params["biz_content"] = biz.With(nil)
	return params.Without("sign"), nil
}

// Sign canonicalizes params, minus any sign, and signs the canonical string.
// It returns the canonical pairs alongside the signature.
func (a *Assembler) Sign(params Params) (Pairs, string, error) {
	pairs, err := Canonicalize(params.Without("sign"))
	if err != nil {
		return nil, "", err
	}
	sig, err := a.signer.Sign([]byte(pairs.String()))
	if err != nil {
		return nil, "", err
	}
	return pairs, sig, nil
}

// SignedQuery builds the signed query string for op, the signature is the last pair
func (a *Assembler) SignedQuery(ctx context.Context, op Operation, biz Params, opts ...EnvelopeOption) (string, error) {
	params, err := a.BuildParams(ctx, op, biz, opts...)
	if err != nil {
		return "", err
	}
	pairs, sig, err := a.Sign(params)
	if err != nil {
		return "", err
	}
	return pairs.Encode() + "&sign=" + url.QueryEscape(sig), nil
}
