package alipay

import (
	"bytes"
	"crypto/rsa"
	"encoding/json"
	"fmt"

	"github.com/brave-intl/alipay-go/libs/cryptography"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

const (
	// SuccessCode is the result code of a request the gateway carried out
	SuccessCode = "10000"
	// errorResponseField holds the result when the gateway rejects a request before routing it
	errorResponseField = "error_response"
)

var signatureFailures = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "alipay_signature_verification_failures_total",
		Help: "Counts gateway responses and notifications whose signature did not verify",
	},
	[]string{"field"},
)

func init() {
	prometheus.MustRegister(signatureFailures)
}

// Verifier checks gateway signatures on responses and notifications
type Verifier struct {
	signer   *cryptography.RSASigner
	signType SignType
	logger   *zerolog.Logger
}

// NewVerifier creates a verifier for the gateway's public key
func NewVerifier(publicKey *rsa.PublicKey, signType SignType, logger *zerolog.Logger) (*Verifier, error) {
	if publicKey == nil {
		return nil, configErr("alipay_public_key", fmt.Errorf("public key is required"))
	}
	if !signType.Valid() {
		return nil, configErr("sign_type", fmt.Errorf("%w: %q", ErrUnsupportedSignType, string(signType)))
	}
	signer, err := cryptography.NewRSASigner(nil, publicKey, signType.Hash())
	if err != nil {
		return nil, configErr("sign_type", err)
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Verifier{
		signer:   signer,
		signType: signType,
		logger:   logger,
	}, nil
}

// VerifiedSpan returns the signed bytes of the result object named field.
// Only a response whose signature verifies and whose code is 10000 yields bytes,
// failures are reported exactly as ParseAndVerify reports them.
func (v *Verifier) VerifiedSpan(raw []byte, field string) ([]byte, error) {
	span, _, err := v.verify(raw, field)
	return span, err
}

// ParseAndVerify verifies the response and decodes the result object named field.
// An unsigned response or a signed result with a code other than 10000 is a
// *BusinessError, a bad signature is a *ValidationError.
func (v *Verifier) ParseAndVerify(raw []byte, field string) (Params, error) {
	_, result, err := v.verify(raw, field)
	return result, err
}

func (v *Verifier) verify(raw []byte, field string) ([]byte, Params, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrMalformedResponse, err.Error())
	}
	if _, ok := envelope[field]; !ok {
		if _, ok := envelope[errorResponseField]; ok {
			field = errorResponseField
		}
	}

	rawSign, signed := envelope["sign"]
	if !signed {
		result, _ := decodeResult(envelope[field])
		return nil, nil, businessErr(result, raw)
	}

	var signature string
	if err := json.Unmarshal(rawSign, &signature); err != nil {
		return nil, nil, v.invalid(field, fmt.Errorf("%w: sign is not a string", ErrMalformedResponse))
	}

	span := SignedSpan(string(raw), field)
	if span == "" {
		return nil, nil, v.invalid(field, fmt.Errorf("%w: no signed object for %s", ErrMalformedResponse, field))
	}

	ok, err := v.signer.Verify([]byte(span), signature)
	if err != nil {
		return nil, nil, v.invalid(field, err)
	}
	if !ok {
		return nil, nil, v.invalid(field, ErrSignatureMismatch)
	}

	result, err := decodeResult([]byte(span))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrMalformedResponse, err.Error())
	}
	if code := result.GetString("code"); code != "" && code != SuccessCode {
		return nil, nil, businessErr(result, raw)
	}
	return []byte(span), result, nil
}

func (v *Verifier) invalid(field string, err error) error {
	signatureFailures.WithLabelValues(field).Inc()
	v.logger.Warn().Err(err).Str("field", field).Msg("alipay signature verification failed")
	return &ValidationError{Field: field, Err: err}
}

// decodeResult decodes a result object keeping numbers as json.Number so
// amounts and codes are not rounded through float64
func decodeResult(b []byte) (Params, error) {
	result := Params{}
	if len(b) == 0 {
		return result, nil
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&result); err != nil {
		return Params{}, err
	}
	return result, nil
}
