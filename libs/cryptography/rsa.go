package cryptography

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	// register the digests RSASigner supports
	_ "crypto/sha1"
	_ "crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	errorutils "github.com/brave-intl/alipay-go/libs/errors"
)

// ErrUnsupportedHash is returned when a signer is built around a digest other than SHA-1 or SHA-256
var ErrUnsupportedHash = errors.New("unsupported signature hash")

// RSASigner signs and verifies RSA PKCS#1 v1.5 signatures, base64 encoded.
//
// Either key may be nil: a signer without a private key can only verify and
// one without a public key can only sign. The signer is immutable and safe
// for concurrent use.
type RSASigner struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	hash       crypto.Hash
}

// NewRSASigner creates a signer for the given key pair and digest
func NewRSASigner(privateKey *rsa.PrivateKey, publicKey *rsa.PublicKey, hash crypto.Hash) (*RSASigner, error) {
	if hash != crypto.SHA1 && hash != crypto.SHA256 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedHash, hash)
	}
	return &RSASigner{
		privateKey: privateKey,
		publicKey:  publicKey,
		hash:       hash,
	}, nil
}

// Hash is the digest applied to messages before signing
func (s *RSASigner) Hash() crypto.Hash {
	return s.hash
}

// CanSign reports whether a private key is configured
func (s *RSASigner) CanSign() bool {
	return s != nil && s.privateKey != nil
}

// CanVerify reports whether a public key is configured
func (s *RSASigner) CanVerify() bool {
	return s != nil && s.publicKey != nil
}

func (s *RSASigner) digest(message []byte) []byte {
	h := s.hash.New()
	// hash.Hash writes never fail
	_, _ = h.Write(message)
	return h.Sum(nil)
}

// Sign the message, PKCS#1 v1.5 signatures are deterministic so the same
// message and key always give the same single line of base64
func (s *RSASigner) Sign(message []byte) (string, error) {
	if !s.CanSign() {
		return "", errorutils.Wrap(errorutils.ErrMissingKey, "no private key to sign with")
	}
	sig, err := rsa.SignPKCS1v15(rand.Reader, s.privateKey, s.hash, s.digest(message))
	if err != nil {
		return "", fmt.Errorf("failed to sign message: %w", err)
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

// Verify the base64 signature over message.
//
// A signature that does not match is (false, nil), only a signature that cannot
// be decoded or a missing public key are errors.
func (s *RSASigner) Verify(message []byte, signature string) (bool, error) {
	if !s.CanVerify() {
		return false, errorutils.Wrap(errorutils.ErrMissingKey, "no public key to verify with")
	}
	sig, err := DecodeSignature(signature)
	if err != nil {
		return false, err
	}
	if err := rsa.VerifyPKCS1v15(s.publicKey, s.hash, s.digest(message), sig); err != nil {
		return false, nil
	}
	return true, nil
}

// DecodeSignature decodes a base64 signature, tolerating the line wrapping and
// stripped padding some encoders produce
func DecodeSignature(signature string) ([]byte, error) {
	signature = strings.Map(func(r rune) rune {
		switch r {
		case '\r', '\n', ' ', '\t':
			return -1
		}
		return r
	}, signature)
	if signature == "" {
		return nil, fmt.Errorf("%w: empty signature", errorutils.ErrSignatureEncoding)
	}

	sig, err := base64.StdEncoding.DecodeString(signature)
	if err == nil {
		return sig, nil
	}
	sig, rawErr := base64.RawStdEncoding.DecodeString(signature)
	if rawErr == nil {
		return sig, nil
	}
	return nil, fmt.Errorf("%w: %s", errorutils.ErrSignatureEncoding, err.Error())
}
