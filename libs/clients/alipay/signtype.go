package alipay

import (
	"crypto"
	"fmt"
	"strings"
)

// SignType selects the digest used with the RSA keys
type SignType string

const (
	// SignTypeRSA - legacy mode, SHA-1 digests
	SignTypeRSA SignType = "RSA"
	// SignTypeRSA2 - SHA-256 digests
	SignTypeRSA2 SignType = "RSA2"
)

// ParseSignType parses RSA or RSA2, case insensitive, empty means RSA2
func ParseSignType(s string) (SignType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(SignTypeRSA2):
		return SignTypeRSA2, nil
	case string(SignTypeRSA):
		return SignTypeRSA, nil
	}
	return "", configErr("sign_type", fmt.Errorf("%w: %q", ErrUnsupportedSignType, s))
}

func (st SignType) String() string {
	return string(st)
}

// Hash is the digest for the sign type
func (st SignType) Hash() crypto.Hash {
	if st == SignTypeRSA {
		return crypto.SHA1
	}
	return crypto.SHA256
}

// Valid reports whether st is one of the supported sign types
func (st SignType) Valid() bool {
	return st == SignTypeRSA || st == SignTypeRSA2
}

// MarshalText implements encoding.TextMarshaler
func (st SignType) MarshalText() ([]byte, error) {
	if !st.Valid() {
		return nil, configErr("sign_type", fmt.Errorf("%w: %q", ErrUnsupportedSignType, string(st)))
	}
	return []byte(st), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (st *SignType) UnmarshalText(text []byte) error {
	parsed, err := ParseSignType(string(text))
	if err != nil {
		return err
	}
	*st = parsed
	return nil
}
