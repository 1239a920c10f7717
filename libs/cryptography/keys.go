package cryptography

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"fmt"
	"strings"

	errorutils "github.com/brave-intl/alipay-go/libs/errors"
)

// keyDER returns the DER bytes and PEM type of the key material, bare base64
// bodies without armor are accepted and reported with an empty type
func keyDER(material []byte) ([]byte, string, error) {
	if block, _ := pem.Decode(material); block != nil {
		return block.Bytes, block.Type, nil
	}
	body := strings.Join(strings.Fields(string(material)), "")
	if body == "" {
		return nil, "", errorutils.ErrMissingKey
	}
	der, err := base64.StdEncoding.DecodeString(body)
	if err != nil {
		return nil, "", fmt.Errorf("%w: neither PEM nor base64: %s", errorutils.ErrInvalidKey, err.Error())
	}
	return der, "", nil
}

// ParseRSAPrivateKeyPEM parses an RSA private key in PKCS#1 ("RSA PRIVATE KEY")
// or PKCS#8 ("PRIVATE KEY") form
func ParseRSAPrivateKeyPEM(material []byte) (*rsa.PrivateKey, error) {
	der, typ, err := keyDER(material)
	if err != nil {
		return nil, err
	}

	if typ == "RSA PRIVATE KEY" || typ == "" {
		if k, err := x509.ParsePKCS1PrivateKey(der); err == nil {
			return k, nil
		} else if typ != "" {
			return nil, fmt.Errorf("%w: pkcs1 private key: %s", errorutils.ErrInvalidKey, err.Error())
		}
	}
	if typ == "PRIVATE KEY" || typ == "" {
		keyAny, err := x509.ParsePKCS8PrivateKey(der)
		if err != nil {
			return nil, fmt.Errorf("%w: pkcs8 private key: %s", errorutils.ErrInvalidKey, err.Error())
		}
		k, ok := keyAny.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%w: private key is %T, not rsa", errorutils.ErrInvalidKey, keyAny)
		}
		return k, nil
	}
	return nil, fmt.Errorf("%w: unsupported private key type %q", errorutils.ErrInvalidKey, typ)
}

// ParseRSAPublicKeyPEM parses an RSA public key in PKIX ("PUBLIC KEY") or
// PKCS#1 ("RSA PUBLIC KEY") form
func ParseRSAPublicKeyPEM(material []byte) (*rsa.PublicKey, error) {
	der, typ, err := keyDER(material)
	if err != nil {
		return nil, err
	}

	if typ == "PUBLIC KEY" || typ == "" {
		if keyAny, err := x509.ParsePKIXPublicKey(der); err == nil {
			k, ok := keyAny.(*rsa.PublicKey)
			if !ok {
				return nil, fmt.Errorf("%w: public key is %T, not rsa", errorutils.ErrInvalidKey, keyAny)
			}
			return k, nil
		} else if typ != "" {
			return nil, fmt.Errorf("%w: pkix public key: %s", errorutils.ErrInvalidKey, err.Error())
		}
	}
	if typ == "RSA PUBLIC KEY" || typ == "" {
		k, err := x509.ParsePKCS1PublicKey(der)
		if err != nil {
			return nil, fmt.Errorf("%w: pkcs1 public key: %s", errorutils.ErrInvalidKey, err.Error())
		}
		return k, nil
	}
	return nil, fmt.Errorf("%w: unsupported public key type %q", errorutils.ErrInvalidKey, typ)
}
