package alipay

import (
	"context"
	"crypto/md5"
	"crypto/rsa"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"fmt"
	"strings"

	errorutils "github.com/brave-intl/alipay-go/libs/errors"
)

// signature algorithms whose certificates count towards the root chain fingerprint
var rsaSignatureAlgorithms = map[x509.SignatureAlgorithm]bool{
	x509.MD2WithRSA:    true,
	x509.MD5WithRSA:    true,
	x509.SHA1WithRSA:   true,
	x509.SHA256WithRSA: true,
	x509.SHA384WithRSA: true,
	x509.SHA512WithRSA: true,
}

func parseCertificate(certPEM string) (*x509.Certificate, error) {
	block, _ := pem.Decode([]byte(certPEM))
	if block == nil || block.Type != "CERTIFICATE" {
		return nil, fmt.Errorf("%w: no certificate block", errorutils.ErrInvalidKey)
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errorutils.ErrInvalidKey, err.Error())
	}
	return cert, nil
}

// absentComponent is how a missing issuer component is written into the
// fingerprint, the gateway's own SDKs render it as None
const absentComponent = "None"

func first(values []string) string {
	if len(values) == 0 {
		return absentComponent
	}
	return values[0]
}

// certFingerprint is md5 hex of "CN=..,OU=..,O=..,C=.." over the issuer
// followed by the decimal serial number. Components the issuer lacks are
// written as None.
func certFingerprint(cert *x509.Certificate) string {
	issuer := cert.Issuer
	cn := issuer.CommonName
	if cn == "" {
		cn = absentComponent
	}
	name := fmt.Sprintf("CN=%s,OU=%s,O=%s,C=%s",
		cn, first(issuer.OrganizationalUnit), first(issuer.Organization), first(issuer.Country))
	sum := md5.Sum([]byte(name + cert.SerialNumber.String()))
	return hex.EncodeToString(sum[:])
}

// CertSN returns the serial number fingerprint of a PEM certificate
func CertSN(certPEM string) (string, error) {
	cert, err := parseCertificate(certPEM)
	if err != nil {
		return "", err
	}
	return certFingerprint(cert), nil
}

// RootCertSN returns the fingerprints of every RSA signed certificate in a PEM
// chain joined with "_". Certificates that fail to parse are skipped.
func RootCertSN(chainPEM string) (string, error) {
	var sns []string
	rest := []byte(chainPEM)
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			continue
		}
		if rsaSignatureAlgorithms[cert.SignatureAlgorithm] {
			sns = append(sns, certFingerprint(cert))
		}
	}
	if len(sns) == 0 {
		return "", ErrNoRSACertificate
	}
	return strings.Join(sns, "_"), nil
}

// PublicKeyFromCert extracts the RSA public key of a PEM certificate
func PublicKeyFromCert(certPEM string) (*rsa.PublicKey, error) {
	cert, err := parseCertificate(certPEM)
	if err != nil {
		return nil, err
	}
	pub, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: certificate key is %T, not rsa", errorutils.ErrInvalidKey, cert.PublicKey)
	}
	return pub, nil
}

// CertificateDecorator stamps the app certificate and root chain fingerprints
// on every envelope
type CertificateDecorator struct {
	appCertSN  string
	rootCertSN string
}

// NewCertificateDecorator computes both fingerprints once
func NewCertificateDecorator(appCertPEM, rootChainPEM string) (*CertificateDecorator, error) {
	appSN, err := CertSN(appCertPEM)
	if err != nil {
		return nil, configErr("app_public_cert", err)
	}
	rootSN, err := RootCertSN(rootChainPEM)
	if err != nil {
		return nil, configErr("alipay_root_cert", err)
	}
	return &CertificateDecorator{appCertSN: appSN, rootCertSN: rootSN}, nil
}

// AppCertSN is the fingerprint of the application certificate
func (d *CertificateDecorator) AppCertSN() string {
	return d.appCertSN
}

// RootCertSN is the fingerprint of the gateway root chain
func (d *CertificateDecorator) RootCertSN() string {
	return d.rootCertSN
}

// Decorate implements EnvelopeDecorator
func (d *CertificateDecorator) Decorate(_ context.Context, _ Operation, env *Envelope) error {
	env.AppCertSN = d.appCertSN
	env.AlipayRootCertSN = d.rootCertSN
	return nil
}
