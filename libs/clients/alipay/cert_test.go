package alipay

import (
	"testing"

	"github.com/brave-intl/alipay-go/libs/cryptography"
	errorutils "github.com/brave-intl/alipay-go/libs/errors"
	should "github.com/stretchr/testify/assert"
	must "github.com/stretchr/testify/require"
)

func TestCertSN(t *testing.T) {
	sn, err := CertSN(readFixture(t, "app_cert.pem"))
	must.NoError(t, err)
	should.Equal(t, goldenAppCertSN, sn)

	_, err = CertSN("not a certificate")
	should.ErrorIs(t, err, errorutils.ErrInvalidKey)

	_, err = CertSN(readFixture(t, "app_private.pem"))
	should.ErrorIs(t, err, errorutils.ErrInvalidKey)
}

func TestCertSN_MissingIssuerComponent(t *testing.T) {
	// issuer has no OU: md5("CN=Ant Financial Certification Authority Class 2 R1,OU=None,O=Ant Financial,C=CN4096")
	sn, err := CertSN(readFixture(t, "root_no_ou.pem"))
	must.NoError(t, err)
	should.Equal(t, "d718baebc6d8fa096ca8839e6b2c1610", sn)

	sn, err = RootCertSN(readFixture(t, "root_no_ou.pem"))
	must.NoError(t, err)
	should.Equal(t, "d718baebc6d8fa096ca8839e6b2c1610", sn)
}

func TestRootCertSN(t *testing.T) {
	// the chain holds an ecdsa root and an unparseable block, both are skipped
	sn, err := RootCertSN(readFixture(t, "root_chain.pem"))
	must.NoError(t, err)
	should.Equal(t, goldenRootCertSN, sn)

	_, err = RootCertSN(readFixture(t, "ec_root.pem"))
	should.ErrorIs(t, err, ErrNoRSACertificate)

	_, err = RootCertSN("")
	should.ErrorIs(t, err, ErrNoRSACertificate)
}

func TestPublicKeyFromCert(t *testing.T) {
	pub, err := PublicKeyFromCert(readFixture(t, "alipay_cert.pem"))
	must.NoError(t, err)

	expected, err := cryptography.ParseRSAPublicKeyPEM([]byte(readFixture(t, "alipay_public.pem")))
	must.NoError(t, err)
	should.True(t, expected.Equal(pub))

	_, err = PublicKeyFromCert(readFixture(t, "ec_root.pem"))
	should.ErrorIs(t, err, errorutils.ErrInvalidKey)
}

func TestNewCertificateDecorator(t *testing.T) {
	d, err := NewCertificateDecorator(readFixture(t, "app_cert.pem"), readFixture(t, "root_chain.pem"))
	must.NoError(t, err)
	should.Equal(t, goldenAppCertSN, d.AppCertSN())
	should.Equal(t, goldenRootCertSN, d.RootCertSN())

	_, err = NewCertificateDecorator("", readFixture(t, "root_chain.pem"))
	should.True(t, errorutils.IsErrMisconfigured(err))

	_, err = NewCertificateDecorator(readFixture(t, "app_cert.pem"), readFixture(t, "ec_root.pem"))
	should.True(t, errorutils.IsErrMisconfigured(err))
	should.ErrorIs(t, err, ErrNoRSACertificate)
}
