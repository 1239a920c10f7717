package cryptography

import (
	"crypto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	errorutils "github.com/brave-intl/alipay-go/libs/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// signatures of "hello\n" produced with `openssl dgst -<hash> -sign rsa_private_pkcs1.pem | base64`
const (
	opensslSHA1Signature   = "aCKOpHwkDqthzakH4zmeyO5frMmDqvNlGVp0SuBHjiHls4/7KqcOgJKCwbnnMI8q1sVgdLYJVypJ5X0tw5YoLCU31kwOBqaP9yIy46wz3NGtMRK7InYsaE8sZ89x5cS94114szoRh/eRW1CpQnlfUQNlyEi44zoEZ2+6LqSK1OVk/Dg7w5ZzCKo7fgf/tKDGNntBQTPPVzEdXTSLr9BSSL0hmlj4qOmE2lCRQGkYqwUCUDuMrA86GomVqbW2GW6EuvPebCgOiu8rprRiXp5qN9VaAaSngcq/hjfGkMueiMEFWqzehZDPjyHgxwBm+s9XKtBIX/EukAIgC27jV9Gf3A=="
	opensslSHA256Signature = "fhpb/VvccFOuTqxeBkq4eIuACqwfnmTZ2pnYKqhTc4Aqz1ts1Okp/i4F/gc8GjhNr83WbtOnQKSJrUFFk/uqYQpiH1r3RSkMqtpewahumIQ/F7hJMgZo9YnKIORG3aLkmGR406Q61auSjtFiT+wFDuSN2AbqROL6NpLiBKfg1d0SLwZSrvz6G9e4ArnrQBQEm4UGuO+o98rXpor7h0F2W73muMxMeUOe9r3tEzaVQ2X3lzkI5SLv+VQOzXW6jBfCEUHwQFNd2MmXcbisskdu4XOUAoOAaAZCxt8s227QwcZSl8eBWGgx4sRoigcj44CB46cPmbHbjFdvc2Be3J9EOg=="
)

func readTestdata(t *testing.T, name string) []byte {
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return b
}

type RSASignerTestSuite struct {
	suite.Suite
	sha1   *RSASigner
	sha256 *RSASigner
}

func TestRSASignerTestSuite(t *testing.T) {
	suite.Run(t, new(RSASignerTestSuite))
}

func (suite *RSASignerTestSuite) SetupTest() {
	priv, err := ParseRSAPrivateKeyPEM(readTestdata(suite.T(), "rsa_private_pkcs1.pem"))
	suite.Require().NoError(err)
	pub, err := ParseRSAPublicKeyPEM(readTestdata(suite.T(), "rsa_public_pkix.pem"))
	suite.Require().NoError(err)

	suite.sha1, err = NewRSASigner(priv, pub, crypto.SHA1)
	suite.Require().NoError(err)
	suite.sha256, err = NewRSASigner(priv, pub, crypto.SHA256)
	suite.Require().NoError(err)
}

func (suite *RSASignerTestSuite) TestSign_MatchesOpenSSL() {
	sig, err := suite.sha1.Sign([]byte("hello\n"))
	suite.Require().NoError(err)
	suite.Assert().Equal(opensslSHA1Signature, sig)

	sig, err = suite.sha256.Sign([]byte("hello\n"))
	suite.Require().NoError(err)
	suite.Assert().Equal(opensslSHA256Signature, sig)
}

func (suite *RSASignerTestSuite) TestSign_Deterministic() {
	msg := []byte("app_id=2016101100660467&charset=utf-8")
	first, err := suite.sha256.Sign(msg)
	suite.Require().NoError(err)
	second, err := suite.sha256.Sign(msg)
	suite.Require().NoError(err)

	suite.Assert().Equal(first, second)
	suite.Assert().NotContains(first, "\n")
}

func (suite *RSASignerTestSuite) TestVerify_RoundTrip() {
	msg := []byte("biz_content={\"subject\":\"测试订单\"}&method=alipay.trade.page.pay")
	sig, err := suite.sha256.Sign(msg)
	suite.Require().NoError(err)

	ok, err := suite.sha256.Verify(msg, sig)
	suite.Require().NoError(err)
	suite.Assert().True(ok)
}

func (suite *RSASignerTestSuite) TestVerify_TamperedMessage() {
	ok, err := suite.sha256.Verify([]byte("hello!"), opensslSHA256Signature)
	suite.Require().NoError(err)
	suite.Assert().False(ok)
}

func (suite *RSASignerTestSuite) TestVerify_WrongAlgorithm() {
	ok, err := suite.sha1.Verify([]byte("hello\n"), opensslSHA256Signature)
	suite.Require().NoError(err)
	suite.Assert().False(ok)

	ok, err = suite.sha1.Verify([]byte("hello\n"), opensslSHA1Signature)
	suite.Require().NoError(err)
	suite.Assert().True(ok)
}

func (suite *RSASignerTestSuite) TestVerify_WrappedAndUnpadded() {
	wrapped := opensslSHA256Signature[:64] + "\r\n" + opensslSHA256Signature[64:]
	ok, err := suite.sha256.Verify([]byte("hello\n"), wrapped)
	suite.Require().NoError(err)
	suite.Assert().True(ok)

	ok, err = suite.sha256.Verify([]byte("hello\n"), strings.TrimRight(opensslSHA256Signature, "="))
	suite.Require().NoError(err)
	suite.Assert().True(ok)
}

func (suite *RSASignerTestSuite) TestVerify_BadEncoding() {
	ok, err := suite.sha256.Verify([]byte("hello\n"), "not*base64!")
	suite.Assert().False(ok)
	suite.Assert().ErrorIs(err, errorutils.ErrSignatureEncoding)

	_, err = suite.sha256.Verify([]byte("hello\n"), "")
	suite.Assert().ErrorIs(err, errorutils.ErrSignatureEncoding)
}

func (suite *RSASignerTestSuite) TestVerify_WrongKey() {
	other, err := ParseRSAPublicKeyPEM(readTestdata(suite.T(), "other_public_pkix.pem"))
	suite.Require().NoError(err)
	verifier, err := NewRSASigner(nil, other, crypto.SHA256)
	suite.Require().NoError(err)

	ok, err := verifier.Verify([]byte("hello\n"), opensslSHA256Signature)
	suite.Require().NoError(err)
	suite.Assert().False(ok)
}

func TestRSASigner_MissingKeys(t *testing.T) {
	signer, err := NewRSASigner(nil, nil, crypto.SHA256)
	require.NoError(t, err)

	_, err = signer.Sign([]byte("hello"))
	assert.ErrorIs(t, err, errorutils.ErrMissingKey)

	_, err = signer.Verify([]byte("hello"), opensslSHA256Signature)
	assert.ErrorIs(t, err, errorutils.ErrMissingKey)
}

func TestNewRSASigner_UnsupportedHash(t *testing.T) {
	_, err := NewRSASigner(nil, nil, crypto.MD5)
	assert.ErrorIs(t, err, ErrUnsupportedHash)
}
