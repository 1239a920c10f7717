package alipay

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/brave-intl/alipay-go/libs/cryptography"
	"github.com/stretchr/testify/require"
)

const testAppID = "2016101100660467"

// 2017-03-21 13:29:17 rendered in UTC
var fixedTime = time.Date(2017, 3, 21, 13, 29, 17, 0, time.UTC)

func fixedClock() time.Time {
	return fixedTime
}

func readFixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(b)
}

// appSigner signs with the application key, the way an Assembler does
func appSigner(t *testing.T, signType SignType) *cryptography.RSASigner {
	t.Helper()
	key, err := cryptography.ParseRSAPrivateKeyPEM([]byte(readFixture(t, "app_private.pem")))
	require.NoError(t, err)
	signer, err := cryptography.NewRSASigner(key, &key.PublicKey, signType.Hash())
	require.NoError(t, err)
	return signer
}

// gatewaySigner signs the way the gateway signs responses and notifications
func gatewaySigner(t *testing.T, signType SignType) *cryptography.RSASigner {
	t.Helper()
	key, err := cryptography.ParseRSAPrivateKeyPEM([]byte(readFixture(t, "alipay_private.pem")))
	require.NoError(t, err)
	signer, err := cryptography.NewRSASigner(key, nil, signType.Hash())
	require.NoError(t, err)
	return signer
}

func gatewayVerifier(t *testing.T, signType SignType) *Verifier {
	t.Helper()
	pub, err := cryptography.ParseRSAPublicKeyPEM([]byte(readFixture(t, "alipay_public.pem")))
	require.NoError(t, err)
	v, err := NewVerifier(pub, signType, nil)
	require.NoError(t, err)
	return v
}

// signedResponse renders a gateway response whose signature covers result verbatim
func signedResponse(t *testing.T, signer *cryptography.RSASigner, field, result string) []byte {
	t.Helper()
	sig, err := signer.Sign([]byte(result))
	require.NoError(t, err)
	return []byte(fmt.Sprintf(`{"%s":%s,"sign":"%s"}`, field, result, sig))
}

func testConf(t *testing.T) Conf {
	return Conf{
		AppID:           testAppID,
		PrivateKey:      readFixture(t, "app_private.pem"),
		AlipayPublicKey: readFixture(t, "alipay_public.pem"),
		SignType:        SignTypeRSA2,
	}
}
