package cmd

import (
	"bytes"
	"context"
	"crypto"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/brave-intl/alipay-go/libs/clients/alipay"
	appctx "github.com/brave-intl/alipay-go/libs/context"
	"github.com/brave-intl/alipay-go/libs/cryptography"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	must "github.com/stretchr/testify/require"
)

func fixturePath(name string) string {
	return filepath.Join("..", "libs", "clients", "alipay", "testdata", name)
}

func readFixture(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(fixturePath(name))
	must.NoError(t, err)
	return string(b)
}

// gatewaySigner signs the way the gateway signs responses and notifications
func gatewaySigner(t *testing.T) *cryptography.RSASigner {
	t.Helper()
	key, err := cryptography.ParseRSAPrivateKeyPEM([]byte(readFixture(t, "alipay_private.pem")))
	must.NoError(t, err)
	signer, err := cryptography.NewRSASigner(key, nil, crypto.SHA256)
	must.NoError(t, err)
	return signer
}

func signedResponse(t *testing.T, field, result string) []byte {
	t.Helper()
	sig, err := gatewaySigner(t).Sign([]byte(result))
	must.NoError(t, err)
	return []byte(fmt.Sprintf(`{"%s":%s,"sign":"%s"}`, field, result, sig))
}

func signNotification(t *testing.T, params alipay.Params) string {
	t.Helper()
	pairs, err := alipay.Canonicalize(params.Without("sign", "sign_type"))
	must.NoError(t, err)
	sig, err := gatewaySigner(t).Sign([]byte(pairs.String()))
	must.NoError(t, err)
	return sig
}

// setViper overrides key for the duration of the test
func setViper(t *testing.T, key string, value interface{}) {
	t.Helper()
	viper.Set(key, value)
	t.Cleanup(func() {
		viper.Set(key, nil)
	})
}

// useGatewayKeys points the alipay flags at the test credentials
func useGatewayKeys(t *testing.T) {
	t.Helper()
	setViper(t, "alipay-app-id", "2016080300157106")
	setViper(t, "alipay-private-key-file", fixturePath("app_private.pem"))
	setViper(t, "alipay-public-key-file", fixturePath("alipay_public.pem"))
	setViper(t, "alipay-sign-type", "RSA2")
}

func resetFlags(command *cobra.Command) {
	command.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
}

// run invokes a command's run function with flags set and client in its
// context, returning what it printed
func run(t *testing.T, command *cobra.Command, fn func(*cobra.Command, []string) error, client alipay.Client, flags map[string]string) (string, error) {
	t.Helper()
	resetFlags(command)
	for name, value := range flags {
		must.NoError(t, command.Flags().Set(name, value))
	}
	t.Cleanup(func() {
		resetFlags(command)
		command.SetOut(nil)
		command.SetIn(nil)
	})

	ctx := context.Background()
	if client != nil {
		ctx = context.WithValue(ctx, appctx.AlipayClientCTXKey, client)
	}
	command.SetContext(ctx)
	must.NoError(t, tagInvocation(command, nil))

	var out bytes.Buffer
	command.SetOut(&out)
	err := fn(command, nil)
	return out.String(), err
}
