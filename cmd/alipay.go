package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/brave-intl/alipay-go/libs/clients/alipay"
	cmdutils "github.com/brave-intl/alipay-go/libs/cmd"
	appctx "github.com/brave-intl/alipay-go/libs/context"
	"github.com/brave-intl/alipay-go/libs/cryptography"
	errorutils "github.com/brave-intl/alipay-go/libs/errors"
	"github.com/brave-intl/alipay-go/libs/logging"
	"github.com/brave-intl/alipay-go/libs/requestutils"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// chinaStandardTime is the zone the gateway reads envelope timestamps in
var chinaStandardTime = time.FixedZone("CST", 8*60*60)

var (
	// ErrNotificationRejected - the notification signature did not verify
	ErrNotificationRejected = errors.New("notification signature rejected")

	// AlipayCmd groups the gateway commands
	AlipayCmd = &cobra.Command{
		Use:               "alipay",
		Short:             "sign, send and verify alipay open platform requests",
		PersistentPreRunE: tagInvocation,
	}

	// SignCmd prints the signed query string of an operation without sending it
	SignCmd = &cobra.Command{
		Use:   "sign",
		Short: "print the signed gateway url for an operation",
		Run:   Perform("sign", SignRun),
	}

	// ExecuteCmd sends an operation and prints its verified result
	ExecuteCmd = &cobra.Command{
		Use:   "execute",
		Short: "call an operation and print its verified result",
		Run:   Perform("execute", ExecuteRun),
	}

	// VerifyCmd verifies a saved gateway response
	VerifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "verify the signature of a saved gateway response",
		Run:   Perform("verify", VerifyRun),
	}

	// VerifyNotifyCmd verifies a notification or return url query string
	VerifyNotifyCmd = &cobra.Command{
		Use:   "verify-notify",
		Short: "verify the signature of a notification or return url query",
		Run:   Perform("verify notification", VerifyNotifyRun),
	}

	// CertSNCmd prints the certificate fingerprints used in certificate mode
	CertSNCmd = &cobra.Command{
		Use:   "cert-sn",
		Short: "print the app_cert_sn and alipay_root_cert_sn of certificates",
		Run:   Perform("certificate fingerprints", CertSNRun),
	}

	// QueryCmd fetches the state of a trade
	QueryCmd = &cobra.Command{
		Use:   "query",
		Short: "query the state of a trade",
		Run:   Perform("trade query", QueryRun),
	}

	// RefundCmd refunds a trade
	RefundCmd = &cobra.Command{
		Use:   "refund",
		Short: "refund all or part of a trade",
		Run:   Perform("trade refund", RefundRun),
	}
)

func init() {
	// credentials and connection settings shared by every gateway command
	cmdutils.NewPersistentFlagBuilder(AlipayCmd).
		String("alipay-app-id", "", "the alipay application id").
		Bind("alipay-app-id").
		Env("ALIPAY_APP_ID").
		Flag().String("alipay-private-key-file", "", "the application private key (PEM)").
		Bind("alipay-private-key-file").
		Env("ALIPAY_PRIVATE_KEY_FILE").
		Flag().String("alipay-public-key-file", "", "the alipay public key (PEM)").
		Bind("alipay-public-key-file").
		Env("ALIPAY_PUBLIC_KEY_FILE").
		Flag().String("alipay-sign-type", string(alipay.SignTypeRSA2), "the sign type, RSA or RSA2").
		Bind("alipay-sign-type").
		Env("ALIPAY_SIGN_TYPE").
		Flag().Bool("alipay-sandbox", false, "use the sandbox gateway").
		Bind("alipay-sandbox").
		Env("ALIPAY_SANDBOX").
		Flag().String("alipay-gateway", "", "override the gateway url").
		Bind("alipay-gateway").
		Env("ALIPAY_GATEWAY").
		Flag().String("alipay-notify-url", "", "the default notification url").
		Bind("alipay-notify-url").
		Env("ALIPAY_NOTIFY_URL").
		Flag().Duration("alipay-timeout", alipay.DefaultTimeout, "the gateway round trip timeout").
		Bind("alipay-timeout").
		Env("ALIPAY_TIMEOUT").
		Flag().String("alipay-app-auth-token", "", "act on behalf of a merchant with this app auth token").
		Bind("alipay-app-auth-token").
		Env("ALIPAY_APP_AUTH_TOKEN").
		Flag().String("alipay-app-auth-code", "", "act on behalf of a merchant, exchanging this code for a token").
		Bind("alipay-app-auth-code").
		Env("ALIPAY_APP_AUTH_CODE").
		Flag().String("alipay-app-cert-file", "", "the application public certificate, enables certificate mode").
		Bind("alipay-app-cert-file").
		Env("ALIPAY_APP_CERT_FILE").
		Flag().String("alipay-cert-file", "", "the alipay public certificate").
		Bind("alipay-cert-file").
		Env("ALIPAY_CERT_FILE").
		Flag().String("alipay-root-cert-file", "", "the alipay root certificate chain").
		Bind("alipay-root-cert-file").
		Env("ALIPAY_ROOT_CERT_FILE")

	SignCmd.Flags().String("method", "", "the gateway method, e.g. alipay.trade.page.pay")
	SignCmd.Flags().String("biz", "{}", "the business parameters as a json object")
	SignCmd.Flags().String("notify-url", "", "the notification url for this request")
	SignCmd.Flags().String("return-url", "", "the return url for this request")
	cmdutils.Must(SignCmd.MarkFlagRequired("method"))

	ExecuteCmd.Flags().String("method", "", "the gateway method, e.g. alipay.trade.query")
	ExecuteCmd.Flags().String("biz", "{}", "the business parameters as a json object")
	cmdutils.Must(ExecuteCmd.MarkFlagRequired("method"))

	VerifyCmd.Flags().String("method", "", "the gateway method the response belongs to")
	VerifyCmd.Flags().String("field", "", "the response field, derived from --method when empty")
	VerifyCmd.Flags().String("file", "-", "the saved response body, - reads stdin")

	VerifyNotifyCmd.Flags().String("query", "", "the notification form or return url query string")
	cmdutils.Must(VerifyNotifyCmd.MarkFlagRequired("query"))

	CertSNCmd.Flags().String("app-cert", "", "the application public certificate")
	CertSNCmd.Flags().String("root-cert", "", "the alipay root certificate chain")

	QueryCmd.Flags().String("out-trade-no", "", "the merchant order number")
	QueryCmd.Flags().String("trade-no", "", "the alipay trade number")

	RefundCmd.Flags().String("out-trade-no", "", "the merchant order number")
	RefundCmd.Flags().String("trade-no", "", "the alipay trade number")
	RefundCmd.Flags().String("amount", "", "the amount to refund")
	RefundCmd.Flags().String("reason", "", "the refund reason")
	RefundCmd.Flags().String("out-request-no", "", "identifies a partial refund")
	cmdutils.Must(RefundCmd.MarkFlagRequired("amount"))

	AlipayCmd.AddCommand(
		SignCmd,
		ExecuteCmd,
		VerifyCmd,
		VerifyNotifyCmd,
		CertSNCmd,
		QueryCmd,
		RefundCmd,
		NotifyListenCmd,
	)
	RootCmd.AddCommand(AlipayCmd)
}

// tagInvocation gives each invocation a request id its log lines carry
func tagInvocation(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	id := requestutils.NewRequestID()
	ctx = requestutils.WithRequestID(ctx, id)

	logger := logging.Logger(ctx, "alipay").With().Str("req_id", id).Logger()
	ctx = context.WithValue(logger.WithContext(ctx), appctx.LoggerCTXKey, &logger)
	cmd.SetContext(ctx)
	return nil
}

func readFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(b), nil
}

// confFromViper loads the client credentials named by the alipay flags,
// reporting every unreadable file at once
func confFromViper() (alipay.Conf, error) {
	var merr errorutils.MultiError

	signType, err := alipay.ParseSignType(viper.GetString("alipay-sign-type"))
	merr.Append(err)

	conf := alipay.Conf{
		AppID:     viper.GetString("alipay-app-id"),
		SignType:  signType,
		Sandbox:   viper.GetBool("alipay-sandbox"),
		NotifyURL: viper.GetString("alipay-notify-url"),
		Timeout:   viper.GetDuration("alipay-timeout"),
	}

	files := []struct {
		key string
		dst *string
	}{
		{"alipay-private-key-file", &conf.PrivateKey},
		{"alipay-public-key-file", &conf.AlipayPublicKey},
		{"alipay-app-cert-file", &conf.AppPublicCert},
		{"alipay-cert-file", &conf.AlipayPublicCert},
		{"alipay-root-cert-file", &conf.AlipayRootCert},
	}
	for _, f := range files {
		*f.dst, err = readFile(viper.GetString(f.key))
		merr.Append(err)
	}
	if err := merr.ErrorOrNil(); err != nil {
		return alipay.Conf{}, err
	}
	return conf, nil
}

// AlipayClient returns the client stored in ctx, or builds an instrumented
// one from the alipay flags
func AlipayClient(ctx context.Context) (alipay.Client, error) {
	if client, ok := ctx.Value(appctx.AlipayClientCTXKey).(alipay.Client); ok {
		return client, nil
	}

	conf, err := confFromViper()
	if err != nil {
		return nil, err
	}

	opts := []alipay.Option{
		alipay.WithLogger(logging.Logger(ctx, "alipay.client")),
		alipay.WithLocation(chinaStandardTime),
	}
	if gateway := viper.GetString("alipay-gateway"); gateway != "" {
		opts = append(opts, alipay.WithGateway(gateway))
	}
	if token := viper.GetString("alipay-app-auth-token"); token != "" {
		opts = append(opts, alipay.WithAppAuthToken(token))
	}
	if code := viper.GetString("alipay-app-auth-code"); code != "" {
		opts = append(opts, alipay.WithAppAuthCode(code))
	}

	client, err := alipay.New(conf, opts...)
	if err != nil {
		return nil, logging.LogAndError(logging.FromContext(ctx), "failed to configure alipay client", err)
	}
	return alipay.NewClientWithPrometheus(client, "cli"), nil
}

// AlipayVerifier builds the gateway signature verifier named by the alipay
// flags, it needs no application credentials
func AlipayVerifier(ctx context.Context) (*alipay.Verifier, error) {
	conf, err := confFromViper()
	if err != nil {
		return nil, err
	}
	if conf.AlipayPublicCert != "" {
		key, err := alipay.PublicKeyFromCert(conf.AlipayPublicCert)
		if err != nil {
			return nil, err
		}
		return alipay.NewVerifier(key, conf.SignType, logging.Logger(ctx, "alipay.verifier"))
	}
	key, err := cryptography.ParseRSAPublicKeyPEM([]byte(conf.AlipayPublicKey))
	if err != nil {
		return nil, err
	}
	return alipay.NewVerifier(key, conf.SignType, logging.Logger(ctx, "alipay.verifier"))
}

// parseBiz decodes a json object of business parameters, numbers keep their text
func parseBiz(raw string) (alipay.Params, error) {
	if strings.TrimSpace(raw) == "" {
		return alipay.Params{}, nil
	}
	d := json.NewDecoder(strings.NewReader(raw))
	d.UseNumber()
	var biz alipay.Params
	if err := d.Decode(&biz); err != nil {
		return nil, fmt.Errorf("biz must be a json object: %w", err)
	}
	if biz == nil {
		biz = alipay.Params{}
	}
	return biz, nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	e := json.NewEncoder(cmd.OutOrStdout())
	e.SetEscapeHTML(false)
	e.SetIndent("", "  ")
	return e.Encode(v)
}

// SignRun prints the gateway url carrying the signed query of an operation
func SignRun(cmd *cobra.Command, args []string) error {
	method, _ := cmd.Flags().GetString("method")
	rawBiz, _ := cmd.Flags().GetString("biz")
	notifyURL, _ := cmd.Flags().GetString("notify-url")
	returnURL, _ := cmd.Flags().GetString("return-url")

	op, err := alipay.LookupOperation(method)
	if err != nil {
		return err
	}
	biz, err := parseBiz(rawBiz)
	if err != nil {
		return err
	}

	var opts []alipay.EnvelopeOption
	if notifyURL != "" {
		opts = append(opts, alipay.WithNotifyURL(notifyURL))
	}
	if returnURL != "" {
		opts = append(opts, alipay.WithReturnURL(returnURL))
	}

	client, err := AlipayClient(cmd.Context())
	if err != nil {
		return err
	}
	query, err := client.SignedQuery(cmd.Context(), op, biz, opts...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s?%s\n", client.Gateway(), query)
	return err
}

// ExecuteRun calls an operation and prints its verified result
func ExecuteRun(cmd *cobra.Command, args []string) error {
	method, _ := cmd.Flags().GetString("method")
	rawBiz, _ := cmd.Flags().GetString("biz")

	op, err := alipay.LookupOperation(method)
	if err != nil {
		return err
	}
	biz, err := parseBiz(rawBiz)
	if err != nil {
		return err
	}

	client, err := AlipayClient(cmd.Context())
	if err != nil {
		return err
	}
	result, err := client.Execute(cmd.Context(), op, biz)
	if err != nil {
		return err
	}
	return printJSON(cmd, result)
}

// VerifyRun verifies a saved gateway response and prints its result
func VerifyRun(cmd *cobra.Command, args []string) error {
	method, _ := cmd.Flags().GetString("method")
	field, _ := cmd.Flags().GetString("field")
	file, _ := cmd.Flags().GetString("file")

	if field == "" {
		if method == "" {
			return errors.New("one of --field or --method is required")
		}
		op, err := alipay.LookupOperation(method)
		if err != nil {
			return err
		}
		field = op.ResponseField()
	}

	var (
		raw []byte
		err error
	)
	if file == "-" {
		raw, err = io.ReadAll(cmd.InOrStdin())
	} else {
		raw, err = os.ReadFile(file)
	}
	if err != nil {
		return err
	}

	verifier, err := AlipayVerifier(cmd.Context())
	if err != nil {
		return err
	}
	result, err := verifier.ParseAndVerify(raw, field)
	if err != nil {
		return err
	}
	return printJSON(cmd, result)
}

// VerifyNotifyRun verifies the signature of a notification form or return url query
func VerifyNotifyRun(cmd *cobra.Command, args []string) error {
	rawQuery, _ := cmd.Flags().GetString("query")

	values, err := url.ParseQuery(strings.TrimPrefix(rawQuery, "?"))
	if err != nil {
		return err
	}
	params := alipay.ParamsFromValues(values)

	client, err := AlipayClient(cmd.Context())
	if err != nil {
		return err
	}
	ok, err := client.VerifyNotification(params, params.GetString("sign"))
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotificationRejected
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), "verified")
	return err
}

// CertSNRun prints the fingerprints certificate mode sends with each request
func CertSNRun(cmd *cobra.Command, args []string) error {
	appCertFile, _ := cmd.Flags().GetString("app-cert")
	rootCertFile, _ := cmd.Flags().GetString("root-cert")
	if appCertFile == "" {
		appCertFile = viper.GetString("alipay-app-cert-file")
	}
	if rootCertFile == "" {
		rootCertFile = viper.GetString("alipay-root-cert-file")
	}
	if appCertFile == "" && rootCertFile == "" {
		return errors.New("one of --app-cert or --root-cert is required")
	}

	out := cmd.OutOrStdout()
	if appCertFile != "" {
		appCert, err := readFile(appCertFile)
		if err != nil {
			return err
		}
		sn, err := alipay.CertSN(appCert)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "app_cert_sn: %s\n", sn)
	}
	if rootCertFile != "" {
		rootCert, err := readFile(rootCertFile)
		if err != nil {
			return err
		}
		sn, err := alipay.RootCertSN(rootCert)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "alipay_root_cert_sn: %s\n", sn)
	}
	return nil
}

// QueryRun prints the state of a trade
func QueryRun(cmd *cobra.Command, args []string) error {
	outTradeNo, _ := cmd.Flags().GetString("out-trade-no")
	tradeNo, _ := cmd.Flags().GetString("trade-no")

	client, err := AlipayClient(cmd.Context())
	if err != nil {
		return err
	}
	resp, err := client.TradeQuery(cmd.Context(), alipay.TradeQueryRequest{
		OutTradeNo: outTradeNo,
		TradeNo:    tradeNo,
	})
	if err != nil {
		return err
	}
	return printJSON(cmd, resp)
}

// RefundRun refunds a trade and prints the gateway's answer
func RefundRun(cmd *cobra.Command, args []string) error {
	outTradeNo, _ := cmd.Flags().GetString("out-trade-no")
	tradeNo, _ := cmd.Flags().GetString("trade-no")
	rawAmount, _ := cmd.Flags().GetString("amount")
	reason, _ := cmd.Flags().GetString("reason")
	outRequestNo, _ := cmd.Flags().GetString("out-request-no")

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", rawAmount, err)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("invalid amount %q: must be positive", rawAmount)
	}

	client, err := AlipayClient(cmd.Context())
	if err != nil {
		return err
	}
	resp, err := client.TradeRefund(cmd.Context(), alipay.TradeRefundRequest{
		OutTradeNo:   outTradeNo,
		TradeNo:      tradeNo,
		RefundAmount: amount,
		RefundReason: reason,
		OutRequestNo: outRequestNo,
	})
	if err != nil {
		return err
	}
	return printJSON(cmd, resp)
}
