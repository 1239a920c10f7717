package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/brave-intl/alipay-go/libs/clients"
	"github.com/brave-intl/alipay-go/libs/clients/alipay"
	cmdutils "github.com/brave-intl/alipay-go/libs/cmd"
	appctx "github.com/brave-intl/alipay-go/libs/context"
	"github.com/brave-intl/alipay-go/libs/logging"
	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// RootCmd is the base command (what the binary is called)
	RootCmd = &cobra.Command{
		Use:   "alipay-go",
		Short: "alipay-go signs requests to and verifies responses from the alipay open platform",
	}
	ctx = context.Background()
)

// Execute - the main entrypoint for all subcommands in alipay-go
func Execute(version, commit, buildTime string) {
	// setup context with logging, but first we need to setup the environment
	var logger *zerolog.Logger
	ctx = context.WithValue(ctx, appctx.EnvironmentCTXKey, viper.GetString("environment"))
	ctx = context.WithValue(ctx, appctx.DebugLoggingCTXKey, viper.GetBool("debug"))
	ctx, logger = logging.SetupLogger(ctx)

	ctx = context.WithValue(ctx, appctx.VersionCTXKey, version)
	ctx = context.WithValue(ctx, appctx.CommitCTXKey, commit)
	ctx = context.WithValue(ctx, appctx.BuildTimeCTXKey, buildTime)

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:     dsn,
			Release: fmt.Sprintf("alipay-go@%s-%s", commit, buildTime),
		})
		if err != nil {
			logger.Panic().Err(err).Msg("unable to setup reporting!")
		}
		defer sentry.Flush(2 * time.Second)
	}

	// execute the root cmd
	if err := RootCmd.ExecuteContext(ctx); err != nil {
		logger.Error().Err(err).Msg("./alipay-go command encountered an error")
		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}
}

func init() {
	// env - defaults to local
	cmdutils.NewPersistentFlagBuilder(RootCmd).
		String("environment", "local", "the default environment").
		Bind("environment").
		Env("ENV").
		// debug logging - defaults to off
		Flag().Bool("debug", false, "turn on debug logging").
		Bind("debug").
		Env("DEBUG")

	RootCmd.AddCommand(VersionCmd)
}

// VersionCmd is the command to get the code's version information
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "get the version of this binary",
	Run:   versionRun,
}

func versionRun(command *cobra.Command, args []string) {
	version, _ := command.Context().Value(appctx.VersionCTXKey).(string)
	commit, _ := command.Context().Value(appctx.CommitCTXKey).(string)
	buildTime, _ := command.Context().Value(appctx.BuildTimeCTXKey).(string)
	fmt.Fprintf(command.OutOrStdout(), "version: %s\ncommit: %s\nbuild time: %s\n",
		version, commit, buildTime,
	)
}

// Perform performs a run
func Perform(action string, fn func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		err := fn(cmd, args)
		if err != nil {
			failed(cmd.Context(), action, err)
		}
		<-time.After(10 * time.Millisecond)
		if err != nil {
			os.Exit(1)
		}
	}
}

// failed logs err with whatever the gateway or transport said about it
func failed(ctx context.Context, action string, err error) {
	logger := logging.FromContext(ctx)

	log := logger.Err(err).Str("action", action)
	if state, ok := clients.UnwrapHTTPState(err); ok {
		log = log.Int("status", state.Status).
			Str("path", state.Path).
			Bool("retryable", state.Retryable()).
			Interface("data", state.Body)
	}
	var be *alipay.BusinessError
	if errors.As(err, &be) {
		log = log.Str("code", be.Code).
			Str("sub_code", be.SubCode).
			Str("sub_msg", be.SubMsg)
	}
	log.Msg("failed")
}
