package cmd

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	should "github.com/stretchr/testify/assert"
	must "github.com/stretchr/testify/require"
)

func TestFlagBuilder_LocalFlags(t *testing.T) {
	command := &cobra.Command{Use: "local"}
	NewFlagBuilder(command).
		String("flag-builder-method", "alipay.trade.query", "the method").
		Bind("flag-builder-method").
		Flag().Duration("flag-builder-timeout", time.Second, "the timeout").
		Bind("flag-builder-timeout")

	must.NoError(t, command.Flags().Set("flag-builder-method", "alipay.trade.refund"))

	should.Equal(t, "alipay.trade.refund", viper.GetString("flag-builder-method"))
	should.Equal(t, time.Second, viper.GetDuration("flag-builder-timeout"))
	should.Nil(t, command.PersistentFlags().Lookup("flag-builder-method"))
}

func TestFlagBuilder_PersistentFlags(t *testing.T) {
	parent := &cobra.Command{Use: "parent"}
	child := &cobra.Command{Use: "child"}
	parent.AddCommand(child)

	NewPersistentFlagBuilder(parent).
		Bool("flag-builder-sandbox", false, "use the sandbox").
		Bind("flag-builder-sandbox").
		Env("FLAG_BUILDER_SANDBOX")

	should.NotNil(t, child.InheritedFlags().Lookup("flag-builder-sandbox"))

	t.Setenv("FLAG_BUILDER_SANDBOX", "true")
	should.True(t, viper.GetBool("flag-builder-sandbox"))
}
