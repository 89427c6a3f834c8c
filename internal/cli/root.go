// Package cli implements the scrollcheck command.
package cli

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dennoAiden/swiper-venture/pkg/logger"
)

const envPrefix = "SCROLLCHECK"

// NewRootCommand builds the command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "scrollcheck",
		Short: "Smoke-test the landing page's section scrolling",
		Long: `scrollcheck verifies that every scroll control on the landing page points
at a section that exists, and that the stat cards render in order.

The anchors command inspects the served HTML. The browser command drives a
headless Chromium and checks that each section actually scrolls into view.
The open command opens a section in your own browser for a manual look.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if v.GetBool("debug") {
				return os.Setenv("LOG_LEVEL", "debug")
			}
			return nil
		},
	}

	cmd.PersistentFlags().String("url", "http://localhost:4002", "landing page URL")
	cmd.PersistentFlags().Duration("timeout", 30*time.Second, "overall timeout")
	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newAnchorsCmd(v),
		newBrowserCmd(v),
		newOpenCmd(v),
	)
	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}

func newLogger() *slog.Logger {
	return logger.NewLogger().With(logger.Scope("scrollcheck"))
}
