package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	appconfig "github.com/stockroom/stockroom/internal/adapters/outbound/config"
	"github.com/stockroom/stockroom/internal/domain"
	"github.com/stockroom/stockroom/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		logLevel   string
		logFormat  string
	)

	cmd := &cobra.Command{
		Use:           "stockroom",
		Short:         "Interactive in-memory inventory tracker",
		Long:          "stockroom keeps a session-scoped list of products and lets you add, view, edit, delete and search them from a menu.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var loader domain.ConfigLoader = appconfig.New()
			cfg, err := loader.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			flags := domain.Config{Log: domain.LogConfig{Level: logLevel, Format: logFormat}}
			if err := flags.Validate(); err != nil {
				return err
			}
			cfg = cfg.Merge(flags)

			logger := logging.Setup(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
			logger.Debug("session starting", "config", configPath, "currency", cfg.Currency)

			return NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), cfg, logger).Run()
		},
	}

	cmd.Flags().StringVar(&configPath, "config", appconfig.FileName, "Path to the YAML config file")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Diagnostic log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&logFormat, "log-format", "", "Diagnostic log format (text, json)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
