package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	appconfig "github.com/stockroom/stockroom/internal/adapters/outbound/config"
	"github.com/stockroom/stockroom/internal/domain"
)

func newInitCmd() *cobra.Command {
	var (
		currency string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Generate a .stockroom.yaml configuration file",
		Long:  "Create a .stockroom.yaml with the default session settings.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, appconfig.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", appconfig.FileName)
				}
			}

			cfg := domain.DefaultConfig()
			if currency != "" {
				cfg.Currency = currency
			}

			content, err := appconfig.Render(cfg)
			if err != nil {
				return err
			}

			if err := os.WriteFile(dest, []byte(content), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", appconfig.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&currency, "currency", "", "Currency symbol shown before prices")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .stockroom.yaml")

	return cmd
}
