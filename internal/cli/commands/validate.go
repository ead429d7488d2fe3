package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/upgantt/upgantt/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a YAML configuration file without reading an archive or rendering
a chart. Reports the first problem found.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			cfg, err := config.Load(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration valid: %d service(s), %d webhook(s)\n",
				len(cfg.Services), len(cfg.Webhooks))
			return nil
		},
	}
}
