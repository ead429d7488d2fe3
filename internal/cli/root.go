// Package cli provides the command-line interface for upgantt.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/upgantt/upgantt/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Input, configuration, or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "upgantt",
		Short: "Render uptime Gantt charts from monitoring-bot chat exports",
		Long: `upgantt reads a chat-export archive containing monitoring-bot alerts,
reconstructs per-service UP/DOWN status intervals, and renders them as a
Gantt-style timeline image.

It extracts events from loosely formatted alert messages:
  - the bold announcement title names the service and its new status
  - a "Target:" line in the body is used when the title doesn't
  - a hostname-shaped link entity is the last fallback

Malformed or ambiguous messages are skipped rather than failing the run.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewChartCommand())
	rootCmd.AddCommand(commands.NewEventsCommand())
	rootCmd.AddCommand(commands.NewServicesCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
