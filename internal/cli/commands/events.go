package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/upgantt/upgantt/pkg/archive"
	"github.com/upgantt/upgantt/pkg/extract"
	"github.com/upgantt/upgantt/pkg/output"
)

// EventsOptions holds command-line options for the events command.
type EventsOptions struct {
	Output  string
	Sender  string
	Verbose bool
	Quiet   bool
}

// NewEventsCommand creates the events command.
func NewEventsCommand() *cobra.Command {
	opts := &EventsOptions{}

	cmd := &cobra.Command{
		Use:   "events <archive-file>",
		Short: "Extract and print status events from a chat-export archive",
		Long: `Extract UP/DOWN status events from a chat-export archive and print them,
sorted ascending by time. Malformed or ambiguous messages are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvents(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringVar(&opts.Sender, "sender", extract.DefaultSender, "Expected sender identity of the monitoring bot")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Include run metadata")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")

	return cmd
}

func runEvents(cmd *cobra.Command, args []string, opts *EventsOptions) error {
	archivePath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	messages, err := archive.Load(archivePath)
	if err != nil {
		return err
	}

	extractor := extract.New(extract.WithSender(opts.Sender))
	events := extractor.Events(messages)
	report := output.NewReport(archivePath, len(messages), events)

	formatter, err := createFormatter(opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}

// createFormatter builds an output formatter by name.
func createFormatter(format string, opts output.FormatOptions) (output.Formatter, error) {
	switch format {
	case "text":
		return output.NewTextFormatter(opts), nil
	case "json":
		return output.NewJSONFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", format)
	}
}
