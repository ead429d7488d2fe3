package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/upgantt/upgantt/pkg/archive"
	"github.com/upgantt/upgantt/pkg/extract"
)

// ServicesOptions holds command-line options for the services command.
type ServicesOptions struct {
	Output string
	Sender string
}

// NewServicesCommand creates the services command.
func NewServicesCommand() *cobra.Command {
	opts := &ServicesOptions{}

	cmd := &cobra.Command{
		Use:   "services <archive-file>",
		Short: "List the services detected in a chat-export archive",
		Long: `Extract status events from a chat-export archive and list the distinct
service names found, in their original case. Use this to discover the exact
names to pass to the chart command.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServices(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringVar(&opts.Sender, "sender", extract.DefaultSender, "Expected sender identity of the monitoring bot")

	return cmd
}

func runServices(cmd *cobra.Command, args []string, opts *ServicesOptions) error {
	messages, err := archive.Load(args[0])
	if err != nil {
		return err
	}

	extractor := extract.New(extract.WithSender(opts.Sender))
	services := extract.Services(extractor.Events(messages))

	w := cmd.OutOrStdout()

	switch opts.Output {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(services)
	case "text":
		if len(services) == 0 {
			fmt.Fprintln(w, "(none found)")
			return nil
		}
		for _, svc := range services {
			fmt.Fprintf(w, "%s\n", svc)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
}
