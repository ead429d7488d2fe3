package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/upgantt/upgantt/pkg/archive"
	"github.com/upgantt/upgantt/pkg/chart"
	"github.com/upgantt/upgantt/pkg/config"
	"github.com/upgantt/upgantt/pkg/extract"
	"github.com/upgantt/upgantt/pkg/output"
	"github.com/upgantt/upgantt/pkg/timeline"
	"github.com/upgantt/upgantt/pkg/webhook"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// ChartOptions holds command-line options for the chart command.
type ChartOptions struct {
	Config   string
	Services []string
	Out      string
	Sender   string
	Width    int
	Title    string

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewChartCommand creates the chart command.
func NewChartCommand() *cobra.Command {
	opts := &ChartOptions{}

	cmd := &cobra.Command{
		Use:   "chart <archive-file>",
		Short: "Render an uptime Gantt chart from a chat-export archive",
		Long: `Extract UP/DOWN status events from a chat-export archive and render the
selected services as a Gantt-style timeline image.

Services are selected with repeated --service flags or the services list in
the configuration file. Matching against detected services is case-insensitive
and ignores trailing slashes; requested services absent from the data are
warnings, not failures.

Exit codes:
  0 - Chart written
  1 - Nothing to chart (no events, or no requested service found)
  2 - Input, configuration, or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Path to YAML configuration file")
	cmd.Flags().StringSliceVarP(&opts.Services, "service", "s", nil, "Service to include (can be repeated)")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "Output image path (default uptime_gantt.png)")
	cmd.Flags().StringVar(&opts.Sender, "sender", "", "Expected sender identity of the monitoring bot")
	cmd.Flags().IntVar(&opts.Width, "width", 0, "Chart width in pixels")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Chart title")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "on_downtime", "When to fire webhook (on_downtime|always|never)")

	return cmd
}

func runChart(cmd *cobra.Command, args []string, opts *ChartOptions) error {
	archivePath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	reporter := output.NewConsoleReporter(cmd.OutOrStdout())

	cfg, err := loadConfig(ctx, opts.Config)
	if err != nil {
		return err
	}
	applyChartFlags(cfg, opts)

	// Load the archive. Input errors abort the whole pipeline.
	messages, err := archive.Load(archivePath)
	if err != nil {
		return err
	}

	extractor := extract.New(extract.WithSender(cfg.Source.Sender))
	events := extractor.Events(messages)
	report := output.NewReport(archivePath, len(messages), events)

	if len(events) == 0 {
		reporter.Errorf("no valid UP/DOWN events could be extracted from %s", archivePath)
		ExitCode = 1
		return nil
	}

	reporter.ServicesDetected(report.Services)

	if len(cfg.Services) == 0 {
		reporter.Errorf("no services requested: pass --service or set services in the config file")
		ExitCode = 1
		return nil
	}

	sel := timeline.Select(cfg.Services, report.Services)
	for _, miss := range sel.Unmatched {
		reporter.Warnf("service %q not found in the log data, ignoring", miss)
	}
	if sel.Empty() {
		reporter.Errorf("none of the requested services were found in the log data, no chart generated")
		ExitCode = 1
		return nil
	}

	selected := sel.Filter(events)
	vp, ok := timeline.ViewportFor(selected)
	if !ok {
		reporter.Errorf("no events remain for the selected services, no chart generated")
		ExitCode = 1
		return nil
	}

	rows := sel.Services()
	reporter.Infof("Generating Gantt chart for: %s", strings.Join(rows, ", "))

	g := chart.New(chart.Options{
		Width:     cfg.Chart.Width,
		RowHeight: cfg.Chart.RowHeight,
		UpColor:   cfg.Chart.UpColor,
		DownColor: cfg.Chart.DownColor,
		Title:     cfg.Chart.Title,
	})
	if err := g.Render(rows, timeline.BuildAll(selected, vp), vp, cfg.Chart.Output); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}

	// Send webhooks (errors logged but don't fail the run)
	sendWebhooks(ctx, cfg, opts, report)

	reporter.Infof("Chart saved to %s", cfg.Chart.Output)
	return nil
}

// loadConfig loads the given config file, or the defaults when none is given.
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// applyChartFlags lets command-line flags override the config file.
func applyChartFlags(cfg *config.Config, opts *ChartOptions) {
	if len(opts.Services) > 0 {
		cfg.Services = opts.Services
	}
	if opts.Out != "" {
		cfg.Chart.Output = opts.Out
	}
	if opts.Sender != "" {
		cfg.Source.Sender = opts.Sender
	}
	if opts.Width > 0 {
		cfg.Chart.Width = opts.Width
	}
	if opts.Title != "" {
		cfg.Chart.Title = opts.Title
	}
}

// sendWebhooks sends the report to all configured webhooks.
// Errors are logged to stderr but don't fail the run.
func sendWebhooks(ctx context.Context, cfg *config.Config, opts *ChartOptions, report *output.Report) {
	webhooks := collectWebhooks(cfg, opts)
	if len(webhooks) == 0 {
		return
	}

	client := webhook.NewClient()

	for _, wh := range webhooks {
		if !shouldFireWebhook(wh.Trigger, report.HasDowntime()) {
			continue
		}

		resp := client.Send(ctx, report, webhook.SendOptions{
			URL:     wh.URL,
			Token:   wh.Token,
			Timeout: wh.Timeout,
		})

		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		if resp.Success() {
			fmt.Fprintf(os.Stderr, "Webhook %s: sent (%d, %s)\n", name, resp.StatusCode, resp.Duration)
		} else {
			fmt.Fprintf(os.Stderr, "Webhook %s: failed (%v)\n", name, resp.Error)
		}
	}
}

// collectWebhooks merges config file webhooks with the CLI webhook.
func collectWebhooks(cfg *config.Config, opts *ChartOptions) []config.WebhookConfig {
	webhooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)
	webhooks = append(webhooks, cfg.Webhooks...)

	if opts.WebhookURL != "" {
		trigger := config.WebhookTrigger(opts.WebhookTrigger)
		if trigger == "" {
			trigger = config.WebhookTriggerOnDowntime
		}

		webhooks = append(webhooks, config.WebhookConfig{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: trigger,
			Timeout: config.DefaultWebhookTimeout,
		})
	}

	return webhooks
}

// shouldFireWebhook determines if a webhook should fire based on trigger and
// whether downtime was observed.
func shouldFireWebhook(trigger config.WebhookTrigger, hasDowntime bool) bool {
	switch trigger {
	case config.WebhookTriggerAlways:
		return true
	case config.WebhookTriggerNever:
		return false
	case config.WebhookTriggerOnDowntime:
		return hasDowntime
	default:
		// Default to on_downtime
		return hasDowntime
	}
}
