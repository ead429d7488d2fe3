package output

import (
	"context"
	"fmt"
	"io"
)

const eventTimeLayout = "2006-01-02 15:04:05"

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "upgantt: %d messages scanned, %d events, %d services, %d down events\n",
		report.Summary.MessagesScanned,
		report.Summary.EventsExtracted,
		report.Summary.ServicesDetected,
		report.Summary.DownEvents)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintln(w, "=== upgantt Extraction Report ===")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Detected services:")
	if len(report.Services) == 0 {
		fmt.Fprintln(w, "  (none found)")
	}
	for _, svc := range report.Services {
		fmt.Fprintf(w, "  - %s\n", svc)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events:")
	for _, ev := range report.Events {
		fmt.Fprintf(w, "  %s  %-4s  %s\n",
			ev.Time.UTC().Format(eventTimeLayout), ev.Status, ev.Service)
	}
	if len(report.Events) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d messages scanned, %d events, %d services, %d down events\n",
		report.Summary.MessagesScanned,
		report.Summary.EventsExtracted,
		report.Summary.ServicesDetected,
		report.Summary.DownEvents)

	if f.opts.Verbose {
		fmt.Fprintf(w, "Archive: %s\n", report.Metadata.Archive)
		fmt.Fprintf(w, "Extracted at: %s\n", report.Metadata.ExtractedAt.Format(eventTimeLayout))
	}

	return nil
}
