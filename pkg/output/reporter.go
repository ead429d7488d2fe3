package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Reporter receives user-facing progress, warning, and error messages so the
// extraction and rendering pipeline stays free of console side effects.
type Reporter interface {
	// Infof reports normal progress.
	Infof(format string, args ...any)

	// Warnf reports a recoverable problem, such as a requested service that
	// is absent from the data.
	Warnf(format string, args ...any)

	// Errorf reports a condition that ends the run without output.
	Errorf(format string, args ...any)

	// ServicesDetected lists the distinct services found during extraction.
	ServicesDetected(services []string)
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	serviceStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("36"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// ConsoleReporter writes styled messages to a terminal.
type ConsoleReporter struct {
	w io.Writer
}

// NewConsoleReporter creates a reporter writing to w.
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

// Infof reports normal progress.
func (r *ConsoleReporter) Infof(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Warnf reports a recoverable problem.
func (r *ConsoleReporter) Warnf(format string, args ...any) {
	fmt.Fprintln(r.w, warnStyle.Render("Warning: "+fmt.Sprintf(format, args...)))
}

// Errorf reports a condition that ends the run without output.
func (r *ConsoleReporter) Errorf(format string, args ...any) {
	fmt.Fprintln(r.w, errorStyle.Render("Error: "+fmt.Sprintf(format, args...)))
}

// ServicesDetected lists the detected services in their original case.
func (r *ConsoleReporter) ServicesDetected(services []string) {
	fmt.Fprintln(r.w, headerStyle.Render("Detected services:"))
	if len(services) == 0 {
		fmt.Fprintln(r.w, "  (none found)")
		return
	}
	for _, svc := range services {
		fmt.Fprintf(r.w, "  - %s\n", serviceStyle.Render(svc))
	}
}

// NopReporter discards all messages. Useful in tests.
type NopReporter struct{}

func (NopReporter) Infof(string, ...any)      {}
func (NopReporter) Warnf(string, ...any)      {}
func (NopReporter) Errorf(string, ...any)     {}
func (NopReporter) ServicesDetected([]string) {}
