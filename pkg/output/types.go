// Package output provides report building, formatting, and console reporting
// for extraction results.
package output

import (
	"time"

	"github.com/upgantt/upgantt/pkg/extract"
)

// Report is the complete extraction output.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Services lists the distinct detected service names, sorted.
	Services []string `json:"services"`

	// Events contains the extracted events, sorted ascending by time.
	Events []extract.Event `json:"events"`

	// Metadata provides context about the extraction run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// MessagesScanned is the number of raw messages read from the archive.
	MessagesScanned int `json:"messages_scanned"`

	// EventsExtracted is the number of valid status events produced.
	EventsExtracted int `json:"events_extracted"`

	// ServicesDetected is the number of distinct services seen.
	ServicesDetected int `json:"services_detected"`

	// DownEvents is the number of events reporting a DOWN status.
	DownEvents int `json:"down_events"`
}

// Metadata provides context about the extraction run.
type Metadata struct {
	// Archive is the path of the export file that was read.
	Archive string `json:"archive"`

	// ExtractedAt is when the extraction was performed.
	ExtractedAt time.Time `json:"extracted_at"`
}

// NewReport creates a Report from extraction results.
func NewReport(archive string, messagesScanned int, events []extract.Event) *Report {
	services := extract.Services(events)

	down := 0
	for _, ev := range events {
		if ev.Status == extract.StatusDown {
			down++
		}
	}

	return &Report{
		Summary: Summary{
			MessagesScanned:  messagesScanned,
			EventsExtracted:  len(events),
			ServicesDetected: len(services),
			DownEvents:       down,
		},
		Services: services,
		Events:   events,
		Metadata: Metadata{
			Archive:     archive,
			ExtractedAt: time.Now().UTC(),
		},
	}
}

// HasDowntime returns true if any DOWN event was extracted.
func (r *Report) HasDowntime() bool {
	return r.Summary.DownEvents > 0
}
