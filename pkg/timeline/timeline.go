// Package timeline derives constant-status intervals from a chronologically
// sorted event list and matches requested service names against the services
// found in the data.
package timeline

import (
	"slices"
	"strings"
	"time"

	"github.com/upgantt/upgantt/pkg/extract"
)

// Interval is a span during which a service held one status. Intervals for a
// service are disjoint and chronologically ordered.
type Interval struct {
	Service string         `json:"service"`
	Status  extract.Status `json:"status"`
	Start   time.Time      `json:"start"`
	End     time.Time      `json:"end"`
}

// Duration returns the interval length.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Viewport is the charted time range.
type Viewport struct {
	Start time.Time
	End   time.Time
}

const (
	// paddingFraction widens the viewport by this share of the observed span
	// on each side.
	paddingFraction = 0.02

	// minPadding is the smallest viewport padding applied.
	minPadding = 5 * time.Minute
)

// ViewportFor computes the chart time range for the given events: the
// observed span padded by 2% on each side, at least five minutes. Returns
// false when there are no events to frame.
func ViewportFor(events []extract.Event) (Viewport, bool) {
	if len(events) == 0 {
		return Viewport{}, false
	}

	min, max := events[0].Time, events[0].Time
	for _, ev := range events[1:] {
		if ev.Time.Before(min) {
			min = ev.Time
		}
		if ev.Time.After(max) {
			max = ev.Time
		}
	}

	pad := time.Duration(float64(max.Sub(min)) * paddingFraction)
	if pad < minPadding {
		pad = minPadding
	}
	return Viewport{Start: min.Add(-pad), End: max.Add(pad)}, true
}

// BuildAll groups events by service and derives the status intervals for
// each. Events must be sorted ascending by time.
func BuildAll(events []extract.Event, vp Viewport) map[string][]Interval {
	byService := make(map[string][]extract.Event)
	for _, ev := range events {
		byService[ev.Service] = append(byService[ev.Service], ev)
	}

	intervals := make(map[string][]Interval, len(byService))
	for service, evs := range byService {
		intervals[service] = build(service, evs, vp)
	}
	return intervals
}

// build derives the interval sequence for one service. The state before the
// first event is the logical opposite of that event's status; the state after
// the last event holds until the viewport end. Zero-width intervals are not
// emitted.
func build(service string, events []extract.Event, vp Viewport) []Interval {
	if len(events) == 0 {
		return nil
	}

	intervals := make([]Interval, 0, len(events)+1)
	last := vp.Start
	lastStatus := events[0].Status.Opposite()

	for _, ev := range events {
		if ev.Time.After(last) {
			intervals = append(intervals, Interval{
				Service: service,
				Status:  lastStatus,
				Start:   last,
				End:     ev.Time,
			})
		}
		lastStatus = ev.Status
		last = ev.Time
	}

	if vp.End.After(last) {
		intervals = append(intervals, Interval{
			Service: service,
			Status:  lastStatus,
			Start:   last,
			End:     vp.End,
		})
	}
	return intervals
}

// Key canonicalizes a service name for case- and trailing-slash-insensitive
// comparison.
func Key(name string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(name), "/"))
}

// Selection is the result of matching requested service names against the
// services detected in the data.
type Selection struct {
	// matched maps canonical keys to the detected name in its original case.
	matched map[string]string

	// Unmatched lists requested names absent from the data, in the caller's
	// spelling, one entry per canonical key, sorted.
	Unmatched []string
}

// Select matches requested names against detected ones. Requests that differ
// only by case or trailing slashes collapse to a single match, and repeated
// unknown names produce a single Unmatched entry.
func Select(requested, detected []string) Selection {
	detectedByKey := make(map[string]string, len(detected))
	for _, d := range detected {
		detectedByKey[Key(d)] = d
	}

	sel := Selection{matched: make(map[string]string)}
	missing := make(map[string]struct{})

	for _, r := range requested {
		k := Key(r)
		if name, ok := detectedByKey[k]; ok {
			sel.matched[k] = name
			continue
		}
		if _, dup := missing[k]; dup {
			continue
		}
		missing[k] = struct{}{}
		sel.Unmatched = append(sel.Unmatched, r)
	}

	slices.Sort(sel.Unmatched)
	return sel
}

// Empty reports whether no requested service was found in the data.
func (s Selection) Empty() bool {
	return len(s.matched) == 0
}

// Services returns the matched service names in their detected spelling,
// sorted.
func (s Selection) Services() []string {
	names := make([]string, 0, len(s.matched))
	for _, name := range s.matched {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Filter returns the events belonging to the matched services, preserving
// input order.
func (s Selection) Filter(events []extract.Event) []extract.Event {
	filtered := make([]extract.Event, 0, len(events))
	for _, ev := range events {
		if _, ok := s.matched[Key(ev.Service)]; ok {
			filtered = append(filtered, ev)
		}
	}
	return filtered
}
