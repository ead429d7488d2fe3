package extract

import (
	"regexp"
	"slices"
	"strings"

	"github.com/upgantt/upgantt/pkg/archive"
)

// DefaultSender is the chat identity the monitoring bot posts under.
// Messages from any other sender never produce events.
const DefaultSender = "HetrixTools"

// statusPhrases maps recognized bold-text substrings to a status, in check
// order. Within one entity the earlier phrase wins.
var statusPhrases = []struct {
	phrase string
	status Status
}{
	{"is now UP", StatusUp},
	{"is now DOWN", StatusDown},
	{"is still DOWN", StatusDown},
}

// Extractor scans archive messages and emits normalized status events.
type Extractor struct {
	sender string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSender overrides the expected sender identity.
func WithSender(sender string) Option {
	return func(e *Extractor) {
		e.sender = sender
	}
}

// New creates an Extractor.
func New(opts ...Option) *Extractor {
	e := &Extractor{sender: DefaultSender}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Events extracts status events from the given messages and returns them
// sorted ascending by time. Ties keep extraction order. Malformed or
// ambiguous messages are skipped individually; extraction never fails.
func (e *Extractor) Events(messages []archive.Message) []Event {
	events := make([]Event, 0, len(messages))
	for i := range messages {
		if ev, ok := e.eventFrom(&messages[i]); ok {
			events = append(events, ev)
		}
	}

	slices.SortStableFunc(events, func(a, b Event) int {
		return a.Time.Compare(b.Time)
	})
	return events
}

// eventFrom runs the per-message pipeline. Any precondition failure or
// unresolved field drops the message without an event.
func (e *Extractor) eventFrom(msg *archive.Message) (Event, bool) {
	if msg.From != e.sender {
		return Event{}, false
	}

	ts, err := msg.UnixTime()
	if err != nil {
		return Event{}, false
	}

	entities, err := msg.Entities()
	if err != nil {
		return Event{}, false
	}

	body, err := msg.BodyText()
	if err != nil {
		return Event{}, false
	}

	status, boldText, ok := detectStatus(entities)
	if !ok {
		return Event{}, false
	}

	name, ok := resolveService(boldText, body, entities)
	if !ok {
		return Event{}, false
	}

	name = Normalize(name)
	if name == "" {
		return Event{}, false
	}

	return Event{Service: name, Status: status, Time: ts}, true
}

// detectStatus scans entities in order and returns the status announced by
// the first bold entity containing a recognized phrase, along with that
// entity's text. The scan short-circuits at the first match.
func detectStatus(entities []archive.Entity) (Status, string, bool) {
	for _, ent := range entities {
		if ent.Type != "bold" {
			continue
		}
		for _, p := range statusPhrases {
			if strings.Contains(ent.Text, p.phrase) {
				return p.status, ent.Text, true
			}
		}
	}
	return "", "", false
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Normalize canonicalizes a resolved service name: surrounding whitespace
// trimmed, trailing slashes stripped, internal whitespace runs collapsed to
// single spaces. Normalize is idempotent.
func Normalize(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimRight(name, "/")
	name = whitespaceRun.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

// Services returns the distinct service names present in events, sorted.
func Services(events []Event) []string {
	seen := make(map[string]struct{}, len(events))
	names := make([]string, 0, len(events))
	for _, ev := range events {
		if _, ok := seen[ev.Service]; ok {
			continue
		}
		seen[ev.Service] = struct{}{}
		names = append(names, ev.Service)
	}
	slices.Sort(names)
	return names
}
