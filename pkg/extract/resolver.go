package extract

import (
	"regexp"
	"strings"

	"github.com/upgantt/upgantt/pkg/archive"
)

var (
	// titlePattern captures the service name announced ahead of the status
	// phrase in the bold title, e.g. "example.com is now DOWN".
	titlePattern = regexp.MustCompile(`(?i)^(.*?)\s+(?:is now UP|is now DOWN|is still DOWN)`)

	// targetPattern matches a "Target:" line in the assembled body, capturing
	// either an embedded link-style fragment's display text or the plain
	// trailing text. The link-style group is listed first on purpose: Go's
	// leftmost-first alternation keeps it ahead of the plain capture when
	// both could match.
	targetPattern = regexp.MustCompile(`Target:\s*(?:.*?"type":\s*"link",\s*"text":\s*"([^"]+)"|([^\n]+))`)
)

// resolver attempts to recover a service name from one source. ok reports
// whether the source matched at all. A match whose capture trims to empty
// still wins the chain; normalization drops the message afterwards.
type resolver func() (name string, ok bool)

// resolveService tries the title, the Target line, and the first suitable
// link entity, in that priority order. The first resolver that matches wins.
func resolveService(boldText, body string, entities []archive.Entity) (string, bool) {
	chain := []resolver{
		func() (string, bool) { return resolveTitle(boldText) },
		func() (string, bool) { return resolveTargetLine(body) },
		func() (string, bool) { return resolveLink(entities) },
	}

	for _, r := range chain {
		if name, ok := r(); ok {
			return name, true
		}
	}
	return "", false
}

// resolveTitle parses the service name out of the matched bold title. This is
// the primary source of truth since the announcement names the service
// directly.
func resolveTitle(boldText string) (string, bool) {
	m := titlePattern.FindStringSubmatch(boldText)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// resolveTargetLine searches the assembled body for a "Target:" line,
// preferring the link-style capture over plain trailing text.
func resolveTargetLine(body string) (string, bool) {
	m := targetPattern.FindStringSubmatch(body)
	if m == nil {
		return "", false
	}
	name := m[1]
	if name == "" {
		name = m[2]
	}
	return strings.TrimSpace(name), true
}

// resolveLink falls back to the first link entity whose text looks like a
// hostname: contains a dot and no spaces.
func resolveLink(entities []archive.Entity) (string, bool) {
	for _, ent := range entities {
		if ent.Type != "link" {
			continue
		}
		if strings.Contains(ent.Text, ".") && !strings.Contains(ent.Text, " ") {
			return strings.TrimSpace(ent.Text), true
		}
	}
	return "", false
}
