// Package archive reads chat-export archives produced by messenger export
// tools and exposes the raw message records inside them.
package archive

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// Export is the top-level structure of a chat-export file.
type Export struct {
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
	ID   int64  `json:"id,omitempty"`

	// Messages is a pointer so a missing "messages" key can be told apart
	// from an empty message list.
	Messages *[]Message `json:"messages"`
}

// Message is one raw record from the archive. The body and entity fields are
// kept as raw JSON because export tools emit them in several shapes; the
// accessor methods below decode them on demand.
type Message struct {
	ID           int64           `json:"id,omitempty"`
	From         string          `json:"from"`
	DateUnixtime json.RawMessage `json:"date_unixtime,omitempty"`
	Text         json.RawMessage `json:"text,omitempty"`
	TextEntities json.RawMessage `json:"text_entities,omitempty"`
}

// Entity is a style-tagged subspan of a message body (bold, link, plain...).
type Entity struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

var (
	// ErrNoTimestamp indicates a missing or non-numeric unix timestamp field.
	ErrNoTimestamp = errors.New("missing or invalid unix timestamp")

	// ErrNoEntities indicates a missing or malformed entity list.
	ErrNoEntities = errors.New("missing or invalid entity list")

	// ErrBodyShape indicates a body that is neither a string nor a fragment list.
	ErrBodyShape = errors.New("unsupported body text shape")
)

// UnixTime parses the message's unix timestamp as an integer and returns it
// as a UTC instant. Exports carry the field either as a number or as a
// numeric string.
func (m *Message) UnixTime() (time.Time, error) {
	raw := bytes.TrimSpace(m.DateUnixtime)
	if len(raw) == 0 {
		return time.Time{}, ErrNoTimestamp
	}
	s := strings.TrimSpace(strings.Trim(string(raw), `"`))
	secs, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, ErrNoTimestamp
	}
	return time.Unix(secs, 0).UTC(), nil
}

// Entities decodes the message's entity list. A message without an entity
// list (absent, null, or not a list) is not usable for extraction.
func (m *Message) Entities() ([]Entity, error) {
	raw := bytes.TrimSpace(m.TextEntities)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, ErrNoEntities
	}
	var entities []Entity
	if err := json.Unmarshal(raw, &entities); err != nil {
		return nil, ErrNoEntities
	}
	return entities, nil
}

// bodyFragment is one element of a fragment-list body.
type bodyFragment struct {
	Text *string `json:"text"`
}

// BodyText assembles the message body into a single string. Plain-string
// bodies are returned as-is; fragment lists are joined one fragment per line.
// Fragments without usable text are skipped. An absent body is empty, any
// other shape is an error.
func (m *Message) BodyText() (string, error) {
	raw := bytes.TrimSpace(m.Text)
	if len(raw) == 0 {
		return "", nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", ErrBodyShape
		}
		return s, nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return "", ErrBodyShape
		}
		var b strings.Builder
		for _, item := range items {
			item = bytes.TrimSpace(item)
			if len(item) == 0 {
				continue
			}
			switch item[0] {
			case '"':
				var s string
				if err := json.Unmarshal(item, &s); err != nil {
					continue
				}
				b.WriteString(s)
				b.WriteString("\n")
			case '{':
				var frag bodyFragment
				if err := json.Unmarshal(item, &frag); err != nil || frag.Text == nil {
					continue
				}
				b.WriteString(*frag.Text)
				b.WriteString("\n")
			}
		}
		return b.String(), nil
	default:
		return "", ErrBodyShape
	}
}
