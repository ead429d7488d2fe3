package extract

import (
	"testing"

	"github.com/upgantt/upgantt/pkg/archive"
)

func TestResolveTitle(t *testing.T) {
	tests := []struct {
		name   string
		bold   string
		want   string
		wantOK bool
	}{
		{name: "up title", bold: "example.com is now UP", want: "example.com", wantOK: true},
		{name: "down title", bold: "example.com is now DOWN", want: "example.com", wantOK: true},
		{name: "still down title", bold: "example.com is still DOWN", want: "example.com", wantOK: true},
		{name: "case insensitive", bold: "Example.COM Is Now Down", want: "Example.COM", wantOK: true},
		{name: "multi word name", bold: "My Cool Service is now UP", want: "My Cool Service", wantOK: true},
		{name: "trailing detail kept out", bold: "svc.example is now DOWN (HTTP 503)", want: "svc.example", wantOK: true},
		{name: "no leading name", bold: "is still DOWN", wantOK: false},
		{name: "leading space only", bold: " is now UP", want: "", wantOK: true},
		{name: "unrelated text", bold: "maintenance window", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolveTitle(tt.bold)
			if ok != tt.wantOK {
				t.Fatalf("resolveTitle(%q) ok = %v, want %v", tt.bold, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("resolveTitle(%q) = %q, want %q", tt.bold, got, tt.want)
			}
		})
	}
}

func TestResolveTargetLine(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		want   string
		wantOK bool
	}{
		{
			name:   "plain trailing text",
			body:   "Monitor alert\nTarget: example.com\nDuration: 3m",
			want:   "example.com",
			wantOK: true,
		},
		{
			name:   "link style capture",
			body:   `Target: "type": "link", "text": "linked.example"`,
			want:   "linked.example",
			wantOK: true,
		},
		{
			name:   "link style preferred over plain text",
			body:   `Target: prefix "type": "link", "text": "linked.example" suffix`,
			want:   "linked.example",
			wantOK: true,
		},
		{
			name:   "no target line",
			body:   "Monitor alert\nDuration: 3m",
			wantOK: false,
		},
		{
			name:   "trimmed",
			body:   "Target:   spaced.example  ",
			want:   "spaced.example",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolveTargetLine(tt.body)
			if ok != tt.wantOK {
				t.Fatalf("resolveTargetLine(%q) ok = %v, want %v", tt.body, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("resolveTargetLine(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

func TestResolveLink(t *testing.T) {
	tests := []struct {
		name     string
		entities []archive.Entity
		want     string
		wantOK   bool
	}{
		{
			name: "first suitable link",
			entities: []archive.Entity{
				{Type: "bold", Text: "ignored.example"},
				{Type: "link", Text: "has spaces .com"},
				{Type: "link", Text: "nodot"},
				{Type: "link", Text: "svc.org"},
				{Type: "link", Text: "later.example"},
			},
			want:   "svc.org",
			wantOK: true,
		},
		{
			name: "no suitable link",
			entities: []archive.Entity{
				{Type: "link", Text: "nodot"},
				{Type: "plain", Text: "svc.org"},
			},
			wantOK: false,
		},
		{
			name:     "no entities",
			entities: nil,
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolveLink(tt.entities)
			if ok != tt.wantOK {
				t.Fatalf("resolveLink() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("resolveLink() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveService_Priority(t *testing.T) {
	entities := []archive.Entity{{Type: "link", Text: "link.example"}}
	body := "Target: target.example"

	// All three tiers could resolve; title wins.
	name, ok := resolveService("title.example is now UP", body, entities)
	if !ok || name != "title.example" {
		t.Errorf("resolveService() = %q, %v; want title.example", name, ok)
	}

	// Title fails; target line beats the link entity.
	name, ok = resolveService("is now UP", body, entities)
	if !ok || name != "target.example" {
		t.Errorf("resolveService() = %q, %v; want target.example", name, ok)
	}

	// Only the link remains.
	name, ok = resolveService("is now UP", "no target here", entities)
	if !ok || name != "link.example" {
		t.Errorf("resolveService() = %q, %v; want link.example", name, ok)
	}

	// Nothing resolves.
	if name, ok = resolveService("is now UP", "nothing", nil); ok {
		t.Errorf("resolveService() = %q, want no match", name)
	}
}
