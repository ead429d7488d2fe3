// Package config provides configuration loading and validation for upgantt.
package config

import "time"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	Source   SourceConfig    `yaml:"source"`
	Services []string        `yaml:"services,omitempty"`
	Chart    ChartConfig     `yaml:"chart"`
	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`
}

// SourceConfig identifies the monitoring bot inside the chat export.
type SourceConfig struct {
	// Sender is the chat identity the monitoring bot posts under. Messages
	// from any other sender are ignored during extraction.
	Sender string `yaml:"sender"`
}

// ChartConfig controls the rendered timeline image.
type ChartConfig struct {
	// Output is the path the PNG is written to.
	Output string `yaml:"output,omitempty"`

	// Width is the image width in pixels.
	Width int `yaml:"width,omitempty"`

	// RowHeight is the per-service row height in pixels.
	RowHeight int `yaml:"row_height,omitempty"`

	// UpColor and DownColor are hex colors for the status bars.
	UpColor   string `yaml:"up_color,omitempty"`
	DownColor string `yaml:"down_color,omitempty"`

	// Title is drawn above the chart.
	Title string `yaml:"title,omitempty"`
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerOnDowntime fires only when DOWN events were extracted (default).
	WebhookTriggerOnDowntime WebhookTrigger = "on_downtime"
	// WebhookTriggerAlways fires after every extraction.
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines a webhook endpoint for sending extraction reports.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token for authentication.
	Token string `yaml:"token,omitempty"`

	// Trigger determines when the webhook fires.
	// Defaults to "on_downtime" if not specified.
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout.
	// Defaults to 10s if not specified.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}
