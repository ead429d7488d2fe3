package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.Source.Sender == "" {
		return errors.New("source.sender: sender identity is required")
	}

	if err := validateChart(&cfg.Chart); err != nil {
		return fmt.Errorf("chart: %w", err)
	}

	// Webhooks are optional, but validate if present
	for i := range cfg.Webhooks {
		if err := validateWebhook(&cfg.Webhooks[i]); err != nil {
			name := cfg.Webhooks[i].Name
			if name == "" {
				name = cfg.Webhooks[i].URL
			}
			return fmt.Errorf("webhooks[%d] (%s): %w", i, name, err)
		}
	}

	return nil
}

func validateChart(ch *ChartConfig) error {
	if ch.Output == "" {
		return errors.New("output path is required")
	}

	if ch.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", ch.Width)
	}

	if ch.RowHeight <= 0 {
		return fmt.Errorf("row_height must be positive, got %d", ch.RowHeight)
	}

	for _, c := range []string{ch.UpColor, ch.DownColor} {
		if c != "" && !hexColorPattern.MatchString(c) {
			return fmt.Errorf("invalid color %q (expected #RRGGBB)", c)
		}
	}

	return nil
}

func validateWebhook(wh *WebhookConfig) error {
	if wh.URL == "" {
		return errors.New("url is required")
	}

	u, err := url.Parse(wh.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}

	switch wh.Trigger {
	case "", WebhookTriggerOnDowntime, WebhookTriggerAlways, WebhookTriggerNever:
	default:
		return fmt.Errorf("invalid trigger %q (must be on_downtime, always, or never)", wh.Trigger)
	}

	if wh.Trigger == "" {
		wh.Trigger = WebhookTriggerOnDowntime
	}

	if wh.Timeout <= 0 {
		wh.Timeout = DefaultWebhookTimeout
	}

	return nil
}
