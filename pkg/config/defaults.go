package config

import (
	"os"
	"time"

	"github.com/upgantt/upgantt/pkg/chart"
	"github.com/upgantt/upgantt/pkg/extract"
)

// Default values for configuration.
const (
	DefaultOutput         = "uptime_gantt.png"
	DefaultWebhookTimeout = 10 * time.Second
)

// Environment variable names.
const (
	EnvSender = "UPGANTT_SENDER"
	EnvOutput = "UPGANTT_OUTPUT"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Sender: extract.DefaultSender,
		},
		Chart: ChartConfig{
			Output:    DefaultOutput,
			Width:     chart.DefaultWidth,
			RowHeight: chart.DefaultRowHeight,
			UpColor:   chart.DefaultUpColor,
			DownColor: chart.DefaultDownColor,
			Title:     chart.DefaultTitle,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if sender := os.Getenv(EnvSender); sender != "" {
		c.Source.Sender = sender
	}
	if out := os.Getenv(EnvOutput); out != "" {
		c.Chart.Output = out
	}
}
