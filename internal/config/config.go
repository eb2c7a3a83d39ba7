package config

import (
	"time"

	"github.com/proyectoslancha/pattymoda/internal/apiclient"
	"github.com/proyectoslancha/pattymoda/pkg/logger"
)

// Config holds the storefront client configuration.
type Config struct {
	APIURL    string `mapstructure:"api_url"`
	AuthToken string `mapstructure:"auth_token"`
	Timeout   int    `mapstructure:"timeout"` // seconds
	UserAgent string `mapstructure:"user_agent"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// MetricsTextfile, when set, receives the request metrics in Prometheus
	// text format after each run (node_exporter textfile collector).
	MetricsTextfile string `mapstructure:"metrics_textfile"`
}

// ClientConfig maps the settings onto the shared API client.
func (c *Config) ClientConfig() apiclient.Config {
	return apiclient.Config{
		BaseURL:   c.APIURL,
		Token:     c.AuthToken,
		Timeout:   time.Duration(c.Timeout) * time.Second,
		UserAgent: c.UserAgent,
	}
}

// LoggerConfig maps the settings onto the logger.
func (c *Config) LoggerConfig(component, version string) logger.LoggerConfig {
	cfg := logger.DefaultConfig()
	cfg.Level = logger.LogLevel(c.LogLevel)
	cfg.Format = logger.OutputFormat(c.LogFormat)
	cfg.Component = component
	cfg.Version = version
	return cfg
}
