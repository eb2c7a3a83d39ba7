package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/viper"

	apperrors "github.com/proyectoslancha/pattymoda/pkg/errors"
)

// Loader handles configuration loading from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{
		v: viper.New(),
	}
}

// Viper exposes the underlying instance so commands can bind their flags.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// Load loads configuration from files and environment variables.
func (l *Loader) Load() (*Config, error) {
	l.setDefaults()
	l.setupConfigPaths()
	l.setupEnvVars()

	// The config file is optional; defaults and env vars are enough.
	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, apperrors.NewConfigError(apperrors.ErrCodeConfiguration, "error reading config file", err)
		}
	}

	return l.unmarshal()
}

// LoadWithPath loads configuration from a specific file path.
func (l *Loader) LoadWithPath(path string) (*Config, error) {
	l.setDefaults()
	l.setupEnvVars()
	l.v.SetConfigFile(path)

	if err := l.v.ReadInConfig(); err != nil {
		return nil, apperrors.NewConfigError(apperrors.ErrCodeConfiguration,
			fmt.Sprintf("error reading config file %s", path), err)
	}

	return l.unmarshal()
}

func (l *Loader) unmarshal() (*Config, error) {
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, apperrors.NewConfigError(apperrors.ErrCodeConfiguration, "failed to unmarshal config", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, apperrors.NewConfigError(apperrors.ErrCodeValidation, "configuration validation failed", err)
	}

	return &cfg, nil
}

func (l *Loader) setDefaults() {
	l.v.SetDefault("api_url", "http://localhost:8080/api")
	l.v.SetDefault("auth_token", "")
	l.v.SetDefault("timeout", 30)
	l.v.SetDefault("user_agent", "storefront-client/1.0")
	l.v.SetDefault("log_level", "info")
	l.v.SetDefault("log_format", "text")
	l.v.SetDefault("metrics_textfile", "")
}

func (l *Loader) setupConfigPaths() {
	l.v.SetConfigName(".storefront")
	l.v.SetConfigType("yaml")

	// Search paths in priority order
	l.v.AddConfigPath("/etc/storefront")
	if home, err := os.UserHomeDir(); err == nil {
		l.v.AddConfigPath(home)
	}
	l.v.AddConfigPath(".")
}

func (l *Loader) setupEnvVars() {
	l.v.SetEnvPrefix("STOREFRONT")
	l.v.AutomaticEnv()
}

func validate(cfg *Config) error {
	if cfg.APIURL == "" {
		return fmt.Errorf("api_url is required")
	}
	u, err := url.Parse(cfg.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api_url must be an absolute URL, got %q", cfg.APIURL)
	}

	if cfg.Timeout < 1 {
		return fmt.Errorf("timeout must be at least 1 second")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.LogLevel] {
		return fmt.Errorf("invalid log_level: %s (must be debug, info, warn, or error)", cfg.LogLevel)
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return fmt.Errorf("invalid log_format: %s (must be text or json)", cfg.LogFormat)
	}

	return nil
}
