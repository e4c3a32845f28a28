// Package config loads and validates scraper configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sih-tools/psgrab/internal/fetch"
)

// DefaultURL is the official SIH 2025 problem statement listing.
const DefaultURL = "https://www.sih.gov.in/sih2025PS"

// Config captures all configuration knobs, from defaults, an optional
// config file, and PSGRAB_* environment variables.
type Config struct {
	URL     string        `mapstructure:"url"`
	Output  OutputConfig  `mapstructure:"output"`
	HTTP    HTTPConfig    `mapstructure:"http"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// OutputConfig selects export formats and the shared base filename.
type OutputConfig struct {
	Base    string   `mapstructure:"base"`
	Formats []string `mapstructure:"formats"`
}

// HTTPConfig configures fetch timeout and retry behavior.
type HTTPConfig struct {
	TimeoutSeconds   int    `mapstructure:"timeout_seconds"`
	MaxRetries       int    `mapstructure:"max_retries"`
	BackoffInitialMs int    `mapstructure:"backoff_initial_ms"`
	BackoffMaxMs     int    `mapstructure:"backoff_max_ms"`
	UserAgent        string `mapstructure:"user_agent"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// Load builds a Config from defaults, an optional file, and the environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PSGRAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("url", DefaultURL)
	v.SetDefault("output.base", "sih2025_problem_statements")
	v.SetDefault("output.formats", []string{"csv", "json", "xlsx"})
	v.SetDefault("http.timeout_seconds", 30)
	v.SetDefault("http.max_retries", 3)
	v.SetDefault("http.backoff_initial_ms", 500)
	v.SetDefault("http.backoff_max_ms", 5000)
	v.SetDefault("http.user_agent", fetch.DefaultUserAgent)
	v.SetDefault("logging.development", false)
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("url must be set")
	}
	if c.Output.Base == "" {
		return fmt.Errorf("output.base must be set")
	}
	if len(c.Output.Formats) == 0 {
		return fmt.Errorf("output.formats must list at least one format")
	}
	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("http.timeout_seconds must be > 0")
	}
	if c.HTTP.MaxRetries < 0 {
		return fmt.Errorf("http.max_retries must be >= 0")
	}
	return nil
}

// FetchOptions converts the HTTP section into fetcher options.
func (c Config) FetchOptions() fetch.Options {
	return fetch.Options{
		Timeout:        time.Duration(c.HTTP.TimeoutSeconds) * time.Second,
		UserAgent:      c.HTTP.UserAgent,
		MaxRetries:     c.HTTP.MaxRetries,
		BackoffInitial: time.Duration(c.HTTP.BackoffInitialMs) * time.Millisecond,
		BackoffMax:     time.Duration(c.HTTP.BackoffMaxMs) * time.Millisecond,
	}
}
