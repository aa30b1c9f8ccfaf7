package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"gopkg.in/yaml.v3"

	"github.com/gravitrone/kardex/internal/feed"
)

const (
	// DefaultRefreshInterval is how often the feed is re-fetched in the
	// background.
	DefaultRefreshInterval = 6 * time.Hour

	// DefaultRequestTimeout bounds a single fetch.
	DefaultRequestTimeout = 30 * time.Second
)

// Config holds CLI configuration stored at ~/.kardex/config. Durations are
// stored as strings ("6h", "90s") so the file stays hand-editable.
type Config struct {
	FeedURL         string `yaml:"feed_url"`
	RefreshInterval string `yaml:"refresh_interval,omitempty"`
	RequestTimeout  string `yaml:"request_timeout,omitempty"`
}

// Path returns the config file path.
func Path() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".kardex", "config")
}

// Default returns a config with every field at its default.
func Default() *Config {
	return &Config{FeedURL: feed.DefaultFeedURL}
}

// Load reads the config file, falling back to defaults when it is missing,
// then applies environment overrides and validates. A present-but-broken file
// is an error; a missing file is not.
func Load() (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path())
	switch {
	case os.IsNotExist(err):
		// defaults
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		if cfg.FeedURL == "" {
			cfg.FeedURL = feed.DefaultFeedURL
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv lets the environment (or a .env file, loaded by godotenv in main)
// override the file.
func applyEnv(cfg *Config) {
	if v := os.Getenv("KARDEX_FEED_URL"); v != "" {
		cfg.FeedURL = v
	}
	if v := os.Getenv("KARDEX_REFRESH_INTERVAL"); v != "" {
		cfg.RefreshInterval = v
	}
	if v := os.Getenv("KARDEX_REQUEST_TIMEOUT"); v != "" {
		cfg.RequestTimeout = v
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.FeedURL, validation.Required, is.URL),
		validation.Field(&c.RefreshInterval, validation.By(durationRule(time.Minute))),
		validation.Field(&c.RequestTimeout, validation.By(durationRule(time.Second))),
	)
}

func durationRule(min time.Duration) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if s == "" {
			return nil
		}
		d, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q", s)
		}
		if d < min {
			return fmt.Errorf("duration %q below minimum %s", s, min)
		}
		return nil
	}
}

// Interval returns the refresh interval, defaulted when unset.
func (c *Config) Interval() time.Duration {
	if d, err := time.ParseDuration(c.RefreshInterval); err == nil && d > 0 {
		return d
	}
	return DefaultRefreshInterval
}

// Timeout returns the per-request timeout, defaulted when unset.
func (c *Config) Timeout() time.Duration {
	if d, err := time.ParseDuration(c.RequestTimeout); err == nil && d > 0 {
		return d
	}
	return DefaultRequestTimeout
}

// Save writes the config to disk with secure permissions.
func (c *Config) Save() error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
