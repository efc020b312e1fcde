// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags or environment variables.
type Config struct {
	// Backend
	BaseURL  string `json:"base_url,omitempty"`  // Admin backend base URL
	APIToken string `json:"api_token,omitempty"` // Bearer token for admin endpoints

	// Behavior
	TimeoutSeconds   int  `json:"timeout_seconds,omitempty"`   // HTTP request timeout
	PageSize         int  `json:"page_size,omitempty"`         // Default list page size
	Verbose          bool `json:"verbose,omitempty"`           // Print detailed debug information
	ValidatePayloads bool `json:"validate_payloads,omitempty"` // Schema-check backend responses
}

// Defaults returns the built-in configuration applied underneath file and
// environment values.
func Defaults() Config {
	return Config{
		TimeoutSeconds: 30,
		PageSize:       10,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overlays well-known environment variables onto the config.
// Environment values win over file values so deployments can override
// checked-in config without editing it.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("TALENT_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("TALENT_API_TOKEN"); v != "" {
		c.APIToken = v
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("config error: 'base_url' is not a valid URL: %s", c.BaseURL)
		}
	}

	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}
	if c.PageSize < 0 {
		return fmt.Errorf("config error: 'page_size' must be non-negative")
	}
	if c.PageSize > 100 {
		return fmt.Errorf("config error: 'page_size' must be at most 100")
	}

	return nil
}

// MergeWithDefaults returns a new Config with zero-value fields filled from
// defaults. This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.BaseURL == "" {
		result.BaseURL = defaults.BaseURL
	}
	if result.APIToken == "" {
		result.APIToken = defaults.APIToken
	}

	// Int fields: use default if zero
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}
	if result.PageSize == 0 {
		result.PageSize = defaults.PageSize
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}
