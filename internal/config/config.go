// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jonathan/pitchkraft/internal/logging"
)

// Environment variables read by FromEnv.
const (
	EnvServiceURL   = "PITCHKRAFT_SERVICE_URL"
	EnvPort         = "PITCHKRAFT_PORT"
	EnvAPIKey       = "GEMINI_API_KEY"
	EnvDatabaseURL  = "DATABASE_URL"
	EnvPortfolioCSV = "PORTFOLIO_CSV"
	EnvLogLevel     = "LOG_LEVEL"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Client
	ServiceURL string `json:"service_url,omitempty"` // Base URL of the generation service

	// Service
	Port          int    `json:"port,omitempty"`            // Listen port for `serve`
	APIKey        string `json:"api_key,omitempty"`         // Gemini API key
	DatabaseURL   string `json:"database_url,omitempty"`    // PostgreSQL URL of the portfolio table
	PortfolioCSV  string `json:"portfolio_csv,omitempty"`   // Techstack,Links CSV file
	SenderName    string `json:"sender_name,omitempty"`     // Name the emails are signed with
	Agency        string `json:"agency,omitempty"`          // Agency the sender represents
	LinksPerSkill int    `json:"links_per_skill,omitempty"` // Portfolio links per skill

	// Behavior
	UseBrowser bool   `json:"use_browser,omitempty"` // Use headless browser for SPA sites
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed debug information
	LogLevel   string `json:"log_level,omitempty"`   // golog level name
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		ServiceURL:    "http://localhost:8000",
		Port:          8000,
		LinksPerSkill: 2,
		LogLevel:      "info",
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

// FromEnv builds a Config from environment variables. Unset variables leave
// fields empty so the result can be merged like a config file.
func FromEnv() Config {
	cfg := Config{
		ServiceURL:   os.Getenv(EnvServiceURL),
		APIKey:       os.Getenv(EnvAPIKey),
		DatabaseURL:  os.Getenv(EnvDatabaseURL),
		PortfolioCSV: os.Getenv(EnvPortfolioCSV),
		LogLevel:     os.Getenv(EnvLogLevel),
	}
	if port, err := strconv.Atoi(os.Getenv(EnvPort)); err == nil {
		cfg.Port = port
	}
	return cfg
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.DatabaseURL != "" && c.PortfolioCSV != "" {
		return fmt.Errorf("config error: 'database_url' and 'portfolio_csv' are mutually exclusive")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.LinksPerSkill < 0 {
		return fmt.Errorf("config error: 'links_per_skill' must be non-negative")
	}

	if c.LogLevel != "" && !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("config error: unknown 'log_level' %q", c.LogLevel)
	}

	if c.ServiceURL != "" {
		u, err := url.Parse(c.ServiceURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("config error: 'service_url' must be an absolute URL: %s", c.ServiceURL)
		}
	}

	if c.PortfolioCSV != "" {
		if _, err := os.Stat(c.PortfolioCSV); os.IsNotExist(err) {
			return fmt.Errorf("config error: portfolio file not found: %s", c.PortfolioCSV)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer config file, environment and built-in values under CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.ServiceURL == "" {
		result.ServiceURL = defaults.ServiceURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" && result.PortfolioCSV == "" {
		result.DatabaseURL = defaults.DatabaseURL
		result.PortfolioCSV = defaults.PortfolioCSV
	}
	if result.SenderName == "" {
		result.SenderName = defaults.SenderName
	}
	if result.Agency == "" {
		result.Agency = defaults.Agency
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.LinksPerSkill == 0 {
		result.LinksPerSkill = defaults.LinksPerSkill
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
