package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/vitalog/internal/aggregate"
	"github.com/alexanderramin/vitalog/internal/domain"
	"github.com/alexanderramin/vitalog/internal/llm"
)

// Store backends.
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Config is the process configuration for the vitalog CLI.
type Config struct {
	// DataDir holds the JSON record files and the SQLite database.
	DataDir string `koanf:"data_dir"`

	// Store selects the persistence backend: json (default) or sqlite.
	Store string `koanf:"store"`

	// Weights optionally overrides the per-domain share of the Workday
	// Health Index. Domains with no current record are always skipped;
	// missing entries default to 1.0. Example (the original study's
	// weighting): mental: 0.22, recovery_sleep: 0.20, msk: 0.18,
	// eye: 0.15, hydration: 0.10, workspace: 0.08, baseline: 0.04,
	// longitudinal: 0.03.
	Weights map[string]float64 `koanf:"weights"`

	// LLM configures the optional local narrative generator.
	LLM LLMConfig `koanf:"llm"`
}

// LLMConfig mirrors the generator settings exposed in the config file.
type LLMConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Endpoint   string `koanf:"endpoint"`
	Model      string `koanf:"model"`
	TimeoutMs  int    `koanf:"timeout_ms"`
	MaxRetries int    `koanf:"max_retries"`
	LogCalls   bool   `koanf:"log_calls"`
}

// New creates a Config with defaults.
func New() *Config {
	base := llm.DefaultConfig()
	return &Config{
		DataDir: filepath.Join(homeDir(), ".vitalog", "data"),
		Store:   StoreJSON,
		LLM: LLMConfig{
			Enabled:    base.Enabled,
			Endpoint:   base.Endpoint,
			Model:      base.Model,
			TimeoutMs:  base.TimeoutMs,
			MaxRetries: base.MaxRetries,
			LogCalls:   base.LogCalls,
		},
	}
}

// DefaultPath is where Load looks for a config file when VITALOG_CONFIG
// is not set.
func DefaultPath() string {
	return filepath.Join(homeDir(), ".vitalog", "config.yaml")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// DBPath returns the SQLite database location under the data directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "vitalog.db")
}

// WHIWeights converts the configured weight table to aggregate weights.
func (c *Config) WHIWeights() aggregate.Weights {
	if len(c.Weights) == 0 {
		return nil
	}
	w := make(aggregate.Weights, len(c.Weights))
	for name, v := range c.Weights {
		w[domain.Domain(name)] = v
	}
	return w
}

// LLMClientConfig maps the file settings onto the generator client config,
// keeping the per-task defaults.
func (c *Config) LLMClientConfig() llm.Config {
	cfg := llm.DefaultConfig()
	cfg.Enabled = c.LLM.Enabled
	cfg.LogCalls = c.LLM.LogCalls
	if c.LLM.Endpoint != "" {
		cfg.Endpoint = c.LLM.Endpoint
	}
	if c.LLM.Model != "" {
		cfg.Model = c.LLM.Model
	}
	if c.LLM.TimeoutMs > 0 {
		cfg.TimeoutMs = c.LLM.TimeoutMs
	}
	if c.LLM.MaxRetries >= 0 {
		cfg.MaxRetries = c.LLM.MaxRetries
	}
	return cfg
}

// Validate fails fast on settings that would only surface mid-command:
// an unknown backend or a weight table naming unregistered domains.
func (c *Config) Validate() error {
	if c.Store != StoreJSON && c.Store != StoreSQLite {
		return fmt.Errorf("store must be %q or %q, got %q", StoreJSON, StoreSQLite, c.Store)
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir must not be empty")
	}
	for name, v := range c.Weights {
		if _, err := domain.ParseDomain(name); err != nil {
			return fmt.Errorf("weights: %w", err)
		}
		if v <= 0 {
			return fmt.Errorf("weights: %s must be positive, got %v", name, v)
		}
	}
	return nil
}
