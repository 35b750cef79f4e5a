package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/orderdesk/market"
)

// Config is the complete desk configuration.
type Config struct {
	Venue   VenueConfig   `json:"venue" yaml:"venue"`
	Account AccountConfig `json:"account" yaml:"account"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Sim     SimConfig     `json:"sim" yaml:"sim"`
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// VenueConfig selects and parameterizes the execution venue.
type VenueConfig struct {
	Kind     string `json:"kind" yaml:"kind"` // "sim" or "remote"
	BaseURL  string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	TokenEnv string `json:"token_env,omitempty" yaml:"token_env,omitempty"`
}

// AccountConfig identifies the trading account.
type AccountConfig struct {
	ID       string `json:"id" yaml:"id"`
	Currency string `json:"currency" yaml:"currency"`
}

// JournalConfig contains journaling parameters.
type JournalConfig struct {
	Type            string `json:"type" yaml:"type"` // "csv", "sqlite" or "none"
	SubmissionsFile string `json:"submissions_file,omitempty" yaml:"submissions_file,omitempty"`
	ClosesFile      string `json:"closes_file,omitempty" yaml:"closes_file,omitempty"`
	DBPath          string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// SimConfig seeds the simulated venue with initial prices.
type SimConfig struct {
	Ticks []TickConfig `json:"ticks,omitempty" yaml:"ticks,omitempty"`
}

type TickConfig struct {
	Instrument string  `json:"instrument" yaml:"instrument"`
	Bid        float64 `json:"bid" yaml:"bid"`
	Ask        float64 `json:"ask" yaml:"ask"`
}

// LoggingConfig controls log level and optional rotated file output.
type LoggingConfig struct {
	Level      string `json:"level" yaml:"level"`
	File       string `json:"file,omitempty" yaml:"file,omitempty"`
	MaxSizeMB  int    `json:"max_size_mb,omitempty" yaml:"max_size_mb,omitempty"`
	MaxBackups int    `json:"max_backups,omitempty" yaml:"max_backups,omitempty"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Venue.Kind {
	case "sim":
	case "remote":
		if c.Venue.BaseURL == "" {
			return fmt.Errorf("venue.base_url is required for remote venue")
		}
		if c.Venue.TokenEnv == "" {
			return fmt.Errorf("venue.token_env is required for remote venue")
		}
	default:
		return fmt.Errorf("venue.kind must be 'sim' or 'remote'")
	}

	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}

	switch c.Journal.Type {
	case "none":
	case "csv":
		if c.Journal.SubmissionsFile == "" || c.Journal.ClosesFile == "" {
			return fmt.Errorf("journal submissions_file and closes_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'csv', 'sqlite' or 'none'")
	}

	for _, t := range c.Sim.Ticks {
		if !market.Known(t.Instrument) {
			return fmt.Errorf("unknown instrument: %s", t.Instrument)
		}
		if t.Bid <= 0 || t.Ask <= 0 {
			return fmt.Errorf("sim prices for %s must be positive", t.Instrument)
		}
		if t.Ask < t.Bid {
			return fmt.Errorf("sim ask must not be below bid for %s", t.Instrument)
		}
	}

	return nil
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Venue: VenueConfig{
			Kind: "sim",
		},
		Account: AccountConfig{
			ID:       "SIM-001",
			Currency: "USD",
		},
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./orderdesk.sqlite",
		},
		Sim: SimConfig{
			Ticks: []TickConfig{
				{Instrument: "EUR_USD", Bid: 1.0849, Ask: 1.0851},
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
