package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultValidates(t *testing.T) {
	t.Parallel()

	assert.NoError(t, Default().Validate())
}

func TestValidateRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad venue kind", func(c *Config) { c.Venue.Kind = "paper" }},
		{"remote without base url", func(c *Config) { c.Venue.Kind = "remote"; c.Venue.TokenEnv = "TOKEN" }},
		{"remote without token env", func(c *Config) { c.Venue.Kind = "remote"; c.Venue.BaseURL = "https://x" }},
		{"missing currency", func(c *Config) { c.Account.Currency = "" }},
		{"bad journal type", func(c *Config) { c.Journal.Type = "parquet" }},
		{"sqlite without path", func(c *Config) { c.Journal.DBPath = "" }},
		{"csv without files", func(c *Config) { c.Journal.Type = "csv" }},
		{"unknown sim instrument", func(c *Config) { c.Sim.Ticks[0].Instrument = "DOGE_USD" }},
		{"inverted sim prices", func(c *Config) { c.Sim.Ticks[0].Bid = 2; c.Sim.Ticks[0].Ask = 1 }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFromFileYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "desk.yaml")
	data := `
venue:
  kind: remote
  base_url: https://gateway.example.com
  token_env: ORDERDESK_TOKEN
account:
  id: ACC-7
  currency: USD
journal:
  type: none
logging:
  level: debug
`
	assert.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "remote", cfg.Venue.Kind)
	assert.Equal(t, "https://gateway.example.com", cfg.Venue.BaseURL)
	assert.Equal(t, "ACC-7", cfg.Account.ID)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "desk.yaml")
	cfg := Default()
	cfg.Account.ID = "ROUND-1"

	assert.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "ROUND-1", got.Account.ID)
	assert.Equal(t, cfg.Journal.DBPath, got.Journal.DBPath)
}
