package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/orderdesk/config"
	"github.com/rustyeddy/orderdesk/desk"
	"github.com/rustyeddy/orderdesk/internal/logging"
	"github.com/rustyeddy/orderdesk/journal"
	"github.com/rustyeddy/orderdesk/market"
	"github.com/rustyeddy/orderdesk/remote"
	"github.com/rustyeddy/orderdesk/sim"
	"github.com/rustyeddy/orderdesk/venue"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "orderdesk",
	Short: "Submit market orders and track positions against an execution venue",
	Long: `Orderdesk is a small order-submission toolkit.

It provides tools for:
  - Building and submitting market deals with protective levels
  - Checking submission results and position profit/loss
  - Journaling every submission to SQLite or CSV
  - Running against a simulated venue or a remote gateway

Complete documentation is available at https://github.com/rustyeddy/orderdesk`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is fine; the remote token can come from anywhere.
		_ = godotenv.Load()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is built-in sim config)")
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadFromFile(cfgFile)
	}
	return config.Default(), nil
}

// buildDesk assembles venue, journal and logger per config. The returned
// cleanup closes the journal and must run on every path.
func buildDesk(cfg *config.Config) (*desk.Desk, func(), error) {
	j, err := buildJournal(cfg.Journal)
	if err != nil {
		return nil, nil, err
	}

	v, err := buildVenue(cfg, j)
	if err != nil {
		j.Close()
		return nil, nil, err
	}

	log := logging.New(cfg.Logging)
	cleanup := func() { _ = j.Close() }

	return desk.New(v, j, log), cleanup, nil
}

func buildJournal(cfg config.JournalConfig) (journal.Journal, error) {
	switch cfg.Type {
	case "sqlite":
		return journal.NewSQLite(cfg.DBPath)
	case "csv":
		return journal.NewCSV(cfg.SubmissionsFile, cfg.ClosesFile)
	}
	return journal.Nop{}, nil
}

func buildVenue(cfg *config.Config, j journal.Journal) (venue.Venue, error) {
	switch cfg.Venue.Kind {
	case "remote":
		token := os.Getenv(cfg.Venue.TokenEnv)
		if token == "" {
			return nil, fmt.Errorf("venue token: environment variable %s is not set", cfg.Venue.TokenEnv)
		}
		return remote.NewClient(cfg.Venue.BaseURL, token), nil
	case "sim":
		// Share the journal so sim auto-closes leave a record too.
		e := sim.NewEngine(j)
		for _, t := range cfg.Sim.Ticks {
			if err := e.UpdatePrice(market.Tick{Instrument: t.Instrument, Bid: t.Bid, Ask: t.Ask}); err != nil {
				return nil, fmt.Errorf("seed sim price: %w", err)
			}
		}
		return e, nil
	}
	return nil, fmt.Errorf("unknown venue kind %q", cfg.Venue.Kind)
}
