package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var profitCmd = &cobra.Command{
	Use:   "profit <ticket>",
	Short: "Look up a position's profit/loss by ticket",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfit,
}

func init() {
	rootCmd.AddCommand(profitCmd)
}

func runProfit(cmd *cobra.Command, args []string) error {
	ticket, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("ticket must be an integer: %w", err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	d, cleanup, err := buildDesk(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	pl, ok := d.Profit(context.Background(), ticket)
	if !ok {
		return fmt.Errorf("position %d not found", ticket)
	}

	fmt.Printf("position %d profit: %.2f %s\n", ticket, pl, cfg.Account.Currency)
	return nil
}
