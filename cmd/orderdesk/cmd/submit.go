package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/orderdesk/order"
)

var submitFlags struct {
	instrument string
	side       string
	volume     float64
	price      float64
	stopLoss   float64
	takeProfit float64
	comment    string
}

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Build and submit a market deal",
	Long: `Build a market deal from the given parameters, submit it to the
configured venue and report the outcome.

Examples:
  orderdesk submit -i EUR_USD -s buy -v 0.5
  orderdesk submit -i EUR_USD -s sell -v 1 --sl 1.0950 --tp 1.0700 -m "fade the spike"`,
	RunE: runSubmit,
}

func init() {
	rootCmd.AddCommand(submitCmd)

	submitCmd.Flags().StringVarP(&submitFlags.instrument, "instrument", "i", "", "instrument to trade (e.g. EUR_USD)")
	submitCmd.Flags().StringVarP(&submitFlags.side, "side", "s", "", "deal side: buy or sell")
	submitCmd.Flags().Float64VarP(&submitFlags.volume, "volume", "v", 0, "deal volume in lots")
	submitCmd.Flags().Float64VarP(&submitFlags.price, "price", "p", 0, "requested price (advisory for market deals)")
	submitCmd.Flags().Float64Var(&submitFlags.stopLoss, "sl", 0, "stop-loss level (0 = none)")
	submitCmd.Flags().Float64Var(&submitFlags.takeProfit, "tp", 0, "take-profit level (0 = none)")
	submitCmd.Flags().StringVarP(&submitFlags.comment, "comment", "m", "", "free-text order comment")

	submitCmd.MarkFlagRequired("instrument")
	submitCmd.MarkFlagRequired("side")
	submitCmd.MarkFlagRequired("volume")
}

func runSubmit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	side, err := order.ParseSide(submitFlags.side)
	if err != nil {
		return err
	}

	d, cleanup, err := buildDesk(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	req := order.New(
		submitFlags.instrument,
		side,
		submitFlags.volume,
		submitFlags.price,
		submitFlags.stopLoss,
		submitFlags.takeProfit,
		submitFlags.comment,
	)

	res, err := d.Submit(context.Background(), req)
	if err != nil {
		return err
	}

	if ticket, ok := res.Check(); ok {
		fmt.Printf("order placed: ticket %d\n", ticket)
		return nil
	}

	fmt.Printf("order failed: %s (%s)\n", res.Status, res.Code)
	return nil
}
