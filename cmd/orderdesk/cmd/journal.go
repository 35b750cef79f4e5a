package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/orderdesk/journal"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query the submission journal",
	Long: `Query and display journal records from the SQLite database.

Subcommands:
  list    - List recent submissions
  ticket  - Show the submission and closes for a ticket

Examples:
  orderdesk journal list
  orderdesk journal ticket 1001`,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent submissions",
	Args:  cobra.NoArgs,
	RunE:  runJournalList,
}

var journalTicketCmd = &cobra.Command{
	Use:   "ticket <ticket>",
	Short: "Show the submission and closes for a ticket",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalTicket,
}

var journalLimit int

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalTicketCmd)

	journalListCmd.Flags().IntVarP(&journalLimit, "limit", "n", 20, "maximum submissions to list")
}

func openJournalDB() (*journal.SQLite, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Journal.Type != "sqlite" {
		return nil, fmt.Errorf("journal queries need journal.type 'sqlite', have %q", cfg.Journal.Type)
	}
	return journal.NewSQLite(cfg.Journal.DBPath)
}

func runJournalList(cmd *cobra.Command, args []string) error {
	j, err := openJournalDB()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	recs, err := j.ListSubmissions(journalLimit)
	if err != nil {
		return fmt.Errorf("query submissions: %w", err)
	}

	fmt.Printf("%-8s %-10s %-5s %8s %10s %-9s %s\n",
		"TICKET", "INSTRUMENT", "SIDE", "VOLUME", "PRICE", "STATUS", "TIME")
	for _, r := range recs {
		fmt.Printf("%-8d %-10s %-5s %8.2f %10.5f %-9s %s\n",
			r.Ticket, r.Instrument, r.Side, r.Volume, r.Price, r.Status,
			r.Time.Format(time.RFC3339))
	}
	return nil
}

func runJournalTicket(cmd *cobra.Command, args []string) error {
	ticket, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("ticket must be an integer: %w", err)
	}

	j, err := openJournalDB()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	sub, err := j.GetSubmission(ticket)
	if err != nil {
		return fmt.Errorf("get submission: %w", err)
	}

	fmt.Printf("ticket:      %d\n", sub.Ticket)
	fmt.Printf("instrument:  %s\n", sub.Instrument)
	fmt.Printf("side:        %s\n", sub.Side)
	fmt.Printf("volume:      %.2f\n", sub.Volume)
	fmt.Printf("price:       %.5f\n", sub.Price)
	fmt.Printf("stop loss:   %.5f\n", sub.StopLoss)
	fmt.Printf("take profit: %.5f\n", sub.TakeProfit)
	fmt.Printf("status:      %s (code %d)\n", sub.Status, sub.Code)
	if sub.Comment != "" {
		fmt.Printf("comment:     %s\n", sub.Comment)
	}
	fmt.Printf("time:        %s\n", sub.Time.Format(time.RFC3339))

	closes, err := j.ListClosesByTicket(ticket)
	if err != nil {
		return fmt.Errorf("query closes: %w", err)
	}
	for _, c := range closes {
		fmt.Printf("closed:      %.5f profit %.2f (%s) at %s\n",
			c.ClosePrice, c.Profit, c.Reason, c.Time.Format(time.RFC3339))
	}
	return nil
}
