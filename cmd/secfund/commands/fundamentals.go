package commands

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// fundamentalsCmd represents the fundamentals command
var fundamentalsCmd = &cobra.Command{
	Use:   "fundamentals <ticker>",
	Short: "Print the fundamentals report for a ticker",
	Long: `Builds the full fundamentals report for one ticker and prints it
as JSON to stdout.

Example:
  go run ./cmd/secfund fundamentals AAPL`,
	Args: cobra.ExactArgs(1),
	RunE: runFundamentals,
}

func init() {
	rootCmd.AddCommand(fundamentalsCmd)
}

func runFundamentals(cmd *cobra.Command, args []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	report, err := d.service.Fundamentals(ctx, args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
