package commands

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/spf13/cobra"
)

// occupancyCmd represents the occupancy command
var occupancyCmd = &cobra.Command{
	Use:   "occupancy <ticker>",
	Short: "Extract the occupancy rate from a REIT's recent filings",
	Long: `Scans the company's most recent 10-Q/10-K filings for an
occupancy or percent-leased figure and prints the best match as JSON.

Example:
  go run ./cmd/secfund occupancy O`,
	Args: cobra.ExactArgs(1),
	RunE: runOccupancy,
}

func init() {
	rootCmd.AddCommand(occupancyCmd)
}

func runOccupancy(cmd *cobra.Command, args []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := d.miner.Extract(ctx, args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
