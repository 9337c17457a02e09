package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "secfund",
	Short: "SEC EDGAR fundamentals and REIT occupancy engine",
	Long: `secfund - SEC financial data toolkit

Resolves SEC EDGAR company facts into consistent annual fundamentals,
computes 30+ validated ratios, and mines REIT occupancy rates from
recent filings.

Usage:
  go run ./cmd/secfund [command]

Examples:
  go run ./cmd/secfund api
  go run ./cmd/secfund fundamentals AAPL
  go run ./cmd/secfund occupancy O
  go run ./cmd/secfund smoke`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
