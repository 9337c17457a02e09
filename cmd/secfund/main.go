package main

import (
	"os"

	"github.com/agarcia/secfund/cmd/secfund/commands"
)

// main is the entry point for the secfund CLI
func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
