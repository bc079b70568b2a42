// Package main is the entry point for the encounter API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "encounter-api",
	Short: "Three Worlds encounter server",
	Long:  `encounter-api runs turn-based Three Worlds encounters: save slots, Fate deck resolution, enemy intents, and an archive of finished runs.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
}
