// Package main is the entry point for the trait-forge server and CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/trait-forge/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "trait-forge",
	Short: "Constrained random trait generator",
	Long: `trait-forge draws weighted, rule-constrained attribute sets for a token collection,
persists generated runs to Redis and serves them over gRPC.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
