package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/trait-forge/internal/handlers/generator/v1alpha1"
)

var listRunsCmd = &cobra.Command{
	Use:   "list-runs [seed]",
	Short: "List stored runs generated from a seed",
	Args:  cobra.ExactArgs(1),
	RunE:  runListRuns,
}

func runListRuns(_ *cobra.Command, args []string) error {
	client, cleanup, err := createGeneratorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := v1alpha1.Encode(&v1alpha1.ListRunsRequest{Seed: args[0]})
	if err != nil {
		return err
	}

	resp, err := client.ListRuns(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	return printResponse(resp, &v1alpha1.ListRunsResponse{})
}
