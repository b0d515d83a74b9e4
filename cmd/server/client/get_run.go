package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/trait-forge/internal/handlers/generator/v1alpha1"
)

var getRunCmd = &cobra.Command{
	Use:   "get-run [run-id]",
	Short: "Get a stored run summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runGetRun,
}

func runGetRun(_ *cobra.Command, args []string) error {
	client, cleanup, err := createGeneratorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := v1alpha1.Encode(&v1alpha1.GetRunRequest{RunID: args[0]})
	if err != nil {
		return err
	}

	resp, err := client.GetRun(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}

	return printResponse(resp, &v1alpha1.RunResponse{})
}
