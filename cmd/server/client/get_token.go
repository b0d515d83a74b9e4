package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/trait-forge/internal/handlers/generator/v1alpha1"
)

var getTokenCmd = &cobra.Command{
	Use:   "get-token [run-id] [token-id]",
	Short: "Get the metadata record of one token",
	Args:  cobra.ExactArgs(2),
	RunE:  runGetToken,
}

func runGetToken(_ *cobra.Command, args []string) error {
	tokenID, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid token ID %q: %w", args[1], err)
	}

	client, cleanup, err := createGeneratorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := v1alpha1.Encode(&v1alpha1.GetTokenRequest{RunID: args[0], TokenID: tokenID})
	if err != nil {
		return err
	}

	resp, err := client.GetToken(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to get token: %w", err)
	}

	return printResponse(resp, &v1alpha1.GetTokenResponse{})
}
