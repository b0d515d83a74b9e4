package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/trait-forge/internal/handlers/generator/v1alpha1"
)

var (
	generateSeed string
	generateSize int
	generateTTL  time.Duration
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a collection on the server",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateSeed, "seed", "", "Seed for the run (required)")
	generateCmd.Flags().IntVar(&generateSize, "size", 0, "Collection size (server default when 0)")
	generateCmd.Flags().DurationVar(&generateTTL, "ttl", 0, "Expire the stored run after this long")
	_ = generateCmd.MarkFlagRequired("seed") // nolint:errcheck // safe to ignore in init
}

func runGenerate(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createGeneratorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := v1alpha1.Encode(&v1alpha1.GenerateCollectionRequest{
		Seed:       generateSeed,
		Size:       generateSize,
		TTLSeconds: int64(generateTTL / time.Second),
	})
	if err != nil {
		return err
	}

	resp, err := client.GenerateCollection(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to generate collection: %w", err)
	}

	return printResponse(resp, &v1alpha1.RunResponse{})
}
