package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/trait-forge/internal/entities/traits"
	"github.com/KirkDiggler/trait-forge/internal/handlers/generator/v1alpha1"
)

var (
	resolveSeed string
	resolvePins []string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve one attribute set",
	Long: `Resolve draws one attribute set from a fresh seeded stream. Categories can be
pinned with --set Category=Value; the rules may still change pinned values.`,
	Example: `  trait-forge client resolve --seed hello. --set Mouth=Drool --set "Hat=Third Eye"`,
	RunE:    runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveSeed, "seed", "", "Seed for the draw (required)")
	resolveCmd.Flags().StringArrayVar(&resolvePins, "set", nil, "Pin a category, as Category=Value")
	_ = resolveCmd.MarkFlagRequired("seed") // nolint:errcheck // safe to ignore in init
}

func runResolve(_ *cobra.Command, _ []string) error {
	predefined, err := parsePins(resolvePins)
	if err != nil {
		return err
	}

	client, cleanup, err := createGeneratorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := v1alpha1.Encode(&v1alpha1.ResolveAttributesRequest{
		Seed:       resolveSeed,
		Attributes: predefined,
	})
	if err != nil {
		return err
	}

	resp, err := client.ResolveAttributes(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to resolve attributes: %w", err)
	}

	return printResponse(resp, &v1alpha1.ResolveAttributesResponse{})
}

func parsePins(pins []string) ([]traits.Attribute, error) {
	attrs := make([]traits.Attribute, 0, len(pins))
	for _, pin := range pins {
		category, value, ok := strings.Cut(pin, "=")
		if !ok || category == "" {
			return nil, fmt.Errorf("invalid --set %q, expected Category=Value", pin)
		}
		attrs = append(attrs, traits.Attribute{TraitType: category, Value: value})
	}
	return attrs, nil
}
