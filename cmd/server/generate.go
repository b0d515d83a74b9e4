package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/trait-forge/internal/config"
	"github.com/KirkDiggler/trait-forge/internal/orchestrators/generator"
)

var (
	generateSeed   string
	generateSize   int
	generateTTL    time.Duration
	generateTable  string
	generateOutput bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a collection locally and store it in Redis",
	Long: `Generate runs the full collection pipeline in-process: weighted draws, rule
resolution, deduplication and unique placement. The run is persisted to Redis and
its digest printed.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateSeed, "seed", "", "Seed for the run (overrides TRAITFORGE_SEED)")
	generateCmd.Flags().IntVar(&generateSize, "size", 0, "Collection size (overrides TRAITFORGE_SIZE)")
	generateCmd.Flags().DurationVar(&generateTTL, "ttl", 0, "Expire the stored run after this long (overrides TRAITFORGE_RUN_TTL)")
	generateCmd.Flags().StringVar(&generateTable, "weights", "", "YAML weight table (overrides TRAITFORGE_WEIGHT_TABLE)")
	generateCmd.Flags().BoolVar(&generateOutput, "print-run", false, "Print the run summary as JSON")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if generateSeed != "" {
		cfg.Seed = generateSeed
	}
	if generateSize != 0 {
		cfg.Size = generateSize
	}
	if generateTTL != 0 {
		cfg.RunTTL = generateTTL
	}
	if generateTable != "" {
		cfg.WeightTablePath = generateTable
	}
	if cfg.Seed == "" {
		return fmt.Errorf("a seed is required (--seed or TRAITFORGE_SEED)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	deps, err := buildDependencies(cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	started := time.Now()
	out, err := deps.generator.GenerateCollection(cmd.Context(), &generator.GenerateCollectionInput{
		Seed: cfg.Seed,
		Size: cfg.Size,
		TTL:  cfg.RunTTL,
	})
	if err != nil {
		return fmt.Errorf("failed to generate collection: %w", err)
	}

	run := out.Run
	if generateOutput {
		data, err := json.MarshalIndent(run, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Fprintf(os.Stdout, "Run ID:     %s\n", run.ID)
	fmt.Fprintf(os.Stdout, "Seed:       %s\n", run.Seed)
	fmt.Fprintf(os.Stdout, "Tokens:     %d\n", run.Tokens)
	fmt.Fprintf(os.Stdout, "Uniques:    %d\n", run.Uniques)
	fmt.Fprintf(os.Stdout, "Duplicates: %d\n", run.Duplicates)
	fmt.Fprintf(os.Stdout, "Digest:     %s\n", run.Digest)
	fmt.Fprintf(os.Stdout, "Elapsed:    %s\n", time.Since(started).Round(time.Millisecond))

	return nil
}
