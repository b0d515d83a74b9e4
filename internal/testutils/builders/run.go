// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/trait-forge/internal/entities/collection"
)

// RunBuilder provides a fluent interface for building test Run instances
type RunBuilder struct {
	run *collection.Run
}

// NewRunBuilder creates a new builder with minimal defaults
func NewRunBuilder() *RunBuilder {
	return &RunBuilder{
		run: &collection.Run{
			ID:        "run-test-123",
			Seed:      "seed-test-123",
			Settings:  collection.DefaultSettings(),
			CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		},
	}
}

// WithID sets the run ID
func (b *RunBuilder) WithID(id string) *RunBuilder {
	b.run.ID = id
	return b
}

// WithSeed sets the seed
func (b *RunBuilder) WithSeed(seed string) *RunBuilder {
	b.run.Seed = seed
	return b
}

// WithDigest sets the digest
func (b *RunBuilder) WithDigest(digest string) *RunBuilder {
	b.run.Digest = digest
	return b
}

// WithCounts sets the token, unique and duplicate counts
func (b *RunBuilder) WithCounts(tokens, uniques, duplicates int) *RunBuilder {
	b.run.Tokens = tokens
	b.run.Uniques = uniques
	b.run.Duplicates = duplicates
	return b
}

// WithCreatedAt sets the creation time
func (b *RunBuilder) WithCreatedAt(t time.Time) *RunBuilder {
	b.run.CreatedAt = t
	return b
}

// Build returns the built run
func (b *RunBuilder) Build() *collection.Run {
	return b.run
}
