// Package collectionrun provides storage for generation runs and their tokens
package collectionrun

import (
	"context"
	"time"

	"github.com/KirkDiggler/trait-forge/internal/entities/collection"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=collectionrunmock github.com/KirkDiggler/trait-forge/internal/repositories/collection_run Repository

// CreateInput contains parameters for storing a run
type CreateInput struct {
	Run    *collection.Run
	Tokens []*collection.Token
	TTL    time.Duration // zero keeps the run forever
}

// CreateOutput contains the stored run
type CreateOutput struct {
	Run *collection.Run
}

// GetInput contains parameters for retrieving a run
type GetInput struct {
	RunID string
}

// GetOutput contains the run summary
type GetOutput struct {
	Run *collection.Run
}

// GetTokenInput contains parameters for retrieving one token of a run
type GetTokenInput struct {
	RunID   string
	TokenID int
}

// GetTokenOutput contains the token
type GetTokenOutput struct {
	Token *collection.Token
}

// ListBySeedInput contains parameters for finding runs of a seed
type ListBySeedInput struct {
	Seed string
}

// ListBySeedOutput contains the matching runs, oldest first
type ListBySeedOutput struct {
	Runs []*collection.Run
}

// DeleteInput contains parameters for deleting a run
type DeleteInput struct {
	RunID string
}

// DeleteOutput reports how many tokens were removed with the run
type DeleteOutput struct {
	TokensDeleted int64
}

// Repository defines the interface for run storage operations
type Repository interface {
	// Create stores a run summary and all of its tokens atomically
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a run summary
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetToken retrieves a single token by its 1-based ID
	GetToken(ctx context.Context, input GetTokenInput) (*GetTokenOutput, error)

	// ListBySeed returns every stored run generated from a seed
	ListBySeed(ctx context.Context, input ListBySeedInput) (*ListBySeedOutput, error)

	// Delete removes a run and its tokens
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
