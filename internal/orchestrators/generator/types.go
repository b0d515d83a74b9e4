package generator

import (
	"time"

	"github.com/KirkDiggler/trait-forge/internal/entities/collection"
	"github.com/KirkDiggler/trait-forge/internal/entities/traits"
)

// Event types published on the event bus during generation
const (
	EventTokenGenerated = "token.generated"
	EventTokenDuplicate = "token.duplicate"
	EventUniquePlaced   = "unique.placed"
)

// GenerateCollectionInput defines the request for generating a collection
type GenerateCollectionInput struct {
	Seed string
	Size int           // zero uses the configured collection size
	TTL  time.Duration // zero keeps the run forever
}

// GenerateCollectionOutput defines the response for generating a collection
type GenerateCollectionOutput struct {
	Run    *collection.Run
	Tokens []*collection.Token
}

// ResolveAttributesInput defines the request for resolving one attribute set
type ResolveAttributesInput struct {
	Seed       string
	Predefined traits.Predefined
}

// ResolveAttributesOutput defines the response for resolving one attribute set
type ResolveAttributesOutput struct {
	Attributes []traits.Attribute
	Hash       string
}

// GetRunInput defines the request for getting a run
type GetRunInput struct {
	RunID string
}

// GetRunOutput defines the response for getting a run
type GetRunOutput struct {
	Run *collection.Run
}

// GetTokenInput defines the request for getting a token of a run
type GetTokenInput struct {
	RunID   string
	TokenID int
}

// GetTokenOutput defines the response for getting a token
type GetTokenOutput struct {
	Token *collection.Token
}

// ListRunsInput defines the request for listing the runs of a seed
type ListRunsInput struct {
	Seed string
}

// ListRunsOutput defines the response for listing runs
type ListRunsOutput struct {
	Runs []*collection.Run
}
