package v1alpha1

import (
	"context"
	"time"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/trait-forge/internal/errors"
	"github.com/KirkDiggler/trait-forge/internal/orchestrators/generator"
)

// HandlerConfig holds dependencies for the generator handler
type HandlerConfig struct {
	GeneratorService generator.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.GeneratorService == nil {
		return errors.InvalidArgument("generator service is required")
	}
	return nil
}

// Handler implements the generator gRPC service
type Handler struct {
	generatorService generator.Service
}

// NewHandler creates a new generator handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		generatorService: cfg.GeneratorService,
	}, nil
}

var _ GeneratorServiceServer = (*Handler)(nil)

// ResolveAttributes resolves one attribute set for a seed and optional pinned values
func (h *Handler) ResolveAttributes(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ResolveAttributesRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.Seed == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("seed is required"))
	}

	out, err := h.generatorService.ResolveAttributes(ctx, &generator.ResolveAttributesInput{
		Seed:       in.Seed,
		Predefined: in.Attributes,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ResolveAttributesResponse{
		Attributes: out.Attributes,
		Hash:       out.Hash,
	})
}

// GenerateCollection generates and stores a collection, returning its run summary
func (h *Handler) GenerateCollection(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in GenerateCollectionRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.Seed == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("seed is required"))
	}
	if in.TTLSeconds < 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("ttl_seconds must not be negative"))
	}

	out, err := h.generatorService.GenerateCollection(ctx, &generator.GenerateCollectionInput{
		Seed: in.Seed,
		Size: in.Size,
		TTL:  time.Duration(in.TTLSeconds) * time.Second,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&RunResponse{Run: out.Run})
}

// GetRun retrieves a stored run summary
func (h *Handler) GetRun(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in GetRunRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.RunID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("run_id is required"))
	}

	out, err := h.generatorService.GetRun(ctx, &generator.GetRunInput{RunID: in.RunID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&RunResponse{Run: out.Run})
}

// GetToken retrieves one stored token with its metadata record
func (h *Handler) GetToken(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in GetTokenRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.RunID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("run_id is required"))
	}
	if in.TokenID < 1 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("token_id must be at least 1"))
	}

	out, err := h.generatorService.GetToken(ctx, &generator.GetTokenInput{
		RunID:   in.RunID,
		TokenID: in.TokenID,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&GetTokenResponse{Token: out.Token})
}

// ListRuns lists the stored runs of a seed
func (h *Handler) ListRuns(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in ListRunsRequest
	if err := Decode(req, &in); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	if in.Seed == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("seed is required"))
	}

	out, err := h.generatorService.ListRuns(ctx, &generator.ListRunsInput{Seed: in.Seed})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return respond(&ListRunsResponse{Runs: out.Runs})
}

func respond(msg interface{}) (*structpb.Struct, error) {
	out, err := Encode(msg)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}
