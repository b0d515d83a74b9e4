package v1alpha1

import (
	"bytes"
	"encoding/json"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/trait-forge/internal/entities/collection"
	"github.com/KirkDiggler/trait-forge/internal/entities/traits"
	"github.com/KirkDiggler/trait-forge/internal/errors"
)

// ResolveAttributesRequest is the document accepted by ResolveAttributes
type ResolveAttributesRequest struct {
	Seed       string             `json:"seed"`
	Attributes []traits.Attribute `json:"attributes,omitempty"`
}

// ResolveAttributesResponse is the document returned by ResolveAttributes
type ResolveAttributesResponse struct {
	Attributes []traits.Attribute `json:"attributes"`
	Hash       string             `json:"hash"`
}

// GenerateCollectionRequest is the document accepted by GenerateCollection
type GenerateCollectionRequest struct {
	Seed       string `json:"seed"`
	Size       int    `json:"size,omitempty"`
	TTLSeconds int64  `json:"ttl_seconds,omitempty"`
}

// RunResponse carries one run summary
type RunResponse struct {
	Run *collection.Run `json:"run"`
}

// GetRunRequest is the document accepted by GetRun
type GetRunRequest struct {
	RunID string `json:"run_id"`
}

// GetTokenRequest is the document accepted by GetToken
type GetTokenRequest struct {
	RunID   string `json:"run_id"`
	TokenID int    `json:"token_id"`
}

// GetTokenResponse carries one token
type GetTokenResponse struct {
	Token *collection.Token `json:"token"`
}

// ListRunsRequest is the document accepted by ListRuns
type ListRunsRequest struct {
	Seed string `json:"seed"`
}

// ListRunsResponse carries the runs of a seed
type ListRunsResponse struct {
	Runs []*collection.Run `json:"runs"`
}

// Decode reads a Struct into a typed request, rejecting unknown fields
func Decode(in *structpb.Struct, out interface{}) error {
	if in == nil {
		return errors.InvalidArgument("request is required")
	}

	data, err := in.MarshalJSON()
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read request")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed request")
	}
	return nil
}

// Encode renders a typed message as a Struct
func Encode(in interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(in)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}

	out := new(structpb.Struct)
	if err := out.UnmarshalJSON(data); err != nil {
		return nil, errors.Wrap(err, "failed to encode message")
	}
	return out, nil
}
