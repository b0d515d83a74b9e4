package collectionrun

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/trait-forge/internal/entities/collection"
	"github.com/KirkDiggler/trait-forge/internal/errors"
	redisclient "github.com/KirkDiggler/trait-forge/internal/redis"
)

const (
	// Key patterns: collection_run:{<id>}, collection_run:{<id>}:tokens, collection_run:seed:<seed>.
	// The braces are a cluster hash tag so a run and its tokens share a slot.
	runKeyPrefix    = "collection_run:"
	tokensKeySuffix = ":tokens"
	seedIndexPrefix = "collection_run:seed:"

	// Error messages
	errRunNil        = "run cannot be nil"
	errRunIDEmpty    = "run ID cannot be empty"
	errSeedEmpty     = "seed cannot be empty"
	errTokenIDRange  = "token ID must be positive"
	errTokenNil      = "token cannot be nil"
	errTokenMismatch = "token belongs to a different run"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	logger *slog.Logger
}

// NewRedis creates a Redis-backed run repository
func NewRedis(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &redisRepository{
		client: cfg.Client,
		logger: logger,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a run summary and all of its tokens atomically, then indexes the run by seed
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Run == nil {
		return nil, errors.InvalidArgument(errRunNil)
	}
	if input.Run.ID == "" {
		return nil, errors.InvalidArgument(errRunIDEmpty)
	}

	key := runKey(input.Run.ID)

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("run with ID %s already exists", input.Run.ID)
	}

	runJSON, err := json.Marshal(input.Run)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal run")
	}

	fields := make(map[string]interface{}, len(input.Tokens))
	for _, tok := range input.Tokens {
		if tok == nil {
			return nil, errors.InvalidArgument(errTokenNil)
		}
		if tok.RunID != input.Run.ID {
			return nil, errors.InvalidArgument(errTokenMismatch).
				WithMeta("token_id", tok.TokenID)
		}
		tokJSON, err := json.Marshal(tok)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal token %d", tok.TokenID)
		}
		fields[strconv.Itoa(tok.TokenID)] = tokJSON
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, runJSON, input.TTL)
	if len(fields) > 0 {
		pipe.HSet(ctx, tokensKey(input.Run.ID), fields)
		if input.TTL > 0 {
			pipe.Expire(ctx, tokensKey(input.Run.ID), input.TTL)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to store run")
	}

	// the seed index lives in another slot
	if input.Run.Seed != "" {
		if err := r.client.SAdd(ctx, seedIndexKey(input.Run.Seed), input.Run.ID).Err(); err != nil {
			if delErr := r.client.Del(ctx, key, tokensKey(input.Run.ID)).Err(); delErr != nil {
				r.logger.WarnContext(ctx, "failed to roll back unindexed run",
					"run_id", input.Run.ID,
					"error", delErr)
			}
			return nil, errors.Wrapf(err, "failed to index run")
		}
	}

	r.logger.DebugContext(ctx, "stored collection run",
		"run_id", input.Run.ID,
		"tokens", len(fields))

	return &CreateOutput{Run: input.Run}, nil
}

// Get retrieves a run summary
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.RunID == "" {
		return nil, errors.InvalidArgument(errRunIDEmpty)
	}

	result, err := r.client.Get(ctx, runKey(input.RunID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("run with ID %s not found", input.RunID)
		}
		return nil, errors.Wrapf(err, "failed to get run")
	}

	var run collection.Run
	if err := json.Unmarshal([]byte(result), &run); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal run")
	}

	return &GetOutput{Run: &run}, nil
}

// GetToken retrieves a single token by its 1-based ID
func (r *redisRepository) GetToken(ctx context.Context, input GetTokenInput) (*GetTokenOutput, error) {
	if input.RunID == "" {
		return nil, errors.InvalidArgument(errRunIDEmpty)
	}
	if input.TokenID < 1 {
		return nil, errors.InvalidArgument(errTokenIDRange)
	}

	result, err := r.client.HGet(ctx, tokensKey(input.RunID), strconv.Itoa(input.TokenID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("token %d of run %s not found", input.TokenID, input.RunID)
		}
		return nil, errors.Wrapf(err, "failed to get token")
	}

	var tok collection.Token
	if err := json.Unmarshal([]byte(result), &tok); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal token")
	}

	return &GetTokenOutput{Token: &tok}, nil
}

// ListBySeed returns every stored run generated from a seed
func (r *redisRepository) ListBySeed(ctx context.Context, input ListBySeedInput) (*ListBySeedOutput, error) {
	if input.Seed == "" {
		return nil, errors.InvalidArgument(errSeedEmpty)
	}

	indexKey := seedIndexKey(input.Seed)
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get run IDs from index")
	}
	if len(ids) == 0 {
		return &ListBySeedOutput{Runs: []*collection.Run{}}, nil
	}

	// one GET per run; run keys hash to different slots
	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, runKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to get runs")
	}

	runs := make([]*collection.Run, 0, len(cmds))
	for i, cmd := range cmds {
		str, err := cmd.Result()
		if err == redis.Nil {
			// expired run, drop it from the index
			if err := r.client.SRem(ctx, indexKey, ids[i]).Err(); err != nil {
				r.logger.WarnContext(ctx, "failed to prune seed index",
					"seed", input.Seed,
					"run_id", ids[i],
					"error", err)
			}
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to get run %s", ids[i])
		}

		var run collection.Run
		if err := json.Unmarshal([]byte(str), &run); err != nil {
			r.logger.WarnContext(ctx, "skipping unreadable run",
				"run_id", ids[i],
				"error", err)
			continue
		}
		runs = append(runs, &run)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.Before(runs[j].CreatedAt)
	})

	return &ListBySeedOutput{Runs: runs}, nil
}

// Delete removes a run and its tokens
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.RunID == "" {
		return nil, errors.InvalidArgument(errRunIDEmpty)
	}

	got, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	count, err := r.client.HLen(ctx, tokensKey(input.RunID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to count tokens")
	}

	if err := r.client.Del(ctx, runKey(input.RunID), tokensKey(input.RunID)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete run")
	}
	if got.Run.Seed != "" {
		// a stale index entry is pruned by the next ListBySeed
		if err := r.client.SRem(ctx, seedIndexKey(got.Run.Seed), input.RunID).Err(); err != nil {
			r.logger.WarnContext(ctx, "failed to prune seed index",
				"seed", got.Run.Seed,
				"run_id", input.RunID,
				"error", err)
		}
	}

	return &DeleteOutput{TokensDeleted: count}, nil
}

func runKey(runID string) string {
	return runKeyPrefix + "{" + runID + "}"
}

func tokensKey(runID string) string {
	return runKey(runID) + tokensKeySuffix
}

func seedIndexKey(seed string) string {
	return seedIndexPrefix + seed
}
