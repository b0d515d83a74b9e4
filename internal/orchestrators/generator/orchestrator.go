// Package generator implements the orchestrator that turns a seed into a complete,
// deduplicated collection of token metadata
package generator

//go:generate mockgen -destination=mock/mock_service.go -package=generatormock github.com/KirkDiggler/trait-forge/internal/orchestrators/generator Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/trait-forge/internal/engine/resolver"
	"github.com/KirkDiggler/trait-forge/internal/entities/collection"
	"github.com/KirkDiggler/trait-forge/internal/entities/traits"
	"github.com/KirkDiggler/trait-forge/internal/errors"
	"github.com/KirkDiggler/trait-forge/internal/pkg/clock"
	"github.com/KirkDiggler/trait-forge/internal/pkg/idgen"
	"github.com/KirkDiggler/trait-forge/internal/pkg/random"
	collectionrun "github.com/KirkDiggler/trait-forge/internal/repositories/collection_run"
)

// DefaultMaxDuplicateRetries bounds consecutive duplicate draws for one slot
const DefaultMaxDuplicateRetries = 10000

// Service defines the interface for collection generation
type Service interface {
	GenerateCollection(ctx context.Context, input *GenerateCollectionInput) (*GenerateCollectionOutput, error)
	ResolveAttributes(ctx context.Context, input *ResolveAttributesInput) (*ResolveAttributesOutput, error)

	GetRun(ctx context.Context, input *GetRunInput) (*GetRunOutput, error)
	GetToken(ctx context.Context, input *GetTokenInput) (*GetTokenOutput, error)
	ListRuns(ctx context.Context, input *ListRunsInput) (*ListRunsOutput, error)
}

// Config holds the dependencies for the generator orchestrator
type Config struct {
	Resolver    *resolver.Resolver
	RunRepo     collectionrun.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
	EventBus    events.EventBus
	Logger      *slog.Logger

	// Roster defaults to collection.DefaultRoster when nil
	Roster []collection.Unique
	// Settings defaults to collection.DefaultSettings when zero
	Settings            collection.Settings
	MaxDuplicateRetries int
	// MaxSize bounds requested sizes, collection.DefaultMaxSize when zero
	MaxSize int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Resolver == nil {
		vb.RequiredField("Resolver")
	}
	if c.RunRepo == nil {
		vb.RequiredField("RunRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	errors.ValidateNonNegative("MaxDuplicateRetries", c.MaxDuplicateRetries, vb)
	errors.ValidateNonNegative("MaxSize", c.MaxSize, vb)
	maxSize := c.MaxSize
	if maxSize == 0 {
		maxSize = collection.DefaultMaxSize
	}
	if c.Settings.Size > maxSize {
		vb.Fieldf("Settings", "size %d exceeds the maximum of %d", c.Settings.Size, maxSize)
	}
	if c.Settings != (collection.Settings{}) {
		if err := c.Settings.Validate(); err != nil {
			vb.InvalidField("Settings", err.Error())
		}
	}
	for i, u := range c.Roster {
		if u.Amount < 1 {
			vb.Fieldf("Roster", "unique %d has amount %d", i, u.Amount)
		}
	}

	return vb.Build()
}

type orchestrator struct {
	resolver   *resolver.Resolver
	runRepo    collectionrun.Repository
	idGen      idgen.Generator
	clock      clock.Clock
	eventBus   events.EventBus
	logger     *slog.Logger
	roster     []collection.Unique
	settings   collection.Settings
	maxRetries int
	maxSize    int
}

// NewOrchestrator creates a new generator orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		resolver:   cfg.Resolver,
		runRepo:    cfg.RunRepo,
		idGen:      cfg.IDGenerator,
		clock:      cfg.Clock,
		eventBus:   cfg.EventBus,
		logger:     cfg.Logger,
		roster:     cfg.Roster,
		settings:   cfg.Settings,
		maxRetries: cfg.MaxDuplicateRetries,
		maxSize:    cfg.MaxSize,
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.roster == nil {
		o.roster = collection.DefaultRoster()
	}
	if o.settings == (collection.Settings{}) {
		o.settings = collection.DefaultSettings()
	}
	if o.maxRetries == 0 {
		o.maxRetries = DefaultMaxDuplicateRetries
	}
	if o.maxSize == 0 {
		o.maxSize = collection.DefaultMaxSize
	}

	return o, nil
}

// GenerateCollection draws every token in ascending order from one seeded stream,
// skipping content duplicates, then places the unique roster into random slots
func (o *orchestrator) GenerateCollection(
	ctx context.Context,
	input *GenerateCollectionInput,
) (*GenerateCollectionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	size := input.Size
	if size == 0 {
		size = o.settings.Size
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("seed", input.Seed, vb)
	errors.ValidateRange("size", size, 1, o.maxSize, vb)
	if slots := collection.Slots(o.roster); slots > size {
		vb.Fieldf("size", "must fit the %d unique slots of the roster", slots)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	settings := o.settings
	settings.Size = size

	run := &collection.Run{
		ID:        o.idGen.Generate(),
		Seed:      input.Seed,
		Settings:  settings,
		CreatedAt: o.clock.Now(),
	}

	logger := o.logger.With("run_id", run.ID, "seed", run.Seed)
	logger.InfoContext(ctx, "generating collection", "size", size)

	src := random.NewSeeded(input.Seed)

	attrs, err := o.drawTokens(ctx, run, src, size)
	if err != nil {
		return nil, err
	}

	// uniques share the stream so a seed fixes the whole collection
	var roller dice.Roller = random.NewRoller(src)
	placed, err := o.placeUniques(ctx, run, src, roller, attrs)
	if err != nil {
		return nil, err
	}

	tokens := make([]*collection.Token, size)
	for i := range attrs {
		tokenID := i + 1
		tok := &collection.Token{RunID: run.ID, TokenID: tokenID}

		name := ""
		if u, ok := placed[i]; ok {
			name = u.Name
			tok.Unique = true
			tok.FileName = u.FileName
		}

		hash, err := collection.Hash(attrs[i])
		if err != nil {
			return nil, err
		}
		tok.Hash = hash
		tok.Record = settings.Record(tokenID, name, attrs[i])
		tokens[i] = tok
	}

	digest, err := collection.Digest(attrs)
	if err != nil {
		return nil, err
	}
	run.Digest = digest
	run.Tokens = size
	run.Uniques = len(placed)

	if _, err := o.runRepo.Create(ctx, collectionrun.CreateInput{
		Run:    run,
		Tokens: tokens,
		TTL:    input.TTL,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to store run")
	}

	logger.InfoContext(ctx, "generated collection",
		"digest", run.Digest,
		"duplicates", run.Duplicates,
		"uniques", run.Uniques)

	return &GenerateCollectionOutput{
		Run:    run,
		Tokens: tokens,
	}, nil
}

// drawTokens fills every slot with a resolved attribute list no earlier slot holds
func (o *orchestrator) drawTokens(
	ctx context.Context,
	run *collection.Run,
	src random.Source,
	size int,
) ([][]traits.Attribute, error) {
	attrs := make([][]traits.Attribute, 0, size)
	seen := make(map[string]int, size)

	for len(attrs) < size {
		retries := 0
		for {
			if err := ctx.Err(); err != nil {
				return nil, errors.WrapWithCode(err, errors.CodeCanceled, "generation cancelled")
			}

			set, err := o.resolver.Resolve(nil, src)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to resolve token %d", len(attrs)+1)
			}

			list := set.Attributes()
			hash, err := collection.Hash(list)
			if err != nil {
				return nil, err
			}

			if prev, dup := seen[hash]; dup {
				run.Duplicates++
				retries++
				o.publish(ctx, EventTokenDuplicate, run, &collection.Token{
					RunID:   run.ID,
					TokenID: len(attrs) + 1,
					Hash:    hash,
				}, map[string]interface{}{"duplicate_of": prev})

				if retries >= o.maxRetries {
					return nil, errors.ResourceExhaustedf(
						"no fresh attribute set for token %d after %d draws", len(attrs)+1, retries).
						WithMeta("token_id", len(attrs)+1).
						WithMeta("generated", len(attrs))
				}
				continue
			}

			seen[hash] = len(attrs) + 1
			attrs = append(attrs, list)
			o.publish(ctx, EventTokenGenerated, run, &collection.Token{
				RunID:   run.ID,
				TokenID: len(attrs),
				Hash:    hash,
			}, nil)
			break
		}
	}

	return attrs, nil
}

// placeUniques overwrites randomly chosen free slots with the roster. Every placed
// slot is taken, named or not.
func (o *orchestrator) placeUniques(
	ctx context.Context,
	run *collection.Run,
	src random.Source,
	roller dice.Roller,
	attrs [][]traits.Attribute,
) (map[int]collection.Unique, error) {
	placed := make(map[int]collection.Unique, collection.Slots(o.roster))

	for _, u := range o.roster {
		for n := 0; n < u.Amount; n++ {
			slot, err := o.freeSlot(roller, len(attrs), placed)
			if err != nil {
				return nil, err
			}

			if u.Pregenerated() {
				attrs[slot] = u.Attributes
			} else {
				set, err := o.resolver.Resolve(u.Attributes, src)
				if err != nil {
					return nil, errors.Wrapf(err, "failed to resolve unique for token %d", slot+1)
				}
				attrs[slot] = set.Attributes()
			}
			placed[slot] = u

			o.logger.DebugContext(ctx, "placed unique",
				"run_id", run.ID,
				"token_id", slot+1,
				"name", u.Name)
			o.publish(ctx, EventUniquePlaced, run, &collection.Token{
				RunID:    run.ID,
				TokenID:  slot + 1,
				Unique:   true,
				FileName: u.FileName,
			}, map[string]interface{}{"name": u.Name})
		}
	}

	return placed, nil
}

// freeSlot rolls a 0-based slot until it lands on one not yet taken
func (o *orchestrator) freeSlot(roller dice.Roller, size int, taken map[int]collection.Unique) (int, error) {
	for {
		roll, err := roller.Roll(size)
		if err != nil {
			return 0, errors.Wrap(err, "failed to roll unique slot")
		}
		slot := roll - 1
		if _, ok := taken[slot]; !ok {
			return slot, nil
		}
	}
}

// publish emits an event and logs publish failures without failing the run
func (o *orchestrator) publish(
	ctx context.Context,
	eventType string,
	source, target core.Entity,
	data map[string]interface{},
) {
	event := events.NewGameEvent(eventType, source, target)
	for k, v := range data {
		event.Context().Set(k, v)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		o.logger.WarnContext(ctx, "failed to publish event",
			"event", eventType,
			"target", target.GetID(),
			"error", err)
	}
}

// ResolveAttributes resolves a single attribute set from a fresh seeded stream
func (o *orchestrator) ResolveAttributes(
	_ context.Context,
	input *ResolveAttributesInput,
) (*ResolveAttributesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Seed == "" {
		return nil, errors.InvalidArgument("seed is required")
	}

	set, err := o.resolver.Resolve(input.Predefined, random.NewSeeded(input.Seed))
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve attributes")
	}

	attrs := set.Attributes()
	hash, err := collection.Hash(attrs)
	if err != nil {
		return nil, err
	}

	return &ResolveAttributesOutput{
		Attributes: attrs,
		Hash:       hash,
	}, nil
}

// GetRun retrieves a stored run summary
func (o *orchestrator) GetRun(ctx context.Context, input *GetRunInput) (*GetRunOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.RunID == "" {
		return nil, errors.InvalidArgument("run ID is required")
	}

	out, err := o.runRepo.Get(ctx, collectionrun.GetInput{RunID: input.RunID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get run")
	}

	return &GetRunOutput{Run: out.Run}, nil
}

// GetToken retrieves one stored token
func (o *orchestrator) GetToken(ctx context.Context, input *GetTokenInput) (*GetTokenOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("run_id", input.RunID, vb)
	if input.TokenID < 1 {
		vb.Field("token_id", "must be at least 1")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.runRepo.GetToken(ctx, collectionrun.GetTokenInput{
		RunID:   input.RunID,
		TokenID: input.TokenID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get token")
	}

	return &GetTokenOutput{Token: out.Token}, nil
}

// ListRuns lists stored runs of a seed, oldest first
func (o *orchestrator) ListRuns(ctx context.Context, input *ListRunsInput) (*ListRunsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Seed == "" {
		return nil, errors.InvalidArgument("seed is required")
	}

	out, err := o.runRepo.ListBySeed(ctx, collectionrun.ListBySeedInput{Seed: input.Seed})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list runs")
	}

	return &ListRunsOutput{Runs: out.Runs}, nil
}
