package generator_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/trait-forge/internal/engine/resolver"
	"github.com/KirkDiggler/trait-forge/internal/entities/collection"
	"github.com/KirkDiggler/trait-forge/internal/entities/traits"
	"github.com/KirkDiggler/trait-forge/internal/errors"
	"github.com/KirkDiggler/trait-forge/internal/orchestrators/generator"
	mockclock "github.com/KirkDiggler/trait-forge/internal/pkg/clock/mock"
	idgenmock "github.com/KirkDiggler/trait-forge/internal/pkg/idgen/mock"
	collectionrun "github.com/KirkDiggler/trait-forge/internal/repositories/collection_run"
	collectionrunmock "github.com/KirkDiggler/trait-forge/internal/repositories/collection_run/mock"
	"github.com/KirkDiggler/trait-forge/internal/testutils"
	"github.com/KirkDiggler/trait-forge/internal/testutils/builders"
	"github.com/KirkDiggler/trait-forge/internal/testutils/mocks"
)

const testSeed = testutils.TestSeed

// recordingBus keeps every published event
type recordingBus struct {
	published []events.Event
}

func (b *recordingBus) Publish(_ context.Context, e events.Event) error {
	b.published = append(b.published, e)
	return nil
}
func (b *recordingBus) Subscribe(_ string, _ events.Handler) string { return "sub-id" }
func (b *recordingBus) SubscribeFunc(_ string, _ int, _ events.HandlerFunc) string {
	return "sub-id"
}
func (b *recordingBus) Unsubscribe(_ string) error { return nil }
func (b *recordingBus) Clear(_ string)             {}
func (b *recordingBus) ClearAll()                  {}

func (b *recordingBus) count(eventType string) int {
	var n int
	for _, e := range b.published {
		if e.Type() == eventType {
			n++
		}
	}
	return n
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockRepo  *collectionrunmock.MockRepository
	mockIDGen *idgenmock.MockGenerator
	mockClock *mockclock.MockClock
	bus       *recordingBus
	resolver  *resolver.Resolver
	roster    []collection.Unique
	now       time.Time
	ctx       context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = collectionrunmock.NewMockRepository(s.ctrl)
	s.mockIDGen = idgenmock.NewMockGenerator(s.ctrl)
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.bus = &recordingBus{}
	s.now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.ctx = context.Background()

	r, err := resolver.New(&resolver.Config{
		Table:   testutils.CreateTestTable(),
		Rules:   []resolver.Rule{},
		Cleanup: []resolver.Rule{},
	})
	s.Require().NoError(err)
	s.resolver = r
	s.roster = testutils.CreateTestRoster()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) newOrchestrator(roster []collection.Unique, maxRetries int) generator.Service {
	svc, err := generator.NewOrchestrator(&generator.Config{
		Resolver:            s.resolver,
		RunRepo:             s.mockRepo,
		IDGenerator:         s.mockIDGen,
		Clock:               s.mockClock,
		EventBus:            s.bus,
		Roster:              roster,
		MaxDuplicateRetries: maxRetries,
	})
	s.Require().NoError(err)
	return svc
}

func (s *OrchestratorTestSuite) expectRun(runID string) *collectionrun.CreateInput {
	return mocks.ExpectRunStored(s.ctx, s.mockIDGen, s.mockClock, s.mockRepo, runID, s.now)
}

func (s *OrchestratorTestSuite) TestNewOrchestrator() {
	_, err := generator.NewOrchestrator(nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = generator.NewOrchestrator(&generator.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Resolver")

	_, err = generator.NewOrchestrator(&generator.Config{
		Resolver:    s.resolver,
		RunRepo:     s.mockRepo,
		IDGenerator: s.mockIDGen,
		EventBus:    s.bus,
		Roster:      []collection.Unique{{Name: "nobody"}},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGenerateCollection() {
	stored := s.expectRun("run_1")
	svc := s.newOrchestrator(s.roster, 0)

	out, err := svc.GenerateCollection(s.ctx, &generator.GenerateCollectionInput{
		Seed: testSeed,
		Size: 5,
		TTL:  time.Hour,
	})
	s.Require().NoError(err)

	s.Equal("run_1", out.Run.ID)
	s.Equal(testSeed, out.Run.Seed)
	s.Equal(5, out.Run.Tokens)
	s.Equal(2, out.Run.Uniques)
	s.Equal(5, out.Run.Settings.Size)
	s.Equal(s.now, out.Run.CreatedAt)
	s.NotEmpty(out.Run.Digest)
	s.Require().Len(out.Tokens, 5)

	s.Equal(out.Run, stored.Run)
	s.Equal(out.Tokens, stored.Tokens)
	s.Equal(time.Hour, stored.TTL)

	var uniques, named int
	for i, tok := range out.Tokens {
		s.Equal(i+1, tok.TokenID)
		s.Equal("run_1", tok.RunID)
		s.NotEmpty(tok.Hash)
		if !tok.Unique {
			s.Len(tok.Record.Attributes, 2)
			continue
		}
		uniques++
		if tok.FileName == "Nosferatu" {
			named++
			s.Equal("Nosferatu", tok.Record.Name)
			s.Equal(s.roster[0].Attributes, tok.Record.Attributes)
		} else {
			s.Contains(tok.Record.Name, "Sneaky Vampire #")
			s.Equal(traits.Attribute{TraitType: "Moon", Value: "Sun"}, tok.Record.Attributes[0])
		}
	}
	s.Equal(2, uniques)
	s.Equal(1, named)

	s.Equal(5, s.bus.count(generator.EventTokenGenerated))
	s.Equal(2, s.bus.count(generator.EventUniquePlaced))
	s.Equal(out.Run.Duplicates, s.bus.count(generator.EventTokenDuplicate))
}

func (s *OrchestratorTestSuite) TestGenerateCollection_Deterministic() {
	s.expectRun("run_1")
	first, err := s.newOrchestrator(s.roster, 0).GenerateCollection(s.ctx, &generator.GenerateCollectionInput{
		Seed: testSeed,
		Size: 5,
	})
	s.Require().NoError(err)

	s.expectRun("run_2")
	second, err := s.newOrchestrator(s.roster, 0).GenerateCollection(s.ctx, &generator.GenerateCollectionInput{
		Seed: testSeed,
		Size: 5,
	})
	s.Require().NoError(err)

	s.Equal(first.Run.Digest, second.Run.Digest)
	for i := range first.Tokens {
		s.Equal(first.Tokens[i].Record, second.Tokens[i].Record)
	}
}

func (s *OrchestratorTestSuite) TestGenerateCollection_NoDuplicates() {
	s.expectRun("run_1")
	out, err := s.newOrchestrator([]collection.Unique{}, 0).GenerateCollection(s.ctx, &generator.GenerateCollectionInput{
		Seed: testSeed,
		Size: 6,
	})
	s.Require().NoError(err)

	seen := make(map[string]bool)
	for _, tok := range out.Tokens {
		s.False(seen[tok.Hash], "duplicate token %d", tok.TokenID)
		seen[tok.Hash] = true
	}
	s.Len(seen, 6)
}

func (s *OrchestratorTestSuite) TestGenerateCollection_Exhausted() {
	s.mockIDGen.EXPECT().Generate().Return("run_1")
	s.mockClock.EXPECT().Now().Return(s.now)

	_, err := s.newOrchestrator([]collection.Unique{}, 200).GenerateCollection(s.ctx, &generator.GenerateCollectionInput{
		Seed: testSeed,
		Size: 7,
	})
	s.Require().Error(err)
	s.True(errors.IsResourceExhausted(err))
	s.Equal(7, errors.GetMeta(err)["token_id"])
	s.GreaterOrEqual(s.bus.count(generator.EventTokenDuplicate), 200)
}

func (s *OrchestratorTestSuite) TestGenerateCollection_InvalidInput() {
	svc := s.newOrchestrator(s.roster, 0)

	testCases := []struct {
		name  string
		input *generator.GenerateCollectionInput
	}{
		{name: "nil input", input: nil},
		{name: "missing seed", input: &generator.GenerateCollectionInput{Size: 5}},
		{name: "negative size", input: &generator.GenerateCollectionInput{Seed: testSeed, Size: -1}},
		{name: "roster does not fit", input: &generator.GenerateCollectionInput{Seed: testSeed, Size: 1}},
		{name: "size above maximum", input: &generator.GenerateCollectionInput{Seed: testSeed, Size: 1 << 60}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := svc.GenerateCollection(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *OrchestratorTestSuite) TestGenerateCollection_MaxSize() {
	svc, err := generator.NewOrchestrator(&generator.Config{
		Resolver:    s.resolver,
		RunRepo:     s.mockRepo,
		IDGenerator: s.mockIDGen,
		Clock:       s.mockClock,
		EventBus:    s.bus,
		Roster:      []collection.Unique{},
		MaxSize:     10,
	})
	s.Require().NoError(err)

	// rejected before an ID is allocated or anything is drawn
	_, err = svc.GenerateCollection(s.ctx, &generator.GenerateCollectionInput{Seed: testSeed, Size: 11})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "must be between 1 and 10")
	s.Empty(s.bus.published)

	s.expectRun("run_1")
	out, err := svc.GenerateCollection(s.ctx, &generator.GenerateCollectionInput{Seed: testSeed, Size: 6})
	s.Require().NoError(err)
	s.Equal(6, out.Run.Tokens)
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_MaxSize() {
	base := func() *generator.Config {
		return &generator.Config{
			Resolver:    s.resolver,
			RunRepo:     s.mockRepo,
			IDGenerator: s.mockIDGen,
			EventBus:    s.bus,
		}
	}

	cfg := base()
	cfg.MaxSize = -1
	_, err := generator.NewOrchestrator(cfg)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	cfg = base()
	cfg.MaxSize = 100
	cfg.Settings = collection.DefaultSettings()
	_, err = generator.NewOrchestrator(cfg)
	s.Require().Error(err)
	s.Contains(err.Error(), "exceeds the maximum of 100")

	cfg = base()
	cfg.Settings = collection.DefaultSettings()
	cfg.Settings.Size = collection.DefaultMaxSize + 1
	_, err = generator.NewOrchestrator(cfg)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGenerateCollection_Cancelled() {
	s.mockIDGen.EXPECT().Generate().Return("run_1")
	s.mockClock.EXPECT().Now().Return(s.now)

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.newOrchestrator(s.roster, 0).GenerateCollection(ctx, &generator.GenerateCollectionInput{
		Seed: testSeed,
		Size: 5,
	})
	s.Require().Error(err)
	s.Equal(errors.CodeCanceled, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestGenerateCollection_StoreFails() {
	s.mockIDGen.EXPECT().Generate().Return("run_1")
	s.mockClock.EXPECT().Now().Return(s.now)
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(nil, errors.AlreadyExists("run with ID run_1 already exists"))

	_, err := s.newOrchestrator(s.roster, 0).GenerateCollection(s.ctx, &generator.GenerateCollectionInput{
		Seed: testSeed,
		Size: 5,
	})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *OrchestratorTestSuite) TestResolveAttributes() {
	svc := s.newOrchestrator(s.roster, 0)

	first, err := svc.ResolveAttributes(s.ctx, &generator.ResolveAttributesInput{Seed: "hello."})
	s.Require().NoError(err)
	second, err := svc.ResolveAttributes(s.ctx, &generator.ResolveAttributesInput{Seed: "hello."})
	s.Require().NoError(err)
	s.Equal(first, second)
	s.Len(first.Attributes, 2)

	pinned, err := svc.ResolveAttributes(s.ctx, &generator.ResolveAttributesInput{
		Seed:       "hello.",
		Predefined: traits.Predefined{{TraitType: "Mouth", Value: "Tongue"}},
	})
	s.Require().NoError(err)
	s.Equal(traits.Attribute{TraitType: "Mouth", Value: "Tongue"}, pinned.Attributes[1])

	_, err = svc.ResolveAttributes(s.ctx, &generator.ResolveAttributesInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = svc.ResolveAttributes(s.ctx, &generator.ResolveAttributesInput{
		Seed:       "hello.",
		Predefined: traits.Predefined{{TraitType: "Wings", Value: "Bat"}},
	})
	s.True(errors.IsConfiguration(err))
}

func (s *OrchestratorTestSuite) TestGetRun() {
	svc := s.newOrchestrator(s.roster, 0)
	run := builders.NewRunBuilder().WithID("run_1").WithSeed(testSeed).Build()

	s.mockRepo.EXPECT().
		Get(s.ctx, collectionrun.GetInput{RunID: "run_1"}).
		Return(&collectionrun.GetOutput{Run: run}, nil)

	out, err := svc.GetRun(s.ctx, &generator.GetRunInput{RunID: "run_1"})
	s.Require().NoError(err)
	s.Equal(run, out.Run)

	s.mockRepo.EXPECT().
		Get(s.ctx, collectionrun.GetInput{RunID: "missing"}).
		Return(nil, errors.NotFound("run with ID missing not found"))

	_, err = svc.GetRun(s.ctx, &generator.GetRunInput{RunID: "missing"})
	s.True(errors.IsNotFound(err))

	_, err = svc.GetRun(s.ctx, &generator.GetRunInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetToken() {
	svc := s.newOrchestrator(s.roster, 0)
	tok := builders.NewTokenBuilder("run_1", 3).Build()

	s.mockRepo.EXPECT().
		GetToken(s.ctx, collectionrun.GetTokenInput{RunID: "run_1", TokenID: 3}).
		Return(&collectionrun.GetTokenOutput{Token: tok}, nil)

	out, err := svc.GetToken(s.ctx, &generator.GetTokenInput{RunID: "run_1", TokenID: 3})
	s.Require().NoError(err)
	s.Equal(tok, out.Token)

	_, err = svc.GetToken(s.ctx, &generator.GetTokenInput{RunID: "run_1"})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListRuns() {
	svc := s.newOrchestrator(s.roster, 0)
	runs := []*collection.Run{{ID: "run_1"}, {ID: "run_2"}}

	s.mockRepo.EXPECT().
		ListBySeed(s.ctx, collectionrun.ListBySeedInput{Seed: testSeed}).
		Return(&collectionrun.ListBySeedOutput{Runs: runs}, nil)

	out, err := svc.ListRuns(s.ctx, &generator.ListRunsInput{Seed: testSeed})
	s.Require().NoError(err)
	s.Equal(runs, out.Runs)

	_, err = svc.ListRuns(s.ctx, &generator.ListRunsInput{})
	s.True(errors.IsInvalidArgument(err))
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}
