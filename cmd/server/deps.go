package main

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/trait-forge/internal/config"
	"github.com/KirkDiggler/trait-forge/internal/engine/resolver"
	"github.com/KirkDiggler/trait-forge/internal/errors"
	"github.com/KirkDiggler/trait-forge/internal/orchestrators/generator"
	"github.com/KirkDiggler/trait-forge/internal/pkg/clock"
	"github.com/KirkDiggler/trait-forge/internal/pkg/idgen"
	"github.com/KirkDiggler/trait-forge/internal/redis"
	collectionrun "github.com/KirkDiggler/trait-forge/internal/repositories/collection_run"
)

// dependencies is everything a command needs to talk to the generator
type dependencies struct {
	cfg       *config.Config
	logger    *slog.Logger
	redis     redis.Client
	generator generator.Service
}

func (d *dependencies) Close() {
	if d.redis != nil {
		_ = d.redis.Close() // nolint:errcheck // shutdown
	}
}

// buildDependencies wires config, Redis, the resolver and the orchestrator
func buildDependencies(cfg *config.Config) (*dependencies, error) {
	logger := cfg.Logger()

	table, err := cfg.Table()
	if err != nil {
		return nil, err
	}

	res, err := resolver.New(&resolver.Config{Table: table})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create resolver")
	}

	client, err := redis.NewClient(cfg.RedisOptions())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create redis client")
	}

	runRepo, err := collectionrun.NewRedis(&collectionrun.Config{
		Client: client,
		Logger: logger.With("component", "collection_run_repository"),
	})
	if err != nil {
		_ = client.Close() // nolint:errcheck // already failing
		return nil, err
	}

	svc, err := generator.NewOrchestrator(&generator.Config{
		Resolver:            res,
		RunRepo:             runRepo,
		IDGenerator:         idgen.NewUUID("run_"),
		Clock:               clock.New(),
		EventBus:            events.NewBus(),
		Logger:              logger.With("component", "generator"),
		Settings:            cfg.Settings(),
		MaxDuplicateRetries: cfg.MaxDuplicateRetries,
		MaxSize:             cfg.MaxSize,
	})
	if err != nil {
		_ = client.Close() // nolint:errcheck // already failing
		return nil, err
	}

	return &dependencies{
		cfg:       cfg,
		logger:    logger,
		redis:     client,
		generator: svc,
	}, nil
}
