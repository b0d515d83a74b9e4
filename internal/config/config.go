// Package config loads process configuration from TRAITFORGE_* environment variables
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/trait-forge/internal/entities/collection"
	"github.com/KirkDiggler/trait-forge/internal/entities/traits"
	"github.com/KirkDiggler/trait-forge/internal/errors"
	"github.com/KirkDiggler/trait-forge/internal/redis"
)

// Config is the full process configuration. Cobra flags override individual fields.
type Config struct {
	GRPCPort int    `env:"TRAITFORGE_GRPC_PORT" envDefault:"50051"`
	LogLevel string `env:"TRAITFORGE_LOG_LEVEL" envDefault:"info"`

	RedisAddrs      []string      `env:"TRAITFORGE_REDIS_ADDRS" envDefault:"localhost:6379" envSeparator:","`
	RedisMasterName string        `env:"TRAITFORGE_REDIS_MASTER_NAME"`
	RedisPassword   string        `env:"TRAITFORGE_REDIS_PASSWORD"`
	RedisDB         int           `env:"TRAITFORGE_REDIS_DB" envDefault:"0"`
	RedisPoolSize   int           `env:"TRAITFORGE_REDIS_POOL_SIZE" envDefault:"10"`
	RedisTLS        bool          `env:"TRAITFORGE_REDIS_TLS" envDefault:"false"`
	RunTTL          time.Duration `env:"TRAITFORGE_RUN_TTL" envDefault:"0s"`

	Seed                string `env:"TRAITFORGE_SEED"`
	Size                int    `env:"TRAITFORGE_SIZE" envDefault:"8888"`
	MaxSize             int    `env:"TRAITFORGE_MAX_SIZE" envDefault:"100000"`
	NamePrefix          string `env:"TRAITFORGE_NAME_PREFIX" envDefault:"Sneaky Vampire"`
	ImageCID            string `env:"TRAITFORGE_IMAGE_CID"`
	MaxDuplicateRetries int    `env:"TRAITFORGE_MAX_DUPLICATE_RETRIES" envDefault:"10000"`
	WeightTablePath     string `env:"TRAITFORGE_WEIGHT_TABLE"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if cfg.ImageCID == "" {
		cfg.ImageCID = collection.DefaultImageCID
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the process cannot start with
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("GRPCPort", c.GRPCPort, 1, 65535, vb)
	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.Fieldf("LogLevel", "unknown level %q", c.LogLevel)
	}
	if len(c.RedisAddrs) == 0 {
		vb.RequiredField("RedisAddrs")
	}
	errors.ValidateNonNegative("RunTTL", c.RunTTL, vb)
	errors.ValidateNonNegative("MaxDuplicateRetries", c.MaxDuplicateRetries, vb)
	if c.MaxSize < 1 {
		vb.Field("MaxSize", "must be at least 1")
	} else if c.Size > c.MaxSize {
		vb.Fieldf("Size", "must not exceed MaxSize %d, got %d", c.MaxSize, c.Size)
	}
	if err := c.Settings().Validate(); err != nil {
		vb.InvalidField("Settings", errors.GetMessage(err))
	}

	return vb.Build()
}

// Settings returns the metadata settings for generated records
func (c *Config) Settings() collection.Settings {
	return collection.Settings{
		NamePrefix: c.NamePrefix,
		ImageCID:   c.ImageCID,
		Size:       c.Size,
	}
}

// RedisOptions returns the connection options for internal/redis
func (c *Config) RedisOptions() *redis.Options {
	return &redis.Options{
		Addrs:      c.RedisAddrs,
		MasterName: c.RedisMasterName,
		Password:   c.RedisPassword,
		DB:         c.RedisDB,
		PoolSize:   c.RedisPoolSize,
		UseTLS:     c.RedisTLS,
	}
}

// Table loads the weight table from WeightTablePath, or the shipped table when unset
func (c *Config) Table() (*traits.Table, error) {
	if c.WeightTablePath == "" {
		return traits.DefaultTable(), nil
	}

	f, err := os.Open(c.WeightTablePath)
	if err != nil {
		return nil, errors.WrapConfiguration(err, "failed to open weight table").
			WithMeta("path", c.WeightTablePath)
	}
	defer func() {
		_ = f.Close() // nolint:errcheck // read-only
	}()

	table, err := traits.LoadTable(f)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load weight table")
	}

	return table, nil
}

// Logger builds the process slog logger at the configured level
func (c *Config) Logger() *slog.Logger {
	level, _ := parseLevel(c.LogLevel)
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}
