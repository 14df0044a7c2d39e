// Package commands implements the sqlbench subcommands.
package commands

import (
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/leapstack-labs/sqlbench/internal/catalog"
	"github.com/leapstack-labs/sqlbench/internal/cli/config"
	"github.com/leapstack-labs/sqlbench/internal/engine"
	"github.com/leapstack-labs/sqlbench/internal/session"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg    *config.Config
	Logger *slog.Logger
	Engine *engine.Engine
	Store  *session.Store
}

// NewCommandContext builds the engine and a session store from the
// current configuration.
func NewCommandContext() *CommandContext {
	cfg := config.Current()
	logger := newLogger(cfg)

	eng := engine.New(engine.Config{
		Catalog:         catalog.Load(newRand(cfg)),
		Logger:          logger,
		SimulateLatency: cfg.SimulateLatency,
		Rand:            newRand(cfg),
	})

	store := session.New(session.Config{
		Engine:       eng,
		Logger:       logger,
		PageSize:     cfg.PageSize,
		HistoryLimit: cfg.HistoryLimit,
	})

	return &CommandContext{
		Cfg:    cfg,
		Logger: logger,
		Engine: eng,
		Store:  store,
	}
}

// newLogger builds the CLI logger. Debug output goes to stderr so it
// never interleaves with rendered results on stdout.
func newLogger(cfg *config.Config) *slog.Logger {
	if !cfg.Verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// newRand returns a seeded source when the config pins a seed, otherwise
// a random one.
func newRand(cfg *config.Config) *rand.Rand {
	if cfg.Seed != 0 {
		return rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
