// Package engine executes workbench queries against the mocked backend:
// it resolves the query to a dataset via the catalog matcher, generates rows,
// applies the result transform, and simulates execution latency.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/leapstack-labs/sqlbench/internal/catalog"
	"github.com/leapstack-labs/sqlbench/internal/dataset"
	"github.com/leapstack-labs/sqlbench/internal/transform"
)

// Latency model constants. Longer query text simulates longer execution;
// this is a UX realism knob, not a performance characteristic.
const (
	latencyBase    = 200 * time.Millisecond
	latencyPerChar = 500 * time.Microsecond
	latencyJitter  = 600 * time.Millisecond
)

// Config holds engine configuration.
type Config struct {
	// Catalog resolves predefined queries. Required.
	Catalog *catalog.Catalog

	// Logger is the structured logger (optional, uses discard if nil).
	Logger *slog.Logger

	// SimulateLatency enables the fake execution delay. Off in tests.
	SimulateLatency bool

	// Rand overrides the random source for deterministic tests.
	Rand *rand.Rand
}

// Engine runs the matcher -> generator -> transformer pipeline. It is
// stateless across executions; callers own status and history bookkeeping.
type Engine struct {
	catalog         *catalog.Catalog
	matcher         *catalog.Matcher
	generator       *dataset.Generator
	logger          *slog.Logger
	simulateLatency bool
	rng             *rand.Rand
}

// New creates an engine over the given catalog.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Engine{
		catalog:         cfg.Catalog,
		matcher:         catalog.NewMatcher(cfg.Catalog),
		generator:       dataset.NewGenerator(dataset.WithRand(rng)),
		logger:          logger,
		simulateLatency: cfg.SimulateLatency,
		rng:             rng,
	}
}

// Catalog returns the catalog this engine executes against.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// Execute resolves queryText to a dataset, generates rows, and applies the
// view parameters. selectedID pins the resolution to an explicit catalog
// entry when non-empty. Internal panics from generation or transformation
// are recovered at this boundary and returned as errors; the previous
// envelope held by the caller stays untouched.
func (e *Engine) Execute(ctx context.Context, queryText, selectedID string, params transform.Params) (res *Result, err error) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("query execution panicked", "panic", r)
			res = nil
			err = fmt.Errorf("query execution failed: %v", r)
		}
	}()

	if err := e.delay(ctx, queryText); err != nil {
		return nil, err
	}

	var (
		rows    []dataset.Row
		columns []string
	)
	if def := e.matcher.Match(queryText, selectedID); def != nil {
		e.logger.Debug("query matched catalog entry",
			"id", def.ID, "dataset", def.Dataset.Type, "count", def.Dataset.Count)
		rows = e.generator.Generate(def.Dataset.Type, def.Dataset.Count)
		columns = dataset.Columns(def.Dataset.Type)
	} else {
		typ := e.randomType()
		count := e.rowCountForQuery(queryText)
		e.logger.Debug("no catalog match, using random dataset",
			"dataset", typ, "count", count)
		rows = e.generator.Generate(typ, count)
		columns = dataset.Columns(typ)
	}

	tr := transform.Apply(rows, columns, params)

	return &Result{
		Rows:            tr.Rows,
		Columns:         tr.Columns,
		ExecutionTimeMs: float64(time.Since(start)) / float64(time.Millisecond),
		RowCount:        tr.RowCount,
		TotalCount:      tr.TotalCount,
		CurrentPage:     tr.CurrentPage,
		TotalPages:      tr.TotalPages,
		HasMore:         tr.HasMore,
		PageSize:        tr.PageSize,
	}, nil
}

// delay sleeps for the simulated execution latency. The sleep is not
// interruptible mid-way: once started, an execution runs to completion.
// A context already cancelled before the sleep still aborts.
func (e *Engine) delay(ctx context.Context, queryText string) error {
	if !e.simulateLatency {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	time.Sleep(e.Latency(queryText))
	return nil
}

// Latency returns the simulated execution delay for a query:
// 200ms base + 0.5ms per character + up to 600ms of jitter.
func (e *Engine) Latency(queryText string) time.Duration {
	jitter := time.Duration(e.rng.Int64N(int64(latencyJitter)))
	return latencyBase + time.Duration(len(queryText))*latencyPerChar + jitter
}

// randomType picks one of the six dataset types.
func (e *Engine) randomType() dataset.Type {
	types := dataset.Types()
	return types[e.rng.IntN(len(types))]
}

// rowCountForQuery derives a plausible row count from query text
// characteristics when no catalog entry decides it. Joins and subqueries
// inflate the base, GROUP BY deflates it (aggregates return fewer rows),
// and the result gets +-40% jitter with a floor of 3.
func (e *Engine) rowCountForQuery(queryText string) int {
	lowered := strings.ToLower(queryText)
	hasJoin := strings.Contains(lowered, "join")
	hasGroupBy := strings.Contains(lowered, "group by")
	hasSubquery := strings.Count(lowered, "select") > 1

	base := 10
	if hasJoin {
		base += 5
	}
	if hasGroupBy {
		base -= 5
		if base < 3 {
			base = 3
		}
	}
	if hasSubquery {
		base += 3
	}
	if len(queryText) > 500 {
		base += 5
	}

	variance := int(float64(base) * 0.4)
	count := base
	if variance > 0 {
		count = base + e.rng.IntN(variance*2) - variance
	}
	if count < 3 {
		count = 3
	}
	return count
}
