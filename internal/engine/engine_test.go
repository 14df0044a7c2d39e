package engine

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlbench/internal/catalog"
	"github.com/leapstack-labs/sqlbench/internal/dataset"
	"github.com/leapstack-labs/sqlbench/internal/testutil"
	"github.com/leapstack-labs/sqlbench/internal/transform"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	rng := rand.New(rand.NewPCG(11, 13))
	return New(Config{
		Catalog: catalog.Load(rng),
		Logger:  testutil.NewTestLogger(t),
		Rand:    rng,
	})
}

func TestExecute_ScenarioEmployees(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.Execute(context.Background(), "SELECT * FROM employees", "",
		transform.Params{Page: 1, Limit: 10})
	require.NoError(t, err)

	def, ok := e.Catalog().Get("employee-list")
	require.True(t, ok)

	assert.LessOrEqual(t, res.RowCount, 10)
	assert.Len(t, res.Columns, 18)
	assert.Equal(t, dataset.Columns(dataset.Employees), res.Columns)
	assert.Equal(t, def.Dataset.Count, res.TotalCount)
	assert.GreaterOrEqual(t, res.ExecutionTimeMs, 0.0)
}

func TestExecute_SelectedIDWins(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.Execute(context.Background(), "anything at all", "financial-quarterly",
		transform.Params{Page: 1, Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, dataset.Columns(dataset.FinancialMetrics), res.Columns)
}

func TestExecute_FallbackUsesKnownSchema(t *testing.T) {
	e := newTestEngine(t)

	// "SELECT 1" matches nothing; the engine picks a random dataset type
	// with a heuristic row count, floor 3.
	res, err := e.Execute(context.Background(), "SELECT 1", "",
		transform.Params{Page: 1, Limit: 1000})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, res.TotalCount, 3)
	found := false
	for _, typ := range dataset.Types() {
		if assert.ObjectsAreEqual(dataset.Columns(typ), res.Columns) {
			found = true
			break
		}
	}
	assert.True(t, found, "fallback columns do not match any dataset schema")
}

func TestExecute_EnvelopeInvariants(t *testing.T) {
	e := newTestEngine(t)

	res, err := e.Execute(context.Background(), "SELECT * FROM employees", "",
		transform.Params{Page: 2, Limit: 5})
	require.NoError(t, err)

	wantPages := (res.TotalCount + res.PageSize - 1) / res.PageSize
	assert.Equal(t, wantPages, res.TotalPages)
	assert.Equal(t, res.CurrentPage < res.TotalPages, res.HasMore)
	assert.Equal(t, len(res.Rows), res.RowCount)
	assert.LessOrEqual(t, res.RowCount, res.PageSize)
}

func TestExecute_CancelledContext(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	e := New(Config{
		Catalog:         catalog.Load(rng),
		SimulateLatency: true,
		Rand:            rng,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Execute(ctx, "SELECT * FROM employees", "", transform.Params{Page: 1, Limit: 10})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLatency_ScalesWithQueryLength(t *testing.T) {
	e := newTestEngine(t)

	short := e.Latency("SELECT 1")
	long := e.Latency(string(make([]byte, 2000)))

	assert.GreaterOrEqual(t, short, 200*time.Millisecond)
	assert.Less(t, short, 200*time.Millisecond+8*500*time.Microsecond+600*time.Millisecond)
	// 2000 chars add a full second; jitter alone can never close that gap.
	assert.Greater(t, long, 1200*time.Millisecond)
}

func TestRowCountForQuery(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name    string
		query   string
		minBase int
	}{
		{"plain", "SELECT * FROM t", 3},
		{"join", "SELECT * FROM a JOIN b ON a.id = b.id", 3},
		{"subquery", "SELECT * FROM (SELECT id FROM t) s", 3},
		{"group by", "SELECT c, COUNT(*) FROM t GROUP BY c", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				n := e.rowCountForQuery(tt.query)
				assert.GreaterOrEqual(t, n, tt.minBase)
			}
		})
	}
}

func TestRowCountForQuery_JitterBounds(t *testing.T) {
	e := newTestEngine(t)

	// Base for a plain short query is 10; +-40% keeps results in [6, 14).
	for i := 0; i < 200; i++ {
		n := e.rowCountForQuery("SELECT * FROM t")
		assert.GreaterOrEqual(t, n, 6)
		assert.Less(t, n, 14)
	}
}

func TestStatusTransitions(t *testing.T) {
	allowed := map[Status][]Status{
		StatusIdle:      {StatusExecuting},
		StatusExecuting: {StatusSucceeded, StatusFailed},
		StatusSucceeded: {StatusIdle},
		StatusFailed:    {StatusIdle},
	}
	all := []Status{StatusIdle, StatusExecuting, StatusSucceeded, StatusFailed}

	for from, nexts := range allowed {
		ok := map[Status]bool{}
		for _, n := range nexts {
			ok[n] = true
		}
		for _, to := range all {
			assert.Equal(t, ok[to], from.CanTransition(to), "%s -> %s", from, to)
		}
	}
}

func TestResultStartEndItem(t *testing.T) {
	r := &Result{RowCount: 10, TotalCount: 47, CurrentPage: 3, PageSize: 10}
	assert.Equal(t, 21, r.StartItem())
	assert.Equal(t, 30, r.EndItem())

	last := &Result{RowCount: 7, TotalCount: 47, CurrentPage: 5, PageSize: 10}
	assert.Equal(t, 41, last.StartItem())
	assert.Equal(t, 47, last.EndItem())

	empty := &Result{}
	assert.Zero(t, empty.StartItem())
	assert.Zero(t, empty.EndItem())
}
