package dataset

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator() *Generator {
	return NewGenerator(WithRand(rand.New(rand.NewPCG(1, 2))))
}

func TestGenerate_RowCountAndSchema(t *testing.T) {
	g := newTestGenerator()

	for _, typ := range Types() {
		rows := g.Generate(typ, 12)
		require.Len(t, rows, 12, "type %s", typ)

		cols := Columns(typ)
		require.NotEmpty(t, cols)
		for _, row := range rows {
			require.Len(t, row, len(cols), "type %s: row has extra or missing columns", typ)
			for _, col := range cols {
				_, ok := row[col]
				assert.True(t, ok, "type %s: missing column %q", typ, col)
			}
		}
	}
}

func TestGenerate_ZeroAndNegativeCount(t *testing.T) {
	g := newTestGenerator()

	assert.Empty(t, g.Generate(SalesData, 0))
	assert.Empty(t, g.Generate(SalesData, -5))
}

func TestGenerate_UnknownTypeFallsBackToEmployees(t *testing.T) {
	g := newTestGenerator()

	rows := g.Generate(Type("telemetry"), 5)
	require.Len(t, rows, 5)
	for _, row := range rows {
		_, ok := row["employeeID"]
		assert.True(t, ok)
	}
}

func TestEmployees_SeedSubset(t *testing.T) {
	g := newTestGenerator()

	rows := g.Generate(Employees, 6)
	require.Len(t, rows, 6)

	// A subset request must return only seed records, never synthetic ones.
	seen := map[int]bool{}
	for _, row := range rows {
		id, ok := row["employeeID"].(int)
		require.True(t, ok)
		assert.GreaterOrEqual(t, id, 1)
		assert.LessOrEqual(t, id, EmployeeSeedSize)
		assert.False(t, seen[id], "duplicate employeeID %d", id)
		seen[id] = true
	}
}

func TestEmployees_SyntheticExtension(t *testing.T) {
	g := newTestGenerator()

	rows := g.Generate(Employees, 25)
	require.Len(t, rows, 25)

	// Ids beyond the seed set continue monotonically from it.
	synthetic := map[int]bool{}
	for _, row := range rows {
		id := row["employeeID"].(int)
		if id > EmployeeSeedSize {
			synthetic[id] = true
		}
	}
	require.Len(t, synthetic, 25-EmployeeSeedSize)
	for id := EmployeeSeedSize + 1; id <= 25; id++ {
		assert.True(t, synthetic[id], "missing synthetic id %d", id)
	}

	// Synthetic reportsTo values must be nil or reference a seed id; they can
	// never point at a synthetic id or at the row itself.
	for _, row := range rows {
		id := row["employeeID"].(int)
		if id <= EmployeeSeedSize {
			continue
		}
		switch mgr := row["reportsTo"].(type) {
		case nil:
		case int:
			assert.GreaterOrEqual(t, mgr, 1)
			assert.LessOrEqual(t, mgr, EmployeeSeedSize)
			assert.NotEqual(t, id, mgr)
		default:
			t.Fatalf("unexpected reportsTo type %T", mgr)
		}
	}
}

func TestEmployees_GeneratedRowsAreIndependentCopies(t *testing.T) {
	g := newTestGenerator()

	rows := g.Generate(Employees, 3)
	for _, row := range rows {
		row["lastName"] = "mutated"
	}

	again := g.Generate(Employees, EmployeeSeedSize)
	for _, row := range again {
		assert.NotEqual(t, "mutated", row["lastName"])
	}
}

func TestColumns_EmployeesSchemaWidth(t *testing.T) {
	assert.Len(t, Columns(Employees), 18)
}

func TestTypeValid(t *testing.T) {
	for _, typ := range Types() {
		assert.True(t, typ.Valid())
	}
	assert.False(t, Type("nope").Valid())
	assert.False(t, Type("").Valid())
}
