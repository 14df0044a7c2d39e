package catalog

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlbench/internal/dataset"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	return Load(rand.New(rand.NewPCG(7, 7)))
}

func TestLoad_AllDefinitionsPresent(t *testing.T) {
	c := testCatalog(t)

	require.Equal(t, 15, c.Len())

	defs := c.List()
	assert.Equal(t, "employee-list", defs[0].ID)
	assert.Equal(t, "financial-quarterly", defs[len(defs)-1].ID)

	seen := map[string]bool{}
	for _, def := range defs {
		require.NotEmpty(t, def.ID)
		require.NotEmpty(t, def.Name)
		require.NotEmpty(t, def.QueryText)
		assert.False(t, seen[def.ID], "duplicate id %s", def.ID)
		seen[def.ID] = true

		assert.True(t, def.Dataset.Type.Valid(), "%s has invalid dataset type", def.ID)
		assert.Greater(t, def.Dataset.Count, 0, "%s has no dataset count", def.ID)
	}
}

func TestGet(t *testing.T) {
	c := testCatalog(t)

	def, ok := c.Get("inventory-status")
	require.True(t, ok)
	assert.Equal(t, "Inventory Status Report", def.Name)
	assert.Equal(t, dataset.Inventory, def.Dataset.Type)

	_, ok = c.Get("does-not-exist")
	assert.False(t, ok)
}

func TestListReturnsCopy(t *testing.T) {
	c := testCatalog(t)

	defs := c.List()
	defs[0].ID = "mutated"

	fresh := c.List()
	assert.Equal(t, "employee-list", fresh[0].ID)
}

func TestByCategory(t *testing.T) {
	c := testCatalog(t)

	hr := c.ByCategory("hr")
	require.NotEmpty(t, hr)
	for _, def := range hr {
		assert.Equal(t, "hr", def.Category)
	}

	assert.Empty(t, c.ByCategory("nonexistent"))
}

func TestByComplexity(t *testing.T) {
	c := testCatalog(t)

	basic := c.ByComplexity(Basic)
	require.NotEmpty(t, basic)
	for _, def := range basic {
		assert.Equal(t, Basic, def.Complexity)
	}

	// Nothing in the built-in catalog is rated advanced.
	assert.Empty(t, c.ByComplexity(Advanced))
}

func TestLoad_CountsWithinConfiguredRanges(t *testing.T) {
	c := testCatalog(t)

	ranges := map[string][2]int{
		"employee-list":       {8, 15},
		"sales-performance":   {50, 150},
		"inventory-status":    {30, 80},
		"customer-orders":     {40, 100},
		"user-analytics":      {25, 60},
		"financial-quarterly": {8, 16},
	}
	for id, r := range ranges {
		def, ok := c.Get(id)
		require.True(t, ok, id)
		assert.GreaterOrEqual(t, def.Dataset.Count, r[0], id)
		assert.LessOrEqual(t, def.Dataset.Count, r[1], id)
	}
}
