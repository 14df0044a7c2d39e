package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlbench/internal/catalog"
)

func TestCatalogCommand_Table(t *testing.T) {
	setTestConfig(t)

	out, err := execute(t, NewCatalogCommand())
	require.NoError(t, err)

	assert.Contains(t, out, "employee-list")
	assert.Contains(t, out, "(15 queries)")
}

func TestCatalogCommand_JSON(t *testing.T) {
	setTestConfig(t)

	out, err := execute(t, NewCatalogCommand(), "--format", "json")
	require.NoError(t, err)

	var defs []catalog.QueryDefinition
	require.NoError(t, json.Unmarshal([]byte(out), &defs))
	assert.Len(t, defs, 15)
}

func TestCatalogCommand_Filters(t *testing.T) {
	setTestConfig(t)

	out, err := execute(t, NewCatalogCommand(), "--category", "hr", "--format", "json")
	require.NoError(t, err)

	var defs []catalog.QueryDefinition
	require.NoError(t, json.Unmarshal([]byte(out), &defs))
	require.NotEmpty(t, defs)
	for _, def := range defs {
		assert.Equal(t, "hr", def.Category)
	}

	out, err = execute(t, NewCatalogCommand(), "--complexity", "basic", "--format", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &defs))
	require.NotEmpty(t, defs)
	for _, def := range defs {
		assert.Equal(t, catalog.Basic, def.Complexity)
	}
}

func TestCatalogCommand_SQL(t *testing.T) {
	setTestConfig(t)

	out, err := execute(t, NewCatalogCommand(), "--sql", "--category", "hr")
	require.NoError(t, err)

	assert.Contains(t, out, "-- employee-list:")
	assert.Contains(t, out, "SELECT")
	assert.Contains(t, out, ";")
}
