// Package catalog holds the predefined query definitions and resolves
// free-text query input to a definition via an ordered list of match
// strategies.
package catalog

import (
	"math/rand/v2"

	"github.com/leapstack-labs/sqlbench/internal/dataset"
)

// Complexity rates how involved a predefined query is.
type Complexity string

const (
	Basic        Complexity = "basic"
	Intermediate Complexity = "intermediate"
	Advanced     Complexity = "advanced"
)

// DatasetSpec binds a query definition to the dataset it produces.
type DatasetSpec struct {
	Type  dataset.Type `json:"type"`
	Count int          `json:"count"`
}

// QueryDefinition is one entry in the predefined query catalog. Definitions
// are immutable after load; ids are unique within a catalog.
type QueryDefinition struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	QueryText   string      `json:"query"`
	Description string      `json:"description,omitempty"`
	Category    string      `json:"category,omitempty"`
	Complexity  Complexity  `json:"complexity,omitempty"`
	Dataset     DatasetSpec `json:"datasetConfig"`
}

// Catalog is an ordered, static collection of query definitions.
type Catalog struct {
	defs []QueryDefinition
	byID map[string]int
}

// Load builds the catalog from the built-in sample queries. Dataset row
// counts are randomized once per load within each query's configured range,
// so repeated executions of the same definition stay stable for the session.
func Load(rng *rand.Rand) *Catalog {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	defs := sampleQueries(rng)
	return New(defs)
}

// New builds a catalog from explicit definitions, preserving their order.
func New(defs []QueryDefinition) *Catalog {
	byID := make(map[string]int, len(defs))
	for i, def := range defs {
		if _, dup := byID[def.ID]; !dup {
			byID[def.ID] = i
		}
	}
	return &Catalog{defs: defs, byID: byID}
}

// List returns the definitions in catalog order. The returned slice is a
// copy; the catalog itself stays immutable.
func (c *Catalog) List() []QueryDefinition {
	out := make([]QueryDefinition, len(c.defs))
	copy(out, c.defs)
	return out
}

// Get returns the definition for id, or false when the id is unknown.
func (c *Catalog) Get(id string) (QueryDefinition, bool) {
	if i, ok := c.byID[id]; ok {
		return c.defs[i], true
	}
	return QueryDefinition{}, false
}

// Len returns the number of definitions in the catalog.
func (c *Catalog) Len() int { return len(c.defs) }

// ByCategory returns the definitions in the given category, in catalog order.
func (c *Catalog) ByCategory(category string) []QueryDefinition {
	var out []QueryDefinition
	for _, def := range c.defs {
		if def.Category == category {
			out = append(out, def)
		}
	}
	return out
}

// ByComplexity returns the definitions with the given complexity rating,
// in catalog order.
func (c *Catalog) ByComplexity(complexity Complexity) []QueryDefinition {
	var out []QueryDefinition
	for _, def := range c.defs {
		if def.Complexity == complexity {
			out = append(out, def)
		}
	}
	return out
}
