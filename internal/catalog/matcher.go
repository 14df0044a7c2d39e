package catalog

import (
	"strings"

	"github.com/leapstack-labs/sqlbench/internal/dataset"
)

// Strategy is one step in the matcher cascade. Match returns nil when the
// strategy does not apply; each strategy is independently testable.
type Strategy interface {
	// Name identifies the strategy in logs.
	Name() string

	// Match attempts to resolve queryText against the catalog.
	Match(c *Catalog, queryText string) *QueryDefinition
}

// Matcher resolves free-text query input to a catalog definition. Strategies
// run in fixed priority order, first hit wins. Matching is heuristic text
// association, not SQL understanding: explicit selection and exact text beat
// substring and keyword guessing so that small edits to a selected query do
// not jump to a different dataset.
type Matcher struct {
	catalog    *Catalog
	strategies []Strategy
}

// NewMatcher builds a matcher over the catalog with the standard cascade:
// exact text, name/id containment, dataset keyword.
func NewMatcher(c *Catalog) *Matcher {
	return &Matcher{
		catalog: c,
		strategies: []Strategy{
			exactTextStrategy{},
			containmentStrategy{},
			datasetKeywordStrategy{},
		},
	}
}

// Match resolves queryText, optionally pinned to an explicit catalog
// selection. A resolvable selectedID always wins. Returns nil when no
// strategy applies; the caller falls back to random dataset selection.
func (m *Matcher) Match(queryText, selectedID string) *QueryDefinition {
	if selectedID != "" {
		if def, ok := m.catalog.Get(selectedID); ok {
			return &def
		}
	}
	for _, s := range m.strategies {
		if def := s.Match(m.catalog, queryText); def != nil {
			return def
		}
	}
	return nil
}

// exactTextStrategy matches on trimmed query text equality.
type exactTextStrategy struct{}

func (exactTextStrategy) Name() string { return "exact-text" }

func (exactTextStrategy) Match(c *Catalog, queryText string) *QueryDefinition {
	trimmed := strings.TrimSpace(queryText)
	for _, def := range c.defs {
		if strings.TrimSpace(def.QueryText) == trimmed {
			return &def
		}
	}
	return nil
}

// containmentStrategy matches when the query text contains a definition's
// name or id, or the generic employee keywords. The employee catch-all is a
// known over-matcher: any query mentioning "employee" resolves to the first
// employees entry in catalog order.
type containmentStrategy struct{}

func (containmentStrategy) Name() string { return "containment" }

func (containmentStrategy) Match(c *Catalog, queryText string) *QueryDefinition {
	lowered := strings.ToLower(queryText)
	for _, def := range c.defs {
		if strings.Contains(lowered, strings.ToLower(def.Name)) ||
			strings.Contains(lowered, strings.ToLower(def.ID)) ||
			strings.Contains(lowered, "employee") ||
			strings.Contains(lowered, "employees") {
			return &def
		}
	}
	return nil
}

// datasetKeywordStrategy scans for domain keywords and returns the first
// catalog entry whose dataset type matches the implied domain.
type datasetKeywordStrategy struct{}

func (datasetKeywordStrategy) Name() string { return "dataset-keyword" }

// keywordRules is checked in order; within a rule, keywords are alternatives.
var keywordRules = []struct {
	keywords []string
	dataset  dataset.Type
}{
	{[]string{"sales", "revenue"}, dataset.SalesData},
	{[]string{"inventory", "stock"}, dataset.Inventory},
	{[]string{"customer", "order"}, dataset.CustomerOrders},
	{[]string{"user", "analytics"}, dataset.UserAnalytics},
	{[]string{"financial", "profit"}, dataset.FinancialMetrics},
}

func (datasetKeywordStrategy) Match(c *Catalog, queryText string) *QueryDefinition {
	lowered := strings.ToLower(queryText)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if !strings.Contains(lowered, kw) {
				continue
			}
			for _, def := range c.defs {
				if def.Dataset.Type == rule.dataset {
					return &def
				}
			}
			// First keyword hit decides the domain; a hit with no catalog
			// entry of that type ends the cascade as a miss.
			return nil
		}
	}
	return nil
}
