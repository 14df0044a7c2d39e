// Package transform applies the result view pipeline to a generated row set:
// search filtering, column-predicate filtering, sorting, and pagination, in
// that fixed order.
package transform

import (
	"sort"
	"strings"

	"github.com/leapstack-labs/sqlbench/internal/dataset"
)

// Order is a sort direction.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// Params carries the view parameters for one execution. Page is 1-based.
type Params struct {
	Page      int               `json:"page"`
	Limit     int               `json:"limit"`
	Search    string            `json:"search,omitempty"`
	Filters   map[string]Filter `json:"filters,omitempty"`
	SortBy    string            `json:"sortBy,omitempty"`
	SortOrder Order             `json:"sortOrder,omitempty"`
}

// Normalize guards against invalid paging input: page floors at 1 and a
// non-positive limit is treated as 1 to keep the page arithmetic defined.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 1
	}
	if p.SortOrder != Desc {
		p.SortOrder = Asc
	}
	return p
}

// Result is the transformed page of rows plus pagination bookkeeping.
// TotalCount is the post-filter, pre-page row count; TotalPages and HasMore
// are always derived from TotalCount, Limit, and Page, never stored
// independently.
type Result struct {
	Rows        []dataset.Row
	Columns     []string
	RowCount    int
	TotalCount  int
	CurrentPage int
	TotalPages  int
	HasMore     bool
	PageSize    int
}

// Apply runs the pipeline over rows: search, filters, sort, paginate.
// A page past the end yields an empty slice with correct totals.
func Apply(rows []dataset.Row, columns []string, p Params) Result {
	p = p.Normalize()

	filtered := applySearch(rows, columns, p.Search)
	filtered = applyFilters(filtered, p.Filters)
	filtered = applySort(filtered, p.SortBy, p.SortOrder)

	totalCount := len(filtered)
	totalPages := (totalCount + p.Limit - 1) / p.Limit

	start := (p.Page - 1) * p.Limit
	end := start + p.Limit
	var page []dataset.Row
	if start < totalCount {
		if end > totalCount {
			end = totalCount
		}
		page = filtered[start:end]
	} else {
		page = []dataset.Row{}
	}

	return Result{
		Rows:        page,
		Columns:     columns,
		RowCount:    len(page),
		TotalCount:  totalCount,
		CurrentPage: p.Page,
		TotalPages:  totalPages,
		HasMore:     p.Page < totalPages,
		PageSize:    p.Limit,
	}
}

// applySearch keeps rows where any column's string form contains the term,
// case-insensitively. A blank term is a no-op.
func applySearch(rows []dataset.Row, columns []string, term string) []dataset.Row {
	term = strings.TrimSpace(term)
	if term == "" {
		return rows
	}
	needle := strings.ToLower(term)

	out := make([]dataset.Row, 0, len(rows))
	for _, row := range rows {
		for _, col := range columns {
			if strings.Contains(strings.ToLower(stringify(row[col])), needle) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// applyFilters drops rows failing any filter (AND semantics). Rows with a
// nil value for a filtered column always fail.
func applyFilters(rows []dataset.Row, filters map[string]Filter) []dataset.Row {
	if len(filters) == 0 {
		return rows
	}

	out := make([]dataset.Row, 0, len(rows))
	for _, row := range rows {
		keep := true
		for col, f := range filters {
			if !f.Matches(row[col]) {
				keep = false
				break
			}
		}
		if keep {
			out = append(out, row)
		}
	}
	return out
}

// applySort stable-sorts by one column. Pairs that are both numeric compare
// numerically; everything else compares as lowercased strings. Nil values
// sort last regardless of direction: the direction flips the value
// comparison only, never the nulls-last rule.
func applySort(rows []dataset.Row, sortBy string, order Order) []dataset.Row {
	if sortBy == "" {
		return rows
	}

	sorted := make([]dataset.Row, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i][sortBy], sorted[j][sortBy]
		if a == nil || b == nil {
			// Nulls after everything; equal nils keep input order.
			return a != nil && b == nil
		}

		cmp := compareValues(a, b)
		if order == Desc {
			cmp = -cmp
		}
		return cmp < 0
	})
	return sorted
}

// compareValues returns -1, 0, or 1. Both-numeric pairs compare as numbers;
// mixed or non-numeric pairs compare as lowercased strings. Unlike filter
// casting, numeric strings stay strings here.
func compareValues(a, b any) int {
	an, aok := numeric(a)
	bn, bok := numeric(b)
	if aok && bok {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(strings.ToLower(stringify(a)), strings.ToLower(stringify(b)))
}

// numeric matches actual number types only, not numeric strings.
func numeric(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	default:
		return 0, false
	}
}
