package engine

import "github.com/leapstack-labs/sqlbench/internal/dataset"

// Result is the envelope returned by one query execution. It is created
// fresh per execution and replaces any previous envelope entirely.
type Result struct {
	Rows            []dataset.Row `json:"rows"`
	Columns         []string      `json:"columns"`
	ExecutionTimeMs float64       `json:"executionTimeMs"`
	RowCount        int           `json:"rowCount"`
	TotalCount      int           `json:"totalCount"`
	CurrentPage     int           `json:"currentPage"`
	TotalPages      int           `json:"totalPages"`
	HasMore         bool          `json:"hasMore"`
	PageSize        int           `json:"pageSize"`
}

// StartItem is the 1-based ordinal of the first row on this page, for
// "showing X-Y of Z" displays. Zero when the page is empty.
func (r *Result) StartItem() int {
	if r.RowCount == 0 {
		return 0
	}
	return (r.CurrentPage-1)*r.PageSize + 1
}

// EndItem is the 1-based ordinal of the last row on this page.
func (r *Result) EndItem() int {
	if r.RowCount == 0 {
		return 0
	}
	end := r.CurrentPage * r.PageSize
	if end > r.TotalCount {
		end = r.TotalCount
	}
	return end
}
