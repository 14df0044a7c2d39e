// Package workbench provides the JSON API for the query workbench:
// catalog browsing, query execution, view parameters, history, and export.
package workbench

import (
	"github.com/leapstack-labs/sqlbench/internal/export"
	"github.com/leapstack-labs/sqlbench/internal/transform"
)

// ExecuteRequest carries the query text to run. An empty query reuses
// the session's current editor contents.
type ExecuteRequest struct {
	Query string `json:"query"`
}

// PageRequest moves the view to a page.
type PageRequest struct {
	Page int `json:"page"`
}

// PageSizeRequest changes the view page size.
type PageSizeRequest struct {
	PageSize int `json:"pageSize"`
}

// SearchRequest sets the view search term.
type SearchRequest struct {
	Search string `json:"search"`
}

// SortRequest sets the view sort column and direction.
type SortRequest struct {
	Column string          `json:"column"`
	Order  transform.Order `json:"order"`
}

// FiltersRequest replaces the view column filters.
type FiltersRequest struct {
	Filters map[string]transform.Filter `json:"filters"`
}

// ToggleRowRequest flips the selection of one row on the current page.
type ToggleRowRequest struct {
	Index int `json:"index"`
}

// ExportRequest asks for a download of the current result rows.
type ExportRequest struct {
	Format         export.Format `json:"format"`
	SelectedRows   []int         `json:"selectedRows,omitempty"`
	IncludeHeaders bool          `json:"includeHeaders"`
	QueryName      string        `json:"queryName,omitempty"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
