package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlbench/internal/transform"
)

// QueryOptions holds options for the query command.
type QueryOptions struct {
	Format    string
	Input     string
	QueryID   string
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

// NewQueryCommand creates the query command.
func NewQueryCommand() *cobra.Command {
	opts := &QueryOptions{}

	cmd := &cobra.Command{
		Use:   "query [SQL]",
		Short: "Execute a query against the sample datasets",
		Long: `Execute a query against the workbench's generated sample datasets.

The query text is matched against the predefined catalog to pick a dataset;
unmatched queries fall back to a random dataset sized by the query shape.
Results can be searched, sorted, and paginated.

When invoked without arguments on a terminal, enters interactive REPL mode.`,
		Example: `  # Execute SQL directly
  sqlbench query "SELECT * FROM employees"

  # Run a catalog entry by id
  sqlbench query --id employee-list

  # Page through results
  sqlbench query "SELECT * FROM employees" --page 2 --limit 5

  # Search and sort
  sqlbench query --id employee-list --search london --sort name

  # Output as JSON
  sqlbench query "SELECT * FROM employees" --format json

  # Interactive mode
  sqlbench query`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: table, json, csv, md")
	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "Read SQL from file")
	cmd.Flags().StringVar(&opts.QueryID, "id", "", "Run a predefined catalog query by id")
	cmd.Flags().IntVar(&opts.Page, "page", 1, "Result page")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Rows per page")
	cmd.Flags().StringVar(&opts.Search, "search", "", "Search term applied across all columns")
	cmd.Flags().StringVar(&opts.SortBy, "sort", "", "Column to sort by")
	cmd.Flags().StringVar(&opts.SortOrder, "order", "asc", "Sort direction: asc or desc")

	return cmd
}

func runQuery(cmd *cobra.Command, args []string, opts *QueryOptions) error {
	cmdCtx := NewCommandContext()

	// Determine SQL source
	var sqlQuery string
	switch {
	case opts.QueryID != "":
		// Text comes from the catalog entry below.
	case len(args) > 0:
		sqlQuery = strings.Join(args, " ")
	case opts.Input != "":
		content, err := os.ReadFile(opts.Input)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		sqlQuery = string(content)
	case !isTerminal(os.Stdin):
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		sqlQuery = string(content)
	default:
		return runQueryREPL(cmd, cmdCtx, opts)
	}

	if opts.QueryID != "" {
		if !cmdCtx.Store.SelectPredefinedQuery(opts.QueryID) {
			return fmt.Errorf("unknown catalog query %q (try 'sqlbench catalog')", opts.QueryID)
		}
	}

	applyViewOptions(cmdCtx, opts)

	res, err := cmdCtx.Store.Execute(cmd.Context(), sqlQuery)
	if err != nil {
		return err
	}

	return renderResult(cmd.OutOrStdout(), res, outputFormat(cmdCtx, opts))
}

// applyViewOptions pushes the command flags into the session view state.
func applyViewOptions(cmdCtx *CommandContext, opts *QueryOptions) {
	if opts.Limit > 0 {
		cmdCtx.Store.SetPageSize(opts.Limit)
	}
	if opts.Search != "" {
		cmdCtx.Store.SetSearchTerm(opts.Search)
	}
	if opts.SortBy != "" {
		order := transform.Asc
		if strings.EqualFold(opts.SortOrder, "desc") {
			order = transform.Desc
		}
		cmdCtx.Store.SetSortBy(opts.SortBy, order)
	}
	// Page last: the setters above reset it to 1.
	if opts.Page > 1 {
		cmdCtx.Store.SetCurrentPage(opts.Page)
	}
}

// outputFormat resolves the format flag against the configured default.
func outputFormat(cmdCtx *CommandContext, opts *QueryOptions) string {
	if opts.Format != "" {
		return opts.Format
	}
	if cmdCtx.Cfg.OutputFormat != "" {
		return cmdCtx.Cfg.OutputFormat
	}
	return "table"
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
