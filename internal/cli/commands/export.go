package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlbench/internal/export"
)

// ExportOptions holds options for the export command.
type ExportOptions struct {
	Format    string
	Output    string
	QueryID   string
	NoHeaders bool
	Limit     int
}

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	opts := &ExportOptions{}

	cmd := &cobra.Command{
		Use:   "export [SQL]",
		Short: "Execute a query and export the results to a file",
		Long: `Execute a query and write the full result set to a CSV or JSON file.

CSV output carries a UTF-8 byte order mark and quotes every field, so it
opens cleanly in spreadsheet tools.`,
		Example: `  # Export a catalog query to CSV
  sqlbench export --id employee-list -o employees.csv

  # Export free-form SQL as JSON
  sqlbench export "SELECT * FROM sales" --format json -o sales.json

  # Skip the header row
  sqlbench export --id employee-list -o employees.csv --no-headers`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Export format: csv or json (default: from output extension)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output file (default: derived from query name)")
	cmd.Flags().StringVar(&opts.QueryID, "id", "", "Run a predefined catalog query by id")
	cmd.Flags().BoolVar(&opts.NoHeaders, "no-headers", false, "Omit the CSV header row")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Cap the number of exported rows")

	return cmd
}

func runExport(cmd *cobra.Command, args []string, opts *ExportOptions) error {
	cmdCtx := NewCommandContext()

	var sqlQuery string
	queryName := "query_results"
	switch {
	case opts.QueryID != "":
		def, ok := cmdCtx.Engine.Catalog().Get(opts.QueryID)
		if !ok {
			return fmt.Errorf("unknown catalog query %q (try 'sqlbench catalog')", opts.QueryID)
		}
		queryName = def.Name
		if !cmdCtx.Store.SelectPredefinedQuery(opts.QueryID) {
			return fmt.Errorf("unknown catalog query %q", opts.QueryID)
		}
	case len(args) > 0:
		sqlQuery = strings.Join(args, " ")
	default:
		return fmt.Errorf("nothing to export: pass SQL or --id")
	}

	// Export the whole result set, not one page.
	pageSize := 1 << 20
	if opts.Limit > 0 {
		pageSize = opts.Limit
	}
	cmdCtx.Store.SetPageSize(pageSize)

	res, err := cmdCtx.Store.Execute(cmd.Context(), sqlQuery)
	if err != nil {
		return err
	}

	format := export.Format(opts.Format)
	if format == "" {
		format = formatFromPath(opts.Output)
	}
	if !format.Valid() {
		return fmt.Errorf("unknown export format %q", opts.Format)
	}

	data, err := export.Export(res.Rows, res.Columns, export.Options{
		Format:         format,
		IncludeHeaders: !opts.NoHeaders,
	})
	if err != nil {
		return err
	}

	path := opts.Output
	if path == "" {
		path = export.Filename(queryName, format, time.Now())
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to %s\n", res.RowCount, path)
	return nil
}

// formatFromPath infers the export format from the output file extension.
// Defaults to CSV.
func formatFromPath(path string) export.Format {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return export.JSON
	}
	return export.CSV
}
