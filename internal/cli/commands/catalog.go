package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlbench/internal/catalog"
)

// CatalogOptions holds options for the catalog command.
type CatalogOptions struct {
	Format     string
	Category   string
	Complexity string
	ShowSQL    bool
}

// NewCatalogCommand creates the catalog command.
func NewCatalogCommand() *cobra.Command {
	opts := &CatalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the predefined queries",
		Long: `List the predefined queries available in the workbench catalog.

Each entry names the sample dataset it resolves to and how many rows it
generates. Use 'sqlbench query --id <id>' to run one.`,
		Example: `  # List all queries
  sqlbench catalog

  # Filter by category
  sqlbench catalog --category hr

  # Filter by complexity
  sqlbench catalog --complexity basic

  # Include the SQL text
  sqlbench catalog --sql`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCatalog(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "table", "Output format: table, json")
	cmd.Flags().StringVar(&opts.Category, "category", "", "Filter by category")
	cmd.Flags().StringVar(&opts.Complexity, "complexity", "", "Filter by complexity: basic, intermediate, advanced")
	cmd.Flags().BoolVar(&opts.ShowSQL, "sql", false, "Include the query text")

	return cmd
}

func runCatalog(cmd *cobra.Command, opts *CatalogOptions) error {
	cmdCtx := NewCommandContext()
	cat := cmdCtx.Engine.Catalog()

	defs := cat.List()
	if opts.Category != "" {
		defs = cat.ByCategory(opts.Category)
	}
	if opts.Complexity != "" {
		filtered := defs[:0:0]
		for _, def := range defs {
			if def.Complexity == catalog.Complexity(opts.Complexity) {
				filtered = append(filtered, def)
			}
		}
		defs = filtered
	}

	if opts.ShowSQL {
		return renderCatalogSQL(cmd.OutOrStdout(), defs, opts.Format)
	}
	return renderCatalog(cmd.OutOrStdout(), defs, opts.Format)
}

func renderCatalog(w io.Writer, defs []catalog.QueryDefinition, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(defs)
	}

	if len(defs) == 0 {
		_, _ = fmt.Fprintln(w, "(no queries)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Category", "Complexity", "Dataset", "Rows"})

	for _, def := range defs {
		t.AppendRow(table.Row{
			def.ID, def.Name, def.Category, def.Complexity,
			def.Dataset.Type, def.Dataset.Count,
		})
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d queries)\n", len(defs))
	return nil
}

func renderCatalogSQL(w io.Writer, defs []catalog.QueryDefinition, format string) error {
	if format == "json" {
		return renderCatalog(w, defs, format)
	}

	for _, def := range defs {
		_, _ = fmt.Fprintf(w, "-- %s: %s\n", def.ID, def.Description)
		_, _ = fmt.Fprintln(w, strings.TrimSpace(def.QueryText)+";")
		_, _ = fmt.Fprintln(w)
	}
	return nil
}
