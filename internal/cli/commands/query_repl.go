package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/sqlbench/internal/export"
	"github.com/leapstack-labs/sqlbench/internal/transform"
)

func runQueryREPL(cmd *cobra.Command, cmdCtx *CommandContext, opts *QueryOptions) error {
	ctx := cmd.Context()

	historyFile := filepath.Join(os.TempDir(), "sqlbench_history")
	completer := newQueryCompleter(cmdCtx)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "sqlbench> ",
		HistoryFile:     historyFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sqlbench REPL (%d catalog queries loaded)\n",
		cmdCtx.Engine.Catalog().Len())
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	var multiLineBuffer strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			multiLineBuffer.Reset()
			rl.SetPrompt("sqlbench> ")
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if handled := handleDotCommand(ctx, cmd, cmdCtx, line, outputFormat(cmdCtx, opts)); handled {
				if line == ".quit" || line == ".exit" {
					break
				}
				continue
			}
		}

		// Accumulate multi-line SQL until semicolon
		multiLineBuffer.WriteString(line)
		if !strings.HasSuffix(line, ";") {
			multiLineBuffer.WriteString(" ")
			rl.SetPrompt("     ...> ")
			continue
		}
		rl.SetPrompt("sqlbench> ")

		query := strings.TrimSuffix(multiLineBuffer.String(), ";")
		multiLineBuffer.Reset()

		if err := executeAndRender(ctx, cmd, cmdCtx, query, outputFormat(cmdCtx, opts)); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
	}

	return nil
}

func executeAndRender(ctx context.Context, cmd *cobra.Command, cmdCtx *CommandContext, query, format string) error {
	res, err := cmdCtx.Store.Execute(ctx, query)
	if err != nil {
		return err
	}
	return renderResult(cmd.OutOrStdout(), res, format)
}

func handleDotCommand(ctx context.Context, cmd *cobra.Command, cmdCtx *CommandContext, line, format string) bool {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(out)
		return true

	case ".catalog":
		if err := renderCatalog(out, cmdCtx.Engine.Catalog().List(), format); err != nil {
			_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
		}
		return true

	case ".run":
		if len(parts) < 2 {
			_, _ = fmt.Fprintln(errOut, "Usage: .run <query-id>")
			return true
		}
		if !cmdCtx.Store.SelectPredefinedQuery(parts[1]) {
			_, _ = fmt.Fprintf(errOut, "Unknown catalog query: %s\n", parts[1])
			return true
		}
		if err := executeAndRender(ctx, cmd, cmdCtx, "", format); err != nil {
			_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
		}
		return true

	case ".page":
		if len(parts) < 2 {
			_, _ = fmt.Fprintln(errOut, "Usage: .page <n>")
			return true
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			_, _ = fmt.Fprintf(errOut, "Invalid page: %s\n", parts[1])
			return true
		}
		cmdCtx.Store.SetCurrentPage(n)
		rerun(ctx, cmd, cmdCtx, format)
		return true

	case ".limit":
		if len(parts) < 2 {
			_, _ = fmt.Fprintln(errOut, "Usage: .limit <n>")
			return true
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			_, _ = fmt.Fprintf(errOut, "Invalid limit: %s\n", parts[1])
			return true
		}
		cmdCtx.Store.SetPageSize(n)
		rerun(ctx, cmd, cmdCtx, format)
		return true

	case ".search":
		term := ""
		if len(parts) > 1 {
			term = strings.Join(parts[1:], " ")
		}
		cmdCtx.Store.SetSearchTerm(term)
		rerun(ctx, cmd, cmdCtx, format)
		return true

	case ".sort":
		if len(parts) < 2 {
			cmdCtx.Store.SetSortBy("", transform.Asc)
			rerun(ctx, cmd, cmdCtx, format)
			return true
		}
		order := transform.Asc
		if len(parts) > 2 && strings.EqualFold(parts[2], "desc") {
			order = transform.Desc
		}
		cmdCtx.Store.SetSortBy(parts[1], order)
		rerun(ctx, cmd, cmdCtx, format)
		return true

	case ".history":
		entries := cmdCtx.Store.History()
		if len(entries) == 0 {
			_, _ = fmt.Fprintln(out, "(no history)")
			return true
		}
		for _, e := range entries {
			_, _ = fmt.Fprintf(out, "  %s  %.0fms  %s\n", e.Timestamp, e.ExecutionTimeMs, e.Query)
		}
		return true

	case ".export":
		if len(parts) < 2 {
			_, _ = fmt.Fprintln(errOut, "Usage: .export <file.csv|file.json>")
			return true
		}
		if err := exportToFile(cmdCtx, parts[1]); err != nil {
			_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
			return true
		}
		_, _ = fmt.Fprintf(out, "Exported to %s\n", parts[1])
		return true

	case ".clear":
		fmt.Print("\033[H\033[2J")
		return true

	default:
		_, _ = fmt.Fprintf(errOut, "Unknown command: %s (type .help for commands)\n", command)
		return true
	}
}

// rerun re-executes the current query so view changes show immediately.
// Without a query yet, the view change just sticks for the next one.
func rerun(ctx context.Context, cmd *cobra.Command, cmdCtx *CommandContext, format string) {
	if cmdCtx.Store.Snapshot().CurrentQuery == "" {
		return
	}
	if err := executeAndRender(ctx, cmd, cmdCtx, "", format); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
}

// exportToFile writes the last result to a file, picking the format from
// the extension.
func exportToFile(cmdCtx *CommandContext, path string) error {
	snap := cmdCtx.Store.Snapshot()
	if snap.Result == nil {
		return errors.New("no results to export (run a query first)")
	}

	format := export.CSV
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		format = export.JSON
	}

	data, err := export.Export(snap.Result.Rows, snap.Result.Columns, export.Options{
		Format:         format,
		IncludeHeaders: true,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help            Show this help message
  .catalog         List the predefined queries
  .run <id>        Run a predefined query by id
  .page <n>        Go to page n (re-runs the current query)
  .limit <n>       Set rows per page
  .search [term]   Filter rows across all columns (empty to clear)
  .sort <col> [asc|desc]  Sort by a column
  .history         Show execution history
  .export <file>   Export last result to a .csv or .json file
  .clear           Clear the screen
  .quit / .exit    Exit the REPL

Tips:
  - SQL statements must end with a semicolon (;)
  - Queries mentioning employees, sales, inventory, customers, users,
    or financials resolve to the matching sample dataset
  - Tab completion works for catalog ids and dot-commands
`
	_, _ = fmt.Fprintln(w, help)
}

// newQueryCompleter creates a readline completer for catalog ids and
// dot-commands.
func newQueryCompleter(cmdCtx *CommandContext) *readline.PrefixCompleter {
	var ids []readline.PrefixCompleterInterface
	for _, def := range cmdCtx.Engine.Catalog().List() {
		ids = append(ids, readline.PcItem(def.ID))
	}

	items := []readline.PrefixCompleterInterface{
		readline.PcItem(".help"),
		readline.PcItem(".catalog"),
		readline.PcItem(".run", ids...),
		readline.PcItem(".page"),
		readline.PcItem(".limit"),
		readline.PcItem(".search"),
		readline.PcItem(".sort"),
		readline.PcItem(".history"),
		readline.PcItem(".export"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	}

	return readline.NewPrefixCompleter(items...)
}
