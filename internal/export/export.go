// Package export serializes result rows to downloadable CSV and JSON
// documents.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/leapstack-labs/sqlbench/internal/dataset"
)

// Format names an export encoding.
type Format string

const (
	CSV  Format = "csv"
	JSON Format = "json"
)

// Valid reports whether f is a known format.
func (f Format) Valid() bool {
	return f == CSV || f == JSON
}

// ContentType returns the MIME type for download responses.
func (f Format) ContentType() string {
	if f == JSON {
		return "application/json"
	}
	return "text/csv; charset=utf-8"
}

// Options controls what gets exported.
type Options struct {
	// Format selects the encoding. Required.
	Format Format

	// SelectedRows restricts the export to the given row indexes.
	// Empty exports every row.
	SelectedRows []int

	// IncludeHeaders emits the column header line (CSV only).
	IncludeHeaders bool
}

// Export serializes rows under the given column order.
func Export(rows []dataset.Row, columns []string, opts Options) ([]byte, error) {
	picked := pick(rows, opts.SelectedRows)
	switch opts.Format {
	case CSV:
		return toCSV(picked, columns, opts.IncludeHeaders), nil
	case JSON:
		return toJSON(picked, columns)
	default:
		return nil, fmt.Errorf("unknown export format %q", opts.Format)
	}
}

// pick returns the rows at the given indexes, or all rows when indexes
// is empty. Out-of-range indexes are skipped.
func pick(rows []dataset.Row, indexes []int) []dataset.Row {
	if len(indexes) == 0 {
		return rows
	}
	out := make([]dataset.Row, 0, len(indexes))
	for _, i := range indexes {
		if i >= 0 && i < len(rows) {
			out = append(out, rows[i])
		}
	}
	return out
}

// toCSV renders rows with every field quoted, embedded quotes doubled,
// and a UTF-8 BOM so spreadsheet tools detect the encoding. Null cells
// become empty quoted strings.
func toCSV(rows []dataset.Row, columns []string, headers bool) []byte {
	var b bytes.Buffer
	b.WriteString("\ufeff")

	if headers {
		writeCSVLine(&b, columns, func(c string) string { return c })
	}
	for _, row := range rows {
		writeCSVLine(&b, columns, func(c string) string { return cellString(row[c]) })
	}
	return b.Bytes()
}

func writeCSVLine(b *bytes.Buffer, columns []string, field func(string) string) {
	for i, c := range columns {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field(c), `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// toJSON renders rows as an indented array of objects restricted to the
// given columns.
func toJSON(rows []dataset.Row, columns []string) ([]byte, error) {
	out := make([]map[string]any, len(rows))
	for i, row := range rows {
		obj := make(map[string]any, len(columns))
		for _, c := range columns {
			obj[c] = row[c]
		}
		out[i] = obj
	}
	return json.MarshalIndent(out, "", "  ")
}

// cellString formats a cell for CSV output.
func cellString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

// Filename derives a download filename from the query name: spaces and
// punctuation collapse to underscores, followed by the current date and
// time.
func Filename(queryName string, format Format, now time.Time) string {
	name := strings.TrimSpace(queryName)
	if name == "" {
		name = "query_results"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return fmt.Sprintf("%s_%s.%s", b.String(), now.Format("2006-01-02_15-04-05"), format)
}
