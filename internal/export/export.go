// Package export writes the visible portion of a table to CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/tabr-dev/tabr/internal/table"
)

// Format selects the output encoding.
type Format int

const (
	CSV Format = iota
	JSON
)

func (f Format) String() string {
	if f == JSON {
		return "json"
	}
	return "csv"
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	if f == JSON {
		return ".json"
	}
	return ".csv"
}

// DefaultFilename suggests an export filename from the tab name and the
// current time.
func DefaultFilename(name string, f Format, now time.Time) string {
	if name == "" {
		name = "export"
	}
	return fmt.Sprintf("%s_%s%s", name, now.Format("20060102_150405"), f.Ext())
}

// Export writes the rows to path. Only the columns listed in cols are
// written, in that order, so hidden and reordered columns come out the
// way they are shown. The write goes through a temp file and a rename,
// leaving no partial file behind on failure.
func Export(headers []string, cols []int, rows []table.Row, f Format, path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".export-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	var werr error
	switch f {
	case JSON:
		werr = writeJSON(tmp, headers, cols, rows)
	default:
		werr = writeCSV(tmp, headers, cols, rows)
	}
	if cerr := tmp.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("write export: %w", werr)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("finalize export: %w", err)
	}
	return nil
}

func project(headers []string, cols []int, row table.Row) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		if c < len(row) {
			out[i] = row[c]
		} else if c < len(headers) {
			out[i] = ""
		}
	}
	return out
}

func writeCSV(w io.Writer, headers []string, cols []int, rows []table.Row) error {
	// UTF-8 BOM so spreadsheet tools pick the right encoding.
	if _, err := io.WriteString(w, "\uFEFF"); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	head := make([]string, len(cols))
	for i, c := range cols {
		head[i] = headers[c]
	}
	if err := cw.Write(head); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(project(headers, cols, row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, headers []string, cols []int, rows []table.Row) error {
	records := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		rec := make(map[string]string, len(cols))
		for i, v := range project(headers, cols, row) {
			rec[headers[cols[i]]] = v
		}
		records = append(records, rec)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
