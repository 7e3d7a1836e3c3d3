package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tabr-dev/tabr/internal/export"
	"github.com/tabr-dev/tabr/internal/table"
)

var (
	flagExportFormat string
	flagExportOut    string
)

// exportCmd converts a piped psql-style table without opening the UI,
// for scripted use.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Convert a table piped on stdin to CSV or JSON",
	RunE: func(_ *cobra.Command, _ []string) error {
		var format export.Format
		switch flagExportFormat {
		case "csv":
			format = export.CSV
		case "json":
			format = export.JSON
		default:
			return fmt.Errorf("unknown format %q (want csv or json)", flagExportFormat)
		}
		if flagExportOut == "" {
			return errors.New("--out is required")
		}

		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		data, err := table.ParsePSQL(string(raw))
		if err != nil {
			return err
		}

		cols := make([]int, data.ColumnCount())
		for i := range cols {
			cols[i] = i
		}
		if err := export.Export(data.Headers, cols, data.Rows, format, flagExportOut); err != nil {
			return err
		}
		fmt.Printf("wrote %d rows to %s\n", data.RowCount(), flagExportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", "csv", "output format: csv or json")
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "output file path")
	rootCmd.AddCommand(exportCmd)
}
