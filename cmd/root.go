// Package cmd wires the CLI: flag parsing, data source setup, and
// handing the assembled workspace to the TUI.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/tabr-dev/tabr/cmd/tui/ui"
	"github.com/tabr-dev/tabr/internal/db"
	"github.com/tabr-dev/tabr/internal/history"
	"github.com/tabr-dev/tabr/internal/table"
	"github.com/tabr-dev/tabr/internal/workspace"
)

var (
	flagConnect string
	flagQuery   string
)

var rootCmd = &cobra.Command{
	Use:   "tabr [sqlite-file]",
	Short: "tabr is an interactive terminal browser for tabular data",
	Long: "tabr browses query results from PostgreSQL or SQLite, or tables piped\n" +
		"in on stdin, with tabs, split panes, filtering and export.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runBrowser(args)
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&flagConnect, "connect", "c", "", "PostgreSQL URL or DSN to connect to")
	rootCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "query to run on startup")
}

func runBrowser(args []string) error {
	ctx := context.Background()

	var client *db.Client
	target := flagConnect
	if target == "" && len(args) == 1 {
		target = args[0]
	}
	if target != "" {
		c, err := db.Open(ctx, target)
		if err != nil {
			return err
		}
		client = c
		defer func() { _ = client.Close() }()
	}

	ws, err := initialWorkspace(ctx, client)
	if err != nil {
		return err
	}

	var hist *history.Store
	if client != nil {
		// History is a convenience; a broken data dir should not stop
		// the browser.
		if h, err := history.Open(); err == nil {
			hist = h
			defer func() { _ = hist.Close() }()
		}
	}

	var querier ui.Querier
	var recorder ui.Recorder
	if client != nil {
		querier = client
	}
	if hist != nil {
		recorder = hist
	}
	m := ui.NewModel(ws, querier, recorder)
	_, err = ui.NewProgram(m).Run()
	return err
}

// initialWorkspace builds the first tab: piped data when stdin is not a
// terminal, otherwise the startup query or the table list.
func initialWorkspace(ctx context.Context, client *db.Client) (*workspace.Workspace, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		data, err := table.ParsePSQL(string(raw))
		if err != nil {
			return nil, err
		}
		return workspace.New("Data", data, workspace.PipeData), nil
	}

	if client == nil {
		return nil, errors.New("no input: pipe a table on stdin, or pass --connect or an sqlite file")
	}

	if flagQuery != "" {
		data, err := client.Query(ctx, flagQuery)
		if err != nil {
			return nil, err
		}
		return workspace.New("query", data, workspace.TableData), nil
	}

	data, err := client.Query(ctx, client.TableListQuery())
	if err != nil {
		return nil, err
	}
	return workspace.New("Tables", data, workspace.TableList), nil
}
