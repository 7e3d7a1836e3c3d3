// Package db runs queries against PostgreSQL or SQLite and returns
// results as string tables ready for display.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/tabr-dev/tabr/internal/table"
)

// Driver identifies which engine a client talks to. Catalog queries
// differ between the two.
type Driver int

const (
	Postgres Driver = iota
	SQLite
)

// Client wraps an open connection plus the driver it speaks.
type Client struct {
	db     *sql.DB
	driver Driver
}

// Open connects to target. PostgreSQL URLs (postgres:// or
// postgresql://) and key=value DSNs go through pgx; anything else is
// treated as a path to an SQLite file. The connection is pinged before
// returning.
func Open(ctx context.Context, target string) (*Client, error) {
	driver := SQLite
	name := "sqlite"
	if isPostgresTarget(target) {
		driver = Postgres
		name = "pgx"
	}
	d, err := sql.Open(name, target)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	if err := d.PingContext(ctx); err != nil {
		_ = d.Close()
		return nil, fmt.Errorf("connect: %w", err)
	}
	return &Client{db: d, driver: driver}, nil
}

func isPostgresTarget(target string) bool {
	if strings.HasPrefix(target, "postgres://") || strings.HasPrefix(target, "postgresql://") {
		return true
	}
	// key=value DSNs like "host=localhost dbname=app".
	return strings.Contains(target, "=")
}

// Driver returns the engine this client is connected to.
func (c *Client) Driver() Driver { return c.driver }

// Close releases the connection.
func (c *Client) Close() error { return c.db.Close() }

// Query runs sql and stringifies the result set. NULLs come back as
// "NULL" and byte slices as text.
func (c *Client) Query(ctx context.Context, query string) (*table.TableData, error) {
	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	data := &table.TableData{Headers: cols}
	vals := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make(table.Row, len(cols))
		for i, v := range vals {
			row[i] = stringify(v)
		}
		data.Rows = append(data.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return data, nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(t)
	case string:
		return t
	default:
		return fmt.Sprintf("%v", t)
	}
}

// TableListQuery returns the catalog query listing user tables for the
// connected engine.
func (c *Client) TableListQuery() string {
	if c.driver == SQLite {
		return "SELECT name AS table_name, type AS table_type FROM sqlite_master WHERE type IN ('table','view') AND name NOT LIKE 'sqlite_%' ORDER BY name"
	}
	return "SELECT table_name, table_type FROM information_schema.tables WHERE table_schema NOT IN ('pg_catalog','information_schema') ORDER BY table_name"
}

// SelectAllQuery builds the query used when drilling into a table from
// the list. The identifier is quoted with doubled quotes, and the row
// count capped so a huge table cannot stall the UI.
func SelectAllQuery(name string) string {
	quoted := `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
	return fmt.Sprintf("SELECT * FROM %s LIMIT 1000", quoted)
}
