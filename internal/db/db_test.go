package db

import (
	"context"
	"testing"
)

func openTestClient(t *testing.T) *Client {
	t.Helper()
	c, err := Open(context.Background(), "file:"+t.Name()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestQueryStringifiesValues(t *testing.T) {
	c := openTestClient(t)
	ctx := context.Background()
	if _, err := c.db.ExecContext(ctx, "CREATE TABLE t (id INTEGER, name TEXT, note TEXT)"); err != nil {
		t.Fatalf("create table: %v", err)
	}
	if _, err := c.db.ExecContext(ctx, "INSERT INTO t VALUES (1, 'Alice', NULL)"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	data, err := c.Query(ctx, "SELECT id, name, note FROM t")
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if got := data.ColumnCount(); got != 3 {
		t.Fatalf("ColumnCount = %d, want 3", got)
	}
	if got := data.Cell(0, 0); got != "1" {
		t.Fatalf("Cell(0,0) = %q, want 1", got)
	}
	if got := data.Cell(0, 2); got != "NULL" {
		t.Fatalf("Cell(0,2) = %q, want NULL", got)
	}
}

func TestQueryError(t *testing.T) {
	c := openTestClient(t)
	if _, err := c.Query(context.Background(), "SELECT * FROM no_such_table"); err == nil {
		t.Fatal("query against missing table succeeded")
	}
}

func TestTableListQuerySQLite(t *testing.T) {
	c := openTestClient(t)
	ctx := context.Background()
	if _, err := c.db.ExecContext(ctx, "CREATE TABLE users (id INTEGER)"); err != nil {
		t.Fatalf("create table: %v", err)
	}
	data, err := c.Query(ctx, c.TableListQuery())
	if err != nil {
		t.Fatalf("table list query: %v", err)
	}
	if data.RowCount() != 1 || data.Cell(0, 0) != "users" {
		t.Fatalf("table list = %v", data.Rows)
	}
}

func TestSelectAllQueryQuoting(t *testing.T) {
	got := SelectAllQuery(`we"ird`)
	want := `SELECT * FROM "we""ird" LIMIT 1000`
	if got != want {
		t.Fatalf("SelectAllQuery = %q, want %q", got, want)
	}
}

func TestIsPostgresTarget(t *testing.T) {
	cases := []struct {
		target string
		want   bool
	}{
		{"postgres://u@localhost/app", true},
		{"postgresql://localhost/app", true},
		{"host=localhost dbname=app", true},
		{"/tmp/data.db", false},
		{"data.sqlite", false},
	}
	for _, tc := range cases {
		if got := isPostgresTarget(tc.target); got != tc.want {
			t.Errorf("isPostgresTarget(%q) = %v, want %v", tc.target, got, tc.want)
		}
	}
}
