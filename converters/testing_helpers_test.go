package converters

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/darianmavgo/xlsqlite/converters/common"
)

// MockProvider implements common.RowProvider for testing
type MockProvider struct {
	tableNames []string
	headers    map[string][]string
	rows       map[string][][]string
	noRange    map[string]bool
	onScan     func(tableName string)
}

// Ensure MockProvider implements common.RowProvider
var _ common.RowProvider = (*MockProvider)(nil)

func (m *MockProvider) GetTableNames() []string {
	return m.tableNames
}

func (m *MockProvider) GetHeaders(tableName string) ([]string, error) {
	if m.noRange[tableName] {
		return nil, fmt.Errorf("sheet %s: %w", tableName, common.ErrNoRange)
	}
	return m.headers[tableName], nil
}

func (m *MockProvider) ScanRows(ctx context.Context, tableName string, yield func([]string) error) error {
	if m.onScan != nil {
		m.onScan(tableName)
	}
	for _, row := range m.rows[tableName] {
		if err := yield(row); err != nil {
			return err
		}
	}
	return nil
}

// newTestDB creates a database file in a temp dir and runs the statements on it.
func newTestDB(t *testing.T, stmts ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	defer db.Close()
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("failed to exec %q: %v", stmt, err)
		}
	}
	return path
}

func openTestDB(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&n); err != nil {
		t.Fatalf("failed to query sqlite_master: %v", err)
	}
	return n > 0
}

func columnNames(t *testing.T, db *sql.DB, table string) []string {
	t.Helper()
	rows, err := db.Query("SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		t.Fatalf("failed to get table info: %v", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatalf("failed to scan column info: %v", err)
		}
		names = append(names, name)
	}
	return names
}
