package converters

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/darianmavgo/xlsqlite/converters/common"

	_ "modernc.org/sqlite"
)

// SQLiteCatalog reads table metadata and rows out of a SQLite database file.
type SQLiteCatalog struct {
	db *sql.DB
}

// Ensure SQLiteCatalog implements Catalog
var _ common.Catalog = (*SQLiteCatalog)(nil)

// OpenCatalog opens an existing database file. Unlike sql.Open it never
// creates the file and fails early when the file is not a database.
func OpenCatalog(ctx context.Context, path string) (*SQLiteCatalog, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to stat database: %w: %w", ErrOpen, err)
	}

	db, err := openSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	return &SQLiteCatalog{db: db}, nil
}

// ListTables returns every table name in the order sqlite_master reports them.
func (c *SQLiteCatalog) ListTables(ctx context.Context) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, "SELECT name FROM sqlite_master WHERE type = 'table'")
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w: %w", ErrSchema, err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w: %w", ErrSchema, err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tables: %w: %w", ErrSchema, err)
	}
	return tables, nil
}

// TableInfo returns the columns of a table in declaration order.
func (c *SQLiteCatalog) TableInfo(ctx context.Context, tableName string) (common.Table, error) {
	rows, err := c.db.QueryContext(ctx, "SELECT name, type FROM pragma_table_info(?)", tableName)
	if err != nil {
		return common.Table{}, fmt.Errorf("failed to read columns of table %s: %w: %w", tableName, ErrSchema, err)
	}
	defer rows.Close()

	table := common.Table{Name: tableName}
	for rows.Next() {
		var col common.Column
		if err := rows.Scan(&col.Name, &col.Type); err != nil {
			return common.Table{}, fmt.Errorf("failed to scan column of table %s: %w: %w", tableName, ErrSchema, err)
		}
		table.Columns = append(table.Columns, col)
	}
	if err := rows.Err(); err != nil {
		return common.Table{}, fmt.Errorf("failed to read columns of table %s: %w: %w", tableName, ErrSchema, err)
	}
	if len(table.Columns) == 0 {
		return common.Table{}, fmt.Errorf("table %s reports no columns: %w", tableName, ErrSchema)
	}
	return table, nil
}

// ScanTable streams the rows of a table. The slice passed to yield is reused
// between rows.
func (c *SQLiteCatalog) ScanTable(ctx context.Context, table common.Table, yield func([]any) error) error {
	query, err := common.GenPreparedStmt(table.Name, table.ColumnNames(), common.SelectStmt)
	if err != nil {
		return fmt.Errorf("failed to generate select for table %s: %w: %w", table.Name, ErrSchema, err)
	}

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to query table %s: %w: %w", table.Name, ErrData, err)
	}
	defer rows.Close()

	values := make([]any, len(table.Columns))
	ptrs := make([]any, len(values))
	for i := range values {
		ptrs[i] = &values[i]
	}

	for rows.Next() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrInterrupted, err)
		}
		if err := rows.Scan(ptrs...); err != nil {
			return fmt.Errorf("failed to scan row of table %s: %w: %w", table.Name, ErrData, err)
		}
		if err := yield(values); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %w", ErrInterrupted, err)
		}
		return fmt.Errorf("failed to read rows of table %s: %w: %w", table.Name, ErrData, err)
	}
	return nil
}

// openSQLite opens (or creates) the database at path on a single connection
// and checks that it is readable.
func openSQLite(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w: %w", ErrOpen, err)
	}

	// Limit to 1 connection so the transaction and its statements share it
	db.SetMaxOpenConns(1)

	var n int
	if err := db.QueryRowContext(ctx, "SELECT count(*) FROM sqlite_master").Scan(&n); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to read database %s: %w: %w", path, ErrOpen, err)
	}
	return db, nil
}

// Close closes the underlying database
func (c *SQLiteCatalog) Close() error {
	return c.db.Close()
}
