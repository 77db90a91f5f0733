package common

import (
	"context"
	"errors"
)

// ErrNoRange is returned by a RowProvider when a table has no readable cell range.
// The import pipeline skips such tables without reporting them.
var ErrNoRange = errors.New("no readable range")

// Column is one entry of a table's schema.
type Column struct {
	Name string
	Type string // declared type, informational only
}

// Table describes a relational table: its name and ordered columns.
type Table struct {
	Name    string
	Columns []Column
}

// ColumnNames returns the column names in schema order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// RowProvider defines the interface for providing data to be inserted into SQLite
type RowProvider interface {
	GetTableNames() []string
	// GetHeaders returns the raw header row of the table, or ErrNoRange.
	GetHeaders(tableName string) ([]string, error)
	// ScanRows iterates over the data rows (header excluded) for the given table.
	// Every row has the same width as the header.
	// If yield returns an error, iteration stops and that error is returned.
	ScanRows(ctx context.Context, tableName string, yield func([]string) error) error
}

// Catalog is the read side of a relational database.
type Catalog interface {
	ListTables(ctx context.Context) ([]string, error)
	TableInfo(ctx context.Context, tableName string) (Table, error)
	// ScanTable streams every row of the table, values ordered as table.Columns.
	ScanTable(ctx context.Context, table Table, yield func([]any) error) error
}

// SheetWriter creates the worksheets of an output workbook.
type SheetWriter interface {
	NewSheet(name string) (Sheet, error)
}

// Sheet receives rows for a single worksheet. Rows must be written in
// ascending order and Flush called once the sheet is complete.
type Sheet interface {
	// SetRow writes values at the 0-based row index, one string cell per value.
	SetRow(row int, values []string) error
	Flush() error
}
