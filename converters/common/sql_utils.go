package common

import (
	"fmt"
	"strings"
)

// SQLStmtType defines the type of SQL statement to generate
type SQLStmtType string

const (
	InsertStmt SQLStmtType = "INSERT"
	SelectStmt SQLStmtType = "SELECT"
)

const (
	// RowNumberColumn is the synthetic column appended to every imported table.
	RowNumberColumn = "row_number"
	// PlaceholderPrefix names the columns generated for repeated headers: col1, col2, ...
	PlaceholderPrefix = "col"
)

// QuoteIdentifier quotes a table or column name for SQLite.
func QuoteIdentifier(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

/*
DedupColumnNames renames repeated header names.

The first occurrence of a name is kept. Every later occurrence is replaced by
{prefix}{N}, N counting renames from 1. The generated name joins the seen set
without being checked itself, so a later header equal to it is renamed again,
while a generated name equal to an earlier header is left as a duplicate.
*/
func DedupColumnNames(rawnames []string, prefix string) []string {
	names := make([]string, len(rawnames))
	seen := make(map[string]struct{}, len(rawnames))
	counter := 1

	for idx, name := range rawnames {
		if _, dup := seen[name]; dup {
			name = fmt.Sprintf("%s%d", prefix, counter)
			counter++
		}
		seen[name] = struct{}{}
		names[idx] = name
	}
	return names
}

// GenColumnTypes returns the declared type of each imported column.
// Everything is TEXT: cell values are stored as their text form.
func GenColumnTypes(columnnames []string) []string {
	coltypes := make([]string, len(columnnames))
	for idx := range columnnames {
		coltypes[idx] = "TEXT"
	}
	return coltypes
}

// GenPreparedStmt generates a prepared statement for the specified operation
func GenPreparedStmt(table string, fields []string, stmtType SQLStmtType) (string, error) {
	// Validate inputs
	if table == "" || len(fields) == 0 {
		return "", fmt.Errorf("table name and fields are required")
	}

	quoted := make([]string, len(fields))
	for i, field := range fields {
		quoted[i] = QuoteIdentifier(field)
	}

	var stmtSQL string
	switch stmtType {
	case InsertStmt:
		stmtSQL = fmt.Sprintf(`
INSERT INTO %s (
	%s
) VALUES (%s)`,
			QuoteIdentifier(table),
			strings.Join(quoted, ", "),
			strings.Repeat("?, ", len(fields)-1)+"?",
		)

	case SelectStmt:
		// Unary plus leaves values untouched but drops the declared type,
		// so the driver hands back stored text instead of parsing it.
		exprs := make([]string, len(quoted))
		for i, q := range quoted {
			exprs[i] = "+" + q + " AS " + q
		}
		stmtSQL = fmt.Sprintf(`
SELECT %s
FROM %s`,
			strings.Join(exprs, ", "),
			QuoteIdentifier(table),
		)

	default:
		return "", fmt.Errorf("unsupported statement type: %s", stmtType)
	}

	return strings.TrimSpace(stmtSQL), nil
}

// GenCreateTableSQL generates a CREATE TABLE IF NOT EXISTS statement with one
// TEXT column per name and a trailing INTEGER row number column.
func GenCreateTableSQL(tableName string, columnNames []string, rowNumberColumn string) string {
	colTypes := GenColumnTypes(columnNames)

	var builder strings.Builder
	builder.Grow(len(tableName) + len(columnNames)*20) // Heuristic pre-allocation

	builder.WriteString("CREATE TABLE IF NOT EXISTS ")
	builder.WriteString(QuoteIdentifier(tableName))
	builder.WriteString(" (")

	for i, name := range columnNames {
		builder.WriteString(QuoteIdentifier(name))
		builder.WriteByte(' ')
		builder.WriteString(colTypes[i])
		builder.WriteString(", ")
	}
	builder.WriteString(QuoteIdentifier(rowNumberColumn))
	builder.WriteString(" INTEGER)")

	return builder.String()
}
