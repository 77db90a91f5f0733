package converters

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/darianmavgo/xlsqlite/converters/common"
)

// ImportToSQLite creates one table per table of the provider in the database at
// dbPath (created if missing) and fills it with the provider's rows plus a
// sequential row number. Everything happens in a single transaction that is
// committed only when every table has been written; on any error it is rolled
// back and nothing from this call remains in the database.
func ImportToSQLite(ctx context.Context, provider common.RowProvider, dbPath string, opts *ImportOptions) (err error) {
	db, err := openSQLite(ctx, dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	// Larger page cache for the single import transaction
	if _, err := db.ExecContext(ctx, "PRAGMA cache_size = -2000"); err != nil {
		return fmt.Errorf("failed to set cache_size: %w: %w", ErrOpen, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w: %w", ErrData, err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Printf("[XLSQLITE] Rollback failed: %v", rbErr)
			}
		}
	}()

	if opts.verbose() {
		log.Printf("[XLSQLITE] Starting import into %s...", dbPath)
	}

	for _, tableName := range provider.GetTableNames() {
		rowCount, err := populateTable(ctx, tx, provider, tableName, opts)
		if err != nil {
			return err
		}
		if opts.verbose() && rowCount >= 0 {
			log.Printf("[XLSQLITE] Finished table %s, total rows: %d", tableName, rowCount)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w: %w", ErrData, err)
	}
	if opts.verbose() {
		log.Printf("[XLSQLITE] Import committed.")
	}
	return nil
}

// populateTable creates one table inside tx and inserts its rows. It returns -1
// when the table was skipped because it has no readable range or header.
func populateTable(ctx context.Context, tx *sql.Tx, provider common.RowProvider, tableName string, opts *ImportOptions) (int64, error) {
	headers, err := provider.GetHeaders(tableName)
	if errors.Is(err, common.ErrNoRange) {
		if opts.verbose() {
			log.Printf("[XLSQLITE] Skipping %s: %v", tableName, err)
		}
		return -1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read header of %s: %w: %w", tableName, ErrData, err)
	}
	if len(headers) == 0 {
		return -1, nil // Skip tables without headers
	}

	columns := common.DedupColumnNames(headers, opts.placeholderPrefix())
	rowNumberColumn := opts.rowNumberColumn()

	if opts.verbose() {
		log.Printf("[XLSQLITE] Creating table: %s with columns: %v", tableName, columns)
	}
	createTableSQL := common.GenCreateTableSQL(tableName, columns, rowNumberColumn)
	if _, err := tx.ExecContext(ctx, createTableSQL); err != nil {
		return 0, fmt.Errorf("failed to create table %s: %w: %w", tableName, ErrData, err)
	}

	fields := append(append([]string(nil), columns...), rowNumberColumn)
	insertSQL, err := common.GenPreparedStmt(tableName, fields, common.InsertStmt)
	if err != nil {
		return 0, fmt.Errorf("failed to generate insert statement for table %s: %w: %w", tableName, ErrData, err)
	}
	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert statement for table %s: %w: %w", tableName, ErrData, err)
	}
	defer stmt.Close()

	var rowNumber int64
	args := make([]any, len(fields))
	err = provider.ScanRows(ctx, tableName, func(row []string) error {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrInterrupted, err)
		}
		rowNumber++

		// Missing trailing cells are empty, extra cells are dropped
		for i := range columns {
			if i < len(row) {
				args[i] = row[i]
			} else {
				args[i] = ""
			}
		}
		args[len(columns)] = rowNumber

		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("failed to insert row %d in table %s: %w: %w", rowNumber, tableName, ErrData, err)
		}
		return nil
	})
	if err != nil {
		return rowNumber, err
	}
	return rowNumber, nil
}
