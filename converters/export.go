package converters

import (
	"context"
	"fmt"
	"log"

	"github.com/darianmavgo/xlsqlite/converters/common"
)

// ExportToWorkbook writes every table of the catalog to its own sheet, named
// like the table: the column names on row 0, then one row per table row with
// every value converted by common.ValueText.
func ExportToWorkbook(ctx context.Context, catalog common.Catalog, writer common.SheetWriter, opts *ExportOptions) error {
	tables, err := catalog.ListTables(ctx)
	if err != nil {
		return err
	}

	for _, tableName := range tables {
		table, err := catalog.TableInfo(ctx, tableName)
		if err != nil {
			return err
		}
		if opts.verbose() {
			log.Printf("[XLSQLITE] Exporting table: %s with columns: %v", tableName, table.ColumnNames())
		}

		rowCount, err := exportTable(ctx, catalog, writer, table)
		if err != nil {
			return err
		}
		if opts.verbose() {
			log.Printf("[XLSQLITE] Finished table %s, total rows: %d", tableName, rowCount)
		}
	}
	return nil
}

func exportTable(ctx context.Context, catalog common.Catalog, writer common.SheetWriter, table common.Table) (int, error) {
	sheet, err := writer.NewSheet(table.Name)
	if err != nil {
		return 0, fmt.Errorf("failed to create sheet %s: %w: %w", table.Name, ErrData, err)
	}

	if err := sheet.SetRow(0, table.ColumnNames()); err != nil {
		return 0, fmt.Errorf("failed to write header of sheet %s: %w: %w", table.Name, ErrData, err)
	}

	rowIndex := 1
	cells := make([]string, len(table.Columns))
	err = catalog.ScanTable(ctx, table, func(values []any) error {
		if rowIndex >= xlsxMaxRows {
			return fmt.Errorf("table %s exceeds the %d rows of a sheet: %w", table.Name, xlsxMaxRows, ErrData)
		}
		for i, v := range values {
			cells[i] = common.ValueText(v)
		}
		if err := sheet.SetRow(rowIndex, cells); err != nil {
			return fmt.Errorf("failed to write row %d of sheet %s: %w: %w", rowIndex, table.Name, ErrData, err)
		}
		rowIndex++
		return nil
	})
	if err != nil {
		return rowIndex - 1, err
	}

	if err := sheet.Flush(); err != nil {
		return rowIndex - 1, fmt.Errorf("failed to flush sheet %s: %w: %w", table.Name, ErrData, err)
	}
	return rowIndex - 1, nil
}
