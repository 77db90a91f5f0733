package excel

import (
	"context"
	"fmt"
	"io"

	"github.com/darianmavgo/xlsqlite/converters"
	"github.com/darianmavgo/xlsqlite/converters/common"

	"github.com/xuri/excelize/v2"
)

func init() {
	converters.Register("excel", &excelDriver{})
}

type excelDriver struct{}

func (d *excelDriver) Open(path string, config *common.ConversionConfig) (common.RowProvider, error) {
	return NewExcelConverterWithConfig(path, config)
}

// ExcelConverter exposes the worksheets of a workbook as tables
type ExcelConverter struct {
	file      *excelize.File
	sheets    []string
	ranges    map[string][][]string // used range per sheet, loaded on first access
	rawValues bool
}

// Ensure ExcelConverter implements RowProvider
var _ common.RowProvider = (*ExcelConverter)(nil)

// Ensure ExcelConverter implements io.Closer
var _ io.Closer = (*ExcelConverter)(nil)

// NewExcelConverter opens the workbook at path
func NewExcelConverter(path string) (*ExcelConverter, error) {
	return NewExcelConverterWithConfig(path, nil)
}

// NewExcelConverterWithConfig opens the workbook at path with optional config
func NewExcelConverterWithConfig(path string, config *common.ConversionConfig) (*ExcelConverter, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file %s: %w: %w", path, converters.ErrOpen, err)
	}

	return &ExcelConverter{
		file:      f,
		sheets:    f.GetSheetList(),
		ranges:    make(map[string][][]string),
		rawValues: config == nil || !config.FormattedCellValues,
	}, nil
}

// GetTableNames implements RowProvider. Sheets are listed in workbook order.
func (e *ExcelConverter) GetTableNames() []string {
	return e.sheets
}

// GetHeaders implements RowProvider
func (e *ExcelConverter) GetHeaders(tableName string) ([]string, error) {
	rng, err := e.usedRange(tableName)
	if err != nil {
		return nil, err
	}
	return rng[0], nil
}

// ScanRows implements RowProvider
func (e *ExcelConverter) ScanRows(ctx context.Context, tableName string, yield func([]string) error) error {
	rng, err := e.usedRange(tableName)
	if err != nil {
		return err
	}
	defer delete(e.ranges, tableName)

	for _, row := range rng[1:] {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", converters.ErrInterrupted, err)
		}
		if err := yield(row); err != nil {
			return err
		}
	}
	return nil
}

// usedRange loads the rectangular used range of a sheet. A sheet that cannot
// be read or holds no values reports common.ErrNoRange.
func (e *ExcelConverter) usedRange(sheet string) ([][]string, error) {
	if rng, ok := e.ranges[sheet]; ok {
		return rng, nil
	}

	rows, err := e.file.GetRows(sheet, excelize.Options{RawCellValue: e.rawValues})
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w: %v", sheet, common.ErrNoRange, err)
	}

	rng := common.UsedRange(rows)
	if len(rng) == 0 {
		return nil, fmt.Errorf("sheet %s is empty: %w", sheet, common.ErrNoRange)
	}
	e.ranges[sheet] = rng
	return rng, nil
}

// Close closes the underlying Excel file
func (e *ExcelConverter) Close() error {
	if e.file != nil {
		return e.file.Close()
	}
	return nil
}
