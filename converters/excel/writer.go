package excel

import (
	"fmt"
	"os"

	"github.com/darianmavgo/xlsqlite/converters/common"

	"github.com/xuri/excelize/v2"
)

// WorkbookWriter builds an XLSX workbook in memory, one streamed sheet at a time.
// Nothing touches the disk until SaveAs.
type WorkbookWriter struct {
	file    *excelize.File
	sheets  int
	current *streamSheet
}

// Ensure WorkbookWriter implements SheetWriter
var _ common.SheetWriter = (*WorkbookWriter)(nil)

// NewWorkbookWriter creates an empty workbook.
func NewWorkbookWriter() *WorkbookWriter {
	return &WorkbookWriter{file: excelize.NewFile()}
}

// NewSheet finishes the previous sheet and starts a new one. The first sheet
// takes over the workbook's default sheet.
func (w *WorkbookWriter) NewSheet(name string) (common.Sheet, error) {
	if err := w.flushCurrent(); err != nil {
		return nil, err
	}

	if w.sheets == 0 {
		defaultSheet := w.file.GetSheetName(0)
		if defaultSheet != name {
			if err := w.file.SetSheetName(defaultSheet, name); err != nil {
				return nil, fmt.Errorf("failed to name sheet %s: %w", name, err)
			}
		}
	} else {
		if _, err := w.file.NewSheet(name); err != nil {
			return nil, fmt.Errorf("failed to add sheet %s: %w", name, err)
		}
	}

	sw, err := w.file.NewStreamWriter(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open stream for sheet %s: %w", name, err)
	}
	w.sheets++
	w.current = &streamSheet{sw: sw}
	return w.current, nil
}

func (w *WorkbookWriter) flushCurrent() error {
	if w.current == nil {
		return nil
	}
	return w.current.Flush()
}

// SaveAs writes the workbook to path, creating or truncating it. The XLSX
// container is written whatever the file extension.
func (w *WorkbookWriter) SaveAs(path string) error {
	if err := w.flushCurrent(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create workbook file: %w", err)
	}
	if _, err := w.file.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close workbook file: %w", err)
	}
	return nil
}

// Close releases the in-memory workbook
func (w *WorkbookWriter) Close() error {
	return w.file.Close()
}

type streamSheet struct {
	sw      *excelize.StreamWriter
	flushed bool
}

// SetRow writes values as string cells starting in column A.
func (s *streamSheet) SetRow(row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row+1)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return s.sw.SetRow(cell, cells)
}

func (s *streamSheet) Flush() error {
	if s.flushed {
		return nil
	}
	s.flushed = true
	return s.sw.Flush()
}
