package converters

import (
	"errors"

	"github.com/darianmavgo/xlsqlite/converters/common"
)

var (
	ErrOpen        = errors.New("cannot open file")
	ErrSchema      = errors.New("cannot introspect schema")
	ErrData        = errors.New("cannot convert data")
	ErrInterrupted = errors.New("operation interrupted by user")
)

// xlsxMaxRows is the number of rows an XLSX worksheet can hold, header included.
const xlsxMaxRows = 1048576

// ImportOptions defines configuration for the import process.
type ImportOptions struct {
	RowNumberColumn   string // Name of the synthetic row number column, defaults to row_number
	PlaceholderPrefix string // Prefix for renamed duplicate headers, defaults to col
	Verbose           bool   // If true, enables detailed logging.
}

// ExportOptions defines configuration for the export process.
type ExportOptions struct {
	Verbose bool // If true, enables detailed logging.
}

func (o *ImportOptions) rowNumberColumn() string {
	if o == nil || o.RowNumberColumn == "" {
		return common.RowNumberColumn
	}
	return o.RowNumberColumn
}

func (o *ImportOptions) placeholderPrefix() string {
	if o == nil || o.PlaceholderPrefix == "" {
		return common.PlaceholderPrefix
	}
	return o.PlaceholderPrefix
}

func (o *ImportOptions) verbose() bool {
	return o != nil && o.Verbose
}

func (o *ExportOptions) verbose() bool {
	return o != nil && o.Verbose
}
