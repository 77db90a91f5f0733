package csv

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/darianmavgo/xlsqlite/converters"
	"github.com/darianmavgo/xlsqlite/converters/common"
)

func init() {
	converters.Register("csv", &csvDriver{})
}

// CSVTB names the table when neither the config nor a file name provides one.
const CSVTB = "tb0"

type csvDriver struct{}

func (d *csvDriver) Open(path string, config *common.ConversionConfig) (common.RowProvider, error) {
	return NewCSVConverterFromFile(path, config)
}

// CSVConverter exposes a CSV file as a workbook with a single sheet
type CSVConverter struct {
	rows   [][]string // used range, header first
	Config common.ConversionConfig
}

// Ensure CSVConverter implements RowProvider
var _ common.RowProvider = (*CSVConverter)(nil)

// NewCSVConverterFromFile reads the CSV file at path. Unless the config names
// it, the table is named after the file without its extension.
func NewCSVConverterFromFile(path string, config *common.ConversionConfig) (*CSVConverter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w: %w", converters.ErrOpen, err)
	}
	defer f.Close()

	cfg := common.ConversionConfig{}
	if config != nil {
		cfg = *config
	}
	if cfg.TableName == "" {
		base := filepath.Base(path)
		cfg.TableName = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return NewCSVConverterWithConfig(f, &cfg)
}

// NewCSVConverterWithConfig reads CSV from r. The delimiter is detected from
// the first line when the config leaves it unset.
func NewCSVConverterWithConfig(r io.Reader, config *common.ConversionConfig) (*CSVConverter, error) {
	cfg := common.ConversionConfig{}
	if config != nil {
		cfg = *config
	}
	if cfg.TableName == "" {
		cfg.TableName = CSVTB
	}

	br := bufio.NewReaderSize(r, 65536)

	// Detect delimiter if not set
	if cfg.Delimiter == 0 {
		peekBytes, _ := br.Peek(2048)
		sample := string(peekBytes)
		if idx := strings.IndexAny(sample, "\r\n"); idx != -1 {
			sample = sample[:idx]
		}
		cfg.Delimiter = common.DetectDelimiter(sample)
	}

	reader := csv.NewReader(br)
	reader.Comma = cfg.Delimiter
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w: %w", converters.ErrData, err)
	}

	return &CSVConverter{
		rows:   common.UsedRange(records),
		Config: cfg,
	}, nil
}

// GetTableNames implements RowProvider
func (c *CSVConverter) GetTableNames() []string {
	return []string{c.Config.TableName}
}

// GetHeaders implements RowProvider
func (c *CSVConverter) GetHeaders(tableName string) ([]string, error) {
	if tableName != c.Config.TableName || len(c.rows) == 0 {
		return nil, fmt.Errorf("table %s: %w", tableName, common.ErrNoRange)
	}
	return c.rows[0], nil
}

// ScanRows implements RowProvider
func (c *CSVConverter) ScanRows(ctx context.Context, tableName string, yield func([]string) error) error {
	if tableName != c.Config.TableName || len(c.rows) == 0 {
		return nil
	}

	for _, row := range c.rows[1:] {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %w", converters.ErrInterrupted, err)
		}
		if err := yield(row); err != nil {
			return err
		}
	}
	return nil
}
