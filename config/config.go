package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/darianmavgo/xlsqlite/converters"
	"github.com/darianmavgo/xlsqlite/converters/common"
)

// Config represents the application configuration.
type Config struct {
	RowNumberColumn     string `hcl:"row_number_column,optional"`
	PlaceholderPrefix   string `hcl:"placeholder_prefix,optional"`
	FormattedCellValues bool   `hcl:"formatted_cell_values,optional"`
	CSVDelimiter        string `hcl:"csv_delimiter,optional"`
	Verbose             bool   `hcl:"verbose,optional"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		RowNumberColumn:   common.RowNumberColumn,
		PlaceholderPrefix: common.PlaceholderPrefix,
	}
}

// Load reads the configuration from the given HCL file.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(content, path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	cfg := DefaultConfig()
	diags = gohcl.DecodeBody(file.Body, nil, cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values the decoder cannot.
func (c *Config) Validate() error {
	if c.RowNumberColumn == "" {
		return fmt.Errorf("row_number_column must not be empty")
	}
	if c.PlaceholderPrefix == "" {
		return fmt.Errorf("placeholder_prefix must not be empty")
	}
	if utf8.RuneCountInString(c.CSVDelimiter) > 1 {
		return fmt.Errorf("csv_delimiter must be a single character, got %q", c.CSVDelimiter)
	}
	return nil
}

// Export writes the configuration to the specified file in HCL format.
func Export(path string, cfg *Config) error {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	root.SetAttributeValue("row_number_column", cty.StringVal(cfg.RowNumberColumn))
	root.SetAttributeValue("placeholder_prefix", cty.StringVal(cfg.PlaceholderPrefix))
	root.SetAttributeValue("formatted_cell_values", cty.BoolVal(cfg.FormattedCellValues))
	root.SetAttributeValue("csv_delimiter", cty.StringVal(cfg.CSVDelimiter))
	root.SetAttributeValue("verbose", cty.BoolVal(cfg.Verbose))

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	_, err = file.Write(f.Bytes())
	if err != nil {
		return fmt.Errorf("failed to write config to file: %w", err)
	}
	return nil
}

// ConversionConfig returns the reader settings for input workbooks.
func (c *Config) ConversionConfig() *common.ConversionConfig {
	cc := &common.ConversionConfig{
		FormattedCellValues: c.FormattedCellValues,
	}
	if c.CSVDelimiter != "" {
		cc.Delimiter, _ = utf8.DecodeRuneInString(c.CSVDelimiter)
	}
	return cc
}

// ImportOptions returns the settings of the import pipeline.
func (c *Config) ImportOptions() *converters.ImportOptions {
	return &converters.ImportOptions{
		RowNumberColumn:   c.RowNumberColumn,
		PlaceholderPrefix: c.PlaceholderPrefix,
		Verbose:           c.Verbose,
	}
}

// ExportOptions returns the settings of the export pipeline.
func (c *Config) ExportOptions() *converters.ExportOptions {
	return &converters.ExportOptions{Verbose: c.Verbose}
}
