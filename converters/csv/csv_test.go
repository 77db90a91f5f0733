package csv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/darianmavgo/xlsqlite/converters"
	"github.com/darianmavgo/xlsqlite/converters/common"
	"github.com/google/go-cmp/cmp"
)

func scanAll(t *testing.T, c *CSVConverter, table string) [][]string {
	t.Helper()
	var rows [][]string
	err := c.ScanRows(context.Background(), table, func(row []string) error {
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		t.Fatalf("ScanRows failed: %v", err)
	}
	return rows
}

func TestCSVConverterDelimiters(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Comma", "a,b\n1,2\n3,4\n"},
		{"Semicolon", "a;b\n1;2\n3;4\n"},
		{"Tab", "a\tb\n1\t2\n3\t4\n"},
		{"Pipe", "a|b\r\n1|2\r\n3|4\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCSVConverterWithConfig(strings.NewReader(tt.input), &common.ConversionConfig{TableName: "t"})
			if err != nil {
				t.Fatalf("NewCSVConverterWithConfig failed: %v", err)
			}
			headers, err := c.GetHeaders("t")
			if err != nil {
				t.Fatalf("GetHeaders failed: %v", err)
			}
			if diff := cmp.Diff([]string{"a", "b"}, headers); diff != "" {
				t.Errorf("headers mismatch (-want +got):\n%s", diff)
			}
			want := [][]string{{"1", "2"}, {"3", "4"}}
			if diff := cmp.Diff(want, scanAll(t, c, "t")); diff != "" {
				t.Errorf("rows mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCSVConverterRaggedRows(t *testing.T) {
	input := "a,b\n1\n2,3,4\n"
	c, err := NewCSVConverterWithConfig(strings.NewReader(input), &common.ConversionConfig{TableName: "t", Delimiter: ','})
	if err != nil {
		t.Fatalf("NewCSVConverterWithConfig failed: %v", err)
	}

	headers, _ := c.GetHeaders("t")
	if diff := cmp.Diff([]string{"a", "b", ""}, headers); diff != "" {
		t.Errorf("headers mismatch (-want +got):\n%s", diff)
	}
	want := [][]string{{"1", "", ""}, {"2", "3", "4"}}
	if diff := cmp.Diff(want, scanAll(t, c, "t")); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestCSVConverterFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.csv")
	if err := os.WriteFile(path, []byte("id,item\n1,pen\n"), 0644); err != nil {
		t.Fatal(err)
	}

	provider, err := converters.Open("csv", path, nil)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if diff := cmp.Diff([]string{"orders"}, provider.GetTableNames()); diff != "" {
		t.Errorf("table names mismatch (-want +got):\n%s", diff)
	}
}

func TestCSVConverterEmpty(t *testing.T) {
	c, err := NewCSVConverterWithConfig(strings.NewReader(""), &common.ConversionConfig{TableName: "t"})
	if err != nil {
		t.Fatalf("NewCSVConverterWithConfig failed: %v", err)
	}
	if _, err := c.GetHeaders("t"); !errors.Is(err, common.ErrNoRange) {
		t.Errorf("expected ErrNoRange, got %v", err)
	}
}

func TestCSVConverterMissingFile(t *testing.T) {
	_, err := NewCSVConverterFromFile(filepath.Join(t.TempDir(), "missing.csv"), nil)
	if !errors.Is(err, converters.ErrOpen) {
		t.Fatalf("expected ErrOpen, got %v", err)
	}
}
