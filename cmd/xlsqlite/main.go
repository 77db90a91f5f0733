package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/darianmavgo/xlsqlite/config"
	"github.com/darianmavgo/xlsqlite/converters"
	_ "github.com/darianmavgo/xlsqlite/converters/all"
	"github.com/darianmavgo/xlsqlite/converters/excel"
)

const banner = "xlsqlite: SQLite and Excel export/import tool"

func getDriverName(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "csv"
	}
	// Anything else is read as an XLSX workbook whatever its extension
	return "excel"
}

// exportToWorkbook writes every table of the database at dbPath to a worksheet
// of the workbook at workbookPath.
func exportToWorkbook(ctx context.Context, dbPath, workbookPath string, cfg *config.Config) error {
	catalog, err := converters.OpenCatalog(ctx, dbPath)
	if err != nil {
		return err
	}
	defer catalog.Close()

	writer := excel.NewWorkbookWriter()
	defer writer.Close()

	if err := converters.ExportToWorkbook(ctx, catalog, writer, cfg.ExportOptions()); err != nil {
		return err
	}

	// Ensure output directory exists
	if err := os.MkdirAll(filepath.Dir(workbookPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w: %w", converters.ErrOpen, err)
	}
	if err := writer.SaveAs(workbookPath); err != nil {
		return fmt.Errorf("%w: %w", converters.ErrOpen, err)
	}
	return nil
}

// importFromWorkbook loads every worksheet of the workbook at workbookPath into
// the database at dbPath.
func importFromWorkbook(ctx context.Context, workbookPath, dbPath string, cfg *config.Config) error {
	provider, err := converters.Open(getDriverName(workbookPath), workbookPath, cfg.ConversionConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize converter: %w", err)
	}
	// Clean up converter resources if it implements io.Closer
	if c, ok := provider.(io.Closer); ok {
		defer c.Close()
	}

	// Ensure output directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w: %w", converters.ErrOpen, err)
	}
	return converters.ImportToSQLite(ctx, provider, dbPath, cfg.ImportOptions())
}

func printUsage(w io.Writer, prog string) {
	fmt.Fprintf(w, "Usage: %s --export <database_path> <output_excel>\n", prog)
	fmt.Fprintf(w, "Usage: %s --import <excel_path> <output_database>\n", prog)
	fmt.Fprintln(w, "Options: --verbose  --config=<file.hcl>")
}

// run executes one command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	prog := "xlsqlite"
	if len(args) > 0 {
		prog = args[0]
		args = args[1:]
	}

	verbose := false
	configPath := ""

	// Filter out option flags
	var cleanArgs []string
	for _, arg := range args {
		switch {
		case arg == "--verbose":
			verbose = true
		case strings.HasPrefix(arg, "--config="):
			configPath = strings.TrimPrefix(arg, "--config=")
		default:
			cleanArgs = append(cleanArgs, arg)
		}
	}

	if len(cleanArgs) != 3 {
		fmt.Fprintln(stderr, banner)
		printUsage(stderr, prog)
		return 1
	}
	command, inputPath, outputPath := cleanArgs[0], cleanArgs[1], cleanArgs[2]

	if command != "--export" && command != "--import" {
		fmt.Fprintln(stderr, banner)
		fmt.Fprintf(stderr, "Invalid command: %s\n", command)
		printUsage(stderr, prog)
		return 1
	}

	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading config: %v\n", err)
			return 1
		}
		cfg = loaded
	}
	if verbose {
		cfg.Verbose = true
	}

	var err error
	switch command {
	case "--export":
		err = exportToWorkbook(ctx, inputPath, outputPath, cfg)
	case "--import":
		err = importFromWorkbook(ctx, inputPath, outputPath, cfg)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Successfully converted %s to %s\n", inputPath, outputPath)
	return 0
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
