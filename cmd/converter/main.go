package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"fcpulse/internal/config"
	"fcpulse/internal/infrastructure"
	"fcpulse/internal/validation"
)

// converter rewrites Excel dataset workbooks as CSV so the report pipeline
// can load them without the excelize round trip on every run.
func main() {
	inDir := flag.String("in", "", "directory holding .xlsx dataset files (defaults to data/ next to the executable)")
	outDir := flag.String("out", "", "directory for converted .csv files (defaults to the input directory)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := infrastructure.MustInitializeLogger(cfg.Logging)
	defer infrastructure.CloseLogFile()

	paths, err := config.GetPaths()
	if err != nil {
		logger.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	if *inDir == "" {
		*inDir = paths.DataDir
	}
	if *outDir == "" {
		*outDir = *inDir
	}

	validator := validation.NewFileValidator(logger)
	if err := validator.ValidateOutputDirectory(*outDir); err != nil {
		logger.Error("Output directory is not usable", "error", err)
		os.Exit(1)
	}

	matches, err := filepath.Glob(filepath.Join(*inDir, "*.xlsx"))
	if err != nil {
		logger.Error("Failed to scan input directory", "error", err)
		os.Exit(1)
	}
	if len(matches) == 0 {
		logger.Warn("No .xlsx files found", "directory", *inDir)
		return
	}

	converted := 0
	for _, path := range matches {
		// Excel leaves ~$ lock files next to open workbooks
		if strings.HasPrefix(filepath.Base(path), "~$") {
			continue
		}

		target := filepath.Join(*outDir,
			strings.TrimSuffix(filepath.Base(path), ".xlsx")+".csv")

		if err := convertWorkbook(path, target); err != nil {
			logger.Error("Conversion failed",
				"source", path,
				"target", target,
				"error", err)
			os.Exit(1)
		}

		logger.Info("Converted workbook",
			"source", path,
			"target", target)
		converted++
	}

	logger.Info("Conversion finished", "files", converted)
	fmt.Printf("Converted %d workbook(s) to CSV in %s\n", converted, *outDir)
}

// convertWorkbook writes the first non-empty sheet of the workbook as CSV.
func convertWorkbook(source, target string) error {
	workbook, err := excelize.OpenFile(source)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer workbook.Close()

	rows, err := firstSheetRows(workbook)
	if err != nil {
		return err
	}

	file, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create target: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	for _, row := range rows {
		// excelize trims trailing empty cells, pad so every row has
		// the full column count
		for len(row) < width {
			row = append(row, "")
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func firstSheetRows(workbook *excelize.File) ([][]string, error) {
	for _, sheet := range workbook.GetSheetList() {
		rows, err := workbook.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
		}
		if len(rows) > 0 {
			return rows, nil
		}
	}
	return nil, fmt.Errorf("workbook has no data")
}
