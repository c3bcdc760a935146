package dataset

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"fcpulse/internal/errors"
)

// Loader reads the club datasets from CSV or Excel files.
type Loader struct {
	logger *slog.Logger
	// missingTolerance is the maximum tolerated fraction of rows whose
	// required numeric field is missing or unparseable.
	missingTolerance float64
}

// NewLoader creates a dataset loader with the given missing-value tolerance.
func NewLoader(logger *slog.Logger, missingTolerance float64) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger, missingTolerance: missingTolerance}
}

// StadiumOperations loads the stadium operations dataset.
// Expected columns: Month, Source, Revenue.
func (l *Loader) StadiumOperations(path string) ([]StadiumOperation, error) {
	rows, err := l.readTable(path)
	if err != nil {
		return nil, err
	}

	header, data, err := splitHeader(StadiumDataset, rows)
	if err != nil {
		return nil, err
	}

	cols := headerIndex(header)
	if err := requireColumns(StadiumDataset, cols, "month", "source", "revenue"); err != nil {
		return nil, err
	}

	var records []StadiumOperation
	missing := 0
	for i, row := range data {
		if rowEmpty(row) {
			continue
		}

		month, err := parseMonth(cell(row, cols["month"]))
		if err != nil {
			return nil, errors.NewParsingError(
				fmt.Sprintf("%s row %d: %v", StadiumDataset, i+2, err), nil)
		}

		source := cell(row, cols["source"])
		if source == "" {
			source = "Unknown"
		}

		revenue, ok := parseFloat(cell(row, cols["revenue"]))
		if !ok {
			missing++
		}

		records = append(records, StadiumOperation{
			Month:        month,
			Source:       source,
			Revenue:      revenue,
			RevenueValid: ok,
		})
	}

	if err := l.checkCompleteness(StadiumDataset, "Revenue", len(records), missing); err != nil {
		return nil, err
	}

	l.logger.Info("loaded stadium operations",
		slog.String("path", path),
		slog.Int("records", len(records)),
		slog.Int("missing_revenue", missing))

	return records, nil
}

// MerchandiseSales loads the merchandise sales dataset.
// Expected columns: Item_Category, Channel, Unit_Price, Promotion,
// Selling_Date, Customer_Region; Arrival_Date and Customer_Age_Group are
// optional.
func (l *Loader) MerchandiseSales(path string) ([]MerchandiseSale, error) {
	rows, err := l.readTable(path)
	if err != nil {
		return nil, err
	}

	header, data, err := splitHeader(MerchandiseDataset, rows)
	if err != nil {
		return nil, err
	}

	cols := headerIndex(header)
	if err := requireColumns(MerchandiseDataset, cols,
		"item_category", "channel", "unit_price", "promotion", "selling_date", "customer_region"); err != nil {
		return nil, err
	}

	var records []MerchandiseSale
	missing := 0
	for _, row := range data {
		if rowEmpty(row) {
			continue
		}

		price, ok := parseFloat(cell(row, cols["unit_price"]))
		if !ok {
			missing++
		}

		category := cell(row, cols["item_category"])
		if category == "" {
			category = "Unknown"
		}
		channel := cell(row, cols["channel"])
		if channel == "" {
			channel = "Unknown"
		}
		ageGroup := ""
		if idx, exists := cols["customer_age_group"]; exists {
			ageGroup = cell(row, idx)
		}
		if ageGroup == "" {
			ageGroup = "Unknown"
		}

		sale := MerchandiseSale{
			Category:       category,
			Channel:        channel,
			UnitPrice:      price,
			UnitPriceValid: ok,
			Promotion:      parseBool(cell(row, cols["promotion"])),
			SellingDate:    parseDate(cell(row, cols["selling_date"])),
			Region:         NormalizeRegion(cell(row, cols["customer_region"])),
			AgeGroup:       ageGroup,
		}
		if idx, exists := cols["arrival_date"]; exists {
			sale.ArrivalDate = parseDate(cell(row, idx))
		}

		records = append(records, sale)
	}

	if err := l.checkCompleteness(MerchandiseDataset, "Unit_Price", len(records), missing); err != nil {
		return nil, err
	}

	l.logger.Info("loaded merchandise sales",
		slog.String("path", path),
		slog.Int("records", len(records)),
		slog.Int("missing_unit_price", missing))

	return records, nil
}

// FanMembers loads the fanbase engagement dataset.
// Expected columns: Member_ID, Age_Group, Customer_Region, Games_Attended,
// Seasonal_Pass.
func (l *Loader) FanMembers(path string) ([]FanMember, error) {
	rows, err := l.readTable(path)
	if err != nil {
		return nil, err
	}

	header, data, err := splitHeader(FanbaseDataset, rows)
	if err != nil {
		return nil, err
	}

	cols := headerIndex(header)
	if err := requireColumns(FanbaseDataset, cols,
		"member_id", "age_group", "customer_region", "games_attended", "seasonal_pass"); err != nil {
		return nil, err
	}

	var records []FanMember
	missing := 0
	for _, row := range data {
		if rowEmpty(row) {
			continue
		}

		games, ok := parseInt(cell(row, cols["games_attended"]))
		if !ok {
			missing++
		}

		ageGroup := cell(row, cols["age_group"])
		if ageGroup == "" {
			ageGroup = "Unknown"
		}

		records = append(records, FanMember{
			MemberID:      cell(row, cols["member_id"]),
			AgeGroup:      ageGroup,
			Region:        NormalizeRegion(cell(row, cols["customer_region"])),
			GamesAttended: games,
			GamesValid:    ok,
			SeasonalPass:  parseBool(cell(row, cols["seasonal_pass"])),
		})
	}

	if err := l.checkCompleteness(FanbaseDataset, "Games_Attended", len(records), missing); err != nil {
		return nil, err
	}

	l.logger.Info("loaded fan members",
		slog.String("path", path),
		slog.Int("records", len(records)),
		slog.Int("missing_games_attended", missing))

	return records, nil
}

// checkCompleteness enforces the empty-dataset and missing-value rules.
func (l *Loader) checkCompleteness(dataset, column string, total, missing int) error {
	if total == 0 {
		return errors.NewMissingDataError(
			fmt.Sprintf("%s dataset is empty", dataset), nil).
			WithContext("dataset", dataset)
	}

	fraction := float64(missing) / float64(total)
	if fraction > l.missingTolerance {
		return errors.NewMissingDataError(
			fmt.Sprintf("%s dataset: %.1f%% of %s values are missing (tolerance %.1f%%)",
				dataset, fraction*100, column, l.missingTolerance*100), nil).
			WithContext("dataset", dataset).
			WithContext("column", column).
			WithContext("missing", missing).
			WithContext("total", total)
	}

	return nil
}

// readTable reads a tabular file into rows of cells. The format is chosen
// by extension: Excel workbooks go through excelize, everything else is CSV.
func (l *Loader) readTable(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xls":
		return l.readWorkbook(path)
	default:
		return l.readCSV(path)
	}
}

func (l *Loader) readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("failed to open %s", path), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewParsingError(fmt.Sprintf("failed to parse CSV %s", path), err)
	}

	// Strip a UTF-8 BOM left by spreadsheet exports
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\uFEFF")
	}

	return rows, nil
}

// splitHeader separates the header row from the data rows.
func splitHeader(dataset string, rows [][]string) ([]string, [][]string, error) {
	if len(rows) == 0 {
		return nil, nil, errors.NewMissingDataError(
			fmt.Sprintf("%s dataset is empty", dataset), nil).
			WithContext("dataset", dataset)
	}
	return rows[0], rows[1:], nil
}

// headerIndex maps normalized column names to their positions.
// Headers are matched case-insensitively with spaces treated as underscores,
// so "Unit Price", "unit_price" and "Unit_Price" are equivalent.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		normalized := strings.ToLower(strings.TrimSpace(name))
		normalized = strings.ReplaceAll(normalized, " ", "_")
		if normalized != "" {
			if _, exists := index[normalized]; !exists {
				index[normalized] = i
			}
		}
	}
	return index
}

func requireColumns(dataset string, cols map[string]int, required ...string) error {
	for _, name := range required {
		if _, exists := cols[name]; !exists {
			return errors.NewSchemaMismatchError(dataset, name)
		}
	}
	return nil
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func rowEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseFloat parses a numeric cell, tolerating thousands separators and a
// leading currency sign. Returns false for blank or unparseable values.
func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimPrefix(s, "$"))
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseInt(s string) (int, bool) {
	v, ok := parseFloat(s)
	if !ok {
		return 0, false
	}
	return int(v), true
}

// parseBool parses the flag encodings seen in the source exports.
// Blank and unrecognized values count as false.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1":
		return true
	default:
		return false
	}
}

// parseMonth accepts a month number (1-12) or an English month name,
// full or three-letter.
func parseMonth(s string) (time.Month, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("month is empty")
	}

	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= 12 {
			return time.Month(n), nil
		}
		return 0, fmt.Errorf("month %d out of range", n)
	}

	for m := time.January; m <= time.December; m++ {
		name := m.String()
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) {
			return m, nil
		}
	}

	return 0, fmt.Errorf("unrecognized month %q", s)
}

// dateLayouts are tried in order when parsing date cells.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
}

// parseDate returns the zero time for blank or unparseable dates; callers
// treat the zero time as "unknown".
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
