package dataset

import (
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"fcpulse/internal/errors"
)

// readWorkbook reads the first sheet with data from an Excel workbook.
// The club's source files carry a single data sheet, but exports sometimes
// include empty cover sheets, so every sheet is tried in order.
func (l *Loader) readWorkbook(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewStorageError(fmt.Sprintf("failed to open workbook %s", path), err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		if len(rows) > 0 {
			l.logger.Debug("reading workbook sheet",
				slog.String("path", path),
				slog.String("sheet", sheet),
				slog.Int("rows", len(rows)))
			return rows, nil
		}
	}

	return nil, errors.NewMissingDataError(
		fmt.Sprintf("workbook %s contains no data sheets", path), nil)
}
