package common

import (
	"fmt"
	"log"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet is one worksheet read fully into memory. Rows are ragged: trailing
// empty cells are not stored.
type Sheet struct {
	Name string
	Rows [][]string
}

// Workbook is an ordered list of sheets.
type Workbook struct {
	Sheets []Sheet
}

// Cell returns the trimmed value at the given zero-based column, or "" when the
// row is too short.
func Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// LoadWorkbook reads every sheet of an .xlsx/.xlsm file. Cell values are read
// raw so that number formats (thousand separators, currency) don't leak into
// numeric columns.
func LoadWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %q: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("warning: failed to close workbook: %v", err)
		}
	}()

	wb := &Workbook{}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("read rows for sheet %q: %w", name, err)
		}
		wb.Sheets = append(wb.Sheets, Sheet{Name: name, Rows: rows})
	}
	return wb, nil
}
