package common

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Match is a row that contains a searched term.
type Match struct {
	Sheet string
	Term  string
	Index int // zero-based row index within the sheet
	Row   []string
}

// SearchRows finds rows containing any of terms, ignoring case. With column
// >= 0 only that column is checked, otherwise every cell. Results are ordered
// by sheet, then term, then row.
func SearchRows(wb *Workbook, terms []string, column int) []Match {
	var matches []Match
	for _, sheet := range wb.Sheets {
		for _, term := range terms {
			needle := strings.ToLower(term)
			for idx, row := range sheet.Rows {
				if rowContains(row, needle, column) {
					matches = append(matches, Match{Sheet: sheet.Name, Term: term, Index: idx, Row: row})
				}
			}
		}
	}
	return matches
}

func rowContains(row []string, needle string, column int) bool {
	if column >= 0 {
		return column < len(row) && strings.Contains(strings.ToLower(row[column]), needle)
	}
	for _, cell := range row {
		if strings.Contains(strings.ToLower(cell), needle) {
			return true
		}
	}
	return false
}

// ParseColumnRef turns "G", "aa" or "6" into a zero-based column index.
// Numbers are taken as already zero-based.
func ParseColumnRef(ref string) (int, error) {
	ref = strings.ToUpper(strings.TrimSpace(ref))
	if ref == "" {
		return 0, fmt.Errorf("empty column reference")
	}

	if n, err := strconv.Atoi(ref); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("negative column reference %q", ref)
		}
		return n, nil
	}

	col := 0
	for _, r := range ref {
		if r < 'A' || r > 'Z' {
			return 0, fmt.Errorf("invalid column reference %q", ref)
		}
		col = col*26 + int(r-'A') + 1
	}
	return col - 1, nil
}

// DumpWorkbook writes every row that has at least one non-empty value,
// showing only the non-empty trimmed values.
func DumpWorkbook(w io.Writer, wb *Workbook) error {
	for _, sheet := range wb.Sheets {
		if _, err := fmt.Fprintf(w, "--- SHEET: %s ---\n", sheet.Name); err != nil {
			return err
		}
		for idx, row := range sheet.Rows {
			var vals []string
			for _, cell := range row {
				if v := strings.TrimSpace(cell); v != "" {
					vals = append(vals, v)
				}
			}
			if len(vals) == 0 {
				continue
			}
			if _, err := fmt.Fprintf(w, "Row %d: %v\n", idx, vals); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "\n%s\n\n", strings.Repeat("=", 50)); err != nil {
			return err
		}
	}
	return nil
}
