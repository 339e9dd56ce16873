package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"water_seed/src/common"
)

func main() {
	common.LoadEnv()

	filePath := flag.String("file", common.WATER_DATA_PATH, "Path to the workbook to search")
	sheetID := flag.String("sheet-id", "", "Search this Google spreadsheet instead of -file")
	termsFlag := flag.String("terms", common.DEFAULT_AREAS, "Comma-separated search terms")
	column := flag.String("col", "", "Only search this column (letter like F or zero-based index like 5)")
	flag.Parse()

	col := -1
	if *column != "" {
		idx, err := common.ParseColumnRef(*column)
		if err != nil {
			log.Fatalf("bad -col: %v", err)
		}
		col = idx
	}

	var terms []string
	for _, t := range strings.Split(*termsFlag, ",") {
		if t = strings.TrimSpace(t); t != "" {
			terms = append(terms, t)
		}
	}

	wb, err := common.OpenWorkbook(context.Background(), *filePath, *sheetID)
	if err != nil {
		log.Printf("Error: %v", err)
		return
	}

	// Print a heading for every sheet/term pair even when nothing matched.
	matches := common.SearchRows(wb, terms, col)
	for _, sheet := range wb.Sheets {
		for _, term := range terms {
			fmt.Printf("--- Searching for '%s' in '%s' ---\n", term, sheet.Name)
			for _, m := range matches {
				if m.Sheet == sheet.Name && m.Term == term {
					fmt.Printf("Row %d: %q\n", m.Index, m.Row)
				}
			}
		}
	}
}
