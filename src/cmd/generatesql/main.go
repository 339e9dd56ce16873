package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"water_seed/src/common"
)

func splitAreas(s string) []string {
	var areas []string
	for _, a := range strings.Split(s, ",") {
		if a = strings.TrimSpace(a); a != "" {
			areas = append(areas, a)
		}
	}
	return areas
}

// run generates every area before writing anything, so a failure leaves no
// partial set of files behind. It returns the names of the files written.
func run(ctx context.Context, filePath, sheetID string, areas []string, outDir string) ([]string, error) {
	wb, err := common.OpenWorkbook(ctx, filePath, sheetID)
	if err != nil {
		return nil, err
	}

	transformer := common.NewTransformer(common.DefaultLayout(), common.DefaultDayTable())
	scripts := make([]string, len(areas))
	for i, area := range areas {
		sql, summary, err := transformer.GenerateSQLForArea(wb, area)
		if err != nil {
			return nil, fmt.Errorf("generate SQL for %q: %w", area, err)
		}
		summary.Log()
		scripts[i] = sql
	}

	var written []string
	for i, area := range areas {
		name := common.AreaFileName(area)
		if err := common.WriteSQLFile(filepath.Join(outDir, name), scripts[i]); err != nil {
			return written, fmt.Errorf("write SQL for %q: %w", area, err)
		}
		written = append(written, name)
	}
	return written, nil
}

func main() {
	common.LoadEnv()

	filePath := flag.String("file", common.WATER_DATA_PATH, "Path to the water data workbook")
	areasFlag := flag.String("areas", common.DEFAULT_AREAS, "Comma-separated area names to generate")
	outDir := flag.String("outdir", ".", "Directory to write the .sql files to")
	sheetID := flag.String("sheet-id", "", "Read from this Google spreadsheet instead of -file")
	flag.Parse()

	areas := splitAreas(*areasFlag)
	if len(areas) == 0 {
		log.Println("no areas given")
		return
	}

	written, err := run(context.Background(), *filePath, *sheetID, areas, *outDir)
	if err != nil {
		log.Printf("Error: %v", err)
		return
	}

	fmt.Printf("SQL files generated: %s\n", strings.Join(written, ", "))
}
