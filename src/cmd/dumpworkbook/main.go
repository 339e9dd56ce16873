package main

import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"

	"water_seed/src/common"
)

func main() {
	common.LoadEnv()

	filePath := flag.String("file", common.WORKFLOW_DATA_PATH, "Path to the .xlsx file to dump")
	sheetID := flag.String("sheet-id", "", "Dump this Google spreadsheet instead of -file")
	flag.Parse()

	if *sheetID == "" {
		if _, err := os.Stat(*filePath); err != nil {
			log.Printf("Error: cannot access file %q: %v", *filePath, err)
			return
		}
	}

	wb, err := common.OpenWorkbook(context.Background(), *filePath, *sheetID)
	if err != nil {
		log.Printf("Error: %v", err)
		return
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	if err := common.DumpWorkbook(w, wb); err != nil {
		log.Printf("Error: %v", err)
	}
}
