package common

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// AreaFileName is the output file for an area: "Chishti Nagar" -> "chishti_nagar.sql".
func AreaFileName(area string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(area)), " ", "_") + ".sql"
}

// WriteSQLFile writes text to path, replacing any existing file.
func WriteSQLFile(path, text string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(f)
	if _, err := w.WriteString(text); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}
