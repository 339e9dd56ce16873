package common

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads an optional .env file from the working directory.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("WARNING: .env file not loaded:", err)
	}
}

// CredentialsFile is the service account key used for Google Sheets, taken
// from GOOGLE_CREDENTIALS_FILE or api.json.
func CredentialsFile() string {
	if path := os.Getenv("GOOGLE_CREDENTIALS_FILE"); path != "" {
		return path
	}
	return CREDENTIALS_FILE
}

// OpenWorkbook loads the Google spreadsheet sheetID when it is set, otherwise
// the local workbook at filePath.
func OpenWorkbook(ctx context.Context, filePath, sheetID string) (*Workbook, error) {
	if sheetID == "" {
		return LoadWorkbook(filePath)
	}

	b, err := os.ReadFile(CredentialsFile())
	if err != nil {
		return nil, fmt.Errorf("read service account file: %w", err)
	}
	srv, err := NewSheetsService(ctx, b)
	if err != nil {
		return nil, err
	}
	return LoadGoogleWorkbook(ctx, srv, sheetID)
}
