package common

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsFile(t *testing.T) {
	t.Setenv("GOOGLE_CREDENTIALS_FILE", "")
	assert.Equal(t, "api.json", CredentialsFile())

	t.Setenv("GOOGLE_CREDENTIALS_FILE", "/secrets/water.json")
	assert.Equal(t, "/secrets/water.json", CredentialsFile())
}

func TestOpenWorkbook_LocalFile(t *testing.T) {
	wb, err := OpenWorkbook(context.Background(), writeTestWorkbook(t), "")
	require.NoError(t, err)
	require.Len(t, wb.Sheets, 2)
	assert.Equal(t, "C100", Cell(wb.Sheets[0].Rows[1], COL_CUSTOMER_ID))
}

func TestOpenWorkbook_SheetIDNeedsCredentials(t *testing.T) {
	t.Setenv("GOOGLE_CREDENTIALS_FILE", filepath.Join(t.TempDir(), "missing.json"))

	_, err := OpenWorkbook(context.Background(), "ignored.xlsx", "sheet-123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read service account file")
}
