package common

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeTestWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	header := []interface{}{"#", "Date", "ID", "Name", "Days", "Area", "Req", "", "Out", "", "Opening", "", "Phone"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &header))
	row := []interface{}{1, "", "C100", "Ali's Shop", "Mon,Fri", "Chishti Nagar", 2, "", 0, "", 1500, "", "03001234567"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &row))

	// A display format must not change what the loader sees.
	style, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	require.NoError(t, err)
	require.NoError(t, f.SetCellStyle("Sheet1", "K2", "K2", style))

	_, err = f.NewSheet("Mansoor")
	require.NoError(t, err)
	other := []interface{}{2, "", "M1", "Bilal", "Daily", "Mansoor Nagar"}
	require.NoError(t, f.SetSheetRow("Mansoor", "A1", &other))

	path := filepath.Join(t.TempDir(), "water.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadWorkbook(t *testing.T) {
	wb, err := LoadWorkbook(writeTestWorkbook(t))
	require.NoError(t, err)

	require.Len(t, wb.Sheets, 2)
	assert.Equal(t, "Sheet1", wb.Sheets[0].Name)
	assert.Equal(t, "Mansoor", wb.Sheets[1].Name)

	rows := wb.Sheets[0].Rows
	require.Len(t, rows, 2)
	assert.Equal(t, "C100", Cell(rows[1], COL_CUSTOMER_ID))
	assert.Equal(t, "Chishti Nagar", Cell(rows[1], COL_AREA))
	assert.Equal(t, "1500", Cell(rows[1], COL_OPENING_BALANCE))
	assert.Equal(t, "03001234567", Cell(rows[1], COL_PHONE))
}

func TestLoadWorkbook_EndToEnd(t *testing.T) {
	wb, err := LoadWorkbook(writeTestWorkbook(t))
	require.NoError(t, err)

	sql, summary, err := newTestTransformer().GenerateSQLForArea(wb, "Chishti Nagar")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Matched)
	assert.Contains(t, sql, "VALUES ('C100', 'Ali''s Shop', 'C100@gmail.com', '03001234567', 'Chishti Nagar', v_area_id, ARRAY['Monday', 'Friday'], 2, 0, 1500.0, 1500.0)")

	_, summary, err = newTestTransformer().GenerateSQLForArea(wb, "Mansoor Nagar")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Matched)
}

func TestLoadWorkbook_MissingFile(t *testing.T) {
	_, err := LoadWorkbook(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}
