package common

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// NewSheetsService builds a read-only Sheets client from a service account key.
func NewSheetsService(ctx context.Context, credentialsJSON []byte) (*sheets.Service, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account key: %w", err)
	}
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}
	return srv, nil
}

// LoadGoogleWorkbook reads every tab of a Google spreadsheet, in tab order,
// into the same shape LoadWorkbook produces for local files.
func LoadGoogleWorkbook(ctx context.Context, srv *sheets.Service, spreadsheetID string) (*Workbook, error) {
	ss, err := srv.Spreadsheets.Get(spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get spreadsheet %s: %w", spreadsheetID, err)
	}

	wb := &Workbook{}
	for _, s := range ss.Sheets {
		if s.Properties == nil {
			continue
		}
		title := s.Properties.Title
		// Quote the title so names with spaces are valid A1 ranges.
		rng := "'" + strings.ReplaceAll(title, "'", "''") + "'"
		vr, err := srv.Spreadsheets.Values.Get(spreadsheetID, rng).
			ValueRenderOption("UNFORMATTED_VALUE").
			Context(ctx).
			Do()
		if err != nil {
			return nil, fmt.Errorf("read values for sheet %q: %w", title, err)
		}

		rows := make([][]string, 0, len(vr.Values))
		for _, values := range vr.Values {
			row := make([]string, len(values))
			for i, v := range values {
				row[i] = cellString(v)
			}
			rows = append(rows, row)
		}
		wb.Sheets = append(wb.Sheets, Sheet{Name: title, Rows: rows})
	}
	return wb, nil
}

// cellString renders an unformatted Sheets API value the way excelize renders
// raw cell values.
func cellString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	default:
		return fmt.Sprintf("%v", val)
	}
}
