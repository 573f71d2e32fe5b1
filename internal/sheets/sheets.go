// Package sheets wraps the Google Sheets API as a positional row store.
// The spreadsheet's sub-sheets act as append-only tables; every caller
// addresses columns by index against a fixed, externally-defined order.
package sheets

import (
	"context"
	"fmt"

	"server/config"
	"server/internal/logger"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	spreadsheetsScope = "https://www.googleapis.com/auth/spreadsheets"
	// Columns A through AD, wide enough for every sheet schema in use.
	readRange = "A:AD"
)

// RowStore is the tabular-store surface the repositories and controllers
// depend on. Implemented by Service and faked in tests.
type RowStore interface {
	Append(ctx context.Context, sheet string, rows [][]interface{}) error
	ReadAll(ctx context.Context, sheet string) ([][]interface{}, error)
	DeleteRow(ctx context.Context, sheetID int64, rowIndex int64) error
}

type Service struct {
	svc           *sheets.Service
	spreadsheetID string
	log           logger.Logger
}

func NewService(ctx context.Context, config config.Config) (*Service, error) {
	log := logger.New("sheets").Function("NewService")

	if config.GoogleCredentials == "" {
		return nil, log.ErrMsg("no Google credentials configured")
	}
	if config.SpreadsheetID == "" {
		return nil, log.ErrMsg("no spreadsheet id configured")
	}

	creds, err := google.CredentialsFromJSON(ctx, []byte(config.GoogleCredentials), spreadsheetsScope)
	if err != nil {
		return nil, log.Err("invalid Google credentials JSON", err)
	}

	svc, err := sheets.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return nil, log.Err("failed to create sheets service", err)
	}

	return &Service{
		svc:           svc,
		spreadsheetID: config.SpreadsheetID,
		log:           logger.New("sheets"),
	}, nil
}

// Append adds rows at the bottom of the named sub-sheet.
func (s *Service) Append(ctx context.Context, sheet string, rows [][]interface{}) error {
	log := s.log.Function("Append")

	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, rangeFor(sheet, "A1"), &sheets.ValueRange{Values: rows}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return log.Err("failed to append rows", err, "sheet", sheet, "rows", len(rows))
	}

	return nil
}

// ReadAll returns every row of the named sub-sheet, header included.
func (s *Service) ReadAll(ctx context.Context, sheet string) ([][]interface{}, error) {
	log := s.log.Function("ReadAll")

	resp, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, rangeFor(sheet, readRange)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, log.Err("failed to read sheet", err, "sheet", sheet)
	}

	return resp.Values, nil
}

// DeleteRow removes a single row by zero-based index from the sub-sheet
// with the given numeric id.
func (s *Service) DeleteRow(ctx context.Context, sheetID int64, rowIndex int64) error {
	log := s.log.Function("DeleteRow")

	_, err := s.svc.Spreadsheets.
		BatchUpdate(s.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
			Requests: []*sheets.Request{{
				DeleteDimension: &sheets.DeleteDimensionRequest{
					Range: &sheets.DimensionRange{
						SheetId:    sheetID,
						Dimension:  "ROWS",
						StartIndex: rowIndex,
						EndIndex:   rowIndex + 1,
					},
				},
			}},
		}).
		Context(ctx).
		Do()
	if err != nil {
		return log.Err("failed to delete row", err, "sheetID", sheetID, "rowIndex", rowIndex)
	}

	return nil
}

// ResolveSheetGID looks up the numeric id of a sub-sheet by title. Used
// at startup when the drafts sheet gid is not configured.
func (s *Service) ResolveSheetGID(ctx context.Context, title string) (int64, error) {
	log := s.log.Function("ResolveSheetGID")

	spreadsheet, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return 0, log.Err("failed to get spreadsheet metadata", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == title {
			return sheet.Properties.SheetId, nil
		}
	}

	return 0, log.ErrMsg("sheet not found", "title", title)
}

func rangeFor(sheet, cells string) string {
	return fmt.Sprintf("'%s'!%s", sheet, cells)
}
