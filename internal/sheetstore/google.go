package sheetstore

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// GoogleStore implements Store on top of the Google Sheets API. All operations
// target the first sheet of the spreadsheet, like the web UI's default tab.
type GoogleStore struct {
	service       *sheets.Service
	spreadsheetID string

	mu         sync.Mutex
	sheetID    int64
	sheetTitle string
	resolved   bool
}

// NewGoogleStore creates a store for the given spreadsheet ID. The spreadsheet
// is not contacted until the first operation, so a missing store surfaces as
// ErrStoreNotFound on use rather than at startup.
func NewGoogleStore(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*GoogleStore, error) {
	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}
	return &GoogleStore{service: service, spreadsheetID: spreadsheetID}, nil
}

// resolve caches the numeric ID and title of the first sheet, which dimension
// requests and A1 ranges need.
func (s *GoogleStore) resolve(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resolved {
		return nil
	}

	spreadsheet, err := s.service.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return wrapAPIError(err)
	}
	if len(spreadsheet.Sheets) == 0 || spreadsheet.Sheets[0].Properties == nil {
		return fmt.Errorf("spreadsheet %s has no sheets", s.spreadsheetID)
	}

	s.sheetID = spreadsheet.Sheets[0].Properties.SheetId
	s.sheetTitle = spreadsheet.Sheets[0].Properties.Title
	s.resolved = true
	return nil
}

func wrapAPIError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
		return fmt.Errorf("%w: %v", ErrStoreNotFound, err)
	}
	return err
}

func (s *GoogleStore) ReadRow(ctx context.Context, row int64) ([]string, error) {
	if err := s.resolve(ctx); err != nil {
		return nil, err
	}

	rangeRef := fmt.Sprintf("%s!%d:%d", s.sheetTitle, row, row)
	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, rangeRef).Context(ctx).Do()
	if err != nil {
		return nil, wrapAPIError(err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}

	cells := make([]string, 0, len(resp.Values[0]))
	for _, cell := range resp.Values[0] {
		cells = append(cells, fmt.Sprint(cell))
	}
	return cells, nil
}

func (s *GoogleStore) InsertRow(ctx context.Context, row int64, values []any) error {
	if err := s.resolve(ctx); err != nil {
		return err
	}

	insert := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			InsertDimension: &sheets.InsertDimensionRequest{
				Range: s.rowRange(row),
			},
		}},
	}
	if _, err := s.service.Spreadsheets.BatchUpdate(s.spreadsheetID, insert).Context(ctx).Do(); err != nil {
		return wrapAPIError(err)
	}

	valueRange := &sheets.ValueRange{Values: [][]interface{}{values}}
	rangeRef := fmt.Sprintf("%s!A%d", s.sheetTitle, row)
	_, err := s.service.Spreadsheets.Values.Update(s.spreadsheetID, rangeRef, valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return wrapAPIError(err)
	}
	return nil
}

func (s *GoogleStore) DeleteRow(ctx context.Context, row int64) error {
	if err := s.resolve(ctx); err != nil {
		return err
	}

	request := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: s.rowRange(row),
			},
		}},
	}
	if _, err := s.service.Spreadsheets.BatchUpdate(s.spreadsheetID, request).Context(ctx).Do(); err != nil {
		return wrapAPIError(err)
	}
	return nil
}

func (s *GoogleStore) AppendRow(ctx context.Context, values []any) error {
	if err := s.resolve(ctx); err != nil {
		return err
	}

	valueRange := &sheets.ValueRange{Values: [][]interface{}{values}}
	_, err := s.service.Spreadsheets.Values.Append(s.spreadsheetID, s.sheetTitle, valueRange).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return wrapAPIError(err)
	}
	return nil
}

func (s *GoogleStore) rowRange(row int64) *sheets.DimensionRange {
	return &sheets.DimensionRange{
		SheetId:    s.sheetID,
		Dimension:  "ROWS",
		StartIndex: row - 1,
		EndIndex:   row,
	}
}
