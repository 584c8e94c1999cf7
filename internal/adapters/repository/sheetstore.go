package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/nobuchiyo/studylens/internal/domain/model"
)

// SheetStore backs the record store with a Google Sheet, the system's
// store of record. The first row of the configured range holds column
// headers; the normalizer resolves header drift, not this adapter.
type SheetStore struct {
	svc           *sheets.Service
	spreadsheetID string
	readRange     string

	credentialsFile string
}

// SheetOption applies a configuration option to the SheetStore.
type SheetOption func(*SheetStore)

// WithSpreadsheetID sets the backing spreadsheet.
func WithSpreadsheetID(id string) SheetOption {
	return func(s *SheetStore) {
		s.spreadsheetID = id
	}
}

// WithReadRange sets the A1 range holding the records, header row first.
func WithReadRange(a1 string) SheetOption {
	return func(s *SheetStore) {
		if a1 != "" {
			s.readRange = a1
		}
	}
}

// WithCredentialsFile points at the service-account JSON used to
// authorize the Sheets client.
func WithCredentialsFile(path string) SheetOption {
	return func(s *SheetStore) {
		s.credentialsFile = path
	}
}

// WithService injects a prebuilt Sheets service, mainly for tests.
func WithService(svc *sheets.Service) SheetOption {
	return func(s *SheetStore) {
		s.svc = svc
	}
}

// NewSheetStore creates a Sheets-backed store with configuration options.
func NewSheetStore(ctx context.Context, opts ...SheetOption) (*SheetStore, error) {
	s := &SheetStore{
		readRange: "シート1!A:F",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.spreadsheetID == "" {
		return nil, fmt.Errorf("%w: missing spreadsheet id", ErrStoreRejected)
	}
	if s.svc == nil {
		var clientOpts []option.ClientOption
		if s.credentialsFile != "" {
			clientOpts = append(clientOpts, option.WithCredentialsFile(s.credentialsFile))
		}
		clientOpts = append(clientOpts, option.WithScopes(sheets.SpreadsheetsScope))
		svc, err := sheets.NewService(ctx, clientOpts...)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
		s.svc = svc
	}
	return s, nil
}

// Load fetches the full record range and maps data rows onto the header
// row. Short rows pad as absent cells; the load is all-or-nothing.
func (s *SheetStore) Load(ctx context.Context) ([]model.RawRow, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return nil, wrapSheetsErr("load", err)
	}
	if len(resp.Values) <= 1 {
		return []model.RawRow{}, nil
	}

	headers := make([]string, 0, len(resp.Values[0]))
	for _, h := range resp.Values[0] {
		name, _ := h.(string)
		headers = append(headers, name)
	}

	rows := make([]model.RawRow, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		row := make(model.RawRow, len(headers))
		for i, header := range headers {
			if header == "" || i >= len(raw) {
				continue
			}
			row[header] = raw[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Append adds one record after the current range.
func (s *SheetStore) Append(ctx context.Context, rec model.Record) error {
	vr := &sheets.ValueRange{Values: [][]any{Cells(rec)}}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, s.readRange, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return wrapSheetsErr("append", err)
	}
	return nil
}

// wrapSheetsErr maps Sheets API failures onto the store sentinels:
// auth and permission failures are rejections, everything else means
// the store could not be reached.
func wrapSheetsErr(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s: %w", ErrStoreRejected, op, err)
		}
	}
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
}
