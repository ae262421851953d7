package infra_sheets_movie

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/humanbelnik/movieshelf/core/internal/model"
	usecase_movie "github.com/humanbelnik/movieshelf/core/internal/usecase/movie"
)

const sheetName = "movies"

// Column layout of the movies sheet, row 1. Everything below row 1 is data
// rows in physical append order, one movie per row, columns A-G in exactly
// this order.
var headers = []string{"id", "coverUrl", "code", "Release date", "actors", "genre", "description"}

// Store is the row-oriented movie datastore on top of a spreadsheet.
// The backend has no transactions, no unique constraints and no stable row
// handles, so every mutation works off a physical row index taken from a
// snapshot read immediately before it. Indices must never be cached across
// calls: a concurrent row delete shifts everything below it up by one.
type Store struct {
	svc           *sheets.Service
	spreadsheetID string
}

func New(svc *sheets.Service, spreadsheetID string) *Store {
	return &Store{
		svc:           svc,
		spreadsheetID: spreadsheetID,
	}
}

// EnsureHeaders makes sure the movies sheet and its header row exist.
// Idempotent; runs before every read or write that depends on row layout.
func (s *Store) EnsureHeaders(ctx context.Context) error {
	ss, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	found := false
	for _, sh := range ss.Sheets {
		if sh.Properties != nil && strings.EqualFold(sh.Properties.Title, sheetName) {
			found = true
			break
		}
	}
	if !found {
		req := &sheets.BatchUpdateSpreadsheetRequest{
			Requests: []*sheets.Request{{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{Title: sheetName},
				},
			}},
		}
		if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
			// Lost the creation race to a concurrent request; fine.
			if !strings.Contains(err.Error(), "already exists") {
				return fmt.Errorf("failed to create sheet: %w", err)
			}
		}
	}

	headerRange := sheetName + "!A1:G1"
	read, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, headerRange).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to read header row: %w", err)
	}
	var existing []string
	if len(read.Values) > 0 {
		for _, cell := range read.Values[0] {
			existing = append(existing, fmt.Sprint(cell))
		}
	}
	if strings.Join(existing, ",") != strings.Join(headers, ",") {
		vr := &sheets.ValueRange{Values: [][]any{headerRow()}}
		_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, headerRange, vr).
			ValueInputOption("RAW").Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("failed to write header row: %w", err)
		}
	}
	return nil
}

// Snapshot reads all data rows in physical order. The returned slice keeps
// blank rows in place (as zero movies), so the index of an entry is exactly
// its physical data row index and can be handed to RewriteAt and DeleteAt.
func (s *Store) Snapshot(ctx context.Context) ([]model.Movie, error) {
	if err := s.EnsureHeaders(ctx); err != nil {
		return nil, err
	}
	read, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, sheetName+"!A2:G").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read movie rows: %w", err)
	}
	movies := make([]model.Movie, 0, len(read.Values))
	for _, row := range read.Values {
		movies = append(movies, rowToMovie(row))
	}
	return movies, nil
}

// Append adds one movie row at the physical end of the data range.
func (s *Store) Append(ctx context.Context, m model.Movie) error {
	if err := s.EnsureHeaders(ctx); err != nil {
		return err
	}
	vr := &sheets.ValueRange{Values: [][]any{movieToRow(m)}}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, sheetName+"!A:G", vr).
		ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to append movie row: %w", err)
	}
	return nil
}

// RewriteAt overwrites the data row at the given physical index with all
// seven fields of m.
func (s *Store) RewriteAt(ctx context.Context, index int, m model.Movie) error {
	rng := fmt.Sprintf("%s!A%d:G%d", sheetName, index+2, index+2)
	vr := &sheets.ValueRange{Values: [][]any{movieToRow(m)}}
	_, err := s.svc.Spreadsheets.Values.Update(s.spreadsheetID, rng, vr).
		ValueInputOption("RAW").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to rewrite movie row: %w", err)
	}
	return nil
}

// DeleteAt removes the data row at the given physical index. All rows below
// it shift up by one. Reports not-found when the sheet's numeric id cannot
// be resolved.
func (s *Store) DeleteAt(ctx context.Context, index int) error {
	ss, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to read spreadsheet: %w", err)
	}
	sheetID := int64(-1)
	for _, sh := range ss.Sheets {
		if sh.Properties != nil && sh.Properties.Title == sheetName {
			sheetID = sh.Properties.SheetId
			break
		}
	}
	if sheetID < 0 {
		return usecase_movie.ErrResourceNotFound
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(index + 1), // +1 for the header row
					EndIndex:   int64(index + 2),
				},
			},
		}},
	}
	if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete movie row: %w", err)
	}
	return nil
}

func headerRow() []any {
	row := make([]any, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	return row
}

func rowToMovie(row []any) model.Movie {
	return model.Movie{
		ID:          cell(row, 0),
		CoverURL:    cell(row, 1),
		Code:        cell(row, 2),
		Date:        cell(row, 3),
		Actors:      cell(row, 4),
		Genre:       cell(row, 5),
		Description: cell(row, 6),
	}
}

func movieToRow(m model.Movie) []any {
	return []any{m.ID, m.CoverURL, m.Code, m.Date, m.Actors, m.Genre, m.Description}
}

// cell returns the column as a string, "" for missing trailing cells.
func cell(row []any, i int) string {
	if i >= len(row) {
		return ""
	}
	if s, ok := row[i].(string); ok {
		return s
	}
	return fmt.Sprint(row[i])
}
