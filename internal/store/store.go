package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/controleponto/ponto/internal/punch"
)

const sheetName = "Sheet1"

// TimestampLayout is how the terminal writes Data_Hora cells.
const TimestampLayout = "02-01-2006 15:04:05"

// parseLayouts covers the terminal's format plus the variants that show up
// in hand-edited rows.
var parseLayouts = []string{
	TimestampLayout,
	"02/01/2006 15:04:05",
	"2006-01-02 15:04:05",
}

// Store reads and appends punch rows in the spreadsheet record file.
// There is no locking: the terminal is assumed to be the only writer and
// not to run concurrently with a dashboard reload.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// parseTimestamp tries the known cell layouts. Malformed values yield the
// zero time so a bad row degrades to Incompleto instead of failing the load.
func parseTimestamp(cell string) time.Time {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t
		}
	}
	return time.Time{}
}

// LoadAll scans the first sheet and returns every punch row in file order.
// Status is left for the caller to derive. A missing file is an empty
// store, not an error.
func (s *Store) LoadAll() ([]punch.Punch, error) {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil, nil
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open record store: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read sheet rows: %w", err)
	}

	var punches []punch.Punch
	for i, row := range rows {
		if i == 0 {
			// Header row: Nome, Cargo, Data_Hora.
			continue
		}
		var p punch.Punch
		if len(row) > 0 {
			p.Nome = row[0]
		}
		if len(row) > 1 {
			p.Cargo = row[1]
		}
		if len(row) > 2 {
			p.Timestamp = parseTimestamp(row[2])
		}
		punches = append(punches, p)
	}
	return punches, nil
}

// Append writes one punch at the next free row of the first sheet, creating
// the file with a header row when it does not exist yet. Prior rows are
// never rewritten.
func (s *Store) Append(p punch.Punch) error {
	var f *excelize.File
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		f = excelize.NewFile()
		header := []any{"Nome", "Cargo", "Data_Hora"}
		if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	} else {
		var openErr error
		f, openErr = excelize.OpenFile(s.path)
		if openErr != nil {
			return fmt.Errorf("open record store: %w", openErr)
		}
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return fmt.Errorf("read sheet rows: %w", err)
	}

	cell, err := excelize.CoordinatesToCellName(1, len(rows)+1)
	if err != nil {
		return fmt.Errorf("compute append cell: %w", err)
	}

	ts := ""
	if p.HasTimestamp() {
		ts = p.Timestamp.Format(TimestampLayout)
	}
	values := []any{p.Nome, p.Cargo, ts}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("append row: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create record directory: %w", err)
		}
	}
	if err := f.SaveAs(s.path); err != nil {
		return fmt.Errorf("save record store: %w", err)
	}
	return nil
}
