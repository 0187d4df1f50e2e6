package history

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/hanjaplatform/hanja-api/internal/models"
)

// ErrNothingToExport is returned when there are no records to write.
var ErrNothingToExport = errors.New("no data provided for export")

// ColumnOrder is the preferred spreadsheet column order. Other columns
// follow alphabetically.
var ColumnOrder = []string{"owner", "created", "action", "text", "pred", "user", "source", "target", "mode"}

// ExportSheet is the worksheet name of spreadsheet exports.
const ExportSheet = "History"

// ExportRecord is the shape of one record in a JSON export.
type ExportRecord struct {
	Action  models.Action   `json:"action"`
	Details json.RawMessage `json:"details"`
	Created time.Time       `json:"created"`
	Owner   string          `json:"owner"`
}

// ExportJSON writes records as an indented JSON array.
func ExportJSON(records []models.History) ([]byte, error) {
	out := make([]ExportRecord, 0, len(records))
	for _, r := range records {
		out = append(out, ExportRecord{
			Action:  r.Action,
			Details: r.Details,
			Created: r.Created,
			Owner:   r.Owner,
		})
	}
	return json.MarshalIndent(out, "", "  ")
}

// ExportFilename names an export produced at t.
func ExportFilename(t time.Time, ext string) string {
	return "history-export-" + t.UTC().Format("2006-01-02T15-04-05Z") + "." + ext
}

// Flatten turns each record into one row. Detail keys sit next to the
// record fields; a detail key that collides with a record field is
// prefixed with "details_". Non-string values are written as JSON text.
func Flatten(records []models.History) []map[string]string {
	rows := make([]map[string]string, 0, len(records))
	for _, r := range records {
		row := map[string]string{
			"action":  r.Action.Label(),
			"created": r.Created.UTC().Format(time.RFC3339),
			"owner":   r.Owner,
		}

		var details map[string]json.RawMessage
		if err := json.Unmarshal(r.Details, &details); err != nil {
			row["details"] = string(r.Details)
			rows = append(rows, row)
			continue
		}

		for k, v := range details {
			key := k
			if _, exists := row[key]; exists {
				key = "details_" + k
			}
			row[key] = cellText(v)
		}
		rows = append(rows, row)
	}
	return rows
}

func cellText(v json.RawMessage) string {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	if string(v) == "null" {
		return ""
	}
	return string(v)
}

// Columns returns the header for rows: ColumnOrder entries that appear,
// then the rest alphabetically.
func Columns(rows []map[string]string) []string {
	seen := make(map[string]bool)
	for _, row := range rows {
		for k := range row {
			seen[k] = true
		}
	}

	cols := make([]string, 0, len(seen))
	for _, c := range ColumnOrder {
		if seen[c] {
			cols = append(cols, c)
			delete(seen, c)
		}
	}
	rest := make([]string, 0, len(seen))
	for k := range seen {
		rest = append(rest, k)
	}
	sort.Strings(rest)
	return append(cols, rest...)
}

// ExportXLSX writes records as a spreadsheet with one header row.
func ExportXLSX(records []models.History) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrNothingToExport
	}
	rows := Flatten(records)
	cols := Columns(rows)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
	}
	if err := f.SetSheetRow(ExportSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		values := make([]any, len(cols))
		for j, c := range cols {
			values[j] = row[c]
		}
		if err := f.SetSheetRow(ExportSheet, "A"+strconv.Itoa(i+2), &values); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
