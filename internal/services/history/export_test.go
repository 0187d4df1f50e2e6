package history

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hanjaplatform/hanja-api/internal/models"
)

var exportTime = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func exportRecords() []models.History {
	return []models.History{
		{
			ID:      "1",
			Action:  models.ActionNER,
			Owner:   "alice",
			Created: exportTime,
			Details: json.RawMessage(`{"text":"王安石","pred":[{"start":0,"end":3,"tag":"PER"}],"owner":"spoofed"}`),
		},
		{
			ID:      "2",
			Action:  models.ActionTranslate,
			Owner:   "alice",
			Created: exportTime.Add(time.Minute),
			Details: json.RawMessage(`{"text":"學而","source":"Hanja","target":"Korean","zeta":3}`),
		},
	}
}

func TestExportJSON(t *testing.T) {
	out, err := ExportJSON(exportRecords())
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "NER", decoded[0]["action"])
	assert.Equal(t, "alice", decoded[0]["owner"])
	assert.Equal(t, "2024-05-01T09:30:00Z", decoded[0]["created"])
	assert.NotContains(t, decoded[0], "id")
}

func TestFlatten(t *testing.T) {
	rows := Flatten(exportRecords())
	require.Len(t, rows, 2)

	assert.Equal(t, "NER", rows[0]["action"])
	assert.Equal(t, "alice", rows[0]["owner"])
	assert.Equal(t, "spoofed", rows[0]["details_owner"])
	assert.Equal(t, "王安石", rows[0]["text"])
	assert.JSONEq(t, `[{"start":0,"end":3,"tag":"PER"}]`, rows[0]["pred"])

	assert.Equal(t, "Translate", rows[1]["action"])
	assert.Equal(t, "3", rows[1]["zeta"])
}

func TestColumns(t *testing.T) {
	cols := Columns(Flatten(exportRecords()))
	assert.Equal(t, []string{"owner", "created", "action", "text", "pred", "source", "target", "details_owner", "zeta"}, cols)
}

func TestExportXLSX(t *testing.T) {
	out, err := ExportXLSX(exportRecords())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ExportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"owner", "created", "action", "text", "pred", "source", "target", "details_owner", "zeta"}, rows[0])
	assert.Equal(t, "alice", rows[1][0])
	assert.Equal(t, "Translate", rows[2][2])
}

func TestExportXLSXEmpty(t *testing.T) {
	_, err := ExportXLSX(nil)
	assert.ErrorIs(t, err, ErrNothingToExport)
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "history-export-2024-05-01T09-30-00Z.xlsx", ExportFilename(exportTime, "xlsx"))
}
