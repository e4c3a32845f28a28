package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sih-tools/psgrab/internal/ps"
)

func sampleRecords() []*ps.ProblemStatement {
	return []*ps.ProblemStatement{
		{
			ID:           "SIH001",
			Title:        "Crop disease detection",
			Category:     "Software",
			Theme:        "Agriculture, FoodTech & Rural Development",
			Organization: "Ministry of Agriculture and Farmers Welfare",
			PSCode:       "SIH25001",
			IdeasCount:   "12",
		},
		{
			ID:          "SIH002",
			Title:       "Water quality sensor mesh",
			Category:    "Hardware",
			ContactInfo: "ps@example.org",
		},
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    []Format
		wantErr bool
	}{
		{"all three", []string{"csv", "json", "xlsx"}, []Format{FormatCSV, FormatJSON, FormatXLSX}, false},
		{"excel alias", []string{"excel"}, []Format{FormatXLSX}, false},
		{"case and spacing", []string{" CSV ", "Json"}, []Format{FormatCSV, FormatJSON}, false},
		{"duplicates collapse", []string{"csv", "csv", "excel", "xlsx"}, []Format{FormatCSV, FormatXLSX}, false},
		{"unknown rejected", []string{"csv", "pdf"}, nil, true},
		{"empty rejected", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormats(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteCSV(t *testing.T) {
	base := filepath.Join(t.TempDir(), "out")
	results := Write(sampleRecords(), base, []Format{FormatCSV})
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	data, err := os.ReadFile(base + ".csv")
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, utf8BOM), "CSV starts with a UTF-8 BOM")

	rows, err := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two records")
	assert.Equal(t, ps.Columns, rows[0])
	assert.Equal(t, "SIH001", rows[1][0])
	assert.Equal(t, "Water quality sensor mesh", rows[2][1])
}

func TestWriteJSONRoundTrip(t *testing.T) {
	records := sampleRecords()
	base := filepath.Join(t.TempDir(), "out")
	results := Write(records, base, []Format{FormatJSON})
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	data, err := os.ReadFile(base + ".json")
	require.NoError(t, err)

	var reloaded []*ps.ProblemStatement
	require.NoError(t, json.Unmarshal(data, &reloaded))
	require.Equal(t, records, reloaded, "round trip preserves order and values")
}

func TestWriteXLSX(t *testing.T) {
	base := filepath.Join(t.TempDir(), "out")
	results := Write(sampleRecords(), base, []Format{FormatXLSX})
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	f, err := excelize.OpenFile(base + ".xlsx")
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 3)
	assert.Equal(t, ps.Columns, rows[0])
	assert.Equal(t, "SIH001", rows[1][0])
	assert.Equal(t, "SIH002", rows[2][0])
}

func TestWriteSharesSchemaAcrossFormats(t *testing.T) {
	base := filepath.Join(t.TempDir(), "out")
	results := Write(sampleRecords(), base, []Format{FormatCSV, FormatJSON, FormatXLSX})
	require.Len(t, results, 3)
	for _, res := range results {
		require.NoError(t, res.Err, "format %s", res.Format)
		_, statErr := os.Stat(res.Path)
		assert.NoError(t, statErr)
	}
}

func TestWritePartialFailureContinues(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "out")

	// A directory squatting on the CSV path makes only that format fail.
	require.NoError(t, os.Mkdir(base+".csv", 0755))

	results := Write(sampleRecords(), base, []Format{FormatCSV, FormatJSON})
	require.Len(t, results, 2)

	var formatErr *FormatError
	require.Error(t, results[0].Err)
	require.True(t, errors.As(results[0].Err, &formatErr))
	assert.Equal(t, FormatCSV, formatErr.Format)

	require.NoError(t, results[1].Err, "JSON still written after CSV failure")
	_, err := os.Stat(base + ".json")
	assert.NoError(t, err)
}

func TestWriteEmptyRecordsJSONIsArray(t *testing.T) {
	base := filepath.Join(t.TempDir(), "out")
	results := Write(nil, base, []Format{FormatJSON})
	require.NoError(t, results[0].Err)

	data, err := os.ReadFile(base + ".json")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(bytes.TrimSpace(data)))
}
