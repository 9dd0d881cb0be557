package spreadsheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestParseCSV(t *testing.T) {
	input := strings.Join([]string{
		"Date,Employee ID,Client Name,Hour(s)",
		"2024-01-15,42,Acme,7.5",
		",,,",
		"2024-01-16,7,Globex,8",
	}, "\n")

	rows, err := ParseCSV(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	assert.Equal(t, "2024-01-15", rows[0]["Date"])
	assert.Equal(t, "42", rows[0]["Employee ID"])
	assert.Equal(t, "Acme", rows[0]["Client Name"])
	assert.Equal(t, "7.5", rows[0]["Hour(s)"])
	assert.Equal(t, "Globex", rows[1]["Client Name"])
}

func TestParseCSV_RaggedRows(t *testing.T) {
	input := strings.Join([]string{
		"Date,Employee ID,Client Name",
		"2024-01-15,42",
		"2024-01-16,7,Acme,overflow",
	}, "\n")

	rows, err := ParseCSV(strings.NewReader(input))
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	// Missing trailing cell leaves the field absent.
	_, hasClient := rows[0]["Client Name"]
	assert.False(t, hasClient)

	// Cells beyond the header width are dropped.
	assert.Len(t, rows[1], 3)
	assert.Equal(t, "Acme", rows[1]["Client Name"])
}

func TestParseCSV_HeaderOnly(t *testing.T) {
	rows, err := ParseCSV(strings.NewReader("Date,Employee ID\n"))
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	assert.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Date", "Employee ID"}))
	assert.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"2024-01-15", "42"}))

	buf, err := f.WriteToBuffer()
	assert.NoError(t, err)

	rows, parseErr := ParseXLSX(bytes.NewReader(buf.Bytes()))
	assert.NoError(t, parseErr)
	assert.Len(t, rows, 1)
	assert.Equal(t, "2024-01-15", rows[0]["Date"])
	assert.Equal(t, "42", rows[0]["Employee ID"])
}

func TestParse_DispatchesOnExtension(t *testing.T) {
	rows, err := Parse(strings.NewReader("Date\n2024-01-15\n"), "upload.CSV")
	assert.NoError(t, err)
	assert.Len(t, rows, 1)

	_, err = Parse(strings.NewReader("not a workbook"), "upload.xlsx")
	assert.Error(t, err)
}

func TestParseFile_MissingFile(t *testing.T) {
	_, err := ParseFile("does-not-exist.csv")
	assert.Error(t, err)
}
