package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func sampleSummary() Summary {
	return BuildSummary("Apollo", "Jo", 2,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
	)
}

func sampleRows() []detailRow {
	return []detailRow{
		{Date: "2024-01-01", Activity: "Development", Duration: "8", Remarks: "api work"},
		{Date: "2024-01-02", Activity: "Review", Duration: "6.5", Remarks: ""},
	}
}

func TestRenderXLSX(t *testing.T) {
	data, err := renderXLSX(sampleSummary(), sampleRows())
	assert.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	assert.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, "Filtered Data", f.GetSheetName(0))

	a1, _ := f.GetCellValue("Filtered Data", "A1")
	assert.Equal(t, "Project Name", a1)
	a2, _ := f.GetCellValue("Filtered Data", "A2")
	assert.Equal(t, "Apollo", a2)
	b2, _ := f.GetCellValue("Filtered Data", "B2")
	assert.Equal(t, "2024-01-01 - 2024-01-07", b2)

	// Row 3 is the separator, row 4 the detail header.
	a3, _ := f.GetCellValue("Filtered Data", "A3")
	assert.Equal(t, "", a3)
	a4, _ := f.GetCellValue("Filtered Data", "A4")
	assert.Equal(t, "Date", a4)
	a5, _ := f.GetCellValue("Filtered Data", "A5")
	assert.Equal(t, "2024-01-01", a5)
	d6, _ := f.GetCellValue("Filtered Data", "D6")
	assert.Equal(t, "6.5", d6)
}

func TestRenderPDF(t *testing.T) {
	data, err := renderPDF(sampleSummary(), sampleRows())
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}

func TestRenderPDF_ManyRowsPaginates(t *testing.T) {
	rows := make([]detailRow, 200)
	for i := range rows {
		rows[i] = detailRow{Date: "2024-01-01", Activity: "Development", Duration: "8"}
	}

	data, err := renderPDF(sampleSummary(), rows)
	assert.NoError(t, err)
	// More than one page object in the document.
	assert.Greater(t, bytes.Count(data, []byte("/Type /Page")), 1)
}

func TestRenderCSV_EmptyDetailTable(t *testing.T) {
	data, err := renderCSV(sampleSummary(), nil)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Equal(t, "Apollo,2024-01-01 - 2024-01-07,Jo,2,2,3,7", lines[1])
	assert.Equal(t, "Date,Activity,Project Phase,Duration,Remarks", lines[3])
}
