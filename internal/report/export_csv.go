package report

import (
	"bytes"
	"encoding/csv"
)

func renderCSV(summary Summary, rows []detailRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		headerColumns,
		headerValues(summary),
		{""},
		detailColumns,
	}
	for _, row := range rows {
		records = append(records, row.values())
	}

	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
