package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Filtered Data"

func renderXLSX(summary Summary, rows []detailRow) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}

	writeRow := func(rowNum int, values []string) error {
		cells := make([]any, len(values))
		for i, v := range values {
			cells[i] = v
		}
		cell := fmt.Sprintf("A%d", rowNum)
		return f.SetSheetRow(exportSheet, cell, &cells)
	}

	if err := writeRow(1, headerColumns); err != nil {
		return nil, err
	}
	if err := writeRow(2, headerValues(summary)); err != nil {
		return nil, err
	}
	// Row 3 stays blank to separate the header block from the table.
	if err := writeRow(4, detailColumns); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := writeRow(5+i, row.values()); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
