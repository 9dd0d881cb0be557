// Package spreadsheet turns uploaded sheet files into raw rows. The first
// row is treated as the header; every parse returns its rows to the caller
// instead of keeping them in package state.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go-timesheet/internal/timesheet"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"
)

// ParseFile dispatches on the file extension: .csv, .xls, or anything
// excelize can open (.xlsx and friends).
func ParseFile(path string) ([]timesheet.RawRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f, filepath.Base(path))
}

func Parse(r io.Reader, filename string) ([]timesheet.RawRow, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ParseCSV(r)
	case ".xls":
		return ParseXLS(r)
	default:
		return ParseXLSX(r)
	}
}

func ParseCSV(r io.Reader) ([]timesheet.RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	cells, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return rowsFromCells(cells), nil
}

func ParseXLSX(r io.Reader) ([]timesheet.RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no worksheet found")
	}

	cells, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return rowsFromCells(cells), nil
}

func ParseXLS(r io.Reader) ([]timesheet.RawRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	workbook, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, err
	}
	if workbook.NumSheets() == 0 {
		return nil, fmt.Errorf("no worksheet found")
	}

	cells := workbook.ReadAllCells(100000)
	return rowsFromCells(cells), nil
}

// rowsFromCells zips each data row against the header row. Cells beyond the
// header width are dropped; missing trailing cells leave the field absent.
func rowsFromCells(cells [][]string) []timesheet.RawRow {
	if len(cells) == 0 {
		return nil
	}

	header := cells[0]
	rows := make([]timesheet.RawRow, 0, len(cells)-1)

	for _, line := range cells[1:] {
		if emptyLine(line) {
			continue
		}
		row := make(timesheet.RawRow, len(header))
		for i, label := range header {
			if label == "" || i >= len(line) {
				continue
			}
			row[label] = line[i]
		}
		rows = append(rows, row)
	}
	return rows
}

func emptyLine(line []string) bool {
	for _, cell := range line {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
