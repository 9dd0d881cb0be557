package report

import (
	"bytes"

	"github.com/go-pdf/fpdf"
)

// renderPDF writes the labeled header lines followed by the detail table,
// breaking the table across pages as needed.
func renderPDF(summary Summary, rows []detailRow) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Timesheet Report", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	for i, label := range headerColumns {
		pdf.CellFormat(0, 6, label+": "+headerValues(summary)[i], "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	colWidths := []float64{28, 50, 32, 24, 56}

	writeTableHeader := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(230, 230, 230)
		for i, col := range detailColumns {
			pdf.CellFormat(colWidths[i], 7, col, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
	}

	writeTableHeader()

	_, pageHeight := pdf.GetPageSize()
	_, _, _, bottomMargin := pdf.GetMargins()

	for _, row := range rows {
		if pdf.GetY() > pageHeight-bottomMargin-10 {
			pdf.AddPage()
			writeTableHeader()
		}
		for i, v := range row.values() {
			pdf.CellFormat(colWidths[i], 6, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
