package report

// ReportRequest mirrors the filter parameters; the date span is mandatory
// because the accounting is defined over it.
type ReportRequest struct {
	EmployeeName string `form:"employeeName"`
	ClientName   string `form:"clientName"`
	ProjectName  string `form:"projectName"`
	FromDate     string `form:"fromDate"`
	ToDate       string `form:"toDate"`
}

type ExportRequest struct {
	ReportRequest
	Format string `form:"format"`
}

// File is a rendered export artifact ready to stream to the client.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// detailRow is one line of the export table. ProjectPhase is always blank:
// no stored field feeds it, the column merely keeps the layout.
type detailRow struct {
	Date         string
	Activity     string
	ProjectPhase string
	Duration     string
	Remarks      string
}
