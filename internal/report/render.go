package report

import "strconv"

// All three renderers build the same content: the seven-column header block,
// a blank separator, then the detail table.
var headerColumns = []string{
	"Project Name",
	"Period",
	"Consultant Name",
	"No. of Days Worked",
	"No. of Holidays",
	"Leave",
	"Total",
}

var detailColumns = []string{"Date", "Activity", "Project Phase", "Duration", "Remarks"}

func headerValues(s Summary) []string {
	return []string{
		s.ProjectName,
		s.Period,
		s.ConsultantName,
		strconv.Itoa(s.DaysWorked),
		strconv.Itoa(s.Holidays),
		strconv.Itoa(s.Leave),
		strconv.Itoa(s.Total),
	}
}

func (r detailRow) values() []string {
	return []string{r.Date, r.Activity, r.ProjectPhase, r.Duration, r.Remarks}
}
