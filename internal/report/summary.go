package report

import "time"

// Summary is the header block every export renders, plus the on-screen
// report response. One accounting definition serves both: worked days is the
// record count, holidays are the weekend days inside the span, leave is
// whatever remains of the span, floored at zero.
type Summary struct {
	ProjectName    string `json:"project_name"`
	Period         string `json:"period"`
	ConsultantName string `json:"consultant_name"`
	DaysWorked     int    `json:"days_worked"`
	Holidays       int    `json:"holidays"`
	Leave          int    `json:"leave"`
	Total          int    `json:"total"`
}

// BuildSummary computes the counts over an inclusive [from, to] span for a
// filtered set of workedDays records.
func BuildSummary(project, consultant string, workedDays int, from, to time.Time) Summary {
	totalDays := int(to.Sub(from).Hours()/24) + 1
	holidays := countWeekendDays(from, to)

	leave := totalDays - workedDays - holidays
	if leave < 0 {
		leave = 0
	}

	return Summary{
		ProjectName:    project,
		Period:         from.Format("2006-01-02") + " - " + to.Format("2006-01-02"),
		ConsultantName: consultant,
		DaysWorked:     workedDays,
		Holidays:       holidays,
		Leave:          leave,
		Total:          workedDays + holidays + leave,
	}
}

// countWeekendDays counts Saturdays and Sundays in [from, to] inclusive.
func countWeekendDays(from, to time.Time) int {
	count := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			count++
		}
	}
	return count
}
