package timesheet

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Canonical lower-cased labels a spreadsheet column may carry. Input keys are
// lower-cased before lookup, so "Employee Id", "EMPLOYEE ID" and
// "employee id" all land on the same field.
const (
	labelDate           = "date"
	labelClientName     = "client name"
	labelProjectName    = "project name"
	labelJobName        = "job name"
	labelEmployeeID     = "employee id"
	labelEmailID        = "email id"
	labelFirstName      = "first name"
	labelLastName       = "last name"
	labelWorkItem       = "work item"
	labelFromTime       = "from time"
	labelToTime         = "to time"
	labelTimerIntervals = "timer intervals"
	labelHours          = "hour(s)"
	labelHoursHHMM      = "hours(hh:mm)"
	labelApprovalStatus = "approval status"
	labelDescription    = "description"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"02-Jan-2006",
}

// Normalize maps one raw row onto the canonical record shape. Absent or
// empty fields become nil, an unparseable date becomes a nil date. It never
// fails; validity of the employee id is judged separately.
func Normalize(raw RawRow) Timesheet {
	lowered := make(map[string]any, len(raw))
	for k, v := range raw {
		lowered[strings.ToLower(k)] = v
	}

	return Timesheet{
		Date:           dateValue(lowered[labelDate]),
		ClientName:     stringValue(lowered[labelClientName]),
		ProjectName:    stringValue(lowered[labelProjectName]),
		JobName:        stringValue(lowered[labelJobName]),
		EmployeeID:     stringValue(lowered[labelEmployeeID]),
		EmailID:        stringValue(lowered[labelEmailID]),
		FirstName:      stringValue(lowered[labelFirstName]),
		LastName:       stringValue(lowered[labelLastName]),
		WorkItem:       stringValue(lowered[labelWorkItem]),
		FromTime:       stringValue(lowered[labelFromTime]),
		ToTime:         stringValue(lowered[labelToTime]),
		TimerIntervals: stringValue(lowered[labelTimerIntervals]),
		Hours:          hoursValue(lowered[labelHours]),
		HoursHHMM:      stringValue(lowered[labelHoursHHMM]),
		ApprovalStatus: stringValue(lowered[labelApprovalStatus]),
		Description:    stringValue(lowered[labelDescription]),
	}
}

// ValidEmployeeID applies leading-integer semantics: an optional sign
// followed by at least one digit. "007" and "12.5" pass, "abc" and "" fail.
func ValidEmployeeID(id *string) bool {
	if id == nil {
		return false
	}
	s := strings.TrimSpace(*id)
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	return len(s) > 0 && s[0] >= '0' && s[0] <= '9'
}

func stringValue(v any) *string {
	var s string
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		s = val
	case float64:
		s = strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		s = strconv.Itoa(val)
	case bool:
		s = strconv.FormatBool(val)
	default:
		return nil
	}
	if s == "" {
		return nil
	}
	return &s
}

func hoursValue(v any) *float64 {
	switch val := v.(type) {
	case float64:
		return &val
	case int:
		f := float64(val)
		return &f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

func dateValue(v any) *time.Time {
	switch val := v.(type) {
	case float64:
		// Excel serial date, common when a sheet cell is typed as a date.
		return excelSerialDate(val)
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return nil
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return midnightUTC(t)
			}
		}
		if serial, err := strconv.ParseFloat(s, 64); err == nil {
			return excelSerialDate(serial)
		}
		return nil
	default:
		return nil
	}
}

func excelSerialDate(serial float64) *time.Time {
	// Plain years and small numbers are not serial dates.
	if serial < 20000 || serial > 80000 {
		return nil
	}
	t, err := excelize.ExcelDateToTime(serial, false)
	if err != nil {
		return nil
	}
	return midnightUTC(t)
}

func midnightUTC(t time.Time) *time.Time {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d
}
