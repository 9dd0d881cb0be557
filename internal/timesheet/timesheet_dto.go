package timesheet

// RawRow is one unvalidated row as it arrives from a parsed spreadsheet or a
// manual-entry form: free-form field labels in arbitrary case.
type RawRow map[string]any

type TimesheetResponse struct {
	ID             string   `json:"id"`
	Date           string   `json:"date,omitempty"`
	ClientName     *string  `json:"client_name,omitempty"`
	ProjectName    *string  `json:"project_name,omitempty"`
	JobName        *string  `json:"job_name,omitempty"`
	EmployeeID     *string  `json:"employee_id,omitempty"`
	EmailID        *string  `json:"email_id,omitempty"`
	FirstName      *string  `json:"first_name,omitempty"`
	LastName       *string  `json:"last_name,omitempty"`
	WorkItem       *string  `json:"work_item,omitempty"`
	FromTime       *string  `json:"from_time,omitempty"`
	ToTime         *string  `json:"to_time,omitempty"`
	TimerIntervals *string  `json:"timer_intervals,omitempty"`
	Hours          *float64 `json:"hours,omitempty"`
	HoursHHMM      *string  `json:"hours_hhmm,omitempty"`
	ApprovalStatus *string  `json:"approval_status,omitempty"`
	Description    *string  `json:"description,omitempty"`
}

type SkippedRow struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

// BulkImportResult keeps the three outcome lists in input order. A skipped
// row appears in neither created nor existing.
type BulkImportResult struct {
	Created  []TimesheetResponse `json:"created"`
	Existing []TimesheetResponse `json:"existing"`
	Skipped  []SkippedRow        `json:"skipped"`
}

// FilterRequest carries the raw query parameters. Empty strings mean the
// filter is absent.
type FilterRequest struct {
	EmployeeName string `form:"employeeName"`
	FromDate     string `form:"fromDate"`
	ToDate       string `form:"toDate"`
	ClientName   string `form:"clientName"`
	ProjectName  string `form:"projectName"`
}

// UpdateTimesheetRequest patches individual fields; nil means "leave as is".
type UpdateTimesheetRequest struct {
	Date           *string  `json:"date"`
	ClientName     *string  `json:"client_name"`
	ProjectName    *string  `json:"project_name"`
	JobName        *string  `json:"job_name"`
	EmployeeID     *string  `json:"employee_id"`
	EmailID        *string  `json:"email_id"`
	FirstName      *string  `json:"first_name"`
	LastName       *string  `json:"last_name"`
	WorkItem       *string  `json:"work_item"`
	FromTime       *string  `json:"from_time"`
	ToTime         *string  `json:"to_time"`
	TimerIntervals *string  `json:"timer_intervals"`
	Hours          *float64 `json:"hours"`
	HoursHHMM      *string  `json:"hours_hhmm"`
	ApprovalStatus *string  `json:"approval_status"`
	Description    *string  `json:"description"`
}
