package events

import "time"

const TimesheetTopic = "timesheet.entry.v1"

const (
	EventTimesheetCreated = "timesheet_created"
	EventTimesheetUpdated = "timesheet_updated"
	EventTimesheetDeleted = "timesheet_deleted"
)

type TimesheetEvent struct {
	EventType   string    `json:"event_type"`
	TimesheetID string    `json:"timesheet_id"`
	EmployeeID  string    `json:"employee_id,omitempty"`
	Date        string    `json:"date,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
