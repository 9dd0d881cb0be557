package timesheet

import (
	"time"

	"github.com/google/uuid"
)

// Timesheet is one row of worked time. Everything except the store-assigned
// id is optional: a field missing from the imported sheet stays NULL, never
// an empty string. The composite unique index backstops the
// check-then-create duplicate guard for identities with no NULL fields.
type Timesheet struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Date           *time.Time `gorm:"column:date;type:date;index;uniqueIndex:uq_timesheet_identity" json:"-"`
	ClientName     *string    `gorm:"column:client_name;uniqueIndex:uq_timesheet_identity" json:"client_name,omitempty"`
	ProjectName    *string    `gorm:"column:project_name;uniqueIndex:uq_timesheet_identity" json:"project_name,omitempty"`
	JobName        *string    `gorm:"column:job_name;uniqueIndex:uq_timesheet_identity" json:"job_name,omitempty"`
	EmployeeID     *string    `gorm:"column:employee_id;uniqueIndex:uq_timesheet_identity" json:"employee_id,omitempty"`
	EmailID        *string    `gorm:"column:email_id;uniqueIndex:uq_timesheet_identity" json:"email_id,omitempty"`
	FirstName      *string    `gorm:"column:first_name;index" json:"first_name,omitempty"`
	LastName       *string    `gorm:"column:last_name" json:"last_name,omitempty"`
	WorkItem       *string    `gorm:"column:work_item" json:"work_item,omitempty"`
	FromTime       *string    `gorm:"column:from_time;uniqueIndex:uq_timesheet_identity" json:"from_time,omitempty"`
	ToTime         *string    `gorm:"column:to_time;uniqueIndex:uq_timesheet_identity" json:"to_time,omitempty"`
	TimerIntervals *string    `gorm:"column:timer_intervals" json:"timer_intervals,omitempty"`
	Hours          *float64   `gorm:"column:hours" json:"hours,omitempty"`
	HoursHHMM      *string    `gorm:"column:hours_hhmm" json:"hours_hhmm,omitempty"`
	ApprovalStatus *string    `gorm:"column:approval_status" json:"approval_status,omitempty"`
	Description    *string    `gorm:"column:description" json:"description,omitempty"`
	CreatedAt      time.Time  `gorm:"column:created_at" json:"-"`
	UpdatedAt      time.Time  `gorm:"column:updated_at" json:"-"`
}

func (Timesheet) TableName() string {
	return "timesheets"
}
