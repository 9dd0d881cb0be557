package timesheet

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// FilterQuery is the already-parsed form of FilterRequest. Zero values mean
// no constraint. The date bounds implement the inclusive-whole-day range:
// From is the start of the first day, ToExclusive the start of the day after
// the last.
type FilterQuery struct {
	FirstName   string
	ClientName  string
	ProjectName string
	From        *time.Time
	ToExclusive *time.Time
}

//go:generate mockgen -source=timesheet_repo.go -destination=mock/timesheet_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, t *Timesheet) error
	FindDuplicate(ctx context.Context, t *Timesheet) (*Timesheet, error)
	FindAll(ctx context.Context) ([]Timesheet, error)
	FindByID(ctx context.Context, id string) (*Timesheet, error)
	Filter(ctx context.Context, q FilterQuery) ([]Timesheet, error)
	Distinct(ctx context.Context, column string) ([]string, error)
	Update(ctx context.Context, t *Timesheet) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, t *Timesheet) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// FindDuplicate matches the eight-field identity tuple exactly. An unset
// field only matches NULL, so two records unset in the same places compare
// equal there.
func (r *repository) FindDuplicate(ctx context.Context, t *Timesheet) (*Timesheet, error) {
	tx := r.db.WithContext(ctx).Model(&Timesheet{})

	if t.Date == nil {
		tx = tx.Where("date IS NULL")
	} else {
		tx = tx.Where("date = ?", t.Date.Format("2006-01-02"))
	}
	tx = eqOrNull(tx, "client_name", t.ClientName)
	tx = eqOrNull(tx, "project_name", t.ProjectName)
	tx = eqOrNull(tx, "job_name", t.JobName)
	tx = eqOrNull(tx, "employee_id", t.EmployeeID)
	tx = eqOrNull(tx, "email_id", t.EmailID)
	tx = eqOrNull(tx, "from_time", t.FromTime)
	tx = eqOrNull(tx, "to_time", t.ToTime)

	var found Timesheet
	if err := tx.First(&found).Error; err != nil {
		return nil, err
	}
	return &found, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Timesheet, error) {
	var rows []Timesheet
	err := r.db.WithContext(ctx).
		Order("date ASC, created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Timesheet, error) {
	var t Timesheet
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) Filter(ctx context.Context, q FilterQuery) ([]Timesheet, error) {
	tx := r.db.WithContext(ctx).Model(&Timesheet{})

	if q.FirstName != "" {
		tx = tx.Where("first_name = ?", q.FirstName)
	}
	if q.ClientName != "" {
		tx = tx.Where("client_name = ?", q.ClientName)
	}
	if q.ProjectName != "" {
		tx = tx.Where("project_name = ?", q.ProjectName)
	}
	if q.From != nil && q.ToExclusive != nil {
		tx = tx.Where("date >= ? AND date < ?",
			q.From.Format("2006-01-02"),
			q.ToExclusive.Format("2006-01-02"),
		)
	}

	var rows []Timesheet
	err := tx.Order("date ASC, created_at ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) Distinct(ctx context.Context, column string) ([]string, error) {
	var values []string
	err := r.db.WithContext(ctx).
		Model(&Timesheet{}).
		Distinct(column).
		Where(column + " IS NOT NULL").
		Order(column).
		Pluck(column, &values).Error
	return values, err
}

func (r *repository) Update(ctx context.Context, t *Timesheet) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&Timesheet{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func eqOrNull(tx *gorm.DB, column string, v *string) *gorm.DB {
	if v == nil {
		return tx.Where(column + " IS NULL")
	}
	return tx.Where(column+" = ?", *v)
}
