package timesheet

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-timesheet/internal/events"
	"go-timesheet/internal/messaging/kafka"
	"go-timesheet/internal/shared/contextutil"
	timesheeterrors "go-timesheet/internal/timesheet/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=timesheet_service.go -destination=mock/timesheet_service_mock.go -package=mock
type Service interface {
	BulkImport(ctx context.Context, rows []RawRow) (BulkImportResult, error)
	AddSingle(ctx context.Context, row RawRow) (TimesheetResponse, error)
	GetAll(ctx context.Context) ([]TimesheetResponse, error)
	Filter(ctx context.Context, req FilterRequest) ([]TimesheetResponse, error)
	Lookup(ctx context.Context, field string) ([]string, error)
	Update(ctx context.Context, id string, req UpdateTimesheetRequest) (TimesheetResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("timesheet.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timesheet.service")
	}
	return &service{repo: repo, logger: l}
}

// NewServiceWithOutbox additionally records an outbox event for every write,
// feeding the kafka pipeline.
func NewServiceWithOutbox(repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	s := NewService(repo, logger...).(*service)
	s.outbox = outbox
	return s
}

// BulkImport processes each row independently: normalize, validate the
// employee id, reconcile against the store. Rows with an invalid employee id
// are reported as skipped and contribute to neither created nor existing.
// A store failure aborts the whole batch.
func (s *service) BulkImport(ctx context.Context, rows []RawRow) (BulkImportResult, error) {
	s.logger.Debug("bulk import requested", zap.Int("rows", len(rows)))

	result := BulkImportResult{
		Created:  make([]TimesheetResponse, 0, len(rows)),
		Existing: make([]TimesheetResponse, 0),
		Skipped:  make([]SkippedRow, 0),
	}

	for i, raw := range rows {
		rec := Normalize(raw)

		if !ValidEmployeeID(rec.EmployeeID) {
			s.logger.Warn("bulk import row skipped",
				zap.Int("row", i),
				zap.Any("employee_id", rec.EmployeeID),
			)
			result.Skipped = append(result.Skipped, SkippedRow{
				Row:    i,
				Reason: "invalid employee id",
			})
			continue
		}

		existing, err := s.repo.FindDuplicate(ctx, &rec)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("bulk import duplicate check failed", zap.Int("row", i), zap.Error(err))
			return BulkImportResult{}, err
		}
		if existing != nil {
			result.Existing = append(result.Existing, mapToResponse(*existing))
			continue
		}

		rec.ID = uuid.New()
		if err := s.repo.Create(ctx, &rec); err != nil {
			s.logger.Error("bulk import create failed", zap.Int("row", i), zap.Error(err))
			return BulkImportResult{}, mapRepositoryError(err)
		}
		s.enqueueEvent(ctx, events.EventTimesheetCreated, &rec)
		result.Created = append(result.Created, mapToResponse(rec))
	}

	s.logger.Info("bulk import finished",
		zap.Int("created", len(result.Created)),
		zap.Int("existing", len(result.Existing)),
		zap.Int("skipped", len(result.Skipped)),
	)
	return result, nil
}

// AddSingle is the manual-entry path. Unlike BulkImport it reports an
// invalid employee id as an error, and a duplicate as a conflict carrying
// the record that already exists.
func (s *service) AddSingle(ctx context.Context, row RawRow) (TimesheetResponse, error) {
	rec := Normalize(row)

	if !ValidEmployeeID(rec.EmployeeID) {
		return TimesheetResponse{}, timesheeterrors.ErrInvalidEmployeeID
	}

	existing, err := s.repo.FindDuplicate(ctx, &rec)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("add single duplicate check failed", zap.Error(err))
		return TimesheetResponse{}, err
	}
	if existing != nil {
		return mapToResponse(*existing), timesheeterrors.ErrDuplicateEntry
	}

	rec.ID = uuid.New()
	if err := s.repo.Create(ctx, &rec); err != nil {
		s.logger.Error("add single create failed", zap.Error(err))
		return TimesheetResponse{}, mapRepositoryError(err)
	}
	s.enqueueEvent(ctx, events.EventTimesheetCreated, &rec)

	s.logger.Info("timesheet entry created", zap.String("id", rec.ID.String()))
	return mapToResponse(rec), nil
}

func (s *service) GetAll(ctx context.Context) ([]TimesheetResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapAllToResponse(rows), nil
}

// Filter applies each provided filter as an exact match. The date range
// covers fromDate's start of day up to, excluding, the day after toDate, so
// the whole toDate calendar day is included.
func (s *service) Filter(ctx context.Context, req FilterRequest) ([]TimesheetResponse, error) {
	q := FilterQuery{
		FirstName:   req.EmployeeName,
		ClientName:  req.ClientName,
		ProjectName: req.ProjectName,
	}

	if req.FromDate != "" && req.ToDate != "" {
		from := dateValue(req.FromDate)
		to := dateValue(req.ToDate)
		if from == nil || to == nil {
			return nil, timesheeterrors.ErrInvalidDateRange
		}
		toExclusive := to.AddDate(0, 0, 1)
		q.From = from
		q.ToExclusive = &toExclusive
	}

	rows, err := s.repo.Filter(ctx, q)
	if err != nil {
		return nil, err
	}
	return mapAllToResponse(rows), nil
}

func (s *service) Lookup(ctx context.Context, field string) ([]string, error) {
	column, ok := lookupColumns[field]
	if !ok {
		return nil, timesheeterrors.ErrUnknownLookup
	}
	values, err := s.repo.Distinct(ctx, column)
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateTimesheetRequest) (TimesheetResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TimesheetResponse{}, timesheeterrors.ErrTimesheetNotFound
	}

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TimesheetResponse{}, mapRepositoryError(err)
	}

	applyUpdate(rec, req)

	if err := s.repo.Update(ctx, rec); err != nil {
		s.logger.Error("update timesheet failed", zap.String("id", id), zap.Error(err))
		return TimesheetResponse{}, mapRepositoryError(err)
	}
	s.enqueueEvent(ctx, events.EventTimesheetUpdated, rec)

	return mapToResponse(*rec), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return timesheeterrors.ErrTimesheetNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	s.enqueueEvent(ctx, events.EventTimesheetDeleted, &Timesheet{ID: uid})
	s.logger.Info("timesheet entry deleted", zap.String("id", id))
	return nil
}

// enqueueEvent is best effort: a full outbox must not fail the request.
func (s *service) enqueueEvent(ctx context.Context, eventType string, t *Timesheet) {
	if s.outbox == nil {
		return
	}

	ev := events.TimesheetEvent{
		EventType:   eventType,
		TimesheetID: t.ID.String(),
		OccurredAt:  time.Now().UTC(),
	}
	if t.EmployeeID != nil {
		ev.EmployeeID = *t.EmployeeID
	}
	if t.Date != nil {
		ev.Date = t.Date.Format("2006-01-02")
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return
	}

	err = s.outbox.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "timesheet",
		AggregateID:   ev.TimesheetID,
		EventType:     eventType,
		Topic:         events.TimesheetTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
	if err != nil {
		s.logger.Warn("enqueue outbox event failed",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}

func applyUpdate(rec *Timesheet, req UpdateTimesheetRequest) {
	if req.Date != nil {
		rec.Date = dateValue(*req.Date)
	}
	if req.ClientName != nil {
		rec.ClientName = req.ClientName
	}
	if req.ProjectName != nil {
		rec.ProjectName = req.ProjectName
	}
	if req.JobName != nil {
		rec.JobName = req.JobName
	}
	if req.EmployeeID != nil {
		rec.EmployeeID = req.EmployeeID
	}
	if req.EmailID != nil {
		rec.EmailID = req.EmailID
	}
	if req.FirstName != nil {
		rec.FirstName = req.FirstName
	}
	if req.LastName != nil {
		rec.LastName = req.LastName
	}
	if req.WorkItem != nil {
		rec.WorkItem = req.WorkItem
	}
	if req.FromTime != nil {
		rec.FromTime = req.FromTime
	}
	if req.ToTime != nil {
		rec.ToTime = req.ToTime
	}
	if req.TimerIntervals != nil {
		rec.TimerIntervals = req.TimerIntervals
	}
	if req.Hours != nil {
		rec.Hours = req.Hours
	}
	if req.HoursHHMM != nil {
		rec.HoursHHMM = req.HoursHHMM
	}
	if req.ApprovalStatus != nil {
		rec.ApprovalStatus = req.ApprovalStatus
	}
	if req.Description != nil {
		rec.Description = req.Description
	}
}

func mapToResponse(t Timesheet) TimesheetResponse {
	resp := TimesheetResponse{
		ID:             t.ID.String(),
		ClientName:     t.ClientName,
		ProjectName:    t.ProjectName,
		JobName:        t.JobName,
		EmployeeID:     t.EmployeeID,
		EmailID:        t.EmailID,
		FirstName:      t.FirstName,
		LastName:       t.LastName,
		WorkItem:       t.WorkItem,
		FromTime:       t.FromTime,
		ToTime:         t.ToTime,
		TimerIntervals: t.TimerIntervals,
		Hours:          t.Hours,
		HoursHHMM:      t.HoursHHMM,
		ApprovalStatus: t.ApprovalStatus,
		Description:    t.Description,
	}
	if t.Date != nil {
		// Plain calendar date, no time-of-day component.
		resp.Date = t.Date.Format("2006-01-02")
	}
	return resp
}

func mapAllToResponse(rows []Timesheet) []TimesheetResponse {
	res := make([]TimesheetResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
