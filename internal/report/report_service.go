package report

import (
	"context"
	"strconv"
	"time"

	reporterrors "go-timesheet/internal/report/errors"
	"go-timesheet/internal/timesheet"

	"go.uber.org/zap"
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	Summary(ctx context.Context, req ReportRequest) (Summary, error)
	Export(ctx context.Context, req ExportRequest) (File, error)
}

type service struct {
	timesheets timesheet.Service
	logger     *zap.Logger
}

func NewService(timesheets timesheet.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	return &service{timesheets: timesheets, logger: l}
}

func (s *service) Summary(ctx context.Context, req ReportRequest) (Summary, error) {
	summary, _, err := s.build(ctx, req)
	return summary, err
}

func (s *service) Export(ctx context.Context, req ExportRequest) (File, error) {
	summary, rows, err := s.build(ctx, req.ReportRequest)
	if err != nil {
		return File{}, err
	}

	switch req.Format {
	case "csv":
		data, err := renderCSV(summary, rows)
		if err != nil {
			return File{}, err
		}
		return File{Name: "FilteredData.csv", ContentType: "text/csv", Data: data}, nil
	case "xls", "xlsx":
		data, err := renderXLSX(summary, rows)
		if err != nil {
			return File{}, err
		}
		return File{
			Name:        "FilteredData.xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	case "pdf":
		data, err := renderPDF(summary, rows)
		if err != nil {
			return File{}, err
		}
		return File{Name: "FilteredData.pdf", ContentType: "application/pdf", Data: data}, nil
	default:
		return File{}, reporterrors.ErrUnknownFormat
	}
}

func (s *service) build(ctx context.Context, req ReportRequest) (Summary, []detailRow, error) {
	from, to, err := parseSpan(req.FromDate, req.ToDate)
	if err != nil {
		return Summary{}, nil, err
	}

	records, err := s.timesheets.Filter(ctx, timesheet.FilterRequest{
		EmployeeName: req.EmployeeName,
		FromDate:     req.FromDate,
		ToDate:       req.ToDate,
		ClientName:   req.ClientName,
		ProjectName:  req.ProjectName,
	})
	if err != nil {
		return Summary{}, nil, err
	}

	summary := BuildSummary(req.ProjectName, req.EmployeeName, len(records), from, to)
	s.logger.Debug("report built",
		zap.Int("records", len(records)),
		zap.Int("holidays", summary.Holidays),
		zap.Int("leave", summary.Leave),
	)
	return summary, buildDetailRows(records), nil
}

func parseSpan(fromDate, toDate string) (time.Time, time.Time, error) {
	if fromDate == "" || toDate == "" {
		return time.Time{}, time.Time{}, reporterrors.ErrMissingDateRange
	}
	from, err := time.Parse("2006-01-02", fromDate)
	if err != nil {
		return time.Time{}, time.Time{}, reporterrors.ErrInvalidDateRange
	}
	to, err := time.Parse("2006-01-02", toDate)
	if err != nil {
		return time.Time{}, time.Time{}, reporterrors.ErrInvalidDateRange
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, reporterrors.ErrInvalidDateRange
	}
	return from, to, nil
}

func buildDetailRows(records []timesheet.TimesheetResponse) []detailRow {
	rows := make([]detailRow, len(records))
	for i, r := range records {
		row := detailRow{Date: r.Date}
		if r.JobName != nil {
			row.Activity = *r.JobName
		}
		if r.Hours != nil {
			row.Duration = strconv.FormatFloat(*r.Hours, 'f', -1, 64)
		}
		if r.WorkItem != nil {
			row.Remarks = *r.WorkItem
		}
		rows[i] = row
	}
	return rows
}
