package report

import (
	"context"
	"strings"
	"testing"

	reporterrors "go-timesheet/internal/report/errors"
	"go-timesheet/internal/timesheet"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeTimesheets struct {
	filterFn func(ctx context.Context, req timesheet.FilterRequest) ([]timesheet.TimesheetResponse, error)
}

func (f *fakeTimesheets) BulkImport(ctx context.Context, rows []timesheet.RawRow) (timesheet.BulkImportResult, error) {
	return timesheet.BulkImportResult{}, nil
}
func (f *fakeTimesheets) AddSingle(ctx context.Context, row timesheet.RawRow) (timesheet.TimesheetResponse, error) {
	return timesheet.TimesheetResponse{}, nil
}
func (f *fakeTimesheets) GetAll(ctx context.Context) ([]timesheet.TimesheetResponse, error) {
	return nil, nil
}
func (f *fakeTimesheets) Filter(ctx context.Context, req timesheet.FilterRequest) ([]timesheet.TimesheetResponse, error) {
	return f.filterFn(ctx, req)
}
func (f *fakeTimesheets) Lookup(ctx context.Context, field string) ([]string, error) {
	return nil, nil
}
func (f *fakeTimesheets) Update(ctx context.Context, id string, req timesheet.UpdateTimesheetRequest) (timesheet.TimesheetResponse, error) {
	return timesheet.TimesheetResponse{}, nil
}
func (f *fakeTimesheets) Delete(ctx context.Context, id string) error { return nil }

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func weekRecords() []timesheet.TimesheetResponse {
	var records []timesheet.TimesheetResponse
	for _, day := range []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"} {
		records = append(records, timesheet.TimesheetResponse{
			ID:       uuid.New().String(),
			Date:     day,
			JobName:  strPtr("Development"),
			WorkItem: strPtr("api work"),
			Hours:    floatPtr(8),
		})
	}
	return records
}

func TestService_Summary(t *testing.T) {
	ts := &fakeTimesheets{
		filterFn: func(ctx context.Context, req timesheet.FilterRequest) ([]timesheet.TimesheetResponse, error) {
			assert.Equal(t, "Jo", req.EmployeeName)
			assert.Equal(t, "2024-01-01", req.FromDate)
			assert.Equal(t, "2024-01-07", req.ToDate)
			return weekRecords(), nil
		},
	}

	svc := NewService(ts)
	summary, err := svc.Summary(context.Background(), ReportRequest{
		EmployeeName: "Jo",
		ProjectName:  "Apollo",
		FromDate:     "2024-01-01",
		ToDate:       "2024-01-07",
	})

	assert.NoError(t, err)
	assert.Equal(t, 5, summary.DaysWorked)
	assert.Equal(t, 2, summary.Holidays)
	assert.Equal(t, 0, summary.Leave)
	assert.Equal(t, 7, summary.Total)
	assert.Equal(t, "Apollo", summary.ProjectName)
}

func TestService_Summary_MissingDateRange(t *testing.T) {
	svc := NewService(&fakeTimesheets{})
	_, err := svc.Summary(context.Background(), ReportRequest{EmployeeName: "Jo"})
	assert.ErrorIs(t, err, reporterrors.ErrMissingDateRange)
}

func TestService_Summary_FromAfterTo(t *testing.T) {
	svc := NewService(&fakeTimesheets{})
	_, err := svc.Summary(context.Background(), ReportRequest{
		FromDate: "2024-02-01",
		ToDate:   "2024-01-01",
	})
	assert.ErrorIs(t, err, reporterrors.ErrInvalidDateRange)
}

func TestService_Export_CSV(t *testing.T) {
	ts := &fakeTimesheets{
		filterFn: func(ctx context.Context, req timesheet.FilterRequest) ([]timesheet.TimesheetResponse, error) {
			return weekRecords(), nil
		},
	}

	svc := NewService(ts)
	file, err := svc.Export(context.Background(), ExportRequest{
		ReportRequest: ReportRequest{FromDate: "2024-01-01", ToDate: "2024-01-07"},
		Format:        "csv",
	})

	assert.NoError(t, err)
	assert.Equal(t, "FilteredData.csv", file.Name)
	assert.Equal(t, "text/csv", file.ContentType)

	lines := strings.Split(strings.TrimRight(string(file.Data), "\n"), "\n")
	// Header row, value row, blank separator, table header, five detail rows.
	assert.Len(t, lines, 9)
	assert.Equal(t, "Project Name,Period,Consultant Name,No. of Days Worked,No. of Holidays,Leave,Total", lines[0])
	assert.Equal(t, "Date,Activity,Project Phase,Duration,Remarks", lines[3])
	assert.Contains(t, lines[4], "2024-01-01")
	assert.Contains(t, lines[4], "Development")
}

func TestService_Export_XLSAliasesToXLSX(t *testing.T) {
	ts := &fakeTimesheets{
		filterFn: func(ctx context.Context, req timesheet.FilterRequest) ([]timesheet.TimesheetResponse, error) {
			return nil, nil
		},
	}

	svc := NewService(ts)
	file, err := svc.Export(context.Background(), ExportRequest{
		ReportRequest: ReportRequest{FromDate: "2024-01-01", ToDate: "2024-01-07"},
		Format:        "xls",
	})

	assert.NoError(t, err)
	assert.Equal(t, "FilteredData.xlsx", file.Name)
	assert.NotEmpty(t, file.Data)
}

func TestService_Export_PDF(t *testing.T) {
	ts := &fakeTimesheets{
		filterFn: func(ctx context.Context, req timesheet.FilterRequest) ([]timesheet.TimesheetResponse, error) {
			return weekRecords(), nil
		},
	}

	svc := NewService(ts)
	file, err := svc.Export(context.Background(), ExportRequest{
		ReportRequest: ReportRequest{FromDate: "2024-01-01", ToDate: "2024-01-07"},
		Format:        "pdf",
	})

	assert.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasPrefix(string(file.Data), "%PDF"))
}

func TestService_Export_UnknownFormat(t *testing.T) {
	svc := NewService(&fakeTimesheets{
		filterFn: func(ctx context.Context, req timesheet.FilterRequest) ([]timesheet.TimesheetResponse, error) {
			return nil, nil
		},
	})

	_, err := svc.Export(context.Background(), ExportRequest{
		ReportRequest: ReportRequest{FromDate: "2024-01-01", ToDate: "2024-01-07"},
		Format:        "docx",
	})
	assert.ErrorIs(t, err, reporterrors.ErrUnknownFormat)
}
