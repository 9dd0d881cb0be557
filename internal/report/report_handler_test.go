package report_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-timesheet/internal/report"
	reporterrors "go-timesheet/internal/report/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	summaryFn func(ctx context.Context, req report.ReportRequest) (report.Summary, error)
	exportFn  func(ctx context.Context, req report.ExportRequest) (report.File, error)
}

func (f *fakeService) Summary(ctx context.Context, req report.ReportRequest) (report.Summary, error) {
	return f.summaryFn(ctx, req)
}
func (f *fakeService) Export(ctx context.Context, req report.ExportRequest) (report.File, error) {
	return f.exportFn(ctx, req)
}

func TestHandler_Summary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		summaryFn: func(ctx context.Context, req report.ReportRequest) (report.Summary, error) {
			assert.Equal(t, "Jo", req.EmployeeName)
			assert.Equal(t, "2024-01-01", req.FromDate)
			return report.Summary{DaysWorked: 5, Holidays: 2, Total: 7}, nil
		},
	}
	h := report.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet,
		"/timesheets/report?employeeName=Jo&fromDate=2024-01-01&toDate=2024-01-07", nil)
	h.Summary(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"days_worked":5`)
	assert.Contains(t, w.Body.String(), `"holidays":2`)
}

func TestHandler_Summary_MissingRange(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		summaryFn: func(ctx context.Context, req report.ReportRequest) (report.Summary, error) {
			return report.Summary{}, reporterrors.ErrMissingDateRange
		},
	}
	h := report.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/timesheets/report", nil)
	h.Summary(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":false`)
}

func TestHandler_Export_StreamsFile(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		exportFn: func(ctx context.Context, req report.ExportRequest) (report.File, error) {
			assert.Equal(t, "csv", req.Format)
			return report.File{
				Name:        "FilteredData.csv",
				ContentType: "text/csv",
				Data:        []byte("Project Name,Period\n"),
			}, nil
		},
	}
	h := report.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet,
		"/timesheets/export?format=csv&fromDate=2024-01-01&toDate=2024-01-07", nil)
	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="FilteredData.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "Project Name,Period\n", w.Body.String())
}

func TestHandler_Export_UnknownFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		exportFn: func(ctx context.Context, req report.ExportRequest) (report.File, error) {
			return report.File{}, reporterrors.ErrUnknownFormat
		},
	}
	h := report.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/timesheets/export?format=docx", nil)
	h.Export(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
