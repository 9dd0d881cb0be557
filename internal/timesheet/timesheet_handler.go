package timesheet

import (
	"errors"
	"net/http"

	"go-timesheet/internal/shared/apperror"
	"go-timesheet/internal/shared/response"
	timesheeterrors "go-timesheet/internal/timesheet/errors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	service Service
	lookups *LookupCache
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// NewHandlerWithRedis caches the distinct-value lookups in redis.
func NewHandlerWithRedis(service Service, rdb *redis.Client) *Handler {
	return &Handler{service: service, lookups: NewLookupCache(rdb, 0)}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Add imports a batch of raw rows. The whole batch is answered at once:
// created, existing and skipped rows in input order.
func (h *Handler) Add(c *gin.Context) {
	var rows []RawRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput,
			"Request body must be an array of timesheet rows", err.Error())
		return
	}

	result, err := h.service.BulkImport(c.Request.Context(), rows)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) AddSingle(c *gin.Context) {
	var row RawRow
	if err := c.ShouldBindJSON(&row); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput,
			"Request body must be a timesheet row object", err.Error())
		return
	}

	resp, err := h.service.AddSingle(c.Request.Context(), row)
	if err != nil {
		if errors.Is(err, timesheeterrors.ErrDuplicateEntry) {
			// The conflicting record rides along in the error details.
			response.Error(c, http.StatusConflict, apperror.CodeConflict,
				timesheeterrors.ErrDuplicateEntry.Message, resp)
			return
		}
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Filter(c *gin.Context) {
	var req FilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Filter(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Clients(c *gin.Context)    { h.lookup(c, LookupClients) }
func (h *Handler) Projects(c *gin.Context)   { h.lookup(c, LookupProjects) }
func (h *Handler) Jobs(c *gin.Context)       { h.lookup(c, LookupJobs) }
func (h *Handler) FirstNames(c *gin.Context) { h.lookup(c, LookupFirstNames) }
func (h *Handler) LastNames(c *gin.Context)  { h.lookup(c, LookupLastNames) }
func (h *Handler) WorkItems(c *gin.Context)  { h.lookup(c, LookupWorkItems) }

func (h *Handler) lookup(c *gin.Context, field string) {
	ctx := c.Request.Context()

	if h.lookups != nil {
		if values, ok := h.lookups.Get(ctx, field); ok {
			response.Success(c, http.StatusOK, values, nil)
			return
		}
	}

	values, err := h.service.Lookup(ctx, field)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if h.lookups != nil {
		h.lookups.Set(ctx, field, values)
	}
	response.Success(c, http.StatusOK, values, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Timesheet entry deleted successfully"}, nil)
}
