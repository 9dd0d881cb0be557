package timesheeterrors

import (
	"net/http"

	"go-timesheet/internal/shared/apperror"
)

var (
	ErrTimesheetNotFound = apperror.New(
		apperror.CodeNotFound,
		"Timesheet not found",
		http.StatusNotFound,
	)
	ErrDuplicateEntry = apperror.New(
		apperror.CodeConflict,
		"Timesheet entry already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"fromDate and toDate must be valid dates",
		http.StatusBadRequest,
	)
	ErrUnknownLookup = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown lookup field",
		http.StatusBadRequest,
	)
)
