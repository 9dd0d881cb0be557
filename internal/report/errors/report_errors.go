package reporterrors

import (
	"net/http"

	"go-timesheet/internal/shared/apperror"
)

var (
	ErrMissingDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"fromDate and toDate are required for reporting",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"fromDate and toDate must be valid dates with fromDate not after toDate",
		http.StatusBadRequest,
	)
	ErrUnknownFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown export format, expected csv, xls or pdf",
		http.StatusBadRequest,
	)
)
