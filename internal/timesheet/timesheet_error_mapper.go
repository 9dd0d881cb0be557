package timesheet

import (
	"errors"
	"net/http"
	"strings"

	"go-timesheet/internal/shared/apperror"
	timesheeterrors "go-timesheet/internal/timesheet/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError translates store-level failures into API errors. A
// unique violation on the identity index means a concurrent import won the
// check-then-create race. Anything unrecognized is wrapped as a 500 with
// the original error kept reachable.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return timesheeterrors.ErrTimesheetNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_timesheet_identity" {
			return timesheeterrors.ErrDuplicateEntry
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_timesheet_identity") {
		return timesheeterrors.ErrDuplicateEntry
	}

	return apperror.Wrap(err,
		apperror.CodeInternalError,
		"Timesheet store operation failed",
		http.StatusInternalServerError,
	)
}
