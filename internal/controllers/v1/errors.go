package v1

import (
	"errors"
	"net/http"

	"github.com/spendtrack/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no budget matching your query"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrBudgetNotUnique) {
		return http.StatusConflict
	}

	return http.StatusBadRequest
}

var (
	errDateRangeInvalid   = errors.New("startDate must not be after endDate")
	errFilterRangeInvalid = errors.New("fromDate must not be after untilDate")
	errMonthsOutOfRange = errors.New("the months parameter must be between 1 and 24")
	errLimitOutOfRange  = errors.New("the limit parameter must be between 1 and 100")
	errSortInvalid      = errors.New("sortBy must be one of \"date\" and \"amount\", sortDirection one of \"asc\" and \"desc\"")
)
