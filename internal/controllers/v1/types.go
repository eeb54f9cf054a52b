// Package v1 implements the v1 HTTP API of the spendtrack backend.
package v1

import (
	"time"

	ez_uuid "github.com/spendtrack/backend/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// DateRangeQuery is a date range with both endpoints inclusive.
type DateRangeQuery struct {
	StartDate time.Time `form:"startDate" time_format:"2006-01-02" time_utc:"1" binding:"required" example:"2025-10-01"`
	EndDate   time.Time `form:"endDate" time_format:"2006-01-02" time_utc:"1" binding:"required" example:"2025-10-31"`
}

// valid reports whether the range endpoints are ordered.
func (q DateRangeQuery) valid() bool {
	return !q.StartDate.After(q.EndDate)
}

type YearMonthQuery struct {
	Year  int `form:"year" binding:"required" example:"2025"`
	Month int `form:"month" binding:"required,min=1,max=12" example:"10"`
}

type YearQuery struct {
	Year int `form:"year" binding:"required" example:"2025"`
}
