package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendtrack/backend/internal/httputil"
	"github.com/spendtrack/backend/internal/reports"
)

type SummaryResponse struct {
	Data  *reports.SummaryStatistics `json:"data"`
	Error *string                    `json:"error"`
}

type CategoryStatisticsResponse struct {
	Data  []reports.CategoryStatistics `json:"data"`
	Error *string                      `json:"error"`
}

type PeriodStatisticsResponse struct {
	Data  []reports.PeriodStatistics `json:"data"`
	Error *string                    `json:"error"`
}

func RegisterStatisticsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/summary", httputil.OptionsGet)
	r.GET("/summary", GetSummaryStatistics)

	r.OPTIONS("/category", httputil.OptionsGet)
	r.GET("/category", GetCategoryStatistics)

	r.OPTIONS("/monthly", httputil.OptionsGet)
	r.GET("/monthly", GetMonthlyStatistics)

	r.OPTIONS("/yearly", httputil.OptionsGet)
	r.GET("/yearly", GetYearlyStatistics)

	r.OPTIONS("/current-month", httputil.OptionsGet)
	r.GET("/current-month", GetCurrentMonthStatistics)

	r.OPTIONS("/current-year", httputil.OptionsGet)
	r.GET("/current-year", GetCurrentYearStatistics)
}

// GetSummaryStatistics returns the summary of a date range
//
//	@Summary		Summary statistics
//	@Description	Returns total, count, average, max and min over the owner's expenses in the date range. A range without expenses yields all zeroes.
//	@Tags			Statistics
//	@Produce		json
//	@Success		200			{object}	SummaryResponse
//	@Failure		400			{object}	httpError
//	@Param			startDate	query		string	true	"Start of the range, inclusive"	example(2025-10-01)
//	@Param			endDate		query		string	true	"End of the range, inclusive"	example(2025-10-31)
//	@Param			X-Owner-Id	header		string	true	"ID of the authenticated user"
//	@Router			/v1/statistics/summary [get]
func GetSummaryStatistics(c *gin.Context) {
	var query DateRangeQuery
	if err := c.Bind(&query); err != nil {
		return
	}

	if !query.valid() {
		e := errDateRangeInvalid.Error()
		c.JSON(http.StatusBadRequest, SummaryResponse{Error: &e})
		return
	}

	summary, err := reports.Summary(owner(c), query.StartDate, query.EndDate)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}

// GetCategoryStatistics returns per-category statistics of a date range
//
//	@Summary		Category statistics
//	@Description	Returns per-category totals, counts and percentages over the owner's expenses in the date range, ordered by descending total
//	@Tags			Statistics
//	@Produce		json
//	@Success		200			{object}	CategoryStatisticsResponse
//	@Failure		400			{object}	httpError
//	@Param			startDate	query		string	true	"Start of the range, inclusive"	example(2025-10-01)
//	@Param			endDate		query		string	true	"End of the range, inclusive"	example(2025-10-31)
//	@Param			X-Owner-Id	header		string	true	"ID of the authenticated user"
//	@Router			/v1/statistics/category [get]
func GetCategoryStatistics(c *gin.Context) {
	var query DateRangeQuery
	if err := c.Bind(&query); err != nil {
		return
	}

	if !query.valid() {
		e := errDateRangeInvalid.Error()
		c.JSON(http.StatusBadRequest, CategoryStatisticsResponse{Error: &e})
		return
	}

	statistics, err := reports.ByCategory(owner(c), query.StartDate, query.EndDate)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryStatisticsResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CategoryStatisticsResponse{Data: statistics})
}

// GetMonthlyStatistics returns per-day statistics of one month
//
//	@Summary		Monthly statistics
//	@Description	Returns per-day totals and counts for the month. Days without expenses are omitted.
//	@Tags			Statistics
//	@Produce		json
//	@Success		200			{object}	PeriodStatisticsResponse
//	@Failure		400			{object}	httpError
//	@Param			year		query		int		true	"Year"	example(2025)
//	@Param			month		query		int		true	"Month"	example(10)
//	@Param			X-Owner-Id	header		string	true	"ID of the authenticated user"
//	@Router			/v1/statistics/monthly [get]
func GetMonthlyStatistics(c *gin.Context) {
	var query YearMonthQuery
	if err := c.Bind(&query); err != nil {
		return
	}

	statistics, err := reports.MonthlyStatistics(owner(c), query.Year, query.Month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PeriodStatisticsResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, PeriodStatisticsResponse{Data: statistics})
}

// GetYearlyStatistics returns per-month statistics of one year
//
//	@Summary		Yearly statistics
//	@Description	Returns per-month totals and counts for the year. Months without expenses are omitted.
//	@Tags			Statistics
//	@Produce		json
//	@Success		200			{object}	PeriodStatisticsResponse
//	@Failure		400			{object}	httpError
//	@Param			year		query		int		true	"Year"	example(2025)
//	@Param			X-Owner-Id	header		string	true	"ID of the authenticated user"
//	@Router			/v1/statistics/yearly [get]
func GetYearlyStatistics(c *gin.Context) {
	var query YearQuery
	if err := c.Bind(&query); err != nil {
		return
	}

	statistics, err := reports.YearlyStatistics(owner(c), query.Year)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PeriodStatisticsResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, PeriodStatisticsResponse{Data: statistics})
}

// GetCurrentMonthStatistics returns per-day statistics of the current month
//
//	@Summary		Current month statistics
//	@Tags			Statistics
//	@Produce		json
//	@Success		200			{object}	PeriodStatisticsResponse
//	@Failure		500			{object}	httpError
//	@Param			X-Owner-Id	header		string	true	"ID of the authenticated user"
//	@Router			/v1/statistics/current-month [get]
func GetCurrentMonthStatistics(c *gin.Context) {
	statistics, err := reports.CurrentMonthStatistics(owner(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PeriodStatisticsResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, PeriodStatisticsResponse{Data: statistics})
}

// GetCurrentYearStatistics returns per-month statistics of the current year
//
//	@Summary		Current year statistics
//	@Tags			Statistics
//	@Produce		json
//	@Success		200			{object}	PeriodStatisticsResponse
//	@Failure		500			{object}	httpError
//	@Param			X-Owner-Id	header		string	true	"ID of the authenticated user"
//	@Router			/v1/statistics/current-year [get]
func GetCurrentYearStatistics(c *gin.Context) {
	statistics, err := reports.CurrentYearStatistics(owner(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PeriodStatisticsResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, PeriodStatisticsResponse{Data: statistics})
}
