package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendtrack/backend/internal/httputil"
	"github.com/spendtrack/backend/internal/reports"
)

type TrendResponse struct {
	Data  []reports.TrendPoint `json:"data"`
	Error *string              `json:"error"`
}

type PieResponse struct {
	Data  []reports.PieSlice `json:"data"`
	Error *string            `json:"error"`
}

type ComparisonResponse struct {
	Data  *reports.ComparisonSeries `json:"data"`
	Error *string                   `json:"error"`
}

type TopExpensesResponse struct {
	Data  []reports.RankedExpense `json:"data"`
	Error *string                 `json:"error"`
}

type MonthlyComparisonQuery struct {
	Months int `form:"months" example:"6"` // Window size in months, defaults to 6
}

type TopExpensesQuery struct {
	DateRangeQuery
	Limit int `form:"limit" example:"10"` // Maximum number of entries, defaults to 10
}

const (
	defaultComparisonMonths = 6
	maxComparisonMonths     = 24
	defaultTopExpensesLimit = 10
	maxTopExpensesLimit     = 100
)

func RegisterChartRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/trend/daily", httputil.OptionsGet)
	r.GET("/trend/daily", GetDailyTrendChart)

	r.OPTIONS("/trend/monthly", httputil.OptionsGet)
	r.GET("/trend/monthly", GetMonthlyTrendChart)

	r.OPTIONS("/pie/category", httputil.OptionsGet)
	r.GET("/pie/category", GetCategoryPieChart)

	r.OPTIONS("/comparison/monthly", httputil.OptionsGet)
	r.GET("/comparison/monthly", GetMonthlyComparisonChart)

	r.OPTIONS("/comparison/category", httputil.OptionsGet)
	r.GET("/comparison/category", GetCategoryComparisonChart)

	r.OPTIONS("/top-expenses", httputil.OptionsGet)
	r.GET("/top-expenses", GetTopExpensesChart)
}

// GetDailyTrendChart returns the gap-filled daily trend of one month
//
//	@Summary		Daily trend
//	@Description	Returns one point per calendar day of the month, in order. Days without expenses carry a zero amount and count.
//	@Tags			Charts
//	@Produce		json
//	@Success		200			{object}	TrendResponse
//	@Failure		400			{object}	httpError
//	@Param			year		query		int		true	"Year"	example(2025)
//	@Param			month		query		int		true	"Month"	example(10)
//	@Param			X-Owner-Id	header		string	true	"ID of the authenticated user"
//	@Router			/v1/charts/trend/daily [get]
func GetDailyTrendChart(c *gin.Context) {
	var query YearMonthQuery
	if err := c.Bind(&query); err != nil {
		return
	}

	points, err := reports.DailyTrend(owner(c), query.Year, query.Month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TrendResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, TrendResponse{Data: points})
}

// GetMonthlyTrendChart returns the gap-filled monthly trend of one year
//
//	@Summary		Monthly trend
//	@Description	Returns one point per calendar month of the year, always twelve, in order. Months without expenses carry a zero amount and count.
//	@Tags			Charts
//	@Produce		json
//	@Success		200			{object}	TrendResponse
//	@Failure		400			{object}	httpError
//	@Param			year		query		int		true	"Year"	example(2025)
//	@Param			X-Owner-Id	header		string	true	"ID of the authenticated user"
//	@Router			/v1/charts/trend/monthly [get]
func GetMonthlyTrendChart(c *gin.Context) {
	var query YearQuery
	if err := c.Bind(&query); err != nil {
		return
	}

	points, err := reports.MonthlyTrend(owner(c), query.Year)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TrendResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, TrendResponse{Data: points})
}

// GetCategoryPieChart returns the category shares of a date range
//
//	@Summary		Category pie
//	@Description	Returns the per-category amounts and percentages over the owner's expenses in the date range, ordered by descending amount
//	@Tags			Charts
//	@Produce		json
//	@Success		200			{object}	PieResponse
//	@Failure		400			{object}	httpError
//	@Param			startDate	query		string	true	"Start of the range, inclusive"	example(2025-10-01)
//	@Param			endDate		query		string	true	"End of the range, inclusive"	example(2025-10-31)
//	@Param			X-Owner-Id	header		string	true	"ID of the authenticated user"
//	@Router			/v1/charts/pie/category [get]
func GetCategoryPieChart(c *gin.Context) {
	var query DateRangeQuery
	if err := c.Bind(&query); err != nil {
		return
	}

	if !query.valid() {
		e := errDateRangeInvalid.Error()
		c.JSON(http.StatusBadRequest, PieResponse{Error: &e})
		return
	}

	slices, err := reports.CategoryPie(owner(c), query.StartDate, query.EndDate)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PieResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, PieResponse{Data: slices})
}

// GetMonthlyComparisonChart compares the last N months
//
//	@Summary		Monthly comparison
//	@Description	Returns parallel label, amount and count arrays for the window of months ending at the current month. The window defaults to 6 months and is capped at 24.
//	@Tags			Charts
//	@Produce		json
//	@Success		200			{object}	ComparisonResponse
//	@Failure		400			{object}	httpError
//	@Param			months		query		int		false	"Window size in months, 1 to 24"	example(6)
//	@Param			X-Owner-Id	header		string	true	"ID of the authenticated user"
//	@Router			/v1/charts/comparison/monthly [get]
func GetMonthlyComparisonChart(c *gin.Context) {
	var query MonthlyComparisonQuery
	if err := c.Bind(&query); err != nil {
		return
	}

	if query.Months == 0 {
		query.Months = defaultComparisonMonths
	}

	if query.Months < 1 || query.Months > maxComparisonMonths {
		e := errMonthsOutOfRange.Error()
		c.JSON(http.StatusBadRequest, ComparisonResponse{Error: &e})
		return
	}

	series, err := reports.MonthlyComparison(owner(c), query.Months)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ComparisonResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ComparisonResponse{Data: &series})
}

// GetCategoryComparisonChart compares the categories of a date range
//
//	@Summary		Category comparison
//	@Description	Returns parallel per-category label, amount and count arrays over the owner's expenses in the date range, ordered by descending amount
//	@Tags			Charts
//	@Produce		json
//	@Success		200			{object}	ComparisonResponse
//	@Failure		400			{object}	httpError
//	@Param			startDate	query		string	true	"Start of the range, inclusive"	example(2025-10-01)
//	@Param			endDate		query		string	true	"End of the range, inclusive"	example(2025-10-31)
//	@Param			X-Owner-Id	header		string	true	"ID of the authenticated user"
//	@Router			/v1/charts/comparison/category [get]
func GetCategoryComparisonChart(c *gin.Context) {
	var query DateRangeQuery
	if err := c.Bind(&query); err != nil {
		return
	}

	if !query.valid() {
		e := errDateRangeInvalid.Error()
		c.JSON(http.StatusBadRequest, ComparisonResponse{Error: &e})
		return
	}

	series, err := reports.CategoryComparison(owner(c), query.StartDate, query.EndDate)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ComparisonResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ComparisonResponse{Data: &series})
}

// GetTopExpensesChart returns the largest expenses of a date range
//
//	@Summary		Top expenses
//	@Description	Returns the largest expenses in the date range, ordered by descending amount and ranked from 1. The limit defaults to 10 and is capped at 100.
//	@Tags			Charts
//	@Produce		json
//	@Success		200			{object}	TopExpensesResponse
//	@Failure		400			{object}	httpError
//	@Param			startDate	query		string	true	"Start of the range, inclusive"	example(2025-10-01)
//	@Param			endDate		query		string	true	"End of the range, inclusive"	example(2025-10-31)
//	@Param			limit		query		int		false	"Maximum number of entries, 1 to 100"	example(10)
//	@Param			X-Owner-Id	header		string	true	"ID of the authenticated user"
//	@Router			/v1/charts/top-expenses [get]
func GetTopExpensesChart(c *gin.Context) {
	var query TopExpensesQuery
	if err := c.Bind(&query); err != nil {
		return
	}

	if !query.valid() {
		e := errDateRangeInvalid.Error()
		c.JSON(http.StatusBadRequest, TopExpensesResponse{Error: &e})
		return
	}

	if query.Limit == 0 {
		query.Limit = defaultTopExpensesLimit
	}

	if query.Limit < 1 || query.Limit > maxTopExpensesLimit {
		e := errLimitOutOfRange.Error()
		c.JSON(http.StatusBadRequest, TopExpensesResponse{Error: &e})
		return
	}

	ranked, err := reports.TopExpenses(owner(c), query.StartDate, query.EndDate, query.Limit)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TopExpensesResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, TopExpensesResponse{Data: ranked})
}
