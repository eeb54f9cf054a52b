package v1

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"

	"github.com/spendtrack/backend/internal/export"
	"github.com/spendtrack/backend/internal/httputil"
	"github.com/spendtrack/backend/internal/models"
)

type ExpenseEditable struct {
	Title    string          `json:"title" example:"Lunch"`
	Amount   decimal.Decimal `json:"amount" example:"14.03"`
	Category string          `json:"category" example:"food"`
	Date     time.Time       `json:"date" example:"2025-10-14T00:00:00Z"`
}

// model returns a models.Expense for the owner from the editable fields.
func (editable ExpenseEditable) model(owner uuid.UUID) models.Expense {
	return models.Expense{
		OwnerID:  owner,
		Title:    editable.Title,
		Amount:   editable.Amount,
		Category: editable.Category,
		Date:     editable.Date,
	}
}

type ExpenseResponse struct {
	Data  *models.Expense `json:"data"`
	Error *string         `json:"error"`
}

type ExpenseListResponse struct {
	Data  []models.Expense `json:"data"`
	Error *string          `json:"error"`
}

type CategoryListResponse struct {
	Data  []string `json:"data"`
	Error *string  `json:"error"`
}

// ExpenseQueryFilter narrows down the expenses returned by GetExpenses.
// The category supports the * wildcard, e.g. "food*" matches "food" and
// "food-delivery".
type ExpenseQueryFilter struct {
	Category      string    `form:"category"`
	FromDate      time.Time `form:"fromDate" time_format:"2006-01-02" time_utc:"1"`
	UntilDate     time.Time `form:"untilDate" time_format:"2006-01-02" time_utc:"1"`
	SortBy        string    `form:"sortBy"`        // "date" (default) or "amount"
	SortDirection string    `form:"sortDirection"` // "asc" or "desc" (default)
}

func RegisterExpenseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", GetExpenses)
	r.POST("", CreateExpense)

	r.OPTIONS("/categories", httputil.OptionsGet)
	r.GET("/categories", GetExpenseCategories)

	r.OPTIONS("/export/csv", httputil.OptionsGet)
	r.GET("/export/csv", ExportExpensesCSV)

	r.OPTIONS("/:id", httputil.OptionsGetPutDelete)
	r.GET("/:id", GetExpense)
	r.PUT("/:id", UpdateExpense)
	r.DELETE("/:id", DeleteExpense)
}

// CreateExpense creates a new expense
//
//	@Summary		Create expense
//	@Description	Creates a new expense for the authenticated owner
//	@Tags			Expenses
//	@Accept			json
//	@Produce		json
//	@Success		201			{object}	ExpenseResponse
//	@Failure		400			{object}	httpError
//	@Failure		500			{object}	httpError
//	@Param			expense		body		ExpenseEditable	true	"Expense"
//	@Param			X-Owner-Id	header		string			true	"ID of the authenticated user"
//	@Router			/v1/expenses [post]
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	expense := editable.model(owner(c))
	if err := models.DB.Create(&expense).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: &expense})
}

// GetExpenses returns expenses filtered by the query parameters
//
//	@Summary		List expenses
//	@Description	Returns the owner's expenses, optionally filtered by category and date range. The category filter supports the * wildcard.
//	@Tags			Expenses
//	@Produce		json
//	@Success		200			{object}	ExpenseListResponse
//	@Failure		400			{object}	httpError
//	@Failure		500			{object}	httpError
//	@Param			category	query		string	false	"Category, supports *"
//	@Param			fromDate	query		string	false	"Earliest date, inclusive"	example(2025-10-01)
//	@Param			untilDate	query		string	false	"Latest date, inclusive"	example(2025-10-31)
//	@Param			sortBy		query		string	false	"date or amount"
//	@Param			sortDirection	query	string	false	"asc or desc"
//	@Param			X-Owner-Id	header		string	true	"ID of the authenticated user"
//	@Router			/v1/expenses [get]
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.Bind(&filter); err != nil {
		return
	}

	expenses, err := filteredExpenses(owner(c), filter)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseListResponse{Error: &e})
		return
	}

	if err := sortExpenses(expenses, filter.SortBy, filter.SortDirection); err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: expenses})
}

// filteredExpenses fetches the owner's expenses matching the filter.
// Wildcard categories are matched in memory since sqlite has no glob
// support for parameterized patterns we control.
func filteredExpenses(owner uuid.UUID, filter ExpenseQueryFilter) ([]models.Expense, error) {
	category := strings.TrimSpace(filter.Category)
	wildcard := strings.Contains(category, "*")

	hasRange := !filter.FromDate.IsZero() || !filter.UntilDate.IsZero()
	from := filter.FromDate
	until := filter.UntilDate
	if until.IsZero() {
		until = time.Now()
	}
	if hasRange && from.After(until) {
		return nil, errFilterRangeInvalid
	}

	var expenses []models.Expense
	var err error
	switch {
	case hasRange && category != "" && !wildcard:
		expenses, err = models.ExpensesByCategoryInRange(owner, category, from, until)
	case hasRange:
		expenses, err = models.ExpensesInRange(owner, from, until)
	case category != "" && !wildcard:
		expenses, err = models.ExpensesByCategory(owner, category)
	default:
		expenses, err = models.ExpensesByOwner(owner)
	}
	if err != nil {
		return nil, err
	}

	if wildcard {
		matched := make([]models.Expense, 0, len(expenses))
		for _, expense := range expenses {
			if glob.Glob(category, expense.Category) {
				matched = append(matched, expense)
			}
		}
		expenses = matched
	}

	return expenses, nil
}

// sortExpenses re-orders the expenses in place according to the sort
// query parameters. Without parameters the database order is kept.
func sortExpenses(expenses []models.Expense, by, direction string) error {
	if by == "" && direction == "" {
		return nil
	}

	if by == "" {
		by = "date"
	}
	if direction == "" {
		direction = "desc"
	}

	if !slices.Contains([]string{"date", "amount"}, by) || !slices.Contains([]string{"asc", "desc"}, direction) {
		return errSortInvalid
	}

	sort.SliceStable(expenses, func(i, j int) bool {
		a, b := expenses[i], expenses[j]
		if direction == "desc" {
			a, b = b, a
		}

		if by == "amount" {
			return a.Amount.LessThan(b.Amount)
		}
		return a.Date.Before(b.Date)
	})

	return nil
}

// GetExpense returns a single expense
//
//	@Summary		Get expense
//	@Tags			Expenses
//	@Produce		json
//	@Success		200			{object}	ExpenseResponse
//	@Failure		400			{object}	httpError
//	@Failure		404			{object}	httpError
//	@Param			id			path		string	true	"ID formatted as string"
//	@Param			X-Owner-Id	header		string	true	"ID of the authenticated user"
//	@Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseResponse{Error: &e})
		return
	}

	expense, err := models.ExpenseByID(owner(c), uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: &expense})
}

// UpdateExpense replaces all editable fields of an expense
//
//	@Summary		Update expense
//	@Description	Replaces title, amount, category and date of the expense. Partial updates are not supported.
//	@Tags			Expenses
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	ExpenseResponse
//	@Failure		400			{object}	httpError
//	@Failure		404			{object}	httpError
//	@Param			id			path		string			true	"ID formatted as string"
//	@Param			expense		body		ExpenseEditable	true	"Expense"
//	@Param			X-Owner-Id	header		string			true	"ID of the authenticated user"
//	@Router			/v1/expenses/{id} [put]
func UpdateExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseResponse{Error: &e})
		return
	}

	expense, err := models.ExpenseByID(owner(c), uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	expense.Title = editable.Title
	expense.Amount = editable.Amount
	expense.Category = editable.Category
	expense.Date = editable.Date

	if err := models.DB.Save(&expense).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: &expense})
}

// DeleteExpense deletes an expense
//
//	@Summary		Delete expense
//	@Tags			Expenses
//	@Success		204
//	@Failure		400			{object}	httpError
//	@Failure		404			{object}	httpError
//	@Param			id			path		string	true	"ID formatted as string"
//	@Param			X-Owner-Id	header		string	true	"ID of the authenticated user"
//	@Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseResponse{Error: &e})
		return
	}

	expense, err := models.ExpenseByID(owner(c), uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	if err := models.DB.Delete(&expense).Error; err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{Error: &e})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetExpenseCategories returns the distinct categories in a date range
//
//	@Summary		List categories
//	@Description	Returns the distinct categories the owner spent money on in the date range, sorted alphabetically
//	@Tags			Expenses
//	@Produce		json
//	@Success		200			{object}	CategoryListResponse
//	@Failure		400			{object}	httpError
//	@Param			startDate	query		string	true	"Start of the range, inclusive"	example(2025-10-01)
//	@Param			endDate		query		string	true	"End of the range, inclusive"	example(2025-10-31)
//	@Param			X-Owner-Id	header		string	true	"ID of the authenticated user"
//	@Router			/v1/expenses/categories [get]
func GetExpenseCategories(c *gin.Context) {
	var query DateRangeQuery
	if err := c.Bind(&query); err != nil {
		return
	}

	if !query.valid() {
		e := errDateRangeInvalid.Error()
		c.JSON(http.StatusBadRequest, CategoryListResponse{Error: &e})
		return
	}

	categories, err := models.CategoriesInRange(owner(c), query.StartDate, query.EndDate)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoryListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, CategoryListResponse{Data: categories})
}

// ExportExpensesCSV streams the owner's expenses as a CSV file
//
//	@Summary		Export expenses
//	@Description	Streams the expenses matching the filter as a UTF-8 CSV file with a byte order mark
//	@Tags			Expenses
//	@Produce		text/csv
//	@Success		200
//	@Failure		400			{object}	httpError
//	@Param			category	query		string	false	"Category, supports *"
//	@Param			fromDate	query		string	false	"Earliest date, inclusive"	example(2025-10-01)
//	@Param			untilDate	query		string	false	"Latest date, inclusive"	example(2025-10-31)
//	@Param			X-Owner-Id	header		string	true	"ID of the authenticated user"
//	@Router			/v1/expenses/export/csv [get]
func ExportExpensesCSV(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.Bind(&filter); err != nil {
		return
	}

	expenses, err := filteredExpenses(owner(c), filter)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseListResponse{Error: &e})
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="expenses.csv"`)
	c.Status(http.StatusOK)

	if err := export.ExpensesCSV(c.Writer, expenses); err != nil {
		_ = c.Error(err)
	}
}
