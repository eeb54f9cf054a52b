package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/spendtrack/backend/internal/httputil"
	"github.com/spendtrack/backend/internal/reports"
)

type BudgetResponse struct {
	Data  *reports.BudgetStatus `json:"data"`
	Error *string               `json:"error"`
}

type BudgetListResponse struct {
	Data  []reports.BudgetStatus `json:"data"`
	Error *string                `json:"error"`
}

// BudgetUpdate holds the only mutable field of a budget. Type, category
// and period are fixed after creation; delete and recreate to change them.
type BudgetUpdate struct {
	Amount decimal.Decimal `json:"amount" example:"3500"`
}

func RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGetPost)
	r.GET("", GetBudgets)
	r.POST("", CreateBudget)

	r.OPTIONS("/current", httputil.OptionsGet)
	r.GET("/current", GetCurrentBudgets)

	r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
	r.GET("/:id", GetBudget)
	r.PATCH("/:id", UpdateBudget)
	r.DELETE("/:id", DeleteBudget)
}

// CreateBudget creates a new budget
//
//	@Summary		Create budget
//	@Description	Creates a MONTHLY or CATEGORY budget for one calendar month. At most one budget may exist per owner, type, category and month.
//	@Tags			Budgets
//	@Accept			json
//	@Produce		json
//	@Success		201			{object}	BudgetResponse
//	@Failure		400			{object}	httpError
//	@Failure		409			{object}	httpError
//	@Failure		500			{object}	httpError
//	@Param			budget		body		reports.BudgetCreate	true	"Budget"
//	@Param			X-Owner-Id	header		string					true	"ID of the authenticated user"
//	@Router			/v1/budgets [post]
func CreateBudget(c *gin.Context) {
	var create reports.BudgetCreate
	if err := httputil.BindData(c, &create); err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	budget, err := reports.CreateBudget(owner(c), create)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, BudgetResponse{Data: &budget})
}

// GetBudgets returns the budgets for a month with their utilization
//
//	@Summary		List budgets
//	@Description	Returns all budgets of the owner for the given month. MONTHLY budgets come first, CATEGORY budgets follow sorted by category.
//	@Tags			Budgets
//	@Produce		json
//	@Success		200			{object}	BudgetListResponse
//	@Failure		400			{object}	httpError
//	@Param			year		query		int		true	"Year"	example(2025)
//	@Param			month		query		int		true	"Month"	example(10)
//	@Param			X-Owner-Id	header		string	true	"ID of the authenticated user"
//	@Router			/v1/budgets [get]
func GetBudgets(c *gin.Context) {
	var query YearMonthQuery
	if err := c.Bind(&query); err != nil {
		return
	}

	budgets, err := reports.BudgetsForMonth(owner(c), query.Year, query.Month)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: budgets})
}

// GetCurrentBudgets returns the budgets of the current month
//
//	@Summary		List current budgets
//	@Tags			Budgets
//	@Produce		json
//	@Success		200			{object}	BudgetListResponse
//	@Failure		500			{object}	httpError
//	@Param			X-Owner-Id	header		string	true	"ID of the authenticated user"
//	@Router			/v1/budgets/current [get]
func GetCurrentBudgets(c *gin.Context) {
	budgets, err := reports.CurrentMonthBudgets(owner(c))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: budgets})
}

// GetBudget returns a single budget with its utilization
//
//	@Summary		Get budget
//	@Tags			Budgets
//	@Produce		json
//	@Success		200			{object}	BudgetResponse
//	@Failure		400			{object}	httpError
//	@Failure		404			{object}	httpError
//	@Param			id			path		string	true	"ID formatted as string"
//	@Param			X-Owner-Id	header		string	true	"ID of the authenticated user"
//	@Router			/v1/budgets/{id} [get]
func GetBudget(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{Error: &e})
		return
	}

	budget, err := reports.GetBudget(owner(c), uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &budget})
}

// UpdateBudget changes the amount of a budget
//
//	@Summary		Update budget
//	@Description	Updates the amount of the budget. All other fields are immutable.
//	@Tags			Budgets
//	@Accept			json
//	@Produce		json
//	@Success		200			{object}	BudgetResponse
//	@Failure		400			{object}	httpError
//	@Failure		404			{object}	httpError
//	@Param			id			path		string			true	"ID formatted as string"
//	@Param			budget		body		BudgetUpdate	true	"Budget"
//	@Param			X-Owner-Id	header		string			true	"ID of the authenticated user"
//	@Router			/v1/budgets/{id} [patch]
func UpdateBudget(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{Error: &e})
		return
	}

	var update BudgetUpdate
	if err := httputil.BindData(c, &update); err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	budget, err := reports.UpdateBudget(owner(c), uri.ID.UUID, update.Amount)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, BudgetResponse{Data: &budget})
}

// DeleteBudget deletes a budget
//
//	@Summary		Delete budget
//	@Tags			Budgets
//	@Success		204
//	@Failure		400			{object}	httpError
//	@Failure		404			{object}	httpError
//	@Param			id			path		string	true	"ID formatted as string"
//	@Param			X-Owner-Id	header		string	true	"ID of the authenticated user"
//	@Router			/v1/budgets/{id} [delete]
func DeleteBudget(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{Error: &e})
		return
	}

	if err := reports.DeleteBudget(owner(c), uri.ID.UUID); err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	c.Status(http.StatusNoContent)
}
