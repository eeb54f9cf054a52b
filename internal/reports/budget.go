package reports

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendtrack/backend/internal/models"
	"github.com/spendtrack/backend/internal/types"
)

// BudgetCreate defines all values required to create a new budget.
type BudgetCreate struct {
	Type     models.BudgetType `json:"type" example:"CATEGORY"`
	Category string            `json:"category" example:"food"` // Required for CATEGORY budgets, ignored for MONTHLY
	Amount   decimal.Decimal   `json:"amount" example:"3000"`
	Year     int               `json:"year" example:"2025"`
	Month    int               `json:"month" example:"10"`
}

// BudgetStatus is a budget together with its live utilization. The
// utilization is never stored, it is recomputed from the expenses of
// the budget's month on every read.
type BudgetStatus struct {
	models.Budget
	Spent      decimal.Decimal `json:"spent" example:"350"`       // Sum of the matching expenses in the budget's month
	Remaining  decimal.Decimal `json:"remaining" example:"2650"`  // Amount minus spent, negative when overspent
	Percentage decimal.Decimal `json:"percentage" example:"11.67"` // Spent share of the amount in percent, can exceed 100
}

// CreateBudget validates and persists a new budget for the owner and
// returns it with its utilization.
//
// The duplicate check runs before the insert so that callers get an
// error naming the colliding period. The unique index of the budget
// table catches the remaining race between check and insert, and
// surfaces as the same error.
func CreateBudget(owner uuid.UUID, create BudgetCreate) (BudgetStatus, error) {
	if !create.Type.Valid() {
		return BudgetStatus{}, fmt.Errorf("%w, got %q", models.ErrBudgetTypeInvalid, string(create.Type))
	}

	category := strings.TrimSpace(create.Category)
	if create.Type == models.BudgetTypeMonthly {
		category = ""
	} else if category == "" {
		return BudgetStatus{}, models.ErrBudgetCategoryRequired
	}

	var err error
	if create.Type == models.BudgetTypeMonthly {
		_, err = models.MonthlyBudget(owner, create.Year, create.Month)
		if err == nil {
			return BudgetStatus{}, fmt.Errorf("%w for month %04d-%02d", models.ErrBudgetNotUnique, create.Year, create.Month)
		}
	} else {
		_, err = models.CategoryBudget(owner, create.Year, create.Month, category)
		if err == nil {
			return BudgetStatus{}, fmt.Errorf("%w for category %q in month %04d-%02d", models.ErrBudgetNotUnique, category, create.Year, create.Month)
		}
	}

	if !errors.Is(err, models.ErrResourceNotFound) {
		return BudgetStatus{}, err
	}

	budget := models.Budget{
		OwnerID:  owner,
		Type:     create.Type,
		Category: category,
		Amount:   create.Amount,
		Year:     create.Year,
		Month:    create.Month,
	}

	err = models.DB.Create(&budget).Error
	if err != nil {
		return BudgetStatus{}, err
	}

	return budgetStatus(budget)
}

// UpdateBudget replaces the amount of the owner's budget. All other
// fields are immutable after creation.
func UpdateBudget(owner uuid.UUID, id uuid.UUID, amount decimal.Decimal) (BudgetStatus, error) {
	budget, err := models.BudgetByID(owner, id)
	if err != nil {
		return BudgetStatus{}, err
	}

	budget.Amount = amount
	err = models.DB.Save(&budget).Error
	if err != nil {
		return BudgetStatus{}, err
	}

	return budgetStatus(budget)
}

// DeleteBudget deletes the owner's budget.
func DeleteBudget(owner uuid.UUID, id uuid.UUID) error {
	budget, err := models.BudgetByID(owner, id)
	if err != nil {
		return err
	}

	return models.DB.Delete(&budget).Error
}

// GetBudget returns the owner's budget with its utilization.
func GetBudget(owner uuid.UUID, id uuid.UUID) (BudgetStatus, error) {
	budget, err := models.BudgetByID(owner, id)
	if err != nil {
		return BudgetStatus{}, err
	}

	return budgetStatus(budget)
}

// BudgetsForMonth returns all budgets of the owner for the year and
// month, each with its utilization.
func BudgetsForMonth(owner uuid.UUID, year, month int) ([]BudgetStatus, error) {
	budgets, err := models.BudgetsByMonth(owner, year, month)
	if err != nil {
		return nil, err
	}

	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		status, err := budgetStatus(budget)
		if err != nil {
			return nil, err
		}

		statuses = append(statuses, status)
	}

	return statuses, nil
}

// CurrentMonthBudgets resolves the current year and month from the
// system clock and delegates to BudgetsForMonth.
func CurrentMonthBudgets(owner uuid.UUID) ([]BudgetStatus, error) {
	now := time.Now()
	return BudgetsForMonth(owner, now.Year(), int(now.Month()))
}

// budgetStatus computes the utilization of a budget from the expenses
// in its month. MONTHLY budgets count every expense of the owner,
// CATEGORY budgets only those of the budget's category.
func budgetStatus(budget models.Budget) (BudgetStatus, error) {
	month := types.NewMonth(budget.Year, time.Month(budget.Month))

	var expenses []models.Expense
	var err error
	if budget.Type == models.BudgetTypeCategory {
		expenses, err = models.ExpensesByCategoryInRange(budget.OwnerID, budget.Category, month.FirstDay(), month.LastDay())
	} else {
		expenses, err = models.ExpensesInRange(budget.OwnerID, month.FirstDay(), month.LastDay())
	}
	if err != nil {
		return BudgetStatus{}, err
	}

	spent := sumAmounts(expenses)

	return BudgetStatus{
		Budget:     budget,
		Spent:      spent,
		Remaining:  budget.Amount.Sub(spent),
		Percentage: percentOf(spent, budget.Amount),
	}, nil
}
