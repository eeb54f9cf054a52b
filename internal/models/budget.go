package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetType determines what spending a budget caps.
type BudgetType string

const (
	// BudgetTypeMonthly caps all spending in a month.
	BudgetTypeMonthly BudgetType = "MONTHLY"

	// BudgetTypeCategory caps the spending of a single category in a month.
	BudgetTypeCategory BudgetType = "CATEGORY"
)

// Valid reports whether the budget type is one of the known values.
func (t BudgetType) Valid() bool {
	return t == BudgetTypeMonthly || t == BudgetTypeCategory
}

// Budget is a spending cap of one owner for one month.
//
// The unique index makes the database the final arbiter for duplicate
// budgets: two concurrent creates for the same (owner, type, category,
// year, month) can both pass the pre-check in the tracker, but only one
// insert commits.
type Budget struct {
	DefaultModel
	OwnerID  uuid.UUID       `json:"ownerId" gorm:"uniqueIndex:budget_owner_period"`
	Type     BudgetType      `json:"type" gorm:"column:budget_type;uniqueIndex:budget_owner_period" example:"MONTHLY"`
	Category string          `json:"category,omitempty" gorm:"uniqueIndex:budget_owner_period" example:"food"` // Only set for CATEGORY budgets
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"3000"`
	Year     int             `json:"year" gorm:"uniqueIndex:budget_owner_period" example:"2025"`
	Month    int             `json:"month" gorm:"uniqueIndex:budget_owner_period" example:"10"`
}

var (
	ErrBudgetTypeInvalid       = errors.New("the budget type must be MONTHLY or CATEGORY")
	ErrBudgetCategoryRequired  = errors.New("category budgets must specify a category")
	ErrBudgetAmountNotPositive = errors.New("budget amounts must be larger than zero")
	ErrBudgetYearInvalid       = errors.New("the budget year must be between 2000 and 2100")
	ErrBudgetMonthInvalid      = errors.New("the budget month must be between 1 and 12")
	ErrBudgetNotUnique         = errors.New("a budget already exists")
)

// BeforeSave trims and validates the budget.
//
// The category of a MONTHLY budget is always cleared, so that the unique
// index treats all MONTHLY budgets of a month as the same tuple.
func (b *Budget) BeforeSave(_ *gorm.DB) error {
	b.Category = strings.TrimSpace(b.Category)

	if !b.Type.Valid() {
		return ErrBudgetTypeInvalid
	}

	if b.Type == BudgetTypeMonthly {
		b.Category = ""
	} else if b.Category == "" {
		return ErrBudgetCategoryRequired
	}

	if !b.Amount.IsPositive() {
		return ErrBudgetAmountNotPositive
	}

	if b.Year < 2000 || b.Year > 2100 {
		return ErrBudgetYearInvalid
	}

	if b.Month < 1 || b.Month > 12 {
		return ErrBudgetMonthInvalid
	}

	return nil
}

// BudgetByID returns the budget with the given ID, scoped to the owner.
// A budget belonging to another owner is reported as not found.
func BudgetByID(owner uuid.UUID, id uuid.UUID) (Budget, error) {
	var budget Budget
	err := DB.Where(&Budget{OwnerID: owner}).First(&budget, "id = ?", id).Error
	return budget, err
}

// BudgetsByMonth returns all budgets of the owner for a year and month,
// the monthly budget first, category budgets sorted by category.
func BudgetsByMonth(owner uuid.UUID, year, month int) ([]Budget, error) {
	var budgets []Budget
	err := DB.
		Where("owner_id = ? AND year = ? AND month = ?", owner, year, month).
		Order("budget_type DESC, category ASC").
		Find(&budgets).Error

	return budgets, err
}

// MonthlyBudget returns the MONTHLY budget of the owner for a year and month.
func MonthlyBudget(owner uuid.UUID, year, month int) (Budget, error) {
	var budget Budget
	err := DB.
		Where("owner_id = ? AND budget_type = ? AND year = ? AND month = ?", owner, BudgetTypeMonthly, year, month).
		First(&budget).Error

	return budget, err
}

// CategoryBudget returns the CATEGORY budget of the owner for a year, month
// and category.
func CategoryBudget(owner uuid.UUID, year, month int, category string) (Budget, error) {
	var budget Budget
	err := DB.
		Where("owner_id = ? AND budget_type = ? AND year = ? AND month = ? AND category = ?", owner, BudgetTypeCategory, year, month, category).
		First(&budget).Error

	return budget, err
}
