package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents a single spending record of one owner.
type Expense struct {
	DefaultModel
	OwnerID  uuid.UUID       `json:"ownerId" gorm:"index"`
	Title    string          `json:"title" example:"Lunch"`
	Amount   decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.03"`
	Category string          `json:"category" example:"food"`
	Date     time.Time       `json:"date" example:"2025-10-14T00:00:00Z"` // Calendar day of the expense, always 00:00 UTC
}

var (
	ErrExpenseTitleInvalid      = errors.New("expense titles must be between 1 and 100 characters")
	ErrExpenseCategoryInvalid   = errors.New("expense categories must be between 1 and 50 characters")
	ErrExpenseAmountNotPositive = errors.New("expense amounts must be larger than zero")
	ErrExpenseDateInFuture      = errors.New("expense dates must not be in the future")
)

// BeforeSave trims whitespace, normalizes the date to midnight UTC and
// validates the record.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Title = strings.TrimSpace(e.Title)
	e.Category = strings.TrimSpace(e.Category)
	e.Date = midnightUTC(e.Date)

	if len(e.Title) < 1 || len(e.Title) > 100 {
		return ErrExpenseTitleInvalid
	}

	if len(e.Category) < 1 || len(e.Category) > 50 {
		return ErrExpenseCategoryInvalid
	}

	if !e.Amount.IsPositive() {
		return ErrExpenseAmountNotPositive
	}

	if e.Date.After(midnightUTC(time.Now())) {
		return ErrExpenseDateInFuture
	}

	return nil
}

// AfterFind normalizes the date back to UTC after reading from the database.
func (e *Expense) AfterFind(tx *gorm.DB) error {
	e.Date = e.Date.In(time.UTC)
	return e.DefaultModel.AfterFind(tx)
}

func midnightUTC(t time.Time) time.Time {
	year, month, day := t.In(time.UTC).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ExpenseByID returns the expense with the given ID, scoped to the owner.
// An expense belonging to another owner is reported as not found.
func ExpenseByID(owner uuid.UUID, id uuid.UUID) (Expense, error) {
	var expense Expense
	err := DB.Where(&Expense{OwnerID: owner}).First(&expense, "id = ?", id).Error
	return expense, err
}

// ExpensesByOwner returns all expenses of the owner, newest date first.
func ExpensesByOwner(owner uuid.UUID) ([]Expense, error) {
	var expenses []Expense
	err := DB.
		Where(&Expense{OwnerID: owner}).
		Order("date(date) DESC, datetime(created_at) DESC").
		Find(&expenses).Error

	return expenses, err
}

// ExpensesByCategory returns all expenses of the owner in a category.
func ExpensesByCategory(owner uuid.UUID, category string) ([]Expense, error) {
	var expenses []Expense
	err := DB.
		Where(&Expense{OwnerID: owner, Category: category}).
		Order("date(date) DESC, datetime(created_at) DESC").
		Find(&expenses).Error

	return expenses, err
}

// ExpensesInRange returns all expenses of the owner with a date in
// [from, until]. Both endpoints are inclusive.
func ExpensesInRange(owner uuid.UUID, from, until time.Time) ([]Expense, error) {
	var expenses []Expense
	err := DB.
		Where(&Expense{OwnerID: owner}).
		Where("date >= date(?)", midnightUTC(from)).
		Where("date < date(?)", midnightUTC(until).AddDate(0, 0, 1)).
		Order("date(date) ASC, datetime(created_at) ASC").
		Find(&expenses).Error

	return expenses, err
}

// ExpensesByCategoryInRange returns all expenses of the owner in a category
// with a date in [from, until].
func ExpensesByCategoryInRange(owner uuid.UUID, category string, from, until time.Time) ([]Expense, error) {
	var expenses []Expense
	err := DB.
		Where(&Expense{OwnerID: owner, Category: category}).
		Where("date >= date(?)", midnightUTC(from)).
		Where("date < date(?)", midnightUTC(until).AddDate(0, 0, 1)).
		Order("date(date) ASC, datetime(created_at) ASC").
		Find(&expenses).Error

	return expenses, err
}

// CategoriesInRange returns the distinct categories the owner spent money on
// in [from, until], sorted alphabetically.
func CategoriesInRange(owner uuid.UUID, from, until time.Time) ([]string, error) {
	var categories []string
	err := DB.
		Model(&Expense{}).
		Where(&Expense{OwnerID: owner}).
		Where("date >= date(?)", midnightUTC(from)).
		Where("date < date(?)", midnightUTC(until).AddDate(0, 0, 1)).
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error

	return categories, err
}
