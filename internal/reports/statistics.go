package reports

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendtrack/backend/internal/models"
)

// SummaryStatistics describes all expenses of an owner in a date range.
type SummaryStatistics struct {
	Total   decimal.Decimal `json:"total" example:"1245"`
	Count   int64           `json:"count" example:"7"`
	Average decimal.Decimal `json:"average" example:"177.86"` // Total divided by count, two decimal places
	Max     decimal.Decimal `json:"max" example:"450"`
	Min     decimal.Decimal `json:"min" example:"15"`
}

// CategoryStatistics describes the expenses of one category in a date range.
type CategoryStatistics struct {
	Category   string          `json:"category" example:"food"`
	Total      decimal.Decimal `json:"total" example:"350"`
	Count      int64           `json:"count" example:"2"`
	Percentage decimal.Decimal `json:"percentage" example:"87.5"` // Share of the grand total of the range in percent
}

// Summary computes the overall statistics for the owner's expenses in
// [from, until]. A range without expenses yields the zero summary, not
// an error.
func Summary(owner uuid.UUID, from, until time.Time) (SummaryStatistics, error) {
	expenses, err := models.ExpensesInRange(owner, from, until)
	if err != nil {
		return SummaryStatistics{}, err
	}

	if len(expenses) == 0 {
		return SummaryStatistics{
			Total:   decimal.Zero,
			Average: decimal.Zero,
			Max:     decimal.Zero,
			Min:     decimal.Zero,
		}, nil
	}

	total := decimal.Zero
	max := expenses[0].Amount
	min := expenses[0].Amount
	for _, expense := range expenses {
		total = total.Add(expense.Amount)

		if expense.Amount.GreaterThan(max) {
			max = expense.Amount
		}
		if expense.Amount.LessThan(min) {
			min = expense.Amount
		}
	}

	count := int64(len(expenses))

	return SummaryStatistics{
		Total:   total,
		Count:   count,
		Average: total.Div(decimal.NewFromInt(count)).Round(2),
		Max:     max,
		Min:     min,
	}, nil
}

// ByCategory computes per-category statistics for the owner's expenses
// in [from, until], ordered by descending total. The percentage of each
// category refers to the grand total of the whole range.
func ByCategory(owner uuid.UUID, from, until time.Time) ([]CategoryStatistics, error) {
	expenses, err := models.ExpensesInRange(owner, from, until)
	if err != nil {
		return nil, err
	}

	grandTotal := sumAmounts(expenses)
	groups := groupExpenses(expenses, byCategory)

	statistics := make([]CategoryStatistics, 0, len(groups))
	for _, category := range keysByTotalDesc(groups) {
		acc := groups[category]
		statistics = append(statistics, CategoryStatistics{
			Category:   category,
			Total:      acc.total,
			Count:      acc.count,
			Percentage: percentOf(acc.total, grandTotal),
		})
	}

	return statistics, nil
}
