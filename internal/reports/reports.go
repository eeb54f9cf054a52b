// Package reports implements the aggregation core of the backend:
// budget utilization, summary and per-category statistics, period
// grouping and chart data.
//
// All operations are stateless read computations over a snapshot read
// through the models package. The owner is always an explicit
// parameter, never ambient state, so every function can be exercised
// without a session.
package reports

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/spendtrack/backend/internal/models"
)

const (
	dayLabel   = "2006-01-02"
	monthLabel = "2006-01"
)

var hundred = decimal.NewFromInt(100)

type accumulator struct {
	total decimal.Decimal
	count int64
}

// groupExpenses buckets expenses by an arbitrary string key, summing
// amounts and counting records in a single pass.
func groupExpenses(expenses []models.Expense, key func(models.Expense) string) map[string]accumulator {
	groups := make(map[string]accumulator, len(expenses))
	for _, expense := range expenses {
		k := key(expense)
		acc := groups[k]
		acc.total = acc.total.Add(expense.Amount)
		acc.count++
		groups[k] = acc
	}

	return groups
}

func byCategory(expense models.Expense) string {
	return expense.Category
}

// keysByTotalDesc returns the group keys ordered by descending total.
// Equal totals are ordered by key so that results are deterministic.
func keysByTotalDesc(groups map[string]accumulator) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		a, b := groups[keys[i]], groups[keys[j]]
		if !a.total.Equal(b.total) {
			return a.total.GreaterThan(b.total)
		}
		return keys[i] < keys[j]
	})

	return keys
}

// percentOf returns part of total as a percentage with two decimal
// places, rounding the midpoint away from zero. A total that is not
// positive yields zero.
func percentOf(part, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}

	return part.Div(total).Mul(hundred).Round(2)
}

func sumAmounts(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
	}

	return total
}
