package reports

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendtrack/backend/internal/models"
	"github.com/spendtrack/backend/internal/types"
)

// PeriodStatistics describes the expenses of one period bucket, a day
// ("2025-10-14") or a month ("2025-10").
type PeriodStatistics struct {
	Period string          `json:"period" example:"2025-10-14"`
	Total  decimal.Decimal `json:"total" example:"133.7"`
	Count  int64           `json:"count" example:"3"`
}

// MonthlyStatistics computes per-day statistics for the owner's
// expenses in a month. Days without expenses are omitted; see
// DailyTrend for the gap-filled variant used by charts.
func MonthlyStatistics(owner uuid.UUID, year, month int) ([]PeriodStatistics, error) {
	m := types.NewMonth(year, time.Month(month))

	expenses, err := models.ExpensesInRange(owner, m.FirstDay(), m.LastDay())
	if err != nil {
		return nil, err
	}

	return periodStatistics(expenses, dayLabel), nil
}

// YearlyStatistics computes per-month statistics for the owner's
// expenses in a year. Months without expenses are omitted.
func YearlyStatistics(owner uuid.UUID, year int) ([]PeriodStatistics, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	expenses, err := models.ExpensesInRange(owner, from, until)
	if err != nil {
		return nil, err
	}

	return periodStatistics(expenses, monthLabel), nil
}

// CurrentMonthStatistics resolves the current month from the system
// clock and delegates to MonthlyStatistics.
func CurrentMonthStatistics(owner uuid.UUID) ([]PeriodStatistics, error) {
	now := time.Now()
	return MonthlyStatistics(owner, now.Year(), int(now.Month()))
}

// CurrentYearStatistics resolves the current year from the system clock
// and delegates to YearlyStatistics.
func CurrentYearStatistics(owner uuid.UUID) ([]PeriodStatistics, error) {
	return YearlyStatistics(owner, time.Now().Year())
}

// periodStatistics groups expenses into labeled buckets and returns
// them in ascending label order. Labels are ISO date prefixes, so the
// lexicographic order is the chronological one.
func periodStatistics(expenses []models.Expense, layout string) []PeriodStatistics {
	groups := groupExpenses(expenses, func(expense models.Expense) string {
		return expense.Date.Format(layout)
	})

	statistics := make([]PeriodStatistics, 0, len(groups))
	for period, acc := range groups {
		statistics = append(statistics, PeriodStatistics{
			Period: period,
			Total:  acc.total,
			Count:  acc.count,
		})
	}

	sort.Slice(statistics, func(i, j int) bool {
		return statistics[i].Period < statistics[j].Period
	})

	return statistics
}
