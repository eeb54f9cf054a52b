package reports

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendtrack/backend/internal/models"
	"github.com/spendtrack/backend/internal/types"
)

// TrendPoint is one bucket of a trend series. Unlike PeriodStatistics,
// trend series are gap-filled: buckets without expenses are present
// with a zero amount and count.
type TrendPoint struct {
	Period string          `json:"period" example:"2025-10-14"`
	Amount decimal.Decimal `json:"amount" example:"133.7"`
	Count  int64           `json:"count" example:"3"`
}

// PieSlice is one category share of a pie chart.
type PieSlice struct {
	Label      string          `json:"label" example:"food"`
	Amount     decimal.Decimal `json:"amount" example:"350"`
	Percentage decimal.Decimal `json:"percentage" example:"87.5"`
	Count      int64           `json:"count" example:"2"`
}

// ComparisonSeries holds parallel label, amount and count arrays for
// bar charts.
type ComparisonSeries struct {
	Labels  []string          `json:"labels"`
	Amounts []decimal.Decimal `json:"amounts"`
	Counts  []int64           `json:"counts"`
}

// RankedExpense is one entry of a top-N expense ranking.
type RankedExpense struct {
	ID       uuid.UUID       `json:"id"`
	Title    string          `json:"title" example:"New laptop"`
	Amount   decimal.Decimal `json:"amount" example:"1299.99"`
	Category string          `json:"category" example:"electronics"`
	Date     time.Time       `json:"date" example:"2025-10-14T00:00:00Z"`
	Rank     int             `json:"rank" example:"1"`
}

// DailyTrend returns one TrendPoint per calendar day of the month,
// exactly Days() points, in ascending date order.
func DailyTrend(owner uuid.UUID, year, month int) ([]TrendPoint, error) {
	m := types.NewMonth(year, time.Month(month))

	expenses, err := models.ExpensesInRange(owner, m.FirstDay(), m.LastDay())
	if err != nil {
		return nil, err
	}

	groups := groupExpenses(expenses, func(expense models.Expense) string {
		return expense.Date.Format(dayLabel)
	})

	points := make([]TrendPoint, 0, m.Days())
	for day := 1; day <= m.Days(); day++ {
		period := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format(dayLabel)
		acc := groups[period]
		points = append(points, TrendPoint{
			Period: period,
			Amount: acc.total,
			Count:  acc.count,
		})
	}

	return points, nil
}

// MonthlyTrend returns one TrendPoint per calendar month of the year,
// always twelve points, in ascending order.
func MonthlyTrend(owner uuid.UUID, year int) ([]TrendPoint, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	expenses, err := models.ExpensesInRange(owner, from, until)
	if err != nil {
		return nil, err
	}

	groups := groupExpenses(expenses, func(expense models.Expense) string {
		return expense.Date.Format(monthLabel)
	})

	points := make([]TrendPoint, 0, 12)
	for month := time.January; month <= time.December; month++ {
		period := types.NewMonth(year, month).String()
		acc := groups[period]
		points = append(points, TrendPoint{
			Period: period,
			Amount: acc.total,
			Count:  acc.count,
		})
	}

	return points, nil
}

// CategoryPie returns the category shares of the owner's expenses in
// [from, until], ordered by descending amount. A range without
// expenses yields an empty list.
func CategoryPie(owner uuid.UUID, from, until time.Time) ([]PieSlice, error) {
	expenses, err := models.ExpensesInRange(owner, from, until)
	if err != nil {
		return nil, err
	}

	grandTotal := sumAmounts(expenses)
	groups := groupExpenses(expenses, byCategory)

	slices := make([]PieSlice, 0, len(groups))
	for _, category := range keysByTotalDesc(groups) {
		acc := groups[category]
		slices = append(slices, PieSlice{
			Label:      category,
			Amount:     acc.total,
			Percentage: percentOf(acc.total, grandTotal),
			Count:      acc.count,
		})
	}

	return slices, nil
}

// MonthlyComparison returns a gap-filled series for the window of
// monthsBack months ending at the current month, in chronological
// order. Callers must clamp monthsBack to [1, 24].
func MonthlyComparison(owner uuid.UUID, monthsBack int) (ComparisonSeries, error) {
	current := types.MonthOf(time.Now())
	start := current.AddDate(0, -(monthsBack - 1))

	expenses, err := models.ExpensesInRange(owner, start.FirstDay(), current.LastDay())
	if err != nil {
		return ComparisonSeries{}, err
	}

	groups := groupExpenses(expenses, func(expense models.Expense) string {
		return expense.Date.Format(monthLabel)
	})

	series := newComparisonSeries(monthsBack)
	for m := start; !m.After(current); m = m.AddDate(0, 1) {
		acc := groups[m.String()]
		series.Labels = append(series.Labels, m.String())
		series.Amounts = append(series.Amounts, acc.total)
		series.Counts = append(series.Counts, acc.count)
	}

	return series, nil
}

// CategoryComparison returns parallel per-category label, amount and
// count arrays for the owner's expenses in [from, until], ordered by
// descending amount.
func CategoryComparison(owner uuid.UUID, from, until time.Time) (ComparisonSeries, error) {
	expenses, err := models.ExpensesInRange(owner, from, until)
	if err != nil {
		return ComparisonSeries{}, err
	}

	groups := groupExpenses(expenses, byCategory)

	series := newComparisonSeries(len(groups))
	for _, category := range keysByTotalDesc(groups) {
		acc := groups[category]
		series.Labels = append(series.Labels, category)
		series.Amounts = append(series.Amounts, acc.total)
		series.Counts = append(series.Counts, acc.count)
	}

	return series, nil
}

// TopExpenses returns the owner's largest expenses in [from, until],
// ordered by descending amount and ranked from 1. Callers must clamp
// the limit to [1, 100].
func TopExpenses(owner uuid.UUID, from, until time.Time, limit int) ([]RankedExpense, error) {
	expenses, err := models.ExpensesInRange(owner, from, until)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].Amount.GreaterThan(expenses[j].Amount)
	})

	if len(expenses) > limit {
		expenses = expenses[:limit]
	}

	ranked := make([]RankedExpense, 0, len(expenses))
	for i, expense := range expenses {
		ranked = append(ranked, RankedExpense{
			ID:       expense.ID,
			Title:    expense.Title,
			Amount:   expense.Amount,
			Category: expense.Category,
			Date:     expense.Date,
			Rank:     i + 1,
		})
	}

	return ranked, nil
}

func newComparisonSeries(capacity int) ComparisonSeries {
	return ComparisonSeries{
		Labels:  make([]string, 0, capacity),
		Amounts: make([]decimal.Decimal, 0, capacity),
		Counts:  make([]int64, 0, capacity),
	}
}
