package reports_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendtrack/backend/internal/reports"
)

func (suite *TestSuiteStandard) TestSummary() {
	owner := uuid.New()
	amounts := []float64{80, 150, 30, 200, 320, 15, 450}

	for i, amount := range amounts {
		suite.createExpense(owner, "misc", amount, time.Date(2025, 10, i+1, 0, 0, 0, 0, time.UTC))
	}

	summary, err := reports.Summary(owner, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	suite.Assert().True(summary.Total.Equal(decimal.NewFromInt(1245)), "Total is %s", summary.Total)
	suite.Assert().Equal(int64(7), summary.Count)
	suite.Assert().Equal("177.86", summary.Average.String())
	suite.Assert().True(summary.Max.Equal(decimal.NewFromInt(450)), "Max is %s", summary.Max)
	suite.Assert().True(summary.Min.Equal(decimal.NewFromInt(15)), "Min is %s", summary.Min)
}

func (suite *TestSuiteStandard) TestSummaryEmpty() {
	summary, err := reports.Summary(uuid.New(), time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	suite.Assert().True(summary.Total.IsZero())
	suite.Assert().Equal(int64(0), summary.Count)
	suite.Assert().True(summary.Average.IsZero())
	suite.Assert().True(summary.Max.IsZero())
	suite.Assert().True(summary.Min.IsZero())
}

func (suite *TestSuiteStandard) TestSummarySingleExpense() {
	owner := uuid.New()
	suite.createExpense(owner, "food", 42.5, time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC))

	summary, err := reports.Summary(owner, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC))
	suite.Require().NoError(err)

	suite.Assert().True(summary.Max.Equal(summary.Min), "Max and min must match for a single expense")
	suite.Assert().Equal("42.5", summary.Average.String())
}

func (suite *TestSuiteStandard) TestByCategory() {
	owner := uuid.New()
	date := time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)

	suite.createExpense(owner, "food", 200, date)
	suite.createExpense(owner, "food", 150, date)
	suite.createExpense(owner, "transport", 80, date)
	suite.createExpense(owner, "rent", 570, date)

	statistics, err := reports.ByCategory(owner, date, date)
	suite.Require().NoError(err)
	suite.Require().Len(statistics, 3)

	// Descending total order
	suite.Assert().Equal("rent", statistics[0].Category)
	suite.Assert().Equal("food", statistics[1].Category)
	suite.Assert().Equal("transport", statistics[2].Category)

	suite.Assert().Equal(int64(2), statistics[1].Count)
	suite.Assert().Equal("57", statistics[0].Percentage.String())
	suite.Assert().Equal("35", statistics[1].Percentage.String())
	suite.Assert().Equal("8", statistics[2].Percentage.String())

	// The percentages refer to the grand total
	sum := decimal.Zero
	for _, s := range statistics {
		sum = sum.Add(s.Percentage)
	}
	suite.Assert().Equal("100", sum.String())
}

func (suite *TestSuiteStandard) TestByCategoryEmpty() {
	statistics, err := reports.ByCategory(uuid.New(), time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC))
	suite.Assert().NoError(err)
	suite.Assert().Empty(statistics)
}
