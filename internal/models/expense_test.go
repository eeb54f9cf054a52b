package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendtrack/backend/internal/models"
)

func (suite *TestSuiteStandard) TestExpenseTrimmed() {
	expense := suite.createTestExpense(models.Expense{
		Title:    "  Lunch  ",
		Category: " food ",
	})

	suite.Assert().Equal("Lunch", expense.Title)
	suite.Assert().Equal("food", expense.Category)
}

func (suite *TestSuiteStandard) TestExpenseDateNormalized() {
	tz, _ := time.LoadLocation("Europe/Berlin")

	expense := suite.createTestExpense(models.Expense{
		Date: time.Date(2025, 10, 14, 15, 4, 5, 0, tz),
	})

	suite.Assert().Equal(time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC), expense.Date)
}

func (suite *TestSuiteStandard) TestExpenseValidation() {
	date := time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		expense models.Expense
		err     error
	}{
		{"empty title", models.Expense{Title: "  ", Category: "food", Amount: decimal.NewFromInt(1), Date: date}, models.ErrExpenseTitleInvalid},
		{"empty category", models.Expense{Title: "Lunch", Category: "", Amount: decimal.NewFromInt(1), Date: date}, models.ErrExpenseCategoryInvalid},
		{"zero amount", models.Expense{Title: "Lunch", Category: "food", Date: date}, models.ErrExpenseAmountNotPositive},
		{"negative amount", models.Expense{Title: "Lunch", Category: "food", Amount: decimal.NewFromInt(-3), Date: date}, models.ErrExpenseAmountNotPositive},
		{"future date", models.Expense{Title: "Lunch", Category: "food", Amount: decimal.NewFromInt(1), Date: time.Now().AddDate(0, 0, 2)}, models.ErrExpenseDateInFuture},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := models.DB.Create(&tt.expense).Error
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseTitleLength() {
	long := make([]byte, 101)
	for i := range long {
		long[i] = 'a'
	}

	expense := models.Expense{
		Title:    string(long),
		Category: "food",
		Amount:   decimal.NewFromInt(1),
		Date:     time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC),
	}

	err := models.DB.Create(&expense).Error
	suite.Assert().ErrorIs(err, models.ErrExpenseTitleInvalid)
}

func (suite *TestSuiteStandard) TestExpenseByIDOwnerScoped() {
	expense := suite.createTestExpense(models.Expense{OwnerID: uuid.New()})

	_, err := models.ExpenseByID(expense.OwnerID, expense.ID)
	suite.Assert().NoError(err)

	_, err = models.ExpenseByID(uuid.New(), expense.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestExpensesInRangeInclusive() {
	owner := uuid.New()
	from := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC)

	first := suite.createTestExpense(models.Expense{OwnerID: owner, Date: from})
	last := suite.createTestExpense(models.Expense{OwnerID: owner, Date: until})
	suite.createTestExpense(models.Expense{OwnerID: owner, Date: from.AddDate(0, 0, -1)})
	suite.createTestExpense(models.Expense{OwnerID: owner, Date: until.AddDate(0, 0, 1)})

	expenses, err := models.ExpensesInRange(owner, from, until)
	suite.Assert().NoError(err)
	suite.Require().Len(expenses, 2)

	// Ascending date order
	suite.Assert().Equal(first.ID, expenses[0].ID)
	suite.Assert().Equal(last.ID, expenses[1].ID)
}

func (suite *TestSuiteStandard) TestExpensesInRangeOwnerScoped() {
	owner := uuid.New()
	date := time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)

	suite.createTestExpense(models.Expense{OwnerID: owner, Date: date})
	suite.createTestExpense(models.Expense{OwnerID: uuid.New(), Date: date})

	expenses, err := models.ExpensesInRange(owner, date, date)
	suite.Assert().NoError(err)
	suite.Assert().Len(expenses, 1)
}

func (suite *TestSuiteStandard) TestCategoriesInRange() {
	owner := uuid.New()
	date := time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)

	suite.createTestExpense(models.Expense{OwnerID: owner, Category: "transport", Date: date})
	suite.createTestExpense(models.Expense{OwnerID: owner, Category: "food", Date: date})
	suite.createTestExpense(models.Expense{OwnerID: owner, Category: "food", Date: date})
	suite.createTestExpense(models.Expense{OwnerID: owner, Category: "rent", Date: date.AddDate(0, -1, 0)})

	categories, err := models.CategoriesInRange(owner, date, date)
	suite.Assert().NoError(err)
	suite.Assert().Equal([]string{"food", "transport"}, categories)
}
