package models_test

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendtrack/backend/internal/models"
)

func (suite *TestSuiteStandard) TestBudgetValidation() {
	tests := []struct {
		name   string
		budget models.Budget
		err    error
	}{
		{"invalid type", models.Budget{Type: "WEEKLY", Amount: decimal.NewFromInt(1), Year: 2025, Month: 10}, models.ErrBudgetTypeInvalid},
		{"category missing", models.Budget{Type: models.BudgetTypeCategory, Amount: decimal.NewFromInt(1), Year: 2025, Month: 10}, models.ErrBudgetCategoryRequired},
		{"zero amount", models.Budget{Type: models.BudgetTypeMonthly, Year: 2025, Month: 10}, models.ErrBudgetAmountNotPositive},
		{"year too small", models.Budget{Type: models.BudgetTypeMonthly, Amount: decimal.NewFromInt(1), Year: 1999, Month: 10}, models.ErrBudgetYearInvalid},
		{"year too large", models.Budget{Type: models.BudgetTypeMonthly, Amount: decimal.NewFromInt(1), Year: 2101, Month: 10}, models.ErrBudgetYearInvalid},
		{"month zero", models.Budget{Type: models.BudgetTypeMonthly, Amount: decimal.NewFromInt(1), Year: 2025}, models.ErrBudgetMonthInvalid},
		{"month too large", models.Budget{Type: models.BudgetTypeMonthly, Amount: decimal.NewFromInt(1), Year: 2025, Month: 13}, models.ErrBudgetMonthInvalid},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			err := models.DB.Create(&tt.budget).Error
			suite.Assert().ErrorIs(err, tt.err)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetMonthlyCategoryCleared() {
	budget := suite.createTestBudget(models.Budget{
		Type:     models.BudgetTypeMonthly,
		Category: "food",
	})

	suite.Assert().Empty(budget.Category)
}

func (suite *TestSuiteStandard) TestBudgetUniqueIndex() {
	owner := uuid.New()
	suite.createTestBudget(models.Budget{OwnerID: owner})

	duplicate := models.Budget{
		OwnerID: owner,
		Type:    models.BudgetTypeMonthly,
		Amount:  decimal.NewFromInt(500),
		Year:    2025,
		Month:   10,
	}

	err := models.DB.Create(&duplicate).Error
	suite.Assert().ErrorIs(err, models.ErrBudgetNotUnique)
}

func (suite *TestSuiteStandard) TestBudgetTypesCoexist() {
	owner := uuid.New()

	suite.createTestBudget(models.Budget{OwnerID: owner})
	suite.createTestBudget(models.Budget{OwnerID: owner, Type: models.BudgetTypeCategory, Category: "food"})
	suite.createTestBudget(models.Budget{OwnerID: owner, Type: models.BudgetTypeCategory, Category: "transport"})

	budgets, err := models.BudgetsByMonth(owner, 2025, 10)
	suite.Assert().NoError(err)
	suite.Require().Len(budgets, 3)

	// The monthly budget comes first, category budgets follow sorted
	suite.Assert().Equal(models.BudgetTypeMonthly, budgets[0].Type)
	suite.Assert().Equal("food", budgets[1].Category)
	suite.Assert().Equal("transport", budgets[2].Category)
}

func (suite *TestSuiteStandard) TestBudgetRecreateAfterDelete() {
	owner := uuid.New()
	budget := suite.createTestBudget(models.Budget{OwnerID: owner})

	err := models.DB.Delete(&budget).Error
	suite.Assert().NoError(err)

	recreated := models.Budget{
		OwnerID: owner,
		Type:    models.BudgetTypeMonthly,
		Amount:  decimal.NewFromInt(750),
		Year:    2025,
		Month:   10,
	}

	err = models.DB.Create(&recreated).Error
	suite.Assert().NoError(err, "deleting a budget must allow creating it again")
}

func (suite *TestSuiteStandard) TestBudgetByIDOwnerScoped() {
	budget := suite.createTestBudget(models.Budget{OwnerID: uuid.New()})

	_, err := models.BudgetByID(budget.OwnerID, budget.ID)
	suite.Assert().NoError(err)

	_, err = models.BudgetByID(uuid.New(), budget.ID)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestMonthlyBudgetLookup() {
	owner := uuid.New()
	suite.createTestBudget(models.Budget{OwnerID: owner})
	suite.createTestBudget(models.Budget{OwnerID: owner, Type: models.BudgetTypeCategory, Category: "food"})

	budget, err := models.MonthlyBudget(owner, 2025, 10)
	suite.Assert().NoError(err)
	suite.Assert().Equal(models.BudgetTypeMonthly, budget.Type)

	_, err = models.MonthlyBudget(owner, 2025, 11)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	category, err := models.CategoryBudget(owner, 2025, 10, "food")
	suite.Assert().NoError(err)
	suite.Assert().Equal("food", category.Category)

	_, err = models.CategoryBudget(owner, 2025, 10, "transport")
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}
