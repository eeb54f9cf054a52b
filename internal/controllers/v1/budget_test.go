package v1_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	v1 "github.com/spendtrack/backend/internal/controllers/v1"
	"github.com/spendtrack/backend/internal/models"
	"github.com/spendtrack/backend/internal/reports"
	"github.com/spendtrack/backend/test"
)

func (suite *TestSuiteStandard) TestBudgetLifecycle() {
	owner := uuid.New()

	suite.createTestExpense(owner, v1.ExpenseEditable{Amount: decimal.NewFromInt(400), Date: time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC)})

	budget := suite.createTestBudget(owner, reports.BudgetCreate{
		Amount: decimal.NewFromInt(10000),
	})

	suite.Assert().True(budget.Spent.Equal(decimal.NewFromInt(400)), "Spent is %s", budget.Spent)
	suite.Assert().Equal("4", budget.Percentage.String())

	recorder := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/budgets/%s", budget.ID), v1.BudgetUpdate{Amount: decimal.NewFromInt(800)}, ownerHeader(owner))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromInt(800)))
	suite.Assert().Equal("50", response.Data.Percentage.String())

	recorder = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/budgets/%s", budget.ID), "", ownerHeader(owner))
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/budgets/%s", budget.ID), "", ownerHeader(owner))
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestBudgetConflict() {
	owner := uuid.New()

	create := reports.BudgetCreate{
		Type:   models.BudgetTypeMonthly,
		Amount: decimal.NewFromInt(1000),
		Year:   2025,
		Month:  10,
	}

	suite.createTestBudget(owner, create)

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/budgets", create, ownerHeader(owner))
	test.AssertHTTPStatus(suite.T(), http.StatusConflict, &recorder)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Contains(*response.Error, "2025-10")

	// The same budget for another owner is fine
	recorder = test.Request(suite.T(), http.MethodPost, "/v1/budgets", create, ownerHeader(uuid.New()))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)
}

func (suite *TestSuiteStandard) TestBudgetCreateInvalid() {
	owner := uuid.New()

	tests := []struct {
		name string
		body any
	}{
		{"empty body", ""},
		{"invalid type", reports.BudgetCreate{Type: "WEEKLY", Amount: decimal.NewFromInt(1), Year: 2025, Month: 10}},
		{"missing category", reports.BudgetCreate{Type: models.BudgetTypeCategory, Amount: decimal.NewFromInt(1), Year: 2025, Month: 10}},
		{"zero amount", reports.BudgetCreate{Type: models.BudgetTypeMonthly, Year: 2025, Month: 10}},
		{"invalid month", reports.BudgetCreate{Type: models.BudgetTypeMonthly, Amount: decimal.NewFromInt(1), Year: 2025, Month: 13}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := test.Request(suite.T(), http.MethodPost, "/v1/budgets", tt.body, ownerHeader(owner))
			test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetList() {
	owner := uuid.New()

	suite.createTestBudget(owner, reports.BudgetCreate{Type: models.BudgetTypeMonthly, Amount: decimal.NewFromInt(5000)})
	suite.createTestBudget(owner, reports.BudgetCreate{Type: models.BudgetTypeCategory, Category: "food", Amount: decimal.NewFromInt(300)})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/budgets?year=2025&month=10", "", ownerHeader(owner))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal(models.BudgetTypeMonthly, response.Data[0].Type)

	// Missing query parameters are an error
	recorder = test.Request(suite.T(), http.MethodGet, "/v1/budgets", "", ownerHeader(owner))
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestBudgetCurrentMonth() {
	owner := uuid.New()
	now := time.Now()

	suite.createTestBudget(owner, reports.BudgetCreate{
		Type:   models.BudgetTypeMonthly,
		Amount: decimal.NewFromInt(5000),
		Year:   now.Year(),
		Month:  int(now.Month()),
	})

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/budgets/current", "", ownerHeader(owner))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response v1.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Len(response.Data, 1)
}

func (suite *TestSuiteStandard) TestBudgetOwnerIsolationHTTP() {
	budget := suite.createTestBudget(uuid.New(), reports.BudgetCreate{})

	stranger := uuid.New()
	url := fmt.Sprintf("/v1/budgets/%s", budget.ID)

	recorder := test.Request(suite.T(), http.MethodGet, url, "", ownerHeader(stranger))
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)

	recorder = test.Request(suite.T(), http.MethodPatch, url, v1.BudgetUpdate{Amount: decimal.NewFromInt(1)}, ownerHeader(stranger))
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)

	recorder = test.Request(suite.T(), http.MethodDelete, url, "", ownerHeader(stranger))
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}
