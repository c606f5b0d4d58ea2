package dto

import (
	"github.com/finz/backend/internal/application/usecase/dashboard"
)

// CategoryBreakdownItemResponse represents a single category in the breakdown.
// Amount is omitted in private mode.
type CategoryBreakdownItemResponse struct {
	Category   string  `json:"category"`
	Amount     *string `json:"amount,omitempty"`
	Display    string  `json:"display"`
	Percentage float64 `json:"percentage"`
}

// CategoryBreakdownResponse represents the response for the category breakdown.
type CategoryBreakdownResponse struct {
	TotalExpenses *string                         `json:"total_expenses,omitempty"`
	Categories    []CategoryBreakdownItemResponse `json:"categories"`
	Private       bool                            `json:"private"`
}

// DashboardGoalResponse is a goal preview on the dashboard.
type DashboardGoalResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Icon           string `json:"icon"`
	Color          string `json:"color"`
	Progress       int    `json:"progress"`
	CurrentDisplay string `json:"current_display"`
	TargetDisplay  string `json:"target_display"`
}

// DashboardTotalsResponse holds the headline amounts.
type DashboardTotalsResponse struct {
	Income         *string `json:"income,omitempty"`
	Expense        *string `json:"expense,omitempty"`
	Balance        *string `json:"balance,omitempty"`
	IncomeDisplay  string  `json:"income_display"`
	ExpenseDisplay string  `json:"expense_display"`
	BalanceDisplay string  `json:"balance_display"`
}

// DashboardResponse represents the dashboard summary.
type DashboardResponse struct {
	Totals           DashboardTotalsResponse         `json:"totals"`
	Categories       []CategoryBreakdownItemResponse `json:"categories"`
	Goals            []DashboardGoalResponse         `json:"goals"`
	TransactionCount int                             `json:"transaction_count"`
	GoalCount        int                             `json:"goal_count"`
	Private          bool                            `json:"private"`
}

// ToDashboardResponse converts the summary output to a DashboardResponse DTO.
func ToDashboardResponse(output *dashboard.GetSummaryOutput) DashboardResponse {
	goals := make([]DashboardGoalResponse, len(output.TopGoals))
	for i, g := range output.TopGoals {
		goals[i] = DashboardGoalResponse{
			ID:             g.Goal.ID,
			Title:          g.Goal.Title,
			Icon:           g.Goal.Icon,
			Color:          g.Goal.Color,
			Progress:       g.Progress,
			CurrentDisplay: g.CurrentDisplay,
			TargetDisplay:  g.TargetDisplay,
		}
	}

	totals := DashboardTotalsResponse{
		IncomeDisplay:  output.Display.Income,
		ExpenseDisplay: output.Display.Expense,
		BalanceDisplay: output.Display.Balance,
	}
	if !output.Private {
		totals.Income = stringPtr(output.Totals.Income.String())
		totals.Expense = stringPtr(output.Totals.Expense.String())
		totals.Balance = stringPtr(output.Totals.Balance.String())
	}

	return DashboardResponse{
		Totals:           totals,
		Categories:       toBreakdownItems(output.Categories, output.Private),
		Goals:            goals,
		TransactionCount: output.TransactionCount,
		GoalCount:        output.GoalCount,
		Private:          output.Private,
	}
}

// ToCategoryBreakdownResponse converts breakdown output to a CategoryBreakdownResponse DTO.
func ToCategoryBreakdownResponse(output *dashboard.GetCategoryBreakdownOutput) CategoryBreakdownResponse {
	response := CategoryBreakdownResponse{
		Categories: toBreakdownItems(output.Categories, output.Private),
		Private:    output.Private,
	}
	if !output.Private {
		response.TotalExpenses = stringPtr(output.TotalExpenses.String())
	}
	return response
}

func toBreakdownItems(items []dashboard.CategoryBreakdownItem, private bool) []CategoryBreakdownItemResponse {
	out := make([]CategoryBreakdownItemResponse, len(items))
	for i, item := range items {
		out[i] = CategoryBreakdownItemResponse{
			Category:   item.Category.String(),
			Display:    item.Display,
			Percentage: item.Percentage,
		}
		if !private {
			out[i].Amount = stringPtr(item.Amount.String())
		}
	}
	return out
}

func stringPtr(s string) *string {
	return &s
}
