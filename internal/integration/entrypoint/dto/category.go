package dto

import (
	"github.com/finz/backend/internal/application/usecase/category"
	"github.com/finz/backend/internal/domain/valueobject"
)

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	Name             string `json:"name"`
	IsPreset         bool   `json:"is_preset"`
	TransactionCount int    `json:"transaction_count"`
	ExpenseTotal     string `json:"expense_total"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories  []CategoryResponse `json:"categories"`
	QuickPick   []string           `json:"quick_pick"`
	CustomLabel string             `json:"custom_label"`
}

// ToCategoryListResponse converts list output to a CategoryListResponse DTO.
func ToCategoryListResponse(output *category.ListCategoriesOutput) CategoryListResponse {
	categories := make([]CategoryResponse, len(output.Categories))
	for i, c := range output.Categories {
		categories[i] = CategoryResponse{
			Name:             c.Name.String(),
			IsPreset:         c.IsPreset,
			TransactionCount: c.TransactionCount,
			ExpenseTotal:     c.ExpenseTotal.String(),
		}
	}

	quickPick := make([]string, len(output.QuickPick))
	for i, c := range output.QuickPick {
		quickPick[i] = c.String()
	}

	return CategoryListResponse{
		Categories:  categories,
		QuickPick:   quickPick,
		CustomLabel: valueobject.CategoryOther.String(),
	}
}
