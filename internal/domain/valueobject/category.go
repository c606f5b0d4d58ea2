// Package valueobject contains domain value objects.
package valueobject

import (
	"errors"
	"strings"
)

// ErrInvalidCategory is returned when a category label is empty after trimming.
var ErrInvalidCategory = errors.New("category label cannot be empty")

// Category is a free-text transaction category label.
// The zero value is not a valid category; use ParseCategory or NewCategory.
type Category string

// Preset categories offered by the client.
const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategoryBills         Category = "Bills"
	CategoryEducation     Category = "Education"
	CategorySalary        Category = "Salary"
	CategoryAllowance     Category = "Allowance"
	CategoryOther         Category = "Other"
)

// PresetCategories lists every preset category in display order.
var PresetCategories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryEntertainment,
	CategoryBills,
	CategoryEducation,
	CategorySalary,
	CategoryAllowance,
	CategoryOther,
}

// DisplayCategories is the quick-pick subset shown on the add-transaction form.
// "Other" is offered separately together with a custom label input.
var DisplayCategories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryEntertainment,
	CategoryBills,
}

// NewCategory validates a label and wraps it as a Category.
func NewCategory(label string) (Category, error) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return "", ErrInvalidCategory
	}
	return Category(trimmed), nil
}

// ParseCategory resolves the selected label and an optional custom label.
// Selecting "Other" with a non-blank custom label yields the custom label;
// a blank custom label keeps "Other".
func ParseCategory(label, custom string) (Category, error) {
	selected, err := NewCategory(label)
	if err != nil {
		return "", err
	}

	if selected == CategoryOther {
		if customLabel := strings.TrimSpace(custom); customLabel != "" {
			return Category(customLabel), nil
		}
	}

	return selected, nil
}

// IsPreset reports whether the category is one of the preset labels.
func (c Category) IsPreset() bool {
	for _, preset := range PresetCategories {
		if c == preset {
			return true
		}
	}
	return false
}

// String returns the label.
func (c Category) String() string {
	return string(c)
}
