package valueobject

import (
	"errors"
	"testing"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		custom   string
		expected Category
		err      error
	}{
		{name: "preset label", label: "Food", expected: CategoryFood},
		{name: "preset label ignores custom", label: "Bills", custom: "Rent", expected: CategoryBills},
		{name: "other with custom label", label: "Other", custom: "  Gym  ", expected: Category("Gym")},
		{name: "other with blank custom label", label: "Other", custom: "   ", expected: CategoryOther},
		{name: "free-text label is accepted", label: " Concerts ", expected: Category("Concerts")},
		{name: "empty label", label: "", err: ErrInvalidCategory},
		{name: "blank label", label: "\t ", custom: "Gym", err: ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.label, tt.custom)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected error %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCategory_IsPreset(t *testing.T) {
	for _, preset := range PresetCategories {
		if !preset.IsPreset() {
			t.Errorf("expected %q to be a preset", preset)
		}
	}

	if Category("Gym").IsPreset() {
		t.Error("expected custom label not to be a preset")
	}
}

func TestDisplayCategoriesArePresets(t *testing.T) {
	for _, c := range DisplayCategories {
		if !c.IsPreset() {
			t.Errorf("display category %q is not a preset", c)
		}
		if c == CategoryOther {
			t.Error("display categories must not include Other")
		}
	}
}
