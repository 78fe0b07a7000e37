package enums

import "fmt"

// Category represents the canonical product categories offered by the catalog.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryClothing    Category = "Clothing"
	CategoryBooks       Category = "Books"
	CategorySkinCare    Category = "SkinCare"
	CategoryHealth      Category = "Health"
	CategorySports      Category = "Sports"
	CategoryStationary  Category = "Stationary"
)

var validCategories = []Category{
	CategoryElectronics,
	CategoryClothing,
	CategoryBooks,
	CategorySkinCare,
	CategoryHealth,
	CategorySports,
	CategoryStationary,
}

// Categories returns every known category in display order.
func Categories() []Category {
	out := make([]Category, len(validCategories))
	copy(out, validCategories)
	return out
}

// String implements fmt.Stringer.
func (c Category) String() string {
	return string(c)
}

// IsValid reports whether the value is a known Category.
func (c Category) IsValid() bool {
	for _, candidate := range validCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCategory converts raw input into a Category.
func ParseCategory(value string) (Category, error) {
	for _, candidate := range validCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid category %q", value)
}
