package resource

import (
	"resourceshare/internal/pkg/errs"
)

// Category classifies the kind of physical good being donated.
// The set is closed: publication payloads must name one of the values below.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	CategoryClothing
	CategoryFood
	CategoryTools
	CategoryToys
	CategoryFurniture
	CategoryElectronics
	CategoryBooks
	CategoryHygiene
	CategorySchoolSupplies
	CategoryOthers
)

// getCategoryStrings returns a map of Category values to their string representations.
func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown:        "Unknown",
		CategoryClothing:       "Clothing",
		CategoryFood:           "Food",
		CategoryTools:          "Tools",
		CategoryToys:           "Toys",
		CategoryFurniture:      "Furniture",
		CategoryElectronics:    "Electronics",
		CategoryBooks:          "Books",
		CategoryHygiene:        "Hygiene",
		CategorySchoolSupplies: "SchoolSupplies",
		CategoryOthers:         "Others",
	}
}

// getValidCategoryStrings returns a map of only valid Category values.
func getValidCategoryStrings() map[Category]string {
	//nolint:exhaustive // CategoryUnknown is intentionally excluded as it's invalid
	return map[Category]string{
		CategoryClothing:       "Clothing",
		CategoryFood:           "Food",
		CategoryTools:          "Tools",
		CategoryToys:           "Toys",
		CategoryFurniture:      "Furniture",
		CategoryElectronics:    "Electronics",
		CategoryBooks:          "Books",
		CategoryHygiene:        "Hygiene",
		CategorySchoolSupplies: "SchoolSupplies",
		CategoryOthers:         "Others",
	}
}

// CategoryFromString parses a category from its string representation.
// Returns an error for names outside the closed set.
func CategoryFromString(s string) (Category, error) {
	for category, str := range getValidCategoryStrings() {
		if str == s {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidError("category")
}

// Validate checks if the Category value is valid.
// CategoryUnknown (0) and any other values outside the closed set are invalid.
func (c Category) Validate() error {
	if _, ok := getValidCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidError("category")
	}
	return nil
}

// String returns the human-readable name of the category.
// Returns "Unknown" for invalid category values. Implements fmt.Stringer.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}
