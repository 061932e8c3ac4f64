package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// DefaultCategoryColor is used when a category is created without a color
const DefaultCategoryColor = "#808080"

// Category represents a transaction category. Type is informally one of
// CategoryTypeIncome or CategoryTypeExpense but is not enforced.
type Category struct {
	Base
	Name  string       `gorm:"size:50;not null" json:"name"`
	Type  CategoryType `gorm:"size:10;not null" json:"type"`
	Color string       `gorm:"size:20" json:"color"`
}
