package database

import (
	"finanzapp/internal/models"

	"gorm.io/gorm"
)

// DefaultCategories are created by Bootstrap when no category with the same name exists.
var DefaultCategories = []models.Category{
	{Name: "Salary", Type: models.CategoryTypeIncome, Color: "#4CAF50"},
	{Name: "Freelance", Type: models.CategoryTypeIncome, Color: "#2196F3"},
	{Name: "Food", Type: models.CategoryTypeExpense, Color: "#F44336"},
	{Name: "Transport", Type: models.CategoryTypeExpense, Color: "#FF9800"},
	{Name: "Entertainment", Type: models.CategoryTypeExpense, Color: "#9C27B0"},
	{Name: "Utilities", Type: models.CategoryTypeExpense, Color: "#795548"},
}

// SeedDefaultCategories inserts each default category missing by name and
// reports how many rows it created.
func SeedDefaultCategories(db *gorm.DB) (int, error) {
	created := 0
	for _, def := range DefaultCategories {
		var existing []models.Category
		if err := db.Where("name = ?", def.Name).Limit(1).Find(&existing).Error; err != nil {
			return created, err
		}
		if len(existing) > 0 {
			continue
		}

		category := def
		if err := db.Create(&category).Error; err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
