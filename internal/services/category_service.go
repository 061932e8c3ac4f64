package services

import (
	"gorm.io/gorm"

	apperrors "finanzapp/internal/errors"
	"finanzapp/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// ListCategories returns every category in insertion order
func (s *categoryService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// CreateCategory creates a new category. A nil color falls back to
// models.DefaultCategoryColor; the type is stored as given.
func (s *categoryService) CreateCategory(name string, categoryType models.CategoryType, color *string) (*models.Category, error) {
	category := &models.Category{
		Name:  name,
		Type:  categoryType,
		Color: models.DefaultCategoryColor,
	}
	if color != nil {
		category.Color = *color
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}
