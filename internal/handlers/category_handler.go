package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finanzapp/internal/models"
	"finanzapp/internal/services"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name  *string              `json:"name" binding:"required"`
	Type  *models.CategoryType `json:"type" binding:"required"`
	Color *string              `json:"color"`
}

// CategoryResponse represents a category in the response
type CategoryResponse struct {
	ID    uint                `json:"id"`
	Name  string              `json:"name"`
	Type  models.CategoryType `json:"type"`
	Color string              `json:"color"`
}

func newCategoryResponse(cat models.Category) CategoryResponse {
	return CategoryResponse{
		ID:    cat.ID,
		Name:  cat.Name,
		Type:  cat.Type,
		Color: cat.Color,
	}
}

// ListCategories handles the retrieval of all categories
// @Summary     List categories
// @Description Get every transaction category
// @Tags        categories
// @Produce     json
// @Success     200 {array}  CategoryResponse "List of categories"
// @Failure     500 {object} ErrorResponse    "Server error"
// @Router      /api/categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := make([]CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, newCategoryResponse(cat))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateCategory handles the creation of a new category
// @Summary     Create a category
// @Description Create a new transaction category; color defaults to #808080
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       request body     CreateCategoryRequest true "Category details"
// @Success     201     {object} CreatedResponse       "Category created"
// @Failure     400     {object} ErrorResponse         "Missing field"
// @Failure     500     {object} ErrorResponse         "Server error"
// @Router      /api/categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(*req.Name, *req.Type, req.Color)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreatedResponse{Message: "Category created", ID: category.ID})
}
