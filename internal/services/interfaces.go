package services

import (
	"github.com/shopspring/decimal"

	"finanzapp/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	ListUsers() ([]models.User, error)
	CreateUser(name, email, password string) (*models.User, error)
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	ListCategories() ([]models.Category, error)
	CreateCategory(name string, categoryType models.CategoryType, color *string) (*models.Category, error)
}

// TransactionUpdateFields holds the fields a partial update may overwrite.
// Nil fields keep their stored value. The owning user is not updatable.
type TransactionUpdateFields struct {
	Amount      *decimal.Decimal
	Description *string
	Type        *models.TransactionType
	CategoryID  *uint
}

// IsEmpty reports whether the update carries no fields at all.
func (f TransactionUpdateFields) IsEmpty() bool {
	return f.Amount == nil && f.Description == nil && f.Type == nil && f.CategoryID == nil
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	ListTransactions() ([]models.Transaction, error)
	GetTransactionByID(transactionID uint) (*models.Transaction, error)
	CreateTransaction(userID, categoryID uint, transactionType models.TransactionType, amount decimal.Decimal, description string) (*models.Transaction, error)
	UpdateTransaction(transactionID uint, fields TransactionUpdateFields) (*models.Transaction, error)
	DeleteTransaction(transactionID uint) error
}
