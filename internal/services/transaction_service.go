package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "finanzapp/internal/errors"
	"finanzapp/internal/models"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db}
}

// ListTransactions returns every transaction in insertion order
func (s *transactionService) ListTransactions() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.db.Order("id").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// GetTransactionByID retrieves a transaction by primary key
func (s *transactionService) GetTransactionByID(transactionID uint) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.First(&transaction, transactionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// CreateTransaction records a new transaction. The user and category are
// not looked up first; the store's foreign keys reject unknown references.
// The transaction type is not compared with the category type.
func (s *transactionService) CreateTransaction(
	userID uint,
	categoryID uint,
	transactionType models.TransactionType,
	amount decimal.Decimal,
	description string,
) (*models.Transaction, error) {
	transaction := &models.Transaction{
		UserID:      userID,
		CategoryID:  categoryID,
		Type:        transactionType,
		Amount:      amount,
		Description: description,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, translateWriteError(err)
	}

	return transaction, nil
}

// UpdateTransaction merges the provided fields into a stored transaction
func (s *transactionService) UpdateTransaction(transactionID uint, fields TransactionUpdateFields) (*models.Transaction, error) {
	transaction, err := s.GetTransactionByID(transactionID)
	if err != nil {
		return nil, err
	}

	if fields.IsEmpty() {
		return transaction, nil
	}

	updates := make(map[string]interface{})
	if fields.Amount != nil {
		updates["amount"] = *fields.Amount
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if fields.Type != nil {
		updates["type"] = *fields.Type
	}
	if fields.CategoryID != nil {
		updates["category_id"] = *fields.CategoryID
	}

	if err := s.db.Model(transaction).Updates(updates).Error; err != nil {
		return nil, translateWriteError(err)
	}

	return s.GetTransactionByID(transactionID)
}

// DeleteTransaction removes a transaction permanently
func (s *transactionService) DeleteTransaction(transactionID uint) error {
	transaction, err := s.GetTransactionByID(transactionID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(transaction).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// translateWriteError maps store constraint violations on transaction writes
// to client errors.
func translateWriteError(err error) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperrors.Wrap(apperrors.ErrUnknownReference, err)
	}
	return apperrors.Wrap(apperrors.ErrInternalServer, err)
}
