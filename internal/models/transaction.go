package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// Amounts go over the wire as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction represents a financial transaction in the system.
// Type is independent of the referenced category's type.
type Transaction struct {
	Base
	Amount      decimal.Decimal `gorm:"type:numeric;not null" json:"amount"`
	Description string          `gorm:"size:200" json:"description"`
	Date        time.Time       `json:"date"`
	Type        TransactionType `gorm:"size:10;not null" json:"type"`
	UserID      uint            `gorm:"not null;index" json:"user_id"`
	CategoryID  uint            `gorm:"not null;index" json:"category_id"`

	// Relationships
	User     *User     `gorm:"foreignKey:UserID" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate stamps the transaction date when the caller left it empty
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.Date.IsZero() {
		t.Date = now()
	}
	return nil
}
