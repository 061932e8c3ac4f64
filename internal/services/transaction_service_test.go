package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	apperrors "finanzapp/internal/errors"
	"finanzapp/internal/models"
	"finanzapp/internal/testutil"
)

func TestCreateTransaction(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		tx, err := svc.CreateTransaction(user.ID, cat.ID, models.TransactionTypeExpense, decimal.RequireFromString("42.75"), "Lunch")
		testutil.AssertNoError(t, err)

		if tx.ID == 0 {
			t.Fatal("expected non-zero transaction ID")
		}

		stored, err := svc.GetTransactionByID(tx.ID)
		testutil.AssertNoError(t, err)
		if !stored.Amount.Equal(decimal.RequireFromString("42.75")) {
			t.Errorf("expected amount 42.75, got %s", stored.Amount)
		}
		if stored.Description != "Lunch" {
			t.Errorf("expected description Lunch, got %q", stored.Description)
		}
		if stored.UserID != user.ID || stored.CategoryID != cat.ID {
			t.Errorf("unexpected references user=%d category=%d", stored.UserID, stored.CategoryID)
		}
		if stored.Date.UTC().Format(models.DateLayout) != time.Now().UTC().Format(models.DateLayout) {
			t.Errorf("expected today's date, got %v", stored.Date)
		}
	})

	t.Run("type_may_disagree_with_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		tx, err := svc.CreateTransaction(user.ID, cat.ID, models.TransactionTypeIncome, decimal.NewFromInt(10), "")
		testutil.AssertNoError(t, err)
		if tx.Type != models.TransactionTypeIncome {
			t.Errorf("expected income, got %s", tx.Type)
		}
	})

	t.Run("zero_amount_is_accepted", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeIncome)

		_, err := svc.CreateTransaction(user.ID, cat.ID, models.TransactionTypeIncome, decimal.Zero, "")
		testutil.AssertNoError(t, err)
	})

	t.Run("unknown_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

		_, err := svc.CreateTransaction(99999, cat.ID, models.TransactionTypeExpense, decimal.NewFromInt(5), "")
		testutil.AssertAppErrorIs(t, err, apperrors.ErrUnknownReference)
	})

	t.Run("unknown_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateTransaction(user.ID, 99999, models.TransactionTypeExpense, decimal.NewFromInt(5), "")
		testutil.AssertAppErrorIs(t, err, apperrors.ErrUnknownReference)
	})
}

func TestGetTransactionByID(t *testing.T) {
	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		_, err := svc.GetTransactionByID(99999)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestListTransactions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewTransactionService(db)
	user := testutil.CreateTestUser(t, db)
	cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)

	first := testutil.CreateTestTransaction(t, db, user.ID, cat.ID, models.TransactionTypeExpense, "1")
	second := testutil.CreateTestTransaction(t, db, user.ID, cat.ID, models.TransactionTypeIncome, "2")

	txs, err := svc.ListTransactions()
	testutil.AssertNoError(t, err)
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	if txs[0].ID != first.ID || txs[1].ID != second.ID {
		t.Errorf("expected transactions in insertion order")
	}
}

func TestUpdateTransaction(t *testing.T) {
	t.Run("partial_update_changes_only_description", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)
		original := testutil.CreateTestTransaction(t, db, user.ID, cat.ID, models.TransactionTypeExpense, "12.5")

		desc := "x"
		updated, err := svc.UpdateTransaction(original.ID, TransactionUpdateFields{Description: &desc})
		testutil.AssertNoError(t, err)

		if updated.Description != "x" {
			t.Errorf("expected description x, got %q", updated.Description)
		}
		if !updated.Amount.Equal(original.Amount) {
			t.Errorf("amount changed: %s -> %s", original.Amount, updated.Amount)
		}
		if updated.Type != original.Type {
			t.Errorf("type changed: %s -> %s", original.Type, updated.Type)
		}
		if updated.CategoryID != original.CategoryID {
			t.Errorf("category changed: %d -> %d", original.CategoryID, updated.CategoryID)
		}
	})

	t.Run("all_updatable_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)
		other := testutil.CreateTestCategory(t, db, models.CategoryTypeIncome)
		original := testutil.CreateTestTransaction(t, db, user.ID, cat.ID, models.TransactionTypeExpense, "10")

		amount := decimal.RequireFromString("99.99")
		desc := "Bonus"
		txType := models.TransactionTypeIncome
		updated, err := svc.UpdateTransaction(original.ID, TransactionUpdateFields{
			Amount:      &amount,
			Description: &desc,
			Type:        &txType,
			CategoryID:  &other.ID,
		})
		testutil.AssertNoError(t, err)

		if !updated.Amount.Equal(amount) {
			t.Errorf("expected amount 99.99, got %s", updated.Amount)
		}
		if updated.Description != "Bonus" || updated.Type != models.TransactionTypeIncome || updated.CategoryID != other.ID {
			t.Errorf("unexpected transaction after update: %+v", updated)
		}
		if updated.UserID != user.ID {
			t.Errorf("user must not change, got %d", updated.UserID)
		}
	})

	t.Run("empty_update_is_noop", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)
		original := testutil.CreateTestTransaction(t, db, user.ID, cat.ID, models.TransactionTypeExpense, "10")

		updated, err := svc.UpdateTransaction(original.ID, TransactionUpdateFields{})
		testutil.AssertNoError(t, err)
		if updated.Description != original.Description {
			t.Errorf("expected description unchanged")
		}
	})

	t.Run("unknown_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)
		original := testutil.CreateTestTransaction(t, db, user.ID, cat.ID, models.TransactionTypeExpense, "10")

		missing := uint(99999)
		_, err := svc.UpdateTransaction(original.ID, TransactionUpdateFields{CategoryID: &missing})
		testutil.AssertAppErrorIs(t, err, apperrors.ErrUnknownReference)
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		desc := "x"
		_, err := svc.UpdateTransaction(99999, TransactionUpdateFields{Description: &desc})
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("removes_row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)
		user := testutil.CreateTestUser(t, db)
		cat := testutil.CreateTestCategory(t, db, models.CategoryTypeExpense)
		kept := testutil.CreateTestTransaction(t, db, user.ID, cat.ID, models.TransactionTypeExpense, "1")
		gone := testutil.CreateTestTransaction(t, db, user.ID, cat.ID, models.TransactionTypeExpense, "2")

		testutil.AssertNoError(t, svc.DeleteTransaction(gone.ID))

		_, err := svc.GetTransactionByID(gone.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")

		txs, err := svc.ListTransactions()
		testutil.AssertNoError(t, err)
		if len(txs) != 1 || txs[0].ID != kept.ID {
			t.Errorf("expected only transaction %d to remain, got %+v", kept.ID, txs)
		}

		var count int64
		testutil.AssertNoError(t, db.Unscoped().Model(&models.Transaction{}).Where("id = ?", gone.ID).Count(&count).Error)
		if count != 0 {
			t.Error("expected a hard delete")
		}
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewTransactionService(db)

		err := svc.DeleteTransaction(99999)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}
