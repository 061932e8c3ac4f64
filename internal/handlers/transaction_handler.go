package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"finanzapp/internal/models"
	"finanzapp/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService services.TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	Amount      *decimal.Decimal        `json:"amount" binding:"required" swaggertype:"number"`
	Type        *models.TransactionType `json:"type" binding:"required"`
	UserID      *uint                   `json:"user_id" binding:"required"`
	CategoryID  *uint                   `json:"category_id" binding:"required"`
	Description *string                 `json:"description"`
}

// UpdateTransactionRequest represents the request payload for updating a transaction.
// Absent keys leave the stored value unchanged; user_id is not accepted.
type UpdateTransactionRequest struct {
	Amount      *decimal.Decimal        `json:"amount" swaggertype:"number"`
	Description *string                 `json:"description"`
	Type        *models.TransactionType `json:"type"`
	CategoryID  *uint                   `json:"category_id"`
}

// TransactionResponse represents a transaction in the response
type TransactionResponse struct {
	ID          uint                   `json:"id"`
	Amount      decimal.Decimal        `json:"amount" swaggertype:"number"`
	Description string                 `json:"description"`
	Date        string                 `json:"date"`
	Type        models.TransactionType `json:"type"`
	UserID      uint                   `json:"user_id"`
	CategoryID  uint                   `json:"category_id"`
}

func newTransactionResponse(t models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Amount:      t.Amount,
		Description: t.Description,
		Date:        t.Date.UTC().Format(models.DateLayout),
		Type:        t.Type,
		UserID:      t.UserID,
		CategoryID:  t.CategoryID,
	}
}

// ListTransactions handles the retrieval of all transactions
// @Summary     List transactions
// @Description Get every transaction
// @Tags        transactions
// @Produce     json
// @Success     200 {array}  TransactionResponse "List of transactions"
// @Failure     500 {object} ErrorResponse       "Server error"
// @Router      /api/transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	transactions, err := h.transactionService.ListTransactions()
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		resp = append(resp, newTransactionResponse(t))
	}
	c.JSON(http.StatusOK, resp)
}

// GetTransactionByID handles the retrieval of a specific transaction
// @Summary     Get transaction by ID
// @Description Get a specific transaction by ID
// @Tags        transactions
// @Produce     json
// @Param       id  path     int                 true "Transaction ID"
// @Success     200 {object} TransactionResponse "Transaction details"
// @Failure     400 {object} ErrorResponse       "Invalid transaction ID"
// @Failure     404 {object} ErrorResponse       "Transaction not found"
// @Failure     500 {object} ErrorResponse       "Server error"
// @Router      /api/transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTransactionResponse(*transaction))
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record a transaction for a user and category; description defaults to ""
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body     CreateTransactionRequest true "Transaction details"
// @Success     201     {object} CreatedResponse          "Transaction created"
// @Failure     400     {object} ErrorResponse            "Missing field or unknown user/category"
// @Failure     500     {object} ErrorResponse            "Server error"
// @Router      /api/transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	description := ""
	if req.Description != nil {
		description = *req.Description
	}

	transaction, err := h.transactionService.CreateTransaction(
		*req.UserID,
		*req.CategoryID,
		*req.Type,
		*req.Amount,
		description,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreatedResponse{Message: "Transaction created", ID: transaction.ID})
}

// UpdateTransaction handles updating an existing transaction
// @Summary     Update transaction
// @Description Merge amount, description, type and category_id into a transaction. Omitted fields keep their value.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id      path     int                      true "Transaction ID"
// @Param       request body     UpdateTransactionRequest true "Fields to update"
// @Success     200     {object} MessageResponse          "Transaction updated"
// @Failure     400     {object} ErrorResponse            "Invalid input"
// @Failure     404     {object} ErrorResponse            "Transaction not found"
// @Failure     500     {object} ErrorResponse            "Server error"
// @Router      /api/transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	_, err = h.transactionService.UpdateTransaction(transactionID, services.TransactionUpdateFields{
		Amount:      req.Amount,
		Description: req.Description,
		Type:        req.Type,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Transaction updated"})
}

// DeleteTransaction handles the deletion of a transaction
// @Summary     Delete transaction
// @Description Delete a transaction by ID
// @Tags        transactions
// @Produce     json
// @Param       id  path     int             true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     400 {object} ErrorResponse   "Invalid transaction ID"
// @Failure     404 {object} ErrorResponse   "Transaction not found"
// @Failure     500 {object} ErrorResponse   "Server error"
// @Router      /api/transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(transactionID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Transaction deleted"})
}
