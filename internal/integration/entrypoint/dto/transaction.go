// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/savings-tracker/backend/internal/application/usecase/transaction"
	"github.com/savings-tracker/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date        string  `json:"date" binding:"required"`
	Kind        string  `json:"kind" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" binding:"required"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Date        string  `json:"date"`
	Kind        string  `json:"kind"`
	Category    string  `json:"category"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount"`
	CreatedAt   string  `json:"created_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Data       []TransactionResponse `json:"data"`
	Pagination PaginationResponse    `json:"pagination"`
}

// PaginationResponse represents pagination information.
type PaginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// ToTransactionResponse converts a Transaction entity to its response DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	amount, _ := t.Amount.Float64()
	return TransactionResponse{
		ID:          t.ID.String(),
		UserID:      t.UserID.String(),
		Date:        t.Date.Format("2006-01-02"),
		Kind:        string(t.Kind),
		Category:    t.Category,
		Description: t.Description,
		Amount:      amount,
		CreatedAt:   t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// ToTransactionListResponse converts a ListTransactionsOutput to its response DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	data := make([]TransactionResponse, len(output.Transactions))
	for i, t := range output.Transactions {
		data[i] = ToTransactionResponse(t)
	}

	return TransactionListResponse{
		Data: data,
		Pagination: PaginationResponse{
			Total:      output.Total,
			Page:       output.Page,
			Limit:      output.Limit,
			TotalPages: output.TotalPages,
		},
	}
}
