package handler

import (
	"bank-api/internal/api/handler/dto"
	"bank-api/internal/domain/transaction"
	"log/slog"
	"net/http"
)

const accountIDParam = "accountID"

type TransactionHandler struct {
	service transaction.TransactionService
	logger  *slog.Logger
}

func NewTransactionHandler(s transaction.TransactionService, l *slog.Logger) *TransactionHandler {
	if s == nil {
		panic("transaction service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &TransactionHandler{service: s, logger: l.With("component", "TransactionHandler")}
}

// ListTransactions handles GET /transactions
// @Summary List transactions
// @Description Returns every transaction joined with the type of its account.
// @Tags Transactions
// @Produce json
// @Success 200 {array} dto.TransactionResponse "List of transactions"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txns, err := h.service.ListTransactions(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list transactions", slog.Any("error", err))
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewTransactionListResponse(txns))
}

// ListAccountTransactions handles GET /transactions/account/{accountID}
// @Summary List an account's transactions
// @Tags Transactions
// @Produce json
// @Param accountID path int true "Account ID" Minimum(1)
// @Success 200 {array} dto.TransactionResponse "Transactions on the account"
// @Failure 400 {object} dto.ErrorResponse "Invalid account ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /transactions/account/{accountID} [get]
func (h *TransactionHandler) ListAccountTransactions(w http.ResponseWriter, r *http.Request) {
	accountID, err := getIDFromURL(r, accountIDParam)
	if idOutOfRange(err) {
		respondJSON(w, http.StatusOK, dto.NewTransactionListResponse(nil))
		return
	}
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get account ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	txns, err := h.service.ListAccountTransactions(r.Context(), accountID)
	if err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to list account transactions", slog.Any("error", err))
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewTransactionListResponse(txns))
}
