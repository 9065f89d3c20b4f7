package handler

import (
	"bank-api/internal/api/handler/dto"
	"bank-api/internal/domain/account"
	"log/slog"
	"net/http"
)

type AccountHandler struct {
	service account.AccountService
	logger  *slog.Logger
}

func NewAccountHandler(s account.AccountService, l *slog.Logger) *AccountHandler {
	if s == nil {
		panic("account service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &AccountHandler{service: s, logger: l.With("component", "AccountHandler")}
}

// ListAccounts handles GET /accounts
// @Summary List accounts
// @Description Returns every account joined with its owner's name.
// @Tags Accounts
// @Produce json
// @Success 200 {array} dto.AccountResponse "List of accounts"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.ListAccounts(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list accounts", slog.Any("error", err))
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewAccountListResponse(accounts))
}

// ListCustomerAccounts handles GET /accounts/customer/{customerID}
// @Summary List a customer's accounts
// @Tags Accounts
// @Produce json
// @Param customerID path int true "Customer ID" Minimum(1)
// @Success 200 {array} dto.AccountResponse "Accounts owned by the customer"
// @Failure 400 {object} dto.ErrorResponse "Invalid customer ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /accounts/customer/{customerID} [get]
func (h *AccountHandler) ListCustomerAccounts(w http.ResponseWriter, r *http.Request) {
	customerID, err := getIDFromURL(r, customerIDParam)
	if idOutOfRange(err) {
		respondJSON(w, http.StatusOK, dto.NewAccountListResponse(nil))
		return
	}
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	accounts, err := h.service.ListCustomerAccounts(r.Context(), customerID)
	if err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to list customer accounts", slog.Any("error", err))
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewAccountListResponse(accounts))
}

// CreateAccount handles POST /accounts
// @Summary Open an account
// @Description Inserts one account row for an existing customer.
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body dto.AccountCreateRequest true "Account fields"
// @Success 201 {object} dto.AccountResponse "Account opened"
// @Failure 400 {object} dto.ErrorResponse "Malformed body or missing/invalid fields"
// @Failure 409 {object} dto.ErrorResponse "Unknown customer"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.AccountCreateRequest
	if !decodeAndValidate(w, r, h.logger, &req) {
		return
	}

	created, err := h.service.OpenAccount(r.Context(), req.ToDomain())
	if err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to open account", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Account opened", slog.Int64("accountID", created.AccountID))
	respondJSON(w, http.StatusCreated, dto.NewAccountResponse(created))
}

// UpdateAccount handles PUT /accounts/{accountID}
// @Summary Update an account
// @Description Changes the type and/or balance. Omitted fields keep their value.
// @Tags Accounts
// @Accept json
// @Produce json
// @Param accountID path int true "Account ID" Minimum(1)
// @Param request body dto.AccountUpdateRequest true "Fields to change"
// @Success 200 {object} dto.AccountResponse "Updated account"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID or body"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /accounts/{accountID} [put]
func (h *AccountHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := getIDFromURL(r, accountIDParam)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get account ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}
	logCtx := h.logger.With(slog.Int64("accountID", accountID))

	var req dto.AccountUpdateRequest
	if !decodeAndValidate(w, r, logCtx, &req) {
		return
	}

	updated, err := h.service.UpdateAccount(r.Context(), accountID, req.ToDomain())
	if err != nil {
		logCtx.Log(r.Context(), logLevelFor(err), "Service failed to update account", slog.Any("error", err))
		respondError(w, err)
		return
	}

	logCtx.InfoContext(r.Context(), "Account updated")
	respondJSON(w, http.StatusOK, dto.NewAccountResponse(updated))
}

// DeleteAccount handles DELETE /accounts/{accountID}
// @Summary Close and delete an account
// @Description Accounts that still have transactions are rejected by the database.
// @Tags Accounts
// @Produce json
// @Param accountID path int true "Account ID" Minimum(1)
// @Success 200 {object} dto.MessageResponse "Account deleted!"
// @Failure 400 {object} dto.ErrorResponse "Invalid account ID"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 409 {object} dto.ErrorResponse "Account still referenced"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /accounts/{accountID} [delete]
func (h *AccountHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	accountID, err := getIDFromURL(r, accountIDParam)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get account ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	if err := h.service.DeleteAccount(r.Context(), accountID); err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to delete account",
			slog.Int64("accountID", accountID), slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Account deleted", slog.Int64("accountID", accountID))
	respondMessage(w, dto.MsgAccountDeleted)
}
