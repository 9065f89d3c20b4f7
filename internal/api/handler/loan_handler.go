package handler

import (
	"bank-api/internal/api/handler/dto"
	"bank-api/internal/domain/loan"
	"context"
	"log/slog"
	"net/http"
)

const loanIDParam = "loanID"

type LoanHandler struct {
	service loan.LoanService
	logger  *slog.Logger
}

func NewLoanHandler(s loan.LoanService, l *slog.Logger) *LoanHandler {
	if s == nil {
		panic("loan service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &LoanHandler{
		service: s,
		logger:  l.With("component", "LoanHandler"),
	}
}

// ListLoans handles GET /loans
//
// @Summary List loans
// @Description Returns every loan joined with the borrower's name.
// @Tags Loans
// @Produce json
// @Success 200 {array} dto.LoanResponse "List of loans"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /loans [get]
func (h *LoanHandler) ListLoans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.service.ListLoans(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list loans", slog.Any("error", err))
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewLoanListResponse(loans))
}

// ListCustomerLoans handles GET /loans/customer/{customerID}
//
// @Summary List a customer's loans
// @Tags Loans
// @Produce json
// @Param customerID path int true "Customer ID" Minimum(1)
// @Success 200 {array} dto.LoanResponse "Loans held by the customer"
// @Failure 400 {object} dto.ErrorResponse "Invalid customer ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /loans/customer/{customerID} [get]
func (h *LoanHandler) ListCustomerLoans(w http.ResponseWriter, r *http.Request) {
	customerID, err := getIDFromURL(r, customerIDParam)
	if idOutOfRange(err) {
		respondJSON(w, http.StatusOK, dto.NewLoanListResponse(nil))
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}

	loans, err := h.service.ListCustomerLoans(r.Context(), customerID)
	if err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to list customer loans", slog.Any("error", err))
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewLoanListResponse(loans))
}

// ApplyForLoan handles POST /loans
//
// @Summary Apply for a loan
// @Description Inserts one loan row. Status defaults to Pending when omitted.
// @Tags Loans
// @Accept json
// @Produce json
// @Param request body dto.LoanRequest true "Loan application"
// @Success 201 {object} dto.LoanResponse "Loan created"
// @Failure 400 {object} dto.ErrorResponse "Malformed body or missing/invalid fields"
// @Failure 409 {object} dto.ErrorResponse "Unknown customer"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /loans [post]
func (h *LoanHandler) ApplyForLoan(w http.ResponseWriter, r *http.Request) {
	var req dto.LoanRequest
	if !decodeAndValidate(w, r, h.logger, &req) {
		return
	}

	created, err := h.service.ApplyForLoan(r.Context(), req.ToDomain())
	if err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to create loan", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Loan created", slog.Int64("loanID", created.LoanID))
	respondJSON(w, http.StatusCreated, dto.NewLoanResponse(created))
}

// ApproveLoan handles PUT /loans/{loanID}/approve
//
// @Summary Approve a pending loan
// @Tags Loans
// @Produce json
// @Param loanID path int true "Loan ID" Minimum(1)
// @Success 200 {object} dto.LoanResponse "Approved loan"
// @Failure 400 {object} dto.ErrorResponse "Invalid loan ID"
// @Failure 404 {object} dto.ErrorResponse "No pending loan with that ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /loans/{loanID}/approve [put]
func (h *LoanHandler) ApproveLoan(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "approve", h.service.ApproveLoan)
}

// CloseLoan handles PUT /loans/{loanID}/close
//
// @Summary Close an approved loan
// @Tags Loans
// @Produce json
// @Param loanID path int true "Loan ID" Minimum(1)
// @Success 200 {object} dto.LoanResponse "Closed loan"
// @Failure 400 {object} dto.ErrorResponse "Invalid loan ID"
// @Failure 404 {object} dto.ErrorResponse "No approved loan with that ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /loans/{loanID}/close [put]
func (h *LoanHandler) CloseLoan(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "close", h.service.CloseLoan)
}

// DeleteLoan handles DELETE /loans/{loanID}
//
// @Summary Delete a loan
// @Tags Loans
// @Produce json
// @Param loanID path int true "Loan ID" Minimum(1)
// @Success 200 {object} dto.MessageResponse "Loan deleted!"
// @Failure 400 {object} dto.ErrorResponse "Invalid loan ID"
// @Failure 404 {object} dto.ErrorResponse "Loan not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /loans/{loanID} [delete]
func (h *LoanHandler) DeleteLoan(w http.ResponseWriter, r *http.Request) {
	loanID, err := getIDFromURL(r, loanIDParam)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get loan ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	if err := h.service.DeleteLoan(r.Context(), loanID); err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to delete loan",
			slog.Int64("loanID", loanID), slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Loan deleted", slog.Int64("loanID", loanID))
	respondMessage(w, dto.MsgLoanDeleted)
}

func (h *LoanHandler) transition(w http.ResponseWriter, r *http.Request, action string,
	apply func(context.Context, int64) (*loan.Loan, error)) {
	loanID, err := getIDFromURL(r, loanIDParam)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get loan ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}
	logCtx := h.logger.With(slog.Int64("loanID", loanID), slog.String("action", action))

	updated, err := apply(r.Context(), loanID)
	if err != nil {
		logCtx.Log(r.Context(), logLevelFor(err), "Service failed to change loan status", slog.Any("error", err))
		respondError(w, err)
		return
	}

	logCtx.InfoContext(r.Context(), "Loan status changed", slog.String("status", string(updated.Status)))
	respondJSON(w, http.StatusOK, dto.NewLoanResponse(updated))
}
