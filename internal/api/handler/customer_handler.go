package handler

import (
	"bank-api/internal/api/handler/dto"
	"bank-api/internal/config"
	"bank-api/internal/domain/customer"
	"bank-api/internal/pkg/apperrors"
	"errors"
	"log/slog"
	"net/http"
)

const customerIDParam = "customerID"

type CustomerHandler struct {
	service        customer.CustomerService
	logger         *slog.Logger
	strictNotFound bool
}

func NewCustomerHandler(s customer.CustomerService, cfg config.APIConfig, l *slog.Logger) *CustomerHandler {
	if s == nil {
		panic("customer service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CustomerHandler{
		service:        s,
		logger:         l.With("component", "CustomerHandler"),
		strictNotFound: cfg.StrictNotFound,
	}
}

// ListCustomers handles GET /customers
// @Summary List customers
// @Description Returns every customer row ordered by CustomerID.
// @Tags Customers
// @Produce json
// @Success 200 {array} dto.CustomerResponse "List of customers"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received list customers request")

	customers, err := h.service.ListCustomers(r.Context())
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Service failed to list customers", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCustomerListResponse(customers))
}

// GetCustomer handles GET /customers/{customerID}
// @Summary Retrieve customer details
// @Tags Customers
// @Produce json
// @Param customerID path int true "Customer ID" Minimum(1)
// @Success 200 {object} dto.CustomerResponse "Customer details retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid customer ID format"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/{customerID} [get]
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getIDFromURL(r, customerIDParam)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	cust, err := h.service.GetCustomer(r.Context(), customerID)
	if err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to get customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCustomerResponse(cust))
}

// CreateCustomer handles POST /customers
// @Summary Create a new customer
// @Description Inserts one customer row. All fields are required; age must be a non-negative integer.
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body dto.CustomerRequest true "Customer fields"
// @Success 200 {object} dto.MessageResponse "Customer added!"
// @Failure 400 {object} dto.ErrorResponse "Malformed body or missing/invalid fields"
// @Failure 409 {object} dto.ErrorResponse "Constraint violation"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received create customer request")

	req, ok := h.decodeCustomerRequest(w, r)
	if !ok {
		return
	}

	created, err := h.service.CreateCustomer(r.Context(), req.ToDomain())
	if err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to create customer", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer created successfully", slog.Int64("customerID", created.CustomerID))
	respondMessage(w, dto.MsgCustomerAdded)
}

// UpdateCustomer handles PUT /customers/{customerID}
// @Summary Replace a customer's fields
// @Description Overwrites every column of the customer row. Unless strict mode is configured, a missing id still answers with the confirmation message.
// @Tags Customers
// @Accept json
// @Produce json
// @Param customerID path int true "Customer ID" Minimum(1)
// @Param request body dto.CustomerRequest true "Customer fields"
// @Success 200 {object} dto.MessageResponse "Customer updated!"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID, malformed body or missing/invalid fields"
// @Failure 404 {object} dto.ErrorResponse "Customer not found (strict mode only)"
// @Failure 409 {object} dto.ErrorResponse "Constraint violation"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/{customerID} [put]
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getIDFromURL(r, customerIDParam)
	if err != nil && !idOutOfRange(err) {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}
	logCtx := h.logger.With(slog.Int64("customerID", customerID))

	req, ok := h.decodeCustomerRequest(w, r)
	if !ok {
		return
	}

	// An out-of-range id matches no row; err already says so.
	if err == nil {
		err = h.service.UpdateCustomer(r.Context(), customerID, req.ToDomain())
	}
	if err != nil && !h.tolerateNotFound(err) {
		logCtx.Log(r.Context(), logLevelFor(err), "Service failed to update customer", slog.Any("error", err))
		respondError(w, err)
		return
	}
	if err != nil {
		logCtx.WarnContext(r.Context(), "Update matched no customer, answering with confirmation")
	} else {
		logCtx.InfoContext(r.Context(), "Customer updated successfully")
	}
	respondMessage(w, dto.MsgCustomerUpdated)
}

// DeleteCustomer handles DELETE /customers/{customerID}
// @Summary Delete a customer
// @Description Deletes the customer row. Rows still referenced by accounts or loans are rejected by the database.
// @Tags Customers
// @Produce json
// @Param customerID path int true "Customer ID" Minimum(1)
// @Success 200 {object} dto.MessageResponse "Customer deleted!"
// @Failure 400 {object} dto.ErrorResponse "Invalid customer ID"
// @Failure 404 {object} dto.ErrorResponse "Customer not found (strict mode only)"
// @Failure 409 {object} dto.ErrorResponse "Customer still referenced"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/{customerID} [delete]
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getIDFromURL(r, customerIDParam)
	if err != nil && !idOutOfRange(err) {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}
	logCtx := h.logger.With(slog.Int64("customerID", customerID))

	if err == nil {
		err = h.service.DeleteCustomer(r.Context(), customerID)
	}
	if err != nil && !h.tolerateNotFound(err) {
		logCtx.Log(r.Context(), logLevelFor(err), "Service failed to delete customer", slog.Any("error", err))
		respondError(w, err)
		return
	}
	if err != nil {
		logCtx.WarnContext(r.Context(), "Delete matched no customer, answering with confirmation")
	} else {
		logCtx.InfoContext(r.Context(), "Customer deleted successfully")
	}
	respondMessage(w, dto.MsgCustomerDeleted)
}

func (h *CustomerHandler) decodeCustomerRequest(w http.ResponseWriter, r *http.Request) (*dto.CustomerRequest, bool) {
	var req dto.CustomerRequest
	if !decodeAndValidate(w, r, h.logger, &req) {
		return nil, false
	}
	return &req, true
}

func (h *CustomerHandler) tolerateNotFound(err error) bool {
	return !h.strictNotFound && errors.Is(err, apperrors.ErrNotFound)
}
