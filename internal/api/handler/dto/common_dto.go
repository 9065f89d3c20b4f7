package dto

const (
	MsgCustomerAdded   = "Customer added!"
	MsgCustomerUpdated = "Customer updated!"
	MsgCustomerDeleted = "Customer deleted!"
	MsgAccountDeleted  = "Account deleted!"
	MsgLoanDeleted     = "Loan deleted!"
)

type MessageResponse struct {
	Message string `json:"message" example:"Customer added!"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorDetail struct {
	Code    string       `json:"code,omitempty"`
	Message string       `json:"message"`
	Field   string       `json:"field,omitempty"`
	Fields  []FieldError `json:"fields,omitempty"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

const HealthStatusOK = "ok"
