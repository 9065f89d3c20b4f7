package dto

import (
	"bank-api/internal/domain/customer"
	"bank-api/internal/pkg/validation"
	"strings"
)

// CustomerRequest is the body of POST /customers and PUT /customers/{id}.
// Age is a pointer so a missing age can be told apart from zero.
type CustomerRequest struct {
	Name    string `json:"Name" validate:"required,max=100" example:"Asha"`
	Age     *int   `json:"age" validate:"required,gte=0,lte=150" example:"30"`
	Gender  string `json:"gender" validate:"required,max=10" example:"F"`
	Phone   string `json:"Phone" validate:"required,max=20" example:"555-0100"`
	Address string `json:"Address" validate:"required,max=255" example:"12 Elm St"`
}

func (r *CustomerRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Gender = strings.TrimSpace(r.Gender)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address = strings.TrimSpace(r.Address)
	return validation.Struct(r)
}

// ToDomain assumes Validate has succeeded.
func (r *CustomerRequest) ToDomain() *customer.Customer {
	age := 0
	if r.Age != nil {
		age = *r.Age
	}
	return customer.NewCustomer(r.Name, age, r.Gender, r.Phone, r.Address)
}

type CustomerResponse struct {
	CustomerID int64  `json:"CustomerID" example:"1"`
	Name       string `json:"Name" example:"Asha"`
	Age        int    `json:"age" example:"30"`
	Gender     string `json:"gender" example:"F"`
	Phone      string `json:"Phone" example:"555-0100"`
	Address    string `json:"Address" example:"12 Elm St"`
}

func NewCustomerResponse(cust *customer.Customer) CustomerResponse {
	if cust == nil {
		return CustomerResponse{}
	}
	return CustomerResponse{
		CustomerID: cust.CustomerID,
		Name:       cust.Name,
		Age:        cust.Age,
		Gender:     cust.Gender,
		Phone:      cust.Phone,
		Address:    cust.Address,
	}
}

func NewCustomerListResponse(customers []*customer.Customer) []CustomerResponse {
	resp := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		resp = append(resp, NewCustomerResponse(c))
	}
	return resp
}
