package dto

import (
	"bank-api/internal/domain/account"
	"bank-api/internal/domain/loan"
	"bank-api/internal/domain/stats"
	"bank-api/internal/domain/transaction"
	"bank-api/internal/pkg/apperrors"
	"bank-api/internal/pkg/validation"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AccountCreateRequest is the body of POST /accounts. CustomerID is bounded
// by the INT column it references.
type AccountCreateRequest struct {
	CustomerID *int64           `json:"CustomerID" validate:"required,gt=0,lte=2147483647" example:"1"`
	Type       string           `json:"Type" validate:"required,max=20" example:"Savings"`
	Balance    *decimal.Decimal `json:"Balance" validate:"required,gte=0" swaggertype:"number" example:"1000"`
}

func (r *AccountCreateRequest) Validate() error {
	r.Type = strings.TrimSpace(r.Type)
	return validation.Struct(r)
}

// ToDomain assumes Validate has succeeded.
func (r *AccountCreateRequest) ToDomain() *account.Account {
	return &account.Account{CustomerID: *r.CustomerID, Type: r.Type, Balance: *r.Balance}
}

// AccountUpdateRequest is the body of PUT /accounts/{accountID}. Absent
// fields keep their stored value.
type AccountUpdateRequest struct {
	Type    *string          `json:"Type" validate:"omitempty,min=1,max=20" example:"Current"`
	Balance *decimal.Decimal `json:"Balance" validate:"omitempty,gte=0" swaggertype:"number" example:"2500.75"`
}

func (r *AccountUpdateRequest) Validate() error {
	if r.Type != nil {
		trimmed := strings.TrimSpace(*r.Type)
		r.Type = &trimmed
	}
	if err := validation.Struct(r); err != nil {
		return err
	}
	if r.Type == nil && r.Balance == nil {
		return fmt.Errorf("%w: at least one of Type or Balance is required", apperrors.ErrInvalidArgument)
	}
	return nil
}

func (r *AccountUpdateRequest) ToDomain() account.Patch {
	return account.Patch{Type: r.Type, Balance: r.Balance}
}

type AccountResponse struct {
	AccountID    int64           `json:"AccountID" example:"10"`
	CustomerID   int64           `json:"CustomerID" example:"1"`
	Type         string          `json:"Type" example:"Savings"`
	Balance      decimal.Decimal `json:"Balance" swaggertype:"number" example:"1500.50"`
	CustomerName string          `json:"CustomerName" example:"Asha"`
}

func NewAccountResponse(a *account.Account) AccountResponse {
	if a == nil {
		return AccountResponse{}
	}
	return AccountResponse{
		AccountID:    a.AccountID,
		CustomerID:   a.CustomerID,
		Type:         a.Type,
		Balance:      a.Balance,
		CustomerName: a.CustomerName,
	}
}

func NewAccountListResponse(accounts []*account.Account) []AccountResponse {
	resp := make([]AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		resp = append(resp, NewAccountResponse(a))
	}
	return resp
}

type TransactionResponse struct {
	TransID     int64           `json:"TransID" example:"100"`
	AccountID   int64           `json:"AccountID" example:"10"`
	Amount      decimal.Decimal `json:"Amount" swaggertype:"number" example:"250"`
	Type        string          `json:"Type" example:"Deposit"`
	Date        string          `json:"Date" example:"2024-03-14"`
	AccountType string          `json:"AccountType" example:"Savings"`
}

const transactionDateLayout = time.DateOnly

func NewTransactionListResponse(txns []*transaction.Transaction) []TransactionResponse {
	resp := make([]TransactionResponse, 0, len(txns))
	for _, t := range txns {
		resp = append(resp, TransactionResponse{
			TransID:     t.TransID,
			AccountID:   t.AccountID,
			Amount:      t.Amount,
			Type:        t.Type,
			Date:        t.Date.Format(transactionDateLayout),
			AccountType: t.AccountType,
		})
	}
	return resp
}

// LoanRequest is the body of POST /loans. Status defaults to Pending.
type LoanRequest struct {
	CustomerID   *int64           `json:"CustomerID" validate:"required,gt=0,lte=2147483647" example:"1"`
	Amount       *decimal.Decimal `json:"Amount" validate:"required,gt=0" swaggertype:"number" example:"50000"`
	InterestRate *decimal.Decimal `json:"InterestRate" validate:"required,gte=0,lte=100" swaggertype:"number" example:"7.5"`
	EMI          *decimal.Decimal `json:"EMI" validate:"required,gte=0" swaggertype:"number" example:"1001.23"`
	Status       string           `json:"Status" validate:"omitempty,oneof=Pending Approved Closed" enums:"Pending,Approved,Closed" example:"Pending"`
}

func (r *LoanRequest) Validate() error {
	r.Status = strings.TrimSpace(r.Status)
	return validation.Struct(r)
}

// ToDomain assumes Validate has succeeded.
func (r *LoanRequest) ToDomain() *loan.Loan {
	return &loan.Loan{
		CustomerID:   *r.CustomerID,
		Amount:       *r.Amount,
		InterestRate: *r.InterestRate,
		EMI:          *r.EMI,
		Status:       loan.LoanStatus(r.Status),
	}
}

type LoanResponse struct {
	LoanID       int64           `json:"LoanID" example:"5"`
	CustomerID   int64           `json:"CustomerID" example:"1"`
	Amount       decimal.Decimal `json:"Amount" swaggertype:"number" example:"50000"`
	InterestRate decimal.Decimal `json:"InterestRate" swaggertype:"number" example:"7.5"`
	EMI          decimal.Decimal `json:"EMI" swaggertype:"number" example:"1001.23"`
	Status       string          `json:"Status" enums:"Pending,Approved,Closed" example:"Approved"`
	CustomerName string          `json:"CustomerName" example:"Asha"`
}

func NewLoanResponse(l *loan.Loan) LoanResponse {
	if l == nil {
		return LoanResponse{}
	}
	return LoanResponse{
		LoanID:       l.LoanID,
		CustomerID:   l.CustomerID,
		Amount:       l.Amount,
		InterestRate: l.InterestRate,
		EMI:          l.EMI,
		Status:       string(l.Status),
		CustomerName: l.CustomerName,
	}
}

func NewLoanListResponse(loans []*loan.Loan) []LoanResponse {
	resp := make([]LoanResponse, 0, len(loans))
	for _, l := range loans {
		resp = append(resp, NewLoanResponse(l))
	}
	return resp
}

type StatsResponse struct {
	TotalCustomers    int64 `json:"totalCustomers" example:"3"`
	TotalAccounts     int64 `json:"totalAccounts" example:"5"`
	TotalLoans        int64 `json:"totalLoans" example:"2"`
	TotalTransactions int64 `json:"totalTransactions" example:"40"`
}

func NewStatsResponse(s *stats.Stats) StatsResponse {
	if s == nil {
		return StatsResponse{}
	}
	return StatsResponse{
		TotalCustomers:    s.TotalCustomers,
		TotalAccounts:     s.TotalAccounts,
		TotalLoans:        s.TotalLoans,
		TotalTransactions: s.TotalTransactions,
	}
}
