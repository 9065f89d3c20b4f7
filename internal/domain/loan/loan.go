package loan

import "github.com/shopspring/decimal"

type LoanStatus string

const (
	StatusPending  LoanStatus = "Pending"
	StatusApproved LoanStatus = "Approved"
	StatusClosed   LoanStatus = "Closed"
)

func (s LoanStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusClosed:
		return true
	}
	return false
}

// requiredStatus maps a target status to the only status it can be reached from.
var requiredStatus = map[LoanStatus]LoanStatus{
	StatusApproved: StatusPending,
	StatusClosed:   StatusApproved,
}

type Loan struct {
	LoanID       int64           `json:"LoanID"`
	CustomerID   int64           `json:"CustomerID"`
	Amount       decimal.Decimal `json:"Amount"`
	InterestRate decimal.Decimal `json:"InterestRate"`
	EMI          decimal.Decimal `json:"EMI"`
	Status       LoanStatus      `json:"Status"`
	// CustomerName is joined from the borrowing customer row.
	CustomerName string `json:"CustomerName"`
}
